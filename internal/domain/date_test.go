package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	loc := time.FixedZone("EST", -5*60*60)

	date, err := ParseDate("2026-10-17", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, loc), date)

	date, err = ParseDate("2026-10-17T05:00:00.000Z", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 17, 0, 0, 0, 0, loc), date)

	// 04:00Z в EST еще предыдущий день
	date, err = ParseDate("2026-10-17T04:00:00.000Z", loc)
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 10, 16, 0, 0, 0, 0, loc), date)

	_, err = ParseDate("17/10/2026", loc)
	assert.Error(t, err)
}

func TestParseDate_TimestampEastOfUTC(t *testing.T) {
	loc := time.FixedZone("UTC+2", 2*60*60)

	// полночь субботы 24 октября по местному времени
	date, err := ParseDate("2026-10-23T22:00:00.000Z", loc)
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 10, 24, 0, 0, 0, 0, loc), date)
	assert.Equal(t, time.Saturday, date.Weekday())
}

func TestIsDateInPast(t *testing.T) {
	now := time.Date(2026, 10, 16, 8, 30, 0, 0, time.UTC)

	assert.True(t, IsDateInPast(time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 10, 16, 0, 0, 0, 0, time.UTC), now))
	assert.False(t, IsDateInPast(time.Date(2026, 10, 17, 0, 0, 0, 0, time.UTC), now))
}

func TestFormatDisplayDate(t *testing.T) {
	assert.Equal(t, "October 1st, 2026", FormatDisplayDate(time.Date(2026, 10, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "October 12th, 2026", FormatDisplayDate(time.Date(2026, 10, 12, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "October 23rd, 2026", FormatDisplayDate(time.Date(2026, 10, 23, 0, 0, 0, 0, time.UTC)))
}

func TestValidationError_Is(t *testing.T) {
	verr := &ValidationError{}
	assert.NoError(t, verr.OrNil())

	verr.Add("email", "Please enter a valid email address")
	err := verr.OrNil()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrValidation)
	assert.NotErrorIs(t, err, ErrSlotMismatch)

	verr.AddCause("time", "Please select an available time slot", ErrSlotMismatch)
	assert.ErrorIs(t, err, ErrSlotMismatch)
	assert.True(t, verr.HasField("time"))
	assert.Contains(t, err.Error(), "email: Please enter a valid email address")
}
