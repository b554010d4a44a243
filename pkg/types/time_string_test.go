package types

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTimeStringFromString(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "morning", input: "07:00"},
		{name: "evening", input: "21:00"},
		{name: "half hour", input: "15:30"},
		{name: "single digit hour", input: "9:00", wantErr: true},
		{name: "hour out of range", input: "24:00", wantErr: true},
		{name: "minute out of range", input: "10:60", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "seconds", input: "10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ts, err := NewTimeStringFromString(tt.input)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidTimeString)
				assert.True(t, ts.IsZero())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.input, ts.String())
		})
	}
}

func TestTimeString_AddMinutes(t *testing.T) {
	ts := TimeString("07:00")

	next, err := ts.AddMinutes(60)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:00"), next)

	next, err = ts.AddMinutes(95)
	require.NoError(t, err)
	assert.Equal(t, TimeString("08:35"), next)

	_, err = TimeString("23:30").AddMinutes(30)
	assert.ErrorIs(t, err, ErrInvalidTimeString)
}

func TestTimeString_Compare(t *testing.T) {
	assert.True(t, TimeString("09:00").IsBefore("15:00"))
	assert.False(t, TimeString("15:00").IsBefore("15:00"))
	assert.True(t, TimeString("21:00").IsAfter("18:00"))
}
