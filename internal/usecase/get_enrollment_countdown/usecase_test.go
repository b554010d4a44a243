package get_enrollment_countdown

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixedTimeProvider struct {
	now time.Time
}

func (p fixedTimeProvider) Now() time.Time {
	return p.now
}

func TestExecute(t *testing.T) {
	deadline := time.Date(2024, 6, 15, 23, 59, 59, 0, time.UTC)

	tests := []struct {
		name string
		now  time.Time
		want Response
	}{
		{
			name: "days ahead",
			now:  time.Date(2024, 6, 13, 21, 58, 30, 500, time.UTC),
			want: Response{Deadline: deadline, Days: 2, Hours: 2, Minutes: 1, Seconds: 28},
		},
		{
			name: "last second",
			now:  deadline.Add(-time.Second),
			want: Response{Deadline: deadline, Seconds: 1},
		},
		{
			name: "exactly at deadline",
			now:  deadline,
			want: Response{Deadline: deadline, Expired: true},
		},
		{
			name: "long after",
			now:  time.Date(2026, 10, 16, 12, 0, 0, 0, time.UTC),
			want: Response{Deadline: deadline, Expired: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := NewUseCase(deadline)
			uc.timeProvider = fixedTimeProvider{now: tt.now}

			got, err := uc.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, *got)
		})
	}
}
