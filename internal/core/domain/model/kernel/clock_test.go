package kernel_test

import (
	"testing"
	"time"

	"courierdesk/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
)

func TestTruncateToMinute(t *testing.T) {
	in := time.Date(2025, 3, 4, 10, 15, 59, 999, time.Local)
	assert.Equal(t, time.Date(2025, 3, 4, 10, 15, 0, 0, time.Local), kernel.TruncateToMinute(in))
}

func TestWholeMinutesBetween(t *testing.T) {
	start := time.Date(2025, 3, 4, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		end  time.Time
		want int64
	}{
		{"same instant", start, 0},
		{"sixty minutes", start.Add(60 * time.Minute), 60},
		{"partial minute truncates", start.Add(61*time.Minute + 59*time.Second), 61},
		{"end before start", start.Add(-5 * time.Minute), -5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, kernel.WholeMinutesBetween(start, tt.end))
		})
	}
}

func TestSameLocalDay(t *testing.T) {
	loc := time.FixedZone("VET", -4*60*60)
	lateNight := time.Date(2025, 3, 4, 23, 30, 0, 0, loc)

	assert.True(t, kernel.SameLocalDay(lateNight, time.Date(2025, 3, 4, 0, 1, 0, 0, loc), loc))
	assert.False(t, kernel.SameLocalDay(lateNight, lateNight.Add(time.Hour), loc))
	// 03:30 UTC on the 5th is still the 4th in VET.
	assert.True(t, kernel.SameLocalDay(lateNight, time.Date(2025, 3, 5, 3, 30, 0, 0, time.UTC), loc))
}

func TestLocalDay(t *testing.T) {
	loc := time.FixedZone("VET", -4*60*60)
	got := kernel.LocalDay(time.Date(2025, 3, 5, 2, 0, 0, 0, time.UTC), loc)

	assert.Equal(t, time.Date(2025, 3, 4, 0, 0, 0, 0, loc), got)
}
