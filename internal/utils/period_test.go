package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 12, 0, 0, 0, time.UTC)
}

func TestWeekStartOf(t *testing.T) {
	// 2025-06-02 is a Monday.
	assert.Equal(t, "2025-06-02", WeekStartOf(date(2025, time.June, 2)))  // Monday maps to itself
	assert.Equal(t, "2025-06-02", WeekStartOf(date(2025, time.June, 4)))  // Wednesday
	assert.Equal(t, "2025-06-02", WeekStartOf(date(2025, time.June, 8)))  // Sunday belongs to the preceding Monday
	assert.Equal(t, "2025-06-09", WeekStartOf(date(2025, time.June, 9)))  // next Monday starts a new week
}

func TestWeekStartOfCrossesMonthAndYear(t *testing.T) {
	// 2024-12-30 is the Monday of the week containing New Year's Day 2025.
	assert.Equal(t, "2024-12-30", WeekStartOf(date(2025, time.January, 1)))
	assert.Equal(t, "2024-12-30", WeekStartOf(date(2025, time.January, 5)))
}

func TestMonthKeyOf(t *testing.T) {
	assert.Equal(t, "2025-06", MonthKeyOf(date(2025, time.June, 15)))
	assert.Equal(t, "2025-01", MonthKeyOf(date(2025, time.January, 31)))
	assert.Equal(t, "2024-12", MonthKeyOf(date(2024, time.December, 1)))
}

func TestCurrentHelpersAgreeWithOfVariants(t *testing.T) {
	now := time.Now()
	assert.Equal(t, WeekStartOf(now), CurrentWeekStart())
	assert.Equal(t, MonthKeyOf(now), CurrentMonthKey())
}
