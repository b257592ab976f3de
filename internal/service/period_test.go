package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

func TestResolvePeriod(t *testing.T) {
	now := date(2025, time.June, 15)

	t.Run("monthly", func(t *testing.T) {
		window := ResolvePeriod(PeriodMonthly, 2024, 3, now)

		assert.Equal(t, date(2024, time.March, 1), window.Start)
		assert.Equal(t, date(2024, time.March, 31), window.End)
		assert.Equal(t, "March 2024", window.Label)
		assert.Equal(t, 31, window.Days())
	})

	t.Run("monthly leap february", func(t *testing.T) {
		window := ResolvePeriod(PeriodMonthly, 2024, 2, now)

		assert.Equal(t, date(2024, time.February, 29), window.End)
		assert.Equal(t, 29, window.Days())
	})

	t.Run("monthly clamps out-of-range month", func(t *testing.T) {
		low := ResolvePeriod(PeriodMonthly, 2024, 0, now)
		high := ResolvePeriod(PeriodMonthly, 2024, 13, now)

		assert.Equal(t, date(2024, time.January, 1), low.Start)
		assert.Equal(t, date(2024, time.December, 1), high.Start)
		assert.Equal(t, date(2024, time.December, 31), high.End)
	})

	t.Run("quarterly", func(t *testing.T) {
		window := ResolvePeriod(PeriodQuarterly, 2024, 2, now)

		assert.Equal(t, date(2024, time.April, 1), window.Start)
		assert.Equal(t, date(2024, time.June, 30), window.End)
		assert.Equal(t, "Q2 2024", window.Label)
	})

	t.Run("quarterly clamps out-of-range quarter", func(t *testing.T) {
		window := ResolvePeriod(PeriodQuarterly, 2024, 9, now)

		assert.Equal(t, date(2024, time.October, 1), window.Start)
		assert.Equal(t, date(2024, time.December, 31), window.End)
	})

	t.Run("annual", func(t *testing.T) {
		window := ResolvePeriod(PeriodAnnual, 2024, 0, now)

		assert.Equal(t, date(2024, time.January, 1), window.Start)
		assert.Equal(t, date(2024, time.December, 31), window.End)
		assert.Equal(t, "2024", window.Label)
	})

	t.Run("ytd past year defaults to december", func(t *testing.T) {
		window := ResolvePeriod(PeriodYTD, 2024, 0, now)

		assert.Equal(t, date(2024, time.January, 1), window.Start)
		assert.Equal(t, date(2024, time.December, 31), window.End)
	})

	t.Run("ytd current year defaults to today", func(t *testing.T) {
		window := ResolvePeriod(PeriodYTD, 2025, 0, now)

		assert.Equal(t, date(2025, time.January, 1), window.Start)
		assert.Equal(t, date(2025, time.June, 15), window.End)
	})

	t.Run("ytd explicit cutoff month", func(t *testing.T) {
		window := ResolvePeriod(PeriodYTD, 2024, 4, now)

		assert.Equal(t, date(2024, time.April, 30), window.End)
	})
}

func TestResolvePeriodClampsToToday(t *testing.T) {
	now := date(2025, time.June, 15)

	t.Run("current month ends today", func(t *testing.T) {
		window := ResolvePeriod(PeriodMonthly, 2025, 6, now)

		assert.Equal(t, date(2025, time.June, 1), window.Start)
		assert.Equal(t, date(2025, time.June, 15), window.End)
	})

	t.Run("current quarter ends today", func(t *testing.T) {
		window := ResolvePeriod(PeriodQuarterly, 2025, 2, now)

		assert.Equal(t, date(2025, time.April, 1), window.Start)
		assert.Equal(t, date(2025, time.June, 15), window.End)
	})

	t.Run("future month collapses to its start", func(t *testing.T) {
		window := ResolvePeriod(PeriodMonthly, 2025, 12, now)

		assert.Equal(t, date(2025, time.December, 1), window.Start)
		assert.Equal(t, window.Start, window.End)
		assert.Equal(t, 1, window.Days())
	})

	t.Run("past year is not clamped", func(t *testing.T) {
		window := ResolvePeriod(PeriodAnnual, 2023, 0, now)

		assert.Equal(t, date(2023, time.December, 31), window.End)
	})

	t.Run("end is never before start", func(t *testing.T) {
		for month := 1; month <= 12; month++ {
			window := ResolvePeriod(PeriodMonthly, 2025, month, now)
			assert.False(t, window.End.Before(window.Start), "month %d", month)
		}
	})
}
