package service

import (
	"fmt"
	"time"
)

type PeriodType string

const (
	PeriodMonthly   PeriodType = "monthly"
	PeriodQuarterly PeriodType = "quarterly"
	PeriodYTD       PeriodType = "ytd"
	PeriodAnnual    PeriodType = "annual"
)

// PeriodWindow is a concrete, inclusive [Start, End] reporting window.
type PeriodWindow struct {
	Start time.Time
	End   time.Time
	Label string
}

// Days returns the inclusive day count of the window.
func (w PeriodWindow) Days() int {
	return int(w.End.Sub(w.Start).Hours()/24) + 1
}

// ResolvePeriod converts a (type, year, value) request into a concrete
// window. Invalid numeric inputs are clamped into valid ranges, never
// rejected. For the current calendar year the end date is additionally
// clamped to today, so a requested future window never reports zero-filled
// future data as if it were real.
func ResolvePeriod(periodType PeriodType, year, value int, now time.Time) PeriodWindow {
	var start, end time.Time
	var label string

	switch periodType {
	case PeriodMonthly:
		month := clampInt(value, 1, 12)
		start = time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
		end = lastDayOfMonth(year, month)
		label = fmt.Sprintf("%s %d", start.Month(), year)
	case PeriodQuarterly:
		quarter := clampInt(value, 1, 4)
		firstMonth := (quarter-1)*3 + 1
		start = time.Date(year, time.Month(firstMonth), 1, 0, 0, 0, 0, time.UTC)
		end = lastDayOfMonth(year, firstMonth+2)
		label = fmt.Sprintf("Q%d %d", quarter, year)
	case PeriodYTD:
		cutoff := value
		if cutoff == 0 {
			if year == now.Year() {
				cutoff = int(now.Month())
			} else {
				cutoff = 12
			}
		}
		cutoff = clampInt(cutoff, 1, 12)
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = lastDayOfMonth(year, cutoff)
		label = fmt.Sprintf("%d Year to Date", year)
	default: // annual
		start = time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end = time.Date(year, time.December, 31, 0, 0, 0, 0, time.UTC)
		label = fmt.Sprintf("%d", year)
	}

	if year == now.Year() {
		today := dateOnly(now)
		if end.After(today) {
			end = today
		}
	}

	// Guard against bad clamping producing an inverted window.
	if end.Before(start) {
		end = start
	}

	return PeriodWindow{Start: start, End: end, Label: label}
}

func lastDayOfMonth(year, month int) time.Time {
	// Day zero of the following month normalizes to the last calendar day,
	// leap years included.
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
