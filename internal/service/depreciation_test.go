package service

import (
	"testing"
	"time"

	"clubbooks/internal/models"
	"clubbooks/pkg/config"

	"github.com/stretchr/testify/assert"
)

func newCalculator() *DepreciationCalculator {
	return NewDepreciationCalculator(config.ReportConfig{
		DayCountBasis: 365.25,
		InflationRate: 3.0,
	})
}

func asset(value, rate string, acquired time.Time) *models.Asset {
	return &models.Asset{
		Name:             "Test Asset",
		Value:            amount(value),
		DepreciationRate: amount(rate),
		AcquisitionDate:  acquired,
	}
}

func TestYearsOwned(t *testing.T) {
	calc := newCalculator()

	t.Run("whole years", func(t *testing.T) {
		years := calc.YearsOwned(date(2022, time.June, 15), date(2025, time.June, 15))
		assert.Equal(t, 3.0, years)
	})

	t.Run("half year", func(t *testing.T) {
		years := calc.YearsOwned(date(2025, time.January, 1), date(2025, time.July, 1))
		assert.Equal(t, 0.5, years)
	})

	t.Run("leftover days use the day-count basis", func(t *testing.T) {
		years := calc.YearsOwned(date(2025, time.June, 1), date(2025, time.June, 11))
		assert.InDelta(t, 10.0/365.25, years, 1e-9)
	})

	t.Run("acquisition today is zero", func(t *testing.T) {
		assert.Zero(t, calc.YearsOwned(date(2025, time.June, 15), date(2025, time.June, 15)))
	})

	t.Run("future acquisition clamps to zero", func(t *testing.T) {
		assert.Zero(t, calc.YearsOwned(date(2026, time.January, 1), date(2025, time.June, 15)))
	})
}

func TestCurrentValue(t *testing.T) {
	calc := newCalculator()
	now := date(2025, time.June, 15)

	t.Run("straight line after three years", func(t *testing.T) {
		a := asset("1000.00", "10", date(2022, time.June, 15))

		current := calc.CurrentValue(a, now)

		assert.True(t, current.Equal(amount("700.00")), "current = %s", current)
	})

	t.Run("floors at zero", func(t *testing.T) {
		a := asset("1000.00", "25", date(2015, time.January, 1))

		current := calc.CurrentValue(a, now)

		assert.True(t, current.IsZero(), "current = %s", current)
	})

	t.Run("zero rate never depreciates", func(t *testing.T) {
		a := asset("1000.00", "0", date(1990, time.January, 1))

		current := calc.CurrentValue(a, now)

		assert.True(t, current.Equal(amount("1000.00")))
	})

	t.Run("future acquisition keeps original value", func(t *testing.T) {
		a := asset("1000.00", "10", date(2026, time.January, 1))

		current := calc.CurrentValue(a, now)

		assert.True(t, current.Equal(amount("1000.00")))
	})
}

func TestAnnualDepreciation(t *testing.T) {
	calc := newCalculator()
	a := asset("1000.00", "10", date(2022, time.June, 15))

	assert.True(t, calc.AnnualDepreciation(a).Equal(amount("100.00")))
}

func TestReplacementValue(t *testing.T) {
	calc := newCalculator()

	t.Run("compounds inflation over the asset age", func(t *testing.T) {
		a := asset("1000.00", "10", date(2022, time.June, 15))

		replacement := calc.ReplacementValue(a, date(2025, time.June, 15))

		// 1000 * 1.03^3
		assert.True(t, replacement.Equal(amount("1092.73")), "replacement = %s", replacement)
	})

	t.Run("new asset replaces at original value", func(t *testing.T) {
		a := asset("1000.00", "10", date(2025, time.June, 15))

		replacement := calc.ReplacementValue(a, date(2025, time.June, 15))

		assert.True(t, replacement.Equal(amount("1000.00")))
	})
}

func TestInsuranceValue(t *testing.T) {
	calc := newCalculator()
	now := date(2025, time.June, 15)

	t.Run("technology insures at depreciated value", func(t *testing.T) {
		a := asset("1000.00", "10", date(2022, time.June, 15))
		a.Category = "Technology"

		assert.True(t, calc.InsuranceValue(a, now).Equal(amount("700.00")))
	})

	t.Run("unlisted category insures at replacement cost", func(t *testing.T) {
		a := asset("1000.00", "10", date(2022, time.June, 15))
		a.Category = "Furniture"

		assert.True(t, calc.InsuranceValue(a, now).Equal(amount("1092.73")))
	})

	t.Run("rule override changes the method", func(t *testing.T) {
		a := asset("1000.00", "10", date(2022, time.June, 15))
		a.Category = "Furniture"

		calc.SetInsuranceMethod("Furniture", InsuranceDepreciated)

		assert.True(t, calc.InsuranceValue(a, now).Equal(amount("700.00")))
	})
}
