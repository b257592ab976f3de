package service

import (
	"math"
	"strings"
	"time"

	"clubbooks/internal/models"
	"clubbooks/pkg/config"

	"github.com/shopspring/decimal"
)

// InsuranceMethod selects which figure an asset category uses for
// insurance purposes.
type InsuranceMethod string

const (
	// InsuranceDepreciated insures at depreciated current value. Preferred
	// for fast-decaying categories like technology, where inflated
	// replacement cost overstates the loss.
	InsuranceDepreciated InsuranceMethod = "depreciated"
	// InsuranceReplacement insures at inflation-adjusted replacement cost.
	InsuranceReplacement InsuranceMethod = "replacement"
)

// defaultInsuranceMethods maps asset category types to their insurance
// valuation method. Unlisted categories use replacement cost.
var defaultInsuranceMethods = map[string]InsuranceMethod{
	"technology":   InsuranceDepreciated,
	"electronics":  InsuranceDepreciated,
	"appreciating": InsuranceReplacement,
}

// DepreciationCalculator derives asset figures at read time: nothing it
// produces is ever stored. The model is straight-line depreciation, a
// constant percentage of original value per year.
type DepreciationCalculator struct {
	dayCountBasis  float64
	inflationRate  decimal.Decimal
	insuranceRules map[string]InsuranceMethod
}

func NewDepreciationCalculator(cfg config.ReportConfig) *DepreciationCalculator {
	rules := make(map[string]InsuranceMethod, len(defaultInsuranceMethods))
	for category, method := range defaultInsuranceMethods {
		rules[category] = method
	}
	return &DepreciationCalculator{
		dayCountBasis:  cfg.DayCountBasis,
		inflationRate:  decimal.NewFromFloat(cfg.InflationRate),
		insuranceRules: rules,
	}
}

// SetInsuranceMethod overrides the insurance valuation rule for one asset
// category type.
func (c *DepreciationCalculator) SetInsuranceMethod(category string, method InsuranceMethod) {
	c.insuranceRules[strings.ToLower(category)] = method
}

// YearsOwned is the fractional age of an asset: whole years, plus leftover
// whole months over twelve, plus leftover days over the day-count basis.
// Acquisition dates in the future clamp to zero.
func (c *DepreciationCalculator) YearsOwned(acquired, now time.Time) float64 {
	acquired = dateOnly(acquired)
	now = dateOnly(now)
	if !acquired.Before(now) {
		return 0
	}

	years := now.Year() - acquired.Year()
	anniversary := acquired.AddDate(years, 0, 0)
	if anniversary.After(now) {
		years--
		anniversary = acquired.AddDate(years, 0, 0)
	}

	months := 0
	for !anniversary.AddDate(0, months+1, 0).After(now) {
		months++
	}
	cursor := anniversary.AddDate(0, months, 0)

	days := now.Sub(cursor).Hours() / 24

	return float64(years) + float64(months)/12 + days/c.dayCountBasis
}

// CurrentValue applies straight-line depreciation, flooring at zero. A zero
// depreciation rate leaves the original value untouched regardless of age.
func (c *DepreciationCalculator) CurrentValue(asset *models.Asset, now time.Time) decimal.Decimal {
	if asset.DepreciationRate.IsZero() {
		return asset.Value
	}

	total := c.TotalDepreciation(asset, now)
	current := asset.Value.Sub(total)
	if current.IsNegative() {
		return decimal.Zero
	}
	return current
}

// AnnualDepreciation is the constant yearly write-down.
func (c *DepreciationCalculator) AnnualDepreciation(asset *models.Asset) decimal.Decimal {
	return asset.Value.Mul(asset.DepreciationRate).Div(decimal.NewFromInt(100))
}

// TotalDepreciation is the accumulated write-down over the asset's age,
// uncapped (callers floor the derived current value, not this figure).
func (c *DepreciationCalculator) TotalDepreciation(asset *models.Asset, now time.Time) decimal.Decimal {
	if asset.DepreciationRate.IsZero() {
		return decimal.Zero
	}
	years := c.YearsOwned(asset.AcquisitionDate, now)
	return c.AnnualDepreciation(asset).Mul(decimal.NewFromFloat(years))
}

// ReplacementValue compounds the original value by the inflation rate over
// the asset's age.
func (c *DepreciationCalculator) ReplacementValue(asset *models.Asset, now time.Time) decimal.Decimal {
	years := c.YearsOwned(asset.AcquisitionDate, now)
	rate, _ := c.inflationRate.Div(decimal.NewFromInt(100)).Float64()
	factor := math.Pow(1+rate, years)
	return asset.Value.Mul(decimal.NewFromFloat(factor)).Round(2)
}

// InsuranceValue resolves the per-category rule table: technology-like
// categories insure at depreciated value, everything else at replacement
// cost.
func (c *DepreciationCalculator) InsuranceValue(asset *models.Asset, now time.Time) decimal.Decimal {
	method, ok := c.insuranceRules[strings.ToLower(asset.Category)]
	if !ok {
		method = InsuranceReplacement
	}
	if method == InsuranceDepreciated {
		return c.CurrentValue(asset, now)
	}
	return c.ReplacementValue(asset, now)
}
