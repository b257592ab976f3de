package dto

import "github.com/shopspring/decimal"

type CreateAssetRequest struct {
	Name             string          `json:"name"`
	Category         string          `json:"category"`
	Value            decimal.Decimal `json:"value"`
	AcquisitionDate  string          `json:"acquisition_date"`
	DepreciationRate decimal.Decimal `json:"depreciation_rate"`
	SerialNumber     string          `json:"serial_number,omitempty"`
	Location         string          `json:"location,omitempty"`
	Notes            string          `json:"notes,omitempty"`
}

// AssetValuation is an asset with its derived, read-time figures.
type AssetValuation struct {
	ID                 string          `json:"id"`
	Name               string          `json:"name"`
	Category           string          `json:"category"`
	OriginalValue      decimal.Decimal `json:"original_value"`
	AcquisitionDate    string          `json:"acquisition_date"`
	DepreciationRate   decimal.Decimal `json:"depreciation_rate"`
	YearsOwned         float64         `json:"years_owned"`
	AnnualDepreciation decimal.Decimal `json:"annual_depreciation"`
	TotalDepreciation  decimal.Decimal `json:"total_depreciation"`
	CurrentValue       decimal.Decimal `json:"current_value"`
	ReplacementValue   decimal.Decimal `json:"replacement_value"`
	InsuranceValue     decimal.Decimal `json:"insurance_value"`
}

type AssetReport struct {
	AsOf               string           `json:"as_of"`
	Assets             []AssetValuation `json:"assets"`
	TotalOriginalValue decimal.Decimal  `json:"total_original_value"`
	TotalCurrentValue  decimal.Decimal  `json:"total_current_value"`
	Error              string           `json:"error,omitempty"`
}
