package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Asset is a physical asset record. Current value, total depreciation and
// age are never stored; they are recomputed from Value, DepreciationRate
// and AcquisitionDate at read time.
type Asset struct {
	ID               uuid.UUID       `db:"id"`
	Name             string          `db:"name"`
	Category         string          `db:"category"`
	Value            decimal.Decimal `db:"value"`
	AcquisitionDate  time.Time       `db:"acquisition_date"`
	DepreciationRate decimal.Decimal `db:"depreciation_rate"`
	SerialNumber     string          `db:"serial_number"`
	Location         string          `db:"location"`
	Notes            string          `db:"notes"`
	CreatedBy        uuid.UUID       `db:"created_by"`
	CreatedAt        time.Time       `db:"created_at"`
	UpdatedAt        time.Time       `db:"updated_at"`
}
