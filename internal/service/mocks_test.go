package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"clubbooks/internal/ledger"
	"clubbooks/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var errStoreDown = errors.New("store unavailable")

type fakeCategory struct {
	id    uuid.UUID
	name  string
	group ledger.ActivityGroup
}

// fakeTransactionStore is an in-memory TransactionStore that mirrors the
// repository's filter semantics, so aggregation tests exercise real sums
// instead of canned returns. Setting err simulates a storage outage.
type fakeTransactionStore struct {
	transactions []models.Transaction
	categories   map[uuid.UUID]fakeCategory
	err          error
}

func (f *fakeTransactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	if f.err != nil {
		return f.err
	}
	f.transactions = append(f.transactions, *tx)
	return nil
}

func (f *fakeTransactionStore) Update(ctx context.Context, tx *models.Transaction) error {
	if f.err != nil {
		return f.err
	}
	for i := range f.transactions {
		if f.transactions[i].ID == tx.ID {
			f.transactions[i] = *tx
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeTransactionStore) Delete(ctx context.Context, id uuid.UUID) error {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			f.transactions = append(f.transactions[:i], f.transactions[i+1:]...)
			return nil
		}
	}
	return errors.New("not found")
}

func (f *fakeTransactionStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Transaction, error) {
	for i := range f.transactions {
		if f.transactions[i].ID == id {
			tx := f.transactions[i]
			return &tx, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeTransactionStore) List(ctx context.Context, filter models.TransactionFilter, limit, offset uint64) ([]*models.Transaction, error) {
	if f.err != nil {
		return nil, f.err
	}
	var result []*models.Transaction
	for i := range f.transactions {
		if f.matches(f.transactions[i], filter) {
			tx := f.transactions[i]
			result = append(result, &tx)
		}
	}
	return result, nil
}

func (f *fakeTransactionStore) SumAmount(ctx context.Context, filter models.TransactionFilter) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, tx := range f.transactions {
		if f.matches(tx, filter) {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

func (f *fakeTransactionStore) Count(ctx context.Context, filter models.TransactionFilter) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	var count int64
	for _, tx := range f.transactions {
		if f.matches(tx, filter) {
			count++
		}
	}
	return count, nil
}

func (f *fakeTransactionStore) SumByCategory(ctx context.Context, c ledger.Classification, start, end time.Time, limit uint64) ([]models.CategoryTotal, error) {
	if f.err != nil {
		return nil, f.err
	}
	sums := map[uuid.UUID]decimal.Decimal{}
	filter := models.TransactionFilter{Start: &start, End: &end, Classification: &c}
	for _, tx := range f.transactions {
		if tx.CategoryID == nil || !f.matches(tx, filter) {
			continue
		}
		sums[*tx.CategoryID] = sums[*tx.CategoryID].Add(tx.Amount)
	}

	var totals []models.CategoryTotal
	for id, total := range sums {
		totals = append(totals, models.CategoryTotal{
			CategoryID: id,
			Name:       f.categories[id].name,
			Total:      total,
		})
	}
	sort.Slice(totals, func(i, j int) bool { return totals[i].Total.GreaterThan(totals[j].Total) })
	if limit > 0 && uint64(len(totals)) > limit {
		totals = totals[:limit]
	}
	return totals, nil
}

func (f *fakeTransactionStore) SumByActivityGroup(ctx context.Context, c ledger.Classification, g ledger.ActivityGroup, start, end time.Time) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	filter := models.TransactionFilter{Start: &start, End: &end, Classification: &c}
	for _, tx := range f.transactions {
		if tx.CategoryID == nil || !f.matches(tx, filter) {
			continue
		}
		if f.categories[*tx.CategoryID].group == g {
			total = total.Add(tx.Amount)
		}
	}
	return total, nil
}

func (f *fakeTransactionStore) ListRegisterRows(ctx context.Context, filter models.RegisterFilter) ([]models.TransactionRegisterRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	var rows []models.TransactionRegisterRow
	for _, tx := range f.transactions {
		categoryName := ""
		if tx.CategoryID != nil {
			categoryName = f.categories[*tx.CategoryID].name
		}
		rows = append(rows, models.TransactionRegisterRow{
			ID:              tx.ID,
			Date:            tx.Date,
			ReferenceNumber: tx.ReferenceNumber,
			Description:     tx.Description,
			Classification:  tx.Classification,
			Amount:          tx.Amount,
			AccountID:       tx.AccountID,
			CategoryName:    categoryName,
		})
	}
	return rows, nil
}

func (f *fakeTransactionStore) matches(tx models.Transaction, filter models.TransactionFilter) bool {
	if filter.Start != nil && tx.Date.Before(*filter.Start) {
		return false
	}
	if filter.End != nil && tx.Date.After(*filter.End) {
		return false
	}
	if filter.Classification != nil && tx.Classification != *filter.Classification {
		return false
	}
	if filter.CategoryID != nil && (tx.CategoryID == nil || *tx.CategoryID != *filter.CategoryID) {
		return false
	}
	if filter.AccountID != nil && (tx.AccountID == nil || *tx.AccountID != *filter.AccountID) {
		return false
	}
	return true
}

type fakeJournalStore struct {
	rows      []models.JournalLineRegisterRow
	liability decimal.Decimal
	err       error
}

func (f *fakeJournalStore) CreateWithLines(ctx context.Context, journal *models.Journal, lines []models.JournalLine) error {
	return f.err
}

func (f *fakeJournalStore) ListRegisterRows(ctx context.Context, filter models.RegisterFilter) ([]models.JournalLineRegisterRow, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func (f *fakeJournalStore) SumLiabilityBalance(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	return f.liability, nil
}

type fakeAssetStore struct {
	assets []*models.Asset
	err    error
}

func (f *fakeAssetStore) Create(ctx context.Context, asset *models.Asset) error {
	if f.err != nil {
		return f.err
	}
	f.assets = append(f.assets, asset)
	return nil
}

func (f *fakeAssetStore) Update(ctx context.Context, asset *models.Asset) error { return f.err }

func (f *fakeAssetStore) Delete(ctx context.Context, id uuid.UUID) error { return f.err }

func (f *fakeAssetStore) GetByID(ctx context.Context, id uuid.UUID) (*models.Asset, error) {
	for _, asset := range f.assets {
		if asset.ID == id {
			return asset, nil
		}
	}
	return nil, errors.New("not found")
}

func (f *fakeAssetStore) List(ctx context.Context) ([]*models.Asset, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.assets, nil
}

func (f *fakeAssetStore) SumOriginalValue(ctx context.Context, asOf time.Time) (decimal.Decimal, error) {
	if f.err != nil {
		return decimal.Zero, f.err
	}
	total := decimal.Zero
	for _, asset := range f.assets {
		if !asset.AcquisitionDate.After(asOf) {
			total = total.Add(asset.Value)
		}
	}
	return total, nil
}

type fakeBudgetStore struct {
	plan     *models.BudgetPlan
	lines    []models.BudgetLineWithAccount
	err      error
	linesErr error
}

func (f *fakeBudgetStore) CreatePlan(ctx context.Context, plan *models.BudgetPlan) error {
	if f.err != nil {
		return f.err
	}
	f.plan = plan
	return nil
}

func (f *fakeBudgetStore) GetPlanByYear(ctx context.Context, fiscalYear int) (*models.BudgetPlan, error) {
	if f.err != nil {
		return nil, f.err
	}
	if f.plan == nil || f.plan.FiscalYear != fiscalYear {
		return nil, errors.New("no rows")
	}
	return f.plan, nil
}

func (f *fakeBudgetStore) ListLinesWithAccounts(ctx context.Context, planID uuid.UUID) ([]models.BudgetLineWithAccount, error) {
	if f.linesErr != nil {
		return nil, f.linesErr
	}
	return f.lines, nil
}

func (f *fakeBudgetStore) UpsertLine(ctx context.Context, line *models.BudgetPlanLine) error {
	return f.err
}

func (f *fakeBudgetStore) DeleteLine(ctx context.Context, id uuid.UUID) error { return f.err }
