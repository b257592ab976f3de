package main

import (
	"context"
	"log"
	"time"

	"clubbooks/internal/ledger"
	"clubbooks/internal/models"
	"clubbooks/internal/repository"
	"clubbooks/pkg/auth"
	"clubbooks/pkg/config"
	"clubbooks/pkg/logger"
	"clubbooks/pkg/postgres"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Initialize logger
	if err := logger.Init(cfg.Logger.Level); err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	appLogger := logger.Get()

	// Connect to database
	ctx := context.Background()
	db, err := postgres.NewPool(ctx, &cfg.Database, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db, appLogger)
	accountRepo := repository.NewAccountRepository(db, appLogger)
	categoryRepo := repository.NewCategoryRepository(db, appLogger)
	txRepo := repository.NewTransactionRepository(db, appLogger)
	assetRepo := repository.NewAssetRepository(db, appLogger)

	appLogger.Info("Starting database seeding...")

	admin, err := seedAdminUser(ctx, userRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed admin user", zap.Error(err))
	}

	if err := seedChartOfAccounts(ctx, accountRepo, appLogger); err != nil {
		appLogger.Fatal("Failed to seed chart of accounts", zap.Error(err))
	}

	categories, err := seedCategories(ctx, categoryRepo, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to seed categories", zap.Error(err))
	}

	if err := seedDemoTransactions(ctx, txRepo, categories, admin.ID, appLogger); err != nil {
		appLogger.Fatal("Failed to seed demo transactions", zap.Error(err))
	}

	if err := seedDemoAssets(ctx, assetRepo, admin.ID, appLogger); err != nil {
		appLogger.Fatal("Failed to seed demo assets", zap.Error(err))
	}

	appLogger.Info("Database seeding completed successfully!")
}

func seedAdminUser(ctx context.Context, repo *repository.UserRepository, logger *zap.Logger) (*models.User, error) {
	const adminEmail = "treasurer@club.local"

	if existing, err := repo.GetByEmail(ctx, adminEmail); err == nil {
		logger.Info("Admin user already present, skipping", zap.String("email", adminEmail))
		return existing, nil
	}

	hashed, err := auth.HashPassword("changeme")
	if err != nil {
		return nil, err
	}

	now := time.Now()
	admin := &models.User{
		ID:        uuid.New(),
		Username:  "treasurer",
		Email:     adminEmail,
		Password:  hashed,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := repo.Create(ctx, admin); err != nil {
		return nil, err
	}

	logger.Info("Created admin user", zap.String("email", adminEmail))
	return admin, nil
}

func seedChartOfAccounts(ctx context.Context, repo *repository.AccountRepository, logger *zap.Logger) error {
	existing, err := repo.List(ctx, false)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Chart of accounts already present, skipping", zap.Int("accounts", len(existing)))
		return nil
	}

	accounts := []struct {
		number string
		name   string
		atype  ledger.AccountType
	}{
		{"1000", "Checking Account", ledger.AccountTypeAsset},
		{"1100", "Savings Account", ledger.AccountTypeAsset},
		{"1500", "Club Equipment", ledger.AccountTypeAsset},
		{"2000", "Accounts Payable", ledger.AccountTypeLiability},
		{"2100", "Member Deposits", ledger.AccountTypeLiability},
		{"3000", "Retained Surplus", ledger.AccountTypeEquity},
		{"4000", "Membership Dues", ledger.AccountTypeIncome},
		{"4100", "Event Revenue", ledger.AccountTypeIncome},
		{"4200", "Donations", ledger.AccountTypeIncome},
		{"5000", "Facility Rental", ledger.AccountTypeExpense},
		{"5100", "Supplies", ledger.AccountTypeExpense},
		{"5200", "Insurance", ledger.AccountTypeExpense},
		{"5300", "Event Costs", ledger.AccountTypeExpense},
	}

	now := time.Now()
	for _, a := range accounts {
		account := &models.LedgerAccount{
			ID:            uuid.New(),
			AccountNumber: a.number,
			Name:          a.name,
			Type:          a.atype,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := repo.Create(ctx, account); err != nil {
			return err
		}
	}

	logger.Info("Seeded chart of accounts", zap.Int("accounts", len(accounts)))
	return nil
}

func seedCategories(ctx context.Context, repo *repository.CategoryRepository, logger *zap.Logger) (map[string]uuid.UUID, error) {
	ids := make(map[string]uuid.UUID)

	existing, err := repo.List(ctx, false)
	if err != nil {
		return nil, err
	}
	if len(existing) > 0 {
		logger.Info("Categories already present, skipping", zap.Int("categories", len(existing)))
		for _, c := range existing {
			ids[c.Name] = c.ID
		}
		return ids, nil
	}

	categories := []struct {
		name  string
		ctype ledger.AccountType
		group ledger.ActivityGroup
	}{
		{"Membership Dues", ledger.AccountTypeIncome, ledger.ActivityOperating},
		{"Event Revenue", ledger.AccountTypeIncome, ledger.ActivityOperating},
		{"Donations", ledger.AccountTypeIncome, ledger.ActivityFinancing},
		{"Facility Rental", ledger.AccountTypeExpense, ledger.ActivityOperating},
		{"Supplies", ledger.AccountTypeExpense, ledger.ActivityOperating},
		{"Insurance", ledger.AccountTypeExpense, ledger.ActivityOperating},
		{"Equipment Purchases", ledger.AccountTypeExpense, ledger.ActivityInvesting},
	}

	now := time.Now()
	for _, c := range categories {
		category := &models.Category{
			ID:            uuid.New(),
			Name:          c.name,
			Type:          c.ctype,
			ActivityGroup: c.group,
			Active:        true,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if err := repo.Create(ctx, category); err != nil {
			return nil, err
		}
		ids[c.name] = category.ID
	}

	logger.Info("Seeded categories", zap.Int("categories", len(categories)))
	return ids, nil
}

func seedDemoTransactions(
	ctx context.Context,
	repo *repository.TransactionRepository,
	categories map[string]uuid.UUID,
	createdBy uuid.UUID,
	logger *zap.Logger,
) error {
	count, err := repo.Count(ctx, models.TransactionFilter{})
	if err != nil {
		return err
	}
	if count > 0 {
		logger.Info("Transactions already present, skipping", zap.Int64("transactions", count))
		return nil
	}

	year := time.Now().Year()
	demo := []struct {
		amount         string
		month          time.Month
		day            int
		classification ledger.Classification
		category       string
		description    string
	}{
		{"1200.00", time.January, 15, ledger.ClassificationIncome, "Membership Dues", "Annual dues collection"},
		{"350.00", time.February, 3, ledger.ClassificationExpense, "Facility Rental", "February hall rental"},
		{"89.50", time.February, 12, ledger.ClassificationExpense, "Supplies", "Office supplies"},
		{"450.00", time.March, 22, ledger.ClassificationIncome, "Event Revenue", "Spring social tickets"},
		{"275.00", time.March, 25, ledger.ClassificationExpense, "Event Costs", "Spring social catering"},
		{"500.00", time.April, 8, ledger.ClassificationIncome, "Donations", "Local business donation"},
		{"620.00", time.May, 1, ledger.ClassificationExpense, "Insurance", "Liability policy premium"},
		{"780.00", time.June, 10, ledger.ClassificationExpense, "Equipment Purchases", "Replacement sound system"},
	}

	now := time.Now()
	seeded := 0
	for _, d := range demo {
		date := time.Date(year, d.month, d.day, 0, 0, 0, 0, time.UTC)
		if date.After(now) {
			continue
		}

		amount, err := decimal.NewFromString(d.amount)
		if err != nil {
			return err
		}

		tx := &models.Transaction{
			ID:             uuid.New(),
			Amount:         amount,
			Date:           date,
			Classification: d.classification,
			Description:    d.description,
			CreatedBy:      createdBy,
			CreatedAt:      now,
			UpdatedAt:      now,
		}
		if id, ok := categories[d.category]; ok {
			categoryID := id
			tx.CategoryID = &categoryID
		}

		if err := repo.Create(ctx, tx); err != nil {
			return err
		}
		seeded++
	}

	logger.Info("Seeded demo transactions", zap.Int("transactions", seeded))
	return nil
}

func seedDemoAssets(ctx context.Context, repo *repository.AssetRepository, createdBy uuid.UUID, logger *zap.Logger) error {
	existing, err := repo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		logger.Info("Assets already present, skipping", zap.Int("assets", len(existing)))
		return nil
	}

	now := time.Now()
	assets := []struct {
		name     string
		category string
		value    string
		rate     string
		years    int
	}{
		{"Projector", "technology", "1200.00", "20", 2},
		{"Folding Tables (10)", "furniture", "800.00", "10", 4},
		{"Sound System", "electronics", "1500.00", "15", 1},
		{"Storage Shed", "structures", "3500.00", "5", 6},
	}

	for _, a := range assets {
		value, err := decimal.NewFromString(a.value)
		if err != nil {
			return err
		}
		rate, err := decimal.NewFromString(a.rate)
		if err != nil {
			return err
		}

		asset := &models.Asset{
			ID:               uuid.New(),
			Name:             a.name,
			Category:         a.category,
			Value:            value,
			AcquisitionDate:  now.AddDate(-a.years, 0, 0),
			DepreciationRate: rate,
			CreatedBy:        createdBy,
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := repo.Create(ctx, asset); err != nil {
			return err
		}
	}

	logger.Info("Seeded demo assets", zap.Int("assets", len(assets)))
	return nil
}
