package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/santhoshsharuk/billing-api/internal/config"
	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/infrastructure/database"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "billing.db")}
	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})
	return db
}

func TestOpen_Idempotent(t *testing.T) {
	cfg := &config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "billing.db")}

	db, err := database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	repo := NewCategoryRepository(db)
	require.NoError(t, repo.Create(context.Background(), &entity.Category{Name: "Snacks"}))

	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	// Reopening the same file finds the existing schema and data.
	db, err = database.Open(cfg)
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	categories, err := NewCategoryRepository(db).GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, categories, 1)
	assert.Equal(t, "Snacks", categories[0].Name)
}

func TestCategoryRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewCategoryRepository(db)
	ctx := context.Background()

	category := &entity.Category{Name: "Snacks"}
	require.NoError(t, repo.Create(ctx, category))
	assert.NotZero(t, category.ID)

	category.Name = "Beverages"
	require.NoError(t, repo.Update(ctx, category))

	got, err := repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "Beverages", got.Name)

	require.NoError(t, repo.Delete(ctx, category.ID))

	got, err = repo.GetByID(ctx, category.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting again is a no-op, not an error.
	assert.NoError(t, repo.Delete(ctx, category.ID))
}

func TestProductRepository_CategoryFilterAndDanglingReference(t *testing.T) {
	db := openTestDB(t)
	ctx := context.Background()
	categories := NewCategoryRepository(db)
	products := NewProductRepository(db)

	snacks := &entity.Category{Name: "Snacks"}
	require.NoError(t, categories.Create(ctx, snacks))

	tea := &entity.Product{Name: "Tea", Price: decimal.NewFromInt(10), CategoryID: &snacks.ID}
	soap := &entity.Product{Name: "Soap", Price: decimal.NewFromInt(25)}
	require.NoError(t, products.Create(ctx, tea))
	require.NoError(t, products.Create(ctx, soap))

	inSnacks, err := products.GetByCategory(ctx, snacks.ID)
	require.NoError(t, err)
	require.Len(t, inSnacks, 1)
	assert.Equal(t, "Tea", inSnacks[0].Name)

	// Category deletion keeps the product's dangling reference.
	require.NoError(t, categories.Delete(ctx, snacks.ID))

	got, err := products.GetByID(ctx, tea.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.NotNil(t, got.CategoryID)
	assert.Equal(t, snacks.ID, *got.CategoryID)
	assert.Nil(t, got.Category)
}

func TestProductRepository_UpdateWithoutIDRejected(t *testing.T) {
	db := openTestDB(t)

	err := NewProductRepository(db).Update(context.Background(), &entity.Product{Name: "Tea"})
	assert.ErrorIs(t, err, gorm.ErrMissingWhereClause)
}

func TestInvoiceRepository_CreateLoadsItemsBack(t *testing.T) {
	db := openTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	invoice := &entity.Invoice{
		Date:  "2025-03-14",
		Total: decimal.NewFromInt(35),
		Items: []entity.LineItem{
			{ProductID: 1, Name: "Tea", Price: decimal.NewFromInt(10), Qty: 2},
			{ProductID: 2, Name: "Coffee", Price: decimal.NewFromInt(15), Qty: 1},
		},
	}
	require.NoError(t, repo.Create(ctx, invoice))
	assert.NotZero(t, invoice.ID)

	got, err := repo.GetByID(ctx, invoice.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.True(t, got.Total.Equal(decimal.NewFromInt(35)))
	require.Len(t, got.Items, 2)
	assert.Equal(t, "Tea", got.Items[0].Name)
	assert.True(t, got.Items[0].Price.Equal(decimal.NewFromInt(10)))
}

func TestInvoiceRepository_GetByDate(t *testing.T) {
	db := openTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, &entity.Invoice{Date: "2025-03-14", Total: decimal.NewFromInt(10)}))
	require.NoError(t, repo.Create(ctx, &entity.Invoice{Date: "2025-03-14", Total: decimal.NewFromInt(20)}))
	require.NoError(t, repo.Create(ctx, &entity.Invoice{Date: "2025-03-13", Total: decimal.NewFromInt(30)}))

	today, err := repo.GetByDate(ctx, "2025-03-14")
	require.NoError(t, err)
	assert.Len(t, today, 2)

	none, err := repo.GetByDate(ctx, "2024-01-01")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestInvoiceRepository_DeleteRemovesLineItems(t *testing.T) {
	db := openTestDB(t)
	repo := NewInvoiceRepository(db)
	ctx := context.Background()

	invoice := &entity.Invoice{
		Date:  "2025-03-14",
		Total: decimal.NewFromInt(10),
		Items: []entity.LineItem{{ProductID: 1, Name: "Tea", Price: decimal.NewFromInt(10), Qty: 1}},
	}
	require.NoError(t, repo.Create(ctx, invoice))
	require.NoError(t, repo.Delete(ctx, invoice.ID))

	got, err := repo.GetByID(ctx, invoice.ID)
	require.NoError(t, err)
	assert.Nil(t, got)

	var itemCount int64
	require.NoError(t, db.Model(&entity.LineItem{}).Where("invoice_id = ?", invoice.ID).Count(&itemCount).Error)
	assert.Zero(t, itemCount)
}

func TestSettingsRepository_PutUpserts(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entity.SettingStoreName, "First"))
	require.NoError(t, repo.Put(ctx, entity.SettingStoreName, "Second"))

	rows, err := repo.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, "Second", rows[0].Value)
}

func TestSettingsRepository_ReplaceAllDropsStaleKeys(t *testing.T) {
	db := openTestDB(t)
	repo := NewSettingsRepository(db)
	ctx := context.Background()

	require.NoError(t, repo.Put(ctx, entity.SettingLogo, "data:image/png;base64,old"))
	require.NoError(t, repo.ReplaceAll(ctx, map[string]string{
		entity.SettingStoreName: "Sharuk Stores",
		entity.SettingPhone:     "9876543210",
	}))

	rows, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		assert.NotEqual(t, entity.SettingLogo, row.Key)
	}
}

func TestCustomerRepository_CRUD(t *testing.T) {
	db := openTestDB(t)
	repo := NewCustomerRepository(db)
	ctx := context.Background()

	customer := &entity.Customer{Name: "Asha", Email: "asha@example.com"}
	require.NoError(t, repo.Create(ctx, customer))
	assert.NotZero(t, customer.ID)

	all, err := repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, repo.Delete(ctx, customer.ID))
	all, err = repo.GetAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
