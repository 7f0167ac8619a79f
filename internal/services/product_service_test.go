// internal/services/product_service_test.go
package services

import (
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/binc-b/binc-backend/internal/models"
)

func newTestDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()

	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to open sqlmock: %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	if err != nil {
		t.Fatalf("failed to open gorm: %v", err)
	}

	return db, mock
}

func TestCreateProductStripsStock(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewProductService(db)

	payload := map[string]interface{}{
		"name":        "Laptop",
		"price":       float64(999),
		"category_id": uuid.New().String(),
		"brand_id":    "not-a-uuid-or-int",
		"stock":       float64(10),
	}

	_, err := svc.CreateProduct(uuid.New(), false, payload)

	// The unresolved brand stops the pipeline, but the stock key has
	// already been discarded before any persistence work.
	require.Error(t, err)
	_, hasStock := payload["stock"]
	assert.False(t, hasStock)
}

func TestCreateProductRejectsUnresolvedBrand(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewProductService(db)

	payload := map[string]interface{}{
		"name":        "Laptop",
		"price":       float64(999),
		"category_id": uuid.New().String(),
		"brand_id":    "not-a-uuid-or-int",
	}

	_, err := svc.CreateProduct(uuid.New(), false, payload)

	var relErr *RelatedObjectError
	require.True(t, errors.As(err, &relErr))
	assert.Equal(t, "brand_id", relErr.Field)
}

func TestCreateProductValidatesRequiredFields(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewProductService(db)

	payload := map[string]interface{}{
		"name": "Laptop",
	}

	_, err := svc.CreateProduct(uuid.New(), false, payload)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
}

func TestUpdateProductRejectsUnresolvedBrand(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewProductService(db)
	productID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "products" WHERE "products"\."id" = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "price"}).
			AddRow(productID.String(), "Laptop", 999))

	payload := map[string]interface{}{"brand_id": "still-not-a-brand"}

	_, err := svc.UpdateProduct(productID, uuid.New(), true, payload)

	var relErr *RelatedObjectError
	require.True(t, errors.As(err, &relErr))
	assert.Equal(t, "brand_id", relErr.Field)
}

func TestReactUnknownReaction(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewProductService(db)

	err := svc.React(uuid.New(), models.Reaction("love"))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown reaction")
}

func TestReactIncrementsCounter(t *testing.T) {
	db, mock := newTestDB(t)
	svc := NewProductService(db)
	productID := uuid.New()

	mock.ExpectExec(`UPDATE "products" SET "likes"=likes \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := svc.React(productID, models.ReactionLike)

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetStockRejectsNegative(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewProductService(db)

	err := svc.SetStock(uuid.New(), uuid.New(), true, -1)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "negative")
}

func TestRelatedObjectErrorMessage(t *testing.T) {
	err := &RelatedObjectError{Field: "brand_id"}
	assert.Equal(t, "brand_id: related object does not exist", err.Error())
}
