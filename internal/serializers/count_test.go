// internal/serializers/count_test.go
package serializers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestActiveProductCountFiltersInactive(t *testing.T) {
	db, mock := newTestDB(t)
	categoryID := uuid.New()

	// the category counter must carry the is_active filter
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE \(category_id = \$1 AND is_active = \$2\) AND "products"\."deleted_at" IS NULL`).
		WithArgs(categoryID, true).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	count := ActiveProductCount(db, categoryID)

	assert.Equal(t, int64(3), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestBrandProductCountIsUnconditional(t *testing.T) {
	db, mock := newTestDB(t)
	brandID := uuid.New()

	// the brand counter filters on brand_id only; the soft delete clause
	// follows immediately, with no is_active in between
	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE brand_id = \$1 AND "products"\."deleted_at" IS NULL`).
		WithArgs(brandID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	count := BrandProductCount(db, brandID)

	assert.Equal(t, int64(4), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShopProductCountIsUnconditional(t *testing.T) {
	db, mock := newTestDB(t)
	shopID := uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products" WHERE shop_id = \$1 AND "products"\."deleted_at" IS NULL`).
		WithArgs(shopID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(9))

	count := ShopProductCount(db, shopID)

	assert.Equal(t, int64(9), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}
