// internal/serializers/product_test.go
package serializers

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/binc-b/binc-backend/internal/models"
)

func floatPtr(f float64) *float64 {
	return &f
}

func TestDiscountPercentage(t *testing.T) {
	tests := []struct {
		name          string
		price         float64
		originalPrice *float64
		want          int
	}{
		{"half price", 50, floatPtr(100), 50},
		{"quarter off", 75, floatPtr(100), 25},
		{"no original price", 50, nil, 0},
		{"original equals price", 100, floatPtr(100), 0},
		{"original below price", 120, floatPtr(100), 0},
		{"zero price", 0, floatPtr(100), 0},
		{"fraction truncates down", 66.67, floatPtr(100), 33},
		{"one percent boundary", 99, floatPtr(100), 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DiscountPercentage(tt.price, tt.originalPrice))
		})
	}
}

func TestNewProductListResponse(t *testing.T) {
	db, mock := newTestDB(t)

	shop := &models.Shop{Name: "Tech Corner"}
	product := &models.Product{
		Name:          "Laptop",
		Price:         50,
		OriginalPrice: floatPtr(100),
		Stock:         3,
		IsActive:      true,
		Likes:         7,
		Views:         42,
		Category:      models.Category{Name: "Laptops"},
		Shop:          shop,
	}
	product.ID = uuid.New()
	product.Category.ID = uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

	resp := NewProductListResponse(db, product)

	assert.Equal(t, product.ID, resp.ID)
	assert.Equal(t, 50, resp.Discount)
	assert.True(t, resp.InStock)
	assert.Equal(t, int64(7), resp.Likes)
	assert.Equal(t, int64(42), resp.Views)
	require.NotNil(t, resp.ShopName)
	assert.Equal(t, "Tech Corner", *resp.ShopName)
	require.NotNil(t, resp.Category)
	assert.Equal(t, "Laptops", resp.Category.Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestNewProductListResponseOutOfStock(t *testing.T) {
	db, mock := newTestDB(t)

	product := &models.Product{Name: "Mouse", Price: 20, Stock: 0}
	product.ID = uuid.New()

	mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

	resp := NewProductListResponse(db, product)

	assert.False(t, resp.InStock)
	assert.Nil(t, resp.ShopName)
	assert.Equal(t, 0, resp.Discount)
}

func TestDetailAndListShareDiscount(t *testing.T) {
	db, mock := newTestDB(t)

	product := &models.Product{Price: 75, OriginalPrice: floatPtr(100)}
	product.ID = uuid.New()

	// category count for the list view, then category and brand counts for
	// the detail view
	for i := 0; i < 3; i++ {
		mock.ExpectQuery(`SELECT count\(\*\) FROM "products"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	}

	list := NewProductListResponse(db, product)
	detail := NewProductDetailResponse(db, product)

	assert.Equal(t, 25, list.Discount)
	assert.Equal(t, list.Discount, detail.Discount)
}
