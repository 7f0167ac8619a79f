// internal/serializers/product.go
package serializers

import (
	"math"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
)

// DiscountPercentage is the single definition of the discount shown to
// clients. Both the list and the detail product view use it; the value is
// derived on the way out and never stored.
//
// It is 0 unless both prices are present and the original price is higher,
// otherwise floor(100 * (original - price) / original).
func DiscountPercentage(price float64, originalPrice *float64) int {
	if originalPrice == nil || price <= 0 || *originalPrice <= price {
		return 0
	}
	return int(math.Floor((*originalPrice - price) / *originalPrice * 100))
}

type ProductListResponse struct {
	ID            uuid.UUID         `json:"id"`
	Name          string            `json:"name"`
	Price         float64           `json:"price"`
	OriginalPrice *float64          `json:"original_price"`
	Discount      int               `json:"discount"`
	Category      *CategoryResponse `json:"category"`
	ImageURL      string            `json:"image_url"`
	Rating        float64           `json:"rating"`
	Likes         int64             `json:"likes"`
	Dislikes      int64             `json:"dislikes"`
	Neutrals      int64             `json:"neutrals"`
	IsActive      bool              `json:"is_active"`
	ShopName      *string           `json:"shop_name"`
	InStock       bool              `json:"in_stock"`
	Views         int64             `json:"views"`
}

type ProductDetailResponse struct {
	ID            uuid.UUID                       `json:"id"`
	Name          string                          `json:"name"`
	Description   string                          `json:"description"`
	Price         float64                         `json:"price"`
	OriginalPrice *float64                        `json:"original_price"`
	Discount      int                             `json:"discount"`
	Category      *CategoryResponse               `json:"category"`
	Brand         *BrandResponse                  `json:"brand"`
	ShopName      *string                         `json:"shop_name"`
	ImageURL      string                          `json:"image_url"`
	InStock       bool                            `json:"in_stock"`
	Rating        float64                         `json:"rating"`
	IsActive      bool                            `json:"is_active"`
	CreatedAt     time.Time                       `json:"created_at"`
	Reviews       []*ReviewResponse               `json:"reviews"`
	VideoURL      string                          `json:"video_url"`
	ReleaseDate   *time.Time                      `json:"release_date"`
	Likes         int64                           `json:"likes"`
	Dislikes      int64                           `json:"dislikes"`
	Neutrals      int64                           `json:"neutrals"`
	Views         int64                           `json:"views"`
	IsBanned      bool                            `json:"is_banned"`
	Keywords      []string                        `json:"keywords"`
	Specs         []*ProductSpecificationResponse `json:"specs,omitempty"`
}

func shopName(product *models.Product) *string {
	if product.Shop == nil {
		return nil
	}
	name := product.Shop.Name
	return &name
}

func NewProductListResponse(db *gorm.DB, product *models.Product) *ProductListResponse {
	return &ProductListResponse{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Discount:      DiscountPercentage(product.Price, product.OriginalPrice),
		Category:      NewCategoryResponse(db, &product.Category),
		ImageURL:      product.ImageURL,
		Rating:        product.Rating,
		Likes:         product.Likes,
		Dislikes:      product.Dislikes,
		Neutrals:      product.Neutrals,
		IsActive:      product.IsActive,
		ShopName:      shopName(product),
		InStock:       product.InStock(),
		Views:         product.Views,
	}
}

func NewProductListResponses(db *gorm.DB, products []models.Product) []*ProductListResponse {
	responses := make([]*ProductListResponse, 0, len(products))
	for i := range products {
		responses = append(responses, NewProductListResponse(db, &products[i]))
	}
	return responses
}

func NewProductDetailResponse(db *gorm.DB, product *models.Product) *ProductDetailResponse {
	return &ProductDetailResponse{
		ID:            product.ID,
		Name:          product.Name,
		Description:   product.Description,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Discount:      DiscountPercentage(product.Price, product.OriginalPrice),
		Category:      NewCategoryResponse(db, &product.Category),
		Brand:         NewBrandResponse(db, &product.Brand),
		ShopName:      shopName(product),
		ImageURL:      product.ImageURL,
		InStock:       product.InStock(),
		Rating:        product.Rating,
		IsActive:      product.IsActive,
		CreatedAt:     product.CreatedAt,
		Reviews:       NewReviewListResponse(product.Reviews),
		VideoURL:      product.VideoURL,
		ReleaseDate:   product.ReleaseDate,
		Likes:         product.Likes,
		Dislikes:      product.Dislikes,
		Neutrals:      product.Neutrals,
		Views:         product.Views,
		IsBanned:      product.IsBanned,
		Keywords:      product.Keywords,
		Specs:         NewProductSpecificationListResponse(product.Specifications),
	}
}
