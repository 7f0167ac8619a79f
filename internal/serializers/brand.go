// internal/serializers/brand.go
package serializers

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
)

type BrandResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Popularity   int       `json:"popularity"`
	Rating       float64   `json:"rating"`
	Likes        int64     `json:"likes"`
	Dislikes     int64     `json:"dislikes"`
	ProductCount int64     `json:"product_count"`
}

// BrandProductCount counts every product of the brand, inactive ones
// included. Do not replace this with the category rule: brand pages show
// the full catalog size while category pages only show what is buyable.
func BrandProductCount(db *gorm.DB, brandID uuid.UUID) int64 {
	var count int64
	db.Model(&models.Product{}).
		Where("brand_id = ?", brandID).
		Count(&count)
	return count
}

func NewBrandResponse(db *gorm.DB, brand *models.Brand) *BrandResponse {
	return &BrandResponse{
		ID:           brand.ID,
		Name:         brand.Name,
		Popularity:   brand.Popularity,
		Rating:       brand.Rating,
		Likes:        brand.Likes,
		Dislikes:     brand.Dislikes,
		ProductCount: BrandProductCount(db, brand.ID),
	}
}

func NewBrandListResponse(db *gorm.DB, brands []models.Brand) []*BrandResponse {
	responses := make([]*BrandResponse, 0, len(brands))
	for i := range brands {
		responses = append(responses, NewBrandResponse(db, &brands[i]))
	}
	return responses
}
