// internal/serializers/category.go
package serializers

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
)

type CategoryResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	Description  string    `json:"description"`
	ProductCount int64     `json:"product_count"`
}

// ActiveProductCount counts the category's products with is_active = true.
// Inactive products are hidden from category listings, so they are excluded
// here. Brand counts follow a different rule, see BrandProductCount.
func ActiveProductCount(db *gorm.DB, categoryID uuid.UUID) int64 {
	var count int64
	db.Model(&models.Product{}).
		Where("category_id = ? AND is_active = ?", categoryID, true).
		Count(&count)
	return count
}

func NewCategoryResponse(db *gorm.DB, category *models.Category) *CategoryResponse {
	return &CategoryResponse{
		ID:           category.ID,
		Name:         category.Name,
		Description:  category.Description,
		ProductCount: ActiveProductCount(db, category.ID),
	}
}

func NewCategoryListResponse(db *gorm.DB, categories []models.Category) []*CategoryResponse {
	responses := make([]*CategoryResponse, 0, len(categories))
	for i := range categories {
		responses = append(responses, NewCategoryResponse(db, &categories[i]))
	}
	return responses
}
