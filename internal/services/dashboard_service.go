// internal/services/dashboard_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
)

type DashboardService struct {
	db *gorm.DB
}

func NewDashboardService(db *gorm.DB) *DashboardService {
	return &DashboardService{db: db}
}

// GetShopDashboard aggregates display statistics for a shop owner's
// dashboard. The numbers are advisory and computed live.
func (s *DashboardService) GetShopDashboard(userID uuid.UUID) (map[string]interface{}, error) {
	var shop models.Shop
	err := s.db.
		Joins("JOIN customers ON customers.id = shops.owner_id").
		Where("customers.user_id = ?", userID).
		First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("shop not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	var totalProducts, activeProducts int64
	s.db.Model(&models.Product{}).Where("shop_id = ?", shop.ID).Count(&totalProducts)
	s.db.Model(&models.Product{}).Where("shop_id = ? AND is_active = ?", shop.ID, true).Count(&activeProducts)

	var engagement struct {
		TotalViews    int64   `json:"total_views"`
		TotalLikes    int64   `json:"total_likes"`
		TotalDislikes int64   `json:"total_dislikes"`
		AvgRating     float64 `json:"avg_rating"`
	}
	s.db.Model(&models.Product{}).
		Where("shop_id = ?", shop.ID).
		Select("COALESCE(SUM(views), 0) AS total_views, COALESCE(SUM(likes), 0) AS total_likes, COALESCE(SUM(dislikes), 0) AS total_dislikes, COALESCE(AVG(rating), 0) AS avg_rating").
		Scan(&engagement)

	var reviewCount int64
	s.db.Model(&models.Review{}).
		Joins("JOIN products ON products.id = reviews.product_id").
		Where("products.shop_id = ?", shop.ID).
		Count(&reviewCount)

	var outOfStock int64
	s.db.Model(&models.Product{}).Where("shop_id = ? AND stock = 0", shop.ID).Count(&outOfStock)

	return map[string]interface{}{
		"shop_id":         shop.ID,
		"total_products":  totalProducts,
		"active_products": activeProducts,
		"out_of_stock":    outOfStock,
		"total_views":     engagement.TotalViews,
		"total_likes":     engagement.TotalLikes,
		"total_dislikes":  engagement.TotalDislikes,
		"avg_rating":      engagement.AvgRating,
		"total_reviews":   reviewCount,
	}, nil
}

// GetPlatformStats is the public counters endpoint.
func (s *DashboardService) GetPlatformStats() map[string]interface{} {
	var users, shops, products, brands, categories, reviews int64
	s.db.Model(&models.User{}).Count(&users)
	s.db.Model(&models.Shop{}).Count(&shops)
	s.db.Model(&models.Product{}).Where("is_active = ?", true).Count(&products)
	s.db.Model(&models.Brand{}).Count(&brands)
	s.db.Model(&models.Category{}).Count(&categories)
	s.db.Model(&models.Review{}).Count(&reviews)

	return map[string]interface{}{
		"total_users":      users,
		"total_shops":      shops,
		"active_products":  products,
		"total_brands":     brands,
		"total_categories": categories,
		"total_reviews":    reviews,
	}
}
