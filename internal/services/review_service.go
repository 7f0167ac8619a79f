// internal/services/review_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
	"github.com/binc-b/binc-backend/internal/utils"
)

type ReviewService struct {
	db *gorm.DB
}

type CreateReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,min=1,max=5"`
	Comment string `json:"comment,omitempty" validate:"omitempty,max=2000"`
}

func NewReviewService(db *gorm.DB) *ReviewService {
	return &ReviewService{db: db}
}

func (s *ReviewService) GetProductReviews(productID uuid.UUID, params utils.PaginationParams) ([]models.Review, int64, error) {
	query := s.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Preload("User")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count reviews: %w", err)
	}

	allowedSortFields := []string{"created_at", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var reviews []models.Review
	if err := query.Find(&reviews).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch reviews: %w", err)
	}

	return reviews, total, nil
}

func (s *ReviewService) CreateReview(productID uuid.UUID, userID uuid.UUID, req *CreateReviewRequest) (*models.Review, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, productID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// One review per user per product; later submissions replace the rating
	var review models.Review
	err := s.db.Where("product_id = ? AND user_id = ?", productID, userID).First(&review).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		review = models.Review{
			ProductID: productID,
			UserID:    userID,
			Rating:    req.Rating,
			Comment:   req.Comment,
		}
		if err := s.db.Create(&review).Error; err != nil {
			return nil, fmt.Errorf("failed to create review: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("database error: %w", err)
	default:
		updates := map[string]interface{}{"rating": req.Rating, "comment": req.Comment}
		if err := s.db.Model(&review).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update review: %w", err)
		}
	}

	if err := s.refreshProductRating(productID); err != nil {
		return nil, err
	}

	s.db.Preload("User").First(&review, review.ID)

	return &review, nil
}

// refreshProductRating recomputes the product's stored rating from its
// current review set.
func (s *ReviewService) refreshProductRating(productID uuid.UUID) error {
	var avg float64
	err := s.db.Model(&models.Review{}).
		Where("product_id = ?", productID).
		Select("COALESCE(AVG(rating), 0)").
		Scan(&avg).Error
	if err != nil {
		return fmt.Errorf("failed to compute product rating: %w", err)
	}

	if err := s.db.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("rating", avg).Error; err != nil {
		return fmt.Errorf("failed to update product rating: %w", err)
	}

	return nil
}
