// internal/services/brand_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
	"github.com/binc-b/binc-backend/internal/utils"
)

type BrandService struct {
	db *gorm.DB
}

type CreateBrandRequest struct {
	Name       string  `json:"name" validate:"required,min=2,max=255"`
	LegacyID   *int    `json:"legacy_id,omitempty" validate:"omitempty,min=1"`
	Popularity int     `json:"popularity" validate:"omitempty,min=0"`
	Rating     float64 `json:"rating" validate:"omitempty,min=0,max=5"`
}

type UpdateBrandRequest struct {
	Name       string   `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Popularity *int     `json:"popularity,omitempty" validate:"omitempty,min=0"`
	Rating     *float64 `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
}

func NewBrandService(db *gorm.DB) *BrandService {
	return &BrandService{db: db}
}

func (s *BrandService) ListBrands(params utils.PaginationParams) ([]models.Brand, int64, error) {
	query := s.db.Model(&models.Brand{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count brands: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "popularity", "rating"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var brands []models.Brand
	if err := query.Find(&brands).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch brands: %w", err)
	}

	return brands, total, nil
}

func (s *BrandService) GetBrand(id uuid.UUID) (*models.Brand, error) {
	var brand models.Brand
	if err := s.db.First(&brand, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("brand not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &brand, nil
}

func (s *BrandService) CreateBrand(req *CreateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brand := &models.Brand{
		Name:       req.Name,
		LegacyID:   req.LegacyID,
		Popularity: req.Popularity,
		Rating:     req.Rating,
	}

	if err := s.db.Create(brand).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("brand with this name or legacy id already exists")
		}
		return nil, fmt.Errorf("failed to create brand: %w", err)
	}

	return brand, nil
}

func (s *BrandService) UpdateBrand(id uuid.UUID, req *UpdateBrandRequest) (*models.Brand, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brand, err := s.GetBrand(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Popularity != nil {
		updates["popularity"] = *req.Popularity
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}

	if len(updates) > 0 {
		if err := s.db.Model(brand).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update brand: %w", err)
		}
	}

	return brand, nil
}

// ReactToBrand bumps a brand's like or dislike counter atomically.
func (s *BrandService) ReactToBrand(id uuid.UUID, reaction models.Reaction) error {
	var column string
	switch reaction {
	case models.ReactionLike:
		column = "likes"
	case models.ReactionDislike:
		column = "dislikes"
	default:
		return fmt.Errorf("unknown reaction %q", reaction)
	}

	result := s.db.Model(&models.Brand{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to record reaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("brand not found")
	}
	return nil
}
