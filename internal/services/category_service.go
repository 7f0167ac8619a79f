// internal/services/category_service.go
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

type CategoryService struct {
	db *gorm.DB
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=255"`
	Description string `json:"description"`
}

type UpdateCategoryRequest struct {
	Name        string `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description string `json:"description,omitempty"`
}

func NewCategoryService(db *gorm.DB) *CategoryService {
	return &CategoryService{db: db}
}

func (s *CategoryService) ListCategories(params utils.PaginationParams) ([]models.Category, int64, error) {
	query := s.db.Model(&models.Category{})

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ?", searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count categories: %w", err)
	}

	allowedSortFields := []string{"created_at", "name"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var categories []models.Category
	if err := query.Find(&categories).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch categories: %w", err)
	}

	return categories, total, nil
}

func (s *CategoryService) GetCategory(id uuid.UUID) (*models.Category, error) {
	var category models.Category
	if err := s.db.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("category not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &category, nil
}

func (s *CategoryService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category := &models.Category{
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.db.Create(category).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("category with this name already exists")
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

func (s *CategoryService) UpdateCategory(id uuid.UUID, req *UpdateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	category, err := s.GetCategory(id)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, fmt.Errorf("failed to update category: %w", err)
		}
	}

	return category, nil
}

func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	category, err := s.GetCategory(id)
	if err != nil {
		return err
	}

	// Categories with products are reference data; refuse to orphan them
	var productCount int64
	if err := s.db.Model(&models.Product{}).Where("category_id = ?", id).Count(&productCount).Error; err != nil {
		return fmt.Errorf("failed to check category products: %w", err)
	}
	if productCount > 0 {
		return errors.New("cannot delete category with products")
	}

	if err := s.db.Delete(category).Error; err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}

	return nil
}

// GetCategoryProducts lists a category's active products only, matching the
// category product count rule.
func (s *CategoryService) GetCategoryProducts(id uuid.UUID, params utils.PaginationParams) ([]models.Product, int64, error) {
	if _, err := s.GetCategory(id); err != nil {
		return nil, 0, err
	}

	query := s.db.Model(&models.Product{}).
		Where("category_id = ? AND is_active = ?", id, true).
		Preload("Category").Preload("Shop")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count category products: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "price", "rating", "views"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch category products: %w", err)
	}

	return products, total, nil
}
