// internal/services/specification_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
	"github.com/binc-b/binc-backend/internal/utils"
)

type SpecificationService struct {
	db *gorm.DB
}

type CreateSpecificationRequest struct {
	Name string `json:"name" validate:"required,min=2,max=255"`
}

type SetProductSpecificationRequest struct {
	SpecificationID    uuid.UUID `json:"specification_id" validate:"required"`
	SpecificationValue string    `json:"specification_value" validate:"required"`
}

func NewSpecificationService(db *gorm.DB) *SpecificationService {
	return &SpecificationService{db: db}
}

func (s *SpecificationService) ListSpecifications() ([]models.Specification, error) {
	var specs []models.Specification
	if err := s.db.Order("name asc").Find(&specs).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch specifications: %w", err)
	}
	return specs, nil
}

func (s *SpecificationService) CreateSpecification(req *CreateSpecificationRequest) (*models.Specification, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	spec := &models.Specification{Name: req.Name}
	if err := s.db.Create(spec).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errors.New("specification with this name already exists")
		}
		return nil, fmt.Errorf("failed to create specification: %w", err)
	}

	return spec, nil
}

func (s *SpecificationService) DeleteSpecification(id uuid.UUID) error {
	var spec models.Specification
	if err := s.db.First(&spec, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("specification not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Per-product values go with the vocabulary entry
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("specification_id = ?", id).Delete(&models.ProductSpecification{}).Error; err != nil {
			return fmt.Errorf("failed to delete specification values: %w", err)
		}
		if err := tx.Delete(&spec).Error; err != nil {
			return fmt.Errorf("failed to delete specification: %w", err)
		}
		return nil
	})
}

func (s *SpecificationService) GetProductSpecifications(productID uuid.UUID) ([]models.ProductSpecification, error) {
	var entries []models.ProductSpecification
	err := s.db.Where("product_id = ?", productID).
		Preload("Specification").
		Find(&entries).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product specifications: %w", err)
	}
	return entries, nil
}

// SetProductSpecification creates or updates the value of one specification
// for one product.
func (s *SpecificationService) SetProductSpecification(productID uuid.UUID, req *SetProductSpecificationRequest) (*models.ProductSpecification, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var entry models.ProductSpecification
	err := s.db.Where("product_id = ? AND specification_id = ?", productID, req.SpecificationID).
		First(&entry).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		entry = models.ProductSpecification{
			ProductID:          productID,
			SpecificationID:    req.SpecificationID,
			SpecificationValue: req.SpecificationValue,
		}
		if err := s.db.Create(&entry).Error; err != nil {
			if errors.Is(err, gorm.ErrForeignKeyViolated) {
				return nil, &RelatedObjectError{Field: "specification_id"}
			}
			return nil, fmt.Errorf("failed to create product specification: %w", err)
		}
	case err != nil:
		return nil, fmt.Errorf("database error: %w", err)
	default:
		if err := s.db.Model(&entry).Update("specification_value", req.SpecificationValue).Error; err != nil {
			return nil, fmt.Errorf("failed to update product specification: %w", err)
		}
	}

	s.db.Preload("Specification").First(&entry, entry.ID)

	return &entry, nil
}
