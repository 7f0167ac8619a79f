// internal/services/shop_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
	"github.com/binc-b/binc-backend/internal/utils"
)

type ShopService struct {
	db *gorm.DB
}

type UpsertShopRequest struct {
	Name        string                 `json:"name" validate:"required,min=2,max=255"`
	Address     string                 `json:"address,omitempty"`
	Description string                 `json:"description,omitempty"`
	Logo        string                 `json:"logo,omitempty"`
	Banner      string                 `json:"banner,omitempty"`
	URL         string                 `json:"url,omitempty" validate:"omitempty,url"`
	Phone       string                 `json:"phone,omitempty"`
	Email       string                 `json:"email,omitempty" validate:"omitempty,email"`
	SocialMedia map[string]interface{} `json:"social_media,omitempty"`
}

func NewShopService(db *gorm.DB) *ShopService {
	return &ShopService{db: db}
}

func (s *ShopService) GetShop(id uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	if err := s.db.Preload("Owner").Preload("Owner.User").First(&shop, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("shop not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &shop, nil
}

// GetShopForUser resolves the shop owned by the given user through their
// customer profile.
func (s *ShopService) GetShopForUser(userID uuid.UUID) (*models.Shop, error) {
	var shop models.Shop
	err := s.db.Preload("Owner").Preload("Owner.User").
		Joins("JOIN customers ON customers.id = shops.owner_id").
		Where("customers.user_id = ?", userID).
		First(&shop).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("shop not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &shop, nil
}

// UpsertShopForUser creates the caller's shop on first save and updates it
// afterwards. A customer profile is created on demand for the owner link.
func (s *ShopService) UpsertShopForUser(userID uuid.UUID, req *UpsertShopRequest) (*models.Shop, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var shop *models.Shop
	err := s.db.Transaction(func(tx *gorm.DB) error {
		var customer models.Customer
		if err := tx.Where("user_id = ?", userID).First(&customer).Error; err != nil {
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("database error: %w", err)
			}
			customer = models.Customer{UserID: userID}
			if err := tx.Create(&customer).Error; err != nil {
				return fmt.Errorf("failed to create customer profile: %w", err)
			}
		}

		var existing models.Shop
		err := tx.Where("owner_id = ?", customer.ID).First(&existing).Error
		switch {
		case errors.Is(err, gorm.ErrRecordNotFound):
			existing = models.Shop{OwnerID: &customer.ID}
		case err != nil:
			return fmt.Errorf("database error: %w", err)
		}

		existing.Name = req.Name
		existing.Address = req.Address
		existing.Description = req.Description
		existing.Logo = req.Logo
		existing.Banner = req.Banner
		existing.URL = req.URL
		existing.Phone = req.Phone
		existing.Email = req.Email
		if req.SocialMedia != nil {
			existing.SocialMedia = models.JSONB(req.SocialMedia)
		}

		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to save shop: %w", err)
		}

		shop = &existing
		return nil
	})
	if err != nil {
		return nil, err
	}

	// Reload with owner for the response
	s.db.Preload("Owner").Preload("Owner.User").First(shop, shop.ID)

	return shop, nil
}

// GetShopProducts lists everything the shop sells, inactive included, so
// owners can see their full catalog.
func (s *ShopService) GetShopProducts(id uuid.UUID, params utils.PaginationParams) ([]models.Product, int64, error) {
	if _, err := s.GetShop(id); err != nil {
		return nil, 0, err
	}

	query := s.db.Model(&models.Product{}).
		Where("shop_id = ?", id).
		Preload("Category").Preload("Shop")

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count shop products: %w", err)
	}

	allowedSortFields := []string{"created_at", "name", "price", "rating", "views"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch shop products: %w", err)
	}

	return products, total, nil
}
