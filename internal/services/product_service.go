// internal/services/product_service.go
package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
	"github.com/binc-b/binc-backend/internal/serializers"
	"github.com/binc-b/binc-backend/internal/utils"
)

type ProductService struct {
	db *gorm.DB
}

// CreateProductRequest is the typed shape a write payload must decode into
// after brand_id normalization. BrandID stays a string here: an unresolved
// value must reach the persistence stage and fail there as a related-object
// error rather than as a parse error.
type CreateProductRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=255"`
	Description   string     `json:"description"`
	Price         float64    `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64   `json:"original_price" validate:"omitempty,gt=0"`
	CategoryID    uuid.UUID  `json:"category_id" validate:"required"`
	BrandID       string     `json:"brand_id" validate:"required"`
	ShopID        *uuid.UUID `json:"shop_id"`
	ImageURL      string     `json:"image_url"`
	VideoURL      string     `json:"video_url"`
	ReleaseDate   *time.Time `json:"release_date"`
	Keywords      []string   `json:"keywords"`
	Rating        float64    `json:"rating" validate:"omitempty,min=0,max=5"`
	IsActive      *bool      `json:"is_active"`
}

type UpdateProductRequest struct {
	Name          string     `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description   string     `json:"description,omitempty"`
	Price         float64    `json:"price,omitempty" validate:"omitempty,gt=0"`
	OriginalPrice *float64   `json:"original_price,omitempty" validate:"omitempty,gt=0"`
	CategoryID    *uuid.UUID `json:"category_id,omitempty"`
	BrandID       string     `json:"brand_id,omitempty"`
	ImageURL      string     `json:"image_url,omitempty"`
	VideoURL      string     `json:"video_url,omitempty"`
	ReleaseDate   *time.Time `json:"release_date,omitempty"`
	Keywords      []string   `json:"keywords,omitempty"`
	Rating        *float64   `json:"rating,omitempty" validate:"omitempty,min=0,max=5"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

type ProductSearchParams struct {
	utils.PaginationParams
	CategoryID      *uuid.UUID `json:"category_id,omitempty"`
	BrandID         *uuid.UUID `json:"brand_id,omitempty"`
	ShopID          *uuid.UUID `json:"shop_id,omitempty"`
	PriceMin        *float64   `json:"price_min,omitempty"`
	PriceMax        *float64   `json:"price_max,omitempty"`
	InStock         *bool      `json:"in_stock,omitempty"`
	IncludeInactive bool       `json:"include_inactive,omitempty"`
}

func NewProductService(db *gorm.DB) *ProductService {
	return &ProductService{db: db}
}

// CreateProduct runs the two-stage write pipeline: best-effort brand_id
// normalization on the raw payload first, then validation and persistence.
// The transient stock key is discarded before the insert; product stock is
// managed by inventory updates, never through this path.
func (s *ProductService) CreateProduct(userID uuid.UUID, isAdmin bool, payload map[string]interface{}) (*models.Product, error) {
	serializers.NormalizeBrandID(s.db, payload)

	delete(payload, "stock")

	var req CreateProductRequest
	if err := decodePayload(payload, &req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	brandID, err := uuid.Parse(req.BrandID)
	if err != nil {
		// Normalization left the value as-is; reject it the same way a
		// missing row is rejected.
		return nil, &RelatedObjectError{Field: "brand_id"}
	}

	shopID := req.ShopID
	if shopID == nil && !isAdmin {
		shopID = s.shopIDForUser(userID)
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		CategoryID:    req.CategoryID,
		BrandID:       brandID,
		ShopID:        shopID,
		ImageURL:      req.ImageURL,
		VideoURL:      req.VideoURL,
		ReleaseDate:   req.ReleaseDate,
		Keywords:      req.Keywords,
		Rating:        req.Rating,
		IsActive:      isActive,
	}

	if err := s.db.Create(product).Error; err != nil {
		return nil, s.translateWriteError(err, product)
	}

	// Load relationships
	s.db.Preload("Category").Preload("Brand").Preload("Shop").First(product, product.ID)

	return product, nil
}

func (s *ProductService) GetProduct(id uuid.UUID, viewerID *uuid.UUID) (*models.Product, error) {
	var product models.Product
	query := s.db.Preload("Category").Preload("Brand").Preload("Shop").
		Preload("Reviews").Preload("Reviews.User").
		Preload("Specifications").Preload("Specifications.Specification")

	if err := query.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Owners browsing their own catalog do not inflate the view counter
	if viewerID == nil || !s.ownsProduct(*viewerID, &product) {
		go s.incrementViewCount(id)
	}

	return &product, nil
}

func (s *ProductService) UpdateProduct(id uuid.UUID, userID uuid.UUID, isAdmin bool, payload map[string]interface{}) (*models.Product, error) {
	serializers.NormalizeBrandID(s.db, payload)

	delete(payload, "stock")

	var req UpdateProductRequest
	if err := decodePayload(payload, &req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := utils.ValidateStruct(&req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New("product not found")
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && !s.ownsProduct(userID, &product) {
		return nil, errors.New("unauthorized to update this product")
	}

	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.OriginalPrice != nil {
		updates["original_price"] = *req.OriginalPrice
	}
	if req.CategoryID != nil {
		updates["category_id"] = *req.CategoryID
		product.CategoryID = *req.CategoryID
	}
	if req.BrandID != "" {
		brandID, err := uuid.Parse(req.BrandID)
		if err != nil {
			return nil, &RelatedObjectError{Field: "brand_id"}
		}
		updates["brand_id"] = brandID
		product.BrandID = brandID
	}
	if req.ImageURL != "" {
		updates["image_url"] = req.ImageURL
	}
	if req.VideoURL != "" {
		updates["video_url"] = req.VideoURL
	}
	if req.ReleaseDate != nil {
		updates["release_date"] = *req.ReleaseDate
	}
	if req.Keywords != nil {
		updates["keywords"] = pq.StringArray(req.Keywords)
	}
	if req.Rating != nil {
		updates["rating"] = *req.Rating
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}

	if len(updates) > 0 {
		if err := s.db.Model(&product).Updates(updates).Error; err != nil {
			return nil, s.translateWriteError(err, &product)
		}
	}

	// Reload with relationships
	s.db.Preload("Category").Preload("Brand").Preload("Shop").First(&product, id)

	return &product, nil
}

// DeactivateProduct soft-disables a product via its is_active flag.
// Products are never hard-deleted through the API.
func (s *ProductService) DeactivateProduct(id uuid.UUID, userID uuid.UUID, isAdmin bool) error {
	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && !s.ownsProduct(userID, &product) {
		return errors.New("unauthorized to deactivate this product")
	}

	if err := s.db.Model(&product).Update("is_active", false).Error; err != nil {
		return fmt.Errorf("failed to deactivate product: %w", err)
	}

	return nil
}

// BanProduct flags a product as banned and takes it off the listings.
func (s *ProductService) BanProduct(id uuid.UUID, banned bool) error {
	result := s.db.Model(&models.Product{}).Where("id = ?", id).
		Updates(map[string]interface{}{"is_banned": banned, "is_active": !banned})
	if result.Error != nil {
		return fmt.Errorf("failed to update ban state: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found")
	}
	return nil
}

// React bumps one of the reaction counters atomically.
func (s *ProductService) React(id uuid.UUID, reaction models.Reaction) error {
	var column string
	switch reaction {
	case models.ReactionLike:
		column = "likes"
	case models.ReactionDislike:
		column = "dislikes"
	case models.ReactionNeutral:
		column = "neutrals"
	default:
		return fmt.Errorf("unknown reaction %q", reaction)
	}

	result := s.db.Model(&models.Product{}).Where("id = ?", id).
		UpdateColumn(column, gorm.Expr(column+" + 1"))
	if result.Error != nil {
		return fmt.Errorf("failed to record reaction: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("product not found")
	}
	return nil
}

func (s *ProductService) SearchProducts(params ProductSearchParams) ([]models.Product, int64, error) {
	query := s.db.Model(&models.Product{}).
		Preload("Category").Preload("Shop")

	if !params.IncludeInactive {
		query = query.Where("is_active = ? AND is_banned = ?", true, false)
	}

	if params.CategoryID != nil {
		query = query.Where("category_id = ?", *params.CategoryID)
	}

	if params.BrandID != nil {
		query = query.Where("brand_id = ?", *params.BrandID)
	}

	if params.ShopID != nil {
		query = query.Where("shop_id = ?", *params.ShopID)
	}

	if params.Search != "" {
		searchTerm := "%" + strings.ToLower(params.Search) + "%"
		query = query.Where("LOWER(name) LIKE ? OR LOWER(description) LIKE ?", searchTerm, searchTerm)
	}

	if params.PriceMin != nil {
		query = query.Where("price >= ?", *params.PriceMin)
	}

	if params.PriceMax != nil {
		query = query.Where("price <= ?", *params.PriceMax)
	}

	if params.InStock != nil && *params.InStock {
		query = query.Where("stock > 0")
	}

	// Get total count
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	// Apply sorting
	allowedSortFields := []string{"created_at", "updated_at", "name", "price", "rating", "views", "likes"}
	query = utils.ApplySort(query, params.PaginationParams, allowedSortFields)

	// Apply pagination
	query = utils.ApplyPagination(query, params.PaginationParams)

	// Execute query
	var products []models.Product
	if err := query.Find(&products).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch products: %w", err)
	}

	return products, total, nil
}

func (s *ProductService) GetPopularProducts(limit int) ([]models.Product, error) {
	var products []models.Product
	if err := s.db.Where("is_active = ? AND is_banned = ?", true, false).
		Order("views DESC, likes DESC, rating DESC").
		Limit(limit).
		Preload("Category").Preload("Shop").
		Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch popular products: %w", err)
	}

	return products, nil
}

// SetStock adjusts the storage-internal inventory counter.
func (s *ProductService) SetStock(id uuid.UUID, userID uuid.UUID, isAdmin bool, stock int) error {
	if stock < 0 {
		return errors.New("stock cannot be negative")
	}

	var product models.Product
	if err := s.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("product not found")
		}
		return fmt.Errorf("database error: %w", err)
	}

	if !isAdmin && !s.ownsProduct(userID, &product) {
		return errors.New("unauthorized to update stock for this product")
	}

	if err := s.db.Model(&product).UpdateColumn("stock", stock).Error; err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	return nil
}

// Helper methods

func (s *ProductService) translateWriteError(err error, product *models.Product) error {
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return &RelatedObjectError{Field: s.missingReferenceField(product)}
	}
	return fmt.Errorf("failed to save product: %w", err)
}

// missingReferenceField identifies which reference a foreign key violation
// came from, so the validation error can name the offending field.
func (s *ProductService) missingReferenceField(product *models.Product) string {
	var count int64
	s.db.Model(&models.Brand{}).Where("id = ?", product.BrandID).Count(&count)
	if count == 0 {
		return "brand_id"
	}

	s.db.Model(&models.Category{}).Where("id = ?", product.CategoryID).Count(&count)
	if count == 0 {
		return "category_id"
	}

	if product.ShopID != nil {
		s.db.Model(&models.Shop{}).Where("id = ?", *product.ShopID).Count(&count)
		if count == 0 {
			return "shop_id"
		}
	}

	return "brand_id"
}

func (s *ProductService) ownsProduct(userID uuid.UUID, product *models.Product) bool {
	if product.ShopID == nil {
		return false
	}

	var count int64
	s.db.Model(&models.Shop{}).
		Joins("JOIN customers ON customers.id = shops.owner_id").
		Where("shops.id = ? AND customers.user_id = ?", *product.ShopID, userID).
		Count(&count)
	return count > 0
}

func (s *ProductService) shopIDForUser(userID uuid.UUID) *uuid.UUID {
	var shop models.Shop
	err := s.db.
		Joins("JOIN customers ON customers.id = shops.owner_id").
		Where("customers.user_id = ?", userID).
		First(&shop).Error
	if err != nil {
		return nil
	}
	return &shop.ID
}

func (s *ProductService) incrementViewCount(productID uuid.UUID) {
	s.db.Model(&models.Product{}).Where("id = ?", productID).
		UpdateColumn("views", gorm.Expr("views + 1"))
}

// decodePayload round-trips an untyped payload through JSON into a typed
// request struct, so binding behaves exactly like direct JSON binding.
func decodePayload(payload map[string]interface{}, out interface{}) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, out)
}
