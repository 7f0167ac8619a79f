// internal/handlers/product.go
package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/i18n"
	"github.com/binc-b/binc-backend/internal/models"
	"github.com/binc-b/binc-backend/internal/serializers"
	"github.com/binc-b/binc-backend/internal/services"
	"github.com/binc-b/binc-backend/internal/utils"
)

type ProductHandler struct {
	db             *gorm.DB
	productService *services.ProductService
	storageService *services.StorageService
}

func NewProductHandler(db *gorm.DB, productService *services.ProductService, storageService *services.StorageService) *ProductHandler {
	return &ProductHandler{
		db:             db,
		productService: productService,
		storageService: storageService,
	}
}

// GET /products
func (h *ProductHandler) GetProducts(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	searchParams := services.ProductSearchParams{
		PaginationParams: params,
	}

	if categoryIDStr := c.Query("category_id"); categoryIDStr != "" {
		if categoryID, err := uuid.Parse(categoryIDStr); err == nil {
			searchParams.CategoryID = &categoryID
		}
	}

	if brandIDStr := c.Query("brand_id"); brandIDStr != "" {
		if brandID, err := uuid.Parse(brandIDStr); err == nil {
			searchParams.BrandID = &brandID
		}
	}

	if shopIDStr := c.Query("shop_id"); shopIDStr != "" {
		if shopID, err := uuid.Parse(shopIDStr); err == nil {
			searchParams.ShopID = &shopID
		}
	}

	if priceMinStr := c.Query("price_min"); priceMinStr != "" {
		if priceMin, err := strconv.ParseFloat(priceMinStr, 64); err == nil {
			searchParams.PriceMin = &priceMin
		}
	}

	if priceMaxStr := c.Query("price_max"); priceMaxStr != "" {
		if priceMax, err := strconv.ParseFloat(priceMaxStr, 64); err == nil {
			searchParams.PriceMax = &priceMax
		}
	}

	if inStockStr := c.Query("in_stock"); inStockStr != "" {
		if inStock, err := strconv.ParseBool(inStockStr); err == nil {
			searchParams.InStock = &inStock
		}
	}

	// Admins may browse the full catalog, inactive products included
	if includeInactiveStr := c.Query("include_inactive"); includeInactiveStr != "" {
		if userType, ok := utils.GetUserTypeFromContext(c); ok && userType == string(models.UserTypeAdmin) {
			if includeInactive, err := strconv.ParseBool(includeInactiveStr); err == nil {
				searchParams.IncludeInactive = includeInactive
			}
		}
	}

	products, total, err := h.productService.SearchProducts(searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(serializers.NewProductListResponses(h.db, products), total, params)
	utils.PaginatedResponse(c, result)
}

// POST /products
func (h *ProductHandler) CreateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	// The payload stays untyped through normalization; typed binding
	// happens inside the service after brand_id is rewritten.
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.productService.CreateProduct(userID, h.isAdmin(c), payload)
	if err != nil {
		h.writeProductError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductCreated),
		"product": serializers.NewProductDetailResponse(h.db, product),
	})
}

// GET /products/:id
func (h *ProductHandler) GetProduct(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var viewerID *uuid.UUID
	if userIDStr, exists := utils.GetUserIDFromContext(c); exists {
		if uid, err := uuid.Parse(userIDStr); err == nil {
			viewerID = &uid
		}
	}

	product, err := h.productService.GetProduct(id, viewerID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"product": serializers.NewProductDetailResponse(h.db, product),
	})
}

// PUT /products/:id
func (h *ProductHandler) UpdateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(id, userID, h.isAdmin(c), payload)
	if err != nil {
		h.writeProductError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
		"product": serializers.NewProductDetailResponse(h.db, product),
	})
}

// DELETE /products/:id
func (h *ProductHandler) DeactivateProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	if err := h.productService.DeactivateProduct(id, userID, h.isAdmin(c)); err != nil {
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductDeactivated),
	})
}

// POST /products/:id/ban (admin)
func (h *ProductHandler) BanProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Banned *bool `json:"banned" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.productService.BanProduct(id, *req.Banned); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductBanned),
	})
}

// POST /products/:id/reactions
func (h *ProductHandler) ReactToProduct(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req struct {
		Reaction models.Reaction `json:"reaction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.productService.React(id, req.Reaction); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductReaction),
	})
}

// PUT /products/:id/stock
func (h *ProductHandler) SetStock(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return
	}

	var req struct {
		Stock *int `json:"stock" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.productService.SetStock(id, userID, h.isAdmin(c), *req.Stock); err != nil {
		if strings.Contains(err.Error(), "unauthorized") {
			utils.ForbiddenResponse(c, err.Error())
			return
		}
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "product")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductUpdated),
	})
}

// GET /products/popular
func (h *ProductHandler) GetPopularProducts(c *gin.Context) {
	limitStr := c.DefaultQuery("limit", "10")
	limit, err := strconv.Atoi(limitStr)
	if err != nil || limit < 1 || limit > 50 {
		limit = 10
	}

	products, err := h.productService.GetPopularProducts(limit)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"products": serializers.NewProductListResponses(h.db, products),
	})
}

// POST /products/upload-images
func (h *ProductHandler) UploadProductImages(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	_, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	files := form.File["images"]
	if len(files) == 0 {
		utils.BadRequestResponse(c, "No images uploaded", nil)
		return
	}

	var uploadedImages []map[string]interface{}
	options := h.storageService.GetDefaultUploadOptions("products")

	for _, fileHeader := range files {
		file, err := fileHeader.Open()
		if err != nil {
			continue
		}

		if err := h.storageService.ValidateImage(file); err != nil {
			file.Close()
			continue
		}

		result, err := h.storageService.UploadFile(file, fileHeader, options)
		file.Close()

		if err != nil {
			continue
		}

		uploadedImages = append(uploadedImages, map[string]interface{}{
			"url":       result.URL,
			"key":       result.Key,
			"size":      result.Size,
			"mime_type": result.MimeType,
		})
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"images":  uploadedImages,
	})
}

func (h *ProductHandler) isAdmin(c *gin.Context) bool {
	userType, ok := utils.GetUserTypeFromContext(c)
	return ok && userType == string(models.UserTypeAdmin)
}

// writeProductError maps the service's write pipeline errors onto the
// response envelope. A missing reference is a validation error naming the
// offending field.
func (h *ProductHandler) writeProductError(c *gin.Context, err error) {
	lang := utils.GetLangFromContext(c)

	var relErr *services.RelatedObjectError
	if errors.As(err, &relErr) {
		utils.ValidationErrorResponse(c, []utils.ValidationError{{
			Field:   relErr.Field,
			Tag:     "exists",
			Message: i18n.T(lang, i18n.KeyValidationRelatedObject, relErr.Field),
		}})
		return
	}

	if strings.Contains(err.Error(), "unauthorized") {
		utils.ForbiddenResponse(c, err.Error())
		return
	}
	if strings.Contains(err.Error(), "not found") {
		utils.NotFoundResponse(c, "product")
		return
	}
	utils.BadRequestResponse(c, err.Error(), nil)
}
