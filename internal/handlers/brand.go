// internal/handlers/brand.go
package handlers

import (
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

type BrandHandler struct {
	db             *gorm.DB
	brandService   *services.BrandService
	productService *services.ProductService
}

func NewBrandHandler(db *gorm.DB, brandService *services.BrandService, productService *services.ProductService) *BrandHandler {
	return &BrandHandler{
		db:             db,
		brandService:   brandService,
		productService: productService,
	}
}

// GET /brands
func (h *BrandHandler) GetBrands(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	brands, total, err := h.brandService.ListBrands(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(serializers.NewBrandListResponse(h.db, brands), total, params)
	utils.PaginatedResponse(c, result)
}

// GET /brands/:id
func (h *BrandHandler) GetBrand(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid brand ID", nil)
		return
	}

	brand, err := h.brandService.GetBrand(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "brand")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"brand": serializers.NewBrandResponse(h.db, brand),
	})
}

// GET /brands/:id/products
func (h *BrandHandler) GetBrandProducts(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid brand ID", nil)
		return
	}

	if _, err := h.brandService.GetBrand(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "brand")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	params := utils.GetPaginationParams(c)

	// Brand pages list the whole catalog, inactive products included
	searchParams := services.ProductSearchParams{
		PaginationParams: params,
		BrandID:          &id,
		IncludeInactive:  true,
	}

	products, total, err := h.productService.SearchProducts(searchParams)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(serializers.NewProductListResponses(h.db, products), total, params)
	utils.PaginatedResponse(c, result)
}

// POST /brands (admin)
func (h *BrandHandler) CreateBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	brand, err := h.brandService.CreateBrand(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBrandCreated),
		"brand":   serializers.NewBrandResponse(h.db, brand),
	})
}

// PUT /brands/:id (admin)
func (h *BrandHandler) UpdateBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid brand ID", nil)
		return
	}

	var req services.UpdateBrandRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	brand, err := h.brandService.UpdateBrand(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "brand")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyBrandUpdated),
		"brand":   serializers.NewBrandResponse(h.db, brand),
	})
}

// POST /brands/:id/reactions
func (h *BrandHandler) ReactToBrand(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid brand ID", nil)
		return
	}

	var req struct {
		Reaction models.Reaction `json:"reaction" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if err := h.brandService.ReactToBrand(id, req.Reaction); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "brand")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyProductReaction),
	})
}
