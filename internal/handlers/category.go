// internal/handlers/category.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/i18n"
	"github.com/binc-b/binc-backend/internal/serializers"
	"github.com/binc-b/binc-backend/internal/services"
	"github.com/binc-b/binc-backend/internal/utils"
)

type CategoryHandler struct {
	db              *gorm.DB
	categoryService *services.CategoryService
}

func NewCategoryHandler(db *gorm.DB, categoryService *services.CategoryService) *CategoryHandler {
	return &CategoryHandler{
		db:              db,
		categoryService: categoryService,
	}
}

// GET /categories
func (h *CategoryHandler) GetCategories(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	categories, total, err := h.categoryService.ListCategories(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(serializers.NewCategoryListResponse(h.db, categories), total, params)
	utils.PaginatedResponse(c, result)
}

// GET /categories/:id
func (h *CategoryHandler) GetCategory(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	category, err := h.categoryService.GetCategory(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "category")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"category": serializers.NewCategoryResponse(h.db, category),
	})
}

// GET /categories/:id/products
func (h *CategoryHandler) GetCategoryProducts(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	params := utils.GetPaginationParams(c)

	products, total, err := h.categoryService.GetCategoryProducts(id, params)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "category")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(serializers.NewProductListResponses(h.db, products), total, params)
	utils.PaginatedResponse(c, result)
}

// POST /categories (admin)
func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	category, err := h.categoryService.CreateCategory(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCategoryCreated),
		"category": serializers.NewCategoryResponse(h.db, category),
	})
}

// PUT /categories/:id (admin)
func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	var req services.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(id, &req)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "category")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":  i18n.T(lang, i18n.KeyCategoryUpdated),
		"category": serializers.NewCategoryResponse(h.db, category),
	})
}

// DELETE /categories/:id (admin)
func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid category ID", nil)
		return
	}

	if err := h.categoryService.DeleteCategory(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "category")
			return
		}
		if strings.Contains(err.Error(), "cannot delete") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyCategoryDeleted),
	})
}
