// internal/handlers/specification.go
package handlers

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/binc-b/binc-backend/internal/i18n"
	"github.com/binc-b/binc-backend/internal/serializers"
	"github.com/binc-b/binc-backend/internal/services"
	"github.com/binc-b/binc-backend/internal/utils"
)

type SpecificationHandler struct {
	specService *services.SpecificationService
}

func NewSpecificationHandler(specService *services.SpecificationService) *SpecificationHandler {
	return &SpecificationHandler{specService: specService}
}

// GET /specifications
func (h *SpecificationHandler) GetSpecifications(c *gin.Context) {
	specs, err := h.specService.ListSpecifications()
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"specifications": serializers.NewSpecificationListResponse(specs),
	})
}

// POST /specifications (admin)
func (h *SpecificationHandler) CreateSpecification(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.CreateSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	spec, err := h.specService.CreateSpecification(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already exists") {
			utils.ConflictResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message":       i18n.T(lang, i18n.KeySpecificationCreated),
		"specification": serializers.NewSpecificationResponse(spec),
	})
}

// DELETE /specifications/:id (admin)
func (h *SpecificationHandler) DeleteSpecification(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid specification ID", nil)
		return
	}

	if err := h.specService.DeleteSpecification(id); err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "specification")
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(utils.GetLangFromContext(c), i18n.KeySuccess),
	})
}

// GET /products/:id/specifications
func (h *SpecificationHandler) GetProductSpecifications(c *gin.Context) {
	idStr := c.Param("id")
	productID, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	entries, err := h.specService.GetProductSpecifications(productID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"specifications": serializers.NewProductSpecificationListResponse(entries),
	})
}

// PUT /products/:id/specifications
func (h *SpecificationHandler) SetProductSpecification(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	idStr := c.Param("id")
	productID, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	var req services.SetProductSpecificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	entry, err := h.specService.SetProductSpecification(productID, &req)
	if err != nil {
		var relErr *services.RelatedObjectError
		if errors.As(err, &relErr) {
			utils.ValidationErrorResponse(c, []utils.ValidationError{{
				Field:   relErr.Field,
				Tag:     "exists",
				Message: i18n.T(lang, i18n.KeyValidationRelatedObject, relErr.Field),
			}})
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message":       i18n.T(lang, i18n.KeySpecificationValueSet),
		"specification": serializers.NewProductSpecificationResponse(entry),
	})
}
