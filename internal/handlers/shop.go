// internal/handlers/shop.go
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

type ShopHandler struct {
	db             *gorm.DB
	shopService    *services.ShopService
	storageService *services.StorageService
}

func NewShopHandler(db *gorm.DB, shopService *services.ShopService, storageService *services.StorageService) *ShopHandler {
	return &ShopHandler{
		db:             db,
		shopService:    shopService,
		storageService: storageService,
	}
}

// GET /shops/:id
func (h *ShopHandler) GetShop(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid shop ID", nil)
		return
	}

	shop, err := h.shopService.GetShop(id)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "shop")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"shop": serializers.NewShopResponse(h.db, shop),
	})
}

// GET /shops/:id/products
func (h *ShopHandler) GetShopProducts(c *gin.Context) {
	idStr := c.Param("id")
	id, err := uuid.Parse(idStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid shop ID", nil)
		return
	}

	params := utils.GetPaginationParams(c)

	products, total, err := h.shopService.GetShopProducts(id, params)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "shop")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(serializers.NewProductListResponses(h.db, products), total, params)
	utils.PaginatedResponse(c, result)
}

// GET /shops/mine
func (h *ShopHandler) GetMyShop(c *gin.Context) {
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	shop, err := h.shopService.GetShopForUser(userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "shop")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"shop": serializers.NewShopResponse(h.db, shop),
	})
}

// PUT /shops/mine
func (h *ShopHandler) UpsertMyShop(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	userID, ok := h.currentUserID(c)
	if !ok {
		return
	}

	var req services.UpsertShopRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	shop, err := h.shopService.UpsertShopForUser(userID, &req)
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyShopUpdated),
		"shop":    serializers.NewShopResponse(h.db, shop),
	})
}

// POST /shops/mine/media
func (h *ShopHandler) UploadShopMedia(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	if _, ok := h.currentUserID(c); !ok {
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}
	defer file.Close()

	if err := h.storageService.ValidateImage(file); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	options := h.storageService.GetDefaultUploadOptions("shops")
	result, err := h.storageService.UploadFile(file, fileHeader, options)
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyFileUploadFailed), err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
		"file": gin.H{
			"url":       result.URL,
			"key":       result.Key,
			"size":      result.Size,
			"mime_type": result.MimeType,
		},
	})
}

func (h *ShopHandler) currentUserID(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	userID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return uuid.Nil, false
	}

	return userID, true
}
