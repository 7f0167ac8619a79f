// internal/handlers/auth.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/binc-b/binc-backend/internal/i18n"
	"github.com/binc-b/binc-backend/internal/serializers"
	"github.com/binc-b/binc-backend/internal/services"
	"github.com/binc-b/binc-backend/internal/utils"
)

type AuthHandler struct {
	authService *services.AuthService
}

func NewAuthHandler(authService *services.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	authResponse, err := h.authService.Register(&req)
	if err != nil {
		if strings.Contains(err.Error(), "already") {
			utils.ConflictResponse(c, i18n.T(lang, i18n.KeyAuthUserExists))
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthRegisterSuccess),
		"auth":    authResponse,
	})
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req services.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	authResponse, err := h.authService.Login(&req)
	if err != nil {
		if strings.Contains(err.Error(), "invalid credentials") {
			utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidCredentials))
			return
		}
		if strings.Contains(err.Error(), "not active") {
			utils.ForbiddenResponse(c, err.Error())
			return
		}
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"message": i18n.T(lang, i18n.KeyAuthLoginSuccess),
		"auth":    authResponse,
	})
}

// POST /auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	lang := utils.GetLangFromContext(c)

	var req struct {
		RefreshToken string `json:"refresh_token" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	authResponse, err := h.authService.RefreshTokens(req.RefreshToken)
	if err != nil {
		utils.UnauthorizedResponse(c, i18n.T(lang, i18n.KeyAuthInvalidToken))
		return
	}

	utils.SuccessResponse(c, gin.H{
		"auth": authResponse,
	})
}

// GET /auth/profile
func (h *AuthHandler) GetProfile(c *gin.Context) {
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

	user, err := h.authService.GetProfile(userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "user")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	resp := gin.H{"user": user}
	if user.Customer != nil {
		resp["customer"] = serializers.NewCustomerResponse(user.Customer)
	}

	utils.SuccessResponse(c, resp)
}
