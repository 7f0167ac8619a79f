// internal/handlers/dashboard.go
package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/binc-b/binc-backend/internal/services"
	"github.com/binc-b/binc-backend/internal/utils"
)

type DashboardHandler struct {
	dashboardService *services.DashboardService
}

func NewDashboardHandler(dashboardService *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// GET /dashboard (shop owner)
func (h *DashboardHandler) GetShopDashboard(c *gin.Context) {
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

	dashboard, err := h.dashboardService.GetShopDashboard(userID)
	if err != nil {
		if strings.Contains(err.Error(), "not found") {
			utils.NotFoundResponse(c, "shop")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"dashboard": dashboard,
	})
}

// GET /stats
func (h *DashboardHandler) GetPlatformStats(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{
		"stats": h.dashboardService.GetPlatformStats(),
	})
}
