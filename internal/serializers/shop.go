// internal/serializers/shop.go
package serializers

import (
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/models"
)

type ShopResponse struct {
	ID                   uuid.UUID    `json:"id"`
	Name                 string       `json:"name"`
	Address              string       `json:"address"`
	Description          string       `json:"description"`
	Logo                 string       `json:"logo"`
	Banner               string       `json:"banner"`
	URL                  string       `json:"url"`
	Phone                string       `json:"phone"`
	Email                string       `json:"email"`
	SocialMedia          models.JSONB `json:"social_media"`
	OwnerName            *string      `json:"owner_name"`
	ProductCount         int64        `json:"product_count"`
	CompletionPercentage int          `json:"completion_percentage"`
}

// completionChecklist is the fixed set of profile fields a shop owner is
// expected to fill in. The banner is promotional and not part of it.
func completionChecklist(shop *models.Shop) []string {
	return []string{
		shop.Name,
		shop.Address,
		shop.Description,
		shop.Logo,
		shop.URL,
		shop.Phone,
		shop.Email,
	}
}

// CompletionPercentage returns how much of the 7-field profile checklist is
// filled in, as an integer percentage truncated toward zero.
func CompletionPercentage(shop *models.Shop) int {
	fields := completionChecklist(shop)
	completed := 0
	for _, field := range fields {
		if field != "" {
			completed++
		}
	}
	return completed * 100 / len(fields)
}

// ShopProductCount counts every product of the shop, like the brand rule.
func ShopProductCount(db *gorm.DB, shopID uuid.UUID) int64 {
	var count int64
	db.Model(&models.Product{}).
		Where("shop_id = ?", shopID).
		Count(&count)
	return count
}

func NewShopResponse(db *gorm.DB, shop *models.Shop) *ShopResponse {
	var ownerName *string
	if shop.Owner != nil && shop.Owner.User.Username != "" {
		name := shop.Owner.User.Username
		ownerName = &name
	}

	return &ShopResponse{
		ID:                   shop.ID,
		Name:                 shop.Name,
		Address:              shop.Address,
		Description:          shop.Description,
		Logo:                 shop.Logo,
		Banner:               shop.Banner,
		URL:                  shop.URL,
		Phone:                shop.Phone,
		Email:                shop.Email,
		SocialMedia:          shop.SocialMedia,
		OwnerName:            ownerName,
		ProductCount:         ShopProductCount(db, shop.ID),
		CompletionPercentage: CompletionPercentage(shop),
	}
}
