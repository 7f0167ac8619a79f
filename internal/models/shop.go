// internal/models/shop.go
package models

import "github.com/google/uuid"

type Shop struct {
	BaseModel
	Name        string     `json:"name" gorm:"size:255;not null"`
	Address     string     `json:"address" gorm:"size:500"`
	Description string     `json:"description" gorm:"type:text"`
	Logo        string     `json:"logo" gorm:"size:500"`
	Banner      string     `json:"banner" gorm:"size:500"`
	URL         string     `json:"url" gorm:"size:500"`
	Phone       string     `json:"phone" gorm:"size:50"`
	Email       string     `json:"email" gorm:"size:255"`
	SocialMedia JSONB      `json:"social_media" gorm:"type:jsonb"`
	OwnerID     *uuid.UUID `json:"owner_id" gorm:"type:uuid;uniqueIndex"`

	// Relationships
	Owner    *Customer `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Products []Product `json:"products,omitempty" gorm:"foreignKey:ShopID"`
}
