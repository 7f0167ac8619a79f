// internal/models/product.go
package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name          string         `json:"name" gorm:"size:255;not null"`
	Description   string         `json:"description" gorm:"type:text"`
	Price         float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	OriginalPrice *float64       `json:"original_price" gorm:"type:decimal(10,2)"`
	CategoryID    uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`
	BrandID       uuid.UUID      `json:"brand_id" gorm:"type:uuid;not null;index"`
	ShopID        *uuid.UUID     `json:"shop_id" gorm:"type:uuid;index"`
	ImageURL      string         `json:"image_url" gorm:"size:500"`
	VideoURL      string         `json:"video_url" gorm:"size:500"`
	ReleaseDate   *time.Time     `json:"release_date"`
	Keywords      pq.StringArray `json:"keywords" gorm:"type:text[]"`
	Stock         int            `json:"-" gorm:"default:0"`
	Likes         int64          `json:"likes" gorm:"default:0"`
	Dislikes      int64          `json:"dislikes" gorm:"default:0"`
	Neutrals      int64          `json:"neutrals" gorm:"default:0"`
	Views         int64          `json:"views" gorm:"default:0"`
	IsActive      bool           `json:"is_active" gorm:"default:true;index"`
	IsBanned      bool           `json:"is_banned" gorm:"default:false"`
	Rating        float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`

	// Relationships
	Category       Category               `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Brand          Brand                  `json:"brand,omitempty" gorm:"foreignKey:BrandID"`
	Shop           *Shop                  `json:"shop,omitempty" gorm:"foreignKey:ShopID"`
	Reviews        []Review               `json:"reviews,omitempty" gorm:"foreignKey:ProductID"`
	Specifications []ProductSpecification `json:"specifications,omitempty" gorm:"foreignKey:ProductID"`
}

// InStock is derived from the storage-internal stock counter, which is
// managed by inventory updates and never settable through product create.
func (p *Product) InStock() bool {
	return p.Stock > 0
}
