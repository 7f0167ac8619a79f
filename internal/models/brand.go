// internal/models/brand.go
package models

// Brand keeps its pre-migration integer identifier in LegacyID so that
// clients still sending the old surrogate key can be mapped to the
// canonical UUID.
type Brand struct {
	BaseModel
	LegacyID   *int    `json:"legacy_id,omitempty" gorm:"uniqueIndex"`
	Name       string  `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Popularity int     `json:"popularity" gorm:"default:0"`
	Rating     float64 `json:"rating" gorm:"type:decimal(3,2);default:0"`
	Likes      int64   `json:"likes" gorm:"default:0"`
	Dislikes   int64   `json:"dislikes" gorm:"default:0"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:BrandID"`
}
