// internal/models/category.go
package models

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"uniqueIndex;size:255;not null"`
	Description string `json:"description" gorm:"type:text"`

	// Relationships
	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
