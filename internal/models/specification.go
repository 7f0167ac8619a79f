// internal/models/specification.go
package models

import "github.com/google/uuid"

// Specification is a controlled vocabulary entry, e.g. "RAM size".
type Specification struct {
	BaseModel
	Name string `json:"name" gorm:"uniqueIndex;size:255;not null"`
}

// ProductSpecification carries the actual value of a specification for a
// single product. Rows are removed together with their product or
// specification.
type ProductSpecification struct {
	BaseModel
	SpecificationID    uuid.UUID `json:"specification_id" gorm:"type:uuid;not null;index"`
	ProductID          uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	SpecificationValue string    `json:"specification_value" gorm:"type:text"`

	// Relationships
	Specification Specification `json:"specification,omitempty" gorm:"foreignKey:SpecificationID;constraint:OnDelete:CASCADE"`
	Product       Product       `json:"product,omitempty" gorm:"foreignKey:ProductID;constraint:OnDelete:CASCADE"`
}
