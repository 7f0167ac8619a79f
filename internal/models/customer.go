// internal/models/customer.go
package models

import "github.com/google/uuid"

// Customer is the lightweight profile attached to a User. A shop owner's
// shop references its customer profile through Shop.OwnerID.
type Customer struct {
	BaseModel
	UserID            uuid.UUID `json:"user_id" gorm:"type:uuid;uniqueIndex;not null"`
	Category          string    `json:"category" gorm:"size:100"`
	SpecificationName string    `json:"specification_name" gorm:"size:255"`

	// Relationships
	User User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Shop *Shop `json:"shop,omitempty" gorm:"foreignKey:OwnerID"`
}
