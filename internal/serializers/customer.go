// internal/serializers/customer.go
package serializers

import (
	"github.com/google/uuid"

	"github.com/binc-b/binc-backend/internal/models"
)

type CustomerResponse struct {
	ID                uuid.UUID `json:"id"`
	Category          string    `json:"category"`
	SpecificationName string    `json:"specification_name"`
}

func NewCustomerResponse(customer *models.Customer) *CustomerResponse {
	return &CustomerResponse{
		ID:                customer.ID,
		Category:          customer.Category,
		SpecificationName: customer.SpecificationName,
	}
}
