// internal/serializers/specification.go
package serializers

import (
	"github.com/google/uuid"

	"github.com/binc-b/binc-backend/internal/models"
)

type SpecificationResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

type ProductSpecificationResponse struct {
	ID                 uuid.UUID              `json:"id"`
	Specification      *SpecificationResponse `json:"specification"`
	SpecificationValue string                 `json:"specification_value"`
}

func NewSpecificationResponse(spec *models.Specification) *SpecificationResponse {
	return &SpecificationResponse{
		ID:   spec.ID,
		Name: spec.Name,
	}
}

func NewSpecificationListResponse(specs []models.Specification) []*SpecificationResponse {
	responses := make([]*SpecificationResponse, 0, len(specs))
	for i := range specs {
		responses = append(responses, NewSpecificationResponse(&specs[i]))
	}
	return responses
}

func NewProductSpecificationResponse(ps *models.ProductSpecification) *ProductSpecificationResponse {
	return &ProductSpecificationResponse{
		ID:                 ps.ID,
		Specification:      NewSpecificationResponse(&ps.Specification),
		SpecificationValue: ps.SpecificationValue,
	}
}

func NewProductSpecificationListResponse(entries []models.ProductSpecification) []*ProductSpecificationResponse {
	responses := make([]*ProductSpecificationResponse, 0, len(entries))
	for i := range entries {
		responses = append(responses, NewProductSpecificationResponse(&entries[i]))
	}
	return responses
}
