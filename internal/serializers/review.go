// internal/serializers/review.go
package serializers

import (
	"time"

	"github.com/google/uuid"

	"github.com/binc-b/binc-backend/internal/models"
)

type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func NewReviewResponse(review *models.Review) *ReviewResponse {
	return &ReviewResponse{
		ID:        review.ID,
		Username:  review.User.Username,
		Rating:    review.Rating,
		Comment:   review.Comment,
		CreatedAt: review.CreatedAt,
	}
}

func NewReviewListResponse(reviews []models.Review) []*ReviewResponse {
	responses := make([]*ReviewResponse, 0, len(reviews))
	for i := range reviews {
		responses = append(responses, NewReviewResponse(&reviews[i]))
	}
	return responses
}
