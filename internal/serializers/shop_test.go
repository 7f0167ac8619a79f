// internal/serializers/shop_test.go
package serializers

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/binc-b/binc-backend/internal/models"
)

func TestCompletionPercentage(t *testing.T) {
	tests := []struct {
		name string
		shop models.Shop
		want int
	}{
		{"empty profile", models.Shop{}, 0},
		{
			"three of seven fields",
			models.Shop{Name: "My Shop", Address: "Riyadh", Phone: "0500000000"},
			42,
		},
		{
			"complete profile",
			models.Shop{
				Name:        "My Shop",
				Address:     "Riyadh",
				Description: "Electronics and accessories",
				Logo:        "https://cdn.example.com/logo.png",
				URL:         "https://myshop.example.com",
				Phone:       "0500000000",
				Email:       "owner@myshop.example.com",
			},
			100,
		},
		{
			"banner does not count",
			models.Shop{Banner: "https://cdn.example.com/banner.png"},
			0,
		},
		{
			"six of seven fields",
			models.Shop{
				Name:        "My Shop",
				Address:     "Riyadh",
				Description: "Electronics",
				Logo:        "https://cdn.example.com/logo.png",
				URL:         "https://myshop.example.com",
				Phone:       "0500000000",
			},
			85,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CompletionPercentage(&tt.shop))
		})
	}
}
