// internal/utils/pagination_test.go
package utils

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func paginationParamsFor(rawQuery string) PaginationParams {
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/products?"+rawQuery, nil)
	return GetPaginationParams(c)
}

func TestGetPaginationParamsDefaults(t *testing.T) {
	p := paginationParamsFor("")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, "created_at", p.Sort)
	assert.Equal(t, "desc", p.Order)
	assert.Empty(t, p.Search)
}

func TestGetPaginationParamsClampsBadValues(t *testing.T) {
	p := paginationParamsFor("page=0&limit=500&order=sideways")

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, 20, p.Limit)
	assert.Equal(t, "desc", p.Order)
}

func TestCreatePaginationResultRoundsTotalPagesUp(t *testing.T) {
	res := CreatePaginationResult(nil, 45, PaginationParams{Page: 2, Limit: 20})

	assert.Equal(t, int64(45), res.Total)
	assert.Equal(t, 3, res.TotalPages)
}
