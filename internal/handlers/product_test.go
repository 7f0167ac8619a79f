// internal/handlers/product_test.go
package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/binc-b/binc-backend/internal/services"
)

type ProductHandlerTestSuite struct {
	suite.Suite
	db     *gorm.DB
	mock   sqlmock.Sqlmock
	router *gin.Engine
}

func (suite *ProductHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)

	sqlDB, mock, err := sqlmock.New()
	suite.Require().NoError(err)
	suite.mock = mock

	suite.db, err = gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		Logger:                 logger.Default.LogMode(logger.Silent),
		SkipDefaultTransaction: true,
	})
	suite.Require().NoError(err)

	productService := services.NewProductService(suite.db)
	handler := NewProductHandler(suite.db, productService, nil)

	suite.router = gin.New()
	suite.router.POST("/products/:id/reactions", handler.ReactToProduct)
	suite.router.POST("/products", func(c *gin.Context) {
		c.Set("user_id", uuid.New().String())
		c.Set("user_type", "shop_owner")
		handler.CreateProduct(c)
	})
}

func (suite *ProductHandlerTestSuite) postJSON(path string, body map[string]interface{}) *httptest.ResponseRecorder {
	jsonData, _ := json.Marshal(body)
	req, _ := http.NewRequest("POST", path, bytes.NewBuffer(jsonData))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

func (suite *ProductHandlerTestSuite) TestReactToProduct() {
	productID := uuid.New()

	suite.mock.ExpectExec(`UPDATE "products" SET "likes"=likes \+ 1`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	w := suite.postJSON("/products/"+productID.String()+"/reactions", map[string]interface{}{
		"reaction": "like",
	})

	suite.Equal(http.StatusOK, w.Code)

	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.True(response["success"].(bool))
}

func (suite *ProductHandlerTestSuite) TestReactToProductInvalidID() {
	w := suite.postJSON("/products/not-a-uuid/reactions", map[string]interface{}{
		"reaction": "like",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestReactToProductUnknownReaction() {
	productID := uuid.New()

	w := suite.postJSON("/products/"+productID.String()+"/reactions", map[string]interface{}{
		"reaction": "love",
	})

	suite.Equal(http.StatusBadRequest, w.Code)
}

func (suite *ProductHandlerTestSuite) TestCreateProductUnresolvedBrandIsValidationError() {
	w := suite.postJSON("/products", map[string]interface{}{
		"name":        "Laptop",
		"price":       999,
		"category_id": uuid.New().String(),
		"brand_id":    "not-a-uuid-or-int",
	})

	suite.Equal(http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	suite.NoError(json.Unmarshal(w.Body.Bytes(), &response))
	suite.False(response["success"].(bool))

	errObj := response["error"].(map[string]interface{})
	suite.Equal("VALIDATION_ERROR", errObj["code"])

	details := errObj["details"].([]interface{})
	suite.Require().Len(details, 1)
	suite.Equal("brand_id", details[0].(map[string]interface{})["field"])
}

func TestProductHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ProductHandlerTestSuite))
}
