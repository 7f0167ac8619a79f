// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/binc-b/binc-backend/internal/config"
	"github.com/binc-b/binc-backend/internal/handlers"
	"github.com/binc-b/binc-backend/internal/middleware"
	"github.com/binc-b/binc-backend/internal/services"
	"github.com/binc-b/binc-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	storageService, _ := services.NewStorageService(cfg)

	authService := services.NewAuthService(db, cfg)
	productService := services.NewProductService(db)
	categoryService := services.NewCategoryService(db)
	brandService := services.NewBrandService(db)
	shopService := services.NewShopService(db)
	specService := services.NewSpecificationService(db)
	reviewService := services.NewReviewService(db)
	dashboardService := services.NewDashboardService(db)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(db, productService, storageService)
	categoryHandler := handlers.NewCategoryHandler(db, categoryService)
	brandHandler := handlers.NewBrandHandler(db, brandService, productService)
	shopHandler := handlers.NewShopHandler(db, shopService, storageService)
	specHandler := handlers.NewSpecificationHandler(specService)
	reviewHandler := handlers.NewReviewHandler(reviewService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.CORS.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Authentication routes
		auth := v1.Group("/auth")
		auth.Use(middleware.AuthRateLimit())
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/refresh", authHandler.RefreshToken)
			auth.GET("/me", middleware.AuthRequired(), authHandler.GetProfile)
		}

		// Product routes
		products := v1.Group("/products")
		{
			products.GET("", middleware.OptionalAuth(), productHandler.GetProducts)
			products.GET("/popular", productHandler.GetPopularProducts)
			products.GET("/:id", middleware.OptionalAuth(), productHandler.GetProduct)
			products.GET("/:id/reviews", reviewHandler.GetProductReviews)
			products.GET("/:id/specifications", specHandler.GetProductSpecifications)
			products.POST("/:id/reactions", middleware.ReactionRateLimit(), productHandler.ReactToProduct)

			// Authenticated routes
			protected := products.Group("")
			protected.Use(middleware.AuthRequired())
			{
				protected.POST("", middleware.ShopOwnerRequired(), productHandler.CreateProduct)
				protected.PUT("/:id", middleware.ShopOwnerRequired(), productHandler.UpdateProduct)
				protected.DELETE("/:id", middleware.ShopOwnerRequired(), productHandler.DeactivateProduct)
				protected.PUT("/:id/stock", middleware.ShopOwnerRequired(), productHandler.SetStock)
				protected.PUT("/:id/specifications", middleware.ShopOwnerRequired(), specHandler.SetProductSpecification)
				protected.POST("/:id/reviews", reviewHandler.CreateReview)
				protected.POST("/:id/ban", middleware.AdminRequired(), productHandler.BanProduct)
				protected.POST("/upload-images", middleware.UploadRateLimit(), productHandler.UploadProductImages)
			}
		}

		// Category routes
		categories := v1.Group("/categories")
		{
			categories.GET("", categoryHandler.GetCategories)
			categories.GET("/:id", categoryHandler.GetCategory)
			categories.GET("/:id/products", categoryHandler.GetCategoryProducts)

			admin := categories.Group("")
			admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				admin.POST("", categoryHandler.CreateCategory)
				admin.PUT("/:id", categoryHandler.UpdateCategory)
				admin.DELETE("/:id", categoryHandler.DeleteCategory)
			}
		}

		// Brand routes
		brands := v1.Group("/brands")
		{
			brands.GET("", brandHandler.GetBrands)
			brands.GET("/:id", brandHandler.GetBrand)
			brands.GET("/:id/products", brandHandler.GetBrandProducts)
			brands.POST("/:id/reactions", middleware.ReactionRateLimit(), brandHandler.ReactToBrand)

			admin := brands.Group("")
			admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				admin.POST("", brandHandler.CreateBrand)
				admin.PUT("/:id", brandHandler.UpdateBrand)
			}
		}

		// Shop routes
		shops := v1.Group("/shops")
		{
			shops.GET("/:id", shopHandler.GetShop)
			shops.GET("/:id/products", shopHandler.GetShopProducts)

			mine := shops.Group("/mine")
			mine.Use(middleware.AuthRequired(), middleware.ShopOwnerRequired())
			{
				mine.GET("", shopHandler.GetMyShop)
				mine.PUT("", shopHandler.UpsertMyShop)
				mine.POST("/media", middleware.UploadRateLimit(), shopHandler.UploadShopMedia)
			}
		}

		// Specification vocabulary routes
		specs := v1.Group("/specifications")
		{
			specs.GET("", specHandler.GetSpecifications)

			admin := specs.Group("")
			admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
			{
				admin.POST("", specHandler.CreateSpecification)
				admin.DELETE("/:id", specHandler.DeleteSpecification)
			}
		}

		// Shop owner dashboard
		dashboard := v1.Group("/dashboard")
		dashboard.Use(middleware.AuthRequired(), middleware.ShopOwnerRequired())
		{
			dashboard.GET("", dashboardHandler.GetShopDashboard)
		}

		// Statistics routes (public)
		stats := v1.Group("/stats")
		{
			stats.GET("/platform", dashboardHandler.GetPlatformStats)
		}
	}

	// Static file serving (for development)
	if cfg.Environment == "development" {
		r.Static("/uploads", "./uploads")
	}

	return r
}
