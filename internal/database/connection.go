// internal/database/connection.go
package database

import (
	"fmt"
	"log"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/binc-b/binc-backend/internal/config"
	"github.com/binc-b/binc-backend/internal/models"
)

var DB *gorm.DB

func Initialize(cfg config.DatabaseConfig) (*gorm.DB, error) {
	var err error
	var gormConfig *gorm.Config

	// Configure GORM logger
	if cfg.LogLevel == "silent" {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Silent),
		}
	} else {
		gormConfig = &gorm.Config{
			Logger: logger.Default.LogMode(logger.Info),
		}
	}

	// Connect to database
	DB, err = gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Get underlying sql.DB
	sqlDB, err := DB.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(time.Duration(cfg.MaxLifetime) * time.Second)

	// Test connection
	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.Println("Database connection established successfully")
	return DB, nil
}

func Close(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("Error getting underlying sql.DB: %v", err)
		return
	}

	if err := sqlDB.Close(); err != nil {
		log.Printf("Error closing database connection: %v", err)
	} else {
		log.Println("Database connection closed successfully")
	}
}

func RunMigrations(db *gorm.DB) error {
	log.Println("Running database migrations...")

	// Enable UUID extension
	if err := db.Exec("CREATE EXTENSION IF NOT EXISTS \"uuid-ossp\"").Error; err != nil {
		return fmt.Errorf("failed to create UUID extension: %w", err)
	}

	// Run auto-migrations
	err := db.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Category{},
		&models.Brand{},
		&models.Shop{},
		&models.Product{},
		&models.Specification{},
		&models.ProductSpecification{},
		&models.Review{},
	)

	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Create indexes
	if err := createIndexes(db); err != nil {
		return fmt.Errorf("failed to create indexes: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

func createIndexes(db *gorm.DB) error {
	indexes := []string{
		// User indexes
		"CREATE INDEX IF NOT EXISTS idx_users_email ON users(email)",
		"CREATE INDEX IF NOT EXISTS idx_users_username ON users(username)",
		"CREATE INDEX IF NOT EXISTS idx_users_type_status ON users(user_type, status)",

		// Product indexes
		"CREATE INDEX IF NOT EXISTS idx_products_category_active ON products(category_id, is_active)",
		"CREATE INDEX IF NOT EXISTS idx_products_brand ON products(brand_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_shop ON products(shop_id)",
		"CREATE INDEX IF NOT EXISTS idx_products_price ON products(price)",
		"CREATE INDEX IF NOT EXISTS idx_products_created_at ON products(created_at DESC)",

		// Brand surrogate key lookups during brand_id normalization
		"CREATE INDEX IF NOT EXISTS idx_brands_legacy_id ON brands(legacy_id)",

		// Review indexes
		"CREATE INDEX IF NOT EXISTS idx_reviews_product ON reviews(product_id, created_at DESC)",

		// Specification value lookups
		"CREATE INDEX IF NOT EXISTS idx_product_specifications_product ON product_specifications(product_id)",
		"CREATE UNIQUE INDEX IF NOT EXISTS idx_product_specifications_unique ON product_specifications(product_id, specification_id) WHERE deleted_at IS NULL",

		// Full-text search index
		"CREATE INDEX IF NOT EXISTS idx_products_search ON products USING GIN(to_tsvector('english', name || ' ' || description))",
	}

	for _, index := range indexes {
		if err := db.Exec(index).Error; err != nil {
			log.Printf("Warning: Failed to create index: %s, Error: %v", index, err)
			// Continue with other indexes instead of failing completely
		}
	}

	return nil
}

// Seed initial data
func SeedInitialData(db *gorm.DB) error {
	log.Println("Seeding initial data...")

	// Create default admin user
	var adminCount int64
	db.Model(&models.User{}).Where("user_type = ?", models.UserTypeAdmin).Count(&adminCount)

	if adminCount == 0 {
		admin := &models.User{
			Username: "admin",
			Email:    "admin@binc.example.com",
			UserType: models.UserTypeAdmin,
			Status:   models.UserStatusActive,
			ProfileData: models.JSONB{
				"first_name": "System",
				"last_name":  "Administrator",
			},
		}

		if err := admin.SetPassword("admin123!@#"); err != nil {
			return fmt.Errorf("failed to set admin password: %w", err)
		}

		if err := db.Create(admin).Error; err != nil {
			return fmt.Errorf("failed to create admin user: %w", err)
		}

		log.Println("Default admin user created successfully")
	}

	// Create the starter specification vocabulary
	defaultSpecifications := []string{
		"RAM size",
		"Storage capacity",
		"Screen size",
		"Battery capacity",
		"Processor",
		"Color",
		"Weight",
	}

	for _, name := range defaultSpecifications {
		var count int64
		db.Model(&models.Specification{}).Where("name = ?", name).Count(&count)

		if count == 0 {
			if err := db.Create(&models.Specification{Name: name}).Error; err != nil {
				log.Printf("Warning: Failed to create specification %s: %v", name, err)
			}
		}
	}

	log.Println("Initial data seeding completed")
	return nil
}

// Transaction helper
func WithTransaction(db *gorm.DB, fn func(*gorm.DB) error) error {
	tx := db.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit().Error
}
