package database

import (
	"fmt"
	"log"
	"strings"

	"github.com/newgenpools/site-api/internal/config"
	"github.com/newgenpools/site-api/internal/domain/entity"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewPostgresDB creates a new PostgreSQL database connection
func NewPostgresDB(cfg *config.DatabaseConfig, debug bool) (*gorm.DB, error) {
	logLevel := logger.Warn
	if debug {
		logLevel = logger.Info
	}

	db, err := gorm.Open(postgres.New(postgres.Config{
		DSN:                  cfg.DSN(),
		PreferSimpleProtocol: true, // disables implicit prepared statement usage
	}), &gorm.Config{
		Logger: logger.Default.LogMode(logLevel),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	// Connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)

	log.Println("Successfully connected to PostgreSQL database")
	return db, nil
}

// AutoMigrate runs GORM auto-migration for all entities
func AutoMigrate(db *gorm.DB) error {
	log.Println("Running database migrations...")

	err := db.AutoMigrate(
		&entity.User{},
		&entity.Settings{},

		// Media
		&entity.Image{},

		// Catalog entities
		&entity.Product{},
		&entity.Service{},
		&entity.Project{},

		// Sales entities
		&entity.Customer{},
		&entity.Sale{},
		&entity.SaleLineItem{},

		&entity.ContactMessage{},
		&entity.IdempotencyKey{},
	)
	if err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Println("Database migrations completed successfully")
	return nil
}

// SeedDefaultData creates the settings row and the bootstrap admin account
// when they do not exist yet.
func SeedDefaultData(db *gorm.DB, cfg *config.AdminConfig) error {
	log.Println("Seeding default data...")

	var settingsCount int64
	if err := db.Model(&entity.Settings{}).Count(&settingsCount).Error; err != nil {
		return fmt.Errorf("failed to check settings: %w", err)
	}
	if settingsCount == 0 {
		if err := db.Create(entity.DefaultSettings()).Error; err != nil {
			log.Printf("Warning: failed to create default settings: %v", err)
		}
	}

	username := strings.ToLower(strings.TrimSpace(cfg.Username))
	if username == "" || cfg.Password == "" {
		log.Println("Warning: ADMIN_USERNAME/ADMIN_PASSWORD not set, skipping admin seed")
		return nil
	}

	var existing entity.User
	err := db.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("failed to check admin user: %w", err)
	}

	admin := entity.User{Username: username}
	if err := admin.SetPassword(cfg.Password); err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	if err := db.Create(&admin).Error; err != nil {
		return fmt.Errorf("failed to create admin user: %w", err)
	}

	log.Printf("Created admin user %q", username)
	return nil
}
