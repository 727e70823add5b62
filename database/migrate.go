package database

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/capstone-portal/models"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// DBConnection represents a database connection
type DBConnection struct {
	DB     *gorm.DB
	Name   string
	DbURL  string
	Models []interface{}
}

// NewDBConnection creates a new database connection
func NewDBConnection(name, dbURL string) (*DBConnection, error) {
	if dbURL == "" {
		return nil, errors.New("database URL cannot be empty")
	}

	// Configure GORM logger
	newLogger := logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Info,
			IgnoreRecordNotFoundError: true,
			ParameterizedQueries:      true,
			Colorful:                  true,
		},
	)

	// Connect to database
	db, err := gorm.Open(postgres.Open(dbURL), &gorm.Config{
		Logger: newLogger,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s database: %v", name, err)
	}

	// Get and configure the underlying SQL DB
	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get SQL DB for %s: %v", name, err)
	}

	// Set connection pool settings
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetMaxOpenConns(100)
	sqlDB.SetConnMaxLifetime(time.Hour)

	log.Printf("✅ Connected to %s database", name)

	return &DBConnection{
		DB:    db,
		Name:  name,
		DbURL: dbURL,
		Models: []interface{}{
			&models.User{},
			&models.Member{},
			&models.Project{},
			&models.ContinuationRequest{},
			&models.Comment{},
		},
	}, nil
}

// Migrate migrates the database schema
func (c *DBConnection) Migrate() error {
	log.Printf("Migrating %s database schema...", c.Name)
	if err := c.DB.AutoMigrate(c.Models...); err != nil {
		return fmt.Errorf("failed to migrate %s database: %v", c.Name, err)
	}

	err := c.DB.Exec(`CREATE UNIQUE INDEX IF NOT EXISTS idx_requests_single_active
		ON continuation_requests (requester_id, project_id)
		WHERE status = 'Waiting' AND deleted_at IS NULL`).Error
	if err != nil {
		return fmt.Errorf("failed to create single-active request index on %s: %v", c.Name, err)
	}

	log.Printf("✅ %s database schema migrated", c.Name)
	return nil
}
