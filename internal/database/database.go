package database

import (
	"log"
	"os"
	"time"

	"deviantdare/backend/internal/logger"
	"deviantdare/backend/internal/models"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

var DB *gorm.DB

// Connect initializes the database connection and runs migrations.
func Connect(dsn string) {
	var err error

	// Configure GORM logger
	customLogger := gormlogger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  true,
		},
	)

	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger:         customLogger,
		TranslateError: true,
	})
	if err != nil {
		logger.Log.Fatalf("Failed to connect to database: %v", err)
	}

	logger.Log.Info("Database connection established")

	// Run migrations
	err = DB.AutoMigrate(
		&models.User{},
		&models.UserBlock{},
		&models.Tag{},
		&models.SwitchGame{},
		&models.Dare{},
		&models.Proof{},
	)
	if err != nil {
		logger.Log.Fatalf("Failed to migrate database: %v", err)
	}

	logger.Log.Info("Database migrated successfully")
}
