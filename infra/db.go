package infra

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"gin-bookstore/config"
)

// SetupDB opens the application database. When DB_NAME is configured a
// PostgreSQL connection is used; otherwise an in-memory SQLite database is
// opened (tests and local development).
func SetupDB(cfg *config.Config) *gorm.DB {
	if cfg.DBName != "" {
		sslmode := "disable"
		if cfg.IsProd {
			sslmode = "require"
		}

		dsn := fmt.Sprintf(
			"host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=Asia/Tokyo",
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			sslmode,
		)

		db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
		if err != nil {
			logrus.Fatalf("failed to connect to database: %v", err)
		}
		logrus.Info("Setup postgres database")
		return db
	}

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		logrus.Fatalf("failed to connect to database: %v", err)
	}
	logrus.Info("Setup sqlite database (in-memory)")
	return db
}
