package database

import (
	"time"

	"github.com/Abhishek8719/Employee-Leave-Management-System/internal/models"

	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// Connect opens the postgres pool and runs migrations. The container may come
// up after us, so connecting retries for a while before giving up.
func Connect(dsn string) *gorm.DB {
	var db *gorm.DB
	var err error

	const maxAttempts = 10
	for i := 1; i <= maxAttempts; i++ {
		log.Info().Int("attempt", i).Int("max", maxAttempts).Msg("connecting to db")

		db, err = gorm.Open(postgres.Open(dsn), &gorm.Config{TranslateError: true})
		if err == nil {
			log.Info().Msg("connected to db")
			break
		}

		log.Warn().Err(err).Msg("db connect failed")
		time.Sleep(2 * time.Second)
	}
	if err != nil {
		log.Fatal().Err(err).Int("attempts", maxAttempts).Msg("giving up connecting to db")
	}

	sqlDB, err := db.DB()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to get sql.DB handle")
	}
	sqlDB.SetMaxOpenConns(10)
	sqlDB.SetMaxIdleConns(5)
	sqlDB.SetConnMaxLifetime(time.Hour)

	if err := db.AutoMigrate(&models.User{}, &models.LeaveRequest{}); err != nil {
		log.Fatal().Err(err).Msg("failed to migrate")
	}

	return db
}
