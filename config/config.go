package config

import (
	"fmt"
	"os"

	"github.com/Deepsharma001/AI-Powered-Dietitian-Service/models"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

var DB *gorm.DB

// LoadEnv loads .env when present; real deployments set env vars directly.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file found, relying on environment")
	}
}

func InitDB() {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
		os.Getenv("DB_PORT"),
	)

	var err error
	DB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	err = DB.AutoMigrate(
		&models.User{},
		&models.Meal{},
		&models.MealPlan{},
		&models.Feedback{},
		&models.TrainingRun{},
		&models.Alert{},
	)
	if err != nil {
		log.Fatal().Err(err).Msg("AutoMigrate failed")
	}
}

// ModelPath is where the trained classifier artifact lives. The file is
// replaced atomically on retrain and loaded once at startup.
func ModelPath() string {
	if p := os.Getenv("MODEL_PATH"); p != "" {
		return p
	}
	return "data/models/diet_model.gob"
}

// ServerAddr is the gin listen address.
func ServerAddr() string {
	if a := os.Getenv("SERVER_ADDR"); a != "" {
		return a
	}
	return ":8080"
}
