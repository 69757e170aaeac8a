package config

import (
	"fmt"
	"time"

	"neocal-backend/models"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Config struct {
	Server struct {
		Port string
	}
	DB struct {
		Host     string
		Port     string
		User     string
		Password string
		Name     string
		SSLMode  string
	}
	Auth struct {
		Required   bool
		DemoUserID string
		JWTSecret  string
		SessionTTL time.Duration
	}
	OpenAI struct {
		APIKey      string
		TextModel   string
		VisionModel string
	}
	HuggingFace struct {
		APIKey string
		Model  string
	}
	AWS struct {
		Region   string
		S3Bucket string
	}
	DefaultCalorieTarget int
}

// Load reads .env (if present) and the environment. Every value has a
// default so the server starts with no configuration at all; provider keys
// left empty simply disable that provider.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.AutomaticEnv()

	v.SetDefault("SERVER_PORT", "8080")
	v.SetDefault("DB_HOST", "localhost")
	v.SetDefault("DB_PORT", "5432")
	v.SetDefault("DB_USER", "postgres")
	v.SetDefault("DB_PASSWORD", "postgres")
	v.SetDefault("DB_NAME", "neocal")
	v.SetDefault("DB_SSL_MODE", "disable")
	v.SetDefault("AUTH_REQUIRED", false)
	v.SetDefault("DEMO_USER_ID", "demo_user")
	v.SetDefault("JWT_SECRET", "dev-secret")
	v.SetDefault("SESSION_TTL", 24*time.Hour)
	v.SetDefault("OPENAI_TEXT_MODEL", "gpt-4o-mini")
	v.SetDefault("OPENAI_VISION_MODEL", "gpt-4o")
	v.SetDefault("HUGGINGFACE_VISION_MODEL", "openai/clip-vit-base-patch32")
	v.SetDefault("AWS_REGION", "us-east-1")
	v.SetDefault("DAILY_CALORIE_TARGET", 2000)

	var cfg Config
	cfg.Server.Port = v.GetString("SERVER_PORT")
	cfg.DB.Host = v.GetString("DB_HOST")
	cfg.DB.Port = v.GetString("DB_PORT")
	cfg.DB.User = v.GetString("DB_USER")
	cfg.DB.Password = v.GetString("DB_PASSWORD")
	cfg.DB.Name = v.GetString("DB_NAME")
	cfg.DB.SSLMode = v.GetString("DB_SSL_MODE")
	cfg.Auth.Required = v.GetBool("AUTH_REQUIRED")
	cfg.Auth.DemoUserID = v.GetString("DEMO_USER_ID")
	cfg.Auth.JWTSecret = v.GetString("JWT_SECRET")
	cfg.Auth.SessionTTL = v.GetDuration("SESSION_TTL")
	cfg.OpenAI.APIKey = v.GetString("OPENAI_API_KEY")
	cfg.OpenAI.TextModel = v.GetString("OPENAI_TEXT_MODEL")
	cfg.OpenAI.VisionModel = v.GetString("OPENAI_VISION_MODEL")
	cfg.HuggingFace.APIKey = v.GetString("HUGGINGFACE_API_KEY")
	cfg.HuggingFace.Model = v.GetString("HUGGINGFACE_VISION_MODEL")
	cfg.AWS.Region = v.GetString("AWS_REGION")
	cfg.AWS.S3Bucket = v.GetString("S3_BUCKET")
	cfg.DefaultCalorieTarget = v.GetInt("DAILY_CALORIE_TARGET")

	return &cfg, nil
}

func InitDB(cfg *Config) (*gorm.DB, error) {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DB.Host,
		cfg.DB.User,
		cfg.DB.Password,
		cfg.DB.Name,
		cfg.DB.Port,
		cfg.DB.SSLMode,
	)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// Migrate runs AutoMigrate for every model. Split out of InitDB so tests
// can run it against their own (sqlite) database.
func Migrate(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.User{},
		&models.Session{},
		&models.Meal{},
		&models.FoodItem{},
		&models.WaterLog{},
		&models.ExerciseLog{},
		&models.WeightLog{},
	)
	if err != nil {
		return fmt.Errorf("AutoMigrate failed: %w", err)
	}
	return nil
}
