package config

import (
	"errors"
	"log"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

const defaultDigestCron = "0 9 * * *"

type Config struct {
	Environment string `env:"ENV" env-default:"development"`
	Port        string `env:"PORT" env-default:"8080"`

	DatabaseURL     string `env:"DATABASE_URL"`
	MaxOpenConns    int    `env:"DB_MAX_OPEN_CONNS" env-default:"10"`
	MaxIdleConns    int    `env:"DB_MAX_IDLE_CONNS" env-default:"5"`
	ConnMaxLifeTime int    `env:"DB_CONN_MAX_LIFETIME_MIN" env-default:"30"` // minutes

	GoalsFile      string `env:"GOALS_FILE" env-default:"data/goals.json"`
	TeachersFile   string `env:"TEACHERS_FILE" env-default:"data/teachers.json"`
	SeedOnStart    bool   `env:"SEED_ON_START" env-default:"false"`
	HomeSampleSize int    `env:"HOME_SAMPLE_SIZE" env-default:"6"`

	// Set but empty switches the digest off, so there is no env-default here.
	DigestCron string `env:"DIGEST_CRON"`

	BrevoAPIKey     string `env:"BREVO_API_KEY"`
	EmailSender     string `env:"EMAIL_SENDER"`
	EmailSenderName string `env:"EMAIL_SENDER_NAME"`
	OperatorEmail   string `env:"OPERATOR_EMAIL"`
}

// Load reads .env when present and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: .env file not found, reading from system environment variables")
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, err
	}
	if _, ok := os.LookupEnv("DIGEST_CRON"); !ok {
		cfg.DigestCron = defaultDigestCron
	}

	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required but not set")
	}
	if cfg.HomeSampleSize < 0 {
		return nil, errors.New("HOME_SAMPLE_SIZE must not be negative")
	}

	return &cfg, nil
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
