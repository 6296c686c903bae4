package config

import (
	"os"
	"strings"
	"time"
)

type Database struct {
	Host     string
	User     string
	Password string
	Name     string
	Port     string
	SSLMode  string
}

type JWT struct {
	Secret   string
	Issuer   string
	Audience string
	// Expiry is fixed to two hours; tokens are not refreshable.
	Expiry time.Duration
}

type SeedAdmin struct {
	Email    string
	Password string
}

type Config struct {
	Port         string
	Database     Database
	RedisAddr    string
	KafkaBrokers []string
	JWT          JWT
	SeedAdmin    SeedAdmin
}

// Load reads configuration from the environment. godotenv is applied at the
// process entry point, not here.
func Load() Config {
	cfg := Config{
		Port: getenv("PORT", "3000"),
		Database: Database{
			Host:     getenv("DB_HOST", "localhost"),
			User:     getenv("DB_USER", "postgres"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     getenv("DB_NAME", "employee_management"),
			Port:     getenv("DB_PORT", "5432"),
			SSLMode:  getenv("DB_SSLMODE", "disable"),
		},
		RedisAddr: os.Getenv("REDIS_ADDR"),
		JWT: JWT{
			Secret:   os.Getenv("JWT_SECRET"),
			Issuer:   getenv("JWT_ISSUER", "EmployeeManagement"),
			Audience: getenv("JWT_AUDIENCE", "EmployeeManagementClient"),
			Expiry:   2 * time.Hour,
		},
		SeedAdmin: SeedAdmin{
			Email:    getenv("SEED_ADMIN_EMAIL", "admin@company.com"),
			Password: getenv("SEED_ADMIN_PASSWORD", "Admin123!"),
		},
	}

	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}

	return cfg
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
