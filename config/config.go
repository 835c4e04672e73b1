package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort  int
	GatewayPort int
	ServerURL   string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	// Storage selects the repository backend: "postgres" or "memory".
	Storage string

	// RabbitURL enables lifecycle event publishing when non-empty.
	RabbitURL string

	LogLevel string
}

func Load() *Config {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	return &Config{
		ServerPort:  getEnvInt("SERVER_PORT", 9090),
		GatewayPort: getEnvInt("GATEWAY_PORT", 8080),
		ServerURL:   getEnv("SHAREIT_SERVER_URL", "http://localhost:9090"),
		DBHost:      getEnv("DB_HOST", "localhost"),
		DBPort:      getEnv("DB_PORT", "5432"),
		DBUser:      getEnv("DB_USER", "postgres"),
		DBPassword:  getEnv("DB_PASSWORD", "postgres"),
		DBName:      getEnv("DB_NAME", "shareit"),
		Storage:     getEnv("STORAGE", "postgres"),
		RabbitURL:   getEnv("AMQP_URL", ""),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

func (c *Config) DSN() string {
	return fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName,
	)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	var n int
	if _, err := fmt.Sscanf(v, "%d", &n); err != nil {
		return fallback
	}
	return n
}
