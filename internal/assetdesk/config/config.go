package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI            string
	Port                string
	DBName              string
	EmployeesCollection string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
}

func LoadConfig() (*Config, error) {
	// Local development convenience; missing .env is fine.
	_ = godotenv.Load()

	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:            mongoURI,
		Port:                port,
		DBName:              getEnv("DB_NAME", "assetdesk_db"),
		EmployeesCollection: getEnv("COLLECTION_EMPLOYEES", "employees"),
		ReadTimeout:         getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:        getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		if d, err := time.ParseDuration(valStr); err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
