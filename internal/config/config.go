package config

import (
	"errors"
	"os"
	"sync"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	LogLevel string
	Addr     string

	StorageBackend  string
	PostgresDSN     string
	MongoURI        string
	MongoDB         string
	VitalsFile      string
	MedicationsFile string

	AuthProvider   string
	AuthToken      string
	AuthUserID     string
	AuthUserName   string
	JWTSecret      string
	AuthServiceURL string
}

var (
	cfg  *Config
	once sync.Once
)

func Load() *Config {
	once.Do(func() {
		_ = godotenv.Load()
		cfg = &Config{
			Env:      getEnv("APP_ENV", "development"),
			LogLevel: getEnv("LOG_LEVEL", "info"),
			Addr:     getEnv("ADDR", ":8080"),

			StorageBackend:  getEnv("STORAGE_BACKEND", "file"),
			PostgresDSN:     getEnv("POSTGRES_DSN", ""),
			MongoURI:        getEnv("MONGO_URI", ""),
			MongoDB:         getEnv("MONGO_DB", "meditrack"),
			VitalsFile:      getEnv("VITALS_FILE", "data/vital_logs.json"),
			MedicationsFile: getEnv("MEDICATIONS_FILE", "data/medications.json"),

			AuthProvider:   getEnv("AUTH_PROVIDER", "static"),
			AuthToken:      getEnv("AUTH_TOKEN", ""),
			AuthUserID:     getEnv("AUTH_USER_ID", ""),
			AuthUserName:   getEnv("AUTH_USER_NAME", "Dev User"),
			JWTSecret:      getEnv("JWT_SECRET", ""),
			AuthServiceURL: getEnv("AUTH_SERVICE_URL", ""),
		}
		if err := cfg.Validate(); err != nil {
			panic("Invalid config: " + err.Error())
		}
	})
	return cfg
}

func (c *Config) Validate() error {
	switch c.StorageBackend {
	case "memory":
	case "file":
		if c.VitalsFile == "" || c.MedicationsFile == "" {
			return errors.New("file storage requires VITALS_FILE and MEDICATIONS_FILE to be set")
		}
	case "postgres":
		if c.PostgresDSN == "" {
			return errors.New("POSTGRES_DSN is required when STORAGE_BACKEND=postgres")
		}
	case "mongo":
		if c.MongoURI == "" {
			return errors.New("MONGO_URI is required when STORAGE_BACKEND=mongo")
		}
	default:
		return errors.New("STORAGE_BACKEND must be one of: memory, file, postgres, mongo")
	}

	switch c.AuthProvider {
	case "static":
		if c.AuthToken == "" || c.AuthUserID == "" {
			return errors.New("static auth requires AUTH_TOKEN and AUTH_USER_ID to be set")
		}
	case "jwt":
		if c.JWTSecret == "" {
			return errors.New("JWT_SECRET is required when AUTH_PROVIDER=jwt")
		}
	case "remote":
		if c.AuthServiceURL == "" {
			return errors.New("AUTH_SERVICE_URL is required when AUTH_PROVIDER=remote")
		}
	default:
		return errors.New("AUTH_PROVIDER must be one of: static, jwt, remote")
	}

	if c.Env != "development" && c.Env != "staging" && c.Env != "production" {
		return errors.New("APP_ENV must be one of: development, staging, production")
	}
	if c.Env == "production" && c.AuthProvider == "static" {
		return errors.New("static auth is not allowed when APP_ENV=production")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
