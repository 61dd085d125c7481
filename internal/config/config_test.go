package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	return &Config{
		Env:             "development",
		LogLevel:        "info",
		Addr:            ":8080",
		StorageBackend:  "file",
		VitalsFile:      "data/vital_logs.json",
		MedicationsFile: "data/medications.json",
		AuthProvider:    "static",
		AuthToken:       "tok",
		AuthUserID:      "u1",
	}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, validConfig().Validate())

	c := validConfig()
	c.StorageBackend = "postgres"
	assert.Error(t, c.Validate())
	c.PostgresDSN = "postgres://localhost/meditrack"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.StorageBackend = "mongo"
	assert.Error(t, c.Validate())
	c.MongoURI = "mongodb://localhost:27017"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.StorageBackend = "cassandra"
	assert.Error(t, c.Validate())

	c = validConfig()
	c.AuthProvider = "jwt"
	assert.Error(t, c.Validate())
	c.JWTSecret = "s3cret"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.AuthProvider = "remote"
	assert.Error(t, c.Validate())
	c.AuthServiceURL = "http://auth.internal/verify"
	assert.NoError(t, c.Validate())

	c = validConfig()
	c.AuthToken = ""
	assert.Error(t, c.Validate())

	c = validConfig()
	c.Env = "qa"
	assert.Error(t, c.Validate())
}

func TestValidate_StaticAuthForbiddenInProduction(t *testing.T) {
	c := validConfig()
	c.Env = "production"
	assert.Error(t, c.Validate())

	c.AuthProvider = "jwt"
	c.JWTSecret = "s3cret"
	assert.NoError(t, c.Validate())
}
