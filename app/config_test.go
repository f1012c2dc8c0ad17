package main

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	tempFile, err := os.CreateTemp("", "config.env")
	if err != nil {
		t.Fatalf("Failed to create temporary config file: %v", err)
	}
	defer os.Remove(tempFile.Name())

	configData := []byte(`
PORT=:5000
ENVIRONMENT=development
VERSION=1.0.0
CORS_TRUSTED_ORIGINS=http://localhost:5173, http://localhost:5174
MONGO_HOST=localhost
MONGO_PORT=27017
MONGO_USER=testuser
MONGO_PASSWORD=testpassword
MONGO_DB=blogSpotter
JWT_SECRET=supersecret
LIMITER_ENABLED=true
LIMITER_RPS=2
LIMITER_BURST=4
`)
	if _, err := tempFile.Write(configData); err != nil {
		t.Fatalf("Failed to write test configuration to temporary file: %v", err)
	}

	config, err := loadConfig(tempFile.Name())
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.Equal(t, ":5000", config.Port)
	assert.Equal(t, "development", config.Environment)
	assert.Equal(t, "1.0.0", config.Version)
	assert.Equal(t, []string{"http://localhost:5173", "http://localhost:5174"}, config.corsTrustedOrigins())
	assert.Equal(t, "localhost", config.DBHost)
	assert.Equal(t, "27017", config.DBPort)
	assert.Equal(t, "testuser", config.DBUser)
	assert.Equal(t, "testpassword", config.DBPassword)
	assert.Equal(t, "blogSpotter", config.DBName)
	assert.Equal(t, "supersecret", config.JWTSecret)
	assert.True(t, config.LimiterEnabled)
	assert.Equal(t, float64(2), config.LimiterRPS)
	assert.Equal(t, 4, config.LimiterBurst)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := loadConfig("does-not-exist.env")
	assert.Error(t, err)
}
