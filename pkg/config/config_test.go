package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_SearchConfig(t *testing.T) {
	// Setup environment variables
	os.Setenv("HOSPITAL_SEARCH_URL", "http://test-ranker/webhook")
	os.Setenv("HOSPITAL_SEARCH_TIMEOUT", "5")
	defer func() {
		os.Unsetenv("HOSPITAL_SEARCH_URL")
		os.Unsetenv("HOSPITAL_SEARCH_TIMEOUT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "http://test-ranker/webhook", cfg.Search.WebhookURL)
	assert.Equal(t, 5, cfg.Search.TimeoutSeconds)
}

func TestLoad_Defaults(t *testing.T) {
	// Ensure env vars are cleared
	os.Unsetenv("STORE_BACKEND")
	os.Unsetenv("DB_NAME")
	os.Unsetenv("HOSPITAL_SEARCH_URL")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "memory", cfg.Store.Backend)
	assert.Equal(t, "findcare", cfg.Database.Database)
	assert.Equal(t, "", cfg.Search.WebhookURL)
	assert.Equal(t, 15, cfg.Search.TimeoutSeconds)
}

func TestDatabaseDSN(t *testing.T) {
	cfg := DatabaseConfig{
		Host:     "db",
		Port:     5433,
		User:     "svc",
		Password: "secret",
		Database: "findcare",
		SSLMode:  "require",
	}

	assert.Equal(t, "host=db port=5433 user=svc password=secret dbname=findcare sslmode=require", cfg.DatabaseDSN())
}
