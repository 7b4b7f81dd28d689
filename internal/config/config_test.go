package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "tenant_billing", cfg.Database.DBName)
	assert.Equal(t, "json", cfg.Logger.Format)
	assert.False(t, cfg.Scheduler.Enabled)
	assert.Equal(t, "0 0 0 1 * *", cfg.Scheduler.RentCronExpression)
}

func TestLoadFromEnvironment(t *testing.T) {
	os.Setenv("PORT", "9090")
	os.Setenv("DB_PORT", "5433")
	os.Setenv("SCHEDULER_ENABLED", "true")
	os.Setenv("RENT_DEFAULT_AMOUNT", "1250.50")
	defer func() {
		os.Unsetenv("PORT")
		os.Unsetenv("DB_PORT")
		os.Unsetenv("SCHEDULER_ENABLED")
		os.Unsetenv("RENT_DEFAULT_AMOUNT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5433, cfg.Database.Port)
	assert.True(t, cfg.Scheduler.Enabled)
	assert.Equal(t, 1250.50, cfg.Scheduler.RentAmount)
}

func TestGetDSN(t *testing.T) {
	dbConfig := DatabaseConfig{
		Host:     "localhost",
		Port:     5432,
		User:     "postgres",
		Password: "secret",
		DBName:   "tenant_billing",
		SSLMode:  "disable",
	}

	dsn := dbConfig.GetDSN()
	assert.Equal(t, "host=localhost port=5432 user=postgres password=secret dbname=tenant_billing sslmode=disable", dsn)
}

func TestGetEnvAsIntInvalidValueFallsBack(t *testing.T) {
	os.Setenv("DB_PORT", "not-a-number")
	defer os.Unsetenv("DB_PORT")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 5432, cfg.Database.Port)
}
