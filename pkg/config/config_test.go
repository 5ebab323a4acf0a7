package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadRequiresMongoURI(t *testing.T) {
	t.Setenv("MONGO_URI", "")

	_, err := Load()

	assert.ErrorIs(t, err, ErrMongoURINotSet)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://localhost:27017")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "5000", cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "development", cfg.Environment)
	assert.Equal(t, "TaskMasterDB", cfg.MongoDatabase)
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("MONGO_URI", "mongodb://db.internal:27017")
	t.Setenv("PORT", "8080")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("MONGO_DATABASE", "TasksTest")

	cfg, err := Load()

	assert.NoError(t, err)
	assert.Equal(t, "mongodb://db.internal:27017", cfg.MongoURI)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "TasksTest", cfg.MongoDatabase)
}
