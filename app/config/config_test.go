package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("INKWELL_PORT", "")
	t.Setenv("INKWELL_DB_PATH", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "data/badger", cfg.DBPath)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("INKWELL_PORT", "9090")
	t.Setenv("INKWELL_DB_PATH", "/tmp/blog")

	cfg := Load()
	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "/tmp/blog", cfg.DBPath)
	assert.Equal(t, ":9090", cfg.HTTPAddress())
}
