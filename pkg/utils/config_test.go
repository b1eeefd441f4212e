package utils_test

import (
	"testing"

	"github.com/mohi-ict/inventoryhub/pkg/utils"
	"github.com/stretchr/testify/assert"
)

func TestConfigGet(t *testing.T) {
	assert := assert.New(t)

	cfg := utils.NewConfig(map[string]string{
		"DATABASE_URL": "user:pass@tcp(localhost:3306)/inventory",
		"API_PORT":     "8080",
		"EMPTY":        "",
	})

	assert.Equal("user:pass@tcp(localhost:3306)/inventory", cfg.Get("DATABASE_URL"))
	assert.Equal("", cfg.Get("MISSING"))

	assert.Equal("8080", cfg.GetWithDefault("API_PORT", "9090"))
	assert.Equal("9090", cfg.GetWithDefault("MISSING", "9090"))
	assert.Equal("9090", cfg.GetWithDefault("EMPTY", "9090"))
}

func TestConfigGetBool(t *testing.T) {
	assert := assert.New(t)

	cfg := utils.NewConfig(map[string]string{
		"A": "true",
		"B": "0",
		"C": "yes",
		"D": "nonsense",
	})

	assert.True(cfg.GetBool("A"))
	assert.False(cfg.GetBool("B"))
	assert.True(cfg.GetBool("C"))
	assert.False(cfg.GetBool("D"))
	assert.False(cfg.GetBool("MISSING"))
}

func TestConfigSetAndHas(t *testing.T) {
	assert := assert.New(t)

	cfg := utils.NewConfig(nil)
	assert.False(cfg.Has("KEY"))

	cfg.Set("KEY", "value")
	assert.True(cfg.Has("KEY"))
	assert.Equal("value", cfg.Get("KEY"))
}
