package common_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/Cece94/articguessr/models/common"
	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigDefaults(t *testing.T) {
	t.Setenv("ARTIC_CONFIG_DIR", t.TempDir())
	t.Setenv("ARTIC_ENV", "test")

	config := common.NewConfig()
	assert.Equal(t, "test", config.ConfigName)
	assert.Equal(t, "https://api.artic.edu/api/v1/artworks", config.AICBaseURL)
	assert.Equal(t, "https://api.artic.edu/api/v1/artworks/search", config.AICSearchURL)
	assert.Equal(t, 10*time.Minute, config.CacheTTL)
	assert.Equal(t, 20, config.DefaultLimit)
	assert.Equal(t, logging.INFO, config.LogLevel)
	assert.Equal(t, "localhost:6379", config.RedisURL)
	assert.Equal(t, 100, config.SamplerFallback)
	assert.Equal(t, 1860, config.SamplerMinYear)
}

func TestNewConfigFromFile(t *testing.T) {
	configDir := t.TempDir()
	contents := `AIC_BASE_URL=http://localhost:9999/api/v1/artworks
AIC_SEARCH_URL=http://localhost:9999/api/v1/artworks/search
CACHE_TTL=90s
LOG_LEVEL=DEBUG
REDIS_URL=localhost:16379
SAMPLER_MIN_YEAR=1700
`
	err := os.WriteFile(filepath.Join(configDir, ".env.test"), []byte(contents), 0644)
	require.Nil(t, err)
	t.Setenv("ARTIC_CONFIG_DIR", configDir)
	t.Setenv("ARTIC_ENV", "test")

	config := common.NewConfig()
	assert.Equal(t, "http://localhost:9999/api/v1/artworks", config.AICBaseURL)
	assert.Equal(t, "http://localhost:9999/api/v1/artworks/search", config.AICSearchURL)
	assert.Equal(t, 90*time.Second, config.CacheTTL)
	assert.Equal(t, logging.DEBUG, config.LogLevel)
	assert.Equal(t, "localhost:16379", config.RedisURL)
	assert.Equal(t, 1700, config.SamplerMinYear)
	// Settings the file omits keep their defaults.
	assert.Equal(t, 20, config.DefaultLimit)
}

func TestNewConfigSanityCheck(t *testing.T) {
	configDir := t.TempDir()
	contents := "CACHE_TTL=0s\n"
	err := os.WriteFile(filepath.Join(configDir, ".env.test"), []byte(contents), 0644)
	require.Nil(t, err)
	t.Setenv("ARTIC_CONFIG_DIR", configDir)
	t.Setenv("ARTIC_ENV", "test")

	assert.Panics(t, func() { common.NewConfig() })
}
