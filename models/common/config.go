package common

import (
	"fmt"
	"os"
	"time"

	"github.com/Cece94/articguessr/constants"
	"github.com/op/go-logging"
	"github.com/spf13/viper"
)

type Config struct {
	AICBaseURL      string
	AICSearchURL    string
	CacheTTL        time.Duration
	ConfigName      string
	DefaultLimit    int
	LogDir          string
	LogLevel        logging.Level
	RedisDefaultDB  int
	RedisPassword   string
	RedisURL        string
	SamplerFallback int
	SamplerMinYear  int
}

var logLevels = map[string]logging.Level{
	"CRITICAL": logging.CRITICAL,
	"ERROR":    logging.ERROR,
	"WARNING":  logging.WARNING,
	"NOTICE":   logging.NOTICE,
	"INFO":     logging.INFO,
	"DEBUG":    logging.DEBUG,
}

// NewConfig returns a config based on env vars ARTIC_CONFIG_DIR and
// ARTIC_ENV. Every setting has a usable default, so an empty .env file
// points at the real AIC API with a local redis.
func NewConfig() *Config {
	config := loadConfig()
	config.sanityCheck()
	return config
}

func loadConfig() *Config {
	configDir, envName := getEnvVars()
	v := viper.New()
	v.AddConfigPath(configDir)
	v.SetConfigName(".env." + envName)
	v.SetConfigType("env")
	v.SetDefault("AIC_BASE_URL", constants.AICBaseURL)
	v.SetDefault("AIC_SEARCH_URL", constants.AICSearchURL)
	v.SetDefault("CACHE_TTL", "10m")
	v.SetDefault("DEFAULT_LIMIT", constants.DefaultLimit)
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("REDIS_DEFAULT_DB", 0)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_URL", "localhost:6379")
	v.SetDefault("SAMPLER_FALLBACK_MAX_PAGE", constants.SamplerFallbackMaxPage)
	v.SetDefault("SAMPLER_MIN_YEAR", constants.SamplerMinYear)
	err := v.ReadInConfig()
	if err != nil {
		// A missing file just means "all defaults". A file that
		// exists but won't parse is fatal.
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			panic(fmt.Errorf("Fatal error config file: %s \n", err))
		}
	}
	return &Config{
		AICBaseURL:      v.GetString("AIC_BASE_URL"),
		AICSearchURL:    v.GetString("AIC_SEARCH_URL"),
		CacheTTL:        v.GetDuration("CACHE_TTL"),
		ConfigName:      envName,
		DefaultLimit:    v.GetInt("DEFAULT_LIMIT"),
		LogDir:          v.GetString("LOG_DIR"),
		LogLevel:        logLevels[v.GetString("LOG_LEVEL")],
		RedisDefaultDB:  v.GetInt("REDIS_DEFAULT_DB"),
		RedisPassword:   v.GetString("REDIS_PASSWORD"),
		RedisURL:        v.GetString("REDIS_URL"),
		SamplerFallback: v.GetInt("SAMPLER_FALLBACK_MAX_PAGE"),
		SamplerMinYear:  v.GetInt("SAMPLER_MIN_YEAR"),
	}
}

func getEnvVars() (string, string) {
	configDir := os.Getenv("ARTIC_CONFIG_DIR")
	if configDir == "" {
		configDir = "."
	}
	envName := os.Getenv("ARTIC_ENV")
	if envName == "" {
		envName = "dev"
	}
	return configDir, envName
}

func (config *Config) sanityCheck() {
	if config.AICBaseURL == "" || config.AICSearchURL == "" {
		panic("Config is missing AIC API URLs")
	}
	if config.CacheTTL <= 0 {
		panic(fmt.Sprintf("Config has non-positive cache TTL: %s", config.CacheTTL))
	}
	if config.DefaultLimit <= 0 {
		panic(fmt.Sprintf("Config has non-positive default limit: %d", config.DefaultLimit))
	}
	if config.SamplerFallback <= 0 {
		panic(fmt.Sprintf("Config has non-positive sampler fallback page range: %d", config.SamplerFallback))
	}
}
