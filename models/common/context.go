package common

import (
	"github.com/Cece94/articguessr/models/aic"
	"github.com/Cece94/articguessr/models/service"
	"github.com/Cece94/articguessr/network"
	"github.com/Cece94/articguessr/util/logger"
	"github.com/op/go-logging"
)

// AICClientInterface is the subset of network.AICClient the rest of
// the app depends on. Tests substitute their own.
type AICClientInterface interface {
	FetchArtworks(filters *aic.Filters) *network.AICResponse
	ListArtworks(filters *aic.Filters) *network.AICResponse
	SearchArtworks(filters *aic.Filters) *network.AICResponse
	RandomArtwork() (*aic.Artwork, error)
}

// RedisClientInterface is the scroll-session cache contract.
type RedisClientInterface interface {
	ScrollSessionGet(sessionID string) (*service.ScrollSession, error)
	ScrollSessionSave(sess *service.ScrollSession) error
	ScrollSessionDelete(sessionID string) error
}

type Context struct {
	Config      *Config
	Logger      *logging.Logger
	AICClient   AICClientInterface
	RedisClient RedisClientInterface
}

func NewContext() *Context {
	config := NewConfig()
	log := getLogger(config)
	return &Context{
		Config:      config,
		Logger:      log,
		AICClient:   getAICClient(config, log),
		RedisClient: getRedisClient(config),
	}
}

func getLogger(config *Config) *logging.Logger {
	log, _ := logger.InitLogger(config.LogDir, config.LogLevel)
	return log
}

func getAICClient(config *Config, log *logging.Logger) AICClientInterface {
	client := network.NewAICClient(config.AICBaseURL, config.AICSearchURL, log)
	client.Sampler.MinYear = config.SamplerMinYear
	client.Sampler.FallbackMaxPage = config.SamplerFallback
	return client
}

func getRedisClient(config *Config) RedisClientInterface {
	return network.NewRedisClient(
		config.RedisURL,
		config.RedisPassword,
		config.RedisDefaultDB,
		config.CacheTTL)
}
