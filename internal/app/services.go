package app

import (
	"github.com/rs/zerolog/log"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/service"
)

// ServiceComponents holds the storage-independent services.
type ServiceComponents struct {
	Engines *service.EngineFactory
	// Cache is nil when CACHE_SIZE is zero.
	Cache *service.ShardedCache
}

// InitializeServices builds the calculator engine factory and the product cache.
func InitializeServices(cfg config.Config) *ServiceComponents {
	engines := service.NewEngineFactory(
		nil,
		cfg.Currency.Settings(),
		service.MarginOptionsFromConfig(cfg.Calculator),
	)

	components := &ServiceComponents{Engines: engines}
	if cfg.Cache.Size > 0 {
		components.Cache = service.NewShardedCache(cfg.Cache.Size, cfg.Cache.TTL, cfg.Cache.Shards)
		log.Info().
			Int("size", cfg.Cache.Size).
			Dur("ttl", cfg.Cache.TTL).
			Msg("Product cache enabled")
	}

	return components
}

// Close stops the cache janitors.
func (s *ServiceComponents) Close() {
	if s != nil && s.Cache != nil {
		s.Cache.Stop()
	}
}
