package app

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/circuitbreaker"
	"github.com/guttosm/area-length-service/internal/metrics"
	"github.com/guttosm/area-length-service/internal/repository"
	"github.com/guttosm/area-length-service/internal/service"
)

// DatabaseComponents holds database-related components.
type DatabaseComponents struct {
	DB                     *repository.MongoDB
	ProductsRepo           repository.ProductsRepositoryInterface
	LoggingService         service.LoggingService
	ProductsCircuitBreaker *circuitbreaker.CircuitBreaker
	LogsCircuitBreaker     *circuitbreaker.CircuitBreaker
}

// InitializeDatabase connects to MongoDB and builds the guarded repositories.
// It returns nil when the database is disabled or unreachable, in which case
// the calculator still serves inline products.
func InitializeDatabase(cfg config.DatabaseConfig) *DatabaseComponents {
	if !cfg.Enabled {
		return nil
	}

	db, err := repository.NewMongoDB(cfg.URI, cfg.DatabaseName)
	if err != nil {
		log.Error().Err(err).Msg("Failed to connect to MongoDB - continuing without catalog")
		return nil
	}

	log.Info().Str("database", cfg.DatabaseName).Msg("Connected to MongoDB")

	ttlDays := int(cfg.LogsTTL.Hours() / 24)
	if err := db.SetLogsTTL(context.Background(), ttlDays); err != nil {
		log.Warn().Err(err).Msg("Failed to set logs TTL index (may already exist)")
	}

	productsCB := newCircuitBreaker("mongodb-products", cfg)
	logsCB := newCircuitBreaker("mongodb-logs", cfg)

	logsRepo := repository.NewLogsRepositoryWithCircuitBreaker(repository.NewLogsRepository(db), logsCB)
	productsRepo := repository.NewProductsRepositoryWithCircuitBreaker(repository.NewProductsRepository(db), productsCB)

	return &DatabaseComponents{
		DB:                     db,
		ProductsRepo:           productsRepo,
		LoggingService:         service.NewLoggingService(logsRepo),
		ProductsCircuitBreaker: productsCB,
		LogsCircuitBreaker:     logsCB,
	}
}

func newCircuitBreaker(name string, cfg config.DatabaseConfig) *circuitbreaker.CircuitBreaker {
	metrics.RecordCircuitBreakerState(name, int(circuitbreaker.StateClosed), circuitbreaker.StateClosed.String())

	return circuitbreaker.New(circuitbreaker.Config{
		FailureThreshold: cfg.CircuitBreakerFailureThreshold,
		SuccessThreshold: cfg.CircuitBreakerSuccessThreshold,
		Timeout:          cfg.CircuitBreakerTimeout,
		Name:             name,
		// a duplicate key from two racing upserts says nothing about server health
		IsFailure: func(err error) bool {
			return !mongo.IsDuplicateKeyError(err)
		},
		OnStateChange: func(name string, _, to circuitbreaker.State) {
			metrics.RecordCircuitBreakerState(name, int(to), to.String())
		},
	})
}

// Close disconnects from MongoDB. It is safe to call on nil components.
func (d *DatabaseComponents) Close() {
	if d == nil || d.DB == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := d.DB.Close(ctx); err != nil {
		log.Warn().Err(err).Msg("Failed to close MongoDB connection")
	}
}
