package app

import (
	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/http"
	"github.com/guttosm/area-length-service/internal/service"
)

// RouterComponents holds router-related components.
type RouterComponents struct {
	Handler       *http.Handler
	HealthHandler *http.HealthHandler
	Config        http.RouterConfig
}

// InitializeRouter builds the HTTP handlers and router configuration.
// dbComponents and authService may be nil.
func InitializeRouter(
	services *ServiceComponents,
	dbComponents *DatabaseComponents,
	authService service.AuthService,
	cfg config.Config,
) *RouterComponents {
	var productService service.ProductService
	var loggingService service.LoggingService
	healthHandler := http.NewHealthHandler()

	if dbComponents != nil {
		productService = newProductService(dbComponents, services)
		loggingService = dbComponents.LoggingService

		if dbComponents.DB != nil {
			healthHandler.RegisterChecker("mongodb", http.HealthCheckFunc(dbComponents.DB.HealthCheck))
		}
		if dbComponents.ProductsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_products", dbComponents.ProductsCircuitBreaker)
		}
		if dbComponents.LogsCircuitBreaker != nil {
			healthHandler.RegisterCircuitBreaker("mongodb_logs", dbComponents.LogsCircuitBreaker)
		}
	}

	handler := http.NewHandler(
		productService,
		services.Engines,
		http.WithDefaultLocale(cfg.Calculator.DefaultLocale),
	)

	routerCfg := http.DefaultRouterConfig()
	routerCfg.RateLimit = cfg.Server.RateLimit
	routerCfg.RateWindow = cfg.Server.RateWindow
	routerCfg.EnableAuth = cfg.Auth.Enabled
	routerCfg.APIKeys = cfg.Auth.APIKeys
	routerCfg.EnableIdempotency = true
	routerCfg.CORSOrigins = cfg.Server.CORSOrigins
	routerCfg.SwaggerUser = cfg.Server.SwaggerUser
	routerCfg.SwaggerPass = cfg.Server.SwaggerPass
	routerCfg.StockThreshold = cfg.Calculator.StockDisplayThreshold
	routerCfg.LoggingService = loggingService
	routerCfg.AuthService = authService

	return &RouterComponents{
		Handler:       handler,
		HealthHandler: healthHandler,
		Config:        routerCfg,
	}
}

func newProductService(dbComponents *DatabaseComponents, services *ServiceComponents) service.ProductService {
	if dbComponents.ProductsRepo == nil {
		return nil
	}
	if services.Cache != nil {
		return service.NewProductService(dbComponents.ProductsRepo, services.Cache)
	}
	return service.NewProductService(dbComponents.ProductsRepo, nil)
}
