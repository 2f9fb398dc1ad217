// Package app wires configuration, storage and the HTTP transport together.
package app

import (
	"github.com/gin-gonic/gin"

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/http"
)

// InitializeApp creates and wires all application dependencies. The returned
// cleanup function flushes pending activity logs and closes MongoDB.
func InitializeApp(cfg config.Config) (*gin.Engine, func()) {
	InitializeLogger()

	serviceComponents := InitializeServices(cfg)
	dbComponents := InitializeDatabase(cfg.Database)
	authService := InitializeAuth(cfg.Auth)

	if dbComponents != nil {
		InitializeActivityLogger(dbComponents.LoggingService)
	}

	routerComponents := InitializeRouter(serviceComponents, dbComponents, authService, cfg)
	router := http.NewRouter(routerComponents.Handler, routerComponents.HealthHandler, routerComponents.Config)

	cleanup := func() {
		StopActivityLogger()
		serviceComponents.Close()
		dbComponents.Close()
	}
	return router, cleanup
}
