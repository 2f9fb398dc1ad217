// Package main is the entry point for the area-length-service application.
//
// @title           Area & Length Calculator API
// @version         1.0.0
// @description     Converts room dimensions and target lengths into package counts.
//
//	Products sold by area or running length are bought in fixed-size packages.
//	The calculator reconciles the shopper's measurement with the package count,
//	clamps it against stock and renders the running total and price.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/area-length-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 API key for authentication. Required if authentication is enabled.
//
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
// @description                 Catalog administrator JWT: "Bearer <token>".
//
// @tag.name        Calculator
// @tag.description Quantity and price reconciliation
//
// @tag.name        Products
// @tag.description Product measurement metadata
//
// @tag.name        Auth
// @tag.description Catalog administrator login
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/area-length-service/docs" // swagger docs

	"github.com/guttosm/area-length-service/config"
	"github.com/guttosm/area-length-service/internal/app"
)

func main() {
	cfg := config.Load()

	router, cleanup := app.InitializeApp(cfg)
	server := app.NewServer(router, cfg.Server.Port, app.WithShutdownHook(cleanup))

	if err := server.Run(); err != nil {
		log.Fatal().Err(err).Msg("Server error")
	}
}
