package main

import (
	"talentlink/config"
	"talentlink/di"
	"talentlink/shared/logger"
)

// @title						TalentLink API
// @version					1.0
// @description				Marketplace API for booking mentoring sessions with talent providers.
// @BasePath					/v1
//
// @securityDefinitions.apikey	BearerAuth
// @in							header
// @name						Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
