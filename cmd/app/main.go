package main

import (
	"github.com/rs/zerolog/log"

	"todo/config"
	"todo/di"
	"todo/helper"
	"todo/shared/logger"
	"todo/shared/timezone"
)

func main() {
	logger.InitLogger()

	cfg := config.Get()

	logger.SetLogLevel(cfg)
	timezone.Init(cfg)

	if cfg.DB.Mongo.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
