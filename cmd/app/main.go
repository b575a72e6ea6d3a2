package main

import (
	"context"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title Hotel Booking API
// @version 1.0
// @description Rooms, bookings and the admin dashboard of the hotel booking service.
// @BasePath /
// @securityDefinitions.apikey SessionAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)
	logger.UseJSONOutput(cfg)

	app := di.InitializeService()

	if err := app.Rooms.Seed(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("Failed to seed rooms")
	}

	app.HTTP.Serve()
}
