package handler

import (
	"context"
	"net/http"
	"sync"

	"hotel/config"
	"hotel/di"
	"hotel/shared/logger"

	"github.com/rs/zerolog/log"
)

var (
	app  *di.App
	once sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.InitLogger()

		logger.SetLogLevel(cfg)
		logger.UseJSONOutput(cfg)

		app = di.InitializeService()

		if err := app.Rooms.Seed(context.Background()); err != nil {
			log.Error().Err(err).Msg("Failed to seed rooms")
		}
	})

	app.HTTP.ServeHTTP(w, r)
}
