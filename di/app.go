package di

import (
	"hotel/infras/otel"
	roomService "hotel/internal/domains/room/service"
	"hotel/transport/http"
)

// App is the HTTP service plus the hooks cmd/app runs before serving.
type App struct {
	HTTP  *http.HTTP
	Rooms roomService.Room
	Otel  otel.Otel
}
