package router

import (
	"hotel/internal/handlers/auth"
	"hotel/internal/handlers/booking"
	"hotel/internal/handlers/dashboard"
	"hotel/internal/handlers/room"
	"hotel/transport/http/middleware"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth      auth.Handler
	Room      room.Handler
	Booking   booking.Handler
	Dashboard dashboard.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Session        middleware.AdminSession
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/api", func(routerGroup chi.Router) {
		routerGroup.Use(r.Session.Session)

		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Auth.Router(routerGroup)

		routerGroup.Group(func(admin chi.Router) {
			admin.Use(r.Session.RequireAdmin)

			r.DomainHandlers.Room.AdminRouter(admin)
			r.DomainHandlers.Booking.AdminRouter(admin)
			r.DomainHandlers.Dashboard.AdminRouter(admin)
		})
	})
}

func New(domainHandlers DomainHandlers, session middleware.AdminSession) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Session:        session,
	}
}
