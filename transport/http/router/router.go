package router

import (
	"frontdesk/internal/handlers/booking"
	"frontdesk/internal/handlers/cleaning"
	"frontdesk/internal/handlers/occupancy"
	"frontdesk/internal/handlers/room"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Room      room.Handler
	Booking   booking.Handler
	Occupancy occupancy.Handler
	Cleaning  cleaning.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Room.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Occupancy.Router(routerGroup)
		r.DomainHandlers.Cleaning.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
