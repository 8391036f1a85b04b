package router

import (
	"talentlink/internal/handlers/auth"
	"talentlink/internal/handlers/booking"
	"talentlink/internal/handlers/friendship"
	"talentlink/internal/handlers/notification"
	"talentlink/internal/handlers/provider"
	"talentlink/internal/handlers/schedule"
	"talentlink/internal/handlers/session"
	"talentlink/internal/handlers/wishlist"

	"github.com/go-chi/chi/v5"
)

type DomainHandlers struct {
	Auth         auth.Handler
	Provider     provider.Handler
	Friendship   friendship.Handler
	Schedule     schedule.Handler
	Booking      booking.Handler
	Session      session.Handler
	Wishlist     wishlist.Handler
	Notification notification.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route("/v1", func(routerGroup chi.Router) {
		r.DomainHandlers.Auth.Router(routerGroup)
		r.DomainHandlers.Provider.Router(routerGroup)
		r.DomainHandlers.Friendship.Router(routerGroup)
		r.DomainHandlers.Schedule.Router(routerGroup)
		r.DomainHandlers.Booking.Router(routerGroup)
		r.DomainHandlers.Session.Router(routerGroup)
		r.DomainHandlers.Wishlist.Router(routerGroup)
		r.DomainHandlers.Notification.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers) Router {
	return Router{
		DomainHandlers: domainHandlers,
	}
}
