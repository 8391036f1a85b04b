//go:build wireinject
// +build wireinject

package di

import (
	"talentlink/config"
	"talentlink/infras/jwt"
	"talentlink/infras/kafka"
	"talentlink/infras/otel"
	"talentlink/infras/postgres"
	"talentlink/infras/redis"
	"talentlink/infras/s3"
	"talentlink/permissions"
	"talentlink/shared/cache"
	"talentlink/transport/http"
	"talentlink/transport/http/middleware"
	"talentlink/transport/http/router"

	authService "talentlink/internal/domains/auth/service"
	bookingRepository "talentlink/internal/domains/booking/repository"
	friendshipRepository "talentlink/internal/domains/friendship/repository"
	friendshipService "talentlink/internal/domains/friendship/service"
	notificationRepository "talentlink/internal/domains/notification/repository"
	notificationService "talentlink/internal/domains/notification/service"
	providerRepository "talentlink/internal/domains/provider/repository"
	providerService "talentlink/internal/domains/provider/service"
	scheduleRepository "talentlink/internal/domains/schedule/repository"
	sessionRepository "talentlink/internal/domains/session/repository"
	sessionService "talentlink/internal/domains/session/service"
	userRepository "talentlink/internal/domains/user/repository"
	wishlistRepository "talentlink/internal/domains/wishlist/repository"
	wishlistService "talentlink/internal/domains/wishlist/service"

	authHandler "talentlink/internal/handlers/auth"
	bookingHandler "talentlink/internal/handlers/booking"
	friendshipHandler "talentlink/internal/handlers/friendship"
	notificationHandler "talentlink/internal/handlers/notification"
	providerHandler "talentlink/internal/handlers/provider"
	scheduleHandler "talentlink/internal/handlers/schedule"
	sessionHandler "talentlink/internal/handlers/session"
	wishlistHandler "talentlink/internal/handlers/wishlist"

	"github.com/google/wire"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var authDomain = wire.NewSet(
	userRepository.New,
	authService.New,
)

var providerDomain = wire.NewSet(
	providerRepository.New,
	providerService.New,
)

var friendshipDomain = wire.NewSet(
	friendshipRepository.New,
	friendshipService.New,
)

var scheduleDomain = wire.NewSet(
	scheduleRepository.New,
	provideScheduleService,
)

var bookingDomain = wire.NewSet(
	bookingRepository.New,
	provideBookingService,
)

var sessionDomain = wire.NewSet(
	sessionRepository.New,
	sessionService.New,
)

var wishlistDomain = wire.NewSet(
	wishlistRepository.New,
	wishlistService.New,
)

var notificationDomain = wire.NewSet(
	notificationRepository.New,
	notificationService.New,
)

var domains = wire.NewSet(
	authDomain,
	providerDomain,
	friendshipDomain,
	scheduleDomain,
	bookingDomain,
	sessionDomain,
	wishlistDomain,
	notificationDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	providerHandler.New,
	friendshipHandler.New,
	scheduleHandler.New,
	bookingHandler.New,
	sessionHandler.New,
	wishlistHandler.New,
	notificationHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
