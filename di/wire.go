//go:build wireinject
// +build wireinject

package di

import (
	"frontdesk/config"
	"frontdesk/infras/jwt"
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/infras/redis"
	"frontdesk/infras/telegram"
	"frontdesk/permissions"
	"frontdesk/shared/cache"
	"frontdesk/shared/event"
	"frontdesk/transport/http"
	"frontdesk/transport/http/middleware"
	"frontdesk/transport/http/router"

	bookingRepository "frontdesk/internal/domains/booking/repository"
	bookingService "frontdesk/internal/domains/booking/service"
	cleaningRepository "frontdesk/internal/domains/cleaning/repository"
	cleaningService "frontdesk/internal/domains/cleaning/service"
	customerRepository "frontdesk/internal/domains/customer/repository"
	occupancyService "frontdesk/internal/domains/occupancy/service"
	roomRepository "frontdesk/internal/domains/room/repository"
	roomService "frontdesk/internal/domains/room/service"

	bookingHandler "frontdesk/internal/handlers/booking"
	cleaningHandler "frontdesk/internal/handlers/cleaning"
	occupancyHandler "frontdesk/internal/handlers/occupancy"
	roomHandler "frontdesk/internal/handlers/room"

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
	telegram.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	event.New,
)

var roomDomain = wire.NewSet(
	roomRepository.New,
	roomService.New,
)

var bookingDomain = wire.NewSet(
	customerRepository.New,
	bookingRepository.New,
	bookingService.New,
)

var occupancyDomain = wire.NewSet(
	occupancyService.New,
)

var cleaningDomain = wire.NewSet(
	cleaningRepository.New,
	cleaningService.New,
)

var domains = wire.NewSet(
	roomDomain,
	bookingDomain,
	occupancyDomain,
	cleaningDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	roomHandler.New,
	bookingHandler.New,
	occupancyHandler.New,
	cleaningHandler.New,
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
