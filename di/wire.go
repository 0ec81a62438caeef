//go:build wireinject
// +build wireinject

package di

import (
	"github.com/google/wire"

	"todo/config"
	"todo/infras/kafka"
	"todo/infras/mongo"
	"todo/infras/otel"
	"todo/infras/redis"
	todoEvent "todo/internal/domains/todo/event"
	todoRepository "todo/internal/domains/todo/repository"
	todoService "todo/internal/domains/todo/service"
	todoHandler "todo/internal/handlers/todo"
	"todo/shared/cache"
	"todo/shared/idgen"
	"todo/transport/http"
	"todo/transport/http/middleware"
	"todo/transport/http/router"
)

var configurations = wire.NewSet(
	config.Get,
)

var infrastructures = wire.NewSet(
	mongo.New,
	otel.New,
	redis.New,
	kafka.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
	idgen.New,
)

var todoDomain = wire.NewSet(
	todoRepository.New,
	todoEvent.New,
	todoService.New,
)

var domains = wire.NewSet(
	todoDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	todoHandler.New,
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
