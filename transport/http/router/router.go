package router

import (
	"github.com/go-chi/chi/v5"

	"todo/internal/handlers/todo"
	"todo/transport/http/middleware"
)

const basePath = "/rest/v1"

type DomainHandlers struct {
	Todo todo.Handler
}

type Router struct {
	DomainHandlers DomainHandlers
	Middleware     middleware.AppMiddleware
}

func (r *Router) SetupRoutes(router chi.Router) {
	router.Route(basePath, func(routerGroup chi.Router) {
		routerGroup.Use(
			r.Middleware.RequestContext,
			r.Middleware.Tracing,
			r.Middleware.RateLimit(),
		)

		r.DomainHandlers.Todo.Router(routerGroup)
	})
}

func New(domainHandlers DomainHandlers, appMiddleware middleware.AppMiddleware) Router {
	return Router{
		DomainHandlers: domainHandlers,
		Middleware:     appMiddleware,
	}
}
