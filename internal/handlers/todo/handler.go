package todo

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"todo/infras/otel"
	"todo/internal/domains/todo/model/dto"
	"todo/internal/domains/todo/service"
	"todo/shared/constant"
	"todo/shared/failure"
	"todo/shared/validator"
	"todo/transport/http/response"
)

type Handler struct {
	service service.Todo
	otel    otel.Otel
}

func New(service service.Todo, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/todos", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetTodos)
		routerGroup.Post("/", handler.CreateTodo)
		routerGroup.Put("/{"+constant.RequestParamTodoID+"}", handler.UpdateTodo)
		routerGroup.Delete("/{"+constant.RequestParamTodoID+"}", handler.DeleteTodo)
	})
}

// GetTodos lists every todo.
// @Summary List todo items
// @Description Return every stored todo item. An empty store answers 204 without a body.
// @Tags Todo
// @Produce json
// @Success 200 {array} dto.TodoResponse "List of todo items"
// @Success 204 "No todo items"
// @Failure 400 {object} response.Error
// @Router /rest/v1/todos [get]
func (handler *Handler) GetTodos(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetTodos")
	defer scope.End()

	todos, err := handler.service.List(ctx)
	if err != nil {
		scope.TraceError(err)
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to get todos")

		response.WithError(w, failure.BadRequest(err))

		return
	}

	if len(todos) == 0 {
		response.WithNoContent(w)

		return
	}

	response.WithJSON(w, http.StatusOK, todos)
}

// CreateTodo creates a todo item.
// @Summary Create a todo item
// @Description Create a todo item; the server assigns its id.
// @Tags Todo
// @Accept json
// @Produce json
// @Param request body dto.TodoRequest true "Todo"
// @Success 201 {object} dto.CreateTodoResponse "Id of the created todo"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rest/v1/todos [post]
func (handler *Handler) CreateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateTodo")
	defer scope.End()

	req, err := validator.Decode[dto.TodoRequest](http.MaxBytesReader(w, r.Body, constant.RequestMaxBodySize))
	if err != nil {
		scope.TraceError(err)
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Create(ctx, req)
	if err != nil {
		scope.TraceError(err)
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to create todo")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Todo " + res.ID + " created")

	response.WithJSON(w, http.StatusCreated, res)
}

// UpdateTodo replaces the editable fields of a todo item.
// @Summary Update a todo item
// @Description Overwrite task, completed and isEditing. Omitted fields become null.
// @Tags Todo
// @Accept json
// @Produce json
// @Param todoId path string true "Todo ID"
// @Param request body dto.TodoRequest true "Todo"
// @Success 200 {object} dto.TodoResponse "Updated todo"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rest/v1/todos/{todoId} [put]
func (handler *Handler) UpdateTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamTodoID)
	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	req, err := validator.Decode[dto.TodoRequest](http.MaxBytesReader(w, r.Body, constant.RequestMaxBodySize))
	if err != nil {
		scope.TraceError(err)
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	todo, err := handler.service.Update(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		zerolog.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to update todo")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, todo)
}

// DeleteTodo deletes a todo item.
// @Summary Delete a todo item
// @Tags Todo
// @Param todoId path string true "Todo ID"
// @Success 200 "Deleted"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /rest/v1/todos/{todoId} [delete]
func (handler *Handler) DeleteTodo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteTodo")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamTodoID)
	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		zerolog.Ctx(ctx).Error().Err(err).Str("id", id).Msg("failed to delete todo")

		response.WithError(w, err)

		return
	}

	response.WithEmpty(w)
}
