package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Todo=MockTodoService

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v5"
	"github.com/rs/zerolog"

	"todo/infras/otel"
	"todo/internal/domains/todo/event"
	"todo/internal/domains/todo/model"
	"todo/internal/domains/todo/model/dto"
	"todo/internal/domains/todo/repository"
	"todo/shared/constant"
	"todo/shared/failure"
	"todo/shared/idgen"
)

type Todo interface {
	List(ctx context.Context) ([]dto.TodoResponse, error)
	Create(ctx context.Context, req dto.TodoRequest) (dto.CreateTodoResponse, error)
	Update(ctx context.Context, id string, req dto.TodoRequest) (dto.TodoResponse, error)
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo      repository.Todo
	idgen     idgen.Generator
	publisher event.Publisher
	otel      otel.Otel
}

func New(repo repository.Todo, idgen idgen.Generator, publisher event.Publisher, otel otel.Otel) Todo {
	return &serviceImpl{
		repo:      repo,
		idgen:     idgen,
		publisher: publisher,
		otel:      otel,
	}
}

func (s *serviceImpl) List(ctx context.Context) (res []dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".List")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	todos, err := s.repo.FindAll(ctx)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to get todos")

		return nil, fmt.Errorf("failed to get todos: %w", err)
	}

	scope.SetAttribute("todo.count", len(todos))

	return dto.FromModels(todos), nil
}

// Create stores a new todo under a freshly generated id. A failed save is retried
// immediately, up to constant.CreateSaveRetries times, always with the same id.
func (s *serviceImpl) Create(ctx context.Context, req dto.TodoRequest) (res dto.CreateTodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	id, err := s.idgen.Generate()
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Msg("failed to generate todo id")

		return res, failure.InternalError(fmt.Errorf("failed to generate todo id: %w", err)) //nolint:wrapcheck
	}

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	todo := req.ToModel(id)
	attempt := 0

	saved, err := backoff.Retry(ctx, func() (model.Todo, error) {
		if ctx.Err() != nil {
			return model.Todo{}, backoff.Permanent(ctx.Err())
		}

		attempt++

		saved, err := s.repo.Save(ctx, todo)
		if err != nil {
			zerolog.Ctx(ctx).Warn().Err(err).Str(model.FieldID, id).Int("attempt", attempt).Msg("failed to save todo")

			return model.Todo{}, err
		}

		return saved, nil
	}, backoff.WithBackOff(&backoff.ZeroBackOff{}), backoff.WithMaxTries(constant.CreateSaveRetries+1))
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str(model.FieldID, id).Int("attempts", attempt).Msg("failed to create todo")

		return res, fmt.Errorf("failed to create todo: %w", err)
	}

	s.publish(ctx, event.Created, saved)

	res.ID = saved.ID

	return res, nil
}

// Update replaces every editable field of the todo, including fields left out of req.
func (s *serviceImpl) Update(ctx context.Context, id string, req dto.TodoRequest) (res dto.TodoResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	todo, err := s.find(ctx, id)
	if err != nil {
		return res, err
	}

	req.ApplyTo(&todo)

	saved, err := s.repo.Save(ctx, todo)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str(model.FieldID, id).Msg("failed to update todo")

		return res, fmt.Errorf("failed to update todo: %w", err)
	}

	s.publish(ctx, event.Updated, saved)

	res.FromModel(saved)

	return res, nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	todo, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if err = s.repo.Delete(ctx, todo); err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str(model.FieldID, id).Msg("failed to delete todo")

		return fmt.Errorf("failed to delete todo: %w", err)
	}

	s.publish(ctx, event.Deleted, todo)

	return nil
}

func (s *serviceImpl) find(ctx context.Context, id string) (model.Todo, error) {
	todo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		zerolog.Ctx(ctx).Error().Err(err).Str(model.FieldID, id).Msg("failed to get todo")

		return model.Todo{}, fmt.Errorf("failed to get todo: %w", err)
	}

	if todo.ID == constant.Empty {
		zerolog.Ctx(ctx).Info().Str(model.FieldID, id).Msg("todo not found")

		return model.Todo{}, failure.NotFound(id + " not found") //nolint:wrapcheck
	}

	return todo, nil
}

// publish never fails the caller; the todo is already persisted.
func (s *serviceImpl) publish(ctx context.Context, eventType event.Type, todo model.Todo) {
	if err := s.publisher.Publish(ctx, eventType, todo); err != nil {
		zerolog.Ctx(ctx).Warn().Err(err).Str(model.FieldID, todo.ID).Str("event", string(eventType)).Msg("failed to publish todo event")
	}
}
