package event

//go:generate go run go.uber.org/mock/mockgen -source=./event.go -destination=../mocks/event_mock.go -package=mocks

import (
	"context"
	"fmt"

	"github.com/rs/zerolog/log"

	"todo/config"
	"todo/infras/kafka"
	"todo/infras/otel"
	"todo/internal/domains/todo/model"
	"todo/internal/domains/todo/model/dto"
	"todo/shared/constant"
	"todo/shared/logger"
	"todo/shared/timezone"
)

type Type string

const (
	Created Type = "todo.created"
	Updated Type = "todo.updated"
	Deleted Type = "todo.deleted"
)

// Event is the payload published for every todo lifecycle change.
type Event struct {
	Type       Type             `json:"type"`
	TodoID     string           `json:"todoId"`
	Todo       dto.TodoResponse `json:"todo"`
	RequestID  string           `json:"requestId,omitempty"`
	OccurredAt string           `json:"occurredAt"`
}

func NewEvent(ctx context.Context, eventType Type, todo model.Todo) Event {
	evt := Event{
		Type:       eventType,
		TodoID:     todo.ID,
		RequestID:  logger.RequestID(ctx),
		OccurredAt: timezone.Format(timezone.Now(), constant.DateFormat),
	}
	evt.Todo.FromModel(todo)

	return evt
}

type Publisher interface {
	Publish(ctx context.Context, eventType Type, todo model.Todo) error
}

type kafkaPublisher struct {
	client kafka.Client
	topic  string
	otel   otel.Otel
}

// New returns a Kafka backed publisher, or a no-op one when Kafka is disabled.
func New(cfg *config.Config, client kafka.Client, otel otel.Otel) Publisher {
	if !cfg.Kafka.Enable {
		log.Info().Msg("Kafka disabled, todo events will not be published")

		return NewNoop()
	}

	return &kafkaPublisher{
		client: client,
		topic:  cfg.Kafka.Topic,
		otel:   otel,
	}
}

func (p *kafkaPublisher) Publish(ctx context.Context, eventType Type, todo model.Todo) (err error) {
	ctx, scope := p.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".Publish")
	defer scope.End()

	scope.SetAttributes(map[string]any{
		"event.type":                    string(eventType),
		"event.topic":                   p.topic,
		constant.OtelTodoIDAttributeKey: todo.ID,
	})

	err = p.client.SendMessages(ctx, p.topic, kafka.Message{
		Key:   todo.ID,
		Value: NewEvent(ctx, eventType, todo),
	})
	if err != nil {
		scope.TraceError(err)

		return fmt.Errorf("failed to publish %s event: %w", eventType, err)
	}

	return nil
}

type noopPublisher struct{}

func NewNoop() Publisher {
	return noopPublisher{}
}

func (noopPublisher) Publish(_ context.Context, _ Type, _ model.Todo) error {
	return nil
}
