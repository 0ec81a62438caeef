package event_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todo/config"
	kafkaMocks "todo/infras/kafka/mocks"
	"todo/infras/kafka"
	"todo/infras/otel/mocks"
	"todo/internal/domains/todo/event"
	"todo/internal/domains/todo/model"
	"todo/shared/logger"
)

func enabledConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Kafka.Enable = true
	cfg.Kafka.Topic = "todo-events"

	return cfg
}

func TestNewEvent(t *testing.T) {
	task := "have breakfast"
	completed := false
	ctx := logger.WithRequestID(context.Background(), "req-1")

	evt := event.NewEvent(ctx, event.Created, model.Todo{ID: "T-1233", Task: &task, Completed: &completed})

	assert.Equal(t, event.Created, evt.Type)
	assert.Equal(t, "T-1233", evt.TodoID)
	assert.Equal(t, "T-1233", evt.Todo.ID)
	assert.Equal(t, "have breakfast", *evt.Todo.Task)
	assert.Nil(t, evt.Todo.IsEditing)
	assert.Equal(t, "req-1", evt.RequestID)
	assert.NotEmpty(t, evt.OccurredAt)
}

func TestPublisher_Publish(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := kafkaMocks.NewMockClient(ctrl)
	publisher := event.New(enabledConfig(), mockClient, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "message sent with todo id key",
			setupMock: func() {
				mockClient.EXPECT().
					SendMessages(gomock.Any(), "todo-events", gomock.Any()).
					DoAndReturn(func(_ context.Context, _ string, messages ...kafka.Message) error {
						require.Len(t, messages, 1)
						assert.Equal(t, "T-1233", messages[0].Key)

						evt, ok := messages[0].Value.(event.Event)
						require.True(t, ok)
						assert.Equal(t, event.Updated, evt.Type)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "broker error",
			setupMock: func() {
				mockClient.EXPECT().
					SendMessages(gomock.Any(), "todo-events", gomock.Any()).
					Return(errors.New("broker unavailable"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := publisher.Publish(context.Background(), event.Updated, model.Todo{ID: "T-1233"})

			if tt.wantErr {
				assert.ErrorContains(t, err, "failed to publish todo.updated event")
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNew_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// no SendMessages expectation: a disabled publisher never touches the client
	mockClient := kafkaMocks.NewMockClient(ctrl)
	publisher := event.New(&config.Config{}, mockClient, mocks.NewOtel())

	assert.NoError(t, publisher.Publish(context.Background(), event.Deleted, model.Todo{ID: "T-1"}))
}
