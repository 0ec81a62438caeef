package service_test

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"todo/infras/otel/mocks"
	"todo/internal/domains/todo/event"
	todoMocks "todo/internal/domains/todo/mocks"
	"todo/internal/domains/todo/model"
	"todo/internal/domains/todo/model/dto"
	"todo/internal/domains/todo/service"
	"todo/shared/failure"
	"todo/shared/idgen"
)

// fixedID makes the generator return "T-1233".
func fixedID() idgen.Generator {
	return idgen.NewWithSource(bytes.NewReader([]byte{0, 0, 0, 0, 0, 0, 0x04, 0xd1}))
}

func strPtr(s string) *string {
	return &s
}

func boolPtr(b bool) *bool {
	return &b
}

func TestTodoService_List(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, fixedID(), event.NewNoop(), mocks.NewOtel())

	tests := []struct {
		name       string
		setupMock  func()
		wantErr    bool
		wantResult []dto.TodoResponse
	}{
		{
			name: "successful list",
			setupMock: func() {
				mockRepo.EXPECT().
					FindAll(gomock.Any()).
					Return([]model.Todo{
						{ID: "T-1", Task: strPtr("abcd"), Completed: boolPtr(false)},
					}, nil)
			},
			wantErr: false,
			wantResult: []dto.TodoResponse{
				{ID: "T-1", Task: strPtr("abcd"), Completed: boolPtr(false)},
			},
		},
		{
			name: "empty store",
			setupMock: func() {
				mockRepo.EXPECT().
					FindAll(gomock.Any()).
					Return([]model.Todo{}, nil)
			},
			wantErr:    false,
			wantResult: []dto.TodoResponse{},
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					FindAll(gomock.Any()).
					Return(nil, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.List(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, res)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantResult, res)
			}
		})
	}
}

func TestTodoService_Create(t *testing.T) {
	req := dto.TodoRequest{Task: strPtr("have breakfast"), Completed: boolPtr(false)}

	tests := []struct {
		name      string
		idgen     idgen.Generator
		setupMock func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher)
		wantID    string
		wantCode  int
	}{
		{
			name:  "saved on first attempt",
			idgen: fixedID(),
			setupMock: func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher) {
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, todo model.Todo) (model.Todo, error) {
						return todo, nil
					})
				publisher.EXPECT().
					Publish(gomock.Any(), event.Created, gomock.Any()).
					Return(nil)
			},
			wantID: "T-1233",
		},
		{
			name:  "saved after three failures keeps the same id",
			idgen: fixedID(),
			setupMock: func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher) {
				var ids []string

				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, todo model.Todo) (model.Todo, error) {
						ids = append(ids, todo.ID)
						if len(ids) < 4 {
							return model.Todo{}, errors.New("transient error")
						}

						assert.Equal(t, []string{"T-1233", "T-1233", "T-1233", "T-1233"}, ids)

						return todo, nil
					}).
					Times(4)
				publisher.EXPECT().
					Publish(gomock.Any(), event.Created, gomock.Any()).
					Return(nil)
			},
			wantID: "T-1233",
		},
		{
			name:  "gives up after four attempts",
			idgen: fixedID(),
			setupMock: func(repo *todoMocks.MockTodo, _ *todoMocks.MockPublisher) {
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					Return(model.Todo{}, errors.New("database down")).
					Times(4)
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:  "id generation error",
			idgen: idgen.NewWithSource(bytes.NewReader(nil)),
			setupMock: func(_ *todoMocks.MockTodo, _ *todoMocks.MockPublisher) {
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name:  "publish error does not fail the request",
			idgen: fixedID(),
			setupMock: func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher) {
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, todo model.Todo) (model.Todo, error) {
						return todo, nil
					})
				publisher.EXPECT().
					Publish(gomock.Any(), event.Created, gomock.Any()).
					Return(errors.New("broker down"))
			},
			wantID: "T-1233",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := todoMocks.NewMockTodo(ctrl)
			mockPublisher := todoMocks.NewMockPublisher(ctrl)
			tt.setupMock(mockRepo, mockPublisher)

			svc := service.New(mockRepo, tt.idgen, mockPublisher, mocks.NewOtel())

			res, err := svc.Create(context.Background(), req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantID, res.ID)
		})
	}
}

func TestTodoService_Create_CanceledContext(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	svc := service.New(mockRepo, fixedID(), event.NewNoop(), mocks.NewOtel())

	ctx, cancel := context.WithCancel(context.Background())

	mockRepo.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, _ model.Todo) (model.Todo, error) {
			cancel()

			return model.Todo{}, errors.New("client gone")
		}).
		MaxTimes(1)

	_, err := svc.Create(ctx, dto.TodoRequest{})
	assert.Error(t, err)
}

func TestTodoService_Update(t *testing.T) {
	existing := model.Todo{ID: "T-1233", Task: strPtr("abcd"), Completed: boolPtr(false), IsEditing: boolPtr(true)}

	tests := []struct {
		name       string
		req        dto.TodoRequest
		setupMock  func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher)
		wantResult dto.TodoResponse
		wantCode   int
	}{
		{
			name: "fields are overwritten",
			req:  dto.TodoRequest{Task: strPtr("1234"), Completed: boolPtr(true), IsEditing: boolPtr(false)},
			setupMock: func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher) {
				repo.EXPECT().FindByID(gomock.Any(), "T-1233").Return(existing, nil)
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, todo model.Todo) (model.Todo, error) {
						return todo, nil
					})
				publisher.EXPECT().Publish(gomock.Any(), event.Updated, gomock.Any()).Return(nil)
			},
			wantResult: dto.TodoResponse{ID: "T-1233", Task: strPtr("1234"), Completed: boolPtr(true), IsEditing: boolPtr(false)},
		},
		{
			name: "omitted fields become null",
			req:  dto.TodoRequest{Task: strPtr("only task")},
			setupMock: func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher) {
				repo.EXPECT().FindByID(gomock.Any(), "T-1233").Return(existing, nil)
				repo.EXPECT().
					Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, todo model.Todo) (model.Todo, error) {
						return todo, nil
					})
				publisher.EXPECT().Publish(gomock.Any(), event.Updated, gomock.Any()).Return(nil)
			},
			wantResult: dto.TodoResponse{ID: "T-1233", Task: strPtr("only task")},
		},
		{
			name: "unknown id",
			req:  dto.TodoRequest{Task: strPtr("1234")},
			setupMock: func(repo *todoMocks.MockTodo, _ *todoMocks.MockPublisher) {
				repo.EXPECT().FindByID(gomock.Any(), "T-1233").Return(model.Todo{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "lookup error",
			req:  dto.TodoRequest{Task: strPtr("1234")},
			setupMock: func(repo *todoMocks.MockTodo, _ *todoMocks.MockPublisher) {
				repo.EXPECT().FindByID(gomock.Any(), "T-1233").Return(model.Todo{}, errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "save error is not retried",
			req:  dto.TodoRequest{Task: strPtr("1234")},
			setupMock: func(repo *todoMocks.MockTodo, _ *todoMocks.MockPublisher) {
				repo.EXPECT().FindByID(gomock.Any(), "T-1233").Return(existing, nil)
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(model.Todo{}, errors.New("database error")).Times(1)
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := todoMocks.NewMockTodo(ctrl)
			mockPublisher := todoMocks.NewMockPublisher(ctrl)
			tt.setupMock(mockRepo, mockPublisher)

			svc := service.New(mockRepo, fixedID(), mockPublisher, mocks.NewOtel())

			res, err := svc.Update(context.Background(), "T-1233", tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantResult, res)
		})
	}
}

func TestTodoService_Update_NotFoundMessage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := todoMocks.NewMockTodo(ctrl)
	mockRepo.EXPECT().FindByID(gomock.Any(), "T-42").Return(model.Todo{}, nil)

	svc := service.New(mockRepo, fixedID(), event.NewNoop(), mocks.NewOtel())

	_, err := svc.Update(context.Background(), "T-42", dto.TodoRequest{})
	assert.EqualError(t, err, "T-42 not found")
}

func TestTodoService_Delete(t *testing.T) {
	existing := model.Todo{ID: "T-1233", Task: strPtr("abcd")}

	tests := []struct {
		name      string
		setupMock func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher)
		wantCode  int
	}{
		{
			name: "successful delete",
			setupMock: func(repo *todoMocks.MockTodo, publisher *todoMocks.MockPublisher) {
				repo.EXPECT().FindByID(gomock.Any(), "T-1233").Return(existing, nil)
				repo.EXPECT().Delete(gomock.Any(), existing).Return(nil)
				publisher.EXPECT().Publish(gomock.Any(), event.Deleted, existing).Return(nil)
			},
		},
		{
			name: "unknown id",
			setupMock: func(repo *todoMocks.MockTodo, _ *todoMocks.MockPublisher) {
				repo.EXPECT().FindByID(gomock.Any(), "T-1233").Return(model.Todo{}, nil)
			},
			wantCode: http.StatusNotFound,
		},
		{
			name: "delete error",
			setupMock: func(repo *todoMocks.MockTodo, _ *todoMocks.MockPublisher) {
				repo.EXPECT().FindByID(gomock.Any(), "T-1233").Return(existing, nil)
				repo.EXPECT().Delete(gomock.Any(), existing).Return(errors.New("database error"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := todoMocks.NewMockTodo(ctrl)
			mockPublisher := todoMocks.NewMockPublisher(ctrl)
			tt.setupMock(mockRepo, mockPublisher)

			svc := service.New(mockRepo, fixedID(), mockPublisher, mocks.NewOtel())

			err := svc.Delete(context.Background(), "T-1233")

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			assert.NoError(t, err)
		})
	}
}
