package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	mongoDriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"todo/infras/mongo"
	"todo/infras/otel"
	"todo/internal/domains/todo/model"
	"todo/shared/constant"
	"todo/shared/logger"
)

// Todo is the persistence gateway for todo documents.
type Todo interface {
	// FindAll returns every stored todo in no particular order.
	FindAll(ctx context.Context) ([]model.Todo, error)
	// FindByID returns a zero Todo, and no error, when id is unknown.
	FindByID(ctx context.Context, id string) (model.Todo, error)
	// Save inserts or fully replaces the document with the same id.
	Save(ctx context.Context, todo model.Todo) (model.Todo, error)
	// Delete removes the document with todo.ID. Deleting a missing document is not an error.
	Delete(ctx context.Context, todo model.Todo) error
}

type repositoryImpl struct {
	collection *mongoDriver.Collection
	otel       otel.Otel
}

func New(db *mongo.Connection, otel otel.Otel) Todo {
	return NewWithDatabase(db.Database, otel)
}

func NewWithDatabase(db *mongoDriver.Database, otel otel.Otel) Todo {
	return &repositoryImpl{
		collection: db.Collection(model.CollectionName),
		otel:       otel,
	}
}

func byID(id string) bson.D {
	return bson.D{{Key: model.FieldID, Value: id}}
}

func (repo *repositoryImpl) FindAll(ctx context.Context) (todos []model.Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".FindAll")
	defer scope.End()

	cursor, err := repo.collection.Find(ctx, bson.D{})
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to find data (%s): %w", model.EntityName, err)
	}
	defer cursor.Close(ctx)

	todos = []model.Todo{}

	if err = cursor.All(ctx, &todos); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return nil, fmt.Errorf("failed to decode data (%s): %w", model.EntityName, err)
	}

	return todos, nil
}

func (repo *repositoryImpl) FindByID(ctx context.Context, id string) (todo model.Todo, err error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".FindByID")
	defer scope.End()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, id)

	err = repo.collection.FindOne(ctx, byID(id)).Decode(&todo)
	if errors.Is(err, mongoDriver.ErrNoDocuments) {
		return model.Todo{}, nil
	}

	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Todo{}, fmt.Errorf("failed to get data (%s): %w", model.EntityName, err)
	}

	return todo, nil
}

func (repo *repositoryImpl) Save(ctx context.Context, todo model.Todo) (model.Todo, error) {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Save")
	defer scope.End()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, todo.ID)

	_, err := repo.collection.ReplaceOne(ctx, byID(todo.ID), todo, options.Replace().SetUpsert(true))
	if err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return model.Todo{}, fmt.Errorf("failed to save data (%s): %w", model.EntityName, err)
	}

	return todo, nil
}

func (repo *repositoryImpl) Delete(ctx context.Context, todo model.Todo) error {
	ctx, scope := repo.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+"."+model.EntityName+".Delete")
	defer scope.End()

	scope.SetAttribute(constant.OtelTodoIDAttributeKey, todo.ID)

	if _, err := repo.collection.DeleteOne(ctx, byID(todo.ID)); err != nil {
		logger.ErrorWithStack(err)
		scope.TraceError(err)

		return fmt.Errorf("failed to delete data (%s): %w", model.EntityName, err)
	}

	return nil
}
