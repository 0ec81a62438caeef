package repository

import (
	"context"
	"sync"

	"todo/internal/domains/todo/model"
)

type memoryImpl struct {
	mu    sync.RWMutex
	order []string
	todos map[string]model.Todo
}

// NewMemory returns a Todo repository held in process memory. FindAll returns
// documents in insertion order.
func NewMemory(seed ...model.Todo) Todo {
	repo := &memoryImpl{
		todos: make(map[string]model.Todo, len(seed)),
	}

	for _, todo := range seed {
		repo.put(todo)
	}

	return repo
}

func (repo *memoryImpl) put(todo model.Todo) {
	if _, ok := repo.todos[todo.ID]; !ok {
		repo.order = append(repo.order, todo.ID)
	}

	repo.todos[todo.ID] = todo
}

func (repo *memoryImpl) FindAll(ctx context.Context) ([]model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err //nolint:wrapcheck
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	todos := make([]model.Todo, 0, len(repo.order))
	for _, id := range repo.order {
		todos = append(todos, repo.todos[id])
	}

	return todos, nil
}

func (repo *memoryImpl) FindByID(ctx context.Context, id string) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, err //nolint:wrapcheck
	}

	repo.mu.RLock()
	defer repo.mu.RUnlock()

	return repo.todos[id], nil
}

func (repo *memoryImpl) Save(ctx context.Context, todo model.Todo) (model.Todo, error) {
	if err := ctx.Err(); err != nil {
		return model.Todo{}, err //nolint:wrapcheck
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	repo.put(todo)

	return todo, nil
}

func (repo *memoryImpl) Delete(ctx context.Context, todo model.Todo) error {
	if err := ctx.Err(); err != nil {
		return err //nolint:wrapcheck
	}

	repo.mu.Lock()
	defer repo.mu.Unlock()

	if _, ok := repo.todos[todo.ID]; !ok {
		return nil
	}

	delete(repo.todos, todo.ID)

	for i, id := range repo.order {
		if id == todo.ID {
			repo.order = append(repo.order[:i], repo.order[i+1:]...)

			break
		}
	}

	return nil
}
