package dto

import (
	"todo/internal/domains/todo/model"
	gModel "todo/shared/model"
	"todo/shared/timezone"
)

// TodoRequest is the client-editable part of a todo. It never carries an id.
type TodoRequest struct {
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
	IsEditing *bool   `json:"isEditing"`
}

func (r *TodoRequest) ToModel(id string) model.Todo {
	now := timezone.Now()

	return model.Todo{
		ID:        id,
		Task:      r.Task,
		Completed: r.Completed,
		IsEditing: r.IsEditing,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
		},
	}
}

// ApplyTo overwrites every editable field of todo, including with nulls.
func (r *TodoRequest) ApplyTo(todo *model.Todo) {
	todo.Task = r.Task
	todo.Completed = r.Completed
	todo.IsEditing = r.IsEditing
	todo.ModifiedAt = timezone.Now()
}

type CreateTodoResponse struct {
	ID string `json:"id"`
}

type TodoResponse struct {
	ID        string  `json:"id"`
	Task      *string `json:"task"`
	Completed *bool   `json:"completed"`
	IsEditing *bool   `json:"isEditing"`
}

func (r *TodoResponse) FromModel(model model.Todo) {
	r.ID = model.ID
	r.Task = model.Task
	r.Completed = model.Completed
	r.IsEditing = model.IsEditing
}

func FromModels(models []model.Todo) []TodoResponse {
	res := make([]TodoResponse, len(models))
	for i, mod := range models {
		res[i].FromModel(mod)
	}

	return res
}
