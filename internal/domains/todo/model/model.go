package model

import "todo/shared/model"

const (
	CollectionName = "todo_data"
	EntityName     = "todo"

	FieldID        = "id"
	FieldTask      = "task"
	FieldCompleted = "completed"
	FieldIsEditing = "isEditing"
)

// Todo is one task document. Task, Completed and IsEditing are nullable: a nil
// pointer is stored and rendered as null.
type Todo struct {
	ID             string  `bson:"id"`
	Task           *string `bson:"task"`
	Completed      *bool   `bson:"completed"`
	IsEditing      *bool   `bson:"isEditing"`
	model.Metadata `bson:",inline"`
}
