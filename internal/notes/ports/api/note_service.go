// Package api defines the primary port of the notes service.
package api

import (
	"context"

	"memnotes/internal/notes/domain/entities"
)

// NoteUseCase определяет операции над заметками, доступные транспортному слою.
type NoteUseCase interface {
	ListAll(ctx context.Context) ([]*entities.Note, error)
	ListMine(ctx context.Context, callerID string) ([]*entities.Note, error)
	CreateNote(ctx context.Context, payload *entities.Fields, callerID string) (*entities.Note, error)
	GetNote(ctx context.Context, noteID string) (*entities.Note, error)
	UpdateNote(ctx context.Context, noteID string, patch *entities.Fields) (*entities.Note, error)
	DeleteNote(ctx context.Context, noteID string) (*entities.Note, error)
}
