// Package services defines service interfaces for the notes service.
package services

import (
	"context"

	"memnotes/internal/notes/domain/entities"
)

// IDGenerator выдает глобально уникальные идентификаторы заметок.
type IDGenerator interface {
	NewID() string
}

// EventPublisher доставляет события изменения заметок подписчикам.
type EventPublisher interface {
	Publish(ctx context.Context, event entities.NoteEvent) error
	Close() error
}
