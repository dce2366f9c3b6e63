// Package services contains adapters for the service ports of the notes service.
package services

import (
	"github.com/google/uuid"

	"memnotes/internal/notes/ports/services"
)

// UUIDGenerator выдает идентификаторы UUID версии 4.
type UUIDGenerator struct{}

// NewUUIDGenerator создает генератор идентификаторов.
func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

var _ services.IDGenerator = (*UUIDGenerator)(nil)

// NewID возвращает новый случайный UUID в каноническом виде.
func (g *UUIDGenerator) NewID() string {
	return uuid.NewString()
}
