package notes

import (
	"bytes"
	"errors"
	"fmt"

	"memnotes/internal/notes/domain/entities"
)

// ErrInvalidBody возвращается, если тело запроса не является JSON-объектом.
var ErrInvalidBody = errors.New("request body must be a json object")

// decodeBody разбирает тело запроса. Пустое тело и null означают отсутствие тела (nil, nil).
func decodeBody(body []byte) (*entities.Fields, error) {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, nil
	}

	fields := entities.NewFields()
	if err := fields.UnmarshalJSON(trimmed); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	return fields, nil
}
