// Package entities defines the domain entities for the notes service.
package entities

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Защищенные ключи заметки. Клиент не может задать их через тело запроса.
const (
	KeyID          = "id"
	KeyUserID      = "userid"
	KeyTitle       = "title"
	KeyDescription = "description"
)

// Note представляет собой заметку пользователя.
type Note struct {
	ID     string
	UserID string
	Fields *Fields
}

// NewNote создает заметку из полей запроса. Ключи id и userid из fields отбрасываются.
func NewNote(id, userID string, fields *Fields) *Note {
	clean := fields.Clone()
	StripProtected(clean)

	return &Note{
		ID:     id,
		UserID: userID,
		Fields: clean,
	}
}

// StripProtected удаляет из набора ключи, которыми владеет хранилище.
func StripProtected(fields *Fields) {
	fields.Delete(KeyID)
	fields.Delete(KeyUserID)
}

// Title возвращает заголовок заметки.
func (n *Note) Title() string {
	s, _ := n.Fields.String(KeyTitle)
	return s
}

// Description возвращает описание заметки.
func (n *Note) Description() string {
	s, _ := n.Fields.String(KeyDescription)
	return s
}

// Clone возвращает независимую копию заметки.
func (n *Note) Clone() *Note {
	return &Note{
		ID:     n.ID,
		UserID: n.UserID,
		Fields: n.Fields.Clone(),
	}
}

// MarshalJSON кодирует заметку плоским объектом: id, userid, затем поля в исходном порядке.
func (n Note) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer

	id, err := json.Marshal(n.ID)
	if err != nil {
		return nil, fmt.Errorf("marshal id: %w", err)
	}
	userID, err := json.Marshal(n.UserID)
	if err != nil {
		return nil, fmt.Errorf("marshal userid: %w", err)
	}

	buf.WriteString(`{"` + KeyID + `":`)
	buf.Write(id)
	buf.WriteString(`,"` + KeyUserID + `":`)
	buf.Write(userID)

	if n.Fields != nil {
		if err := n.Fields.writeMembers(&buf, true); err != nil {
			return nil, err
		}
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// EventType - тип события изменения заметки.
type EventType string

// Типы событий.
const (
	EventNoteCreated EventType = "note.created"
	EventNoteUpdated EventType = "note.updated"
	EventNoteDeleted EventType = "note.deleted"
)

// NoteEvent описывает изменение заметки для внешних подписчиков.
type NoteEvent struct {
	Type EventType `json:"type"`
	Note *Note     `json:"note"`
	At   time.Time `json:"at"`
}

// NewNoteEvent создает событие с текущим временем.
func NewNoteEvent(eventType EventType, note *Note) NoteEvent {
	return NoteEvent{
		Type: eventType,
		Note: note,
		At:   time.Now().UTC(),
	}
}
