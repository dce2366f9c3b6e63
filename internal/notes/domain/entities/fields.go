package entities

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// Ошибки декодирования полей.
var (
	ErrNotObject    = errors.New("json value is not an object")
	ErrTrailingData = errors.New("unexpected data after json object")
)

// Fields - упорядоченный набор произвольных полей заметки.
// Значения хранятся как исходный JSON, порядок ключей совпадает с порядком их первого появления.
type Fields struct {
	keys   []string
	values map[string]json.RawMessage
}

// NewFields создает пустой набор полей.
func NewFields() *Fields {
	return &Fields{values: make(map[string]json.RawMessage)}
}

// Set задает значение ключа. Новый ключ добавляется в конец, существующий сохраняет позицию.
func (f *Fields) Set(key string, value json.RawMessage) {
	if f.values == nil {
		f.values = make(map[string]json.RawMessage)
	}
	if _, ok := f.values[key]; !ok {
		f.keys = append(f.keys, key)
	}
	f.values[key] = append(json.RawMessage(nil), value...)
}

// SetString задает строковое значение ключа.
func (f *Fields) SetString(key, value string) {
	raw, err := json.Marshal(value)
	if err != nil {
		return
	}
	f.Set(key, raw)
}

// Get возвращает исходный JSON значения ключа.
func (f *Fields) Get(key string) (json.RawMessage, bool) {
	if f == nil {
		return nil, false
	}
	v, ok := f.values[key]
	return v, ok
}

// String возвращает значение ключа, если оно является JSON-строкой.
func (f *Fields) String(key string) (string, bool) {
	raw, ok := f.Get(key)
	if !ok {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// Has сообщает, присутствует ли ключ.
func (f *Fields) Has(key string) bool {
	_, ok := f.Get(key)
	return ok
}

// Delete удаляет ключ, сохраняя порядок остальных.
func (f *Fields) Delete(key string) {
	if !f.Has(key) {
		return
	}
	delete(f.values, key)
	for i, k := range f.keys {
		if k == key {
			f.keys = append(f.keys[:i:i], f.keys[i+1:]...)
			break
		}
	}
}

// Keys возвращает ключи в порядке хранения.
func (f *Fields) Keys() []string {
	if f == nil {
		return nil
	}
	return append([]string(nil), f.keys...)
}

// Len возвращает количество полей.
func (f *Fields) Len() int {
	if f == nil {
		return 0
	}
	return len(f.keys)
}

// Clone возвращает независимую копию набора.
func (f *Fields) Clone() *Fields {
	clone := NewFields()
	if f == nil {
		return clone
	}
	for _, k := range f.keys {
		clone.Set(k, f.values[k])
	}
	return clone
}

// Merge переносит все поля patch поверх текущих (поверхностное слияние).
func (f *Fields) Merge(patch *Fields) {
	if patch == nil {
		return
	}
	for _, k := range patch.keys {
		f.Set(k, patch.values[k])
	}
}

// MarshalJSON кодирует поля как JSON-объект с сохранением порядка ключей.
func (f Fields) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	if err := f.writeMembers(&buf, false); err != nil {
		return nil, err
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (f *Fields) writeMembers(buf *bytes.Buffer, leadingComma bool) error {
	for i, k := range f.keys {
		if i > 0 || leadingComma {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return fmt.Errorf("marshal key %q: %w", k, err)
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(f.values[k])
	}
	return nil
}

// UnmarshalJSON декодирует JSON-объект, запоминая порядок ключей.
// Повторяющийся ключ перезаписывает значение, но сохраняет первую позицию.
func (f *Fields) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return fmt.Errorf("read object start: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return ErrNotObject
	}

	fields := NewFields()
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return fmt.Errorf("read key: %w", err)
		}
		key, ok := tok.(string)
		if !ok {
			return fmt.Errorf("unexpected key token %v", tok)
		}

		var value json.RawMessage
		if err := dec.Decode(&value); err != nil {
			return fmt.Errorf("read value of %q: %w", key, err)
		}
		fields.Set(key, value)
	}

	if _, err := dec.Token(); err != nil {
		return fmt.Errorf("read object end: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}

	*f = *fields
	return nil
}
