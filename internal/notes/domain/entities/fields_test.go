package entities_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"memnotes/internal/notes/domain/entities"
)

func TestFieldsUnmarshalPreservesOrder(t *testing.T) {
	fields := entities.NewFields()
	err := json.Unmarshal([]byte(`{"title":"A","tags":["x","y"],"description":"B","meta":{"pinned":true}}`), fields)
	require.NoError(t, err)

	assert.Equal(t, []string{"title", "tags", "description", "meta"}, fields.Keys())

	title, ok := fields.String("title")
	require.True(t, ok)
	assert.Equal(t, "A", title)

	tags, ok := fields.Get("tags")
	require.True(t, ok)
	assert.JSONEq(t, `["x","y"]`, string(tags))

	out, err := json.Marshal(fields)
	require.NoError(t, err)
	assert.Equal(t, `{"title":"A","tags":["x","y"],"description":"B","meta":{"pinned":true}}`, string(out))
}

func TestFieldsUnmarshalRejectsNonObjects(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "array", input: `[1,2]`},
		{name: "string", input: `"text"`},
		{name: "number", input: `42`},
		{name: "boolean", input: `true`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := entities.NewFields()
			err := json.Unmarshal([]byte(tt.input), fields)
			require.Error(t, err)
			assert.ErrorIs(t, err, entities.ErrNotObject)
		})
	}
}

func TestFieldsUnmarshalRejectsTrailingData(t *testing.T) {
	inputs := []string{`{"a":1}}`, `{"a":1}]`, `{"a":1}}}}`, `{"a":1}{"b":2}`, `{"a":1} 5`}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			fields := entities.NewFields()
			err := fields.UnmarshalJSON([]byte(input))
			require.ErrorIs(t, err, entities.ErrTrailingData)
			assert.Equal(t, 0, fields.Len())
		})
	}

	t.Run("trailing whitespace is allowed", func(t *testing.T) {
		fields := entities.NewFields()
		require.NoError(t, fields.UnmarshalJSON([]byte("{\"a\":1} \n")))
		assert.Equal(t, []string{"a"}, fields.Keys())
	})
}

func TestFieldsDuplicateKeyKeepsFirstPosition(t *testing.T) {
	fields := entities.NewFields()
	require.NoError(t, json.Unmarshal([]byte(`{"a":1,"b":2,"a":3}`), fields))

	assert.Equal(t, []string{"a", "b"}, fields.Keys())
	a, _ := fields.Get("a")
	assert.Equal(t, "3", string(a))
}

func TestFieldsMerge(t *testing.T) {
	base := entities.NewFields()
	base.SetString("title", "Shopping")
	base.SetString("description", "Milk")

	patch := entities.NewFields()
	patch.SetString("description", "Milk, eggs")
	patch.Set("priority", json.RawMessage(`1`))

	base.Merge(patch)

	assert.Equal(t, []string{"title", "description", "priority"}, base.Keys())
	title, _ := base.String("title")
	description, _ := base.String("description")
	assert.Equal(t, "Shopping", title)
	assert.Equal(t, "Milk, eggs", description)

	base.Merge(nil)
	assert.Equal(t, 3, base.Len())
}

func TestFieldsCloneIsIndependent(t *testing.T) {
	original := entities.NewFields()
	original.SetString("title", "A")
	original.SetString("description", "B")

	clone := original.Clone()
	clone.SetString("title", "changed")
	clone.Delete("description")

	title, _ := original.String("title")
	assert.Equal(t, "A", title)
	assert.True(t, original.Has("description"))
	assert.Equal(t, []string{"title", "description"}, original.Keys())
	assert.Equal(t, []string{"title"}, clone.Keys())
}

func TestFieldsStringOnNonString(t *testing.T) {
	fields := entities.NewFields()
	fields.Set("count", json.RawMessage(`5`))

	_, ok := fields.String("count")
	assert.False(t, ok)

	_, ok = fields.String("missing")
	assert.False(t, ok)
}
