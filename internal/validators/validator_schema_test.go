package validators

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decode(t *testing.T, raw string) any {
	t.Helper()
	var doc any
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))
	return doc
}

func TestSchemaValidator_PostInput(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name: "valid",
			body: `{"author":"alice","content":"hello","date":"2025-07-01T12:00:00Z"}`,
		},
		{
			name: "extra fields are ignored",
			body: `{"id":"x","author":"alice","content":"hello","date":"2025-07-01T12:00:00+02:00"}`,
		},
		{
			name: "empty strings are present",
			body: `{"author":"","content":"","date":"2025-07-01T12:00:00Z"}`,
		},
		{
			name:    "missing author",
			body:    `{"content":"hello","date":"2025-07-01T12:00:00Z"}`,
			wantErr: true,
		},
		{
			name:    "author not a string",
			body:    `{"author":42,"content":"hello","date":"2025-07-01T12:00:00Z"}`,
			wantErr: true,
		},
		{
			name:    "date not RFC 3339",
			body:    `{"author":"alice","content":"hello","date":"yesterday"}`,
			wantErr: true,
		},
		{
			name:    "not an object",
			body:    `["alice"]`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), decode(t, tt.body), SchemaPostInput)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDocument)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSchemaValidator_UserInput(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	assert.NoError(t, v.Validate(context.Background(), decode(t, `{"email":"a@b.c","nickname":"a"}`), SchemaUserInput))
	assert.ErrorIs(t, v.Validate(context.Background(), decode(t, `{"email":"a@b.c"}`), SchemaUserInput), ErrInvalidDocument)
}

func TestSchemaValidator_SchemaSelection(t *testing.T) {
	v, err := NewSchemaValidator()
	require.NoError(t, err)

	doc := decode(t, `{}`)
	assert.ErrorIs(t, v.Validate(context.Background(), doc), ErrNoSchema)
	assert.ErrorIs(t, v.Validate(context.Background(), doc, "comment.json"), ErrUnknownSchema)
}
