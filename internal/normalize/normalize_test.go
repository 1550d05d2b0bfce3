package normalize

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		wantText  string
		wantShape Shape
	}{
		{
			name:      "response field",
			body:      `{"response":"hello"}`,
			wantText:  "hello",
			wantShape: ShapeResponse,
		},
		{
			name:      "message field",
			body:      `{"message":"hi there"}`,
			wantText:  "hi there",
			wantShape: ShapeMessage,
		},
		{
			name:      "chat completion choices",
			body:      `{"choices":[{"message":{"content":"X"}}]}`,
			wantText:  "X",
			wantShape: ShapeChoices,
		},
		{
			name:      "content field",
			body:      `{"content":"plain"}`,
			wantText:  "plain",
			wantShape: ShapeContent,
		},
		{
			name:      "message beats content",
			body:      `{"content":"second","message":"first"}`,
			wantText:  "first",
			wantShape: ShapeMessage,
		},
		{
			name:      "response beats everything",
			body:      `{"content":"c","message":"m","response":"r","choices":[{"message":{"content":"x"}}]}`,
			wantText:  "r",
			wantShape: ShapeResponse,
		},
		{
			name:      "choices beat content",
			body:      `{"content":"c","choices":[{"message":{"content":"x"}}]}`,
			wantText:  "x",
			wantShape: ShapeChoices,
		},
		{
			name:      "empty response falls through",
			body:      `{"response":"","message":"m"}`,
			wantText:  "m",
			wantShape: ShapeMessage,
		},
		{
			name:      "object message falls through to choices",
			body:      `{"message":{"content":"nested"},"choices":[{"message":{"content":"x"}}]}`,
			wantText:  "x",
			wantShape: ShapeChoices,
		},
		{
			name:      "non-string choice content falls through to content",
			body:      `{"choices":[{"message":{"content":null}}],"content":"c"}`,
			wantText:  "c",
			wantShape: ShapeContent,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw, err := Decode([]byte(tt.body))
			require.NoError(t, err)

			got, err := Normalize(raw)
			require.NoError(t, err)
			assert.Equal(t, tt.wantText, got.Text)
			assert.Equal(t, tt.wantShape, got.Shape)
		})
	}
}

func TestNormalizeUnrecognized(t *testing.T) {
	bodies := []string{
		`{}`,
		`{"foo":1}`,
		`{"choices":[]}`,
		`{"choices":[{"text":"legacy"}]}`,
		`{"response":42}`,
		`[{"response":"in an array"}]`,
		`"just a string"`,
		`null`,
	}

	for _, body := range bodies {
		t.Run(body, func(t *testing.T) {
			raw, err := Decode([]byte(body))
			require.NoError(t, err)

			_, err = Normalize(raw)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnrecognizedShape))

			var shapeErr *ShapeError
			require.True(t, errors.As(err, &shapeErr))
			assert.Equal(t, raw, shapeErr.Raw)
		})
	}
}

func TestDecodeInvalid(t *testing.T) {
	_, err := Decode([]byte("{not-json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding response body")
}

func TestShapeString(t *testing.T) {
	assert.Equal(t, "response", ShapeResponse.String())
	assert.Equal(t, "choices", ShapeChoices.String())
	assert.Equal(t, "unknown", Shape(0).String())
}
