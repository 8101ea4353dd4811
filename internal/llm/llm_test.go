package llm

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanFences(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"plain", `{"a":1}`, `{"a":1}`},
		{"json fence", "```json\n{\"a\":1}\n```", `{"a":1}`},
		{"bare fence", "```\n{\"a\":1}\n```", `{"a":1}`},
		{"html tag kept", "```\n<p>hi</p>\n```", "<p>hi</p>"},
		{"fence with content on first line", "```{\"a\":1}\n```", `{"a":1}`},
		{"surrounding whitespace", "  \n```json\n{}\n```  ", "{}"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, CleanFences(tc.in))
		})
	}
}

func TestDecodeJSONWrapsParseFailures(t *testing.T) {
	var out struct {
		A int `json:"a"`
	}
	err := DecodeJSON([]byte("the model apologizes instead of answering"), &out)
	assert.True(t, errors.Is(err, ErrMalformed), "expected ErrMalformed, got %v", err)

	err = DecodeJSON([]byte("```json\n{\"a\":7}\n```"), &out)
	assert.NoError(t, err)
	assert.Equal(t, 7, out.A)
}

func TestPlaceholderIsNotConfigured(t *testing.T) {
	_, err := Placeholder{}.GenerateText(context.Background(), "x")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}
