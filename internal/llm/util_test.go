package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "json code block", input: "```json\n[{\"keyword\": \"Go\"}]\n```", expected: `[{"keyword": "Go"}]`},
		{name: "generic code block", input: "```\n{\"key\": \"value\"}\n```", expected: `{"key": "value"}`},
		{name: "plain array", input: `["Go"]`, expected: `["Go"]`},
		{name: "plain object", input: ` {"a": 1} `, expected: `{"a": 1}`},
		{name: "preamble before array", input: "Here are the keywords:\n[\"Go\", \"SQL\"]\nHope this helps!", expected: `["Go", "SQL"]`},
		{name: "preamble before object", input: "Sure! {\"keywords\": []}", expected: `{"keywords": []}`},
		{name: "no json", input: "I cannot help with that", expected: "I cannot help with that"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
