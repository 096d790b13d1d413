package application

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntentSchemaDescribesReplyFields(t *testing.T) {
	t.Parallel()

	raw, err := IntentSchema()
	require.NoError(t, err)

	var schema struct {
		Type                 string                     `json:"type"`
		Properties           map[string]json.RawMessage `json:"properties"`
		Required             []string                   `json:"required"`
		AdditionalProperties *bool                      `json:"additionalProperties"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &schema))

	assert.Equal(t, "object", schema.Type)
	for _, field := range []string{"thought", "action", "input", "output", "done"} {
		assert.Contains(t, schema.Properties, field)
	}
	assert.Contains(t, schema.Required, "done")
	require.NotNil(t, schema.AdditionalProperties)
	assert.False(t, *schema.AdditionalProperties)
}

func TestSystemPromptListsToolsAndTemplates(t *testing.T) {
	t.Parallel()

	prompt, err := SystemPrompt([]domain.Template{
		{Type: "react", Description: "Vite + React single page app"},
		{Type: "html", Description: "Static HTML, CSS and JavaScript site"},
	})
	require.NoError(t, err)

	for _, kind := range domain.ActionKinds() {
		assert.Contains(t, prompt, string(kind)+":")
	}
	assert.Contains(t, prompt, `{"type": "react|html", "name": "my-app"}`)
	assert.Contains(t, prompt, "- react: Vite + React single page app")
	assert.Contains(t, prompt, "JSON SCHEMA:")
	assert.False(t, strings.Contains(prompt, "%!"), "prompt has a formatting error")
}

func TestInitialRequest(t *testing.T) {
	t.Parallel()

	got := InitialRequest("/work", "  add a main.js  ", "(empty workspace)")
	assert.Equal(t, "Working directory: /work\n\nCurrent files:\n(empty workspace)\n\nRequest: add a main.js", got)
}
