package application

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/invopop/jsonschema"
)

// intentWire documents the reply format; ParseIntent is the reader.
type intentWire struct {
	Thought string         `json:"thought" jsonschema_description:"Brief explanation of what you are doing and why"`
	Action  *string        `json:"action" jsonschema_description:"Name of the tool to run, or null when no tool is needed"`
	Input   map[string]any `json:"input" jsonschema_description:"Tool input object as documented for the chosen tool, or null"`
	Output  *string        `json:"output" jsonschema_description:"Message for the user: a question, a progress note or the final answer, or null"`
	Done    bool           `json:"done" jsonschema_description:"true once the request is complete"`
}

type toolDoc struct {
	kind    domain.ActionKind
	summary string
	example string
}

var toolDocs = []toolDoc{
	{domain.ActionCreateFile, "Creates a file with content. Set overwrite to true to replace an existing file.", `{"path": "src/App.jsx", "content": "...", "overwrite": false}`},
	{domain.ActionCreateFolder, "Creates a directory and any missing parents.", `{"path": "src/components"}`},
	{domain.ActionReadFile, "Reads a file. Always read a file before updating it.", `{"path": "package.json"}`},
	{domain.ActionListDirectory, "Lists the entries of a directory. An empty path lists the workspace root.", `{"path": "src"}`},
	{domain.ActionExecuteCommand, "Runs a shell command in the workspace root (npm install, git init, tests).", `{"command": "npm install axios"}`},
	{domain.ActionUpdateFile, "Replaces the first exact occurrence of search with replace.", `{"path": "src/App.jsx", "search": "old code", "replace": "new code"}`},
	{domain.ActionDeleteFile, "Deletes a file.", `{"path": "old-file.js"}`},
	{domain.ActionScaffoldProject, "Creates a complete starter project in a new directory.", `{"type": "%s", "name": "my-app"}`},
}

// IntentSchema is the JSON schema of one model reply.
func IntentSchema() (string, error) {
	reflector := jsonschema.Reflector{DoNotReference: true, AllowAdditionalProperties: false}
	schema := reflector.Reflect(&intentWire{})
	schema.Version = ""
	raw, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal intent schema: %w", err)
	}
	return string(raw), nil
}

// SystemPrompt builds the instructions sent with every completion request.
func SystemPrompt(templates []domain.Template) (string, error) {
	schema, err := IntentSchema()
	if err != nil {
		return "", err
	}

	names := make([]string, 0, len(templates))
	for _, tmpl := range templates {
		names = append(names, tmpl.Type)
	}

	var b strings.Builder
	b.WriteString("You are an expert coding assistant running as a command line tool.\n\n")
	b.WriteString("You work inside the user's current directory and help them build applications, fix bugs and write code. ")
	b.WriteString("All paths are relative to that directory and must stay inside it.\n\n")

	b.WriteString("AVAILABLE TOOLS:\n")
	for i, doc := range toolDocs {
		example := doc.example
		if doc.kind == domain.ActionScaffoldProject {
			example = fmt.Sprintf(example, strings.Join(names, "|"))
		}
		fmt.Fprintf(&b, "%d. %s: %s\n   Input: %s\n", i+1, doc.kind, doc.summary, example)
	}
	if len(templates) > 0 {
		b.WriteString("\nPROJECT TEMPLATES:\n")
		for _, tmpl := range templates {
			fmt.Fprintf(&b, "- %s: %s\n", tmpl.Type, tmpl.Description)
		}
	}

	b.WriteString(`
RESPONSE FORMAT:
Reply with exactly one JSON object and nothing else:
{
  "thought": "Brief explanation of what you're doing",
  "action": "tool_name" | null,
  "input": {...} | null,
  "output": "Message to the user" | null,
  "done": true | false
}

Each reply runs at most one tool. Its result comes back as a tool_result message starting with [tool_name] ok or [tool_name] error (Kind).
To ask the user a question, set action to null, put the question in output and set done to false.
When the request is complete, set done to true and summarise what you did in output.

JSON SCHEMA:
`)
	b.WriteString(schema)
	b.WriteString(`

GUIDELINES:
- For existing files: read them first, then update them
- For new projects: use scaffold_project, then add features
- For bug fixes: read the file, find the issue, fix it with update_file
- For new features: create new files or update existing ones
- Install dependencies when needed
- Explain what you are doing in thought
- Ask for clarification when the request is ambiguous
- Never run commands that need root or delete data outside the project

EXAMPLES:
User: "create a react app"
-> scaffold_project -> execute_command npm install -> done
User: "add error handling to server.js"
-> read_file server.js -> update_file -> done
User: "make a todo component"
-> create_file src/components/Todo.jsx -> done
`)
	return b.String(), nil
}

// InitialRequest is the first user message of a fresh session.
func InitialRequest(root, instruction, snapshot string) string {
	return fmt.Sprintf("Working directory: %s\n\nCurrent files:\n%s\n\nRequest: %s", root, snapshot, strings.TrimSpace(instruction))
}
