package application

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/bnema/coda-cli/internal/domain"
	"github.com/bnema/coda-cli/internal/suggest"
	"github.com/tidwall/gjson"
)

var codeFence = regexp.MustCompile("(?s)^```[a-zA-Z]*\\s*(.*?)\\s*```$")

// ParseIntent turns raw assistant content into an Intent. Every problem is
// reported as domain.ErrParse so the loop can feed it back to the model.
func ParseIntent(content string) (domain.Intent, error) {
	body := strings.TrimSpace(content)
	if match := codeFence.FindStringSubmatch(body); match != nil {
		body = match[1]
	}
	if body == "" {
		return domain.Intent{}, parseError("response is empty")
	}
	if !gjson.Valid(body) {
		return domain.Intent{}, parseError("response is not valid JSON")
	}

	root := gjson.Parse(body)
	if !root.IsObject() {
		return domain.Intent{}, parseError("response must be a single JSON object")
	}

	var (
		intent domain.Intent
		err    error
	)
	if intent.Thought, err = optionalString(root, "thought"); err != nil {
		return domain.Intent{}, err
	}
	if intent.Output, err = optionalString(root, "output"); err != nil {
		return domain.Intent{}, err
	}

	switch done := root.Get("done"); done.Type {
	case gjson.True:
		intent.Done = true
	case gjson.False:
	default:
		if done.Exists() {
			return domain.Intent{}, parseError(`"done" must be true or false`)
		}
		return domain.Intent{}, parseError(`missing required field "done"`)
	}

	if intent.Action, err = parseAction(root.Get("action")); err != nil {
		return domain.Intent{}, err
	}

	if input := root.Get("input"); intent.HasAction() && input.Exists() && input.Type != gjson.Null {
		if !input.IsObject() {
			return domain.Intent{}, parseError(`"input" must be an object`)
		}
		intent.Input = json.RawMessage(input.Raw)
	}

	if !intent.HasAction() && !intent.Done && strings.TrimSpace(intent.Output) == "" {
		return domain.Intent{}, parseError("response has no action, no output and is not done")
	}

	return intent, nil
}

func parseAction(value gjson.Result) (domain.ActionKind, error) {
	switch value.Type {
	case gjson.Null:
		return domain.ActionNone, nil
	case gjson.String:
	default:
		return domain.ActionNone, parseError(`"action" must be a tool name or null`)
	}

	name := strings.TrimSpace(value.Str)
	switch strings.ToLower(name) {
	case "", "none", "null":
		return domain.ActionNone, nil
	}

	kind, ok := domain.ParseActionKind(name)
	if !ok {
		return domain.ActionNone, parseError(fmt.Sprintf("unknown action %q, %s", name, suggest.Hint(name, actionNames())))
	}
	return kind, nil
}

func optionalString(root gjson.Result, field string) (string, error) {
	value := root.Get(field)
	switch value.Type {
	case gjson.Null:
		return "", nil
	case gjson.String:
		return value.Str, nil
	default:
		return "", parseError(fmt.Sprintf("%q must be a string or null", field))
	}
}

func actionNames() []string {
	kinds := domain.ActionKinds()
	names := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		names = append(names, string(kind))
	}
	return names
}

func parseError(detail string) error {
	return fmt.Errorf("%w: %s", domain.ErrParse, detail)
}
