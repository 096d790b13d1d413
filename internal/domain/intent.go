package domain

import "encoding/json"

// Intent is one parsed model turn. Input stays raw until the validator
// decodes it against the schema of Action.
type Intent struct {
	Thought string
	Action  ActionKind
	Input   json.RawMessage
	Output  string
	Done    bool
}

func (i Intent) HasAction() bool {
	return !i.Action.IsNone()
}
