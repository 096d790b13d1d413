package domain

import "fmt"

type Failure struct {
	Kind    FailureKind
	Message string
}

// ActionResult is the outcome of one dispatch. A result carries either an
// Output or a Failure, never both.
type ActionResult struct {
	Action  ActionKind
	Output  string
	Failure *Failure
}

func Succeeded(action ActionKind, output string) ActionResult {
	return ActionResult{Action: action, Output: output}
}

func Failed(action ActionKind, kind FailureKind, message string) ActionResult {
	return ActionResult{Action: action, Failure: &Failure{Kind: kind, Message: message}}
}

// FailedWith tags err with its taxonomy kind.
func FailedWith(action ActionKind, err error) ActionResult {
	return Failed(action, KindOf(err), err.Error())
}

func (r ActionResult) OK() bool {
	return r.Failure == nil
}

// TranscriptText is the tool-result message content fed back to the model.
func (r ActionResult) TranscriptText() string {
	if r.Failure != nil {
		return fmt.Sprintf("[%s] error (%s): %s", r.Action, r.Failure.Kind, r.Failure.Message)
	}
	if r.Output == "" {
		return fmt.Sprintf("[%s] ok", r.Action)
	}
	return fmt.Sprintf("[%s] ok\n%s", r.Action, r.Output)
}
