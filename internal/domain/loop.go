package domain

type LoopState string

const (
	StateAwaitingModel LoopState = "awaiting_model"
	StateDispatching   LoopState = "dispatching"
	StateAppending     LoopState = "appending"
	StateTerminated    LoopState = "terminated"
)

type Termination string

const (
	TerminatedDone       Termination = "done"
	TerminatedError      Termination = "error"
	TerminatedMaxRetries Termination = "max_retries"
	TerminatedCancelled  Termination = "cancelled"
)

// Outcome is how one agent run ended. Output is the final user-facing text
// of a normal termination; Err explains every other one.
type Outcome struct {
	Reason Termination
	Output string
	Err    error
	Steps  int
}

func (o Outcome) Failed() bool {
	return o.Reason == TerminatedError || o.Reason == TerminatedMaxRetries
}
