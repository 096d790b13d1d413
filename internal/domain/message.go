package domain

import "time"

type Role string

const (
	RoleUser       Role = "user"
	RoleAssistant  Role = "assistant"
	RoleToolResult Role = "tool_result"
)

func (r Role) Valid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleToolResult:
		return true
	default:
		return false
	}
}

type Message struct {
	Role    Role
	Content string
	At      time.Time
}

// Transcript is the ordered, append-only message history of a session.
type Transcript struct {
	messages []Message
}

func NewTranscript(messages ...Message) Transcript {
	t := Transcript{}
	for _, msg := range messages {
		t.Append(msg)
	}
	return t
}

func (t *Transcript) Append(msg Message) {
	t.messages = append(t.messages, msg)
}

// Messages returns a copy; callers cannot reorder or rewrite history.
func (t Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t Transcript) Len() int {
	return len(t.messages)
}

func (t Transcript) Last() (Message, bool) {
	if len(t.messages) == 0 {
		return Message{}, false
	}
	return t.messages[len(t.messages)-1], true
}
