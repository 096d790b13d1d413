package toml

import (
	"fmt"
	"strings"
	"time"

	"github.com/bnema/coda-cli/internal/domain"
)

const currentSchemaVersion = 1

type sessionSchema struct {
	Version      int             `toml:"version"`
	Key          string          `toml:"key"`
	ID           string          `toml:"id"`
	Root         string          `toml:"root"`
	SystemPrompt string          `toml:"system_prompt,multiline"`
	CreatedAt    string          `toml:"created_at"`
	UpdatedAt    string          `toml:"updated_at"`
	Known        []string        `toml:"known,omitempty"`
	Messages     []messageSchema `toml:"messages"`
}

type messageSchema struct {
	Role    string `toml:"role"`
	Content string `toml:"content,multiline"`
	At      string `toml:"at,omitempty"`
}

func (s *sessionSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s sessionSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported session schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

func toSchema(session *domain.Session) sessionSchema {
	messages := session.Transcript.Messages()
	encoded := make([]messageSchema, 0, len(messages))
	for _, msg := range messages {
		encoded = append(encoded, messageSchema{
			Role:    string(msg.Role),
			Content: validText(msg.Content),
			At:      formatTime(msg.At),
		})
	}

	return sessionSchema{
		Version:      currentSchemaVersion,
		Key:          session.Key,
		ID:           session.ID,
		Root:         validText(session.Root),
		SystemPrompt: validText(session.SystemPrompt),
		CreatedAt:    formatTime(session.CreatedAt),
		UpdatedAt:    formatTime(session.UpdatedAt),
		Known:        validPaths(session.KnownPaths()),
		Messages:     encoded,
	}
}

func fromSchema(file sessionSchema) (*domain.Session, error) {
	messages := make([]domain.Message, 0, len(file.Messages))
	for i, msg := range file.Messages {
		role := domain.Role(msg.Role)
		if !role.Valid() {
			return nil, fmt.Errorf("message %d has unknown role %q", i, msg.Role)
		}
		messages = append(messages, domain.Message{
			Role:    role,
			Content: msg.Content,
			At:      parseTime(msg.At),
		})
	}

	session := domain.NewSession(file.Key, file.ID, file.Root, file.SystemPrompt, parseTime(file.CreatedAt))
	session.Transcript = domain.NewTranscript(messages...)
	session.UpdatedAt = parseTime(file.UpdatedAt)
	for _, rel := range file.Known {
		session.MarkKnown(rel)
	}

	return session, nil
}

// TOML strings must be valid UTF-8; invalid bytes become U+FFFD.
func validText(text string) string {
	return strings.ToValidUTF8(text, "\uFFFD")
}

func validPaths(paths []string) []string {
	out := make([]string, 0, len(paths))
	for _, p := range paths {
		out = append(out, validText(p))
	}
	return out
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339Nano, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339Nano)
}
