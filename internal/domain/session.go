package domain

import (
	"path/filepath"
	"sort"
	"time"
)

// Session owns the transcript and the workspace root of one agent run. Key is
// derived from the root and identifies the persisted copy, ID is unique per
// session instance.
type Session struct {
	Key          string
	ID           string
	Root         string
	SystemPrompt string
	Transcript   Transcript
	CreatedAt    time.Time
	UpdatedAt    time.Time

	known map[string]struct{}
}

func NewSession(key, id, root, systemPrompt string, now time.Time) *Session {
	return &Session{
		Key:          key,
		ID:           id,
		Root:         root,
		SystemPrompt: systemPrompt,
		CreatedAt:    now,
		UpdatedAt:    now,
		known:        map[string]struct{}{},
	}
}

func (s *Session) Append(role Role, content string, at time.Time) {
	s.Transcript.Append(Message{Role: role, Content: content, At: at})
	s.UpdatedAt = at
}

// MarkKnown records that the model has seen the current content of a
// workspace-relative path.
func (s *Session) MarkKnown(rel string) {
	if s.known == nil {
		s.known = map[string]struct{}{}
	}
	s.known[normalizeRel(rel)] = struct{}{}
}

func (s *Session) Forget(rel string) {
	delete(s.known, normalizeRel(rel))
}

func (s *Session) Knows(rel string) bool {
	_, ok := s.known[normalizeRel(rel)]
	return ok
}

func (s *Session) KnownPaths() []string {
	paths := make([]string, 0, len(s.known))
	for path := range s.known {
		paths = append(paths, path)
	}
	sort.Strings(paths)
	return paths
}

func normalizeRel(rel string) string {
	return filepath.ToSlash(filepath.Clean(rel))
}

// SessionSummary describes a persisted session without its transcript.
type SessionSummary struct {
	Key       string
	Root      string
	Messages  int
	UpdatedAt time.Time
}
