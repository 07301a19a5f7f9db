package service

import (
	"sync"

	"github.com/google/uuid"

	"duoscale/internal/domain"
)

// TranscriptRegistry keeps one append-only ordered message log per session.
// Logs live in memory only; nothing is persisted.
type TranscriptRegistry struct {
	mu       sync.RWMutex
	sessions map[string][]domain.ChatMessage
}

func NewTranscriptRegistry() *TranscriptRegistry {
	return &TranscriptRegistry{sessions: make(map[string][]domain.ChatMessage)}
}

// Append adds a message to the session's log and returns it.
func (r *TranscriptRegistry) Append(sessionID, role, content string) domain.ChatMessage {
	msg := domain.ChatMessage{
		ID:      uuid.NewString(),
		Role:    role,
		Content: content,
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[sessionID] = append(r.sessions[sessionID], msg)
	return msg
}

// Messages returns a copy of the session's log in append order.
func (r *TranscriptRegistry) Messages(sessionID string) []domain.ChatMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	log := r.sessions[sessionID]
	out := make([]domain.ChatMessage, len(log))
	copy(out, log)
	return out
}
