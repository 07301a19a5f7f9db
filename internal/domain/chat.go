package domain

// ChatMessage is one entry of a per-session transcript. Transcripts live in
// memory only and are never persisted.
type ChatMessage struct {
	ID      string `json:"id"`
	Role    string `json:"role"`
	Content string `json:"content"`
}

const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)
