package store

import "time"

// Message roles within a session.
const (
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Message is one immutable conversation turn.
type Message struct {
	Role      string    `json:"role"`
	Content   string    `json:"content"`
	Timestamp time.Time `json:"timestamp"`
}

// Document is a raw corpus source before chunking.
type Document struct {
	SourceID string `json:"source_id"`
	RawText  string `json:"raw_text"`
}
