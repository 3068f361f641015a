package dto

import "time"

type SendMessageRequest struct {
	Message   string `json:"message" validate:"required"`
	SessionId string `json:"session_id" validate:"required"`
}

type SendMessageResponse struct {
	Reply         string    `json:"reply"`
	SessionId     string    `json:"session_id"`
	Timestamp     time.Time `json:"timestamp"`
	ContextUsed   []string  `json:"context_used,omitempty"`   // chunk ids fed to the model
	PluginsCalled []string  `json:"plugins_called,omitempty"` // plugin names, classification order
}

type StatsResponse struct {
	KnowledgeBaseChunks int `json:"knowledgeBaseChunks"`
	ActiveSessions      int `json:"activeSessions"`
}

type HealthResponse struct {
	Status     string            `json:"status"`
	Components map[string]string `json:"components"`
	Timestamp  time.Time         `json:"timestamp"`
}

type ToolInfo struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Type         string   `json:"type"`
	Status       string   `json:"status"`
	Capabilities []string `json:"capabilities"`
}

type ToolsResponse struct {
	Tools     []ToolInfo `json:"tools"`
	Count     int        `json:"count"`
	Timestamp time.Time  `json:"timestamp"`
}

type ClearSessionResponse struct {
	SessionId string `json:"session_id"`
	Cleared   bool   `json:"cleared"`
}
