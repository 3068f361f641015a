package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ai-agent-be/internal/dto"
	"ai-agent-be/internal/pkg/serverutils"
)

// stubAgentService returns canned payloads without touching the pipeline.
type stubAgentService struct{}

func (stubAgentService) InitializeKnowledgeBase(context.Context) error { return nil }

func (stubAgentService) ProcessMessage(_ context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	return &dto.SendMessageResponse{
		Reply:     "stubbed reply",
		SessionId: req.SessionId,
		Timestamp: time.Now(),
	}, nil
}

func (stubAgentService) Stats(context.Context) (*dto.StatsResponse, error) {
	return &dto.StatsResponse{KnowledgeBaseChunks: 7, ActiveSessions: 2}, nil
}

func (stubAgentService) Health(context.Context) *dto.HealthResponse {
	return &dto.HealthResponse{
		Status:     "healthy",
		Components: map[string]string{"vector_store": "healthy"},
		Timestamp:  time.Now(),
	}
}

func (stubAgentService) Tools() *dto.ToolsResponse {
	return &dto.ToolsResponse{Count: 0, Timestamp: time.Now()}
}

func (stubAgentService) ClearSession(sessionID string) *dto.ClearSessionResponse {
	return &dto.ClearSessionResponse{SessionId: sessionID, Cleared: true}
}

func newTestApp() *fiber.App {
	app := fiber.New()
	app.Use(serverutils.ErrorHandlerMiddleware())
	NewAgentController(stubAgentService{}).RegisterRoutes(app)
	return app
}

func TestSendMessage(t *testing.T) {
	app := newTestApp()

	body, _ := json.Marshal(dto.SendMessageRequest{Message: "hello", SessionId: "s1"})
	req := httptest.NewRequest("POST", "/agent/message", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), "stubbed reply")
	assert.Contains(t, string(raw), `"session_id":"s1"`)
}

func TestSendMessageValidation(t *testing.T) {
	app := newTestApp()

	tests := []struct {
		name string
		body string
	}{
		{"missing message", `{"session_id":"s1"}`},
		{"missing session id", `{"message":"hello"}`},
		{"empty body", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/agent/message", bytes.NewReader([]byte(tt.body)))
			req.Header.Set("Content-Type", "application/json")

			resp, err := app.Test(req)
			require.NoError(t, err)
			assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
		})
	}
}

func TestHealth(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/agent/health", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"status":"healthy"`)
}

func TestStats(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/agent/stats", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"knowledgeBaseChunks":7`)
	assert.Contains(t, string(raw), `"activeSessions":2`)
}

func TestClearSession(t *testing.T) {
	app := newTestApp()

	resp, err := app.Test(httptest.NewRequest("DELETE", "/agent/session/s1", nil))
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	raw, _ := io.ReadAll(resp.Body)
	assert.Contains(t, string(raw), `"cleared":true`)
}
