package service

import (
	"context"
	"encoding/json"
	"time"

	"ai-agent-be/internal/constant"
	"ai-agent-be/internal/dto"
	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/internal/repository/memory"
	"ai-agent-be/pkg/agent/prompt"
	"ai-agent-be/pkg/agent/router"
	"ai-agent-be/pkg/documents"
	"ai-agent-be/pkg/llm"
	"ai-agent-be/pkg/rag/retriever"
	"ai-agent-be/pkg/vectorstore"
)

type IAgentService interface {
	InitializeKnowledgeBase(ctx context.Context) error
	ProcessMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error)
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	Health(ctx context.Context) *dto.HealthResponse
	Tools() *dto.ToolsResponse
	ClearSession(sessionID string) *dto.ClearSessionResponse
}

type agentService struct {
	sessionRepo      *memory.SessionRepository
	router           *router.Router
	retriever        *retriever.Retriever
	index            vectorstore.VectorIndex
	llmProvider      llm.LLMProvider
	publisherService IPublisherService
	documentsPath    string
	historyWindow    int
	llmTimeout       time.Duration
	logger           logger.ILogger
}

func NewAgentService(
	sessionRepo *memory.SessionRepository,
	rt *router.Router,
	rv *retriever.Retriever,
	index vectorstore.VectorIndex,
	llmProvider llm.LLMProvider,
	publisherService IPublisherService,
	documentsPath string,
	historyWindow int,
	llmTimeout time.Duration,
	log logger.ILogger,
) IAgentService {
	return &agentService{
		sessionRepo:      sessionRepo,
		router:           rt,
		retriever:        rv,
		index:            index,
		llmProvider:      llmProvider,
		publisherService: publisherService,
		documentsPath:    documentsPath,
		historyWindow:    historyWindow,
		llmTimeout:       llmTimeout,
		logger:           log,
	}
}

// InitializeKnowledgeBase loads the markdown corpus and publishes one
// indexing message per document. Indexing itself happens on the consumer.
func (s *agentService) InitializeKnowledgeBase(ctx context.Context) error {
	docs, err := documents.Load(s.documentsPath)
	if err != nil {
		return err
	}

	for _, doc := range docs {
		payload, err := json.Marshal(dto.PublishIndexDocumentMessage{
			SourceId: doc.SourceID,
			RawText:  doc.RawText,
		})
		if err != nil {
			return err
		}
		if err := s.publisherService.Publish(ctx, payload); err != nil {
			return err
		}
	}

	s.logger.Info("agent", "Knowledge base load dispatched", map[string]interface{}{
		"documents": len(docs),
		"path":      s.documentsPath,
	})
	return nil
}

// ProcessMessage runs the full reply pipeline. It never surfaces pipeline
// failures to the caller; those become an apologetic reply and an error log.
func (s *agentService) ProcessMessage(ctx context.Context, req *dto.SendMessageRequest) (*dto.SendMessageResponse, error) {
	timestamp := time.Now()

	res, err := s.processMessage(ctx, req, timestamp)
	if err != nil {
		s.logger.Error("agent", "Message pipeline failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		return &dto.SendMessageResponse{
			Reply:     constant.ApologyReply,
			SessionId: req.SessionId,
			Timestamp: timestamp,
		}, nil
	}
	return res, nil
}

func (s *agentService) processMessage(ctx context.Context, req *dto.SendMessageRequest, timestamp time.Time) (*dto.SendMessageResponse, error) {
	s.sessionRepo.Append(req.SessionId, constant.ChatMessageRoleUser, req.Message)

	results := s.router.Route(ctx, req.Message)

	// A failed retrieval degrades to an uncontextualized reply, it never
	// fails the request.
	chunks, err := s.retriever.Retrieve(ctx, req.Message)
	if err != nil {
		s.logger.Warn("agent", "Context retrieval failed", map[string]interface{}{
			"session_id": req.SessionId,
			"error":      err.Error(),
		})
		chunks = nil
	}

	history := s.sessionRepo.Recent(req.SessionId, s.historyWindow)

	systemPrompt := prompt.Build(req.Message, history, chunks, results)

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()

	reply, err := s.llmProvider.Generate(llmCtx, systemPrompt)
	if err != nil {
		return nil, err
	}

	s.sessionRepo.Append(req.SessionId, constant.ChatMessageRoleAssistant, reply)

	contextUsed := make([]string, 0, len(chunks))
	for _, c := range chunks {
		contextUsed = append(contextUsed, c.ID)
	}
	pluginsCalled := make([]string, 0, len(results))
	for _, r := range results {
		pluginsCalled = append(pluginsCalled, r.PluginName)
	}

	return &dto.SendMessageResponse{
		Reply:         reply,
		SessionId:     req.SessionId,
		Timestamp:     timestamp,
		ContextUsed:   contextUsed,
		PluginsCalled: pluginsCalled,
	}, nil
}

func (s *agentService) Stats(_ context.Context) (*dto.StatsResponse, error) {
	return &dto.StatsResponse{
		KnowledgeBaseChunks: s.index.Count(),
		ActiveSessions:      s.sessionRepo.ActiveSessions(),
	}, nil
}

// Health probes the vector index and the model with cheap calls. A failing
// component marks the service degraded rather than down.
func (s *agentService) Health(ctx context.Context) *dto.HealthResponse {
	res := &dto.HealthResponse{
		Status: "healthy",
		Components: map[string]string{
			"vector_store": "healthy",
			"llm":          "healthy",
			"sessions":     "healthy",
			"plugins":      "healthy",
		},
		Timestamp: time.Now(),
	}

	if _, err := s.retriever.Retrieve(ctx, "test"); err != nil {
		res.Components["vector_store"] = "unhealthy"
		res.Status = "degraded"
	}

	llmCtx, cancel := context.WithTimeout(ctx, s.llmTimeout)
	defer cancel()
	if _, err := s.llmProvider.Generate(llmCtx, "Hello"); err != nil {
		res.Components["llm"] = "unhealthy"
		res.Status = "degraded"
	}

	return res
}

// toolCapabilities is presentational metadata for the tools endpoint.
var toolCapabilities = map[string][]string{
	"weather": {
		"Current weather conditions",
		"Temperature (Celsius)",
		"Weather description",
		"Humidity percentage",
		"Wind speed",
	},
	"math": {
		"Basic arithmetic (+, -, *, /)",
		"Parentheses grouping",
		"Decimal numbers",
		"Mathematical expressions",
		"Expression validation",
	},
}

func (s *agentService) Tools() *dto.ToolsResponse {
	plugins := s.router.Plugins()
	tools := make([]dto.ToolInfo, 0, len(plugins))
	for _, p := range plugins {
		tools = append(tools, dto.ToolInfo{
			Name:         p.Name(),
			Description:  p.Description(),
			Type:         "plugin",
			Status:       "active",
			Capabilities: toolCapabilities[p.Name()],
		})
	}
	return &dto.ToolsResponse{
		Tools:     tools,
		Count:     len(tools),
		Timestamp: time.Now(),
	}
}

func (s *agentService) ClearSession(sessionID string) *dto.ClearSessionResponse {
	cleared := s.sessionRepo.Clear(sessionID)
	return &dto.ClearSessionResponse{
		SessionId: sessionID,
		Cleared:   cleared,
	}
}
