package bootstrap

import (
	"log"

	"ai-agent-be/internal/config"
	"ai-agent-be/internal/controller"
	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/internal/repository/memory"
	"ai-agent-be/internal/service"
	"ai-agent-be/pkg/agent/router"
	"ai-agent-be/pkg/embedding"
	"ai-agent-be/pkg/llm/factory"
	mathplugin "ai-agent-be/pkg/plugin/math"
	weatherplugin "ai-agent-be/pkg/plugin/weather"
	"ai-agent-be/pkg/rag/chunker"
	"ai-agent-be/pkg/rag/indexer"
	"ai-agent-be/pkg/rag/retriever"
	"ai-agent-be/pkg/vectorstore"
	"ai-agent-be/pkg/vectorstore/chromem"
	memindex "ai-agent-be/pkg/vectorstore/memory"
	"ai-agent-be/pkg/weather"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
)

type Container struct {
	// Controllers
	AgentController controller.IAgentController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	// Exposed for main.go to dispatch the initial knowledge base load
	AgentService service.IAgentService

	Logger logger.ILogger
}

func NewContainer(cfg *config.Config) *Container {
	// 1. Core Facades
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// 2. Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// 3. AI Providers
	var embeddingProvider embedding.EmbeddingProvider
	if cfg.Ai.EmbeddingProvider == "ollama" {
		embeddingProvider = embedding.NewOllamaProvider(
			cfg.Ai.OllamaBaseURL,
			cfg.Ai.OllamaModel,
			0,
		)
		log.Printf("[INFO] Using Embedding Provider: OLLAMA (%s)", cfg.Ai.OllamaModel)
	} else {
		embeddingProvider = embedding.NewHashProvider(embedding.DefaultDimension)
		log.Printf("[INFO] Using Embedding Provider: HASH (deterministic)")
	}

	llmProvider, err := factory.NewLLMProvider(factory.Config{
		Provider: cfg.Ai.LLMProvider,
		APIKey:   cfg.Ai.GroqAPIKey,
		BaseURL:  cfg.Ai.LLMBaseURL,
		Model:    cfg.Ai.LLMModel,
		Timeout:  cfg.Ai.LLMTimeout,
	})
	if err != nil {
		log.Fatalf("[FATAL] Failed to initialize LLM Provider: %v", err)
	}
	log.Printf("[INFO] Using LLM Provider: %s (%s)", cfg.Ai.LLMProvider, cfg.Ai.LLMModel)

	// 4. Vector Index
	var index vectorstore.VectorIndex
	if cfg.Rag.VectorStore == "chromem" {
		index, err = chromem.NewIndex()
		if err != nil {
			log.Fatalf("[FATAL] Failed to initialize chromem index: %v", err)
		}
		log.Printf("[INFO] Using Vector Store: CHROMEM")
	} else {
		index = memindex.NewIndex()
		log.Printf("[INFO] Using Vector Store: MEMORY")
	}

	// 5. RAG Pipeline
	docChunker := chunker.New(cfg.Rag.ChunkSize)
	docIndexer := indexer.New(docChunker, embeddingProvider, index, sysLogger)
	docRetriever := retriever.New(embeddingProvider, index, cfg.Rag.TopK, sysLogger)

	// 6. Weather Source
	var weatherSource weather.Source
	if cfg.Weather.Provider == "openweather" && cfg.Weather.APIKey != "" {
		weatherSource = weather.NewOpenWeatherSource(cfg.Weather.APIKey, cfg.Weather.Timeout)
		log.Printf("[INFO] Using Weather Source: OPENWEATHER")
	} else {
		weatherSource = weather.NewStaticSource()
		log.Printf("[INFO] Using Weather Source: STATIC")
	}

	// 7. Plugin Router
	pluginRouter := router.New(
		router.NewOracleClassifier(llmProvider, sysLogger),
		router.NewPatternClassifier(),
		sysLogger,
	)
	pluginRouter.Register(mathplugin.NewPlugin(sysLogger), router.MathArgument)
	pluginRouter.Register(weatherplugin.NewPlugin(weatherSource, sysLogger), router.WeatherArgument)

	// 8. Session Memory
	sessionRepo := memory.NewSessionRepository(cfg.Memory.MaxMessages, cfg.Memory.SessionTTL)

	// 9. Services
	publisherService := service.NewPublisherService(cfg.App.IndexTopicName, pubSub)
	consumerService := service.NewConsumerService(
		pubSub,
		cfg.App.IndexTopicName,
		docIndexer,
		sysLogger,
	)

	agentService := service.NewAgentService(
		sessionRepo,
		pluginRouter,
		docRetriever,
		index,
		llmProvider,
		publisherService,
		cfg.Rag.DocumentsPath,
		cfg.Memory.HistoryWindow,
		cfg.Ai.LLMTimeout,
		sysLogger,
	)

	// 10. Controllers
	return &Container{
		AgentController: controller.NewAgentController(agentService),
		ConsumerService: consumerService,
		AgentService:    agentService,
		Logger:          sysLogger,
	}
}
