package main

import (
	"context"
	"log"

	"ai-agent-be/internal/bootstrap"
	"ai-agent-be/internal/config"
	"ai-agent-be/internal/server"
	"ai-agent-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Start Consumer Service
	// Subscribe must complete before the initial publish below; gochannel is
	// non-persistent and drops messages with no subscriber. Only the drain
	// loop inside Consume runs in the background.
	log.Println("Starting Consumer Service...")
	if err := container.ConsumerService.Consume(context.Background()); err != nil {
		log.Fatalf("Failed to start consumer: %v", err)
	}

	// 4. Dispatch the initial knowledge base load to the consumer
	if err := container.AgentService.InitializeKnowledgeBase(context.Background()); err != nil {
		log.Printf("[WARN] Knowledge base load failed: %v", err)
	}

	// 5. Initialize Server
	srv := server.New(cfg, container)

	// 6. Run Server
	log.Fatal(srv.Run())
}
