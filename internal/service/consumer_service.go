package service

import (
	"context"
	"encoding/json"

	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"

	"ai-agent-be/internal/dto"
	"ai-agent-be/internal/pkg/logger"
	"ai-agent-be/pkg/rag/indexer"
	"ai-agent-be/pkg/store"
)

type IConsumerService interface {
	Consume(ctx context.Context) error
}

type consumerService struct {
	pubSub    *gochannel.GoChannel
	topicName string
	indexer   *indexer.Indexer
	logger    logger.ILogger
}

func NewConsumerService(
	pubSub *gochannel.GoChannel,
	topicName string,
	ix *indexer.Indexer,
	log logger.ILogger,
) IConsumerService {
	return &consumerService{
		pubSub:    pubSub,
		topicName: topicName,
		indexer:   ix,
		logger:    log,
	}
}

func (cs *consumerService) Consume(ctx context.Context) error {
	messages, err := cs.pubSub.Subscribe(ctx, cs.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			cs.processMessage(ctx, msg)
		}
	}()

	return nil
}

func (cs *consumerService) processMessage(ctx context.Context, msg *message.Message) {
	var payload dto.PublishIndexDocumentMessage
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		cs.logger.Error("consumer", "Failed to unmarshal index message", map[string]interface{}{
			"error": err.Error(),
		})
		msg.Ack() // Ack invalid messages to prevent infinite retry
		return
	}

	cs.logger.Info("consumer", "Indexing document", map[string]interface{}{
		"source_id": payload.SourceId,
	})

	n, err := cs.indexer.IndexDocument(ctx, store.Document{
		SourceID: payload.SourceId,
		RawText:  payload.RawText,
	})
	if err != nil {
		// Embedding and commit failures are deterministic for a given
		// payload, so retrying would loop forever. Drop the document.
		cs.logger.Error("consumer", "Failed to index document", map[string]interface{}{
			"source_id": payload.SourceId,
			"error":     err.Error(),
		})
		msg.Ack()
		return
	}

	cs.logger.Info("consumer", "Document indexed", map[string]interface{}{
		"source_id": payload.SourceId,
		"chunks":    n,
	})
	msg.Ack()
}
