package linemessages

import (
	"context"
	"fmt"
	"log"
	"time"

	"communityhub/core"
	"communityhub/db"
	"communityhub/models"
)

type InboundMessagesService struct {
	messagesRepo *db.PostgresInboundLineMessagesRepository
}

func NewInboundMessagesService(repo *db.PostgresInboundLineMessagesRepository) *InboundMessagesService {
	return &InboundMessagesService{messagesRepo: repo}
}

// RecordTextMessage appends one received text message to the message log.
func (s *InboundMessagesService) RecordTextMessage(
	ctx context.Context,
	sourceKind models.LineSourceKind,
	sourceID, text string,
	occurredAt time.Time,
) (*models.InboundLineMessage, error) {
	log.Printf("📋 Starting to record text message from %s %s", sourceKind, sourceID)

	if sourceID == "" {
		return nil, fmt.Errorf("source_id cannot be empty")
	}

	message := &models.InboundLineMessage{
		ID:          core.NewID("lm"),
		SourceKind:  sourceKind,
		SourceID:    sourceID,
		MessageKind: models.LineMessageKindText,
		Text:        text,
		OccurredAt:  occurredAt,
	}

	if err := s.messagesRepo.CreateInboundMessage(ctx, message); err != nil {
		return nil, fmt.Errorf("failed to record text message: %w", err)
	}

	log.Printf("📋 Completed successfully - recorded message %s", message.ID)
	return message, nil
}
