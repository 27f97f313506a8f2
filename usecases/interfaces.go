package usecases

import (
	"context"

	"communityhub/models"
)

// LineUseCaseInterface defines the interface for LINE integration operations
type LineUseCaseInterface interface {
	ProcessWebhookEvents(ctx context.Context, envelope *models.WebhookEnvelope) *models.DispatchReport
	BroadcastText(ctx context.Context, text string) (models.BroadcastResult, error)
}
