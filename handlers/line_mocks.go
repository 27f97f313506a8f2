package handlers

import (
	"context"

	"github.com/stretchr/testify/mock"

	"communityhub/models"
)

// MockLineUseCase is a mock implementation of usecases.LineUseCaseInterface
type MockLineUseCase struct {
	mock.Mock
}

func (m *MockLineUseCase) ProcessWebhookEvents(
	ctx context.Context,
	envelope *models.WebhookEnvelope,
) *models.DispatchReport {
	args := m.Called(ctx, envelope)
	return args.Get(0).(*models.DispatchReport)
}

func (m *MockLineUseCase) BroadcastText(ctx context.Context, text string) (models.BroadcastResult, error) {
	args := m.Called(ctx, text)
	return args.Get(0).(models.BroadcastResult), args.Error(1)
}
