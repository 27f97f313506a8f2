package line

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// MockPushSender is a mock implementation of PushSender
type MockPushSender struct {
	mock.Mock
}

func (m *MockPushSender) PushMessages(ctx context.Context, to string, messages []Message) error {
	args := m.Called(ctx, to, messages)
	return args.Error(0)
}
