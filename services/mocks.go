package services

import (
	"context"
	"time"

	"github.com/samber/mo"
	"github.com/stretchr/testify/mock"

	"communityhub/models"
)

// MockLineContactsService is a mock implementation of LineContactsService
type MockLineContactsService struct {
	mock.Mock
}

func (m *MockLineContactsService) UpsertActiveContact(
	ctx context.Context,
	lineUserID string,
	followedAt time.Time,
) error {
	args := m.Called(ctx, lineUserID, followedAt)
	return args.Error(0)
}

func (m *MockLineContactsService) DeactivateContact(
	ctx context.Context,
	lineUserID string,
	unfollowedAt time.Time,
) error {
	args := m.Called(ctx, lineUserID, unfollowedAt)
	return args.Error(0)
}

func (m *MockLineContactsService) GetContactByUserID(
	ctx context.Context,
	lineUserID string,
) (mo.Option[*models.LineContact], error) {
	args := m.Called(ctx, lineUserID)
	return args.Get(0).(mo.Option[*models.LineContact]), args.Error(1)
}

// MockLineGroupsService is a mock implementation of LineGroupsService
type MockLineGroupsService struct {
	mock.Mock
}

func (m *MockLineGroupsService) UpsertActiveGroup(
	ctx context.Context,
	lineGroupID string,
	joinedAt time.Time,
) error {
	args := m.Called(ctx, lineGroupID, joinedAt)
	return args.Error(0)
}

func (m *MockLineGroupsService) DeactivateGroup(
	ctx context.Context,
	lineGroupID string,
	leftAt time.Time,
) error {
	args := m.Called(ctx, lineGroupID, leftAt)
	return args.Error(0)
}

func (m *MockLineGroupsService) GetGroupByGroupID(
	ctx context.Context,
	lineGroupID string,
) (mo.Option[*models.LineGroup], error) {
	args := m.Called(ctx, lineGroupID)
	return args.Get(0).(mo.Option[*models.LineGroup]), args.Error(1)
}

// MockInboundMessagesService is a mock implementation of InboundMessagesService
type MockInboundMessagesService struct {
	mock.Mock
}

func (m *MockInboundMessagesService) RecordTextMessage(
	ctx context.Context,
	sourceKind models.LineSourceKind,
	sourceID, text string,
	occurredAt time.Time,
) (*models.InboundLineMessage, error) {
	args := m.Called(ctx, sourceKind, sourceID, text, occurredAt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.InboundLineMessage), args.Error(1)
}
