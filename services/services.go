package services

import (
	"context"
	"time"

	"github.com/samber/mo"

	"communityhub/models"
)

// LineContactsService defines the interface for LINE contact state operations
type LineContactsService interface {
	UpsertActiveContact(ctx context.Context, lineUserID string, followedAt time.Time) error
	DeactivateContact(ctx context.Context, lineUserID string, unfollowedAt time.Time) error
	GetContactByUserID(ctx context.Context, lineUserID string) (mo.Option[*models.LineContact], error)
}

// LineGroupsService defines the interface for LINE group state operations
type LineGroupsService interface {
	UpsertActiveGroup(ctx context.Context, lineGroupID string, joinedAt time.Time) error
	DeactivateGroup(ctx context.Context, lineGroupID string, leftAt time.Time) error
	GetGroupByGroupID(ctx context.Context, lineGroupID string) (mo.Option[*models.LineGroup], error)
}

// InboundMessagesService defines the interface for the inbound message log
type InboundMessagesService interface {
	RecordTextMessage(
		ctx context.Context,
		sourceKind models.LineSourceKind,
		sourceID, text string,
		occurredAt time.Time,
	) (*models.InboundLineMessage, error)
}
