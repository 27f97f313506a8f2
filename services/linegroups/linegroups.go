package linegroups

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/mo"

	"communityhub/db"
	"communityhub/models"
)

type LineGroupsService struct {
	groupsRepo *db.PostgresLineGroupsRepository
}

func NewLineGroupsService(repo *db.PostgresLineGroupsRepository) *LineGroupsService {
	return &LineGroupsService{groupsRepo: repo}
}

func (s *LineGroupsService) UpsertActiveGroup(
	ctx context.Context,
	lineGroupID string,
	joinedAt time.Time,
) error {
	log.Printf("📋 Starting to upsert active group: %s", lineGroupID)

	if lineGroupID == "" {
		return fmt.Errorf("line_group_id cannot be empty")
	}

	if err := s.groupsRepo.UpsertActive(ctx, lineGroupID, joinedAt); err != nil {
		return fmt.Errorf("failed to upsert active group: %w", err)
	}

	log.Printf("📋 Completed successfully - group %s is active", lineGroupID)
	return nil
}

func (s *LineGroupsService) DeactivateGroup(
	ctx context.Context,
	lineGroupID string,
	leftAt time.Time,
) error {
	log.Printf("📋 Starting to deactivate group: %s", lineGroupID)

	if lineGroupID == "" {
		return fmt.Errorf("line_group_id cannot be empty")
	}

	if err := s.groupsRepo.Deactivate(ctx, lineGroupID, leftAt); err != nil {
		return fmt.Errorf("failed to deactivate group: %w", err)
	}

	log.Printf("📋 Completed successfully - group %s is inactive", lineGroupID)
	return nil
}

func (s *LineGroupsService) GetGroupByGroupID(
	ctx context.Context,
	lineGroupID string,
) (mo.Option[*models.LineGroup], error) {
	if lineGroupID == "" {
		return mo.None[*models.LineGroup](), fmt.Errorf("line_group_id cannot be empty")
	}

	maybeGroup, err := s.groupsRepo.GetGroupByGroupID(ctx, lineGroupID)
	if err != nil {
		return mo.None[*models.LineGroup](), fmt.Errorf("failed to get group: %w", err)
	}

	return maybeGroup, nil
}
