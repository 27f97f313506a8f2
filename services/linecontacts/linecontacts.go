package linecontacts

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/samber/mo"

	"communityhub/db"
	"communityhub/models"
)

type LineContactsService struct {
	contactsRepo *db.PostgresLineContactsRepository
}

func NewLineContactsService(repo *db.PostgresLineContactsRepository) *LineContactsService {
	return &LineContactsService{contactsRepo: repo}
}

func (s *LineContactsService) UpsertActiveContact(
	ctx context.Context,
	lineUserID string,
	followedAt time.Time,
) error {
	log.Printf("📋 Starting to upsert active contact: %s", lineUserID)

	if lineUserID == "" {
		return fmt.Errorf("line_user_id cannot be empty")
	}

	if err := s.contactsRepo.UpsertActive(ctx, lineUserID, followedAt); err != nil {
		return fmt.Errorf("failed to upsert active contact: %w", err)
	}

	log.Printf("📋 Completed successfully - contact %s is active", lineUserID)
	return nil
}

func (s *LineContactsService) DeactivateContact(
	ctx context.Context,
	lineUserID string,
	unfollowedAt time.Time,
) error {
	log.Printf("📋 Starting to deactivate contact: %s", lineUserID)

	if lineUserID == "" {
		return fmt.Errorf("line_user_id cannot be empty")
	}

	if err := s.contactsRepo.Deactivate(ctx, lineUserID, unfollowedAt); err != nil {
		return fmt.Errorf("failed to deactivate contact: %w", err)
	}

	log.Printf("📋 Completed successfully - contact %s is inactive", lineUserID)
	return nil
}

func (s *LineContactsService) GetContactByUserID(
	ctx context.Context,
	lineUserID string,
) (mo.Option[*models.LineContact], error) {
	if lineUserID == "" {
		return mo.None[*models.LineContact](), fmt.Errorf("line_user_id cannot be empty")
	}

	maybeContact, err := s.contactsRepo.GetContactByUserID(ctx, lineUserID)
	if err != nil {
		return mo.None[*models.LineContact](), fmt.Errorf("failed to get contact: %w", err)
	}

	return maybeContact, nil
}
