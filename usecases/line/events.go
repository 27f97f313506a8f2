package line

import (
	"context"
	"fmt"
	"log"

	"communityhub/models"
)

// ProcessWebhookEvents dispatches a verified, decoded webhook batch. Events
// are handled sequentially in platform order: a follow immediately followed
// by an unfollow for the same contact must leave it inactive.
//
// A failing handler is recorded in the report and logged but never aborts
// the rest of the batch - the platform redelivers whole batches on non-200
// responses, and every handler effect is an idempotent upsert/update, so
// swallowing per-event failures is safe and avoids retry storms.
func (u *LineUseCase) ProcessWebhookEvents(
	ctx context.Context,
	envelope *models.WebhookEnvelope,
) *models.DispatchReport {
	log.Printf("📨 Processing webhook batch of %d events for destination %s",
		len(envelope.Events), envelope.Destination)

	report := &models.DispatchReport{}
	for i, event := range envelope.Events {
		err := u.processEvent(ctx, event)
		if err != nil {
			log.Printf("❌ Failed to process %s event %d from %s: %v", event.Kind, i, event.SourceID, err)
		}
		report.Record(i, event.Kind, err)
	}

	if report.Failed > 0 {
		log.Printf("⚠️ Webhook batch completed with %d/%d failed events", report.Failed, report.Processed)
	} else {
		log.Printf("✅ Webhook batch completed - %d events processed", report.Processed)
	}

	return report
}

func (u *LineUseCase) processEvent(ctx context.Context, event models.WebhookEvent) error {
	switch event.Kind {
	case models.LineEventKindMessage:
		return u.processMessageEvent(ctx, event)

	case models.LineEventKindFollow:
		return u.contactsService.UpsertActiveContact(ctx, event.SourceID, event.OccurredAt)

	case models.LineEventKindUnfollow:
		return u.contactsService.DeactivateContact(ctx, event.SourceID, event.OccurredAt)

	case models.LineEventKindJoin:
		return u.groupsService.UpsertActiveGroup(ctx, event.SourceID, event.OccurredAt)

	case models.LineEventKindLeave:
		return u.groupsService.DeactivateGroup(ctx, event.SourceID, event.OccurredAt)

	case models.LineEventKindOther:
		log.Printf("📋 Ignoring unrecognized event kind from %s", event.SourceID)
		return nil

	default:
		return fmt.Errorf("unhandled event kind: %s", event.Kind)
	}
}

func (u *LineUseCase) processMessageEvent(ctx context.Context, event models.WebhookEvent) error {
	if event.MessageKind != models.LineMessageKindText {
		log.Printf("📋 Ignoring non-text message from %s", event.SourceID)
		return nil
	}

	_, err := u.messagesService.RecordTextMessage(ctx, event.SourceKind, event.SourceID, event.Text, event.OccurredAt)
	if err != nil {
		return fmt.Errorf("failed to record inbound text message: %w", err)
	}

	return nil
}
