package line

import (
	"context"
	"fmt"
	"log"
	"sync"

	"github.com/google/uuid"

	lineclient "communityhub/clients/line"
	"communityhub/models"
)

// BroadcastText fans a text message out to every configured recipient (user
// and group ids) concurrently and waits for all sends to finish before
// returning. A failing recipient never cancels or blocks the others, and no
// recipient is retried here; retry, if wanted, is the caller's call at the
// whole-broadcast level.
//
// The result is best-effort: delivery to at least one recipient counts as
// success.
func (u *LineUseCase) BroadcastText(ctx context.Context, text string) (models.BroadcastResult, error) {
	if text == "" {
		return models.BroadcastResult{}, fmt.Errorf("broadcast text cannot be empty")
	}

	recipients := u.lineConfig.NotifyRecipients()
	if len(recipients) == 0 {
		log.Printf("⚠️ No broadcast recipients configured - nothing to send")
		return models.BroadcastResult{}, nil
	}

	broadcastID := uuid.NewString()
	log.Printf("📤 Broadcast %s starting to %d recipients", broadcastID, len(recipients))

	messages := []lineclient.Message{lineclient.NewTextMessage(text)}

	// One send per recipient, joined on a wait group. The only shared state
	// between sends is the read-only message payload and the outcome channel.
	outcomes := make(chan error, len(recipients))
	var wg sync.WaitGroup
	for _, recipient := range recipients {
		wg.Add(1)
		go func(to string) {
			defer wg.Done()
			err := u.pushSender.PushMessages(ctx, to, messages)
			if err != nil {
				log.Printf("❌ Broadcast %s delivery to %s failed: %v", broadcastID, to, err)
			}
			outcomes <- err
		}(recipient)
	}
	wg.Wait()
	close(outcomes)

	result := models.BroadcastResult{Attempted: len(recipients)}
	for err := range outcomes {
		if err == nil {
			result.Succeeded++
		}
	}

	if result.Delivered() {
		log.Printf("✅ Broadcast %s delivered to %d/%d recipients", broadcastID, result.Succeeded, result.Attempted)
	} else {
		log.Printf("❌ Broadcast %s failed - no recipient reached", broadcastID)
	}

	return result, nil
}
