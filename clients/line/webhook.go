package line

import (
	"encoding/json"
	"fmt"
	"time"

	"communityhub/models"
)

// Wire shapes for the LINE webhook body. Unknown top-level fields are
// ignored for forward compatibility.
type webhookBody struct {
	Destination string         `json:"destination"`
	Events      []webhookEvent `json:"events"`
}

type webhookEvent struct {
	Type      string          `json:"type"`
	Timestamp int64           `json:"timestamp"` // epoch millis
	Source    webhookSource   `json:"source"`
	Message   *webhookMessage `json:"message"`
}

type webhookSource struct {
	Type    string `json:"type"`
	UserID  string `json:"userId"`
	GroupID string `json:"groupId"`
}

type webhookMessage struct {
	ID   string `json:"id"`
	Type string `json:"type"`
	Text string `json:"text"`
}

// ParseWebhookBody decodes a verified webhook body into a typed envelope.
// A syntactically invalid body or a missing events field is an error; an
// envelope with an empty events array is valid. Event and source types not
// recognized here map to the catch-all kinds rather than failing the batch.
func ParseWebhookBody(rawBody []byte) (*models.WebhookEnvelope, error) {
	var body webhookBody
	if err := json.Unmarshal(rawBody, &body); err != nil {
		return nil, fmt.Errorf("failed to parse webhook body: %w", err)
	}

	if body.Events == nil {
		return nil, fmt.Errorf("webhook body is missing events field")
	}

	envelope := &models.WebhookEnvelope{
		Destination: body.Destination,
		Events:      make([]models.WebhookEvent, 0, len(body.Events)),
	}

	for _, raw := range body.Events {
		event := models.WebhookEvent{
			Kind:       parseEventKind(raw.Type),
			OccurredAt: time.UnixMilli(raw.Timestamp).UTC(),
		}

		switch raw.Source.Type {
		case "group":
			event.SourceKind = models.LineSourceKindGroup
			event.SourceID = raw.Source.GroupID
		default:
			event.SourceKind = models.LineSourceKindUser
			event.SourceID = raw.Source.UserID
		}

		if event.Kind == models.LineEventKindMessage && raw.Message != nil {
			event.MessageKind = parseMessageKind(raw.Message.Type)
			event.Text = raw.Message.Text
		}

		envelope.Events = append(envelope.Events, event)
	}

	return envelope, nil
}

func parseEventKind(raw string) models.LineEventKind {
	switch raw {
	case "message":
		return models.LineEventKindMessage
	case "follow":
		return models.LineEventKindFollow
	case "unfollow":
		return models.LineEventKindUnfollow
	case "join":
		return models.LineEventKindJoin
	case "leave":
		return models.LineEventKindLeave
	default:
		return models.LineEventKindOther
	}
}

func parseMessageKind(raw string) models.LineMessageKind {
	if raw == "text" {
		return models.LineMessageKindText
	}
	return models.LineMessageKindOther
}
