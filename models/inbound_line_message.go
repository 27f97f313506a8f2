package models

import (
	"time"
)

// InboundLineMessage is one text message received through the webhook.
// Append-only: rows are never updated or deleted by this backend.
type InboundLineMessage struct {
	ID          string          `json:"id" db:"id"`
	SourceKind  LineSourceKind  `json:"source_kind" db:"source_kind"`
	SourceID    string          `json:"source_id" db:"source_id"`
	MessageKind LineMessageKind `json:"message_kind" db:"message_kind"`
	Text        string          `json:"text" db:"text"`
	OccurredAt  time.Time       `json:"occurred_at" db:"occurred_at"`
	CreatedAt   time.Time       `json:"created_at" db:"created_at"`
}
