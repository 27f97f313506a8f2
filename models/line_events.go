package models

import (
	"time"
)

type LineEventKind string

const (
	LineEventKindMessage  LineEventKind = "message"
	LineEventKindFollow   LineEventKind = "follow"
	LineEventKindUnfollow LineEventKind = "unfollow"
	LineEventKindJoin     LineEventKind = "join"
	LineEventKindLeave    LineEventKind = "leave"
	// LineEventKindOther is the catch-all for event types the platform may
	// introduce that this backend does not handle. Such events are logged
	// and dropped, never treated as errors.
	LineEventKindOther LineEventKind = "other"
)

type LineSourceKind string

const (
	LineSourceKindUser  LineSourceKind = "user"
	LineSourceKindGroup LineSourceKind = "group"
)

type LineMessageKind string

const (
	LineMessageKindText LineMessageKind = "text"
	// Non-text message kinds (image, sticker, location, ...) are accepted
	// but not processed.
	LineMessageKindOther LineMessageKind = "other"
)

// WebhookEvent is one event from a LINE webhook delivery, already normalized
// from the wire shape into the closed kind enums above.
type WebhookEvent struct {
	Kind        LineEventKind   `json:"kind"`
	SourceKind  LineSourceKind  `json:"source_kind"`
	SourceID    string          `json:"source_id"`
	OccurredAt  time.Time       `json:"occurred_at"`
	MessageKind LineMessageKind `json:"message_kind,omitempty"`
	Text        string          `json:"text,omitempty"`
}

// WebhookEnvelope is the decoded body of one webhook request. Immutable and
// request-scoped; Events preserves the platform's delivery order.
type WebhookEnvelope struct {
	Destination string         `json:"destination"`
	Events      []WebhookEvent `json:"events"`
}

// EventReport is the outcome of dispatching a single webhook event.
type EventReport struct {
	Index int           `json:"index"`
	Kind  LineEventKind `json:"kind"`
	Err   error         `json:"-"`
}

// DispatchReport aggregates per-event outcomes for one webhook batch. Handler
// failures are recorded here for observability but never fail the batch.
type DispatchReport struct {
	Processed int           `json:"processed"`
	Failed    int           `json:"failed"`
	Reports   []EventReport `json:"reports"`
}

func (r *DispatchReport) Record(index int, kind LineEventKind, err error) {
	r.Processed++
	if err != nil {
		r.Failed++
	}
	r.Reports = append(r.Reports, EventReport{Index: index, Kind: kind, Err: err})
}
