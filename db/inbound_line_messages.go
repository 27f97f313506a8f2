package db

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"communityhub/models"
)

type PostgresInboundLineMessagesRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresInboundLineMessagesRepository(db *sqlx.DB, schema string) *PostgresInboundLineMessagesRepository {
	return &PostgresInboundLineMessagesRepository{db: db, schema: schema}
}

// CreateInboundMessage appends one received message. The table is append-only:
// nothing in this backend updates or deletes rows.
func (r *PostgresInboundLineMessagesRepository) CreateInboundMessage(
	ctx context.Context,
	message *models.InboundLineMessage,
) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.inbound_line_messages (id, source_kind, source_id, message_kind, text, occurred_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		RETURNING id, source_kind, source_id, message_kind, text, occurred_at, created_at`, r.schema)

	err := r.db.QueryRowxContext(
		ctx,
		query,
		message.ID,
		message.SourceKind,
		message.SourceID,
		message.MessageKind,
		message.Text,
		message.OccurredAt,
	).StructScan(message)
	if err != nil {
		return fmt.Errorf("failed to create inbound line message: %w", err)
	}

	return nil
}

// GetMessagesBySourceID returns the stored messages for one sender, oldest
// first.
func (r *PostgresInboundLineMessagesRepository) GetMessagesBySourceID(
	ctx context.Context,
	sourceID string,
) ([]*models.InboundLineMessage, error) {
	query := fmt.Sprintf(`
		SELECT id, source_kind, source_id, message_kind, text, occurred_at, created_at
		FROM %s.inbound_line_messages
		WHERE source_id = $1
		ORDER BY occurred_at ASC`, r.schema)

	var messages []*models.InboundLineMessage
	err := r.db.SelectContext(ctx, &messages, query, sourceID)
	if err != nil {
		return nil, fmt.Errorf("failed to get inbound line messages by source id: %w", err)
	}

	return messages, nil
}
