package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/samber/mo"

	"communityhub/models"
)

type PostgresLineContactsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresLineContactsRepository(db *sqlx.DB, schema string) *PostgresLineContactsRepository {
	return &PostgresLineContactsRepository{db: db, schema: schema}
}

// UpsertActive marks a contact as followed. Replay-safe: applying the same
// follow event twice leaves the row identical. A re-follow clears any prior
// unfollowed_at.
func (r *PostgresLineContactsRepository) UpsertActive(
	ctx context.Context,
	lineUserID string,
	followedAt time.Time,
) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.line_contacts (line_user_id, status, followed_at, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (line_user_id) DO UPDATE
		SET status = $2, followed_at = $3, unfollowed_at = NULL, updated_at = NOW()`, r.schema)

	_, err := r.db.ExecContext(ctx, query, lineUserID, models.LineContactStatusActive, followedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert line contact: %w", err)
	}

	return nil
}

// Deactivate marks an existing contact as unfollowed. A missing row is a
// no-op, not an error; rows are never deleted.
func (r *PostgresLineContactsRepository) Deactivate(
	ctx context.Context,
	lineUserID string,
	unfollowedAt time.Time,
) error {
	query := fmt.Sprintf(`
		UPDATE %s.line_contacts
		SET status = $2, unfollowed_at = $3, updated_at = NOW()
		WHERE line_user_id = $1`, r.schema)

	_, err := r.db.ExecContext(ctx, query, lineUserID, models.LineContactStatusInactive, unfollowedAt)
	if err != nil {
		return fmt.Errorf("failed to deactivate line contact: %w", err)
	}

	return nil
}

func (r *PostgresLineContactsRepository) GetContactByUserID(
	ctx context.Context,
	lineUserID string,
) (mo.Option[*models.LineContact], error) {
	query := fmt.Sprintf(`
		SELECT line_user_id, status, followed_at, unfollowed_at, created_at, updated_at
		FROM %s.line_contacts
		WHERE line_user_id = $1`, r.schema)

	contact := &models.LineContact{}
	err := r.db.GetContext(ctx, contact, query, lineUserID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.LineContact](), nil
		}
		return mo.None[*models.LineContact](), fmt.Errorf("failed to get line contact: %w", err)
	}

	return mo.Some(contact), nil
}

// GetActiveContacts lists contacts currently following the channel, most
// recently followed first.
func (r *PostgresLineContactsRepository) GetActiveContacts(ctx context.Context) ([]*models.LineContact, error) {
	query := fmt.Sprintf(`
		SELECT line_user_id, status, followed_at, unfollowed_at, created_at, updated_at
		FROM %s.line_contacts
		WHERE status = $1
		ORDER BY followed_at DESC`, r.schema)

	var contacts []*models.LineContact
	err := r.db.SelectContext(ctx, &contacts, query, models.LineContactStatusActive)
	if err != nil {
		return nil, fmt.Errorf("failed to get active line contacts: %w", err)
	}

	return contacts, nil
}
