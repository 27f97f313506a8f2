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

type PostgresLineGroupsRepository struct {
	db     *sqlx.DB
	schema string
}

func NewPostgresLineGroupsRepository(db *sqlx.DB, schema string) *PostgresLineGroupsRepository {
	return &PostgresLineGroupsRepository{db: db, schema: schema}
}

// UpsertActive marks a group as joined. Replay-safe like the contact upsert;
// rejoining clears any prior left_at.
func (r *PostgresLineGroupsRepository) UpsertActive(
	ctx context.Context,
	lineGroupID string,
	joinedAt time.Time,
) error {
	query := fmt.Sprintf(`
		INSERT INTO %s.line_groups (line_group_id, status, joined_at, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (line_group_id) DO UPDATE
		SET status = $2, joined_at = $3, left_at = NULL, updated_at = NOW()`, r.schema)

	_, err := r.db.ExecContext(ctx, query, lineGroupID, models.LineContactStatusActive, joinedAt)
	if err != nil {
		return fmt.Errorf("failed to upsert line group: %w", err)
	}

	return nil
}

// Deactivate marks an existing group as left. A missing row is a no-op.
func (r *PostgresLineGroupsRepository) Deactivate(
	ctx context.Context,
	lineGroupID string,
	leftAt time.Time,
) error {
	query := fmt.Sprintf(`
		UPDATE %s.line_groups
		SET status = $2, left_at = $3, updated_at = NOW()
		WHERE line_group_id = $1`, r.schema)

	_, err := r.db.ExecContext(ctx, query, lineGroupID, models.LineContactStatusInactive, leftAt)
	if err != nil {
		return fmt.Errorf("failed to deactivate line group: %w", err)
	}

	return nil
}

func (r *PostgresLineGroupsRepository) GetGroupByGroupID(
	ctx context.Context,
	lineGroupID string,
) (mo.Option[*models.LineGroup], error) {
	query := fmt.Sprintf(`
		SELECT line_group_id, status, joined_at, left_at, created_at, updated_at
		FROM %s.line_groups
		WHERE line_group_id = $1`, r.schema)

	group := &models.LineGroup{}
	err := r.db.GetContext(ctx, group, query, lineGroupID)
	if err != nil {
		if err == sql.ErrNoRows {
			return mo.None[*models.LineGroup](), nil
		}
		return mo.None[*models.LineGroup](), fmt.Errorf("failed to get line group: %w", err)
	}

	return mo.Some(group), nil
}
