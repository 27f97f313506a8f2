package models

import (
	"time"
)

type LineContactStatus string

const (
	LineContactStatusActive   LineContactStatus = "ACTIVE"
	LineContactStatusInactive LineContactStatus = "INACTIVE"
)

// LineContact tracks the follow state of one external LINE user. Rows are
// created on first follow and never deleted; unfollow only flips the status.
type LineContact struct {
	LineUserID   string            `json:"line_user_id" db:"line_user_id"`
	Status       LineContactStatus `json:"status" db:"status"`
	FollowedAt   *time.Time        `json:"followed_at" db:"followed_at"`
	UnfollowedAt *time.Time        `json:"unfollowed_at" db:"unfollowed_at"`
	CreatedAt    time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time         `json:"updated_at" db:"updated_at"`
}

// LineGroup tracks the join state of one LINE group the bot is a member of.
// Same lifecycle as LineContact, driven by join/leave instead of
// follow/unfollow.
type LineGroup struct {
	LineGroupID string            `json:"line_group_id" db:"line_group_id"`
	Status      LineContactStatus `json:"status" db:"status"`
	JoinedAt    *time.Time        `json:"joined_at" db:"joined_at"`
	LeftAt      *time.Time        `json:"left_at" db:"left_at"`
	CreatedAt   time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time         `json:"updated_at" db:"updated_at"`
}
