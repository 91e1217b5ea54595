package model

import (
	"time"

	"github.com/google/uuid"
)

// AcceptedConnection is the join row behind the connections list: the
// counterpart's public card plus the last-message summary.
type AcceptedConnection struct {
	ConnectionID uuid.UUID `bun:"connection_id"`
	AcceptedAt   time.Time `bun:"accepted_at"`

	UserID      uuid.UUID `bun:"user_id"`
	Username    string    `bun:"username"`
	DisplayName string    `bun:"display_name"`
	PhotoURL    *string   `bun:"photo_url"`
	Bio         string    `bun:"bio"`

	LastMessage   *string    `bun:"last_message"`
	LastMessageAt *time.Time `bun:"last_message_at"`
	Unread        int        `bun:"unread"`
}

// IncomingRequest is a pending row joined with the requester's card.
type IncomingRequest struct {
	ConnectionID uuid.UUID `bun:"connection_id"`
	CreatedAt    time.Time `bun:"created_at"`

	UserID      uuid.UUID `bun:"user_id"`
	Username    string    `bun:"username"`
	DisplayName string    `bun:"display_name"`
	PhotoURL    *string   `bun:"photo_url"`
	Bio         string    `bun:"bio"`
}
