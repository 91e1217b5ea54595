package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusAccepted Status = "accepted"
	StatusDeclined Status = "declined"
)

// Connection is the single row for an unordered user pair. Requester and
// target record who asked last; once accepted the pair is symmetric and
// either id may sit in either column.
//
// Unique index in migration:
// CREATE UNIQUE INDEX idx_connection_pair
//   ON connections(least(requester_id,target_id), greatest(requester_id,target_id));
type Connection struct {
	bun.BaseModel `bun:"table:connections,alias:c"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	RequesterID uuid.UUID `bun:",notnull,type:uuid"`
	TargetID    uuid.UUID `bun:",notnull,type:uuid"`

	Status Status `bun:",notnull,default:'pending'"`

	CreatedAt  time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	AcceptedAt *time.Time `bun:",nullzero"`
}

// HasParty reports whether userID is one of the two sides.
func (c *Connection) HasParty(userID uuid.UUID) bool {
	return c.RequesterID == userID || c.TargetID == userID
}

// Counterpart returns the other side of the pair relative to userID.
func (c *Connection) Counterpart(userID uuid.UUID) uuid.UUID {
	if c.RequesterID == userID {
		return c.TargetID
	}
	return c.RequesterID
}
