package connection

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/aialexidea/CHORD-DEMO/internal/connection/model"
)

// ErrPairExists is returned by InsertPending when the unordered-pair
// unique index rejects the insert: another row for the pair appeared
// concurrently. Callers re-read and resolve from the fresh state.
var ErrPairExists = errors.New("connection pair already exists")

type ConnectionRepository interface {
	// FindBetween returns the single row for the unordered pair {a,b},
	// either direction, or nil when none exists.
	FindBetween(ctx context.Context, a, b uuid.UUID) (*model.Connection, error)

	InsertPending(ctx context.Context, requesterID, targetID uuid.UUID) (*model.Connection, error)

	// ResetPending re-arms an existing non-accepted row as a fresh
	// pending request in the given direction. Returns false when the
	// row was concurrently accepted.
	ResetPending(ctx context.Context, id, requesterID, targetID uuid.UUID) (bool, error)

	// AcceptPending transitions id from pending to accepted, stamping
	// accepted_at. Returns false when the row was not pending anymore.
	AcceptPending(ctx context.Context, id uuid.UUID) (bool, error)

	// ResolvePending applies an accept/decline by the recipient. The
	// update matches only rows where targetID is the recipient and the
	// status is still pending; nil result means no such row.
	ResolvePending(ctx context.Context, id, targetID uuid.UUID, status model.Status) (*model.Connection, error)

	ListAccepted(ctx context.Context, userID uuid.UUID) ([]model.AcceptedConnection, error)
	ListIncomingPending(ctx context.Context, userID uuid.UUID) ([]model.IncomingRequest, error)

	// PairStates returns all rows linking userID with any of others,
	// for feed flag assembly.
	PairStates(ctx context.Context, userID uuid.UUID, others []uuid.UUID) ([]model.Connection, error)

	AcceptedCount(ctx context.Context, userID uuid.UUID) (int, error)

	// AcceptedForUser reports whether id is an accepted connection with
	// userID as one of its parties. The messaging gate.
	AcceptedForUser(ctx context.Context, id, userID uuid.UUID) (bool, error)

	InsertMessage(ctx context.Context, msg *model.Message) error

	// ListRecentMarkRead returns the latest limit messages oldest-first
	// and, in the same transaction, stamps read_at on unread messages
	// not sent by readerID.
	ListRecentMarkRead(ctx context.Context, connectionID, readerID uuid.UUID, limit int) ([]model.Message, error)
}
