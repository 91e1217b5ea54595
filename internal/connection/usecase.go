package connection

import (
	"context"

	"github.com/google/uuid"
)

type ConnectionUsecase interface {
	// Request creates or re-arms a pending request towards targetID, or
	// auto-accepts when an opposite-direction request is already
	// pending (mutual match).
	Request(ctx context.Context, requesterID, targetID uuid.UUID) (*RequestResult, error)

	// Respond accepts or declines a pending request. Only the recipient
	// of the request may respond.
	Respond(ctx context.Context, connectionID, actingUserID uuid.UUID, action Action) (*RespondResult, error)

	// ListAccepted returns accepted connections with the counterpart's
	// card and last-message summary, most recently active first.
	ListAccepted(ctx context.Context, userID uuid.UUID) ([]AcceptedConnectionDTO, error)

	ListIncomingRequests(ctx context.Context, userID uuid.UUID) ([]IncomingRequestDTO, error)

	// CanAccess reports whether userID may use the chat thread behind
	// connectionID (accepted + party).
	CanAccess(ctx context.Context, connectionID, userID uuid.UUID) (bool, error)

	SendMessage(ctx context.Context, connectionID, senderID uuid.UUID, content string) (*MessageDTO, error)

	// ListMessages returns the most recent messages oldest-first and
	// marks the counterpart's unread messages as read.
	ListMessages(ctx context.Context, connectionID, userID uuid.UUID) ([]MessageDTO, error)
}
