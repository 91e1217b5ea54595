package connection

import (
	"time"

	"github.com/google/uuid"

	"github.com/aialexidea/CHORD-DEMO/internal/connection/model"
)

// NOTE: commands travel from handler to usecase
// Note: DTO travels from usecase to handler

type Action string

const (
	ActionAccept  Action = "accept"
	ActionDecline Action = "decline"
)

// RequestResult reports the outcome of a connection request. Mutual is
// true when the request resolved an opposite-direction pending request
// into an accepted connection.
type RequestResult struct {
	ConnectionID uuid.UUID    `json:"connectionId"`
	Status       model.Status `json:"status"`
	Mutual       bool         `json:"mutual"`
}

type RespondResult struct {
	ConnectionID  uuid.UUID    `json:"connectionId"`
	Status        model.Status `json:"status"`
	CounterpartID uuid.UUID    `json:"-"`
}

type UserCardDTO struct {
	ID          uuid.UUID `json:"id"`
	Username    string    `json:"username"`
	DisplayName string    `json:"displayName"`
	PhotoURL    string    `json:"photoUrl,omitempty"`
	Bio         string    `json:"bio,omitempty"`
}

type AcceptedConnectionDTO struct {
	ConnectionID  uuid.UUID   `json:"connectionId"`
	User          UserCardDTO `json:"user"`
	AcceptedAt    time.Time   `json:"acceptedAt"`
	LastMessage   *string     `json:"lastMessage,omitempty"`
	LastMessageAt *time.Time  `json:"lastMessageAt,omitempty"`
	Unread        int         `json:"unread"`
}

type IncomingRequestDTO struct {
	ConnectionID uuid.UUID   `json:"connectionId"`
	Requester    UserCardDTO `json:"requester"`
	CreatedAt    time.Time   `json:"createdAt"`
}

type MessageDTO struct {
	ID        uuid.UUID  `json:"id"`
	SenderID  uuid.UUID  `json:"senderId"`
	Content   string     `json:"content"`
	ReadAt    *time.Time `json:"readAt,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
}
