package notification

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Event type tags, mirrored by the mobile clients.
const (
	TypeArtistMatch       = "ARTIST_MATCH"
	TypeGenreMatch        = "GENRE_MATCH"
	TypeConnectionRequest = "CONNECTION_REQUEST"
	TypeNewConnection     = "NEW_CONNECTION"
)

// Notification is the transient payload sent over the in-app channel
// and the push transport. Never persisted.
type Notification struct {
	Type      string                 `json:"type"`
	Title     string                 `json:"title"`
	Body      string                 `json:"body"`
	Data      map[string]interface{} `json:"data"`
	Timestamp int64                  `json:"timestamp"` // unix millis
}

// UserCard is the public slice of a user carried inside notifications.
type UserCard struct {
	ID          uuid.UUID
	Username    string
	DisplayName string
	PhotoURL    string
}

// Name is the display name when set, the handle otherwise.
func (c UserCard) Name() string {
	if c.DisplayName != "" {
		return c.DisplayName
	}
	return c.Username
}

type ConnectionRequestData struct {
	ConnectionID uuid.UUID
	Requester    UserCard
}

type ArtistMatchData struct {
	UserID     uuid.UUID
	Username   string
	ArtistName string
	TrackName  string
	AlbumArt   string
	Distance   int // meters
}

type GenreMatchData struct {
	SharedGenres    []string
	Count           int
	ClosestDistance int
}

// Dispatcher fans graph and proximity events out to the target user.
// The boolean result is false when the event was suppressed by the
// throttle — a normal outcome, not an error.
type Dispatcher interface {
	NotifyConnectionRequest(ctx context.Context, targetUserID uuid.UUID, data ConnectionRequestData) (bool, error)
	// NotifyNewConnection is never throttled: an acceptance is a
	// singular event and must always reach the user.
	NotifyNewConnection(ctx context.Context, targetUserID uuid.UUID, from UserCard) (bool, error)
	NotifyArtistMatch(ctx context.Context, targetUserID uuid.UUID, data ArtistMatchData) (bool, error)
	NotifyGenreMatch(ctx context.Context, targetUserID uuid.UUID, data GenreMatchData) (bool, error)
}

// ThrottleStore records "a notification of type t went to user u within
// the window". Keys expire on their own; there is no delete.
type ThrottleStore interface {
	Throttled(ctx context.Context, userID uuid.UUID, notifType string) (bool, error)
	MarkSent(ctx context.Context, userID uuid.UUID, notifType string, window time.Duration) error
}

// Emitter is the in-app real-time channel. Fire-and-forget, no
// delivery guarantee.
type Emitter interface {
	EmitToUser(userID uuid.UUID, event string, payload interface{})
}
