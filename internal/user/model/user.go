package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

type Visibility string

const (
	// VisibilityOpen — anyone nearby sees the full activity history.
	VisibilityOpen Visibility = "open"
	// VisibilityClosed — strangers see existence + current track only;
	// full history requires an accepted connection. Closed never hides
	// a user from the proximity feed.
	VisibilityClosed Visibility = "closed"
)

type User struct {
	bun.BaseModel `bun:"table:users,alias:u"`

	ID uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`

	// Username = unique @handle (lowercase, used for profile lookup)
	Username string `bun:",unique,notnull"`

	// DisplayName = name shown on the feed (can be changed freely)
	DisplayName string `bun:",notnull"`

	Bio        string     `bun:",nullzero"`
	PhotoURL   string     `bun:"photo_url,nullzero"`
	Visibility Visibility `bun:",notnull,default:'open'"`

	// PushToken is the device registration for the push provider.
	// Cleared when the provider reports the token invalid.
	PushToken string `bun:",nullzero"`

	IsActive bool      `bun:",notnull,default:true"`
	LastSeen time.Time `bun:",nullzero,default:current_timestamp"`

	CreatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}

// ListenerProfile pairs a user with their active listening session for
// feed assembly. NowPlaying is nil when nothing is playing.
type ListenerProfile struct {
	User       User
	NowPlaying *ListeningSession
}
