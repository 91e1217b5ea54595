package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// ListeningSession is one play event. The active row is "now playing";
// closed rows form the listening history.
type ListeningSession struct {
	bun.BaseModel `bun:"table:listening_sessions,alias:ls"`

	ID     uuid.UUID `bun:",pk,type:uuid,default:gen_random_uuid()"`
	UserID uuid.UUID `bun:",notnull,type:uuid"`

	TrackID     string   `bun:",notnull"`
	TrackName   string   `bun:",notnull"`
	ArtistName  string   `bun:",notnull"`
	AlbumArtURL string   `bun:"album_art_url,nullzero"`
	Genres      []string `bun:",array"`

	StartedAt time.Time  `bun:",nullzero,notnull,default:current_timestamp"`
	EndedAt   *time.Time `bun:",nullzero"`
	IsActive  bool       `bun:",notnull,default:true"`
}
