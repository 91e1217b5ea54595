package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// TasteProfile is the aggregated music DNA of a user. Gated content:
// only visible to self, accepted connections, or when the user is open.
type TasteProfile struct {
	bun.BaseModel `bun:"table:taste_profiles,alias:tp"`

	UserID uuid.UUID `bun:",pk,type:uuid"`

	TopGenres  map[string]float64 `bun:"top_genres,type:jsonb"`
	TopArtists []string           `bun:"top_artists,type:jsonb"`

	AvgEnergy       float64 `bun:",notnull,default:0.5"`
	AvgValence      float64 `bun:",notnull,default:0.5"`
	AvgTempo        float64 `bun:",notnull,default:120"`
	AvgDanceability float64 `bun:",notnull,default:0.5"`
	TotalListens    int     `bun:",notnull,default:0"`

	UpdatedAt time.Time `bun:",nullzero,notnull,default:current_timestamp"`
}
