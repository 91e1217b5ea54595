package discovery

import (
	"time"

	"github.com/google/uuid"

	connmodel "github.com/aialexidea/CHORD-DEMO/internal/connection/model"
	models "github.com/aialexidea/CHORD-DEMO/internal/user/model"
)

type NowPlayingDTO struct {
	TrackName  string   `json:"trackName"`
	ArtistName string   `json:"artistName"`
	AlbumArt   string   `json:"albumArt,omitempty"`
	Genres     []string `json:"genres"`
}

// FeedRow is one entry of the proximity feed. Only always-visible
// fields: the feed never exposes gated data regardless of visibility.
type FeedRow struct {
	ID          uuid.UUID         `json:"id"`
	Username    string            `json:"username"`
	DisplayName string            `json:"displayName"`
	PhotoURL    string            `json:"photoUrl,omitempty"`
	Distance    *int              `json:"distance"` // nil when unknown
	Visibility  models.Visibility `json:"visibility"`
	IsConnected bool              `json:"isConnected"`
	RequestSent bool              `json:"requestSent"`
	NowPlaying  *NowPlayingDTO    `json:"nowPlaying"`
}

type Feed struct {
	Rows   []FeedRow `json:"frequency"`
	Count  int       `json:"count"`
	Radius int       `json:"radius"`
}

type TasteProfileDTO struct {
	TopGenres       map[string]float64 `json:"topGenres"`
	TopArtists      []string           `json:"topArtists"`
	AvgEnergy       float64            `json:"avgEnergy"`
	AvgValence      float64            `json:"avgValence"`
	AvgTempo        float64            `json:"avgTempo"`
	AvgDanceability float64            `json:"avgDanceability"`
	TotalListens    int                `json:"totalListens"`
}

type RecentTrackDTO struct {
	TrackName  string    `json:"trackName"`
	ArtistName string    `json:"artistName"`
	AlbumArt   string    `json:"albumArt,omitempty"`
	Genres     []string  `json:"genres"`
	StartedAt  time.Time `json:"startedAt"`
}

// Profile is the gated profile view. Gated fields are nil with
// GatedMessage set when the visibility gate withholds them.
type Profile struct {
	ID          uuid.UUID         `json:"id"`
	Username    string            `json:"username"`
	DisplayName string            `json:"displayName"`
	Bio         string            `json:"bio"`
	PhotoURL    string            `json:"photoUrl,omitempty"`
	Visibility  models.Visibility `json:"visibility"`
	MemberSince time.Time         `json:"memberSince"`

	IsSelf           bool              `json:"isSelf"`
	IsConnected      bool              `json:"isConnected"`
	ConnectionID     *uuid.UUID        `json:"connectionId"`
	ConnectionStatus *connmodel.Status `json:"connectionStatus"`

	NowPlaying    *NowPlayingDTO        `json:"nowPlaying"`
	Compatibility *CompatibilitySummary `json:"compatibility"`

	TasteProfile    *TasteProfileDTO `json:"tasteProfile"`
	RecentTracks    []RecentTrackDTO `json:"recentTracks"`
	ConnectionCount *int             `json:"connectionCount,omitempty"`
	GatedMessage    string           `json:"gatedMessage,omitempty"`
}

// Recommendation is a compatibility-ranked nearby listener.
type Recommendation struct {
	ID          uuid.UUID         `json:"id"`
	Username    string            `json:"username"`
	DisplayName string            `json:"displayName"`
	PhotoURL    string            `json:"photoUrl,omitempty"`
	Visibility  models.Visibility `json:"visibility"`
	Distance    int               `json:"distance"`
	Score       int               `json:"score"`
	NowPlaying  *NowPlayingDTO    `json:"nowPlaying"`
}
