package discovery

import (
	"context"

	"github.com/google/uuid"
)

// Radius bounds for proximity queries, in meters.
const (
	MinRadius     = 50
	MaxRadius     = 5000
	DefaultRadius = 500
)

// NearbyListener is one proximity hit. Distance is in meters.
type NearbyListener struct {
	UserID   uuid.UUID
	Distance int
}

// ProximityService is the external geo index.
type ProximityService interface {
	FindNearby(ctx context.Context, userID uuid.UUID, radiusMeters int) ([]NearbyListener, error)
}

// CompatibilitySummary is the externally computed taste overlap.
type CompatibilitySummary struct {
	Score           int                `json:"score"` // 0..100
	TopGenreWeights map[string]float64 `json:"topGenreWeights"`
}

// CompatibilityService is the external scoring engine.
type CompatibilityService interface {
	Summarize(ctx context.Context, viewerID, subjectID uuid.UUID) (*CompatibilitySummary, error)
}

// NoopProximity stands in when no geo index is configured: the feed is
// simply empty, never an error.
type NoopProximity struct{}

func (NoopProximity) FindNearby(ctx context.Context, userID uuid.UUID, radiusMeters int) ([]NearbyListener, error) {
	return nil, nil
}

// NoopCompatibility scores every pair at zero.
type NoopCompatibility struct{}

func (NoopCompatibility) Summarize(ctx context.Context, viewerID, subjectID uuid.UUID) (*CompatibilitySummary, error) {
	return &CompatibilitySummary{}, nil
}
