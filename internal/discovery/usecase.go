package discovery

import (
	"context"

	"github.com/google/uuid"
)

type DiscoveryUsecase interface {
	// BuildFeed assembles the proximity feed for the viewer. Radius in
	// meters, clamped semantics per MinRadius/MaxRadius; zero means
	// DefaultRadius.
	BuildFeed(ctx context.Context, viewerID uuid.UUID, radiusMeters int) (*Feed, error)

	// BuildProfile composes the gated profile view of subjectUsername
	// as seen by viewerID.
	BuildProfile(ctx context.Context, viewerID uuid.UUID, subjectUsername string) (*Profile, error)

	// BuildRecommendations ranks nearby listeners by compatibility
	// score, best first. Limit 1..20, zero means 10.
	BuildRecommendations(ctx context.Context, viewerID uuid.UUID, radiusMeters, limit int) ([]Recommendation, error)

	// ScanMatches compares the viewer's active session against nearby
	// listeners and fires artist/genre match notifications to the
	// viewer. Returns the number of notifications actually delivered.
	ScanMatches(ctx context.Context, viewerID uuid.UUID, radiusMeters int) (int, error)
}
