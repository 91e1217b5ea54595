package user

import (
	"context"

	"github.com/google/uuid"

	models "github.com/aialexidea/CHORD-DEMO/internal/user/model"
)

// UserRepository is the read side of the users table plus the one
// partial update this core owns (clearing a dead push token).
type UserRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
	// GetByUsername resolves an active user by lowercased handle.
	GetByUsername(ctx context.Context, username string) (*models.User, error)

	// ActiveListeners returns active users among ids joined with their
	// active listening session (nil when nothing is playing).
	ActiveListeners(ctx context.Context, ids []uuid.UUID) ([]models.ListenerProfile, error)

	ActiveSession(ctx context.Context, userID uuid.UUID) (*models.ListeningSession, error)
	RecentSessions(ctx context.Context, userID uuid.UUID, limit int) ([]models.ListeningSession, error)
	TasteProfile(ctx context.Context, userID uuid.UUID) (*models.TasteProfile, error)

	PushToken(ctx context.Context, userID uuid.UUID) (string, error)
	ClearPushToken(ctx context.Context, userID uuid.UUID) error
}
