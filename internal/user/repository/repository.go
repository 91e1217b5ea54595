package repository

import (
	"context"
	"database/sql"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"

	models "github.com/aialexidea/CHORD-DEMO/internal/user/model"
	appErrors "github.com/aialexidea/CHORD-DEMO/pkg/errors"
	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

type UserRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewUserRepository(db *bun.DB, logger *logger.Logger) *UserRepository {
	return &UserRepository{
		db:     db,
		logger: logger,
	}
}

func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u := new(models.User)
	err := r.db.NewSelect().Model(u).
		Where("u.id = ? AND u.is_active = TRUE", id).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetByID.Scan: ")
	}
	return u, nil
}

func (r *UserRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	u := new(models.User)
	err := r.db.NewSelect().Model(u).
		Where("u.username = ? AND u.is_active = TRUE", strings.ToLower(username)).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, appErrors.ErrUserNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.GetByUsername.Scan: ")
	}
	return u, nil
}

func (r *UserRepository) ActiveListeners(ctx context.Context, ids []uuid.UUID) ([]models.ListenerProfile, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	var users []models.User
	err := r.db.NewSelect().Model(&users).
		Where("u.id IN (?) AND u.is_active = TRUE", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ActiveListeners.users: ")
	}

	var sessions []models.ListeningSession
	err = r.db.NewSelect().Model(&sessions).
		Where("ls.user_id IN (?) AND ls.is_active = TRUE", bun.In(ids)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ActiveListeners.sessions: ")
	}

	nowPlaying := make(map[uuid.UUID]*models.ListeningSession, len(sessions))
	for i := range sessions {
		nowPlaying[sessions[i].UserID] = &sessions[i]
	}

	profiles := make([]models.ListenerProfile, 0, len(users))
	for _, u := range users {
		profiles = append(profiles, models.ListenerProfile{
			User:       u,
			NowPlaying: nowPlaying[u.ID],
		})
	}
	return profiles, nil
}

func (r *UserRepository) ActiveSession(ctx context.Context, userID uuid.UUID) (*models.ListeningSession, error) {
	s := new(models.ListeningSession)
	err := r.db.NewSelect().Model(s).
		Where("ls.user_id = ? AND ls.is_active = TRUE", userID).
		OrderExpr("ls.started_at DESC").
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.ActiveSession.Scan: ")
	}
	return s, nil
}

func (r *UserRepository) RecentSessions(ctx context.Context, userID uuid.UUID, limit int) ([]models.ListeningSession, error) {
	var sessions []models.ListeningSession
	err := r.db.NewSelect().Model(&sessions).
		Where("ls.user_id = ?", userID).
		OrderExpr("ls.started_at DESC").
		Limit(limit).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.RecentSessions.Scan: ")
	}
	return sessions, nil
}

func (r *UserRepository) TasteProfile(ctx context.Context, userID uuid.UUID) (*models.TasteProfile, error) {
	tp := new(models.TasteProfile)
	err := r.db.NewSelect().Model(tp).
		Where("tp.user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "userRepo.TasteProfile.Scan: ")
	}
	return tp, nil
}

func (r *UserRepository) PushToken(ctx context.Context, userID uuid.UUID) (string, error) {
	var token sql.NullString
	err := r.db.NewSelect().
		Model((*models.User)(nil)).
		Column("push_token").
		Where("u.id = ?", userID).
		Scan(ctx, &token)
	if errors.Is(err, sql.ErrNoRows) {
		return "", nil
	}
	if err != nil {
		return "", errors.Wrap(err, "userRepo.PushToken.Scan: ")
	}
	return token.String, nil
}

func (r *UserRepository) ClearPushToken(ctx context.Context, userID uuid.UUID) error {
	_, err := r.db.NewUpdate().
		Model((*models.User)(nil)).
		Set("push_token = NULL").
		Where("id = ?", userID).
		Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "userRepo.ClearPushToken.Exec: ")
	}
	return nil
}
