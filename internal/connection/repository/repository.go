package repository

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/driver/pgdriver"

	"github.com/aialexidea/CHORD-DEMO/internal/connection"
	"github.com/aialexidea/CHORD-DEMO/internal/connection/model"
	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

const pgUniqueViolation = "23505"

type ConnectionRepository struct {
	db     *bun.DB
	logger *logger.Logger
}

func NewConnectionRepository(db *bun.DB, logger *logger.Logger) *ConnectionRepository {
	return &ConnectionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *ConnectionRepository) FindBetween(ctx context.Context, a, b uuid.UUID) (*model.Connection, error) {
	conn := new(model.Connection)
	err := r.db.NewSelect().Model(conn).
		Where("(c.requester_id = ? AND c.target_id = ?) OR (c.requester_id = ? AND c.target_id = ?)",
			a, b, b, a).
		Limit(1).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.FindBetween.Scan: ")
	}
	return conn, nil
}

func (r *ConnectionRepository) InsertPending(ctx context.Context, requesterID, targetID uuid.UUID) (*model.Connection, error) {
	conn := &model.Connection{
		RequesterID: requesterID,
		TargetID:    targetID,
		Status:      model.StatusPending,
	}
	_, err := r.db.NewInsert().Model(conn).Returning("*").Exec(ctx)
	if err != nil {
		var pgErr pgdriver.Error
		if errors.As(err, &pgErr) && pgErr.Field('C') == pgUniqueViolation {
			return nil, connection.ErrPairExists
		}
		return nil, errors.Wrap(err, "connRepo.InsertPending.Exec: ")
	}
	return conn, nil
}

func (r *ConnectionRepository) ResetPending(ctx context.Context, id, requesterID, targetID uuid.UUID) (bool, error) {
	res, err := r.db.NewUpdate().Model((*model.Connection)(nil)).
		Set("requester_id = ?", requesterID).
		Set("target_id = ?", targetID).
		Set("status = ?", model.StatusPending).
		Set("created_at = now()").
		Set("accepted_at = NULL").
		Where("id = ? AND status != ?", id, model.StatusAccepted).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "connRepo.ResetPending.Exec: ")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "connRepo.ResetPending.RowsAffected: ")
	}
	return rows == 1, nil
}

func (r *ConnectionRepository) AcceptPending(ctx context.Context, id uuid.UUID) (bool, error) {
	res, err := r.db.NewUpdate().Model((*model.Connection)(nil)).
		Set("status = ?", model.StatusAccepted).
		Set("accepted_at = now()").
		Where("id = ? AND status = ?", id, model.StatusPending).
		Exec(ctx)
	if err != nil {
		return false, errors.Wrap(err, "connRepo.AcceptPending.Exec: ")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, errors.Wrap(err, "connRepo.AcceptPending.RowsAffected: ")
	}
	return rows == 1, nil
}

func (r *ConnectionRepository) ResolvePending(ctx context.Context, id, targetID uuid.UUID, status model.Status) (*model.Connection, error) {
	var acceptedAt *time.Time
	if status == model.StatusAccepted {
		now := time.Now()
		acceptedAt = &now
	}

	conn := new(model.Connection)
	res, err := r.db.NewUpdate().Model(conn).
		Set("status = ?", status).
		Set("accepted_at = ?", acceptedAt).
		Where("id = ? AND target_id = ? AND status = ?", id, targetID, model.StatusPending).
		Returning("*").
		Exec(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.ResolvePending.Exec: ")
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.ResolvePending.RowsAffected: ")
	}
	if rows == 0 {
		return nil, nil
	}
	return conn, nil
}

const lastMessageAtExpr = `(SELECT m.created_at FROM messages m
 WHERE m.connection_id = c.id ORDER BY m.created_at DESC LIMIT 1)`

func (r *ConnectionRepository) ListAccepted(ctx context.Context, userID uuid.UUID) ([]model.AcceptedConnection, error) {
	var rows []model.AcceptedConnection
	err := r.db.NewSelect().
		TableExpr("connections AS c").
		Join("JOIN users AS u ON u.id = CASE WHEN c.requester_id = ? THEN c.target_id ELSE c.requester_id END", userID).
		ColumnExpr("c.id AS connection_id, c.accepted_at").
		ColumnExpr("u.id AS user_id, u.username, u.display_name, u.photo_url, u.bio").
		ColumnExpr(`(SELECT m.content FROM messages m
 WHERE m.connection_id = c.id ORDER BY m.created_at DESC LIMIT 1) AS last_message`).
		ColumnExpr(lastMessageAtExpr + " AS last_message_at").
		ColumnExpr(`(SELECT count(*) FROM messages m
 WHERE m.connection_id = c.id AND m.sender_id != ? AND m.read_at IS NULL) AS unread`, userID).
		Where("(c.requester_id = ? OR c.target_id = ?) AND c.status = ?",
			userID, userID, model.StatusAccepted).
		OrderExpr("COALESCE(" + lastMessageAtExpr + ", c.accepted_at) DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.ListAccepted.Scan: ")
	}
	return rows, nil
}

func (r *ConnectionRepository) ListIncomingPending(ctx context.Context, userID uuid.UUID) ([]model.IncomingRequest, error) {
	var rows []model.IncomingRequest
	err := r.db.NewSelect().
		TableExpr("connections AS c").
		Join("JOIN users AS u ON u.id = c.requester_id").
		ColumnExpr("c.id AS connection_id, c.created_at").
		ColumnExpr("u.id AS user_id, u.username, u.display_name, u.photo_url, u.bio").
		Where("c.target_id = ? AND c.status = ?", userID, model.StatusPending).
		OrderExpr("c.created_at DESC").
		Scan(ctx, &rows)
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.ListIncomingPending.Scan: ")
	}
	return rows, nil
}

func (r *ConnectionRepository) PairStates(ctx context.Context, userID uuid.UUID, others []uuid.UUID) ([]model.Connection, error) {
	if len(others) == 0 {
		return nil, nil
	}
	var conns []model.Connection
	err := r.db.NewSelect().Model(&conns).
		Where("(c.requester_id = ? AND c.target_id IN (?)) OR (c.target_id = ? AND c.requester_id IN (?))",
			userID, bun.In(others), userID, bun.In(others)).
		Scan(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.PairStates.Scan: ")
	}
	return conns, nil
}

func (r *ConnectionRepository) AcceptedCount(ctx context.Context, userID uuid.UUID) (int, error) {
	count, err := r.db.NewSelect().Model((*model.Connection)(nil)).
		Where("(c.requester_id = ? OR c.target_id = ?) AND c.status = ?",
			userID, userID, model.StatusAccepted).
		Count(ctx)
	if err != nil {
		return 0, errors.Wrap(err, "connRepo.AcceptedCount.Count: ")
	}
	return count, nil
}

func (r *ConnectionRepository) AcceptedForUser(ctx context.Context, id, userID uuid.UUID) (bool, error) {
	exists, err := r.db.NewSelect().Model((*model.Connection)(nil)).
		Where("c.id = ? AND c.status = ? AND (c.requester_id = ? OR c.target_id = ?)",
			id, model.StatusAccepted, userID, userID).
		Exists(ctx)
	if err != nil {
		return false, errors.Wrap(err, "connRepo.AcceptedForUser.Exists: ")
	}
	return exists, nil
}

func (r *ConnectionRepository) InsertMessage(ctx context.Context, msg *model.Message) error {
	_, err := r.db.NewInsert().Model(msg).Returning("*").Exec(ctx)
	if err != nil {
		return errors.Wrap(err, "connRepo.InsertMessage.Exec: ")
	}
	return nil
}

func (r *ConnectionRepository) ListRecentMarkRead(ctx context.Context, connectionID, readerID uuid.UUID, limit int) ([]model.Message, error) {
	var msgs []model.Message
	err := r.db.RunInTx(ctx, nil, func(ctx context.Context, tx bun.Tx) error {
		if err := tx.NewSelect().Model(&msgs).
			Where("m.connection_id = ?", connectionID).
			OrderExpr("m.created_at DESC").
			Limit(limit).
			Scan(ctx); err != nil {
			return err
		}
		if len(msgs) == 0 {
			return nil
		}
		// Bounded by the newest selected row so a message landing after
		// the select keeps its unread state.
		newest := msgs[0].CreatedAt
		_, err := tx.NewUpdate().Model((*model.Message)(nil)).
			Set("read_at = now()").
			Where("connection_id = ? AND sender_id != ? AND read_at IS NULL AND created_at <= ?",
				connectionID, readerID, newest).
			Exec(ctx)
		return err
	})
	if err != nil {
		return nil, errors.Wrap(err, "connRepo.ListRecentMarkRead: ")
	}

	// newest-first from the query, oldest-first for the thread
	for i, j := 0, len(msgs)-1; i < j; i, j = i+1, j-1 {
		msgs[i], msgs[j] = msgs[j], msgs[i]
	}
	return msgs, nil
}
