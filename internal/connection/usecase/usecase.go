package usecase

import (
	"context"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/aialexidea/CHORD-DEMO/internal/connection"
	"github.com/aialexidea/CHORD-DEMO/internal/connection/model"
	"github.com/aialexidea/CHORD-DEMO/internal/notification"
	"github.com/aialexidea/CHORD-DEMO/internal/user"
	models "github.com/aialexidea/CHORD-DEMO/internal/user/model"
	"github.com/aialexidea/CHORD-DEMO/pkg/errors"
	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

const (
	messageBatchSize = 50
	maxMessageRunes  = 2000
)

type ConnectionUsecase struct {
	repo     connection.ConnectionRepository
	users    user.UserRepository
	notifier notification.Dispatcher
	logger   *logger.Logger
}

func NewConnectionUsecase(
	repo connection.ConnectionRepository,
	users user.UserRepository,
	notifier notification.Dispatcher,
	logger *logger.Logger,
) *ConnectionUsecase {
	return &ConnectionUsecase{repo: repo, users: users, notifier: notifier, logger: logger}
}

func (uc *ConnectionUsecase) Request(ctx context.Context, requesterID, targetID uuid.UUID) (*connection.RequestResult, error) {
	if requesterID == targetID {
		return nil, errors.ErrSelfConnection
	}

	existing, err := uc.repo.FindBetween(ctx, requesterID, targetID)
	if err != nil {
		uc.logger.Error("database error looking up connection pair", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.resolveRequest(ctx, requesterID, targetID, existing, false)
}

// resolveRequest dispatches on the current pair state. retried guards
// the single re-read a lost store race is allowed to trigger.
func (uc *ConnectionUsecase) resolveRequest(ctx context.Context, requesterID, targetID uuid.UUID, existing *model.Connection, retried bool) (*connection.RequestResult, error) {
	switch {
	case existing == nil:
		conn, err := uc.repo.InsertPending(ctx, requesterID, targetID)
		if err == connection.ErrPairExists {
			// Lost the insert race against the counterpart; the fresh
			// row decides (usually the mutual path).
			return uc.retryRequest(ctx, requesterID, targetID, retried)
		}
		if err != nil {
			uc.logger.Error("database error creating connection request", "err", err)
			return nil, errors.Internal("internal server error")
		}
		uc.notifyRequested(ctx, conn)
		return &connection.RequestResult{ConnectionID: conn.ID, Status: model.StatusPending}, nil

	case existing.Status == model.StatusAccepted:
		// Pair already connected. Also the landing spot for whoever
		// observes the row its own mutual CAS lost to: report mutual
		// success without a duplicate notification.
		return &connection.RequestResult{ConnectionID: existing.ID, Status: model.StatusAccepted, Mutual: true}, nil

	case existing.Status == model.StatusPending && existing.TargetID == requesterID:
		// They already asked us — mutual match, auto-accept their row.
		ok, err := uc.repo.AcceptPending(ctx, existing.ID)
		if err != nil {
			uc.logger.Error("database error accepting mutual request", "err", err)
			return nil, errors.Internal("internal server error")
		}
		if !ok {
			return uc.retryRequest(ctx, requesterID, targetID, retried)
		}
		uc.notifyMutual(ctx, requesterID, targetID)
		return &connection.RequestResult{ConnectionID: existing.ID, Status: model.StatusAccepted, Mutual: true}, nil

	default:
		// Same-direction repeat or a declined row from either side:
		// re-arm as a fresh pending request in this direction.
		ok, err := uc.repo.ResetPending(ctx, existing.ID, requesterID, targetID)
		if err != nil {
			uc.logger.Error("database error re-arming connection request", "err", err)
			return nil, errors.Internal("internal server error")
		}
		if !ok {
			return uc.retryRequest(ctx, requesterID, targetID, retried)
		}
		reset := *existing
		reset.RequesterID = requesterID
		reset.TargetID = targetID
		uc.notifyRequested(ctx, &reset)
		return &connection.RequestResult{ConnectionID: existing.ID, Status: model.StatusPending}, nil
	}
}

func (uc *ConnectionUsecase) retryRequest(ctx context.Context, requesterID, targetID uuid.UUID, retried bool) (*connection.RequestResult, error) {
	if retried {
		uc.logger.Error("connection pair state kept moving during request",
			"requester", requesterID, "target", targetID)
		return nil, errors.Internal("internal server error")
	}
	existing, err := uc.repo.FindBetween(ctx, requesterID, targetID)
	if err != nil {
		uc.logger.Error("database error re-reading connection pair", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return uc.resolveRequest(ctx, requesterID, targetID, existing, true)
}

func (uc *ConnectionUsecase) Respond(ctx context.Context, connectionID, actingUserID uuid.UUID, action connection.Action) (*connection.RespondResult, error) {
	var status model.Status
	switch action {
	case connection.ActionAccept:
		status = model.StatusAccepted
	case connection.ActionDecline:
		status = model.StatusDeclined
	default:
		return nil, errors.InvalidArg("action must be accept or decline")
	}

	conn, err := uc.repo.ResolvePending(ctx, connectionID, actingUserID, status)
	if err != nil {
		uc.logger.Error("database error resolving connection request", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if conn == nil {
		// Missing row, already-processed row, or a responder who is not
		// the recipient. Potential abuse probe, worth a trace.
		uc.logger.Warn("respond matched no pending request",
			"connection", connectionID, "user", actingUserID, "action", action)
		return nil, errors.ErrRequestAlreadyClosed
	}

	if status == model.StatusAccepted {
		if card, ok := uc.userCard(ctx, actingUserID); ok {
			if _, err := uc.notifier.NotifyNewConnection(ctx, conn.RequesterID, card); err != nil {
				uc.logger.Warn("new-connection notification failed", "err", err)
			}
		}
	}

	return &connection.RespondResult{
		ConnectionID:  conn.ID,
		Status:        conn.Status,
		CounterpartID: conn.RequesterID,
	}, nil
}

func (uc *ConnectionUsecase) ListAccepted(ctx context.Context, userID uuid.UUID) ([]connection.AcceptedConnectionDTO, error) {
	rows, err := uc.repo.ListAccepted(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing connections", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]connection.AcceptedConnectionDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, connection.AcceptedConnectionDTO{
			ConnectionID: row.ConnectionID,
			User: connection.UserCardDTO{
				ID:          row.UserID,
				Username:    row.Username,
				DisplayName: row.DisplayName,
				PhotoURL:    deref(row.PhotoURL),
				Bio:         row.Bio,
			},
			AcceptedAt:    row.AcceptedAt,
			LastMessage:   row.LastMessage,
			LastMessageAt: row.LastMessageAt,
			Unread:        row.Unread,
		})
	}
	return out, nil
}

func (uc *ConnectionUsecase) ListIncomingRequests(ctx context.Context, userID uuid.UUID) ([]connection.IncomingRequestDTO, error) {
	rows, err := uc.repo.ListIncomingPending(ctx, userID)
	if err != nil {
		uc.logger.Error("database error listing incoming requests", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]connection.IncomingRequestDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, connection.IncomingRequestDTO{
			ConnectionID: row.ConnectionID,
			Requester: connection.UserCardDTO{
				ID:          row.UserID,
				Username:    row.Username,
				DisplayName: row.DisplayName,
				PhotoURL:    deref(row.PhotoURL),
				Bio:         row.Bio,
			},
			CreatedAt: row.CreatedAt,
		})
	}
	return out, nil
}

func (uc *ConnectionUsecase) CanAccess(ctx context.Context, connectionID, userID uuid.UUID) (bool, error) {
	ok, err := uc.repo.AcceptedForUser(ctx, connectionID, userID)
	if err != nil {
		uc.logger.Error("database error checking thread access", "err", err)
		return false, errors.Internal("internal server error")
	}
	return ok, nil
}

func (uc *ConnectionUsecase) SendMessage(ctx context.Context, connectionID, senderID uuid.UUID, content string) (*connection.MessageDTO, error) {
	if content == "" {
		return nil, errors.ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > maxMessageRunes {
		return nil, errors.ErrMessageTooLong
	}

	if err := uc.authorizeThread(ctx, connectionID, senderID); err != nil {
		return nil, err
	}

	msg := &model.Message{
		ConnectionID: connectionID,
		SenderID:     senderID,
		Content:      content,
	}
	if err := uc.repo.InsertMessage(ctx, msg); err != nil {
		uc.logger.Error("database error storing message", "err", err)
		return nil, errors.Internal("internal server error")
	}
	return &connection.MessageDTO{
		ID:        msg.ID,
		SenderID:  msg.SenderID,
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}, nil
}

func (uc *ConnectionUsecase) ListMessages(ctx context.Context, connectionID, userID uuid.UUID) ([]connection.MessageDTO, error) {
	if err := uc.authorizeThread(ctx, connectionID, userID); err != nil {
		return nil, err
	}

	msgs, err := uc.repo.ListRecentMarkRead(ctx, connectionID, userID, messageBatchSize)
	if err != nil {
		uc.logger.Error("database error listing messages", "err", err)
		return nil, errors.Internal("internal server error")
	}

	out := make([]connection.MessageDTO, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, connection.MessageDTO{
			ID:        m.ID,
			SenderID:  m.SenderID,
			Content:   m.Content,
			ReadAt:    m.ReadAt,
			CreatedAt: m.CreatedAt,
		})
	}
	return out, nil
}

func (uc *ConnectionUsecase) authorizeThread(ctx context.Context, connectionID, userID uuid.UUID) error {
	ok, err := uc.repo.AcceptedForUser(ctx, connectionID, userID)
	if err != nil {
		uc.logger.Error("database error checking thread access", "err", err)
		return errors.Internal("internal server error")
	}
	if !ok {
		uc.logger.Warn("thread access denied", "connection", connectionID, "user", userID)
		return errors.ErrNotConnected
	}
	return nil
}

func (uc *ConnectionUsecase) notifyRequested(ctx context.Context, conn *model.Connection) {
	card, ok := uc.userCard(ctx, conn.RequesterID)
	if !ok {
		return
	}
	data := notification.ConnectionRequestData{ConnectionID: conn.ID, Requester: card}
	if _, err := uc.notifier.NotifyConnectionRequest(ctx, conn.TargetID, data); err != nil {
		uc.logger.Warn("connection-request notification failed", "err", err)
	}
}

// notifyMutual announces the new connection to both sides.
func (uc *ConnectionUsecase) notifyMutual(ctx context.Context, requesterID, targetID uuid.UUID) {
	if card, ok := uc.userCard(ctx, requesterID); ok {
		if _, err := uc.notifier.NotifyNewConnection(ctx, targetID, card); err != nil {
			uc.logger.Warn("new-connection notification failed", "err", err)
		}
	}
	if card, ok := uc.userCard(ctx, targetID); ok {
		if _, err := uc.notifier.NotifyNewConnection(ctx, requesterID, card); err != nil {
			uc.logger.Warn("new-connection notification failed", "err", err)
		}
	}
}

func (uc *ConnectionUsecase) userCard(ctx context.Context, userID uuid.UUID) (notification.UserCard, bool) {
	u, err := uc.users.GetByID(ctx, userID)
	if err != nil {
		uc.logger.Warn("user lookup for notification failed", "user", userID, "err", err)
		return notification.UserCard{}, false
	}
	return userCardOf(u), true
}

func userCardOf(u *models.User) notification.UserCard {
	return notification.UserCard{
		ID:          u.ID,
		Username:    u.Username,
		DisplayName: u.DisplayName,
		PhotoURL:    u.PhotoURL,
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
