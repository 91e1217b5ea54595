package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aialexidea/CHORD-DEMO/config"
	"github.com/aialexidea/CHORD-DEMO/internal/connection"
	connmocks "github.com/aialexidea/CHORD-DEMO/internal/connection/mocks"
	"github.com/aialexidea/CHORD-DEMO/internal/connection/model"
	notifmocks "github.com/aialexidea/CHORD-DEMO/internal/notification/mocks"
	usermocks "github.com/aialexidea/CHORD-DEMO/internal/user/mocks"
	models "github.com/aialexidea/CHORD-DEMO/internal/user/model"
	appErrors "github.com/aialexidea/CHORD-DEMO/pkg/errors"
	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

type usecaseMocks struct {
	repo     *connmocks.MockConnectionRepository
	users    *usermocks.MockUserRepository
	notifier *notifmocks.MockDispatcher
}

func newTestUsecase(t *testing.T) (*ConnectionUsecase, usecaseMocks) {
	ctrl := gomock.NewController(t)
	m := usecaseMocks{
		repo:     connmocks.NewMockConnectionRepository(ctrl),
		users:    usermocks.NewMockUserRepository(ctrl),
		notifier: notifmocks.NewMockDispatcher(ctrl),
	}
	cfg := config.Config{}
	log, _ := logger.NewLogger(&cfg)
	return NewConnectionUsecase(m.repo, m.users, m.notifier, log), m
}

func Test_Request(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()

	aliceUser := &models.User{ID: alice, Username: "alice", DisplayName: "Alice"}
	bobUser := &models.User{ID: bob, Username: "bob", DisplayName: "Bob"}

	t.Run("happy path - fresh pending request", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		created := &model.Connection{ID: uuid.New(), RequesterID: alice, TargetID: bob, Status: model.StatusPending}
		g := m.repo.EXPECT()
		g.FindBetween(gomock.Any(), alice, bob).Return(nil, nil)
		g.InsertPending(gomock.Any(), alice, bob).Return(created, nil)
		m.users.EXPECT().GetByID(gomock.Any(), alice).Return(aliceUser, nil)
		m.notifier.EXPECT().NotifyConnectionRequest(gomock.Any(), bob, gomock.Any()).Return(true, nil)

		res, err := uc.Request(t.Context(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, created.ID, res.ConnectionID)
		assert.Equal(t, model.StatusPending, res.Status)
		assert.False(t, res.Mutual)
	})

	t.Run("mutual match - opposite pending auto-accepts", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		// Bob asked first; Alice's request must flip the row to accepted
		// and announce the connection to both sides, with no request
		// notification at all.
		existing := &model.Connection{ID: uuid.New(), RequesterID: bob, TargetID: alice, Status: model.StatusPending}
		g := m.repo.EXPECT()
		g.FindBetween(gomock.Any(), alice, bob).Return(existing, nil)
		g.AcceptPending(gomock.Any(), existing.ID).Return(true, nil)
		m.users.EXPECT().GetByID(gomock.Any(), alice).Return(aliceUser, nil)
		m.users.EXPECT().GetByID(gomock.Any(), bob).Return(bobUser, nil)
		m.notifier.EXPECT().NotifyNewConnection(gomock.Any(), bob, gomock.Any()).Return(true, nil)
		m.notifier.EXPECT().NotifyNewConnection(gomock.Any(), alice, gomock.Any()).Return(true, nil)

		res, err := uc.Request(t.Context(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, res.ConnectionID)
		assert.Equal(t, model.StatusAccepted, res.Status)
		assert.True(t, res.Mutual)
	})

	t.Run("already connected - idempotent, no notification", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		existing := &model.Connection{ID: uuid.New(), RequesterID: bob, TargetID: alice, Status: model.StatusAccepted}
		m.repo.EXPECT().FindBetween(gomock.Any(), alice, bob).Return(existing, nil)

		res, err := uc.Request(t.Context(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, model.StatusAccepted, res.Status)
		assert.True(t, res.Mutual)
	})

	t.Run("re-request after decline re-arms as pending", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		existing := &model.Connection{ID: uuid.New(), RequesterID: alice, TargetID: bob, Status: model.StatusDeclined}
		g := m.repo.EXPECT()
		g.FindBetween(gomock.Any(), alice, bob).Return(existing, nil)
		g.ResetPending(gomock.Any(), existing.ID, alice, bob).Return(true, nil)
		m.users.EXPECT().GetByID(gomock.Any(), alice).Return(aliceUser, nil)
		m.notifier.EXPECT().NotifyConnectionRequest(gomock.Any(), bob, gomock.Any()).Return(true, nil)

		res, err := uc.Request(t.Context(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, existing.ID, res.ConnectionID)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("declined the other way re-arms in the new direction", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		existing := &model.Connection{ID: uuid.New(), RequesterID: bob, TargetID: alice, Status: model.StatusDeclined}
		g := m.repo.EXPECT()
		g.FindBetween(gomock.Any(), alice, bob).Return(existing, nil)
		g.ResetPending(gomock.Any(), existing.ID, alice, bob).Return(true, nil)
		m.users.EXPECT().GetByID(gomock.Any(), alice).Return(aliceUser, nil)
		m.notifier.EXPECT().NotifyConnectionRequest(gomock.Any(), bob, gomock.Any()).Return(true, nil)

		res, err := uc.Request(t.Context(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
	})

	t.Run("lost insert race lands on the fresh row", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		// Bob's concurrent request won the insert; Alice's retry reads
		// his pending row and takes the mutual path.
		raced := &model.Connection{ID: uuid.New(), RequesterID: bob, TargetID: alice, Status: model.StatusPending}
		g := m.repo.EXPECT()
		g.FindBetween(gomock.Any(), alice, bob).Return(nil, nil)
		g.InsertPending(gomock.Any(), alice, bob).Return(nil, connection.ErrPairExists)
		g.FindBetween(gomock.Any(), alice, bob).Return(raced, nil)
		g.AcceptPending(gomock.Any(), raced.ID).Return(true, nil)
		m.users.EXPECT().GetByID(gomock.Any(), alice).Return(aliceUser, nil)
		m.users.EXPECT().GetByID(gomock.Any(), bob).Return(bobUser, nil)
		m.notifier.EXPECT().NotifyNewConnection(gomock.Any(), bob, gomock.Any()).Return(true, nil)
		m.notifier.EXPECT().NotifyNewConnection(gomock.Any(), alice, gomock.Any()).Return(true, nil)

		res, err := uc.Request(t.Context(), alice, bob)
		require.NoError(t, err)
		assert.True(t, res.Mutual)
	})

	t.Run("sad path - self connection", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		res, err := uc.Request(t.Context(), alice, alice)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrSelfConnection, err)
		assert.Nil(t, res)
	})

	t.Run("sad path - db down", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.repo.EXPECT().FindBetween(gomock.Any(), alice, bob).Return(nil, errors.New("db down"))

		res, err := uc.Request(t.Context(), alice, bob)
		require.Error(t, err)
		assert.Equal(t, appErrors.Internal("internal server error"), err)
		assert.Nil(t, res)
	})

	t.Run("notification lookup failure never fails the request", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		created := &model.Connection{ID: uuid.New(), RequesterID: alice, TargetID: bob, Status: model.StatusPending}
		g := m.repo.EXPECT()
		g.FindBetween(gomock.Any(), alice, bob).Return(nil, nil)
		g.InsertPending(gomock.Any(), alice, bob).Return(created, nil)
		m.users.EXPECT().GetByID(gomock.Any(), alice).Return(nil, errors.New("db down"))

		res, err := uc.Request(t.Context(), alice, bob)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, res.Status)
	})
}

func Test_Respond(t *testing.T) {
	alice := uuid.New()
	bob := uuid.New()
	connID := uuid.New()

	bobUser := &models.User{ID: bob, Username: "bob", DisplayName: "Bob"}

	t.Run("happy path - accept notifies the requester", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		accepted := &model.Connection{ID: connID, RequesterID: alice, TargetID: bob, Status: model.StatusAccepted}
		m.repo.EXPECT().ResolvePending(gomock.Any(), connID, bob, model.StatusAccepted).Return(accepted, nil)
		m.users.EXPECT().GetByID(gomock.Any(), bob).Return(bobUser, nil)
		m.notifier.EXPECT().NotifyNewConnection(gomock.Any(), alice, gomock.Any()).Return(true, nil)

		res, err := uc.Respond(t.Context(), connID, bob, connection.ActionAccept)
		require.NoError(t, err)
		assert.Equal(t, model.StatusAccepted, res.Status)
		assert.Equal(t, alice, res.CounterpartID)
	})

	t.Run("decline is silent", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		declined := &model.Connection{ID: connID, RequesterID: alice, TargetID: bob, Status: model.StatusDeclined}
		m.repo.EXPECT().ResolvePending(gomock.Any(), connID, bob, model.StatusDeclined).Return(declined, nil)

		res, err := uc.Respond(t.Context(), connID, bob, connection.ActionDecline)
		require.NoError(t, err)
		assert.Equal(t, model.StatusDeclined, res.Status)
	})

	t.Run("sad path - responder is not the recipient", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		// The conditional update matches nothing when the acting user is
		// not the target, the row is gone, or it was already resolved.
		m.repo.EXPECT().ResolvePending(gomock.Any(), connID, alice, model.StatusAccepted).Return(nil, nil)

		res, err := uc.Respond(t.Context(), connID, alice, connection.ActionAccept)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrRequestAlreadyClosed, err)
		assert.Nil(t, res)
	})

	t.Run("sad path - unknown action", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		res, err := uc.Respond(t.Context(), connID, bob, connection.Action("block"))
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
		assert.Nil(t, res)
	})
}

func Test_SendMessage(t *testing.T) {
	connID := uuid.New()
	sender := uuid.New()

	t.Run("happy path", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		g := m.repo.EXPECT()
		g.AcceptedForUser(gomock.Any(), connID, sender).Return(true, nil)
		g.InsertMessage(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, msg *model.Message) error {
				msg.ID = uuid.New()
				msg.CreatedAt = time.Now()
				return nil
			})

		dto, err := uc.SendMessage(t.Context(), connID, sender, "hey, nice taste")
		require.NoError(t, err)
		assert.Equal(t, sender, dto.SenderID)
		assert.Equal(t, "hey, nice taste", dto.Content)
		assert.NotEqual(t, uuid.Nil, dto.ID)
	})

	t.Run("sad path - empty content", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		dto, err := uc.SendMessage(t.Context(), connID, sender, "")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrEmptyMessage, err)
		assert.Nil(t, dto)
	})

	t.Run("sad path - content over limit", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		dto, err := uc.SendMessage(t.Context(), connID, sender, strings.Repeat("a", maxMessageRunes+1))
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrMessageTooLong, err)
		assert.Nil(t, dto)
	})

	t.Run("content at exactly the limit passes", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		g := m.repo.EXPECT()
		g.AcceptedForUser(gomock.Any(), connID, sender).Return(true, nil)
		g.InsertMessage(gomock.Any(), gomock.Any()).Return(nil)

		_, err := uc.SendMessage(t.Context(), connID, sender, strings.Repeat("a", maxMessageRunes))
		require.NoError(t, err)
	})

	t.Run("sad path - thread not accepted", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.repo.EXPECT().AcceptedForUser(gomock.Any(), connID, sender).Return(false, nil)

		dto, err := uc.SendMessage(t.Context(), connID, sender, "hello")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotConnected, err)
		assert.Nil(t, dto)
	})
}

func Test_ListMessages(t *testing.T) {
	connID := uuid.New()
	reader := uuid.New()
	other := uuid.New()

	t.Run("happy path - batch comes back oldest first", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		now := time.Now()
		batch := []model.Message{
			{ID: uuid.New(), ConnectionID: connID, SenderID: other, Content: "first", CreatedAt: now.Add(-time.Minute)},
			{ID: uuid.New(), ConnectionID: connID, SenderID: reader, Content: "second", CreatedAt: now},
		}
		g := m.repo.EXPECT()
		g.AcceptedForUser(gomock.Any(), connID, reader).Return(true, nil)
		g.ListRecentMarkRead(gomock.Any(), connID, reader, messageBatchSize).Return(batch, nil)

		msgs, err := uc.ListMessages(t.Context(), connID, reader)
		require.NoError(t, err)
		require.Len(t, msgs, 2)
		assert.Equal(t, "first", msgs[0].Content)
		assert.Equal(t, "second", msgs[1].Content)
	})

	t.Run("sad path - outsider gets no thread", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.repo.EXPECT().AcceptedForUser(gomock.Any(), connID, reader).Return(false, nil)

		msgs, err := uc.ListMessages(t.Context(), connID, reader)
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrNotConnected, err)
		assert.Nil(t, msgs)
	})
}
