package usecase

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aialexidea/CHORD-DEMO/config"
	connmocks "github.com/aialexidea/CHORD-DEMO/internal/connection/mocks"
	connmodel "github.com/aialexidea/CHORD-DEMO/internal/connection/model"
	"github.com/aialexidea/CHORD-DEMO/internal/discovery"
	discmocks "github.com/aialexidea/CHORD-DEMO/internal/discovery/mocks"
	"github.com/aialexidea/CHORD-DEMO/internal/notification"
	notifmocks "github.com/aialexidea/CHORD-DEMO/internal/notification/mocks"
	usermocks "github.com/aialexidea/CHORD-DEMO/internal/user/mocks"
	models "github.com/aialexidea/CHORD-DEMO/internal/user/model"
	appErrors "github.com/aialexidea/CHORD-DEMO/pkg/errors"
	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

type usecaseMocks struct {
	users     *usermocks.MockUserRepository
	conns     *connmocks.MockConnectionRepository
	proximity *discmocks.MockProximityService
	compat    *discmocks.MockCompatibilityService
	notifier  *notifmocks.MockDispatcher
}

func newTestUsecase(t *testing.T) (*DiscoveryUsecase, usecaseMocks) {
	ctrl := gomock.NewController(t)
	m := usecaseMocks{
		users:     usermocks.NewMockUserRepository(ctrl),
		conns:     connmocks.NewMockConnectionRepository(ctrl),
		proximity: discmocks.NewMockProximityService(ctrl),
		compat:    discmocks.NewMockCompatibilityService(ctrl),
		notifier:  notifmocks.NewMockDispatcher(ctrl),
	}
	cfg := config.Config{}
	log, _ := logger.NewLogger(&cfg)
	return NewDiscoveryUsecase(m.users, m.conns, m.proximity, m.compat, m.notifier, log), m
}

func listener(id uuid.UUID, username string, session *models.ListeningSession) models.ListenerProfile {
	return models.ListenerProfile{
		User:       models.User{ID: id, Username: username, DisplayName: username, Visibility: models.VisibilityOpen},
		NowPlaying: session,
	}
}

func Test_BuildFeed(t *testing.T) {
	viewer := uuid.New()
	near := uuid.New()
	far := uuid.New()
	connected := uuid.New()

	t.Run("happy path - sorted by distance with pair flags", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).Return([]discovery.NearbyListener{
			{UserID: far, Distance: 900},
			{UserID: near, Distance: 40},
			{UserID: connected, Distance: 300},
		}, nil)
		m.users.EXPECT().ActiveListeners(gomock.Any(), gomock.Any()).Return([]models.ListenerProfile{
			listener(far, "farah", nil),
			listener(near, "nadia", &models.ListeningSession{TrackName: "Holocene", ArtistName: "Bon Iver"}),
			listener(connected, "casey", nil),
		}, nil)
		m.conns.EXPECT().PairStates(gomock.Any(), viewer, gomock.Any()).Return([]connmodel.Connection{
			{ID: uuid.New(), RequesterID: viewer, TargetID: connected, Status: connmodel.StatusAccepted},
			{ID: uuid.New(), RequesterID: viewer, TargetID: far, Status: connmodel.StatusPending},
		}, nil)

		feed, err := uc.BuildFeed(t.Context(), viewer, 0)
		require.NoError(t, err)
		require.Equal(t, 3, feed.Count)
		assert.Equal(t, discovery.DefaultRadius, feed.Radius)

		assert.Equal(t, "nadia", feed.Rows[0].Username)
		assert.Equal(t, "casey", feed.Rows[1].Username)
		assert.Equal(t, "farah", feed.Rows[2].Username)

		assert.True(t, feed.Rows[1].IsConnected)
		assert.False(t, feed.Rows[1].RequestSent)
		assert.True(t, feed.Rows[2].RequestSent)

		require.NotNil(t, feed.Rows[0].NowPlaying)
		assert.Equal(t, "Bon Iver", feed.Rows[0].NowPlaying.ArtistName)
		assert.Nil(t, feed.Rows[1].NowPlaying)
	})

	t.Run("incoming pending request is not a sent request", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).Return([]discovery.NearbyListener{
			{UserID: near, Distance: 100},
		}, nil)
		m.users.EXPECT().ActiveListeners(gomock.Any(), gomock.Any()).Return([]models.ListenerProfile{
			listener(near, "nadia", nil),
		}, nil)
		m.conns.EXPECT().PairStates(gomock.Any(), viewer, gomock.Any()).Return([]connmodel.Connection{
			{ID: uuid.New(), RequesterID: near, TargetID: viewer, Status: connmodel.StatusPending},
		}, nil)

		feed, err := uc.BuildFeed(t.Context(), viewer, 0)
		require.NoError(t, err)
		assert.False(t, feed.Rows[0].RequestSent)
		assert.False(t, feed.Rows[0].IsConnected)
	})

	t.Run("nobody around yields an empty feed, not nil", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, 1000).Return(nil, nil)

		feed, err := uc.BuildFeed(t.Context(), viewer, 1000)
		require.NoError(t, err)
		assert.NotNil(t, feed.Rows)
		assert.Empty(t, feed.Rows)
		assert.Equal(t, 1000, feed.Radius)
	})

	t.Run("sad path - radius out of bounds", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		_, err := uc.BuildFeed(t.Context(), viewer, 49)
		assert.Equal(t, appErrors.ErrInvalidRadius, err)

		_, err = uc.BuildFeed(t.Context(), viewer, 5001)
		assert.Equal(t, appErrors.ErrInvalidRadius, err)
	})

	t.Run("sad path - geo index down", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).
			Return(nil, errors.New("geo index down"))

		feed, err := uc.BuildFeed(t.Context(), viewer, 0)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInternal, appErrors.CodeOf(err))
		assert.Nil(t, feed)
	})
}

func Test_BuildProfile(t *testing.T) {
	viewer := uuid.New()

	closedSubject := &models.User{
		ID:          uuid.New(),
		Username:    "nadia",
		DisplayName: "Nadia",
		Visibility:  models.VisibilityClosed,
	}

	t.Run("stranger viewing a closed account gets the tease", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.users.EXPECT().GetByUsername(gomock.Any(), "nadia").Return(closedSubject, nil)
		m.conns.EXPECT().FindBetween(gomock.Any(), viewer, closedSubject.ID).Return(nil, nil)
		m.users.EXPECT().ActiveSession(gomock.Any(), closedSubject.ID).
			Return(&models.ListeningSession{TrackName: "Pyramids", ArtistName: "Frank Ocean"}, nil)
		m.compat.EXPECT().Summarize(gomock.Any(), viewer, closedSubject.ID).
			Return(&discovery.CompatibilitySummary{Score: 72}, nil)

		p, err := uc.BuildProfile(t.Context(), viewer, "nadia")
		require.NoError(t, err)

		// Always-visible set survives the gate.
		require.NotNil(t, p.NowPlaying)
		assert.Equal(t, "Frank Ocean", p.NowPlaying.ArtistName)
		require.NotNil(t, p.Compatibility)
		assert.Equal(t, 72, p.Compatibility.Score)

		// Gated set is withheld with the fixed message.
		assert.Nil(t, p.TasteProfile)
		assert.Nil(t, p.RecentTracks)
		assert.Nil(t, p.ConnectionCount)
		assert.Equal(t, discovery.GatedMessage, p.GatedMessage)
	})

	t.Run("accepted connection unlocks the gated set", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		conn := &connmodel.Connection{ID: uuid.New(), RequesterID: viewer, TargetID: closedSubject.ID, Status: connmodel.StatusAccepted}
		m.users.EXPECT().GetByUsername(gomock.Any(), "nadia").Return(closedSubject, nil)
		m.conns.EXPECT().FindBetween(gomock.Any(), viewer, closedSubject.ID).Return(conn, nil)
		m.users.EXPECT().ActiveSession(gomock.Any(), closedSubject.ID).Return(nil, nil)
		m.compat.EXPECT().Summarize(gomock.Any(), viewer, closedSubject.ID).
			Return(&discovery.CompatibilitySummary{Score: 72}, nil)
		m.users.EXPECT().TasteProfile(gomock.Any(), closedSubject.ID).
			Return(&models.TasteProfile{TopArtists: []string{"Frank Ocean"}, TotalListens: 412}, nil)
		m.users.EXPECT().RecentSessions(gomock.Any(), closedSubject.ID, recentTrackCount).
			Return([]models.ListeningSession{{TrackName: "Pyramids", ArtistName: "Frank Ocean"}}, nil)
		m.conns.EXPECT().AcceptedCount(gomock.Any(), closedSubject.ID).Return(7, nil)

		p, err := uc.BuildProfile(t.Context(), viewer, "nadia")
		require.NoError(t, err)
		assert.True(t, p.IsConnected)
		assert.Empty(t, p.GatedMessage)
		require.NotNil(t, p.TasteProfile)
		assert.Equal(t, 412, p.TasteProfile.TotalListens)
		require.Len(t, p.RecentTracks, 1)
		require.NotNil(t, p.ConnectionCount)
		assert.Equal(t, 7, *p.ConnectionCount)
	})

	t.Run("scoring outage never blocks the profile", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.users.EXPECT().GetByUsername(gomock.Any(), "nadia").Return(closedSubject, nil)
		m.conns.EXPECT().FindBetween(gomock.Any(), viewer, closedSubject.ID).Return(nil, nil)
		m.users.EXPECT().ActiveSession(gomock.Any(), closedSubject.ID).Return(nil, nil)
		m.compat.EXPECT().Summarize(gomock.Any(), viewer, closedSubject.ID).
			Return(nil, errors.New("scorer down"))

		p, err := uc.BuildProfile(t.Context(), viewer, "nadia")
		require.NoError(t, err)
		assert.Nil(t, p.Compatibility)
	})

	t.Run("sad path - unknown username", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.users.EXPECT().GetByUsername(gomock.Any(), "ghost").Return(nil, appErrors.ErrUserNotFound)

		p, err := uc.BuildProfile(t.Context(), viewer, "ghost")
		require.Error(t, err)
		assert.Equal(t, appErrors.ErrUserNotFound, err)
		assert.Nil(t, p)
	})
}

func Test_BuildRecommendations(t *testing.T) {
	viewer := uuid.New()
	high := uuid.New()
	low := uuid.New()

	t.Run("ranked by score, best first", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).Return([]discovery.NearbyListener{
			{UserID: low, Distance: 100},
			{UserID: high, Distance: 400},
		}, nil)
		m.compat.EXPECT().Summarize(gomock.Any(), viewer, low).Return(&discovery.CompatibilitySummary{Score: 30}, nil)
		m.compat.EXPECT().Summarize(gomock.Any(), viewer, high).Return(&discovery.CompatibilitySummary{Score: 90}, nil)
		m.users.EXPECT().ActiveListeners(gomock.Any(), gomock.Any()).Return([]models.ListenerProfile{
			listener(low, "lo", nil),
			listener(high, "hi", nil),
		}, nil)

		recs, err := uc.BuildRecommendations(t.Context(), viewer, 0, 0)
		require.NoError(t, err)
		require.Len(t, recs, 2)
		assert.Equal(t, "hi", recs[0].Username)
		assert.Equal(t, 90, recs[0].Score)
		assert.Equal(t, 400, recs[0].Distance)
	})

	t.Run("unscorable candidates are skipped", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).Return([]discovery.NearbyListener{
			{UserID: low, Distance: 100},
			{UserID: high, Distance: 400},
		}, nil)
		m.compat.EXPECT().Summarize(gomock.Any(), viewer, low).Return(nil, errors.New("scorer down"))
		m.compat.EXPECT().Summarize(gomock.Any(), viewer, high).Return(&discovery.CompatibilitySummary{Score: 90}, nil)
		m.users.EXPECT().ActiveListeners(gomock.Any(), gomock.Any()).Return([]models.ListenerProfile{
			listener(high, "hi", nil),
		}, nil)

		recs, err := uc.BuildRecommendations(t.Context(), viewer, 0, 0)
		require.NoError(t, err)
		require.Len(t, recs, 1)
		assert.Equal(t, "hi", recs[0].Username)
	})

	t.Run("sad path - limit out of range", func(t *testing.T) {
		uc, _ := newTestUsecase(t)

		_, err := uc.BuildRecommendations(t.Context(), viewer, 0, maxRecLimit+1)
		require.Error(t, err)
		assert.Equal(t, appErrors.CodeInvalidArgument, appErrors.CodeOf(err))
	})
}

func Test_ScanMatches(t *testing.T) {
	viewer := uuid.New()
	other := uuid.New()

	mySession := &models.ListeningSession{
		TrackName:  "Weird Fishes",
		ArtistName: "Radiohead",
		Genres:     []string{"art rock", "electronic"},
	}

	t.Run("no active session means nothing to match", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.users.EXPECT().ActiveSession(gomock.Any(), viewer).Return(nil, nil)

		delivered, err := uc.ScanMatches(t.Context(), viewer, 0)
		require.NoError(t, err)
		assert.Zero(t, delivered)
	})

	t.Run("same artist nearby fires an artist match", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.users.EXPECT().ActiveSession(gomock.Any(), viewer).Return(mySession, nil)
		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).Return([]discovery.NearbyListener{
			{UserID: other, Distance: 150},
		}, nil)
		m.users.EXPECT().ActiveListeners(gomock.Any(), gomock.Any()).Return([]models.ListenerProfile{
			listener(other, "otto", &models.ListeningSession{
				TrackName:  "Reckoner",
				ArtistName: "Radiohead",
				Genres:     []string{"art rock"},
			}),
		}, nil)
		m.notifier.EXPECT().NotifyArtistMatch(gomock.Any(), viewer, gomock.Any()).DoAndReturn(
			func(_ interface{}, _ uuid.UUID, data notification.ArtistMatchData) (bool, error) {
				assert.Equal(t, "Radiohead", data.ArtistName)
				assert.Equal(t, 150, data.Distance)
				return true, nil
			})
		m.notifier.EXPECT().NotifyGenreMatch(gomock.Any(), viewer, gomock.Any()).Return(true, nil)

		delivered, err := uc.ScanMatches(t.Context(), viewer, 0)
		require.NoError(t, err)
		assert.Equal(t, 2, delivered)
	})

	t.Run("shared genres only, sorted for a stable key", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.users.EXPECT().ActiveSession(gomock.Any(), viewer).Return(mySession, nil)
		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).Return([]discovery.NearbyListener{
			{UserID: other, Distance: 80},
		}, nil)
		m.users.EXPECT().ActiveListeners(gomock.Any(), gomock.Any()).Return([]models.ListenerProfile{
			listener(other, "otto", &models.ListeningSession{
				TrackName:  "Windowlicker",
				ArtistName: "Aphex Twin",
				Genres:     []string{"electronic", "art rock"},
			}),
		}, nil)
		m.notifier.EXPECT().NotifyGenreMatch(gomock.Any(), viewer, gomock.Any()).DoAndReturn(
			func(_ interface{}, _ uuid.UUID, data notification.GenreMatchData) (bool, error) {
				assert.Equal(t, []string{"art rock", "electronic"}, data.SharedGenres)
				assert.Equal(t, 1, data.Count)
				assert.Equal(t, 80, data.ClosestDistance)
				return true, nil
			})

		delivered, err := uc.ScanMatches(t.Context(), viewer, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, delivered)
	})

	t.Run("suppressed notifications do not count as delivered", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.users.EXPECT().ActiveSession(gomock.Any(), viewer).Return(mySession, nil)
		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).Return([]discovery.NearbyListener{
			{UserID: other, Distance: 80},
		}, nil)
		m.users.EXPECT().ActiveListeners(gomock.Any(), gomock.Any()).Return([]models.ListenerProfile{
			listener(other, "otto", &models.ListeningSession{
				TrackName:  "Reckoner",
				ArtistName: "Radiohead",
				Genres:     []string{"art rock"},
			}),
		}, nil)
		m.notifier.EXPECT().NotifyArtistMatch(gomock.Any(), viewer, gomock.Any()).Return(false, nil)
		m.notifier.EXPECT().NotifyGenreMatch(gomock.Any(), viewer, gomock.Any()).Return(false, nil)

		delivered, err := uc.ScanMatches(t.Context(), viewer, 0)
		require.NoError(t, err)
		assert.Zero(t, delivered)
	})

	t.Run("the viewer's own echo is ignored", func(t *testing.T) {
		uc, m := newTestUsecase(t)

		m.users.EXPECT().ActiveSession(gomock.Any(), viewer).Return(mySession, nil)
		m.proximity.EXPECT().FindNearby(gomock.Any(), viewer, discovery.DefaultRadius).Return([]discovery.NearbyListener{
			{UserID: viewer, Distance: 0},
		}, nil)
		m.users.EXPECT().ActiveListeners(gomock.Any(), gomock.Any()).Return([]models.ListenerProfile{
			listener(viewer, "me", mySession),
		}, nil)

		delivered, err := uc.ScanMatches(t.Context(), viewer, 0)
		require.NoError(t, err)
		assert.Zero(t, delivered)
	})
}
