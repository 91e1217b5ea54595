package usecase

import (
	"context"
	"sort"

	"github.com/google/uuid"

	"github.com/aialexidea/CHORD-DEMO/internal/connection"
	connmodel "github.com/aialexidea/CHORD-DEMO/internal/connection/model"
	"github.com/aialexidea/CHORD-DEMO/internal/discovery"
	"github.com/aialexidea/CHORD-DEMO/internal/notification"
	"github.com/aialexidea/CHORD-DEMO/internal/user"
	models "github.com/aialexidea/CHORD-DEMO/internal/user/model"
	"github.com/aialexidea/CHORD-DEMO/pkg/errors"
	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

const (
	recentTrackCount = 20
	defaultRecLimit  = 10
	maxRecLimit      = 20
)

type DiscoveryUsecase struct {
	users     user.UserRepository
	conns     connection.ConnectionRepository
	proximity discovery.ProximityService
	compat    discovery.CompatibilityService
	notifier  notification.Dispatcher
	logger    *logger.Logger
}

func NewDiscoveryUsecase(
	users user.UserRepository,
	conns connection.ConnectionRepository,
	proximity discovery.ProximityService,
	compat discovery.CompatibilityService,
	notifier notification.Dispatcher,
	logger *logger.Logger,
) *DiscoveryUsecase {
	return &DiscoveryUsecase{
		users:     users,
		conns:     conns,
		proximity: proximity,
		compat:    compat,
		notifier:  notifier,
		logger:    logger,
	}
}

func (uc *DiscoveryUsecase) BuildFeed(ctx context.Context, viewerID uuid.UUID, radiusMeters int) (*discovery.Feed, error) {
	radius, err := normalizeRadius(radiusMeters)
	if err != nil {
		return nil, err
	}

	nearby, err := uc.proximity.FindNearby(ctx, viewerID, radius)
	if err != nil {
		uc.logger.Error("proximity lookup failed", "viewer", viewerID, "err", err)
		return nil, errors.ErrFeedFailed(err)
	}
	if len(nearby) == 0 {
		return &discovery.Feed{Rows: []discovery.FeedRow{}, Radius: radius}, nil
	}

	ids := make([]uuid.UUID, 0, len(nearby))
	distance := make(map[uuid.UUID]int, len(nearby))
	for _, n := range nearby {
		ids = append(ids, n.UserID)
		distance[n.UserID] = n.Distance
	}

	listeners, err := uc.users.ActiveListeners(ctx, ids)
	if err != nil {
		uc.logger.Error("database error loading nearby listeners", "err", err)
		return nil, errors.ErrFeedFailed(err)
	}

	states, err := uc.pairStates(ctx, viewerID, ids)
	if err != nil {
		return nil, errors.ErrFeedFailed(err)
	}

	rows := make([]discovery.FeedRow, 0, len(listeners))
	for _, lp := range listeners {
		row := discovery.FeedRow{
			ID:          lp.User.ID,
			Username:    lp.User.Username,
			DisplayName: lp.User.DisplayName,
			PhotoURL:    lp.User.PhotoURL,
			Visibility:  lp.User.Visibility,
			NowPlaying:  nowPlayingOf(lp.NowPlaying),
		}
		if d, ok := distance[lp.User.ID]; ok {
			dd := d
			row.Distance = &dd
		}
		if conn, ok := states[lp.User.ID]; ok {
			row.IsConnected = conn.Status == connmodel.StatusAccepted
			row.RequestSent = conn.Status == connmodel.StatusPending && conn.RequesterID == viewerID
		}
		rows = append(rows, row)
	}

	// Nearest first; unknown distance sinks to the bottom.
	sort.SliceStable(rows, func(i, j int) bool {
		return feedDistance(rows[i]) < feedDistance(rows[j])
	})

	return &discovery.Feed{Rows: rows, Count: len(rows), Radius: radius}, nil
}

func (uc *DiscoveryUsecase) BuildProfile(ctx context.Context, viewerID uuid.UUID, subjectUsername string) (*discovery.Profile, error) {
	subject, err := uc.users.GetByUsername(ctx, subjectUsername)
	if err != nil {
		if err == errors.ErrUserNotFound {
			return nil, err
		}
		uc.logger.Error("database error loading profile subject", "err", err)
		return nil, errors.Internal("internal server error")
	}

	conn, err := uc.conns.FindBetween(ctx, viewerID, subject.ID)
	if err != nil {
		uc.logger.Error("database error loading connection state", "err", err)
		return nil, errors.Internal("internal server error")
	}

	var status connmodel.Status
	if conn != nil {
		status = conn.Status
	}
	gate := discovery.Decide(viewerID, subject, status)

	profile := &discovery.Profile{
		ID:          subject.ID,
		Username:    subject.Username,
		DisplayName: subject.DisplayName,
		Bio:         subject.Bio,
		PhotoURL:    subject.PhotoURL,
		Visibility:  subject.Visibility,
		MemberSince: subject.CreatedAt,
		IsSelf:      viewerID == subject.ID,
		IsConnected: status == connmodel.StatusAccepted,
	}
	if conn != nil {
		profile.ConnectionID = &conn.ID
		profile.ConnectionStatus = &conn.Status
	}

	session, err := uc.users.ActiveSession(ctx, subject.ID)
	if err != nil {
		uc.logger.Error("database error loading active session", "err", err)
		return nil, errors.Internal("internal server error")
	}
	profile.NowPlaying = nowPlayingOf(session)

	// Compatibility is a hook, always visible; a scoring outage never
	// blocks the profile.
	if summary, err := uc.compat.Summarize(ctx, viewerID, subject.ID); err != nil {
		uc.logger.Warn("compatibility summary failed", "viewer", viewerID, "subject", subject.ID, "err", err)
	} else {
		profile.Compatibility = summary
	}

	if !gate.Full {
		profile.GatedMessage = gate.Message
		return profile, nil
	}

	taste, err := uc.users.TasteProfile(ctx, subject.ID)
	if err != nil {
		uc.logger.Error("database error loading taste profile", "err", err)
		return nil, errors.Internal("internal server error")
	}
	if taste != nil {
		profile.TasteProfile = &discovery.TasteProfileDTO{
			TopGenres:       taste.TopGenres,
			TopArtists:      taste.TopArtists,
			AvgEnergy:       taste.AvgEnergy,
			AvgValence:      taste.AvgValence,
			AvgTempo:        taste.AvgTempo,
			AvgDanceability: taste.AvgDanceability,
			TotalListens:    taste.TotalListens,
		}
	}

	recent, err := uc.users.RecentSessions(ctx, subject.ID, recentTrackCount)
	if err != nil {
		uc.logger.Error("database error loading listening history", "err", err)
		return nil, errors.Internal("internal server error")
	}
	tracks := make([]discovery.RecentTrackDTO, 0, len(recent))
	for _, s := range recent {
		tracks = append(tracks, discovery.RecentTrackDTO{
			TrackName:  s.TrackName,
			ArtistName: s.ArtistName,
			AlbumArt:   s.AlbumArtURL,
			Genres:     s.Genres,
			StartedAt:  s.StartedAt,
		})
	}
	profile.RecentTracks = tracks

	count, err := uc.conns.AcceptedCount(ctx, subject.ID)
	if err != nil {
		uc.logger.Error("database error counting connections", "err", err)
		return nil, errors.Internal("internal server error")
	}
	profile.ConnectionCount = &count

	return profile, nil
}

func (uc *DiscoveryUsecase) BuildRecommendations(ctx context.Context, viewerID uuid.UUID, radiusMeters, limit int) ([]discovery.Recommendation, error) {
	radius, err := normalizeRadius(radiusMeters)
	if err != nil {
		return nil, err
	}
	switch {
	case limit == 0:
		limit = defaultRecLimit
	case limit < 1 || limit > maxRecLimit:
		return nil, errors.InvalidArg("limit must be between 1 and 20")
	}

	nearby, err := uc.proximity.FindNearby(ctx, viewerID, radius)
	if err != nil {
		uc.logger.Error("proximity lookup failed", "viewer", viewerID, "err", err)
		return nil, errors.ErrFeedFailed(err)
	}
	if len(nearby) == 0 {
		return []discovery.Recommendation{}, nil
	}

	type scored struct {
		listener discovery.NearbyListener
		score    int
	}
	ranked := make([]scored, 0, len(nearby))
	for _, n := range nearby {
		summary, err := uc.compat.Summarize(ctx, viewerID, n.UserID)
		if err != nil {
			uc.logger.Warn("compatibility summary failed, skipping candidate",
				"viewer", viewerID, "subject", n.UserID, "err", err)
			continue
		}
		ranked = append(ranked, scored{listener: n, score: summary.Score})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].score > ranked[j].score })
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	ids := make([]uuid.UUID, 0, len(ranked))
	for _, s := range ranked {
		ids = append(ids, s.listener.UserID)
	}
	listeners, err := uc.users.ActiveListeners(ctx, ids)
	if err != nil {
		uc.logger.Error("database error loading recommended listeners", "err", err)
		return nil, errors.ErrFeedFailed(err)
	}
	byID := make(map[uuid.UUID]models.ListenerProfile, len(listeners))
	for _, lp := range listeners {
		byID[lp.User.ID] = lp
	}

	recs := make([]discovery.Recommendation, 0, len(ranked))
	for _, s := range ranked {
		lp, ok := byID[s.listener.UserID]
		if !ok {
			continue // inactive since the proximity snapshot
		}
		recs = append(recs, discovery.Recommendation{
			ID:          lp.User.ID,
			Username:    lp.User.Username,
			DisplayName: lp.User.DisplayName,
			PhotoURL:    lp.User.PhotoURL,
			Visibility:  lp.User.Visibility,
			Distance:    s.listener.Distance,
			Score:       s.score,
			NowPlaying:  nowPlayingOf(lp.NowPlaying),
		})
	}
	return recs, nil
}

func (uc *DiscoveryUsecase) ScanMatches(ctx context.Context, viewerID uuid.UUID, radiusMeters int) (int, error) {
	radius, err := normalizeRadius(radiusMeters)
	if err != nil {
		return 0, err
	}

	mine, err := uc.users.ActiveSession(ctx, viewerID)
	if err != nil {
		uc.logger.Error("database error loading own session", "err", err)
		return 0, errors.Internal("internal server error")
	}
	if mine == nil {
		return 0, nil
	}

	nearby, err := uc.proximity.FindNearby(ctx, viewerID, radius)
	if err != nil {
		uc.logger.Error("proximity lookup failed", "viewer", viewerID, "err", err)
		return 0, errors.ErrFeedFailed(err)
	}
	if len(nearby) == 0 {
		return 0, nil
	}

	ids := make([]uuid.UUID, 0, len(nearby))
	distance := make(map[uuid.UUID]int, len(nearby))
	for _, n := range nearby {
		ids = append(ids, n.UserID)
		distance[n.UserID] = n.Distance
	}
	listeners, err := uc.users.ActiveListeners(ctx, ids)
	if err != nil {
		uc.logger.Error("database error loading nearby listeners", "err", err)
		return 0, errors.ErrFeedFailed(err)
	}

	myGenres := make(map[string]bool, len(mine.Genres))
	for _, g := range mine.Genres {
		myGenres[g] = true
	}

	delivered := 0
	var artistHit *models.ListenerProfile
	sharedGenres := make(map[string]bool)
	genreCount := 0
	genreClosest := 0

	for i := range listeners {
		lp := listeners[i]
		if lp.User.ID == viewerID || lp.NowPlaying == nil {
			continue
		}
		d := distance[lp.User.ID]

		if lp.NowPlaying.ArtistName == mine.ArtistName {
			if artistHit == nil || d < distance[artistHit.User.ID] {
				artistHit = &listeners[i]
			}
		}

		shares := false
		for _, g := range lp.NowPlaying.Genres {
			if myGenres[g] {
				sharedGenres[g] = true
				shares = true
			}
		}
		if shares {
			if genreCount == 0 || d < genreClosest {
				genreClosest = d
			}
			genreCount++
		}
	}

	if artistHit != nil {
		sent, err := uc.notifier.NotifyArtistMatch(ctx, viewerID, notification.ArtistMatchData{
			UserID:     artistHit.User.ID,
			Username:   artistHit.User.Username,
			ArtistName: artistHit.NowPlaying.ArtistName,
			TrackName:  artistHit.NowPlaying.TrackName,
			AlbumArt:   artistHit.NowPlaying.AlbumArtURL,
			Distance:   distance[artistHit.User.ID],
		})
		if err != nil {
			uc.logger.Warn("artist match notification failed", "err", err)
		} else if sent {
			delivered++
		}
	}

	if genreCount > 0 {
		genres := make([]string, 0, len(sharedGenres))
		for g := range sharedGenres {
			genres = append(genres, g)
		}
		// Deterministic order keeps the throttle key stable.
		sort.Strings(genres)

		sent, err := uc.notifier.NotifyGenreMatch(ctx, viewerID, notification.GenreMatchData{
			SharedGenres:    genres,
			Count:           genreCount,
			ClosestDistance: genreClosest,
		})
		if err != nil {
			uc.logger.Warn("genre match notification failed", "err", err)
		} else if sent {
			delivered++
		}
	}

	return delivered, nil
}

func (uc *DiscoveryUsecase) pairStates(ctx context.Context, viewerID uuid.UUID, ids []uuid.UUID) (map[uuid.UUID]connmodel.Connection, error) {
	conns, err := uc.conns.PairStates(ctx, viewerID, ids)
	if err != nil {
		uc.logger.Error("database error loading pair states", "err", err)
		return nil, err
	}
	states := make(map[uuid.UUID]connmodel.Connection, len(conns))
	for _, c := range conns {
		states[c.Counterpart(viewerID)] = c
	}
	return states, nil
}

func normalizeRadius(radiusMeters int) (int, error) {
	if radiusMeters == 0 {
		return discovery.DefaultRadius, nil
	}
	if radiusMeters < discovery.MinRadius || radiusMeters > discovery.MaxRadius {
		return 0, errors.ErrInvalidRadius
	}
	return radiusMeters, nil
}

func feedDistance(row discovery.FeedRow) int {
	if row.Distance == nil {
		return discovery.MaxRadius + 1
	}
	return *row.Distance
}

func nowPlayingOf(s *models.ListeningSession) *discovery.NowPlayingDTO {
	if s == nil {
		return nil
	}
	genres := s.Genres
	if genres == nil {
		genres = []string{}
	}
	return &discovery.NowPlayingDTO{
		TrackName:  s.TrackName,
		ArtistName: s.ArtistName,
		AlbumArt:   s.AlbumArtURL,
		Genres:     genres,
	}
}
