package dispatcher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/aialexidea/CHORD-DEMO/config"
	"github.com/aialexidea/CHORD-DEMO/internal/notification"
	"github.com/aialexidea/CHORD-DEMO/internal/user"
	"github.com/aialexidea/CHORD-DEMO/pkg/logger"
)

const emitEvent = "notification"

// NotificationDispatcher composes payloads, applies per-event
// throttling and fans out to the in-app channel plus push. In-app
// delivery is authoritative; push is best-effort.
type NotificationDispatcher struct {
	users    user.UserRepository
	throttle notification.ThrottleStore
	emitter  notification.Emitter
	push     notification.PushSender

	window      time.Duration
	sendTimeout time.Duration
	logger      *logger.Logger
}

func NewNotificationDispatcher(
	users user.UserRepository,
	throttle notification.ThrottleStore,
	emitter notification.Emitter,
	push notification.PushSender,
	cfg config.NotifyConfig,
	logger *logger.Logger,
) *NotificationDispatcher {
	window := cfg.ThrottleWindow
	if window <= 0 {
		window = config.DefaultThrottleWindow
	}
	sendTimeout := cfg.SendTimeout
	if sendTimeout <= 0 {
		sendTimeout = config.DefaultSendTimeout
	}
	if push == nil {
		push = notification.NoopSender{}
	}
	return &NotificationDispatcher{
		users:       users,
		throttle:    throttle,
		emitter:     emitter,
		push:        push,
		window:      window,
		sendTimeout: sendTimeout,
		logger:      logger,
	}
}

func (d *NotificationDispatcher) NotifyConnectionRequest(ctx context.Context, targetUserID uuid.UUID, data notification.ConnectionRequestData) (bool, error) {
	notifType := "connection_req:" + data.Requester.ID.String()
	if d.throttled(ctx, targetUserID, notifType) {
		return false, nil
	}

	n := notification.Notification{
		Type:  notification.TypeConnectionRequest,
		Title: "Connection Request",
		Body:  fmt.Sprintf("%s wants to connect", data.Requester.Name()),
		Data: map[string]interface{}{
			"connectionId": data.ConnectionID,
			"requesterId":  data.Requester.ID,
			"username":     data.Requester.Username,
			"displayName":  data.Requester.DisplayName,
			"photoUrl":     data.Requester.PhotoURL,
		},
		Timestamp: time.Now().UnixMilli(),
	}

	d.deliver(ctx, targetUserID, n)
	d.markSent(ctx, targetUserID, notifType)
	return true, nil
}

// NotifyNewConnection skips the throttle entirely — an acceptance is a
// one-off event and must always land.
func (d *NotificationDispatcher) NotifyNewConnection(ctx context.Context, targetUserID uuid.UUID, from notification.UserCard) (bool, error) {
	n := notification.Notification{
		Type:  notification.TypeNewConnection,
		Title: "New Connection",
		Body:  fmt.Sprintf("You and %s are now connected", from.Name()),
		Data: map[string]interface{}{
			"username":    from.Username,
			"displayName": from.DisplayName,
			"photoUrl":    from.PhotoURL,
		},
		Timestamp: time.Now().UnixMilli(),
	}

	d.deliver(ctx, targetUserID, n)
	return true, nil
}

func (d *NotificationDispatcher) NotifyArtistMatch(ctx context.Context, targetUserID uuid.UUID, data notification.ArtistMatchData) (bool, error) {
	// Keyed by artist so distinct matches are not mutually throttled.
	notifType := "artist:" + data.ArtistName
	if d.throttled(ctx, targetUserID, notifType) {
		return false, nil
	}

	n := notification.Notification{
		Type:  notification.TypeArtistMatch,
		Title: "Music Match Nearby!",
		Body:  fmt.Sprintf("Someone %dm away is also listening to %s", data.Distance, data.ArtistName),
		Data: map[string]interface{}{
			"matchUserId": data.UserID,
			"matchAlias":  data.Username,
			"artistName":  data.ArtistName,
			"trackName":   data.TrackName,
			"albumArt":    data.AlbumArt,
			"distance":    data.Distance,
		},
		Timestamp: time.Now().UnixMilli(),
	}

	d.deliver(ctx, targetUserID, n)
	d.markSent(ctx, targetUserID, notifType)
	return true, nil
}

func (d *NotificationDispatcher) NotifyGenreMatch(ctx context.Context, targetUserID uuid.UUID, data notification.GenreMatchData) (bool, error) {
	notifType := "genre:" + strings.Join(data.SharedGenres, ",")
	if d.throttled(ctx, targetUserID, notifType) {
		return false, nil
	}

	count := data.Count
	if count < 1 {
		count = 1
	}
	genreStr := strings.Join(firstN(data.SharedGenres, 2), " & ")
	body := fmt.Sprintf("%d people nearby are into %s", count, genreStr)
	if count == 1 {
		body = fmt.Sprintf("1 person nearby is into %s", genreStr)
	}

	n := notification.Notification{
		Type:  notification.TypeGenreMatch,
		Title: "Your Vibe is in the Air",
		Body:  body,
		Data: map[string]interface{}{
			"genres":          data.SharedGenres,
			"nearbyCount":     count,
			"closestDistance": data.ClosestDistance,
		},
		Timestamp: time.Now().UnixMilli(),
	}

	d.deliver(ctx, targetUserID, n)
	d.markSent(ctx, targetUserID, notifType)
	return true, nil
}

// throttled treats a failing store read as "not throttled": over-notify
// rather than silently drop.
func (d *NotificationDispatcher) throttled(ctx context.Context, userID uuid.UUID, notifType string) bool {
	suppressed, err := d.throttle.Throttled(ctx, userID, notifType)
	if err != nil {
		d.logger.Warn("throttle check failed, sending anyway", "user", userID, "type", notifType, "err", err)
		return false
	}
	return suppressed
}

// markSent is fire-and-forget after a successful delivery; a failure
// means at most one duplicate on the next trigger.
func (d *NotificationDispatcher) markSent(ctx context.Context, userID uuid.UUID, notifType string) {
	if err := d.throttle.MarkSent(ctx, userID, notifType, d.window); err != nil {
		d.logger.Warn("throttle mark failed", "user", userID, "type", notifType, "err", err)
	}
}

func (d *NotificationDispatcher) deliver(ctx context.Context, targetUserID uuid.UUID, n notification.Notification) {
	d.emitter.EmitToUser(targetUserID, emitEvent, n)
	d.sendPush(ctx, targetUserID, n)
}

func (d *NotificationDispatcher) sendPush(ctx context.Context, targetUserID uuid.UUID, n notification.Notification) {
	ctx, cancel := context.WithTimeout(ctx, d.sendTimeout)
	defer cancel()

	token, err := d.users.PushToken(ctx, targetUserID)
	if err != nil {
		d.logger.Warn("push token lookup failed", "user", targetUserID, "err", err)
		return
	}
	if token == "" {
		return
	}

	payload, _ := json.Marshal(n.Data)
	data := map[string]string{
		"type":    n.Type,
		"payload": string(payload),
	}

	if err := d.push.Send(ctx, token, n.Title, n.Body, data); err != nil {
		if errors.Is(err, notification.ErrTokenInvalid) {
			if err := d.users.ClearPushToken(ctx, targetUserID); err != nil {
				d.logger.Error("failed to clear dead push token", "user", targetUserID, "err", err)
			}
			return
		}
		// Push is a convenience channel; the in-app send stands.
		d.logger.Warn("push delivery failed", "user", targetUserID, "type", n.Type, "err", err)
	}
}

func firstN(xs []string, n int) []string {
	if len(xs) <= n {
		return xs
	}
	return xs[:n]
}
