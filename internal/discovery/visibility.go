package discovery

import (
	"github.com/google/uuid"

	connmodel "github.com/aialexidea/CHORD-DEMO/internal/connection/model"
	models "github.com/aialexidea/CHORD-DEMO/internal/user/model"
)

// GatedMessage is the deterministic tease shown in place of gated
// fields. Always this string, never a truncated payload.
const GatedMessage = "Connect to see full listening history"

// Gate is the visibility decision for a (viewer, subject) pair.
type Gate struct {
	// Full grants the gated fields: taste profile, recent history,
	// connection count. The always-visible set (card, now playing,
	// compatibility) is not subject to the gate.
	Full bool

	// Message is the tease shown when Full is false, empty otherwise.
	Message string
}

// Decide is a pure function of viewer, subject and the connection
// status between them. Full access when the viewer is the subject, the
// pair is connected, or the subject runs an open account. Visibility
// never affects discoverability, only gated-field exposure.
func Decide(viewerID uuid.UUID, subject *models.User, status connmodel.Status) Gate {
	if viewerID == subject.ID {
		return Gate{Full: true}
	}
	if status == connmodel.StatusAccepted {
		return Gate{Full: true}
	}
	if subject.Visibility == models.VisibilityOpen {
		return Gate{Full: true}
	}
	return Gate{Message: GatedMessage}
}
