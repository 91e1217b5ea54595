package notification

import (
	"context"
	"errors"
)

// ErrTokenInvalid is reported by a PushSender when the provider says
// the registration token is permanently dead. The dispatcher reacts by
// clearing the stored token so future sends short-circuit.
var ErrTokenInvalid = errors.New("push token no longer registered")

// PushSender is the push-delivery capability. Absence of a configured
// provider degrades to NoopSender, never an error.
type PushSender interface {
	Send(ctx context.Context, token, title, body string, data map[string]string) error
}

// NoopSender is used when no push provider is configured.
type NoopSender struct{}

func (NoopSender) Send(ctx context.Context, token, title, body string, data map[string]string) error {
	return nil
}
