// Package notify implements the one-time "now showing" announcement for
// newly published movies.
package notify

import "context"

// MessageOptions attaches a single action button to a text message.
type MessageOptions struct {
	ActionURL   string
	ActionLabel string
}

// Transport is the external messaging channel. Both calls must
// propagate failure; nothing here retries.
type Transport interface {
	SendPhoto(ctx context.Context, photoURL string) error
	SendMessage(ctx context.Context, text string, opts MessageOptions) error
}
