package notify

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	defaultWatchURL   = "https://okko.tv/movie/free-guy"
	defaultWatchLabel = "\U0001F37F Go to watch"
)

// Options configures the dispatcher at construction. There are no
// ambient environment reads: development mode is decided by the caller.
type Options struct {
	// SkipPhotos suppresses the cover-image call in development mode;
	// the text announcement is still sent.
	SkipPhotos bool
	WatchURL   string
	WatchLabel string
}

// Dispatcher sends the one-time publish announcement. The two transport
// calls are sequential and not transactional with the caller's
// persistence step: a failure aborts the enclosing update, and an
// already-sent photo is not rolled back.
type Dispatcher struct {
	transport Transport
	opts      Options
	log       *zap.Logger
}

func NewDispatcher(transport Transport, opts Options, log *zap.Logger) *Dispatcher {
	if opts.WatchURL == "" {
		opts.WatchURL = defaultWatchURL
	}
	if opts.WatchLabel == "" {
		opts.WatchLabel = defaultWatchLabel
	}
	return &Dispatcher{transport: transport, opts: opts, log: log}
}

// Announce sends the cover photo (unless suppressed) followed by the
// formatted text announcement with a single watch button.
func (d *Dispatcher) Announce(ctx context.Context, title, description, poster string) error {
	if !d.opts.SkipPhotos {
		if err := d.transport.SendPhoto(ctx, poster); err != nil {
			return fmt.Errorf("send photo: %w", err)
		}
	} else {
		d.log.Debug("photo suppressed in development mode", zap.String("title", title))
	}

	msg := fmt.Sprintf("<b>%s</b>\n\n%s\n\n", title, description)
	if err := d.transport.SendMessage(ctx, msg, MessageOptions{
		ActionURL:   d.opts.WatchURL,
		ActionLabel: d.opts.WatchLabel,
	}); err != nil {
		return fmt.Errorf("send message: %w", err)
	}

	d.log.Info("movie announced", zap.String("title", title))
	return nil
}
