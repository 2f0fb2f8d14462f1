// Package natsconn provides the shared NATS connection factory with
// a bounded reconnect policy and fail-fast semantics.
package natsconn

import (
	"fmt"
	"strings"
	"time"

	"github.com/nats-io/nats.go"
)

// Options configures the NATS connection behaviour.
// Zero values fall back to built-in defaults.
type Options struct {
	URL           string
	MaxReconnects int           // default 5
	ReconnectWait time.Duration // default 2s
}

func (o Options) withDefaults() Options {
	if o.URL == "" {
		o.URL = "nats://nats:4222"
	}
	if o.MaxReconnects == 0 {
		o.MaxReconnects = 5
	}
	if o.ReconnectWait == 0 {
		o.ReconnectWait = 2 * time.Second
	}
	return o
}

// Connect establishes a NATS connection with the configured retry policy.
// On failure it returns an error so the caller can fail-fast.
func Connect(opts Options) (*nats.Conn, error) {
	opts = opts.withDefaults()
	opts.URL = strings.TrimSpace(opts.URL)

	nc, err := nats.Connect(opts.URL,
		nats.MaxReconnects(opts.MaxReconnects),
		nats.ReconnectWait(opts.ReconnectWait),
		nats.RetryOnFailedConnect(false),
	)
	if err != nil {
		return nil, fmt.Errorf("nats connect %s (max_reconnects=%d, wait=%s): %w",
			opts.URL, opts.MaxReconnects, opts.ReconnectWait, err)
	}
	return nc, nil
}
