// Package events publishes catalog lifecycle events to NATS JetStream
// so downstream consumers (feeds, search indexers) can react to a movie
// being announced.
package events

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	json "github.com/goccy/go-json"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/platform/natsconn"
)

const (
	SubjectMovieAnnounced = "catalog.movie.announced"
	streamName            = "CATALOG_EVENTS"
)

// MovieAnnouncedEvent is the payload published on first publish.
type MovieAnnouncedEvent struct {
	EventID     string `json:"event_id"`
	MovieID     string `json:"movie_id"`
	Title       string `json:"title"`
	Slug        string `json:"slug"`
	AnnouncedAt string `json:"announced_at"`
}

// Publisher publishes catalog events to NATS JetStream.
type Publisher struct {
	js  nats.JetStreamContext
	log *zap.Logger
}

// New connects to NATS and ensures the CATALOG_EVENTS stream exists.
// If natsURL is empty, returns a no-op publisher (stub).
func New(natsURL string, log *zap.Logger) (*Publisher, error) {
	if natsURL == "" {
		log.Warn("NATS_URL not set, catalog events will not be published (stub mode)")
		return &Publisher{log: log}, nil
	}

	nc, err := natsconn.Connect(natsconn.Options{URL: natsURL})
	if err != nil {
		return nil, err
	}

	js, err := nc.JetStream()
	if err != nil {
		nc.Close()
		return nil, err
	}

	// Create stream if it doesn't exist.
	_, err = js.AddStream(&nats.StreamConfig{
		Name:     streamName,
		Subjects: []string{"catalog.>"},
		Storage:  nats.FileStorage,
	})
	if err != nil {
		log.Warn("failed to create NATS stream (may already exist)", zap.Error(err))
	}

	log.Info("NATS publisher initialised", zap.String("stream", streamName))
	return &Publisher{js: js, log: log}, nil
}

// MovieAnnounced publishes a catalog.movie.announced event, best-effort.
// If JetStream is not configured (stub), it logs and returns nil.
func (p *Publisher) MovieAnnounced(_ context.Context, movieID, title, slug string) error {
	evt := MovieAnnouncedEvent{
		EventID:     uuid.NewString(),
		MovieID:     movieID,
		Title:       title,
		Slug:        slug,
		AnnouncedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if p.js == nil {
		p.log.Debug("NATS stub: skipping publish",
			zap.String("subject", SubjectMovieAnnounced), zap.String("movie_id", movieID))
		return nil
	}

	data, err := json.Marshal(evt)
	if err != nil {
		return err
	}

	ack, err := p.js.Publish(SubjectMovieAnnounced, data)
	if err != nil {
		return err
	}

	p.log.Debug("NATS event published",
		zap.String("subject", SubjectMovieAnnounced),
		zap.String("event_id", evt.EventID),
		zap.Uint64("seq", ack.Sequence),
	)
	return nil
}
