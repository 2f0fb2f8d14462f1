// Package service is the public API surface of the catalog. It composes
// the store, the relationship index, the aggregation engine and the
// notification dispatcher, and normalises absence signals into typed
// errors.
package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/aggregate"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/notify"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/relation"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

const (
	entityActor = "actor"
	entityGenre = "genre"
	entityMovie = "movie"
)

// EventPublisher receives a best-effort event after a movie's first
// publish has been persisted.
type EventPublisher interface {
	MovieAnnounced(ctx context.Context, movieID, title, slug string) error
}

type Service struct {
	store      store.Store
	index      relation.Index
	aggregates *aggregate.Engine
	dispatcher *notify.Dispatcher
	events     EventPublisher
	log        *zap.Logger
}

func New(st store.Store, dispatcher *notify.Dispatcher, events EventPublisher, log *zap.Logger) *Service {
	ix := relation.New(st)
	return &Service{
		store:      st,
		index:      ix,
		aggregates: aggregate.New(st, ix),
		dispatcher: dispatcher,
		events:     events,
		log:        log,
	}
}
