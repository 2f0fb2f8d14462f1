package service

import (
	"context"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/aggregate"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

// ActorListing returns actors matching the optional search term, each
// with its derived movie count, newest first.
func (s *Service) ActorListing(ctx context.Context, search string) ([]aggregate.ActorCard, error) {
	return s.aggregates.ActorListing(ctx, search)
}

func (s *Service) ActorBySlug(ctx context.Context, slug string) (store.Actor, error) {
	a, err := s.store.ActorBySlug(ctx, slug)
	return a, entityErr(err, entityActor, slug, "")
}

func (s *Service) ActorByID(ctx context.Context, id string) (store.Actor, error) {
	a, err := s.store.ActorByID(ctx, id)
	return a, entityErr(err, entityActor, id, "")
}

// CreateActor inserts a blank actor and returns its id; the admin
// client fills the fields with a subsequent update.
func (s *Service) CreateActor(ctx context.Context) (string, error) {
	return s.store.CreateActor(ctx)
}

func (s *Service) UpdateActor(ctx context.Context, id string, in store.ActorInput) (store.Actor, error) {
	a, err := s.store.UpdateActor(ctx, id, in)
	return a, entityErr(err, entityActor, id, in.Slug)
}

func (s *Service) DeleteActor(ctx context.Context, id string) (store.Actor, error) {
	a, err := s.store.DeleteActor(ctx, id)
	return a, entityErr(err, entityActor, id, "")
}
