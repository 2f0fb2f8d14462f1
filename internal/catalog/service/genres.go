package service

import (
	"context"

	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/aggregate"
	"github.com/vladyslav-soltanovskyi/online-cinema-backend/internal/catalog/store"
)

func (s *Service) Genres(ctx context.Context, search string) ([]store.Genre, error) {
	return s.store.Genres(ctx, search)
}

func (s *Service) GenreBySlug(ctx context.Context, slug string) (store.Genre, error) {
	g, err := s.store.GenreBySlug(ctx, slug)
	return g, entityErr(err, entityGenre, slug, "")
}

// GenreCollections returns one card per genre that has at least one
// associated title.
func (s *Service) GenreCollections(ctx context.Context) ([]aggregate.Collection, error) {
	return s.aggregates.GenreCollections(ctx)
}

func (s *Service) GenreByID(ctx context.Context, id string) (store.Genre, error) {
	g, err := s.store.GenreByID(ctx, id)
	return g, entityErr(err, entityGenre, id, "")
}

func (s *Service) CreateGenre(ctx context.Context) (string, error) {
	return s.store.CreateGenre(ctx)
}

func (s *Service) UpdateGenre(ctx context.Context, id string, in store.GenreInput) (store.Genre, error) {
	g, err := s.store.UpdateGenre(ctx, id, in)
	return g, entityErr(err, entityGenre, id, in.Slug)
}

func (s *Service) DeleteGenre(ctx context.Context, id string) (store.Genre, error) {
	g, err := s.store.DeleteGenre(ctx, id)
	return g, entityErr(err, entityGenre, id, "")
}
