package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is the production Store.
//
// Expected schema (managed outside this service):
//
//	actors (id uuid PK, name text, slug text, photo text, created_at timestamptz)
//	genres (id uuid PK, name text, slug text, description text, icon text, created_at timestamptz)
//	movies (id uuid PK, title text, slug text, description text, poster text,
//	        big_poster text, video_url text, rating double precision,
//	        count_opened bigint, announced boolean, actor_ids text[],
//	        genre_ids text[], created_at timestamptz)
//
// Each table carries a partial unique index on slug WHERE slug <> '', so
// blank rows created by the admin flow do not collide before their first
// real update.
type Postgres struct {
	db *pgxpool.Pool
}

func NewPostgres(db *pgxpool.Pool) *Postgres {
	return &Postgres{db: db}
}

// uniqueViolation is the Postgres error code raised by the slug indexes.
const uniqueViolation = "23505"

func mapWriteErr(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return ErrSlugTaken
	}
	return err
}

// ── actors ─────────────────────────────────────────────────────────────────

const actorCols = `id, name, slug, photo, created_at`

func scanActor(row pgx.Row) (Actor, error) {
	var a Actor
	err := row.Scan(&a.ID, &a.Name, &a.Slug, &a.Photo, &a.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Actor{}, ErrNotFound
		}
		return Actor{}, fmt.Errorf("scan actor: %w", err)
	}
	return a, nil
}

func (s *Postgres) ActorBySlug(ctx context.Context, slug string) (Actor, error) {
	return scanActor(s.db.QueryRow(ctx,
		`SELECT `+actorCols+` FROM actors WHERE slug = $1`, slug))
}

func (s *Postgres) ActorByID(ctx context.Context, id string) (Actor, error) {
	return scanActor(s.db.QueryRow(ctx,
		`SELECT `+actorCols+` FROM actors WHERE id = $1`, id))
}

func (s *Postgres) ActorsByIDs(ctx context.Context, ids []string) ([]Actor, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx,
		`SELECT `+actorCols+` FROM actors WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("query actors: %w", err)
	}
	defer rows.Close()
	return collectActors(rows)
}

func (s *Postgres) Actors(ctx context.Context, search string) ([]Actor, error) {
	rows, err := s.db.Query(ctx, `
SELECT `+actorCols+` FROM actors
WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR slug ILIKE '%' || $1 || '%'
ORDER BY created_at DESC`, search)
	if err != nil {
		return nil, fmt.Errorf("query actors: %w", err)
	}
	defer rows.Close()
	return collectActors(rows)
}

func collectActors(rows pgx.Rows) ([]Actor, error) {
	var out []Actor
	for rows.Next() {
		a, err := scanActor(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

func (s *Postgres) CreateActor(ctx context.Context) (string, error) {
	id := uuid.New()
	_, err := s.db.Exec(ctx, `
INSERT INTO actors (id, name, slug, photo, created_at)
VALUES ($1, '', '', '', $2)`, id, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("insert actor: %w", err)
	}
	return id.String(), nil
}

func (s *Postgres) UpdateActor(ctx context.Context, id string, in ActorInput) (Actor, error) {
	row := s.db.QueryRow(ctx, `
UPDATE actors SET name = $2, slug = $3, photo = $4
WHERE id = $1
RETURNING `+actorCols, id, in.Name, in.Slug, in.Photo)
	a, err := scanActor(row)
	if err != nil {
		return Actor{}, mapWriteErr(err)
	}
	return a, nil
}

func (s *Postgres) DeleteActor(ctx context.Context, id string) (Actor, error) {
	// No cascade: movie reference sets keep the dangling id.
	return scanActor(s.db.QueryRow(ctx,
		`DELETE FROM actors WHERE id = $1 RETURNING `+actorCols, id))
}

// ── genres ─────────────────────────────────────────────────────────────────

const genreCols = `id, name, slug, description, icon, created_at`

func scanGenre(row pgx.Row) (Genre, error) {
	var g Genre
	err := row.Scan(&g.ID, &g.Name, &g.Slug, &g.Description, &g.Icon, &g.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Genre{}, ErrNotFound
		}
		return Genre{}, fmt.Errorf("scan genre: %w", err)
	}
	return g, nil
}

func (s *Postgres) GenreBySlug(ctx context.Context, slug string) (Genre, error) {
	return scanGenre(s.db.QueryRow(ctx,
		`SELECT `+genreCols+` FROM genres WHERE slug = $1`, slug))
}

func (s *Postgres) GenreByID(ctx context.Context, id string) (Genre, error) {
	return scanGenre(s.db.QueryRow(ctx,
		`SELECT `+genreCols+` FROM genres WHERE id = $1`, id))
}

func (s *Postgres) GenresByIDs(ctx context.Context, ids []string) ([]Genre, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	rows, err := s.db.Query(ctx,
		`SELECT `+genreCols+` FROM genres WHERE id = ANY($1::uuid[])`, ids)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()
	return collectGenres(rows)
}

func (s *Postgres) Genres(ctx context.Context, search string) ([]Genre, error) {
	rows, err := s.db.Query(ctx, `
SELECT `+genreCols+` FROM genres
WHERE $1 = '' OR name ILIKE '%' || $1 || '%' OR slug ILIKE '%' || $1 || '%' OR description ILIKE '%' || $1 || '%'
ORDER BY created_at DESC`, search)
	if err != nil {
		return nil, fmt.Errorf("query genres: %w", err)
	}
	defer rows.Close()
	return collectGenres(rows)
}

func collectGenres(rows pgx.Rows) ([]Genre, error) {
	var out []Genre
	for rows.Next() {
		g, err := scanGenre(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, g)
	}
	return out, rows.Err()
}

func (s *Postgres) CreateGenre(ctx context.Context) (string, error) {
	id := uuid.New()
	_, err := s.db.Exec(ctx, `
INSERT INTO genres (id, name, slug, description, icon, created_at)
VALUES ($1, '', '', '', '', $2)`, id, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("insert genre: %w", err)
	}
	return id.String(), nil
}

func (s *Postgres) UpdateGenre(ctx context.Context, id string, in GenreInput) (Genre, error) {
	row := s.db.QueryRow(ctx, `
UPDATE genres SET name = $2, slug = $3, description = $4, icon = $5
WHERE id = $1
RETURNING `+genreCols, id, in.Name, in.Slug, in.Description, in.Icon)
	g, err := scanGenre(row)
	if err != nil {
		return Genre{}, mapWriteErr(err)
	}
	return g, nil
}

func (s *Postgres) DeleteGenre(ctx context.Context, id string) (Genre, error) {
	return scanGenre(s.db.QueryRow(ctx,
		`DELETE FROM genres WHERE id = $1 RETURNING `+genreCols, id))
}

// ── movies ─────────────────────────────────────────────────────────────────

const movieCols = `id, title, slug, description, poster, big_poster, video_url,
rating, count_opened, announced, actor_ids, genre_ids, created_at`

func scanMovie(row pgx.Row) (Movie, error) {
	var m Movie
	err := row.Scan(&m.ID, &m.Title, &m.Slug, &m.Description, &m.Poster, &m.BigPoster,
		&m.VideoURL, &m.Rating, &m.CountOpened, &m.Announced, &m.ActorIDs, &m.GenreIDs, &m.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Movie{}, ErrNotFound
		}
		return Movie{}, fmt.Errorf("scan movie: %w", err)
	}
	return m, nil
}

func (s *Postgres) MovieBySlug(ctx context.Context, slug string) (Movie, error) {
	return scanMovie(s.db.QueryRow(ctx,
		`SELECT `+movieCols+` FROM movies WHERE slug = $1`, slug))
}

func (s *Postgres) MovieByID(ctx context.Context, id string) (Movie, error) {
	return scanMovie(s.db.QueryRow(ctx,
		`SELECT `+movieCols+` FROM movies WHERE id = $1`, id))
}

func (s *Postgres) Movies(ctx context.Context, search string) ([]Movie, error) {
	rows, err := s.db.Query(ctx, `
SELECT `+movieCols+` FROM movies
WHERE $1 = '' OR title ILIKE '%' || $1 || '%'
ORDER BY created_at DESC`, search)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

func (s *Postgres) MostPopular(ctx context.Context) ([]Movie, error) {
	rows, err := s.db.Query(ctx, `
SELECT `+movieCols+` FROM movies
WHERE count_opened > 0
ORDER BY count_opened DESC`)
	if err != nil {
		return nil, fmt.Errorf("query movies: %w", err)
	}
	defer rows.Close()
	return collectMovies(rows)
}

func collectMovies(rows pgx.Rows) ([]Movie, error) {
	var out []Movie
	for rows.Next() {
		m, err := scanMovie(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, rows.Err()
}

func (s *Postgres) CreateMovie(ctx context.Context) (string, error) {
	id := uuid.New()
	_, err := s.db.Exec(ctx, `
INSERT INTO movies (id, title, slug, description, poster, big_poster, video_url,
                    rating, count_opened, announced, actor_ids, genre_ids, created_at)
VALUES ($1, '', '', '', '', '', '', 0, 0, FALSE, '{}', '{}', $2)`, id, time.Now().UTC())
	if err != nil {
		return "", fmt.Errorf("insert movie: %w", err)
	}
	return id.String(), nil
}

func (s *Postgres) UpdateMovie(ctx context.Context, id string, in MovieInput) (Movie, error) {
	row := s.db.QueryRow(ctx, `
UPDATE movies SET title = $2, slug = $3, description = $4, poster = $5,
                  big_poster = $6, video_url = $7, rating = $8, announced = $9,
                  actor_ids = $10, genre_ids = $11
WHERE id = $1
RETURNING `+movieCols,
		id, in.Title, in.Slug, in.Description, in.Poster, in.BigPoster,
		in.VideoURL, in.Rating, in.Announced, in.ActorIDs, in.GenreIDs)
	m, err := scanMovie(row)
	if err != nil {
		return Movie{}, mapWriteErr(err)
	}
	return m, nil
}

func (s *Postgres) DeleteMovie(ctx context.Context, id string) (Movie, error) {
	return scanMovie(s.db.QueryRow(ctx,
		`DELETE FROM movies WHERE id = $1 RETURNING `+movieCols, id))
}

func (s *Postgres) IncrementCountOpened(ctx context.Context, slug string) (Movie, error) {
	// Single conditional update; never read-modify-write.
	return scanMovie(s.db.QueryRow(ctx, `
UPDATE movies SET count_opened = count_opened + 1
WHERE slug = $1
RETURNING `+movieCols, slug))
}

func (s *Postgres) SetMovieRating(ctx context.Context, id string, rating float64) (Movie, error) {
	return scanMovie(s.db.QueryRow(ctx, `
UPDATE movies SET rating = $2 WHERE id = $1 RETURNING `+movieCols, id, rating))
}

func (s *Postgres) UpdateMovieIfUnannounced(ctx context.Context, id string, in MovieInput) (Movie, bool, error) {
	// prev captures the flag in the same statement, so concurrent
	// announcers see exactly one transitioned=true.
	row := s.db.QueryRow(ctx, `
WITH prev AS (
    SELECT announced FROM movies WHERE id = $1 FOR UPDATE
)
UPDATE movies SET title = $2, slug = $3, description = $4, poster = $5,
                  big_poster = $6, video_url = $7, rating = $8, announced = TRUE,
                  actor_ids = $9, genre_ids = $10
FROM prev
WHERE movies.id = $1
RETURNING movies.id, movies.title, movies.slug, movies.description, movies.poster,
          movies.big_poster, movies.video_url, movies.rating, movies.count_opened,
          movies.announced, movies.actor_ids, movies.genre_ids, movies.created_at,
          NOT prev.announced`,
		id, in.Title, in.Slug, in.Description, in.Poster, in.BigPoster,
		in.VideoURL, in.Rating, in.ActorIDs, in.GenreIDs)

	var m Movie
	var transitioned bool
	err := row.Scan(&m.ID, &m.Title, &m.Slug, &m.Description, &m.Poster, &m.BigPoster,
		&m.VideoURL, &m.Rating, &m.CountOpened, &m.Announced, &m.ActorIDs, &m.GenreIDs,
		&m.CreatedAt, &transitioned)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Movie{}, false, ErrNotFound
		}
		return Movie{}, false, mapWriteErr(fmt.Errorf("update movie: %w", err))
	}
	return m, transitioned, nil
}
