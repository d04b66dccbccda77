// Package movie stores movies and their director and genre links.
package movie

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/movieloader/internal/adapter/postgres"
	"github.com/heartmarshall/movieloader/internal/domain"
)

// Repo provides movie persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new movie repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert stores m and returns a copy carrying the database-assigned m_id.
// Empty text fields are stored as NULL, as is a nil Year.
func (r *Repo) Insert(ctx context.Context, m domain.Movie) (*domain.Movie, error) {
	query, args, err := postgres.Builder().
		Insert("movie").
		Columns("title", "eng_title", "year", "country", "m_type", "status", "company").
		Values(
			m.Title,
			nullable(m.EngTitle),
			m.Year,
			nullable(m.Country),
			nullable(m.Type),
			nullable(m.Status),
			nullable(m.Company),
		).
		Suffix("RETURNING m_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&m.ID); err != nil {
		return nil, postgres.MapError(err, "movie", m.Title)
	}
	return &m, nil
}

// LinkDirector inserts a movie_director row.
func (r *Repo) LinkDirector(ctx context.Context, l domain.MovieDirector) error {
	return r.link(ctx, "movie_director", "d_id", l.MovieID, l.DirectorID)
}

// LinkGenre inserts a movie_genre row.
func (r *Repo) LinkGenre(ctx context.Context, l domain.MovieGenre) error {
	return r.link(ctx, "movie_genre", "genre_id", l.MovieID, l.GenreID)
}

func (r *Repo) link(ctx context.Context, table, refColumn string, movieID, refID int64) error {
	query, args, err := postgres.Builder().
		Insert(table).
		Columns("m_id", refColumn).
		Values(movieID, refID).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := postgres.QuerierFromCtx(ctx, r.db).Exec(ctx, query, args...); err != nil {
		return postgres.MapError(err, table, fmt.Sprintf("(%d, %d)", movieID, refID))
	}
	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
