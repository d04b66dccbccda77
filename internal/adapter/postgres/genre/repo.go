// Package genre stores genre names.
package genre

import (
	"context"

	postgres "github.com/heartmarshall/movieloader/internal/adapter/postgres"
	"github.com/heartmarshall/movieloader/internal/domain"
)

// Repo provides genre persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new genre repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert stores a genre and returns it with the database-assigned genre_id.
func (r *Repo) Insert(ctx context.Context, name string) (*domain.Genre, error) {
	query, args, err := postgres.Builder().
		Insert("genre").
		Columns("genre_name").
		Values(name).
		Suffix("RETURNING genre_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "genre", name)
	}
	return &domain.Genre{ID: id, Name: name}, nil
}
