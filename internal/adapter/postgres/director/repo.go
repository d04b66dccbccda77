// Package director stores director names.
package director

import (
	"context"

	postgres "github.com/heartmarshall/movieloader/internal/adapter/postgres"
	"github.com/heartmarshall/movieloader/internal/domain"
)

// Repo provides director persistence backed by PostgreSQL.
type Repo struct {
	db postgres.Querier
}

// New creates a new director repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Insert stores a director and returns it with the database-assigned d_id.
func (r *Repo) Insert(ctx context.Context, name string) (*domain.Director, error) {
	query, args, err := postgres.Builder().
		Insert("director").
		Columns("d_name").
		Values(name).
		Suffix("RETURNING d_id").
		ToSql()
	if err != nil {
		return nil, err
	}

	var id int64
	if err := postgres.QuerierFromCtx(ctx, r.db).QueryRow(ctx, query, args...).Scan(&id); err != nil {
		return nil, postgres.MapError(err, "director", name)
	}
	return &domain.Director{ID: id, Name: name}, nil
}
