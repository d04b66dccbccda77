// Package loader runs the spreadsheet-to-database load: schema reset,
// reference data (directors, genres), then movies and their links.
package loader

import (
	"context"

	"github.com/heartmarshall/movieloader/internal/domain"
)

// TxManager runs callbacks in a transaction, and statements inside a
// savepoint of that transaction. Implemented by postgres.TxManager.
type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
	RunInSavepoint(ctx context.Context, fn func(ctx context.Context) error) error
}

// SchemaRepo drops and recreates the tables. Implemented by schema.Repo.
type SchemaRepo interface {
	Reset(ctx context.Context) error
}

// DirectorRepo inserts a director name. Implemented by director.Repo.
type DirectorRepo interface {
	Insert(ctx context.Context, name string) (*domain.Director, error)
}

// GenreRepo inserts a genre name. Implemented by genre.Repo.
type GenreRepo interface {
	Insert(ctx context.Context, name string) (*domain.Genre, error)
}

// MovieRepo inserts movies and their association rows. Implemented by movie.Repo.
type MovieRepo interface {
	Insert(ctx context.Context, m domain.Movie) (*domain.Movie, error)
	LinkDirector(ctx context.Context, link domain.MovieDirector) error
	LinkGenre(ctx context.Context, link domain.MovieGenre) error
}
