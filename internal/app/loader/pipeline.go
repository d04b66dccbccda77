package loader

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/movieloader/internal/domain"
	"github.com/heartmarshall/movieloader/internal/sheet"
	"github.com/heartmarshall/movieloader/pkg/ctxutil"
)

// Phase names in execution order.
const (
	PhaseSchema    = "schema"
	PhaseReference = "reference"
	PhaseFacts     = "facts"
)

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted   int
	Linked     int
	Skipped    int
	Duplicates int
	Duration   time.Duration
	Err        error
}

// Deps are the collaborators a Pipeline writes through.
type Deps struct {
	Tx        TxManager
	Schema    SchemaRepo
	Directors DirectorRepo
	Genres    GenreRepo
	Movies    MovieRepo
}

// Pipeline orchestrates the three-phase load. Each phase commits in its own
// transaction, so a failure in the facts phase leaves the schema and the
// reference data in place.
type Pipeline struct {
	log     *slog.Logger
	deps    Deps
	results map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, deps Deps) *Pipeline {
	return &Pipeline{
		log:     log,
		deps:    deps,
		results: make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// refIndexes is the output of the reference phase.
type refIndexes struct {
	directors NameIndex
	genres    NameIndex
}

// Run resets the schema and loads table. The first failing phase stops the run.
func (p *Pipeline) Run(ctx context.Context, table *sheet.Table) (Summary, error) {
	runID, ok := ctxutil.RunIDFromCtx(ctx)
	if !ok {
		runID = uuid.New()
		ctx = ctxutil.WithRunID(ctx, runID)
	}
	log := p.log.With(slog.String("run_id", runID.String()))
	log.Info("load started", slog.Int("rows", table.Len()), slog.Any("columns", table.Columns()))
	if !table.HasColumn(ColTitle) {
		log.Warn("title column missing, no movies will be loaded", slog.String("column", ColTitle))
	}

	err := p.runPhase(ctx, log, PhaseSchema, func(ctx context.Context) PhaseResult {
		if err := p.deps.Schema.Reset(ctx); err != nil {
			return PhaseResult{Err: fmt.Errorf("reset schema: %w", err)}
		}
		return PhaseResult{}
	})
	if err != nil {
		return Summary{}, err
	}

	refs := refIndexes{directors: NameIndex{}, genres: NameIndex{}}
	err = p.runPhase(ctx, log, PhaseReference, func(ctx context.Context) PhaseResult {
		return p.loadReference(ctx, log, table, refs)
	})
	if err != nil {
		return Summary{}, err
	}

	var movies int
	err = p.runPhase(ctx, log, PhaseFacts, func(ctx context.Context) PhaseResult {
		result := p.loadFacts(ctx, table, refs)
		movies = result.Inserted
		return result
	})
	if err != nil {
		return Summary{}, err
	}

	summary := Summary{
		Movies:    movies,
		Directors: len(refs.directors),
		Genres:    len(refs.genres),
	}
	log.Info("load completed",
		slog.Int("movies", summary.Movies),
		slog.Int("directors", summary.Directors),
		slog.Int("genres", summary.Genres),
	)
	return summary, nil
}

// runPhase runs fn in one transaction and records its result. A phase whose
// result carries an error is rolled back.
func (p *Pipeline) runPhase(ctx context.Context, log *slog.Logger, phase string, fn func(ctx context.Context) PhaseResult) error {
	start := time.Now()
	log.Info("starting phase", slog.String("phase", phase))

	var result PhaseResult
	err := p.deps.Tx.RunInTx(ctx, func(ctx context.Context) error {
		result = fn(ctx)
		return result.Err
	})
	if err != nil {
		result.Err = fmt.Errorf("%s phase: %w", phase, err)
	}
	result.Duration = time.Since(start)
	p.results[phase] = result

	if result.Err != nil {
		log.Error("phase failed",
			slog.String("phase", phase),
			slog.String("error", result.Err.Error()),
			slog.Duration("duration", result.Duration),
		)
		return result.Err
	}

	log.Info("phase completed",
		slog.String("phase", phase),
		slog.Int("inserted", result.Inserted),
		slog.Int("linked", result.Linked),
		slog.Int("skipped", result.Skipped),
		slog.Int("duplicates", result.Duplicates),
		slog.Duration("duration", result.Duration),
	)
	return nil
}

// loadReference inserts every distinct director and genre name once and
// records the ids in refs.
func (p *Pipeline) loadReference(ctx context.Context, log *slog.Logger, table *sheet.Table, refs refIndexes) PhaseResult {
	kinds := []struct {
		entity string
		col    string
		insert func(ctx context.Context, name string) (int64, error)
		index  NameIndex
	}{
		{"director", ColDirector, p.insertDirector, refs.directors},
		{"genre", ColGenre, p.insertGenre, refs.genres},
	}

	var result PhaseResult
	for _, row := range table.Rows() {
		for _, k := range kinds {
			name, ok := cell(row, k.col)
			if !ok || k.index.Has(name) {
				result.Skipped++
				continue
			}

			var id int64
			err := p.deps.Tx.RunInSavepoint(ctx, func(ctx context.Context) error {
				var err error
				id, err = k.insert(ctx, name)
				return err
			})
			if errors.Is(err, domain.ErrAlreadyExists) {
				log.Warn("duplicate name skipped",
					slog.String("entity", k.entity),
					slog.String("name", name),
					slog.Int("line", row.Line),
				)
				result.Duplicates++
				continue
			}
			if err != nil {
				result.Err = fmt.Errorf("insert %s at line %d: %w", k.entity, row.Line, err)
				return result
			}

			k.index[name] = id
			result.Inserted++
		}
	}
	return result
}

func (p *Pipeline) insertDirector(ctx context.Context, name string) (int64, error) {
	d, err := p.deps.Directors.Insert(ctx, name)
	if err != nil {
		return 0, err
	}
	return d.ID, nil
}

func (p *Pipeline) insertGenre(ctx context.Context, name string) (int64, error) {
	g, err := p.deps.Genres.Insert(ctx, name)
	if err != nil {
		return 0, err
	}
	return g.ID, nil
}

// loadFacts inserts one movie per titled row plus its director and genre links.
func (p *Pipeline) loadFacts(ctx context.Context, table *sheet.Table, refs refIndexes) PhaseResult {
	var result PhaseResult
	for _, row := range table.Rows() {
		title, ok := cell(row, ColTitle)
		if !ok {
			result.Skipped++
			continue
		}

		m, err := p.deps.Movies.Insert(ctx, movieFromRow(row, title))
		if err != nil {
			result.Err = fmt.Errorf("insert movie at line %d: %w", row.Line, err)
			return result
		}
		result.Inserted++

		if name, ok := cell(row, ColDirector); ok {
			if directorID, ok := refs.directors.Lookup(name); ok {
				link := domain.MovieDirector{MovieID: m.ID, DirectorID: directorID}
				if err := p.deps.Movies.LinkDirector(ctx, link); err != nil {
					result.Err = fmt.Errorf("link director at line %d: %w", row.Line, err)
					return result
				}
				result.Linked++
			}
		}

		if name, ok := cell(row, ColGenre); ok {
			if genreID, ok := refs.genres.Lookup(name); ok {
				link := domain.MovieGenre{MovieID: m.ID, GenreID: genreID}
				if err := p.deps.Movies.LinkGenre(ctx, link); err != nil {
					result.Err = fmt.Errorf("link genre at line %d: %w", row.Line, err)
					return result
				}
				result.Linked++
			}
		}
	}
	return result
}
