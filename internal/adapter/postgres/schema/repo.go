// Package schema drops and recreates the movie tables.
// Every run starts from empty tables; there is no versioning.
package schema

import (
	"context"
	"fmt"

	postgres "github.com/heartmarshall/movieloader/internal/adapter/postgres"
)

// Table names in creation order. Parents come before the tables that reference them.
const (
	TableMovie         = "movie"
	TableDirector      = "director"
	TableGenre         = "genre"
	TableMovieDirector = "movie_director"
	TableMovieGenre    = "movie_genre"
)

// Tables returns the table names in creation order.
func Tables() []string {
	return []string{TableMovie, TableDirector, TableGenre, TableMovieDirector, TableMovieGenre}
}

const dropSQL = `DROP TABLE IF EXISTS movie_genre, movie_director, genre, director, movie`

const createMovieSQL = `
CREATE TABLE movie (
    m_id      SERIAL PRIMARY KEY,
    title     VARCHAR(500),
    eng_title VARCHAR(500),
    year      INT,
    country   VARCHAR(100),
    m_type    VARCHAR(10),
    status    VARCHAR(30),
    company   VARCHAR(100)
)`

const createDirectorSQL = `
CREATE TABLE director (
    d_id   SERIAL PRIMARY KEY,
    d_name VARCHAR(100)
)`

const createGenreSQL = `
CREATE TABLE genre (
    genre_id   SERIAL PRIMARY KEY,
    genre_name VARCHAR(100)
)`

const createMovieDirectorSQL = `
CREATE TABLE movie_director (
    m_id INT NOT NULL REFERENCES movie (m_id),
    d_id INT NOT NULL REFERENCES director (d_id),
    PRIMARY KEY (m_id, d_id)
)`

const createMovieGenreSQL = `
CREATE TABLE movie_genre (
    m_id     INT NOT NULL REFERENCES movie (m_id),
    genre_id INT NOT NULL REFERENCES genre (genre_id),
    PRIMARY KEY (m_id, genre_id)
)`

// Repo owns the DDL for the loader tables.
type Repo struct {
	db postgres.Querier
}

// New creates a new schema repository.
func New(db postgres.Querier) *Repo {
	return &Repo{db: db}
}

// Reset drops all loader tables and creates them again, empty.
// Callers wrap it in a transaction so the reset commits as one unit.
func (r *Repo) Reset(ctx context.Context) error {
	q := postgres.QuerierFromCtx(ctx, r.db)

	if _, err := q.Exec(ctx, dropSQL); err != nil {
		return fmt.Errorf("drop tables: %w", err)
	}

	stmts := []struct {
		table string
		sql   string
	}{
		{TableMovie, createMovieSQL},
		{TableDirector, createDirectorSQL},
		{TableGenre, createGenreSQL},
		{TableMovieDirector, createMovieDirectorSQL},
		{TableMovieGenre, createMovieGenreSQL},
	}

	for _, s := range stmts {
		if _, err := q.Exec(ctx, s.sql); err != nil {
			return fmt.Errorf("create table %s: %w", s.table, err)
		}
	}

	return nil
}
