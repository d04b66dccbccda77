package genre

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/movieloader/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/movieloader/internal/domain"
)

func TestRepo_Insert_ReturnsGenreID(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	mock.ExpectQuery(`INSERT INTO genre \(genre_name\) VALUES \(\$1\) RETURNING genre_id`).
		WithArgs("드라마").
		WillReturnRows(pgxmock.NewRows([]string{"genre_id"}).AddRow(int64(3)))

	g, err := New(mock).Insert(context.Background(), "드라마")

	require.NoError(t, err)
	assert.Equal(t, domain.Genre{ID: 3, Name: "드라마"}, *g)
}

func TestRepo_Insert_WrapsDriverError(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	connErr := errors.New("connection reset")
	mock.ExpectQuery(`INSERT INTO genre`).
		WithArgs("Drama").
		WillReturnError(connErr)

	_, err := New(mock).Insert(context.Background(), "Drama")

	require.ErrorIs(t, err, connErr)
	assert.Contains(t, err.Error(), "genre Drama")
}
