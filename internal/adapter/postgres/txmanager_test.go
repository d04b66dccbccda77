package postgres_test

import (
	"context"
	"errors"
	"testing"

	pgxmock "github.com/pashagolub/pgxmock/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/movieloader/internal/adapter/postgres"
	"github.com/heartmarshall/movieloader/internal/adapter/postgres/testhelper"
)

func TestRunInTx_Commit(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	tm := postgres.NewTxManager(mock)

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO director`).
		WithArgs("Kim").
		WillReturnResult(pgxmock.NewResult("INSERT", 1))
	mock.ExpectCommit()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		q := postgres.QuerierFromCtx(ctx, mock)
		_, err := q.Exec(ctx, `INSERT INTO director (d_name) VALUES ($1)`, "Kim")
		return err
	})
	require.NoError(t, err)
}

func TestRunInTx_RollbackOnError(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	tm := postgres.NewTxManager(mock)
	sentinel := errors.New("load failed")

	mock.ExpectBegin()
	mock.ExpectRollback()

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		return sentinel
	})
	assert.ErrorIs(t, err, sentinel)
}

func TestRunInTx_RollbackOnPanic(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	tm := postgres.NewTxManager(mock)

	mock.ExpectBegin()
	mock.ExpectRollback()

	defer func() {
		r := recover()
		if r != "test panic" {
			t.Fatalf("expected panic value %q, got %v", "test panic", r)
		}
	}()

	_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
		panic("test panic")
	})
}

func TestRunInTx_BeginError(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	tm := postgres.NewTxManager(mock)

	mock.ExpectBegin().WillReturnError(errors.New("connection refused"))

	called := false
	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "begin transaction")
	assert.False(t, called, "fn must not run when Begin fails")
}

func TestRunInTx_CommitError(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	tm := postgres.NewTxManager(mock)

	mock.ExpectBegin()
	mock.ExpectCommit().WillReturnError(errors.New("serialization failure"))

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error { return nil })

	require.Error(t, err)
	assert.Contains(t, err.Error(), "commit transaction")
}

func TestQuerierFromCtx_WithoutTxReturnsFallback(t *testing.T) {
	mock := testhelper.NewMockConn(t)

	q := postgres.QuerierFromCtx(context.Background(), mock)
	assert.Equal(t, postgres.Querier(mock), q)
}

func TestRunInSavepoint_NoTxRunsDirectly(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	tm := postgres.NewTxManager(mock)

	called := false
	err := tm.RunInSavepoint(context.Background(), func(ctx context.Context) error {
		called = true
		return nil
	})

	require.NoError(t, err)
	assert.True(t, called)
}

func TestRunInSavepoint_ErrorRollsBackSavepointOnly(t *testing.T) {
	mock := testhelper.NewMockConn(t)
	tm := postgres.NewTxManager(mock)
	dup := errors.New("duplicate")

	mock.ExpectBegin()    // outer transaction
	mock.ExpectBegin()    // savepoint
	mock.ExpectRollback() // rollback to savepoint
	mock.ExpectCommit()   // outer transaction still commits

	err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
		spErr := tm.RunInSavepoint(ctx, func(ctx context.Context) error { return dup })
		assert.ErrorIs(t, spErr, dup)
		return nil
	})
	require.NoError(t, err)
}
