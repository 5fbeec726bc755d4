package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	pgxmock "github.com/pashagolub/pgxmock/v2"
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	if err != nil {
		t.Fatalf("pgxmock.NewPool: %v", err)
	}
	t.Cleanup(mock.Close)
	return mock
}

func TestTxManager_RunInTx(t *testing.T) {
	t.Run("commits on success", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectCommit()

		tm := NewTxManager(mock)

		var sawTx bool
		err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
			// The callback context must carry the transaction so that
			// repositories route their queries through it.
			_, sawTx = ctx.Value(txCtxKey{}).(pgx.Tx)
			return nil
		})
		if err != nil {
			t.Fatalf("RunInTx() unexpected error: %v", err)
		}
		if !sawTx {
			t.Error("callback context does not carry the transaction")
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("rolls back on callback error", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		tm := NewTxManager(mock)

		wantErr := errors.New("boom")
		err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
			return wantErr
		})
		if !errors.Is(err, wantErr) {
			t.Fatalf("RunInTx() error = %v, want %v", err, wantErr)
		}

		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet expectations: %v", err)
		}
	})

	t.Run("propagates begin failure", func(t *testing.T) {
		mock := newMock(t)
		beginErr := errors.New("connection refused")
		mock.ExpectBegin().WillReturnError(beginErr)

		tm := NewTxManager(mock)

		err := tm.RunInTx(context.Background(), func(ctx context.Context) error {
			t.Fatal("callback must not run when begin fails")
			return nil
		})
		if !errors.Is(err, beginErr) {
			t.Fatalf("RunInTx() error = %v, want %v", err, beginErr)
		}
	})

	t.Run("rolls back and re-panics on panic", func(t *testing.T) {
		mock := newMock(t)
		mock.ExpectBegin()
		mock.ExpectRollback()

		tm := NewTxManager(mock)

		defer func() {
			if r := recover(); r == nil {
				t.Fatal("RunInTx() swallowed the panic")
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Errorf("unmet expectations: %v", err)
			}
		}()

		_ = tm.RunInTx(context.Background(), func(ctx context.Context) error {
			panic("boom")
		})
	})
}
