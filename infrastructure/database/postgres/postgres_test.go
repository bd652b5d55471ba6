package postgres

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/pms-dashboard-api/internal/config"
)

func TestNewConnection_UnsupportedDriver(t *testing.T) {
	conn, err := NewConnection(config.Database{SQLDriver: "mysql", DSN: "whatever"})

	assert.Nil(t, conn)
	assert.ErrorContains(t, err, "driver de banco não suportado")
}

func TestNewConnection_DoesNotRequireReachableDatabase(t *testing.T) {
	for _, driver := range []string{DriverPQ, DriverPGX} {
		t.Run(driver, func(t *testing.T) {
			conn, err := NewConnection(config.Database{
				SQLDriver:    driver,
				DSN:          "postgres://u:p@127.0.0.1:1/db?sslmode=disable",
				MaxOpenConns: 2,
			})
			require.NoError(t, err)
			defer conn.Close()

			assert.Equal(t, 2, conn.Stats().MaxOpenConnections)
		})
	}
}

func TestRunInTransaction(t *testing.T) {
	t.Run("commit quando fn não retorna erro", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectExec("DELETE FROM quality").WillReturnResult(sqlmock.NewResult(0, 3))
		mock.ExpectCommit()

		conn := &Connection{DB: db}
		err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			_, err := tx.ExecContext(context.Background(), "DELETE FROM quality")
			return err
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback quando fn retorna erro", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		fnErr := errors.New("falha")
		conn := &Connection{DB: db}
		err = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
			return fnErr
		})

		assert.ErrorIs(t, err, fnErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rollback e repropaga panic", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectBegin()
		mock.ExpectRollback()

		conn := &Connection{DB: db}
		assert.Panics(t, func() {
			_ = conn.RunInTransaction(context.Background(), func(tx *sql.Tx) error {
				panic("boom")
			})
		})
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDescribeError(t *testing.T) {
	assert.Nil(t, DescribeError(nil))

	plain := errors.New("conexão recusada")
	assert.Equal(t, plain, DescribeError(plain))
	assert.Equal(t, "", SQLState(plain))

	pqErr := &pq.Error{Code: "42P01", Message: "relation \"quality\" does not exist"}
	described := DescribeError(pqErr)
	assert.ErrorIs(t, described, pqErr)
	assert.Contains(t, described.Error(), "[42P01]")
	assert.Equal(t, "42P01", SQLState(described))

	pgErr := &pgconn.PgError{Code: "23505", Message: "duplicate key"}
	described = DescribeError(pgErr)
	assert.Contains(t, described.Error(), "[23505]")
	assert.Equal(t, "23505", SQLState(described))
}
