package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/require"

	"github.com/kisaanlabs/kisaan-setu/internal/logger"
)

func newTestKVStore(t *testing.T) (*kvStore, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	kv := &kvStore{
		db:  &DB{DB: db, logger: l},
		log: l,
	}
	return kv, mock, db
}

func TestKVStore_Read_Success(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"value"}).AddRow(`{"id":"demo1"}`)
	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(KeyCurrentUser).
		WillReturnRows(rows)

	value, err := kv.Read(context.Background(), KeyCurrentUser)
	require.NoError(t, err)
	require.Equal(t, `{"id":"demo1"}`, value)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Read_KeyNotFound(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := kv.Read(context.Background(), "missing")
	require.ErrorIs(t, err, ErrKeyNotFound)
}

func TestKVStore_Read_DBError(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectQuery("SELECT value FROM kv").
		WithArgs(KeyCurrentUser).
		WillReturnError(errors.New("disk I/O error"))

	_, err := kv.Read(context.Background(), KeyCurrentUser)
	require.ErrorIs(t, err, ErrStorageRead)
}

func TestKVStore_Write_Success(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs(KeyRegisteredUsers, `[]`).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := kv.Write(context.Background(), KeyRegisteredUsers, `[]`)
	require.NoError(t, err)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestKVStore_Write_DBError(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO kv").
		WithArgs(KeyRegisteredUsers, `[]`).
		WillReturnError(errors.New("database is locked"))

	err := kv.Write(context.Background(), KeyRegisteredUsers, `[]`)
	require.ErrorIs(t, err, ErrStorageWrite)
}

func TestKVStore_Delete_Success(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv").
		WithArgs(KeyCurrentUser).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := kv.Delete(context.Background(), KeyCurrentUser)
	require.NoError(t, err)
}

func TestKVStore_Delete_AbsentKeyIsNotAnError(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	// zero rows affected: the key was never stored
	mock.ExpectExec("DELETE FROM kv").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := kv.Delete(context.Background(), "missing")
	require.NoError(t, err)
}

func TestKVStore_Delete_DBError(t *testing.T) {
	kv, mock, db := newTestKVStore(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM kv").
		WithArgs(KeyCurrentUser).
		WillReturnError(errors.New("database is locked"))

	err := kv.Delete(context.Background(), KeyCurrentUser)
	require.ErrorIs(t, err, ErrStorageDelete)
}
