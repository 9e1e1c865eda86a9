package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockPostgres(t *testing.T) (*Postgres, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherEqual))
	require.NoError(t, err)
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
	})
	return NewPostgresFromDB(db, nil), mock
}

func TestPostgres_Put(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectExec(s.putQuery).
		WithArgs("persons", "ada", []byte(`{"name":"ada","age":36}`)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := s.Put(context.Background(), "persons", "ada", []byte(`{"name":"ada","age":36}`))
	require.NoError(t, err)
	assert.Contains(t, s.putQuery, "$3")
}

func TestPostgres_PutError(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectExec(s.putQuery).
		WithArgs("persons", "ada", []byte("x")).
		WillReturnError(errors.New("connection reset"))

	err := s.Put(context.Background(), "persons", "ada", []byte("x"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPostgres_Get(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectQuery(s.getQuery).
		WithArgs("persons", "ada").
		WillReturnRows(sqlmock.NewRows([]string{"value"}).AddRow([]byte("36")))

	value, found, err := s.Get(context.Background(), "persons", "ada")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "36", string(value))
}

func TestPostgres_GetMissing(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectQuery(s.getQuery).
		WithArgs("persons", "nobody").
		WillReturnError(sql.ErrNoRows)

	value, found, err := s.Get(context.Background(), "persons", "nobody")
	require.NoError(t, err)
	assert.False(t, found)
	assert.Nil(t, value)
}

func TestPostgres_ListKeys(t *testing.T) {
	s, mock := newMockPostgres(t)

	mock.ExpectQuery(s.listQuery).
		WithArgs("persons").
		WillReturnRows(sqlmock.NewRows([]string{"entry_key"}).AddRow("ada").AddRow("grace"))

	keys, err := s.ListKeys(context.Background(), "persons")
	require.NoError(t, err)
	assert.Equal(t, []string{"ada", "grace"}, keys)
}

func TestPostgres_PingAndClose(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	s := NewPostgresFromDB(db, nil)

	mock.ExpectPing()
	mock.ExpectClose()

	require.NoError(t, s.Ping(context.Background()))
	require.NoError(t, s.Close())
	assert.ErrorIs(t, s.Ping(context.Background()), ErrClosed)
	assert.NoError(t, mock.ExpectationsWereMet())
}
