package professional

import (
	"context"
	"database/sql"
	"testing"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingDB запоминает последний запрос и возвращает заданную ошибку
type recordingDB struct {
	query string
	args  []interface{}
	err   error
}

func (r *recordingDB) ExecContext(_ context.Context, query string, args ...interface{}) (sql.Result, error) {
	r.query, r.args = query, args
	return nil, r.err
}

func (r *recordingDB) QueryContext(_ context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	r.query, r.args = query, args
	return nil, r.err
}

func (r *recordingDB) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	panic("not used")
}

func TestList_ActiveOnly(t *testing.T) {
	db := &recordingDB{err: &pq.Error{Code: "57P01"}}
	repo := NewRepository(db)

	_, err := repo.List(context.Background(), true)
	require.Error(t, err)

	assert.Contains(t, db.query, "FROM professionals WHERE active = $1 ORDER BY name ASC")
	assert.Equal(t, []interface{}{true}, db.args)

	assert.ErrorIs(t, err, ErrExecQuery)
	var pqErr *pq.Error
	assert.ErrorAs(t, err, &pqErr)
}

func TestList_All(t *testing.T) {
	db := &recordingDB{err: &pq.Error{Code: "57P01"}}
	repo := NewRepository(db)

	_, err := repo.List(context.Background(), false)
	require.Error(t, err)

	assert.NotContains(t, db.query, "WHERE")
	assert.Contains(t, db.query, "ORDER BY name ASC")
	assert.Empty(t, db.args)
}
