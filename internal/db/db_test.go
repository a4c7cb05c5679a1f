package db

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnsureSchema(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	mock.ExpectExec(`CREATE TABLE IF NOT EXISTS projects`).
		WillReturnResult(pgxmock.NewResult("CREATE TABLE", 0))

	require.NoError(t, EnsureSchema(context.Background(), mock))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestEnsureSchema_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	boom := errors.New("permission denied for schema public")
	mock.ExpectExec(`CREATE TABLE`).WillReturnError(boom)

	err = EnsureSchema(context.Background(), mock)
	assert.ErrorIs(t, err, boom)
}

func TestSchemaDefinesConstraints(t *testing.T) {
	assert.Contains(t, schemaSQL, "CONSTRAINT employees_email_key UNIQUE (email)")
	assert.Contains(t, schemaSQL, "REFERENCES projects (id) ON DELETE RESTRICT")
	assert.Contains(t, schemaSQL, "CREATE TABLE IF NOT EXISTS employees")
}

func TestNewPool_InvalidURL(t *testing.T) {
	_, err := NewPool(context.Background(), PoolOptions{URL: "postgres://%zz"})
	assert.Error(t, err)
}
