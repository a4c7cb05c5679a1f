package repository

import (
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/require"
)

var (
	employeeCols = []string{"id", "name", "surname", "email", "birth_date", "job_title", "salary", "project_id"}
	projectCols  = []string{"id", "name", "description", "start_date", "end_date", "completion_percentage"}

	birth = time.Date(1815, 12, 10, 0, 0, 0, 0, time.UTC)
	start = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end   = time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)
)

func newMock(t *testing.T) pgxmock.PgxPoolIface {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, mock.ExpectationsWereMet())
		mock.Close()
	})
	return mock
}
