// AngelaMos | 2026
// repository_test.go

package user

import (
	"context"
	"testing"
	"time"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockRepo(t *testing.T) (Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return NewRepository(sqlx.NewDb(db, "sqlmock")), mock
}

// A soft-deleted user with orders must be skipped, not deleted. The
// orders FK would otherwise abort the whole statement and the purge
// would never remove anyone.
func TestPurgeDeletedBefore_SkipsUsersWithOrders(t *testing.T) {
	repo, mock := newMockRepo(t)
	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(
		`DELETE FROM users WHERE deleted_at IS NOT NULL ` +
			`AND deleted_at < \$1 AND NOT EXISTS ` +
			`\( SELECT 1 FROM orders o WHERE o\.user_id = users\.id \)`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 2))

	purged, err := repo.PurgeDeletedBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(2), purged)

	assert.NoError(t, mock.ExpectationsWereMet())
}
