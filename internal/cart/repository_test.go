// AngelaMos | 2026
// repository_test.go

package cart

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

// The sweep may only delete carts that are both stale and empty. A
// stale cart that still holds lines must be excluded, otherwise the
// cascade on cart_items would wipe a customer's saved items.
func TestPurgeStaleBefore_OnlyDeletesEmptyCarts(t *testing.T) {
	repo, mock := newMockRepo(t)
	cutoff := time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC)

	mock.ExpectExec(
		`DELETE FROM carts WHERE updated_at < \$1 AND NOT EXISTS ` +
			`\( SELECT 1 FROM cart_items ci WHERE ci\.cart_id = carts\.id \)`).
		WithArgs(cutoff).
		WillReturnResult(sqlmock.NewResult(0, 3))

	purged, err := repo.PurgeStaleBefore(context.Background(), cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(3), purged)

	assert.NoError(t, mock.ExpectationsWereMet())
}
