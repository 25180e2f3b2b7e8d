package migrations

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

// fakeExecutor stands in for the migration transaction and captures what is
// executed on it.
type fakeExecutor struct {
	sql  []string
	args [][]any
	err  error
}

func (f *fakeExecutor) Exec(_ context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	f.sql = append(f.sql, sql)
	f.args = append(f.args, args)
	return pgconn.NewCommandTag("INSERT 0 1"), f.err
}

func TestRecordMigrationWritesThroughGivenExecutor(t *testing.T) {
	m := NewMigrator(nil)
	tx := &fakeExecutor{}

	err := m.recordMigration(context.Background(), tx, "001")
	assert.NoError(t, err)

	// The version row must go to the migration's own transaction, never to
	// the pool, so it commits or rolls back together with the DDL.
	assert.Len(t, tx.sql, 1)
	assert.Contains(t, tx.sql[0], "INSERT INTO schema_migrations")
	assert.Equal(t, "001", tx.args[0][0])
}

func TestRecordMigrationPropagatesError(t *testing.T) {
	m := NewMigrator(nil)
	tx := &fakeExecutor{err: errors.New("tx closed")}

	err := m.recordMigration(context.Background(), tx, "002")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "tx closed")
}
