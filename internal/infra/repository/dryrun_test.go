package repository

import (
	"testing"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DryRunで組み立てたSQLを記録する
type sqlRecorder struct {
	stmts []string
	vars  [][]any
}

func (r *sqlRecorder) last() string {
	if len(r.stmts) == 0 {
		return ""
	}
	return r.stmts[len(r.stmts)-1]
}

func (r *sqlRecorder) lastVars() []any {
	if len(r.vars) == 0 {
		return nil
	}
	return r.vars[len(r.vars)-1]
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlRecorder) {
	t.Helper()

	gormDB, err := gorm.Open(
		postgres.New(postgres.Config{DSN: "host=localhost user=catalog dbname=catalog sslmode=disable"}),
		&gorm.Config{DryRun: true, DisableAutomaticPing: true, Logger: gormlogger.Discard},
	)
	require.NoError(t, err)

	rec := &sqlRecorder{}
	capture := func(tx *gorm.DB) {
		rec.stmts = append(rec.stmts, tx.Statement.SQL.String())
		rec.vars = append(rec.vars, append([]any(nil), tx.Statement.Vars...))
	}
	cb := gormDB.Callback()
	require.NoError(t, cb.Query().After("gorm:query").Register("test:capture_query", capture))
	require.NoError(t, cb.Create().After("gorm:create").Register("test:capture_create", capture))
	require.NoError(t, cb.Update().After("gorm:update").Register("test:capture_update", capture))
	require.NoError(t, cb.Delete().After("gorm:delete").Register("test:capture_delete", capture))

	return gormDB, rec
}
