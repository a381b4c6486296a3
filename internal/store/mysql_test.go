package store

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMockStore(t *testing.T) (*MYSQLStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	ms := NewWithDB(ctx, sqlx.NewDb(db, "mysql"))
	t.Cleanup(func() {
		assert.NoError(t, mock.ExpectationsWereMet())
		cancel()
	})
	return ms, mock
}

func TestPrepareDSN(t *testing.T) {
	dsn, err := prepareDSN("user:pass@tcp(localhost:3306)/resto")
	require.NoError(t, err)
	assert.Contains(t, dsn, "parseTime=true")
	assert.Contains(t, dsn, "clientFoundRows=true")

	mc, err := mysql.ParseDSN(dsn)
	require.NoError(t, err)
	assert.Equal(t, "'+00:00'", mc.Params["time_zone"])
	assert.Equal(t, time.UTC, mc.Loc)

	_, err = prepareDSN("not a dsn")
	assert.Error(t, err)
}

func TestMySQLErrorClassification(t *testing.T) {
	ms := &MYSQLStore{}
	assert.True(t, ms.IsErrUniqueViolation(&mysql.MySQLError{Number: errDupEntry}))
	assert.False(t, ms.IsErrUniqueViolation(&mysql.MySQLError{Number: errLockDeadlock}))
	assert.True(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: errLockDeadlock}))
	assert.True(t, ms.IsErrorRepeat(&mysql.MySQLError{Number: errLockWaitTimeout}))
	assert.False(t, ms.IsErrorRepeat(assert.AnError))
	assert.True(t, isErrNoReferencedRow(&mysql.MySQLError{Number: errNoReferencedRow}))
}

func TestPing(t *testing.T) {
	ms, mock := newMockStore(t)
	mock.ExpectQuery("SELECT 1").WillReturnRows(sqlmock.NewRows([]string{"1"}).AddRow(1))
	assert.NoError(t, ms.Ping(context.Background()))
}
