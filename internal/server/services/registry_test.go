package services

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The registry against the PostgreSQL repository: one statement per call.
func TestSessionRegistry_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer db.Close()

	reg := NewSessionRegistry(db, repomanager.NewPostgresRepositoryManager())
	ctx := context.Background()

	mock.ExpectExec(`INSERT\s+INTO\s+sessions`).WithArgs("u1", "auth", "t1").WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectQuery(`SELECT\s+EXISTS`).WithArgs("u1", "auth", "t1").
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
	mock.ExpectExec(`DELETE\s+FROM\s+sessions\s+WHERE\s+user_id\s*=\s*\$1\s+AND\s+token`).WithArgs("u1", "t1").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE\s+FROM\s+sessions\s+WHERE\s+user_id\s*=\s*\$1$`).WithArgs("u1").
		WillReturnError(errors.New("db down"))

	require.NoError(t, reg.Add(ctx, "u1", "auth", "t1"))
	ok, err := reg.Contains(ctx, "u1", "auth", "t1")
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, reg.RemoveOne(ctx, "u1", "t1"))

	err = reg.RemoveAll(ctx, "u1")
	require.Error(t, err)
	assert.Regexp(t, regexp.MustCompile(`db error: .*db down`), err.Error())

	assert.NoError(t, mock.ExpectationsWereMet())
}
