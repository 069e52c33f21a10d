package services

import (
	"context"
	"database/sql"
	"sync/atomic"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/credentials"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/memory"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/sessions"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret"

// spySessions counts registry lookups.
type spySessions struct {
	*memory.Sessions
	contains atomic.Int32
}

func (s *spySessions) Contains(ctx context.Context, userID, access, token string) (bool, error) {
	s.contains.Add(1)
	return s.Sessions.Contains(ctx, userID, access, token)
}

type testManager struct {
	*memory.Manager
	spy *spySessions
}

func (m *testManager) Sessions(dbx.DBTX) sessions.Repository { return m.spy }

type env struct {
	db    *sql.DB
	mock  sqlmock.Sqlmock
	rm    *testManager
	codec *auth.Codec
	creds *credentials.Manager
	reg   *SessionRegistry
	authn *Authenticator
	users *UserService
	todos *TodoService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mm := memory.NewManager()
	rm := &testManager{Manager: mm, spy: &spySessions{Sessions: mm.SessionsRepo}}

	creds, err := credentials.New(credentials.BcryptName, bcrypt.MinCost, 1, 8*1024, 4)
	require.NoError(t, err)

	codec := auth.NewCodec([]byte(testSecret), 0)
	reg := NewSessionRegistry(db, rm)
	authn := NewAuthenticator(db, rm, codec, creds, reg, logging.Nop{})

	return &env{
		db:    db,
		mock:  mock,
		rm:    rm,
		codec: codec,
		creds: creds,
		reg:   reg,
		authn: authn,
		users: NewUserService(db, rm, creds, authn, logging.Nop{}),
		todos: NewTodoService(db, rm, logging.Nop{}),
	}
}

// expectTx queues one committed transaction on the mock.
func (e *env) expectTx() {
	e.mock.ExpectBegin()
	e.mock.ExpectCommit()
}

func (e *env) register(t *testing.T, email, password string) *Principal {
	t.Helper()
	e.expectTx()
	p, err := e.users.Register(context.Background(), email, password)
	require.NoError(t, err)
	return p
}
