package grpc

import (
	"context"
	"database/sql"
	"net"
	"testing"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/credentials"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/memory"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/test/bufconn"

	_ "modernc.org/sqlite"
)

type harness struct {
	srv    *GRPCServer
	repos  *memory.Manager
	reg    *prometheus.Registry
	client pb.TodoKeeperServiceClient
	conn   *grpc.ClientConn
}

// newHarness builds the full service stack on in-memory repositories. The
// sqlite handle only provides real BEGIN/COMMIT for the transactional paths.
func newHarness(t *testing.T) *harness {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	repos := memory.NewManager()
	creds, err := credentials.New(credentials.BcryptName, bcrypt.MinCost, 1, 8*1024, 4)
	require.NoError(t, err)
	codec := auth.NewCodec([]byte("grpc-test-secret"), 0)
	registry := services.NewSessionRegistry(db, repos)
	authn := services.NewAuthenticator(db, repos, codec, creds, registry, logging.Nop{})

	reg := prometheus.NewRegistry()
	srv := NewGRPCServer("bufconn", logging.Nop{},
		services.NewUserService(db, repos, creds, authn, logging.Nop{}),
		services.NewTodoService(db, repos, logging.Nop{}),
		authn, NewMetrics(reg))

	return &harness{srv: srv, repos: repos, reg: reg}
}

// dial starts srv on a bufconn listener and connects a client to it.
func (h *harness) dial(t *testing.T) pb.TodoKeeperServiceClient {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan error, 1)
	go func() { done <- h.srv.Serve(ctx, lis) }()

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	t.Cleanup(func() {
		conn.Close()
		cancel()
		<-done
	})

	h.conn = conn
	h.client = pb.NewTodoKeeperServiceClient(conn)
	return h.client
}

func withToken(ctx context.Context, token string) context.Context {
	return metadata.AppendToOutgoingContext(ctx, common.AccessTokenHeaderName, token)
}
