package grpc

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	pb "github.com/dmitrijs2005/todokeeper/internal/proto"
	"github.com/dmitrijs2005/todokeeper/internal/server/services"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/metadata"
)

// publicMethods are served without a bearer token.
var publicMethods = map[string]bool{
	pb.TodoKeeperService_Register_FullMethodName: true,
	pb.TodoKeeperService_Login_FullMethodName:    true,
	pb.TodoKeeperService_Ping_FullMethodName:     true,
	grpc_health_v1.Health_Check_FullMethodName:   true,
	grpc_health_v1.Health_Watch_FullMethodName:   true,
}

func bearerFromContext(ctx context.Context) string {
	md, ok := metadata.FromIncomingContext(ctx)
	if !ok {
		return ""
	}
	values := md.Get(common.AccessTokenHeaderName)
	if len(values) == 0 {
		return ""
	}
	return values[0]
}

// accessTokenInterceptor resolves the principal of every non-public call and
// stores it in the context handed to the handler.
func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	p, err := s.authn.Authenticate(ctx, bearerFromContext(ctx))
	if err != nil {
		if s.metrics != nil {
			s.metrics.authFailed(info.FullMethod)
		}
		s.logger.Debug(ctx, "request rejected", "method", info.FullMethod, "error", err)
		return nil, toStatus(err)
	}

	return handler(services.WithPrincipal(ctx, p), req)
}

// principal returns the caller resolved by accessTokenInterceptor.
func principal(ctx context.Context) (*services.Principal, error) {
	p, ok := services.PrincipalFrom(ctx)
	if !ok {
		return nil, toStatus(common.ErrorUnauthenticated)
	}
	return p, nil
}
