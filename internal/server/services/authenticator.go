package services

import (
	"context"
	"errors"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/auth"
	"github.com/dmitrijs2005/todokeeper/internal/server/credentials"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
)

// Authenticator verifies bearer tokens and performs password login.
type Authenticator struct {
	db          dbx.DBTX
	repomanager repomanager.RepositoryManager
	codec       *auth.Codec
	creds       *credentials.Manager
	registry    *SessionRegistry
	logger      logging.Logger
}

func NewAuthenticator(db dbx.DBTX, m repomanager.RepositoryManager, codec *auth.Codec,
	creds *credentials.Manager, registry *SessionRegistry, l logging.Logger) *Authenticator {
	return &Authenticator{
		db:          db,
		repomanager: m,
		codec:       codec,
		creds:       creds,
		registry:    registry,
		logger:      l.With("module", "authenticator"),
	}
}

// Authenticate turns bearer into a principal. The checks run in order and
// every failure, whatever its cause, is common.ErrorUnauthenticated:
// blank bearer, undecodable token, unknown user, token not in the registry.
// Storage faults are not auth failures and come back as common.ErrorInternal.
func (a *Authenticator) Authenticate(ctx context.Context, bearer string) (*Principal, error) {
	token := strings.TrimSpace(bearer)
	if token == "" {
		return nil, common.ErrorUnauthenticated
	}

	claims, err := a.codec.Decode(token)
	if err != nil {
		a.logger.Warn(ctx, "token rejected", "reason", err)
		return nil, common.ErrorUnauthenticated
	}
	if claims.Access != common.AccessScopeAuth {
		a.logger.Warn(ctx, "token rejected", "reason", "scope", "access", claims.Access)
		return nil, common.ErrorUnauthenticated
	}

	user, err := a.repomanager.Users(a.db).GetByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.logger.Warn(ctx, "token rejected", "reason", "unknown user", "user_id", claims.UserID)
			return nil, common.ErrorUnauthenticated
		}
		return nil, collapse(ctx, a.logger, "authenticate", err)
	}

	ok, err := a.registry.Contains(ctx, user.ID, claims.Access, token)
	if err != nil {
		return nil, collapse(ctx, a.logger, "authenticate", err)
	}
	if !ok {
		a.logger.Warn(ctx, "token rejected", "reason", "revoked", "user_id", user.ID)
		return nil, common.ErrorUnauthenticated
	}

	return &Principal{User: user, Token: token}, nil
}

// Login checks email and password and starts a new session. An unknown email
// and a wrong password are indistinguishable, in result and in timing.
func (a *Authenticator) Login(ctx context.Context, email, password string) (*Principal, error) {
	email = strings.TrimSpace(email)

	user, err := a.repomanager.Users(a.db).GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			a.creds.VerifyAbsent(ctx, password)
			return nil, common.ErrorInvalidCredentials
		}
		return nil, collapse(ctx, a.logger, "login", err)
	}

	if !a.creds.Verify(ctx, password, user.PasswordHash) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, common.ErrorInvalidCredentials
	}

	token, err := a.startSession(ctx, a.db, user.ID)
	if err != nil {
		return nil, collapse(ctx, a.logger, "login", err)
	}

	a.logger.Info(ctx, "user logged in", "user_id", user.ID)
	return &Principal{User: user, Token: token}, nil
}

// startSession issues a token for userID and registers it through db, which
// may be a transaction.
func (a *Authenticator) startSession(ctx context.Context, db dbx.DBTX, userID string) (string, error) {
	token, err := a.codec.Issue(userID, common.AccessScopeAuth)
	if err != nil {
		return "", err
	}
	if err := a.registry.In(db).Add(ctx, userID, common.AccessScopeAuth, token); err != nil {
		return "", err
	}
	return token, nil
}
