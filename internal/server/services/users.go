package services

import (
	"context"
	"database/sql"
	"errors"
	"net/mail"
	"strings"

	"github.com/dmitrijs2005/todokeeper/internal/common"
	"github.com/dmitrijs2005/todokeeper/internal/dbx"
	"github.com/dmitrijs2005/todokeeper/internal/logging"
	"github.com/dmitrijs2005/todokeeper/internal/server/credentials"
	"github.com/dmitrijs2005/todokeeper/internal/server/models"
	"github.com/dmitrijs2005/todokeeper/internal/server/repositories/repomanager"
)

const (
	MinPasswordLength = 6
	maxEmailLength    = 254
)

// UserService manages accounts and their sessions.
type UserService struct {
	db          *sql.DB
	repomanager repomanager.RepositoryManager
	creds       *credentials.Manager
	authn       *Authenticator
	logger      logging.Logger
}

func NewUserService(db *sql.DB, m repomanager.RepositoryManager, creds *credentials.Manager,
	authn *Authenticator, l logging.Logger) *UserService {
	return &UserService{
		db:          db,
		repomanager: m,
		creds:       creds,
		authn:       authn,
		logger:      l.With("module", "user_service"),
	}
}

// Register creates an account and signs it in.
func (s *UserService) Register(ctx context.Context, email, password string) (*Principal, error) {
	email, err := normalizeEmail(email)
	if err != nil {
		return nil, err
	}
	if err := validatePassword(password); err != nil {
		return nil, err
	}

	user := &models.User{Email: email, Password: password}
	var token string

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.save(ctx, tx, user); err != nil {
			return err
		}
		var err error
		token, err = s.authn.startSession(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return nil, collapse(ctx, s.logger, "register", err)
	}

	s.logger.Info(ctx, "user registered", "user_id", user.ID, "email", user.Email)
	return &Principal{User: user, Token: token}, nil
}

// Me returns the principal's account.
func (s *UserService) Me(ctx context.Context, p *Principal) (*models.User, error) {
	if p == nil || p.User == nil {
		return nil, common.ErrorUnauthenticated
	}
	return p.User, nil
}

// Logout revokes the token the principal presented. Other sessions stay.
func (s *UserService) Logout(ctx context.Context, p *Principal) error {
	if err := s.authn.registry.RemoveOne(ctx, p.User.ID, p.Token); err != nil {
		return collapse(ctx, s.logger, "logout", err)
	}
	return nil
}

// LogoutAll revokes every token of the principal.
func (s *UserService) LogoutAll(ctx context.Context, p *Principal) error {
	if err := s.authn.registry.RemoveAll(ctx, p.User.ID); err != nil {
		return collapse(ctx, s.logger, "logout_all", err)
	}
	s.logger.Info(ctx, "all sessions revoked", "user_id", p.User.ID)
	return nil
}

// ChangePassword replaces the password after checking the current one,
// revokes every existing session and returns a fresh one. The hash update,
// the revocation and the new registration commit together.
func (s *UserService) ChangePassword(ctx context.Context, p *Principal, oldPassword, newPassword string) (*Principal, error) {
	if err := validatePassword(newPassword); err != nil {
		return nil, err
	}

	user, err := s.repomanager.Users(s.db).GetByID(ctx, p.User.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorUnauthenticated
		}
		return nil, collapse(ctx, s.logger, "change_password", err)
	}

	if !s.creds.Verify(ctx, oldPassword, user.PasswordHash) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return nil, common.ErrorInvalidCredentials
	}

	user.Password = newPassword
	var token string

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.save(ctx, tx, user); err != nil {
			return err
		}
		if err := s.authn.registry.In(tx).RemoveAll(ctx, user.ID); err != nil {
			return err
		}
		var err error
		token, err = s.authn.startSession(ctx, tx, user.ID)
		return err
	})
	if err != nil {
		return nil, collapse(ctx, s.logger, "change_password", err)
	}

	s.logger.Info(ctx, "password changed", "user_id", user.ID)
	return &Principal{User: user, Token: token}, nil
}

// DeleteAccount removes the principal's account after checking password.
// Sessions and todos go with it.
func (s *UserService) DeleteAccount(ctx context.Context, p *Principal, password string) error {
	user, err := s.repomanager.Users(s.db).GetByID(ctx, p.User.ID)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return common.ErrorUnauthenticated
		}
		return collapse(ctx, s.logger, "delete_account", err)
	}

	if !s.creds.Verify(ctx, password, user.PasswordHash) {
		if err := ctx.Err(); err != nil {
			return err
		}
		return common.ErrorInvalidCredentials
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := s.authn.registry.In(tx).RemoveAll(ctx, user.ID); err != nil {
			return err
		}
		return s.repomanager.Users(tx).Delete(ctx, user.ID)
	})
	if err != nil {
		return collapse(ctx, s.logger, "delete_account", err)
	}

	s.logger.Info(ctx, "account deleted", "user_id", user.ID)
	return nil
}

// save persists user through db. A non-empty Password is hashed into
// PasswordHash and cleared first; without one the stored hash is left alone.
// Users without an ID are created, others only get their hash updated.
func (s *UserService) save(ctx context.Context, db dbx.DBTX, user *models.User) error {
	rehashed := false
	if user.Password != "" {
		hash, err := s.creds.Hash(ctx, user.Password)
		user.Password = ""
		if err != nil {
			return err
		}
		user.PasswordHash = hash
		rehashed = true
	}

	repo := s.repomanager.Users(db)

	if user.ID == "" {
		if user.PasswordHash == "" {
			return common.ErrorInvalidInput
		}
		_, err := repo.Create(ctx, user)
		return err
	}

	if rehashed {
		return repo.UpdatePasswordHash(ctx, user.ID, user.PasswordHash)
	}
	return nil
}

// normalizeEmail trims email and requires a bare address such as
// "a@example.com"; display names and angle brackets are refused.
func normalizeEmail(email string) (string, error) {
	email = strings.TrimSpace(email)
	if email == "" || len(email) > maxEmailLength || !strings.Contains(email, "@") {
		return "", common.ErrorInvalidInput
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email || addr.Name != "" {
		return "", common.ErrorInvalidInput
	}
	return email, nil
}

func validatePassword(password string) error {
	if len(password) < MinPasswordLength || len(password) > credentials.MaxPasswordBytes {
		return common.ErrorInvalidInput
	}
	return nil
}
