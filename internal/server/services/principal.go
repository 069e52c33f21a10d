package services

import (
	"context"

	"github.com/dmitrijs2005/todokeeper/internal/server/models"
)

// Principal is a verified identity together with the token it presented.
type Principal struct {
	User  *models.User
	Token string
}

type principalKey struct{}

// WithPrincipal returns ctx carrying p.
func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom returns the principal stored by WithPrincipal, if any.
func PrincipalFrom(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(*Principal)
	return p, ok && p != nil && p.User != nil
}
