// Package sessions stores the per-user set of currently valid tokens.
//
// Each mutation is a single SQL statement, so concurrent Add and Remove
// calls for the same user never lose each other's effect.
package sessions

import "context"

type Repository interface {
	// Add records token as valid for userID under scope. Duplicates are kept.
	Add(ctx context.Context, userID, access, token string) error
	// Contains reports whether token is registered for userID under scope.
	Contains(ctx context.Context, userID, access, token string) (bool, error)
	// RemoveOne deletes every registration of token for userID. Removing an
	// absent token is not an error.
	RemoveOne(ctx context.Context, userID, token string) error
	// RemoveAll deletes every token of userID.
	RemoveAll(ctx context.Context, userID string) error
}
