// Package identity wraps the external account provider that owns user
// credentials. The backend never stores or verifies passwords itself.
package identity

import (
	"context"

	"bookclub/internal/models"
)

// Provider is the contract the auth service depends on.
type Provider interface {
	// CreateUser registers a new account with the provider.
	CreateUser(ctx context.Context, email, password string) (*models.Account, error)
	// CustomToken mints a provider-side token for client SDK sign-in. The
	// backend only checks that the call succeeds; the token itself is
	// returned to keep the contract complete.
	CustomToken(ctx context.Context, email string) (string, error)
}
