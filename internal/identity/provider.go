// Package identity defines the identity provider collaborator: the single
// source of truth for login credentials. The rest of the system treats it as
// opaque and only ever sees identity IDs.
package identity

import "context"

type Identity struct {
	ID    string
	Email string
}

type Provider interface {
	// CreateIdentity registers a new identity for email, storing a one-way
	// hash of password. Returns domain.ErrEmailTaken if the email is
	// already registered.
	CreateIdentity(ctx context.Context, email, password string) (*Identity, error)

	// VerifyPassword checks email/password against the stored credential.
	// Unknown email and wrong password are indistinguishable to callers:
	// both return domain.ErrInvalidCredentials.
	VerifyPassword(ctx context.Context, email, password string) (*Identity, error)
}
