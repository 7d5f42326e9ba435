package client

import (
	"context"

	"github.com/dmitrijs2005/storefront/internal/client/models"
)

// Client is the contract of the upstream auth/profile service.
type Client interface {
	// Login exchanges credentials for an opaque token.
	Login(ctx context.Context, username string, password []byte) (string, error)
	// GetUser fetches the profile with the given id.
	GetUser(ctx context.Context, id int) (*models.User, error)
	// SetToken sets the bearer token attached to later requests; "" clears it.
	SetToken(token string)
	Ping(ctx context.Context) error
	Close() error
}
