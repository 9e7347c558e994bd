// Package remote defines the per-account remote store the sync coordinator
// pushes to, plus its DynamoDB implementation.
package remote

import (
	"context"

	"github.com/maozinhaws/pintor-pro/internal/model"
)

// Store is the narrow surface sync needs from a remote backend. Every call
// is scoped to an account; implementations must never mix data across
// accounts.
type Store interface {
	// PushQuote upserts a quote under the account and returns the remote
	// document id. Pushing the same quote twice must not duplicate it.
	PushQuote(ctx context.Context, accountID string, o *model.Orcamento) (string, error)

	// ListQuotes returns all quotes stored under the account, newest first.
	ListQuotes(ctx context.Context, accountID string) ([]*model.Orcamento, error)

	// PushClient stores a client under the account. Create-only: an already
	// existing client with the same id is left untouched.
	PushClient(ctx context.Context, accountID string, c *model.Cliente) (string, error)

	// PushConfig upserts the company profile for the account.
	PushConfig(ctx context.Context, accountID string, cfg *model.ConfigEmpresa) error

	// GetConfig fetches the company profile. The bool reports whether one
	// exists remotely.
	GetConfig(ctx context.Context, accountID string) (*model.ConfigEmpresa, bool, error)
}
