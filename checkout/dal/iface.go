package dal

import (
	"context"

	"github.com/stripe/stripe-go/v78"
)

//go:generate mockery --name Payments --output ./mocks

// Payments is the boundary to the Stripe API. Everything that leaves the
// process for the payments provider goes through here.
type Payments interface {
	ListCustomers(ctx context.Context, limit int64) ([]*stripe.Customer, error)
	ListAccounts(ctx context.Context, limit int64) ([]*stripe.Account, error)
	GetAccount(ctx context.Context, accountID string) (*stripe.Account, error)
	CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	GetCheckoutSession(ctx context.Context, sessionID string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	CreateAccountSession(ctx context.Context, params *stripe.AccountSessionParams) (*stripe.AccountSession, error)
}
