package iface

import (
	"context"

	"github.com/rochabr/connect-parking-demo/checkout/domain"
	"github.com/rochabr/connect-parking-demo/checkout/service"
)

//go:generate mockery --name CheckoutService --output ./mocks

type CheckoutService interface {
	ListCustomers(ctx context.Context, limit int64) ([]domain.Customer, error)
	ListAccounts(ctx context.Context) ([]domain.ConnectedAccount, error)
	ListSpotOptions(country, currency string) ([]domain.SpotQuote, error)
	CreateCheckoutSession(ctx context.Context, input service.CreateCheckoutSessionInput) (domain.CheckoutSessionDetails, error)
	GetCheckoutSession(ctx context.Context, sessionID string) (domain.CheckoutSessionStatus, error)
	CreateAccountSession(ctx context.Context, accountID string) (string, error)
}
