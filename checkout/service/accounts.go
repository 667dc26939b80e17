package service

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v78"

	"github.com/rochabr/connect-parking-demo/checkout/domain"
)

const accountListLimit = 100

// ListAccounts returns the connected accounts the platform can sell for,
// filtered to the allowed countries. Accounts from any other country are
// dropped even when the provider returns them.
func (s *CheckoutService) ListAccounts(ctx context.Context) ([]domain.ConnectedAccount, error) {
	accounts, err := s.payments.ListAccounts(ctx, accountListLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrListAccounts, err)
	}

	filtered := make([]domain.ConnectedAccount, 0, len(accounts))

	for _, a := range accounts {
		if !domain.CountryAllowed(a.Country) {
			continue
		}

		filtered = append(filtered, domain.ConnectedAccount{
			ID:              a.ID,
			Name:            displayName(a),
			Country:         a.Country,
			DefaultCurrency: optional(string(a.DefaultCurrency)),
			Capabilities:    capabilities(a),
		})
	}

	return filtered, nil
}

// displayName resolves the account display name. Resolution order:
// business profile name, dashboard display name, account email, account id.
func displayName(a *stripe.Account) string {
	if a.BusinessProfile != nil && a.BusinessProfile.Name != "" {
		return a.BusinessProfile.Name
	}

	if a.Settings != nil && a.Settings.Dashboard != nil && a.Settings.Dashboard.DisplayName != "" {
		return a.Settings.Dashboard.DisplayName
	}

	if a.Email != "" {
		return a.Email
	}

	return a.ID
}

func capabilities(a *stripe.Account) map[string]string {
	caps := make(map[string]string)

	if a.Capabilities == nil {
		return caps
	}

	if a.Capabilities.CardPayments != "" {
		caps["card_payments"] = string(a.Capabilities.CardPayments)
	}

	if a.Capabilities.Transfers != "" {
		caps["transfers"] = string(a.Capabilities.Transfers)
	}

	return caps
}
