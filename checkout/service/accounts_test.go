package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"

	"github.com/rochabr/connect-parking-demo/checkout/dal/mocks"
)

func TestListAccountsFiltersDisallowedCountries(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("ListAccounts", context.Background(), int64(100)).
		Return([]*stripe.Account{
			{ID: "acct_us", Country: "US"},
			{ID: "acct_de", Country: "DE"},
			{ID: "acct_ca", Country: "CA"},
			{ID: "acct_br", Country: "BR"},
			{ID: "acct_mx", Country: "MX"},
		}, nil)

	s := newTestService(payments)

	accounts, err := s.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 3)

	for _, a := range accounts {
		assert.Contains(t, []string{"US", "CA", "MX"}, a.Country)
	}
}

func TestListAccountsDisplayNameFallbackChain(t *testing.T) {
	tests := []struct {
		name     string
		account  *stripe.Account
		expected string
	}{
		{
			name: "business profile name wins",
			account: &stripe.Account{
				ID:      "acct_1",
				Country: "US",
				Email:   "lot@example.com",
				BusinessProfile: &stripe.AccountBusinessProfile{
					Name: "Main Gate Parking",
				},
				Settings: &stripe.AccountSettings{
					Dashboard: &stripe.AccountSettingsDashboard{DisplayName: "main-gate"},
				},
			},
			expected: "Main Gate Parking",
		},
		{
			name: "dashboard display name second",
			account: &stripe.Account{
				ID:      "acct_2",
				Country: "CA",
				Email:   "lot@example.com",
				Settings: &stripe.AccountSettings{
					Dashboard: &stripe.AccountSettingsDashboard{DisplayName: "main-gate"},
				},
			},
			expected: "main-gate",
		},
		{
			name: "email third",
			account: &stripe.Account{
				ID:      "acct_3",
				Country: "MX",
				Email:   "lot@example.com",
			},
			expected: "lot@example.com",
		},
		{
			name:     "account id last",
			account:  &stripe.Account{ID: "acct_4", Country: "US"},
			expected: "acct_4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := mocks.NewPayments(t)
			payments.On("ListAccounts", context.Background(), int64(100)).
				Return([]*stripe.Account{tt.account}, nil)

			s := newTestService(payments)

			accounts, err := s.ListAccounts(context.Background())
			require.NoError(t, err)
			require.Len(t, accounts, 1)
			assert.Equal(t, tt.expected, accounts[0].Name)
		})
	}
}

func TestListAccountsMapsCurrencyAndCapabilities(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("ListAccounts", context.Background(), int64(100)).
		Return([]*stripe.Account{
			{
				ID:              "acct_1",
				Country:         "CA",
				DefaultCurrency: stripe.CurrencyCAD,
				Capabilities: &stripe.AccountCapabilities{
					CardPayments: stripe.AccountCapabilityStatusActive,
					Transfers:    stripe.AccountCapabilityStatusActive,
				},
			},
		}, nil)

	s := newTestService(payments)

	accounts, err := s.ListAccounts(context.Background())
	require.NoError(t, err)
	require.Len(t, accounts, 1)

	require.NotNil(t, accounts[0].DefaultCurrency)
	assert.Equal(t, "cad", *accounts[0].DefaultCurrency)
	assert.Equal(t, "active", accounts[0].Capabilities["card_payments"])
	assert.Equal(t, "active", accounts[0].Capabilities["transfers"])
}

func TestListAccountsWrapsProviderError(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("ListAccounts", context.Background(), int64(100)).
		Return(nil, errors.New("provider down"))

	s := newTestService(payments)

	_, err := s.ListAccounts(context.Background())
	assert.ErrorIs(t, err, ErrListAccounts)
}
