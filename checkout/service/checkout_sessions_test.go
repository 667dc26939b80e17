package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v78"

	"github.com/rochabr/connect-parking-demo/checkout/dal/mocks"
)

func TestCreateCheckoutSessionValidatesBeforeUpstream(t *testing.T) {
	tests := []struct {
		name    string
		input   CreateCheckoutSessionInput
		wantErr error
	}{
		{
			name:    "missing customer id",
			input:   CreateCheckoutSessionInput{AccountID: "acct_1"},
			wantErr: ErrCustomerRequired,
		},
		{
			name:    "missing account id",
			input:   CreateCheckoutSessionInput{CustomerID: "cus_1"},
			wantErr: ErrAccountRequired,
		},
		{
			name: "unknown spot option",
			input: CreateCheckoutSessionInput{
				CustomerID: "cus_1",
				AccountID:  "acct_1",
				SpotOption: "premium",
			},
			wantErr: ErrInvalidSpotOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// No expectations set: any call to the provider fails the test.
			payments := mocks.NewPayments(t)
			s := newTestService(payments)

			_, err := s.CreateCheckoutSession(context.Background(), tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
			payments.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
			payments.AssertNotCalled(t, "GetAccount", mock.Anything, mock.Anything)
		})
	}
}

func TestCreateCheckoutSessionRejectsUnsupportedCountryBeforeCreate(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("GetAccount", context.Background(), "acct_de").
		Return(&stripe.Account{ID: "acct_de", Country: "DE"}, nil)

	s := newTestService(payments)

	_, err := s.CreateCheckoutSession(context.Background(), CreateCheckoutSessionInput{
		CustomerID: "cus_1",
		AccountID:  "acct_de",
		SpotOption: "standard",
	})

	assert.ErrorIs(t, err, ErrUnsupportedCountry)
	payments.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckoutSessionAppliesCountryPricing(t *testing.T) {
	tests := []struct {
		name         string
		country      string
		currency     stripe.Currency
		option       string
		wantAmount   int64
		wantCurrency string
	}{
		{name: "US standard unchanged", country: "US", currency: stripe.CurrencyUSD, option: "standard", wantAmount: 1500, wantCurrency: "usd"},
		{name: "CA covered multiplied and rounded", country: "CA", currency: stripe.CurrencyCAD, option: "covered", wantAmount: 2600, wantCurrency: "cad"},
		{name: "MX vip times twenty", country: "MX", currency: stripe.CurrencyMXN, option: "vip", wantAmount: 60000, wantCurrency: "mxn"},
		{name: "option key is case insensitive", country: "US", currency: stripe.CurrencyUSD, option: "VIP", wantAmount: 3000, wantCurrency: "usd"},
		{name: "empty option defaults to standard", country: "US", currency: stripe.CurrencyUSD, option: "", wantAmount: 1500, wantCurrency: "usd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payments := mocks.NewPayments(t)
			payments.On("GetAccount", context.Background(), "acct_1").
				Return(&stripe.Account{ID: "acct_1", Country: tt.country, DefaultCurrency: tt.currency}, nil)

			var captured *stripe.CheckoutSessionParams

			payments.On("CreateCheckoutSession", context.Background(), mock.AnythingOfType("*stripe.CheckoutSessionParams")).
				Run(func(args mock.Arguments) {
					captured = args.Get(1).(*stripe.CheckoutSessionParams)
				}).
				Return(&stripe.CheckoutSession{ID: "cs_1", ClientSecret: "secret_1"}, nil)

			s := newTestService(payments)

			details, err := s.CreateCheckoutSession(context.Background(), CreateCheckoutSessionInput{
				CustomerID: "cus_1",
				AccountID:  "acct_1",
				SpotOption: tt.option,
			})
			require.NoError(t, err)

			assert.Equal(t, "cs_1", details.ID)
			assert.Equal(t, "secret_1", details.ClientSecret)
			assert.Equal(t, tt.wantAmount, details.Amount)
			assert.Equal(t, tt.wantCurrency, details.Currency)
			assert.Equal(t, tt.country, details.AccountCountry)

			require.NotNil(t, captured)
			require.Len(t, captured.LineItems, 1)
			assert.Equal(t, tt.wantAmount, *captured.LineItems[0].PriceData.UnitAmount)
			assert.Equal(t, tt.wantCurrency, *captured.LineItems[0].PriceData.Currency)
			assert.Equal(t, "embedded", *captured.UIMode)
			assert.Equal(t, "payment", *captured.Mode)
			assert.Equal(t, "cus_1", *captured.Customer)
			assert.Equal(t, "acct_1", *captured.PaymentIntentData.TransferData.Destination)
			assert.Equal(t, "acct_1", *captured.PaymentIntentData.OnBehalfOf)
			assert.Equal(t, "http://localhost:4242/return.html?session_id={CHECKOUT_SESSION_ID}", *captured.ReturnURL)
		})
	}
}

func TestCreateCheckoutSessionFallsBackToCountryCurrency(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("GetAccount", context.Background(), "acct_1").
		Return(&stripe.Account{ID: "acct_1", Country: "MX"}, nil)
	payments.On("CreateCheckoutSession", context.Background(), mock.AnythingOfType("*stripe.CheckoutSessionParams")).
		Return(&stripe.CheckoutSession{ID: "cs_1", ClientSecret: "secret_1"}, nil)

	s := newTestService(payments)

	details, err := s.CreateCheckoutSession(context.Background(), CreateCheckoutSessionInput{
		CustomerID: "cus_1",
		AccountID:  "acct_1",
		SpotOption: "standard",
	})
	require.NoError(t, err)

	assert.Equal(t, "mxn", details.Currency)
	assert.Equal(t, int64(30000), details.Amount)
}

func TestCreateCheckoutSessionNoBasePriceForCurrency(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("GetAccount", context.Background(), "acct_1").
		Return(&stripe.Account{ID: "acct_1", Country: "US", DefaultCurrency: stripe.CurrencyEUR}, nil)

	s := newTestService(payments)

	_, err := s.CreateCheckoutSession(context.Background(), CreateCheckoutSessionInput{
		CustomerID: "cus_1",
		AccountID:  "acct_1",
		SpotOption: "standard",
	})

	assert.ErrorIs(t, err, ErrNoBasePrice)
	payments.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
}

func TestCreateCheckoutSessionMapsMissingCustomer(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("GetAccount", context.Background(), "acct_1").
		Return(&stripe.Account{ID: "acct_1", Country: "US", DefaultCurrency: stripe.CurrencyUSD}, nil)
	payments.On("CreateCheckoutSession", context.Background(), mock.AnythingOfType("*stripe.CheckoutSessionParams")).
		Return(nil, &stripe.Error{Code: stripe.ErrorCodeResourceMissing, Param: "customer"})

	s := newTestService(payments)

	_, err := s.CreateCheckoutSession(context.Background(), CreateCheckoutSessionInput{
		CustomerID: "cus_missing",
		AccountID:  "acct_1",
		SpotOption: "standard",
	})

	assert.ErrorIs(t, err, ErrCustomerNotFound)
}

func TestCreateCheckoutSessionWrapsProviderError(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("GetAccount", context.Background(), "acct_1").
		Return(&stripe.Account{ID: "acct_1", Country: "US", DefaultCurrency: stripe.CurrencyUSD}, nil)
	payments.On("CreateCheckoutSession", context.Background(), mock.AnythingOfType("*stripe.CheckoutSessionParams")).
		Return(nil, errors.New("provider down"))

	s := newTestService(payments)

	_, err := s.CreateCheckoutSession(context.Background(), CreateCheckoutSessionInput{
		CustomerID: "cus_1",
		AccountID:  "acct_1",
		SpotOption: "standard",
	})

	assert.ErrorIs(t, err, ErrCreateSession)
}

func TestGetCheckoutSessionProjectsProviderState(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("GetCheckoutSession", context.Background(), "cs_1", mock.AnythingOfType("*stripe.CheckoutSessionParams")).
		Run(func(args mock.Arguments) {
			params := args.Get(2).(*stripe.CheckoutSessionParams)
			assert.Contains(t, params.Expand, stripe.String("payment_intent"))
			assert.Contains(t, params.Expand, stripe.String("customer"))
		}).
		Return(&stripe.CheckoutSession{
			ID:            "cs_1",
			Status:        stripe.CheckoutSessionStatusComplete,
			PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
			AmountTotal:   1950,
			Currency:      stripe.CurrencyCAD,
			Created:       1700000000,
			Customer:      &stripe.Customer{ID: "cus_1"},
			CustomerDetails: &stripe.CheckoutSessionCustomerDetails{
				Email: "ana@example.com",
				Name:  "Ana",
			},
			PaymentIntent: &stripe.PaymentIntent{
				ID:     "pi_1",
				Status: stripe.PaymentIntentStatusSucceeded,
			},
		}, nil)

	s := newTestService(payments)

	status, err := s.GetCheckoutSession(context.Background(), "cs_1")
	require.NoError(t, err)

	assert.Equal(t, "cs_1", status.ID)
	assert.Equal(t, "complete", status.Status)
	assert.Equal(t, "paid", status.PaymentStatus)
	assert.Equal(t, int64(1950), status.AmountTotal)
	assert.Equal(t, "cad", status.Currency)
	assert.Equal(t, "cus_1", status.Customer.ID)
	require.NotNil(t, status.Customer.Email)
	assert.Equal(t, "ana@example.com", *status.Customer.Email)
	require.NotNil(t, status.PaymentIntent.ID)
	assert.Equal(t, "pi_1", *status.PaymentIntent.ID)
	require.NotNil(t, status.PaymentIntent.Status)
	assert.Equal(t, "succeeded", *status.PaymentIntent.Status)
	assert.Equal(t, int64(1700000000), status.Created)
}

func TestGetCheckoutSessionRequiresID(t *testing.T) {
	s := newTestService(mocks.NewPayments(t))

	_, err := s.GetCheckoutSession(context.Background(), "")
	assert.ErrorIs(t, err, ErrSessionRequired)
}

func TestGetCheckoutSessionWrapsProviderError(t *testing.T) {
	payments := mocks.NewPayments(t)
	payments.On("GetCheckoutSession", context.Background(), "cs_1", mock.AnythingOfType("*stripe.CheckoutSessionParams")).
		Return(nil, errors.New("no such session"))

	s := newTestService(payments)

	_, err := s.GetCheckoutSession(context.Background(), "cs_1")
	assert.ErrorIs(t, err, ErrRetrieveSession)
}
