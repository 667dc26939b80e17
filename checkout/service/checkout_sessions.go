package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/stripe/stripe-go/v78"

	"github.com/rochabr/connect-parking-demo/checkout/domain"
	"github.com/rochabr/connect-parking-demo/checkout/pricing"
)

// CreateCheckoutSessionInput is the request to start an embedded checkout.
type CreateCheckoutSessionInput struct {
	CustomerID string `json:"customerId"`
	AccountID  string `json:"accountId"`
	SpotOption string `json:"spotOption"`
}

// CreateCheckoutSession validates the selection, prices the chosen spot for
// the account's country, and creates an embedded checkout session with the
// connected account as the destination of the charge. All validation happens
// before any session is created on the provider.
func (s *CheckoutService) CreateCheckoutSession(ctx context.Context, input CreateCheckoutSessionInput) (domain.CheckoutSessionDetails, error) {
	log := s.loggerProvider(ctx)

	if input.CustomerID == "" {
		return domain.CheckoutSessionDetails{}, ErrCustomerRequired
	}

	if input.AccountID == "" {
		return domain.CheckoutSessionDetails{}, ErrAccountRequired
	}

	optionKey := strings.ToLower(input.SpotOption)
	if optionKey == "" {
		optionKey = domain.SpotOptionStandard
	}

	option, ok := domain.SpotOptionByKey(optionKey)
	if !ok {
		return domain.CheckoutSessionDetails{}, fmt.Errorf("%w: valid options are %s",
			ErrInvalidSpotOption, strings.Join(domain.SpotOptionKeys(), ", "))
	}

	account, err := s.payments.GetAccount(ctx, input.AccountID)
	if err != nil {
		return domain.CheckoutSessionDetails{}, fmt.Errorf("%w: %s", ErrRetrieveAccount, err)
	}

	country := account.Country
	if !domain.CountryAllowed(country) {
		return domain.CheckoutSessionDetails{}, fmt.Errorf("%w: %s", ErrUnsupportedCountry, country)
	}

	currency := string(account.DefaultCurrency)
	if currency == "" {
		currency, _ = domain.CurrencyForCountry(country)
	}

	base, ok := option.BasePrices[currency]
	if !ok {
		return domain.CheckoutSessionDetails{}, fmt.Errorf("%w: %s in %s",
			ErrNoBasePrice, option.Label, strings.ToUpper(currency))
	}

	amount, err := pricing.Price(base, country)
	if err != nil {
		return domain.CheckoutSessionDetails{}, fmt.Errorf("%w: %s", ErrUnsupportedCountry, country)
	}

	params := &stripe.CheckoutSessionParams{
		UIMode:   stripe.String(string(stripe.CheckoutSessionUIModeEmbedded)),
		Mode:     stripe.String(string(stripe.CheckoutSessionModePayment)),
		Customer: stripe.String(input.CustomerID),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(currency),
					UnitAmount: stripe.Int64(amount),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name:        stripe.String("Parking pass • " + option.Label),
						Description: stripe.String(option.Description),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
		PaymentIntentData: &stripe.CheckoutSessionPaymentIntentDataParams{
			TransferData: &stripe.CheckoutSessionPaymentIntentDataTransferDataParams{
				Destination: stripe.String(input.AccountID),
			},
			OnBehalfOf: stripe.String(input.AccountID),
		},
		ReturnURL: stripe.String(s.clientOrigin + "/return.html?session_id={CHECKOUT_SESSION_ID}"),
	}

	session, err := s.payments.CreateCheckoutSession(ctx, params)
	if err != nil {
		if stripeErr, ok := err.(*stripe.Error); ok &&
			stripeErr.Code == stripe.ErrorCodeResourceMissing && stripeErr.Param == "customer" {
			return domain.CheckoutSessionDetails{}, fmt.Errorf("%w: %s", ErrCustomerNotFound, input.CustomerID)
		}

		return domain.CheckoutSessionDetails{}, fmt.Errorf("%w: %s", ErrCreateSession, err)
	}

	log.SetLabels(map[string]string{
		"accountId":  input.AccountID,
		"customerId": input.CustomerID,
		"sessionId":  session.ID,
	})
	log.Infof("created checkout session %s: %s %d %s for account %s",
		session.ID, optionKey, amount, currency, input.AccountID)

	return domain.CheckoutSessionDetails{
		ID:             session.ID,
		ClientSecret:   session.ClientSecret,
		Currency:       currency,
		AccountCountry: country,
		Option:         optionKey,
		Amount:         amount,
	}, nil
}

// GetCheckoutSession returns a read-only projection of the session's state,
// expanded with its payment intent and customer details.
func (s *CheckoutService) GetCheckoutSession(ctx context.Context, sessionID string) (domain.CheckoutSessionStatus, error) {
	if sessionID == "" {
		return domain.CheckoutSessionStatus{}, ErrSessionRequired
	}

	params := &stripe.CheckoutSessionParams{}
	params.AddExpand("payment_intent")
	params.AddExpand("customer")

	session, err := s.payments.GetCheckoutSession(ctx, sessionID, params)
	if err != nil {
		return domain.CheckoutSessionStatus{}, fmt.Errorf("%w: %s", ErrRetrieveSession, err)
	}

	status := domain.CheckoutSessionStatus{
		ID:            session.ID,
		Status:        string(session.Status),
		PaymentStatus: string(session.PaymentStatus),
		AmountTotal:   session.AmountTotal,
		Currency:      string(session.Currency),
		Created:       session.Created,
	}

	if session.Customer != nil {
		status.Customer.ID = session.Customer.ID
	}

	if session.CustomerDetails != nil {
		status.Customer.Email = optional(session.CustomerDetails.Email)
		status.Customer.Name = optional(session.CustomerDetails.Name)
	}

	if session.PaymentIntent != nil {
		status.PaymentIntent.ID = optional(session.PaymentIntent.ID)
		status.PaymentIntent.Status = optional(string(session.PaymentIntent.Status))
	}

	return status, nil
}
