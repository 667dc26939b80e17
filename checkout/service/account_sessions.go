package service

import (
	"context"
	"fmt"

	"github.com/stripe/stripe-go/v78"
)

// CreateAccountSession requests a short-lived session scoping the embedded
// payments management component to one connected account. The returned
// client secret is single-purpose; the frontend must request a new one per
// mount.
func (s *CheckoutService) CreateAccountSession(ctx context.Context, accountID string) (string, error) {
	if accountID == "" {
		return "", ErrAccountRequired
	}

	params := &stripe.AccountSessionParams{
		Account: stripe.String(accountID),
		Components: &stripe.AccountSessionComponentsParams{
			Payments: &stripe.AccountSessionComponentsPaymentsParams{
				Enabled: stripe.Bool(true),
				Features: &stripe.AccountSessionComponentsPaymentsFeaturesParams{
					RefundManagement:                      stripe.Bool(true),
					DisputeManagement:                     stripe.Bool(true),
					CapturePayments:                       stripe.Bool(true),
					DestinationOnBehalfOfChargeManagement: stripe.Bool(true),
				},
			},
		},
	}

	accountSession, err := s.payments.CreateAccountSession(ctx, params)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrCreateAccountSession, err)
	}

	return accountSession.ClientSecret, nil
}
