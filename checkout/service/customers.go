package service

import (
	"context"
	"fmt"

	"github.com/rochabr/connect-parking-demo/checkout/domain"
)

const (
	defaultCustomerLimit = 50
	maxCustomerLimit     = 100
)

// ListCustomers returns up to limit platform customers in the reduced shape
// the frontend needs. A non-positive limit falls back to the default, and
// the limit is capped at 100.
func (s *CheckoutService) ListCustomers(ctx context.Context, limit int64) ([]domain.Customer, error) {
	if limit <= 0 {
		limit = defaultCustomerLimit
	}

	if limit > maxCustomerLimit {
		limit = maxCustomerLimit
	}

	customers, err := s.payments.ListCustomers(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrListCustomers, err)
	}

	simplified := make([]domain.Customer, 0, len(customers))

	for _, c := range customers {
		simplified = append(simplified, domain.Customer{
			ID:    c.ID,
			Name:  optional(c.Name),
			Email: optional(c.Email),
		})
	}

	return simplified, nil
}
