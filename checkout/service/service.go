package service

import (
	"github.com/rochabr/connect-parking-demo/checkout/dal"
	"github.com/rochabr/connect-parking-demo/logger"
)

// CheckoutService implements the marketplace checkout flows on top of the
// payments DAL. It holds no mutable state; every request is independent.
type CheckoutService struct {
	loggerProvider logger.Provider
	payments       dal.Payments

	// clientOrigin is the base for the post-checkout return URL.
	clientOrigin string
}

func NewCheckoutService(loggerProvider logger.Provider, payments dal.Payments, clientOrigin string) *CheckoutService {
	return &CheckoutService{
		loggerProvider: loggerProvider,
		payments:       payments,
		clientOrigin:   clientOrigin,
	}
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
