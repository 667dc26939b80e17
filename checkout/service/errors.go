package service

import (
	"errors"
)

var (
	ErrCustomerRequired     = errors.New("customerId is required")
	ErrAccountRequired      = errors.New("accountId is required")
	ErrSessionRequired      = errors.New("session id is required")
	ErrInvalidSpotOption    = errors.New("invalid spot option")
	ErrUnsupportedCountry   = errors.New("selected connected account is not in US/CA/MX")
	ErrNoBasePrice          = errors.New("no base price for spot option in account currency")
	ErrCustomerNotFound     = errors.New("customer not found")
	ErrListCustomers        = errors.New("failed to list customers")
	ErrListAccounts         = errors.New("failed to list connected accounts")
	ErrRetrieveAccount      = errors.New("failed to retrieve connected account")
	ErrCreateSession        = errors.New("failed to create checkout session")
	ErrRetrieveSession      = errors.New("failed to fetch checkout session")
	ErrCreateAccountSession = errors.New("failed to create account session")
)
