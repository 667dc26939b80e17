package dal

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v78"
	"github.com/stripe/stripe-go/v78/client"
)

var ErrMissingAPIKey = errors.New("stripe api key is empty")

// Client implements Payments on top of the Stripe SDK.
type Client struct {
	*client.API
}

// NewStripeClient initializes a Stripe client with the given secret key.
func NewStripeClient(apiKey string) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	var stripeClient client.API

	stripeClient.Init(apiKey, nil)

	return &Client{&stripeClient}, nil
}

func (c *Client) ListCustomers(ctx context.Context, limit int64) ([]*stripe.Customer, error) {
	params := &stripe.CustomerListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(limit)

	var customers []*stripe.Customer

	iter := c.Customers.List(params)
	for iter.Next() {
		customers = append(customers, iter.Customer())
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return customers, nil
}

func (c *Client) ListAccounts(ctx context.Context, limit int64) ([]*stripe.Account, error) {
	params := &stripe.AccountListParams{}
	params.Context = ctx
	params.Limit = stripe.Int64(limit)

	var accounts []*stripe.Account

	iter := c.Accounts.List(params)
	for iter.Next() {
		accounts = append(accounts, iter.Account())
	}

	if err := iter.Err(); err != nil {
		return nil, err
	}

	return accounts, nil
}

func (c *Client) GetAccount(ctx context.Context, accountID string) (*stripe.Account, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	return c.Accounts.GetByID(accountID, params)
}

func (c *Client) CreateCheckoutSession(ctx context.Context, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	params.Context = ctx

	return c.CheckoutSessions.New(params)
}

func (c *Client) GetCheckoutSession(ctx context.Context, sessionID string, params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	if params == nil {
		params = &stripe.CheckoutSessionParams{}
	}

	params.Context = ctx

	return c.CheckoutSessions.Get(sessionID, params)
}

func (c *Client) CreateAccountSession(ctx context.Context, params *stripe.AccountSessionParams) (*stripe.AccountSession, error) {
	params.Context = ctx

	return c.AccountSessions.New(params)
}
