package domain

// CheckoutSessionDetails is returned to the client after creating an
// embedded checkout session. The client secret is what mounts the widget.
type CheckoutSessionDetails struct {
	ID             string `json:"id"`
	ClientSecret   string `json:"client_secret"`
	Currency       string `json:"currency"`
	AccountCountry string `json:"account_country"`
	Option         string `json:"option"`
	Amount         int64  `json:"amount"`
}

// SessionCustomer is the customer slice of a session status projection.
type SessionCustomer struct {
	ID    string  `json:"id"`
	Email *string `json:"email"`
	Name  *string `json:"name"`
}

// SessionPaymentIntent is the payment intent slice of a session status
// projection.
type SessionPaymentIntent struct {
	ID     *string `json:"id"`
	Status *string `json:"status"`
}

// CheckoutSessionStatus is a read-only projection of provider session state,
// used by the post-checkout return page.
type CheckoutSessionStatus struct {
	ID            string               `json:"id"`
	Status        string               `json:"status"`
	PaymentStatus string               `json:"payment_status"`
	AmountTotal   int64                `json:"amount_total"`
	Currency      string               `json:"currency"`
	Customer      SessionCustomer      `json:"customer"`
	PaymentIntent SessionPaymentIntent `json:"payment_intent"`
	Created       int64                `json:"created"`
}
