package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochabr/connect-parking-demo/framework/web"
	"github.com/rochabr/connect-parking-demo/checkout/service"
)

// validationErrors are rejected before any session is created and map to a
// bad request instead of a provider failure.
var validationErrors = []error{
	service.ErrCustomerRequired,
	service.ErrAccountRequired,
	service.ErrInvalidSpotOption,
	service.ErrUnsupportedCountry,
	service.ErrNoBasePrice,
	service.ErrCustomerNotFound,
}

func isValidationError(err error) bool {
	for _, sentinel := range validationErrors {
		if errors.Is(err, sentinel) {
			return true
		}
	}

	return false
}

// CreateCheckoutSessionHandler creates an embedded checkout session for the
// selected customer, connected account and spot tier.
func (h *Checkout) CreateCheckoutSessionHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var input service.CreateCheckoutSessionInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	details, err := h.service.CreateCheckoutSession(ctx, input)
	if err != nil {
		l.Errorf("create checkout session failed with error: %s", err)

		if isValidationError(err) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, details, http.StatusOK)
}

// GetCheckoutSessionHandler returns the status projection the return page
// renders after the buyer completes or abandons checkout.
func (h *Checkout) GetCheckoutSessionHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	sessionID := ctx.Param("id")

	status, err := h.service.GetCheckoutSession(ctx, sessionID)
	if err != nil {
		l.Errorf("retrieve checkout session %s failed with error: %s", sessionID, err)
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	return web.Respond(ctx, status, http.StatusOK)
}
