package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochabr/connect-parking-demo/framework/web"
	"github.com/rochabr/connect-parking-demo/checkout/service"
)

type createAccountSessionInput struct {
	AccountID string `json:"accountId"`
}

// CreateAccountSessionHandler creates an account session so the payments
// page can mount the embedded components for a connected account.
func (h *Checkout) CreateAccountSessionHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var input createAccountSessionInput

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	clientSecret, err := h.service.CreateAccountSession(ctx, input.AccountID)
	if err != nil {
		l.Errorf("create account session failed with error: %s", err)

		if errors.Is(err, service.ErrAccountRequired) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, gin.H{"client_secret": clientSecret}, http.StatusOK)
}
