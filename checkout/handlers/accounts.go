package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochabr/connect-parking-demo/framework/web"
)

// ListAccountsHandler returns the connected accounts that can receive
// parking pass payments.
func (h *Checkout) ListAccountsHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	accounts, err := h.service.ListAccounts(ctx)
	if err != nil {
		l.Errorf("list accounts failed with error: %s", err)
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, accounts, http.StatusOK)
}
