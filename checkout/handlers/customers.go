package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rochabr/connect-parking-demo/framework/web"
)

// ListCustomersHandler returns test customers for the payer picker.
func (h *Checkout) ListCustomersHandler(ctx *gin.Context) error {
	l := h.loggerProvider(ctx)

	var limit int64

	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		limit = parsed
	}

	customers, err := h.service.ListCustomers(ctx, limit)
	if err != nil {
		l.Errorf("list customers failed with error: %s", err)
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, customers, http.StatusOK)
}
