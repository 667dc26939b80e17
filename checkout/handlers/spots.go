package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochabr/connect-parking-demo/framework/web"
	"github.com/rochabr/connect-parking-demo/checkout/service"
)

// ListSpotOptionsHandler returns the spot catalog. With country and currency
// query params each tier carries the amount checkout would charge.
func (h *Checkout) ListSpotOptionsHandler(ctx *gin.Context) error {
	country := ctx.Query("country")
	currency := ctx.Query("currency")

	quotes, err := h.service.ListSpotOptions(country, currency)
	if err != nil {
		if errors.Is(err, service.ErrUnsupportedCountry) {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, quotes, http.StatusOK)
}
