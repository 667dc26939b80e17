package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rochabr/connect-parking-demo/framework/web"
	"github.com/rochabr/connect-parking-demo/logger"
	"github.com/rochabr/connect-parking-demo/checkout/dal"
	"github.com/rochabr/connect-parking-demo/checkout/iface"
	"github.com/rochabr/connect-parking-demo/checkout/service"
)

type Checkout struct {
	loggerProvider logger.Provider
	service        iface.CheckoutService
	publishableKey string
}

// NewCheckout creates new checkout package handlers
func NewCheckout(loggerProvider logger.Provider, secretKey, publishableKey, clientOrigin string) *Checkout {
	stripeClient, err := dal.NewStripeClient(secretKey)
	if err != nil {
		panic(err)
	}

	checkoutService := service.NewCheckoutService(loggerProvider, stripeClient, clientOrigin)

	return &Checkout{
		loggerProvider,
		checkoutService,
		publishableKey,
	}
}

func (h *Checkout) HealthHandler(ctx *gin.Context) error {
	return web.Respond(ctx, gin.H{"ok": true}, http.StatusOK)
}

// ConfigHandler exposes the publishable key the frontend needs to
// initialize the payment widgets.
func (h *Checkout) ConfigHandler(ctx *gin.Context) error {
	return web.Respond(ctx, gin.H{"publishableKey": h.publishableKey}, http.StatusOK)
}
