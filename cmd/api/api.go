package api

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rochabr/connect-parking-demo/config"
	"github.com/rochabr/connect-parking-demo/framework/mid"
	"github.com/rochabr/connect-parking-demo/framework/web"
	"github.com/rochabr/connect-parking-demo/logger"
	checkout "github.com/rochabr/connect-parking-demo/checkout/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	cfg      *config.Config
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, cfg *config.Config) *API {
	return &API{
		shutdown,
		logging,
		cfg,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	collector := mid.NewCollector(registry)

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, web.Options{
		ClientOrigin: a.cfg.ClientOrigin,
		SentryDSN:    a.cfg.SentryDSN,
	}, mid.Metrics(collector), mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	h := checkout.NewCheckout(loggerProvider, a.cfg.StripeSecretKey, a.cfg.StripePublishableKey, a.cfg.ClientOrigin)

	app.Get("/health", h.HealthHandler)
	app.Get("/config", h.ConfigHandler)
	app.Get("/metrics", metricsHandler(registry))

	apiGroup := web.NewGroup(app, "/api")
	{
		apiGroup.Get("/customers", h.ListCustomersHandler)
		apiGroup.Get("/accounts", h.ListAccountsHandler)
		apiGroup.Get("/spots", h.ListSpotOptionsHandler)

		checkoutGroup := apiGroup.NewSubgroup("/checkout")
		{
			checkoutGroup.Post("/session", h.CreateCheckoutSessionHandler)
			checkoutGroup.Get("/session/:id", h.GetCheckoutSessionHandler)
		}

		connectGroup := apiGroup.NewSubgroup("/connect")
		{
			connectGroup.Post("/account-session", h.CreateAccountSessionHandler)
		}
	}

	publicDir := os.Getenv("PUBLIC_DIR")
	if publicDir == "" {
		publicDir = "public"
	}

	app.StaticFile("/", filepath.Join(publicDir, "index.html"))

	for _, file := range []string{
		"app.js",
		"payments.html",
		"payments.js",
		"return.html",
		"return.js",
		"styles.css",
	} {
		app.StaticFile("/"+file, filepath.Join(publicDir, file))
	}

	return app
}

func metricsHandler(registry *prometheus.Registry) web.Handler {
	handler := promhttp.HandlerFor(registry, promhttp.HandlerOpts{})

	return func(ctx *gin.Context) error {
		handler.ServeHTTP(ctx.Writer, ctx.Request)
		return nil
	}
}
