package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Beka01247/menu-order/docs"
	"github.com/Beka01247/menu-order/internal/catalog"
	"github.com/Beka01247/menu-order/internal/metrics"
	"github.com/Beka01247/menu-order/internal/queue"
	"github.com/Beka01247/menu-order/internal/ratelimiter"
	"github.com/Beka01247/menu-order/internal/repo"
	"github.com/Beka01247/menu-order/internal/service"
	"github.com/Beka01247/menu-order/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config              config
	logger              *zap.SugaredLogger
	rateLimiter         ratelimiter.Limiter
	storage             repo.Storage
	broker              queue.Broker
	catalog             *catalog.Store
	catalogLoader       catalog.Loader
	sessionService      *service.SessionService
	cartService         *service.CartService
	orderService        *service.OrderService
	profileService      *service.ProfileService
	importService       *service.ImportService
	orderStatusWorker   *worker.OrderStatusWorker
	catalogImportWorker *worker.CatalogImportWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	catalog     catalogConfig
	googleCreds string
}

type mongoConfig struct {
	URI      string
	Database string
	Timeout  time.Duration
}

type rabbitMQConfig struct {
	URL           string
	MaxRetries    int
	RetryDelay    time.Duration
	PrefetchCount int
}

type catalogConfig struct {
	Source        string
	SpreadsheetID string
	LoadDelay     time.Duration
	LoadTimeout   time.Duration
}

const (
	catalogSourceSample = "sample"
	catalogSourceMongo  = "mongo"
	catalogSourceSheets = "sheets"
)

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(app.MetricsMiddleware)

	r.Handle("/metrics", metrics.Handler())

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(app.RateLimiterMiddleware)

		r.Get("/health", app.healthCheckHandler)

		r.Route("/menu", func(r chi.Router) {
			r.Get("/", app.getMenuHandler)
			r.Get("/categories", app.getCategoriesHandler)
			r.Get("/{item_id}", app.getMenuItemHandler)
		})

		r.Post("/sessions", app.createSessionHandler)
		r.Route("/sessions/{session_id}", func(r chi.Router) {
			r.Route("/cart", func(r chi.Router) {
				r.Get("/", app.getCartHandler)
				r.Delete("/", app.clearCartHandler)
				r.Post("/items", app.addCartItemHandler)
				r.Patch("/items/{line_id}", app.updateCartItemHandler)
				r.Delete("/items/{line_id}", app.removeCartItemHandler)
				r.Put("/address", app.setDeliveryAddressHandler)
				r.Put("/payment", app.setPaymentMethodHandler)
				r.Put("/details", app.setCartDetailsHandler)
				r.Post("/checkout", app.checkoutHandler)
			})

			r.Route("/orders", func(r chi.Router) {
				r.Get("/", app.listOrdersHandler)
				r.Patch("/{order_number}/status", app.updateOrderStatusHandler)
				r.Get("/{order_number}/audit", app.getOrderAuditHandler)
			})

			r.Route("/profile", func(r chi.Router) {
				r.Get("/", app.getProfileHandler)
				r.Put("/", app.updateProfileHandler)
				r.Patch("/preferences", app.updatePreferencesHandler)
				r.Post("/favorites/{item_id}", app.addFavoriteHandler)
				r.Delete("/favorites/{item_id}", app.removeFavoriteHandler)
				r.Post("/addresses", app.saveAddressHandler)
				r.Delete("/addresses", app.removeAddressHandler)
				r.Get("/history", app.getHistoryHandler)
				r.Post("/logout", app.logoutHandler)
			})
		})

		r.Post("/catalog/import", app.createImportTaskHandler)
		r.Get("/catalog/import/{task_id}", app.getImportTaskHandler)

		docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
		r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))
	})

	return r
}

// loadCatalog fills the store in the background; until it finishes the menu
// endpoints answer 503.
func (app *application) loadCatalog(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, app.config.catalog.LoadTimeout)
	defer cancel()

	if err := app.catalog.Load(ctx, app.catalogLoader); err != nil {
		app.logger.Errorw("failed to load catalog", "source", app.config.catalog.Source, "error", err)
		return
	}

	count := len(app.catalog.Items())
	metrics.SetCatalogItems(count)
	app.logger.Infow("catalog loaded", "source", app.config.catalog.Source, "item_count", count)
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Menu Order"
	docs.SwaggerInfo.Description = "API for browsing the menu, managing a cart and tracking orders"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/api/v1"

	ctx, stopLoading := context.WithCancel(context.Background())
	defer stopLoading()
	go app.loadCatalog(ctx)

	if limiter, ok := app.rateLimiter.(*ratelimiter.TokenBucketLimiter); ok && app.config.rateLimiter.Enabled {
		go limiter.RunCleanup(ctx, app.config.rateLimiter.TimeFrame)
	}

	// workers
	if app.orderStatusWorker != nil {
		if err := app.orderStatusWorker.Start(); err != nil {
			return fmt.Errorf("failed to start order status worker: %w", err)
		}
	}
	if app.catalogImportWorker != nil {
		if err := app.catalogImportWorker.Start(); err != nil {
			return fmt.Errorf("failed to start catalog import worker: %w", err)
		}
	}

	srv := &http.Server{
		Addr:         app.config.addr,
		Handler:      mux,
		WriteTimeout: time.Second * 30,
		ReadTimeout:  time.Second * 10,
		IdleTimeout:  time.Minute,
	}

	shutdown := make(chan error)

	go func() {
		quit := make(chan os.Signal, 1)

		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		s := <-quit

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		app.logger.Infow("signal caught", "signal", s.String())

		stopLoading()

		if app.orderStatusWorker != nil {
			app.orderStatusWorker.Stop()
		}
		if app.catalogImportWorker != nil {
			app.catalogImportWorker.Stop()
		}

		if err := app.storage.Close(ctx); err != nil {
			app.logger.Errorw("error closing storage", "error", err)
		} else {
			app.logger.Info("storage closed gracefully")
		}

		if err := app.broker.Close(); err != nil {
			app.logger.Errorw("error closing broker", "error", err)
		} else {
			app.logger.Info("broker closed gracefully")
		}

		shutdown <- srv.Shutdown(ctx)
	}()

	app.logger.Infow("server have started", "addr", app.config.addr, "env", app.config.env)

	err := srv.ListenAndServe()
	if !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	err = <-shutdown
	if err != nil {
		return err
	}

	app.logger.Infow("server has stopped", "addr", app.config.addr, "env", app.config.env)

	return nil
}
