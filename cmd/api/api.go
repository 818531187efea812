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

	"github.com/Lu1zH3nriq/portalAdmin/docs"
	"github.com/Lu1zH3nriq/portalAdmin/internal/metrics"
	"github.com/Lu1zH3nriq/portalAdmin/internal/queue"
	"github.com/Lu1zH3nriq/portalAdmin/internal/ratelimiter"
	"github.com/Lu1zH3nriq/portalAdmin/internal/service"
	"github.com/Lu1zH3nriq/portalAdmin/internal/store/mongo"
	"github.com/Lu1zH3nriq/portalAdmin/internal/worker"
	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
)

type application struct {
	config       config
	logger       *zap.SugaredLogger
	rateLimiter  ratelimiter.Limiter
	storage      *mongo.Storage
	broker       queue.Broker
	redisClient  *redis.Client
	mesaService  *service.MesaService
	auditService *service.AuditService
	eventsWorker *worker.MesaEventsWorker
}

type config struct {
	addr        string
	env         string
	apiURL      string
	rateLimiter ratelimiter.Config
	mongo       mongoConfig
	rabbitMQ    rabbitMQConfig
	redis       redisConfig
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

type redisConfig struct {
	Addr     string
	Password string
	CacheTTL time.Duration
}

func (app *application) mount() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(metrics.Middleware)
	r.Use(app.rateLimiterMiddleware)

	r.Get("/health", app.healthCheckHandler)
	r.Get("/metrics", promhttp.Handler().ServeHTTP)

	// the /api paths are the contract with the webapp, keep them verbatim
	r.Route("/api", func(r chi.Router) {
		r.Get("/items", app.listMesasHandler)
		r.Post("/criarMesa", app.createMesaHandler)
		r.Put("/editarMesa/{id}", app.updateMesaHandler)
		r.Delete("/deleteMesa/{numero}", app.deleteMesaHandler)

		r.Put("/reservarMesa/{id}", app.reservarMesaHandler)
		r.Put("/cancelarReserva/{id}", app.cancelarReservaHandler)
		r.Put("/cancelarReserva", app.cancelarReservaHojeHandler)
		r.Put("/confirmarReserva/{id}", app.confirmarReservaHandler)
		r.Put("/ocuparMesa/{id}", app.ocuparMesaHandler)
		r.Put("/liberarMesa/{id}", app.liberarMesaHandler)
		r.Put("/moverMesa", app.moverMesaHandler)

		r.Get("/historicoMesa/{id}", app.historicoMesaHandler)
	})

	docsURL := fmt.Sprintf("%s/swagger/doc.json", app.config.addr)
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(docsURL)))

	return r
}

func (app *application) rateLimiterMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if app.config.rateLimiter.Enabled {
			if allow, retryAfter := app.rateLimiter.Allow(r.RemoteAddr); !allow {
				app.rateLimitExceededResponse(w, r, retryAfter.String())
				return
			}
		}

		next.ServeHTTP(w, r)
	})
}

func (app *application) run(mux http.Handler) error {
	// docs
	docs.SwaggerInfo.Title = "Portal Admin"
	docs.SwaggerInfo.Description = "API de administração de mesas"
	docs.SwaggerInfo.Version = "1.0"
	docs.SwaggerInfo.Host = app.config.apiURL
	docs.SwaggerInfo.BasePath = "/"

	metrics.RegisterCollectors(prometheus.DefaultRegisterer)

	if app.eventsWorker != nil {
		if err := app.eventsWorker.Start(); err != nil {
			return fmt.Errorf("failed to start events worker: %w", err)
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

		if app.eventsWorker != nil {
			app.eventsWorker.Stop()
		}

		if app.storage != nil {
			if err := app.storage.Close(ctx); err != nil {
				app.logger.Errorw("error closing MongoDB", "error", err)
			} else {
				app.logger.Info("MongoDB connection closed gracefully")
			}
		}

		if app.broker != nil {
			if err := app.broker.Close(); err != nil {
				app.logger.Errorw("error closing RabbitMQ", "error", err)
			} else {
				app.logger.Info("RabbitMQ connection closed gracefully")
			}
		}

		if app.redisClient != nil {
			if err := app.redisClient.Close(); err != nil {
				app.logger.Errorw("error closing Redis", "error", err)
			}
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
