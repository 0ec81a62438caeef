package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"todo/config"
	_ "todo/docs" // swagger docs
	"todo/infras/kafka"
	"todo/infras/mongo"
	"todo/infras/otel"
	"todo/shared/constant"
	"todo/transport/http/response"
	"todo/transport/http/router"
)

type ServerState int32

const (
	ServerStateReady ServerState = iota + 1
	ServerStateInGracePeriod
	ServerStateInCleanupPeriod
)

const (
	readHeaderTimeout = 10 * time.Second
	healthPath        = "/health"
	swaggerPath       = "/swagger/*"
	swaggerDocURL     = "/swagger/doc.json"
)

type HTTP struct {
	Config *config.Config
	Router router.Router

	otel  otel.Otel
	mongo *mongo.Connection
	kafka kafka.Client

	state     atomic.Int32
	setupOnce sync.Once
	handler   http.Handler
	server    *http.Server
	done      chan struct{}
}

func New(cfg *config.Config, r router.Router, otel otel.Otel, mongo *mongo.Connection, kafka kafka.Client) *HTTP {
	return &HTTP{
		Config: cfg,
		Router: r,
		otel:   otel,
		mongo:  mongo,
		kafka:  kafka,
		done:   make(chan struct{}),
	}
}

// Serve blocks until the server has shut down after SIGINT or SIGTERM.
func (h *HTTP) Serve() {
	h.setup()

	h.server = &http.Server{
		Addr:              net.JoinHostPort(h.Config.Server.Host, h.Config.Server.Port),
		Handler:           h.handler,
		ReadHeaderTimeout: readHeaderTimeout,
	}

	h.setupGracefulShutdown()

	log.Info().Str("port", h.Config.Server.Port).Msg("Starting up HTTP server.")

	if err := h.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatal().Err(err).Msg("Failed to start HTTP server")
	}

	<-h.done
}

func (h *HTTP) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.setup()
	h.handler.ServeHTTP(w, r)
}

func (h *HTTP) State() ServerState {
	return ServerState(h.state.Load())
}

func (h *HTTP) SetState(state ServerState) {
	h.state.Store(int32(state))
}

func (h *HTTP) setup() {
	h.setupOnce.Do(func() {
		h.setupRoutes()
		h.SetState(ServerStateReady)
	})
}

func (h *HTTP) setupRoutes() {
	mux := chi.NewRouter()
	mux.Use(chiMiddleware.Recoverer)

	if corsConfig := h.Config.App.CORS; corsConfig.Enable {
		mux.Use(cors.Handler(cors.Options{
			AllowedOrigins:   corsConfig.AllowedOrigins,
			AllowedMethods:   corsConfig.AllowedMethods,
			AllowedHeaders:   corsConfig.AllowedHeaders,
			ExposedHeaders:   []string{constant.RequestHeaderRequestID},
			AllowCredentials: corsConfig.AllowCredentials,
			MaxAge:           corsConfig.MaxAgeSeconds,
		}))
	}

	mux.Get(healthPath, h.health)
	mux.Get(swaggerPath, httpSwagger.Handler(httpSwagger.URL(swaggerDocURL)))

	h.Router.SetupRoutes(mux)

	h.handler = mux
}

func (h *HTTP) health(w http.ResponseWriter, _ *http.Request) {
	if h.State() != ServerStateReady {
		response.WithPreparingShutdown(w)

		return
	}

	response.WithMessage(w, http.StatusOK, constant.ResponseMessageHealthy)
}

func (h *HTTP) setupGracefulShutdown() {
	serverStateCh := make(chan os.Signal, 1)

	signal.Notify(serverStateCh, os.Interrupt, syscall.SIGTERM)

	go h.respondToSigterm(serverStateCh)
}

func (h *HTTP) respondToSigterm(done chan os.Signal) {
	<-done

	defer close(h.done)

	shutdownConfig := h.Config.Server.Shutdown
	cleanup := time.Duration(shutdownConfig.CleanupPeriodSeconds) * time.Second

	if h.Config.Server.Env == constant.ServerEnvDevelopment {
		log.Warn().Msg("Received SIGTERM. Shutting down now.")

		h.shutdown(cleanup)

		return
	}

	log.Info().Msg("Received SIGTERM.")
	log.Info().Int64("seconds", shutdownConfig.GracePeriodSeconds).Msg("Entering grace period.")

	h.SetState(ServerStateInGracePeriod)

	time.Sleep(time.Duration(shutdownConfig.GracePeriodSeconds) * time.Second)

	log.Info().Int64("seconds", shutdownConfig.CleanupPeriodSeconds).Msg("Entering cleanup period.")

	h.SetState(ServerStateInCleanupPeriod)

	h.shutdown(cleanup)

	log.Info().Msg("Cleaning up completed. Shutting down now.")
}

// shutdown drains in-flight requests, then releases the backing services.
func (h *HTTP) shutdown(timeout time.Duration) {
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := h.server.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down HTTP server")
	}

	if err := h.kafka.Close(); err != nil {
		log.Error().Err(err).Msg("Failed to close Kafka client")
	}

	if err := h.mongo.Close(timeout); err != nil {
		log.Error().Err(err).Msg("Failed to disconnect from MongoDB")
	}

	if err := h.otel.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to shut down tracer provider")
	}
}
