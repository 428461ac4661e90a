package restserver

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
	"github.com/tobyhogan/seasons-viewer-tool/pkg/config"
	"go.uber.org/zap"
)

// Controller represents the REST server controller
type Controller struct {
	ctx            context.Context
	wg             *sync.WaitGroup
	configProvider config.ConfigProvider
	serverConfig   config.ServerData
	location       config.LocationData
	Server         http.Server
	Sessions       *session.Manager
	logger         *zap.SugaredLogger
	handlers       *Handlers
}

// NewController creates a new REST server controller
func NewController(ctx context.Context, wg *sync.WaitGroup, configProvider config.ConfigProvider, sessions *session.Manager, logger *zap.SugaredLogger) (*Controller, error) {
	ctrl := &Controller{
		ctx:            ctx,
		wg:             wg,
		configProvider: configProvider,
		Sessions:       sessions,
		logger:         logger,
	}

	sc, err := configProvider.GetServer()
	if err != nil {
		return nil, fmt.Errorf("error loading server configuration: %w", err)
	}
	ctrl.serverConfig = *sc

	loc, err := configProvider.GetLocation()
	if err != nil {
		return nil, fmt.Errorf("error loading location: %w", err)
	}
	ctrl.location = *loc

	if ctrl.serverConfig.Port == 0 {
		logger.Infof("server.port not provided; defaulting to %d", config.DefaultPort)
		ctrl.serverConfig.Port = config.DefaultPort
	}

	ctrl.handlers = NewHandlers(ctrl)

	ctrl.Server.Addr = ctrl.serverConfig.Addr()
	ctrl.Server.Handler = ctrl.setupRouter()
	ctrl.Server.ReadHeaderTimeout = 10 * time.Second

	return ctrl, nil
}

// StartController starts the REST server
func (c *Controller) StartController() error {
	log.Infof("Starting REST server on %s", c.Server.Addr)
	c.wg.Add(1)

	go func() {
		defer c.wg.Done()

		if c.serverConfig.Cert != "" && c.serverConfig.Key != "" {
			if err := c.Server.ListenAndServeTLS(c.serverConfig.Cert, c.serverConfig.Key); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		} else {
			if err := c.Server.ListenAndServe(); err != http.ErrServerClosed {
				log.Errorf("REST server error: %v", err)
			}
		}
	}()

	go func() {
		<-c.ctx.Done()
		log.Info("Shutting down the REST server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		c.Server.Shutdown(shutdownCtx)
	}()

	return nil
}

// Handler exposes the router, mostly for tests.
func (c *Controller) Handler() http.Handler {
	return c.Server.Handler
}

// setupRouter configures the HTTP router with all endpoints
func (c *Controller) setupRouter() *mux.Router {
	router := mux.NewRouter()
	router.Use(c.loggingMiddleware)

	router.HandleFunc("/healthz", c.handlers.Health).Methods(http.MethodGet)
	router.HandleFunc("/logs/http", c.handlers.GetHTTPLogs).Methods(http.MethodGet)

	router.HandleFunc("/sessions", c.handlers.CreateSession).Methods(http.MethodPost)
	router.HandleFunc("/sessions", c.handlers.ListSessions).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id}", c.handlers.GetSession).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id}", c.handlers.DeleteSession).Methods(http.MethodDelete)
	router.HandleFunc("/sessions/{id}/reset", c.handlers.ResetSession).Methods(http.MethodPost)
	router.HandleFunc("/sessions/{id}/settings", c.handlers.UpdateSettings).Methods(http.MethodPut)
	router.HandleFunc("/sessions/{id}/info", c.handlers.GetInfo).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id}/{widget:year|day}/pointer", c.handlers.PostPointer).Methods(http.MethodPost)
	router.HandleFunc("/sessions/{id}/{widget:year|day}/ops", c.handlers.GetOps).Methods(http.MethodGet)
	router.HandleFunc("/sessions/{id}/{widget:year|day}.{format:svg|png}", c.handlers.GetImage).Methods(http.MethodGet)

	router.HandleFunc("/summary", c.handlers.GetSummary).Methods(http.MethodGet)
	router.HandleFunc("/charts/annual.{format:svg|png}", c.handlers.GetAnnualChart).Methods(http.MethodGet)
	router.HandleFunc("/charts/daylight.png", c.handlers.GetDaylightChart).Methods(http.MethodGet)

	return router
}

// statusRecorder captures what a handler wrote for the request log.
type statusRecorder struct {
	http.ResponseWriter
	status int
	size   int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(b []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(b)
	r.size += n
	return n, err
}

// loggingMiddleware records every request in the HTTP log buffer
func (c *Controller) loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w}
		next.ServeHTTP(rec, r)
		if rec.status == 0 {
			rec.status = http.StatusOK
		}

		entry := log.HTTPLogEntry{
			Timestamp:  start,
			Method:     r.Method,
			Path:       r.URL.Path,
			Status:     rec.status,
			Duration:   time.Since(start),
			Size:       rec.size,
			RemoteAddr: r.RemoteAddr,
			UserAgent:  r.UserAgent(),
		}
		if rec.status >= http.StatusInternalServerError {
			entry.Error = http.StatusText(rec.status)
		}
		log.LogHTTPRequest(entry)
	})
}
