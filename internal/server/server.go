package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/burrowlabs/whack-engine/internal/database"
	"github.com/burrowlabs/whack-engine/internal/gameconfig"
	"github.com/burrowlabs/whack-engine/internal/handler"
	"github.com/burrowlabs/whack-engine/internal/ledger"
	"github.com/burrowlabs/whack-engine/internal/logger"
	"github.com/burrowlabs/whack-engine/internal/metrics"
	"github.com/burrowlabs/whack-engine/internal/player"
	"github.com/burrowlabs/whack-engine/internal/treasury"
	"github.com/burrowlabs/whack-engine/internal/whack"
)

type Server struct {
	httpServer      *http.Server
	dbPool          database.Pool
	whackService    whack.Service
	playerService   player.Service
	treasuryService treasury.Service
	configService   gameconfig.Service
}

// NewServer wires the router, middleware stack and all API routes
func NewServer(port int, apiKey string, trustedProxies []string, dbPool database.Pool, whackService whack.Service, playerService player.Service, treasuryService treasury.Service, configService gameconfig.Service, audit *ledger.Recorder) *Server {
	r := chi.NewRouter()

	// Middleware stack, outermost to innermost
	detector := NewSuspiciousActivityDetector()

	r.Use(SecurityHeadersMiddleware())
	r.Use(AuthMiddleware(apiKey, trustedProxies, detector))
	r.Use(SecurityLoggingMiddleware(trustedProxies, detector))
	r.Use(RequestSizeLimitMiddleware(1 << 20)) // 1MB limit
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	whackHandler := handler.NewWhackHandler(whackService)
	playerHandler := handler.NewPlayerHandler(playerService, audit)
	adminHandler := handler.NewAdminHandler(configService, treasuryService, playerService)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/whack", func(r chi.Router) {
			r.Post("/start", whackHandler.HandleStart)
			r.Post("/select", whackHandler.HandleSelect)
			r.Post("/confirm", whackHandler.HandleConfirm)
			r.Post("/collect", whackHandler.HandleCollect)
			r.Post("/continue", whackHandler.HandleContinue)
			r.Post("/cancel", whackHandler.HandleCancel)
			r.Get("/get", whackHandler.HandleGetSession)
			r.Get("/active", whackHandler.HandleGetActive)
		})

		r.Route("/player", func(r chi.Router) {
			r.Post("/register", playerHandler.HandleRegister)
			r.Get("/get", playerHandler.HandleGetPlayer)
			r.Get("/history", playerHandler.HandleGetHistory)
		})

		r.Route("/admin", func(r chi.Router) {
			r.Post("/rails", adminHandler.HandleSetRails)

			r.Get("/config", adminHandler.HandleGetConfig)
			r.Patch("/config", adminHandler.HandleUpdateConfig)

			r.Route("/pool", func(r chi.Router) {
				r.Get("/", adminHandler.HandleGetPool)
				r.Post("/topup", adminHandler.HandleTopUpPool)
				r.Post("/enabled", adminHandler.HandleSetPoolEnabled)
				r.Post("/maxbet", adminHandler.HandleSetMaxBet)
			})

			r.Route("/player", func(r chi.Router) {
				r.Post("/credit", adminHandler.HandleCreditPlayer)
				r.Post("/blacklist", adminHandler.HandleSetBlacklist)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/", adminHandler.HandleListChats)
				r.Post("/register", adminHandler.HandleRegisterChat)
				r.Post("/shill", adminHandler.HandleTouchShill)
			})
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool:          dbPool,
		whackService:    whackService,
		playerService:   playerService,
		treasuryService: treasuryService,
		configService:   configService,
	}
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics.
		// HasPrefix catches variations like /healthz/
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		// Sanitize headers for logging
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAPIKey) || strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)

		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
