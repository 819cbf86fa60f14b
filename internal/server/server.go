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
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/ritualnet/backend/internal/auth"
	"github.com/ritualnet/backend/internal/database"
	"github.com/ritualnet/backend/internal/handler"
	"github.com/ritualnet/backend/internal/inventory"
	"github.com/ritualnet/backend/internal/logger"
	"github.com/ritualnet/backend/internal/metrics"
	"github.com/ritualnet/backend/internal/schedule"
	"github.com/ritualnet/backend/internal/store"
	"github.com/ritualnet/backend/internal/user"
)

// Services bundles everything the router needs.
type Services struct {
	Users     user.Service
	Store     store.Service
	Inventory inventory.Service
	Schedule  schedule.Service
}

type Server struct {
	httpServer *http.Server
	dbPool     database.Pool
}

// NewServer creates a new Server instance
func NewServer(port int, trustedProxies []string, dbPool database.Pool, issuer *auth.Issuer, svcs Services) *Server {
	r := chi.NewRouter()

	detector := NewSuspiciousActivityDetector()

	// Middleware stack, outermost first
	r.Use(SecurityHeadersMiddleware())
	r.Use(RequestSizeLimitMiddleware(MaxRequestBodyBytes))
	r.Use(RateLimitMiddleware(trustedProxies, detector))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(dbPool))

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Public account routes
		r.Post("/user/register", handler.HandleRegister(svcs.Users))
		r.With(LoginProtectionMiddleware(trustedProxies, detector)).
			Post("/user/login", handler.HandleLogin(svcs.Users))

		// Authenticated user routes
		r.Group(func(r chi.Router) {
			r.Use(issuer.Middleware)
			r.Use(auth.RequireRole(auth.RoleUser))

			r.Get("/user/profile", handler.HandleGetProfile(svcs.Users))

			r.Route("/user/items", func(r chi.Router) {
				r.Get("/", handler.HandleListUserItems(svcs.Inventory))
				r.Post("/{itemID}/equip", handler.HandleEquipItem(svcs.Inventory))
				r.Post("/{itemID}/unequip", handler.HandleUnequipItem(svcs.Inventory))
				r.Put("/{itemID}/favorite", handler.HandleSetFavorite(svcs.Inventory))
				r.Put("/{itemID}/chroma", handler.HandleSetChroma(svcs.Inventory))
				r.Put("/{itemID}/shader", handler.HandleSetShader(svcs.Inventory))
			})

			r.Route("/store", func(r chi.Router) {
				r.Get("/general", handler.HandleListGeneralStoreItems(svcs.Store))
				r.Post("/general/buy", handler.HandleBuyGeneralItem(svcs.Store))
				r.Get("/premium", handler.HandleListLivePremiumItems(svcs.Store))
				r.Post("/premium/buy", handler.HandleBuyPremiumItem(svcs.Store))
			})
		})

		// Admin routes
		r.Group(func(r chi.Router) {
			r.Use(issuer.Middleware)
			r.Use(auth.RequireRole(auth.RoleAdmin))

			r.Route("/admin/premium", func(r chi.Router) {
				r.Get("/sets", handler.HandleListSets(svcs.Schedule))
				r.Post("/sets", handler.HandleCreateSet(svcs.Schedule))
				r.Get("/sets/{setID}", handler.HandleGetSet(svcs.Schedule))
				r.Put("/sets/{setID}", handler.HandleUpdateSet(svcs.Schedule))
				r.Delete("/sets/{setID}", handler.HandleDeleteSet(svcs.Schedule))

				r.Get("/live-items", handler.HandleListLiveItemIDs(svcs.Schedule))

				r.Get("/schedules", handler.HandleListSchedules(svcs.Schedule))
				r.Post("/schedules", handler.HandleCreateSchedule(svcs.Schedule))
				r.Get("/schedules/{scheduleID}", handler.HandleGetSchedule(svcs.Schedule))
				r.Put("/schedules/{scheduleID}", handler.HandleUpdateSchedule(svcs.Schedule))
				r.Delete("/schedules/{scheduleID}", handler.HandleDeleteSchedule(svcs.Schedule))
			})
		})
	})

	// Swagger documentation
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		dbPool: dbPool,
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

		// Skip logging for health check endpoints and metrics
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

		// Redact credentials before logging headers
		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) {
				sanitizedHeaders[k] = []string{"[REDACTED]"}
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
