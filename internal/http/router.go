// Package httpapi wires the HTTP transport (Gin) to application services,
// middleware, and route handlers. It centralizes cross-cutting concerns such
// as tracing, correlation IDs, logging/redaction, error dispatch, panic
// recovery, metrics, CORS, security headers, content negotiation,
// idempotency, and rate limiting.
//
// Design goals:
//   - Put observability first (OTel + Prometheus)
//   - Every failure, including unknown routes and panics, leaves through the
//     error dispatcher
//   - Deterministic, minimal router setup; all dependencies injected
//   - Production-ready CORS and security header posture
package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/gzip"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"gorm.io/gorm"

	_ "github.com/tbourn/go-ecommerce-api/docs"
	"github.com/tbourn/go-ecommerce-api/internal/apierr"
	"github.com/tbourn/go-ecommerce-api/internal/config"
	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/http/handlers"
	"github.com/tbourn/go-ecommerce-api/internal/http/middleware"
	"github.com/tbourn/go-ecommerce-api/internal/repo"
	"github.com/tbourn/go-ecommerce-api/internal/services"
)

// userRepoShim adapts the repository free functions to the services.UserRepo
// interface expected by the UserService. This keeps services decoupled from
// the concrete repo package while reusing existing functions.
type userRepoShim struct{}

// CreateUser proxies repo.CreateUser.
func (userRepoShim) CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return repo.CreateUser(ctx, db, u)
}

// GetUser proxies repo.GetUser.
func (userRepoShim) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return repo.GetUser(ctx, db, id)
}

// CountUsers proxies repo.CountUsers (pagination support).
func (userRepoShim) CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountUsers(ctx, db)
}

// ListUsersPage proxies repo.ListUsersPage (pagination support).
func (userRepoShim) ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	return repo.ListUsersPage(ctx, db, offset, limit)
}

// UpdateUser proxies repo.UpdateUser.
func (userRepoShim) UpdateUser(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateUser(ctx, db, id, fields)
}

// DeleteUser proxies repo.DeleteUser.
func (userRepoShim) DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteUser(ctx, db, id)
}

// Service limits that are not worth a config knob.
const (
	tagNameMaxLen     = 255
	paymentMsgMaxLen  = 512
	idempotencyKeyMax = 200
)

// RegisterRoutes attaches all middleware and HTTP endpoints to the given Gin
// engine. It configures observability (tracing, metrics), error dispatch,
// idempotency and rate limiting, CORS and security headers, content
// negotiation, health and metrics endpoints, and then mounts the versioned
// public API under cfg.APIBasePath.
//
// Middleware order matters:
//  1. OpenTelemetry: trace everything
//  2. RequestID: generate/propagate correlation id
//  3. Access logging (with PII redaction unless LOG_REDACT=false)
//  4. gzip: must wrap the dispatcher so error bodies are compressed too
//  5. Metrics: outside the dispatcher so failures are counted with their
//     final status
//  6. Error dispatcher: answers every failure raised below it
//  7. Recovery: panics become GenericError failures
//  8. Body size limiter
//  9. Idempotency validator (before rate limiter to allow bypass on replay)
//  10. Rate limiter (per user/IP, bypass on replay)
//  11. CORS and Security headers
//  12. Content negotiation (415/406)
//  13. Shallow ETag on successful GETs
func RegisterRoutes(r *gin.Engine, db *gorm.DB, cfg config.Config) {
	r.HandleMethodNotAllowed = true

	// 1) Trace all HTTP requests
	r.Use(otelgin.Middleware(cfg.OTEL.ServiceName))

	// 2) Correlate requests and logs
	r.Use(middleware.RequestID())

	// 3) Structured logging
	if cfg.LogRedact {
		r.Use(middleware.RedactingLogger(middleware.RedactOptions{
			MaskHeaders: []string{
				"X-API-Key", // project-specific sensitive header example
			},
		}))
	} else {
		r.Use(middleware.Logger())
	}

	// 4) Response compression (scrapers handle their own encoding)
	r.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/metrics"})))

	// 5) Prometheus metrics
	r.Use(middleware.Metrics())

	// 6) Error dispatch and 7) panic recovery
	r.Use(middleware.NewDispatcher(cfg.IsProduction()).Handler())
	r.Use(middleware.Recovery())

	// 8) Global body size limit, then the /metrics endpoint
	r.Use(limitBody(cfg.MaxBodyBytes))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// 9) Idempotency validation (before rate limiting)
	r.Use(middleware.IdempotencyValidator(
		middleware.IdempotencyOptions{
			MaxLen: idempotencyKeyMax,
		},
		func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
			rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
			if err != nil || rec == nil {
				return false, nil
			}
			return true, nil
		},
	))

	// 10) Token-bucket rate limiter per user/IP
	rl := middleware.NewRateLimiter(cfg.RateRPS, cfg.RateBurst, middleware.KeyByUserOrIP())
	r.Use(rl.Handler())

	// 11) CORS posture (safe defaults: allow all if none configured)
	allowHeaders := []string{"Origin", "Content-Type", "Accept", "Authorization", "X-User-ID", "If-None-Match", middleware.HeaderIdempotencyKey}
	exposeHeaders := []string{"X-Request-ID", "Content-Length", "ETag", "Retry-After", handlers.HeaderIdempotentReplay}
	if len(cfg.CORS.AllowedOrigins) == 0 {
		// Force ACAO: * even for requests without an Origin header (helps tests and simple health checks).
		r.Use(func(c *gin.Context) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowAllOrigins:  true,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false, // must remain false with AllowAllOrigins
			MaxAge:           12 * time.Hour,
		}))
	} else {
		// Echo ACAO with the request Origin when it is in the allowlist (in addition to gin-contrib/cors).
		allowed := make(map[string]struct{}, len(cfg.CORS.AllowedOrigins))
		for _, o := range cfg.CORS.AllowedOrigins {
			allowed[o] = struct{}{}
		}
		r.Use(func(c *gin.Context) {
			if origin := c.GetHeader("Origin"); origin != "" {
				if _, ok := allowed[origin]; ok {
					h := c.Writer.Header()
					h.Set("Access-Control-Allow-Origin", origin)
					h.Add("Vary", "Origin")
				}
			}
			c.Next()
		})
		r.Use(cors.New(cors.Config{
			AllowOrigins:     cfg.CORS.AllowedOrigins,
			AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
			AllowHeaders:     allowHeaders,
			ExposeHeaders:    exposeHeaders,
			AllowCredentials: false,
			MaxAge:           12 * time.Hour,
		}))
	}

	// Security headers (HSTS only when enabled and request is HTTPS).
	// Payment and user records are never cached by intermediaries.
	apiBase := strings.TrimSuffix(cfg.APIBasePath, "/") // e.g. "/api/v1"
	r.Use(middleware.SecurityHeaders(middleware.SecurityOptions{
		EnableHSTS:      cfg.Security.EnableHSTS,
		HSTSMaxAge:      cfg.Security.HSTSMaxAge,
		NoStore:         false,
		EnablePolicy:    true,
		NoStorePrefixes: []string{apiBase + "/payments", apiBase + "/users"},
	}))

	// 12) Content-Type / Accept checks
	r.Use(middleware.ContentNegotiation())

	// 13) Conditional GETs
	if cfg.ETagEnabled {
		r.Use(middleware.ShallowETag())
	}

	// Fallbacks
	r.NoRoute(func(c *gin.Context) {
		middleware.FailCode(c, apierr.RouteNotFound, nil)
	})
	r.NoMethod(func(c *gin.Context) {
		middleware.FailCode(c, apierr.MethodNotAllowed, nil)
	})

	// Dependency injection: services ← repo/db
	h := handlers.New(
		services.NewUserService(db, userRepoShim{}),
		&services.TagService{DB: db, NameMaxLen: tagNameMaxLen},
		&services.PaymentService{
			DB:              db,
			IdempotencyTTL:  cfg.IdempotencyTTL,
			MaxMessageRunes: paymentMsgMaxLen,
		},
		&services.ShipmentService{DB: db},
	)

	// Liveness/health
	r.GET("/health", h.Health)

	// API docs
	if cfg.SwaggerEnabled {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	// Public API
	api := groupWithPrefix(r, apiBase)
	{
		// Users
		api.POST("/users", h.CreateUser)
		api.GET("/users", h.ListUsers)
		api.GET("/users/:id", h.GetUser)
		api.PUT("/users/:id", h.UpdateUser)
		api.DELETE("/users/:id", h.DeleteUser)

		// Tags
		api.POST("/tags", h.CreateTag)
		api.GET("/tags", h.ListTags)
		api.GET("/tags/:id", h.GetTag)
		api.PUT("/tags/:id", h.RenameTag)
		api.DELETE("/tags/:id", h.DeleteTag)

		// Payments
		api.POST("/payments", h.CreatePayment)
		api.GET("/payments", h.ListPayments)
		api.GET("/payments/:id", h.GetPayment)

		// Shipments
		api.POST("/shipments", h.CreateShipment)
		api.GET("/shipments", h.ListShipments)
		api.GET("/shipments/:id", h.GetShipment)
		api.DELETE("/shipments/:id", h.DeleteShipment)
	}
}

// limitBody returns a Gin middleware that caps the request body size for all
// endpoints to maxBytes using http.MaxBytesReader. Requests exceeding the cap
// will cause downstream body reads to fail with PayloadTooLarge.
func limitBody(maxBytes int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, maxBytes)
		c.Next()
	}
}

// groupWithPrefix mounts a group at prefix, treating "/" (or empty) as root.
func groupWithPrefix(r *gin.Engine, prefix string) *gin.RouterGroup {
	if prefix == "" || prefix == "/" {
		return r.Group("")
	}
	return r.Group(prefix)
}
