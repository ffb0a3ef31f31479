package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	sqlite "github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/tbourn/go-ecommerce-api/internal/apierr"
	"github.com/tbourn/go-ecommerce-api/internal/domain"
	"github.com/tbourn/go-ecommerce-api/internal/http/middleware"
	"github.com/tbourn/go-ecommerce-api/internal/repo"
	"github.com/tbourn/go-ecommerce-api/internal/services"
)

// ---------- test DB + repo shim ----------

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:handlers_%s?mode=memory&cache=shared", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	})
	if err := repo.AutoMigrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// Minimal shim implementing services.UserRepo using repo package (like router.go)
type testUserRepo struct{}

func (testUserRepo) CreateUser(ctx context.Context, db *gorm.DB, u *domain.User) error {
	return repo.CreateUser(ctx, db, u)
}

func (testUserRepo) GetUser(ctx context.Context, db *gorm.DB, id string) (*domain.User, error) {
	return repo.GetUser(ctx, db, id)
}

func (testUserRepo) CountUsers(ctx context.Context, db *gorm.DB) (int64, error) {
	return repo.CountUsers(ctx, db)
}

func (testUserRepo) ListUsersPage(ctx context.Context, db *gorm.DB, offset, limit int) ([]domain.User, error) {
	return repo.ListUsersPage(ctx, db, offset, limit)
}

func (testUserRepo) UpdateUser(ctx context.Context, db *gorm.DB, id string, fields map[string]any) error {
	return repo.UpdateUser(ctx, db, id, fields)
}

func (testUserRepo) DeleteUser(ctx context.Context, db *gorm.DB, id string) error {
	return repo.DeleteUser(ctx, db, id)
}

// ---------- router ----------

// newTestRouter mounts every handler behind the same error pipeline the
// server uses, backed by a fresh database.
func newTestRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)

	h := New(
		services.NewUserService(db, testUserRepo{}),
		&services.TagService{DB: db, NameMaxLen: 32},
		&services.PaymentService{DB: db, IdempotencyTTL: time.Hour, MaxMessageRunes: 512},
		&services.ShipmentService{DB: db},
	)

	lookup := func(ctx context.Context, userID, scope, key string, now time.Time) (bool, error) {
		rec, err := repo.GetIdempotency(ctx, db, userID, scope, key, now)
		return rec != nil, err
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(middleware.NewDispatcher(false).Handler())
	r.Use(middleware.Recovery())
	r.Use(middleware.ContentNegotiation())
	r.Use(middleware.IdempotencyValidator(middleware.IdempotencyOptions{}, lookup))
	r.NoRoute(func(c *gin.Context) { middleware.FailCode(c, apierr.RouteNotFound, nil) })
	r.NoMethod(func(c *gin.Context) { middleware.FailCode(c, apierr.MethodNotAllowed, nil) })

	r.POST("/users", h.CreateUser)
	r.GET("/users", h.ListUsers)
	r.GET("/users/:id", h.GetUser)
	r.PUT("/users/:id", h.UpdateUser)
	r.DELETE("/users/:id", h.DeleteUser)

	r.POST("/tags", h.CreateTag)
	r.GET("/tags", h.ListTags)
	r.GET("/tags/:id", h.GetTag)
	r.PUT("/tags/:id", h.RenameTag)
	r.DELETE("/tags/:id", h.DeleteTag)

	r.POST("/payments", h.CreatePayment)
	r.GET("/payments", h.ListPayments)
	r.GET("/payments/:id", h.GetPayment)

	r.POST("/shipments", h.CreateShipment)
	r.GET("/shipments", h.ListShipments)
	r.GET("/shipments/:id", h.GetShipment)
	r.DELETE("/shipments/:id", h.DeleteShipment)
	return r, db
}

// ---------- request helpers ----------

func do(r http.Handler, method, path, contentType, body string, headers ...string) *httptest.ResponseRecorder {
	var rdr io.Reader
	if body != "" {
		rdr = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, rdr)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for i := 0; i+1 < len(headers); i += 2 {
		req.Header.Set(headers[i], headers[i+1])
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func doJSON(r http.Handler, method, path, body string, headers ...string) *httptest.ResponseRecorder {
	return do(r, method, path, "application/json", body, headers...)
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	if err := json.Unmarshal(w.Body.Bytes(), &v); err != nil {
		t.Fatalf("decode %q: %v", w.Body.String(), err)
	}
	return v
}

// expectError asserts the status and application code of an error response.
func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) apierr.Payload {
	t.Helper()
	if w.Code != status {
		t.Fatalf("status = %d; want %d (body %s)", w.Code, status, w.Body.String())
	}
	p := decode[apierr.Payload](t, w)
	if p.ErrorCode != code || p.Status != status {
		t.Fatalf("payload = %+v; want %s/%d", p, code, status)
	}
	return p
}

const missingID = "141add05-4415-4938-b5a1-17e0d3171aff"
