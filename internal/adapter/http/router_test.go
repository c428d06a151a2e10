package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/sitebooks/ledger/internal/adapter/http/handler"
	apimiddleware "github.com/sitebooks/ledger/internal/adapter/http/middleware"
	"github.com/sitebooks/ledger/internal/domain"
	"github.com/sitebooks/ledger/internal/usecase"
)

func TestNewRouter_HealthEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
}

func TestNewRouter_MetricsEndpointAvailable(t *testing.T) {
	router := NewRouter(newRouterConfig())

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "http_requests_total")
}

func TestNewRouter_RateLimiterBlocksExcessRequests(t *testing.T) {
	rl := apimiddleware.NewRateLimiter(1, 1)
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.RateLimiter = rl
	}))

	req1 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req1.RemoteAddr = "1.2.3.4:1234"
	rec1 := httptest.NewRecorder()
	router.ServeHTTP(rec1, req1)
	require.Equal(t, http.StatusOK, rec1.Code)

	req2 := httptest.NewRequest(http.MethodGet, "/health", nil)
	req2.RemoteAddr = "1.2.3.4:1234"
	rec2 := httptest.NewRecorder()
	router.ServeHTTP(rec2, req2)
	require.Equal(t, http.StatusTooManyRequests, rec2.Code)
}

func TestNewRouter_IdempotencyMiddlewareInvokesStore(t *testing.T) {
	store := &stubIdempotencyStore{}
	router := NewRouter(newRouterConfig(func(cfg *RouterConfig) {
		cfg.IdempotencyStore = store
	}))

	body := `{"name":"Acme Supply Co","kind":"financial"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/accounts/", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(apimiddleware.IdempotencyKeyHeader, "key-123")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.True(t, store.checkCalled, "expected idempotency store to be used")
}

func TestNewRouter_RegistersKeyRoutes(t *testing.T) {
	router := NewRouter(newRouterConfig())

	chiRoutes, ok := router.(chi.Router)
	require.True(t, ok, "router does not implement chi.Router")

	seen := map[string]bool{}
	err := chi.Walk(chiRoutes, func(method string, route string, _ http.Handler, _ ...func(http.Handler) http.Handler) error {
		seen[method+" "+route] = true
		return nil
	})
	require.NoError(t, err)

	expected := []string{
		"GET /health",
		"GET /ready",
		"GET /metrics",
		"POST /api/v1/accounts/",
		"GET /api/v1/accounts/",
		"GET /api/v1/accounts/{id}",
		"POST /api/v1/accounts/{id}/transactions",
		"GET /api/v1/accounts/{id}/transactions",
		"GET /api/v1/accounts/{id}/balance",
		"GET /api/v1/accounts/{id}/summary",
		"POST /api/v1/accounts/{id}/reconcile",
		"POST /api/v1/accounts/{id}/resume",
		"GET /api/v1/summaries",
		"GET /api/v1/reports/overdue",
		"GET /api/v1/reports/low-stock",
		"POST /api/v1/reconcile",
	}

	for _, route := range expected {
		require.Truef(t, seen[route], "expected route %s to be registered", route)
	}
}

func newRouterConfig(opts ...func(*RouterConfig)) RouterConfig {
	cfg := RouterConfig{
		AccountHandler:        handler.NewAccountHandler(&stubAccountService{}),
		TransactionHandler:    handler.NewTransactionHandler(&stubRecorderService{}, &stubHistoryService{}, &stubBalanceService{}),
		QueryHandler:          handler.NewQueryHandler(&stubQueryService{}),
		ReconciliationHandler: handler.NewReconciliationHandler(&stubReconciliationService{}),
		HealthHandler:         &handler.HealthHandler{},
		Logger:                zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

type stubAccountService struct{}

func (stubAccountService) CreateAccount(ctx context.Context, input usecase.CreateAccountInput) (*domain.Account, error) {
	return &domain.Account{ID: "acc", Kind: domain.KindFinancial}, nil
}

func (stubAccountService) GetAccount(ctx context.Context, id string) (*domain.Account, error) {
	return &domain.Account{ID: id, Kind: domain.KindFinancial}, nil
}

func (stubAccountService) ListAccounts(ctx context.Context, input usecase.ListAccountsInput) ([]*domain.Account, error) {
	return []*domain.Account{}, nil
}

type stubRecorderService struct{}

func (stubRecorderService) Record(ctx context.Context, input usecase.RecordInput) (*domain.Entry, error) {
	return &domain.Entry{ID: "entry", AccountID: input.AccountID, Type: input.Type, Seq: 1}, nil
}

type stubHistoryService struct{}

func (stubHistoryService) History(ctx context.Context, input usecase.HistoryInput) ([]*domain.Entry, error) {
	return []*domain.Entry{}, nil
}

type stubBalanceService struct{}

func (stubBalanceService) BalanceAt(ctx context.Context, accountID string, at time.Time) (decimal.Decimal, error) {
	return decimal.Zero, nil
}

type stubQueryService struct{}

func (stubQueryService) Summary(ctx context.Context, accountID string) (*usecase.SummaryView, error) {
	return &usecase.SummaryView{}, nil
}

func (stubQueryService) Summaries(ctx context.Context, input usecase.SummariesInput) ([]*usecase.SummaryView, error) {
	return []*usecase.SummaryView{}, nil
}

func (stubQueryService) Overdue(ctx context.Context, limit, offset int) ([]*usecase.SummaryView, error) {
	return []*usecase.SummaryView{}, nil
}

func (stubQueryService) LowStock(ctx context.Context, limit, offset int) ([]*usecase.SummaryView, error) {
	return []*usecase.SummaryView{}, nil
}

type stubReconciliationService struct{}

func (stubReconciliationService) ReconcileAccount(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error) {
	return &usecase.ReconciliationResult{AccountID: accountID}, nil
}

func (stubReconciliationService) ReconcileAll(ctx context.Context) (*usecase.ReconciliationReport, error) {
	return &usecase.ReconciliationReport{}, nil
}

func (stubReconciliationService) Resume(ctx context.Context, accountID string) (*usecase.ReconciliationResult, error) {
	return &usecase.ReconciliationResult{AccountID: accountID}, nil
}

type stubIdempotencyStore struct {
	checkCalled bool
}

func (s *stubIdempotencyStore) CheckAndSet(ctx context.Context, key string, response []byte, ttl time.Duration) (bool, []byte, error) {
	s.checkCalled = true
	return false, nil, nil
}

func (s *stubIdempotencyStore) Update(ctx context.Context, key string, response []byte, ttl time.Duration) error {
	return nil
}
