package restapi_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"expense_tracker/internal/adapters/metrics"
	"expense_tracker/internal/adapters/restapi"
	"expense_tracker/internal/adapters/storage/memory/transaction"
	"expense_tracker/internal/adapters/view"
	"expense_tracker/internal/config"
	"expense_tracker/internal/core/application"
	"expense_tracker/internal/core/domain"
	"expense_tracker/internal/core/domain/client"
	"expense_tracker/internal/logger"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type testEnv struct {
	handler http.Handler
	store   *transaction.InMemoryTransactionStore
	metrics *metrics.LedgerMetrics
}

func newTestEnv(t *testing.T, mutate func(cfg *config.Config)) *testEnv {
	t.Helper()

	cfg := config.Default()
	cfg.RateLimit.RequestsPerSecond = 0
	if mutate != nil {
		mutate(cfg)
	}

	log := logger.NewDiscard()
	registry := prometheus.NewRegistry()
	store := transaction.NewInMemoryTransactionStore()
	tableView := view.NewTableView(log)
	ledgerMetrics := metrics.NewLedgerMetrics(registry)
	require.True(t, store.Register(ledgerMetrics))

	service, err := application.NewLedgerService(store, tableView, log)
	require.NoError(t, err)

	server, err := restapi.NewServer(restapi.Dependencies{
		Service:  service,
		View:     tableView,
		Observer: ledgerMetrics,
		Gatherer: registry,
		Logger:   log,
	}, cfg)
	require.NoError(t, err)

	return &testEnv{handler: server.Handler(), store: store, metrics: ledgerMetrics}
}

func (e *testEnv) do(t *testing.T, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	e.handler.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestNewServer_NilDependencies(t *testing.T) {
	log := logger.NewDiscard()

	_, err := restapi.NewServer(restapi.Dependencies{Logger: log}, config.Default())
	assert.Error(t, err)

	_, err = restapi.NewServer(restapi.Dependencies{}, config.Default())
	assert.Error(t, err)
}

func TestServer_AddAndListTransactions(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPost, "/transactions", `{"amount": 50, "category": "food"}`)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	rec = env.do(t, http.MethodPost, "/transactions", `{"amount": 12.5, "category": "Travel"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = env.do(t, http.MethodGet, "/transactions", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[restapi.LedgerResponse](t, rec)
	require.Len(t, resp.Rows, 2)
	assert.Equal(t, "50.00", resp.Rows[0].Amount)
	assert.Equal(t, "food", resp.Rows[0].Category)
	assert.Equal(t, "12.50", resp.Rows[1].Amount)
	assert.Equal(t, "62.50", resp.Total)

	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.TransactionsGauge()))
	assert.Equal(t, 2.0, testutil.ToFloat64(env.metrics.RequestsCounter("add", "ok")))
}

func TestServer_AddTransaction_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode int
		wantErr  string
	}{
		{name: "Malformed JSON", body: `{"amount":`, wantCode: http.StatusBadRequest, wantErr: "Invalid request body"},
		{name: "Missing amount", body: `{"category":"food"}`, wantCode: http.StatusBadRequest, wantErr: "Amount is required"},
		{name: "Amount too large", body: `{"amount":1500,"category":"food"}`, wantCode: http.StatusUnprocessableEntity, wantErr: "Transaction rejected"},
		{name: "Unknown category", body: `{"amount":10,"category":"rent"}`, wantCode: http.StatusUnprocessableEntity, wantErr: "Transaction rejected"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			rec := env.do(t, http.MethodPost, "/transactions", tt.body)
			assert.Equal(t, tt.wantCode, rec.Code)
			assert.Contains(t, decode[restapi.ErrorResponse](t, rec).Error, tt.wantErr)
			assert.Empty(t, env.store.Transactions())
		})
	}
}

func TestServer_UndoTransaction(t *testing.T) {
	env := newTestEnv(t, nil)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/transactions", `{"amount":10,"category":"food"}`).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/transactions", `{"amount":20,"category":"bills"}`).Code)

	rec := env.do(t, http.MethodDelete, "/transactions/5", "")
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = env.do(t, http.MethodDelete, "/transactions/abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = env.do(t, http.MethodDelete, "/transactions/0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode[restapi.LedgerResponse](t, rec)
	require.Len(t, resp.Rows, 1)
	assert.Equal(t, "bills", resp.Rows[0].Category)
	assert.Equal(t, 0, resp.Rows[0].Row)
}

func TestServer_FilterLifecycle(t *testing.T) {
	env := newTestEnv(t, nil)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/transactions", `{"amount":50,"category":"food"}`).Code)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/transactions", `{"amount":50,"category":"travel"}`).Code)

	rec := env.do(t, http.MethodGet, "/filter", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, restapi.FilterTypeNone, decode[restapi.FilterResponse](t, rec).Type)

	rec = env.do(t, http.MethodPost, "/filter/apply", "")
	require.Equal(t, http.StatusOK, rec.Code)
	applied := decode[restapi.ApplyFilterResponse](t, rec)
	assert.False(t, applied.Applied)
	assert.Equal(t, client.MessageNoFilterApplied, applied.Message)

	rec = env.do(t, http.MethodPut, "/filter", `{"type":"category","category":"FOOD"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	current := decode[restapi.FilterResponse](t, rec)
	assert.Equal(t, restapi.FilterTypeCategory, current.Type)
	assert.Equal(t, "FOOD", current.Category)

	rec = env.do(t, http.MethodPost, "/filter/apply", "")
	require.Equal(t, http.StatusOK, rec.Code)
	applied = decode[restapi.ApplyFilterResponse](t, rec)
	assert.True(t, applied.Applied)
	assert.Empty(t, applied.Message)
	assert.Equal(t, []int{0}, applied.MatchedIndices)

	rec = env.do(t, http.MethodPut, "/filter", `{"type":"amount","amount":50}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = env.do(t, http.MethodPost, "/filter/apply", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []int{0, 1}, decode[restapi.ApplyFilterResponse](t, rec).MatchedIndices)

	rows := decode[restapi.LedgerResponse](t, env.do(t, http.MethodGet, "/transactions", "")).Rows
	assert.True(t, rows[0].Highlighted)
	assert.True(t, rows[1].Highlighted)

	rec = env.do(t, http.MethodPut, "/filter", `{"type":"none"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, restapi.FilterTypeNone, decode[restapi.FilterResponse](t, env.do(t, http.MethodGet, "/filter", "")).Type)
}

func TestServer_SetFilter_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "Malformed JSON", body: `{`, wantErr: "Invalid request body"},
		{name: "Unknown type", body: `{"type":"date"}`, wantErr: "unknown filter type"},
		{name: "Amount missing", body: `{"type":"amount"}`, wantErr: "amount is required"},
		{name: "Amount out of range", body: `{"type":"amount","amount":-1}`, wantErr: domain.ErrInvalidArgument.Error()},
		{name: "Bad category", body: `{"type":"category","category":"rent"}`, wantErr: domain.ErrInvalidArgument.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv(t, nil)

			rec := env.do(t, http.MethodPut, "/filter", tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, decode[restapi.ErrorResponse](t, rec).Error, tt.wantErr)
		})
	}
}

func TestServer_Categories(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodGet, "/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.Categories(), decode[restapi.CategoriesResponse](t, rec).Categories)
}

func TestServer_MethodNotAllowed(t *testing.T) {
	env := newTestEnv(t, nil)

	rec := env.do(t, http.MethodPatch, "/transactions", "")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestServer_Metrics(t *testing.T) {
	env := newTestEnv(t, nil)
	require.Equal(t, http.StatusCreated, env.do(t, http.MethodPost, "/transactions", `{"amount":10,"category":"food"}`).Code)

	rec := env.do(t, http.MethodGet, config.DefaultMetricsPath, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), "expense_ledger_transactions 1"))
}

func TestServer_MetricsDisabled(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) { cfg.Metrics.Enabled = false })

	rec := env.do(t, http.MethodGet, config.DefaultMetricsPath, "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestServer_RateLimit(t *testing.T) {
	env := newTestEnv(t, func(cfg *config.Config) {
		cfg.RateLimit.RequestsPerSecond = 0.001
		cfg.RateLimit.Burst = 1
	})

	first := env.do(t, http.MethodPost, "/transactions", `{"amount":10,"category":"food"}`)
	require.Equal(t, http.StatusCreated, first.Code)

	second := env.do(t, http.MethodPost, "/transactions", `{"amount":10,"category":"food"}`)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)

	reads := env.do(t, http.MethodGet, "/transactions", "")
	assert.Equal(t, http.StatusOK, reads.Code, "read routes are not throttled")
	assert.Len(t, env.store.Transactions(), 1)
}
