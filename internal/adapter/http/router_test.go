package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	httpadapter "github.com/iho/fintrack/internal/adapter/http"
	"github.com/iho/fintrack/internal/adapter/http/handler"
	"github.com/iho/fintrack/internal/adapter/repository/memory"
	"github.com/iho/fintrack/internal/infrastructure/auth"
	"github.com/iho/fintrack/internal/wire"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()

	tokens := auth.NewTokenManager("test-secret", 15*time.Minute, 24*time.Hour)
	idGen := memory.NewULIDGenerator()
	users := memory.NewUserRepository()
	accounts := memory.NewAccountRepository()
	transactions := memory.NewTransactionRepository()
	categories := memory.NewCategoryRepository()
	budgets := memory.NewBudgetRepository()

	router := httpadapter.NewRouter(httpadapter.RouterConfig{
		AuthHandler:        handler.NewAuthHandler(users, tokens, idGen),
		AccountHandler:     handler.NewAccountHandler(accounts, transactions, idGen),
		TransactionHandler: handler.NewTransactionHandler(transactions, accounts, categories, idGen),
		CategoryHandler:    handler.NewCategoryHandler(categories, idGen),
		BudgetHandler:      handler.NewBudgetHandler(budgets, categories, idGen),
		ReportHandler:      handler.NewReportHandler(transactions, accounts, categories, 6, 10),
		Tokens:             tokens,
		Logger:             zerolog.Nop(),
	})

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)
	return srv
}

type testClient struct {
	t     *testing.T
	srv   *httptest.Server
	http  *http.Client
	token string
}

func newTestClient(t *testing.T, srv *httptest.Server) *testClient {
	t.Helper()
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	return &testClient{t: t, srv: srv, http: &http.Client{Jar: jar}}
}

func (c *testClient) do(method, path string, body, out any) *http.Response {
	c.t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(c.t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, c.srv.URL+path, &buf)
	require.NoError(c.t, err)
	req.Header.Set("Content-Type", "application/json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.http.Do(req)
	require.NoError(c.t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(c.t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func (c *testClient) signup(name, email, password string) {
	c.t.Helper()
	var auth wire.AuthResponse
	resp := c.do(http.MethodPost, "/api/auth/signup", wire.SignupRequest{Name: name, Email: email, Password: password}, &auth)
	require.Equal(c.t, http.StatusCreated, resp.StatusCode)
	require.NotEmpty(c.t, auth.AccessToken)
	c.token = auth.AccessToken
}

func d(s string) json.Number { return json.Number(s) }

func TestRouter_AuthFlow(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	// Entity routes reject anonymous callers.
	resp := c.do(http.MethodGet, "/api/accounts", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	c.signup("Alice", "alice@example.com", "password123")

	var me wire.MeResponse
	resp = c.do(http.MethodGet, "/api/auth/me", nil, &me)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "alice@example.com", me.User.Email)

	// Duplicate signup is rejected.
	resp = c.do(http.MethodPost, "/api/auth/signup", wire.SignupRequest{Name: "Alice", Email: "alice@example.com", Password: "password123"}, nil)
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	// Wrong password.
	resp = c.do(http.MethodPost, "/api/auth/login", wire.LoginRequest{Email: "alice@example.com", Password: "wrong"}, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	// The refresh cookie set at signup mints a fresh access token.
	var refreshed wire.RefreshResponse
	resp = c.do(http.MethodPost, "/api/auth/refresh", nil, &refreshed)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.NotEmpty(t, refreshed.AccessToken)

	c.token = refreshed.AccessToken
	resp = c.do(http.MethodGet, "/api/auth/me", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	// Logout clears the cookie; refresh stops working.
	resp = c.do(http.MethodPost, "/api/auth/logout", nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp = c.do(http.MethodPost, "/api/auth/refresh", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_RefreshWithoutCookie(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)

	resp := c.do(http.MethodPost, "/api/auth/refresh", nil, nil)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestRouter_EntityCRUDAndReport(t *testing.T) {
	srv := newTestServer(t)
	c := newTestClient(t, srv)
	c.signup("Bob", "bob@example.com", "password123")

	var category wire.Category
	resp := c.do(http.MethodPost, "/api/categories", wire.CategoryRequest{Name: "Food", Type: "expense"}, &category)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var account wire.Account
	resp = c.do(http.MethodPost, "/api/accounts", map[string]any{
		"name": "Checking", "type": "checking", "currency": "USD", "balance": d("100"),
	}, &account)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var tx wire.Transaction
	resp = c.do(http.MethodPost, "/api/transactions", map[string]any{
		"description": "Groceries",
		"amount":      d("30"),
		"category":    category.ID,
		"account":     account.ID,
		"type":        "expense",
		"date":        time.Now().UTC().Format(time.RFC3339),
	}, &tx)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.NotNil(t, tx.Category)
	require.Equal(t, "Food", tx.Category.Name)
	require.NotNil(t, tx.Account)
	require.Equal(t, "Checking", tx.Account.Name)

	// Transactions against an unknown account are rejected.
	resp = c.do(http.MethodPost, "/api/transactions", map[string]any{
		"description": "Ghost",
		"amount":      d("10"),
		"account":     "nope",
		"type":        "expense",
		"date":        time.Now().UTC().Format(time.RFC3339),
	}, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)

	month := time.Now().UTC().Format("2006-01")
	var budget wire.Budget
	resp = c.do(http.MethodPost, "/api/budgets", map[string]any{
		"categoryId": category.ID, "month": month, "limit": d("200"),
	}, &budget)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	require.Equal(t, "Food", budget.CategoryID.Name)

	var budgets []wire.Budget
	resp = c.do(http.MethodGet, "/api/budgets?month="+month, nil, &budgets)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, budgets, 1)

	var report wire.ReportSummary
	resp = c.do(http.MethodGet, "/api/reports/summary", nil, &report)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Equal(t, "30", report.TotalExpense.String())
	require.Len(t, report.Trend, 6)
	require.Len(t, report.CategoryBreakdown, 1)
	require.Equal(t, "Food", report.CategoryBreakdown[0].Name)
	require.Len(t, report.Recent, 1)

	// Deleting the account cascades to its transactions.
	resp = c.do(http.MethodDelete, "/api/accounts/"+account.ID, nil, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var txs []wire.Transaction
	resp = c.do(http.MethodGet, "/api/transactions", nil, &txs)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, txs)
}

func TestRouter_OwnersAreIsolated(t *testing.T) {
	srv := newTestServer(t)

	alice := newTestClient(t, srv)
	alice.signup("Alice", "alice@example.com", "password123")
	var account wire.Account
	resp := alice.do(http.MethodPost, "/api/accounts", map[string]any{
		"name": "Checking", "type": "checking", "currency": "USD", "balance": d("100"),
	}, &account)
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	bob := newTestClient(t, srv)
	bob.signup("Bob", "bob@example.com", "password123")

	var accounts []wire.Account
	resp = bob.do(http.MethodGet, "/api/accounts", nil, &accounts)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Empty(t, accounts)

	resp = bob.do(http.MethodDelete, "/api/accounts/"+account.ID, nil, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}
