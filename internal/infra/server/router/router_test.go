package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/glebarez/sqlite"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/daily-ledger/backend/config"
	"github.com/daily-ledger/backend/internal/infra/dependency"
	"github.com/daily-ledger/backend/internal/integration/persistence/model"
)

type apiTest struct {
	engine *gin.Engine
}

func newAPITest(t *testing.T) *apiTest {
	t.Helper()
	return newAPITestWithRateLimit(t, 100)
}

func (a *apiTest) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			t.Fatalf("failed to encode body: %v", err)
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	recorder := httptest.NewRecorder()
	a.engine.ServeHTTP(recorder, req)
	return recorder
}

func (a *apiTest) registerUser(t *testing.T, email string) string {
	t.Helper()

	recorder := a.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    email,
		"username": "tester",
		"password": "secret123",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("register: expected status 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.Unmarshal(recorder.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to decode register response: %v", err)
	}
	return response.AccessToken
}

func decodeJSON(t *testing.T, recorder *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	if err := json.Unmarshal(recorder.Body.Bytes(), target); err != nil {
		t.Fatalf("failed to decode response %q: %v", recorder.Body.String(), err)
	}
}

func TestHealthEndpoint(t *testing.T) {
	api := newAPITest(t)

	recorder := api.request(t, http.MethodGet, "/health", "", nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", recorder.Code)
	}
}

func TestRegisterLoginAndMe(t *testing.T) {
	api := newAPITest(t)
	api.registerUser(t, "user@example.com")

	recorder := api.request(t, http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email":    "user@example.com",
		"password": "secret123",
	})
	if recorder.Code != http.StatusOK {
		t.Fatalf("login: expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var login struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
	}
	decodeJSON(t, recorder, &login)
	if login.TokenType != "bearer" {
		t.Errorf("expected token type bearer, got %q", login.TokenType)
	}

	me := api.request(t, http.MethodGet, "/api/v1/auth/me", login.AccessToken, nil)
	if me.Code != http.StatusOK {
		t.Fatalf("me: expected status 200, got %d: %s", me.Code, me.Body.String())
	}

	var user struct {
		Email string `json:"email"`
	}
	decodeJSON(t, me, &user)
	if user.Email != "user@example.com" {
		t.Errorf("expected email user@example.com, got %q", user.Email)
	}
}

func TestRegisterDuplicateEmailConflict(t *testing.T) {
	api := newAPITest(t)
	api.registerUser(t, "user@example.com")

	recorder := api.request(t, http.MethodPost, "/api/v1/auth/register", "", map[string]string{
		"email":    "user@example.com",
		"username": "other",
		"password": "secret123",
	})
	if recorder.Code != http.StatusConflict {
		t.Fatalf("expected status 409, got %d", recorder.Code)
	}
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	api := newAPITest(t)

	paths := []string{"/api/v1/entries", "/api/v1/transactions", "/api/v1/stats/daily"}
	for _, path := range paths {
		recorder := api.request(t, http.MethodGet, path, "", nil)
		if recorder.Code != http.StatusUnauthorized {
			t.Errorf("%s: expected status 401, got %d", path, recorder.Code)
		}
	}
}

func TestEntryAndTransactionFlow(t *testing.T) {
	api := newAPITest(t)
	token := api.registerUser(t, "user@example.com")

	created := api.request(t, http.MethodPost, "/api/v1/entries", token, map[string]interface{}{
		"date":  "2025-03-10",
		"title": "Groceries day",
		"mood":  "tired",
		"tags":  []string{"shopping"},
	})
	if created.Code != http.StatusCreated {
		t.Fatalf("create entry: expected status 201, got %d: %s", created.Code, created.Body.String())
	}

	var entry struct {
		ID string `json:"id"`
	}
	decodeJSON(t, created, &entry)

	txnCreated := api.request(t, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
		"entry_id": entry.ID,
		"date":     "2025-03-10",
		"type":     "expense",
		"category": "groceries",
		"amount":   "42.50",
	})
	if txnCreated.Code != http.StatusCreated {
		t.Fatalf("create transaction: expected status 201, got %d: %s", txnCreated.Code, txnCreated.Body.String())
	}

	full := api.request(t, http.MethodGet, fmt.Sprintf("/api/v1/entries/%s/full", entry.ID), token, nil)
	if full.Code != http.StatusOK {
		t.Fatalf("get full entry: expected status 200, got %d: %s", full.Code, full.Body.String())
	}

	var fullResponse struct {
		Entry struct {
			Title string `json:"title"`
		} `json:"entry"`
		Transactions []struct {
			Category string `json:"category"`
			Amount   string `json:"amount"`
		} `json:"transactions"`
	}
	decodeJSON(t, full, &fullResponse)
	if fullResponse.Entry.Title != "Groceries day" {
		t.Errorf("expected entry title, got %q", fullResponse.Entry.Title)
	}
	if len(fullResponse.Transactions) != 1 {
		t.Fatalf("expected 1 linked transaction, got %d", len(fullResponse.Transactions))
	}
	if fullResponse.Transactions[0].Amount != "42.5" {
		t.Errorf("expected amount 42.5, got %q", fullResponse.Transactions[0].Amount)
	}

	deleted := api.request(t, http.MethodDelete, "/api/v1/entries/"+entry.ID, token, nil)
	if deleted.Code != http.StatusOK {
		t.Fatalf("delete entry: expected status 200, got %d", deleted.Code)
	}

	list := api.request(t, http.MethodGet, "/api/v1/transactions", token, nil)
	var listResponse struct {
		Total int64 `json:"total"`
	}
	decodeJSON(t, list, &listResponse)
	if listResponse.Total != 0 {
		t.Errorf("expected linked transaction removed with entry, got total %d", listResponse.Total)
	}
}

func TestCreateEntryWithTransactions(t *testing.T) {
	api := newAPITest(t)
	token := api.registerUser(t, "user@example.com")

	recorder := api.request(t, http.MethodPost, "/api/v1/entries/with-transactions", token, map[string]interface{}{
		"entry": map[string]interface{}{
			"date":  "2025-03-10",
			"title": "Payday",
		},
		"transactions": []map[string]interface{}{
			{"type": "income", "category": "salary", "amount": "3000.00"},
			{"type": "expense", "category": "dining", "amount": "55.10", "date": "2025-03-11"},
		},
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		Transactions []struct {
			Date string `json:"date"`
		} `json:"transactions"`
	}
	decodeJSON(t, recorder, &response)
	if len(response.Transactions) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(response.Transactions))
	}
	if response.Transactions[0].Date != "2025-03-10" {
		t.Errorf("expected first transaction to inherit entry date, got %q", response.Transactions[0].Date)
	}
}

func TestInvalidTransactionRejected(t *testing.T) {
	api := newAPITest(t)
	token := api.registerUser(t, "user@example.com")

	recorder := api.request(t, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
		"date":     "2025-03-10",
		"type":     "expense",
		"category": "groceries",
		"amount":   "10.123",
	})
	if recorder.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", recorder.Code, recorder.Body.String())
	}
}

func TestDailyStatsEndpoint(t *testing.T) {
	api := newAPITest(t)
	token := api.registerUser(t, "user@example.com")

	for _, txn := range []map[string]interface{}{
		{"date": "2025-03-10", "type": "income", "category": "salary", "amount": "3000.00"},
		{"date": "2025-03-10", "type": "expense", "category": "groceries", "amount": "120.40"},
		{"date": "2025-03-11", "type": "expense", "category": "dining", "amount": "30.00"},
	} {
		recorder := api.request(t, http.MethodPost, "/api/v1/transactions", token, txn)
		if recorder.Code != http.StatusCreated {
			t.Fatalf("seed transaction: expected status 201, got %d", recorder.Code)
		}
	}

	recorder := api.request(t, http.MethodGet, "/api/v1/stats/daily?start_date=2025-03-01&end_date=2025-03-31", token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		Stats []struct {
			Date         string `json:"date"`
			TotalIncome  string `json:"total_income"`
			TotalExpense string `json:"total_expense"`
			Net          string `json:"net"`
		} `json:"stats"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	decodeJSON(t, recorder, &response)

	if response.StartDate != "2025-03-01" || response.EndDate != "2025-03-31" {
		t.Errorf("unexpected echoed range: %s..%s", response.StartDate, response.EndDate)
	}
	if len(response.Stats) != 2 {
		t.Fatalf("expected 2 daily buckets, got %d", len(response.Stats))
	}
	first := response.Stats[0]
	if first.Date != "2025-03-10" || first.Net != "2879.6" {
		t.Errorf("unexpected first bucket: date=%s net=%s", first.Date, first.Net)
	}
}

func TestDailyStatsEndDateOnlyDefaultsStart(t *testing.T) {
	api := newAPITest(t)
	token := api.registerUser(t, "user@example.com")

	recorder := api.request(t, http.MethodPost, "/api/v1/transactions", token, map[string]interface{}{
		"date":     "2024-01-20",
		"type":     "expense",
		"category": "groceries",
		"amount":   "15.00",
	})
	if recorder.Code != http.StatusCreated {
		t.Fatalf("seed transaction: expected status 201, got %d", recorder.Code)
	}

	recorder = api.request(t, http.MethodGet, "/api/v1/stats/daily?end_date=2024-01-31", token, nil)
	if recorder.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d: %s", recorder.Code, recorder.Body.String())
	}

	var response struct {
		Stats []struct {
			Date string `json:"date"`
		} `json:"stats"`
		StartDate string `json:"start_date"`
		EndDate   string `json:"end_date"`
	}
	decodeJSON(t, recorder, &response)

	if response.StartDate != "2024-01-01" || response.EndDate != "2024-01-31" {
		t.Errorf("expected window 2024-01-01..2024-01-31, got %s..%s", response.StartDate, response.EndDate)
	}
	if len(response.Stats) != 1 || response.Stats[0].Date != "2024-01-20" {
		t.Fatalf("expected the seeded date inside the derived window, got %+v", response.Stats)
	}
}

func TestLoginRateLimit(t *testing.T) {
	api := newAPITestWithRateLimit(t, 2)

	body := map[string]string{"email": "nobody@example.com", "password": "wrong-password"}
	for i := 0; i < 2; i++ {
		recorder := api.request(t, http.MethodPost, "/api/v1/auth/login", "", body)
		if recorder.Code != http.StatusUnauthorized {
			t.Fatalf("attempt %d: expected status 401, got %d", i+1, recorder.Code)
		}
	}

	recorder := api.request(t, http.MethodPost, "/api/v1/auth/login", "", body)
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("expected status 429, got %d", recorder.Code)
	}
}

func newAPITestWithRateLimit(t *testing.T, maxAttempts int) *apiTest {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open database: %v", err)
	}
	if err := db.AutoMigrate(&model.UserModel{}, &model.EntryModel{}, &model.TransactionModel{}); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}

	redisServer := miniredis.RunT(t)
	redisClient := redis.NewClient(&redis.Options{Addr: redisServer.Addr()})
	t.Cleanup(func() { _ = redisClient.Close() })

	cfg := &config.Config{
		Server: config.ServerConfig{Environment: "test"},
		JWT: config.JWTConfig{
			Secret:            "test-secret",
			AccessTokenExpiry: time.Hour,
		},
		RateLimit: config.RateLimitConfig{
			MaxAttempts: maxAttempts,
			Window:      time.Minute,
		},
	}

	injector := dependency.NewInjector(cfg, db, redisClient)
	return &apiTest{engine: injector.Router.Setup(cfg.Server.Environment)}
}
