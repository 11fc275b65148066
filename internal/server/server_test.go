package server

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"looper/finance-dashboard/internal/auth"
	"looper/finance-dashboard/internal/export"
	"looper/finance-dashboard/internal/logging"
	"looper/finance-dashboard/internal/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSnapshot() []models.Transaction {
	return []models.Transaction{
		{
			ID:          "tx_001",
			Date:        time.Date(2024, time.January, 5, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromFloat(350.5),
			Category:    models.CategoryFood,
			Description: "Swiggy order",
			UserID:      "user_001",
			Status:      models.StatusPaid,
		},
		{
			ID:          "tx_002",
			Date:        time.Date(2024, time.February, 14, 0, 0, 0, 0, time.UTC),
			Amount:      decimal.NewFromInt(1200),
			Category:    models.CategoryRent,
			Description: "Monthly rent",
			UserID:      "user_002",
			Status:      models.StatusPending,
		},
	}
}

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	authSvc := auth.NewService("test-secret", nil, &logging.MockLogger{})
	srv := New(authSvc, testSnapshot, &logging.MockLogger{})
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)
	return ts
}

func login(t *testing.T, ts *httptest.Server, userID, password string) (int, string) {
	t.Helper()
	body := strings.NewReader(`{"user_id":"` + userID + `","password":"` + password + `"}`)
	resp, err := http.Post(ts.URL+"/api/auth/login", "application/json", body)
	require.NoError(t, err)
	defer resp.Body.Close()

	var payload map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&payload))
	return resp.StatusCode, payload["token"]
}

func get(t *testing.T, ts *httptest.Server, path, token string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, ts.URL+path, nil)
	require.NoError(t, err)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	return resp
}

func TestLogin(t *testing.T) {
	ts := newTestServer(t)

	status, token := login(t, ts, "user_001", "password1")
	assert.Equal(t, http.StatusOK, status)
	assert.NotEmpty(t, token)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	ts := newTestServer(t)

	status, token := login(t, ts, "user_001", "wrong")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Empty(t, token)
}

func TestLogin_MalformedBody(t *testing.T) {
	ts := newTestServer(t)

	resp, err := http.Post(ts.URL+"/api/auth/login", "application/json", strings.NewReader("{"))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestTransactions(t *testing.T) {
	ts := newTestServer(t)
	_, token := login(t, ts, "user_001", "password1")

	resp := get(t, ts, "/api/transactions", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	var txs []models.Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&txs))
	require.Len(t, txs, 2)
	assert.Equal(t, "tx_001", txs[0].ID)
	assert.Equal(t, models.StatusPending, txs[1].Status)
}

func TestTransactions_MissingToken(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts, "/api/transactions", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTransactions_InvalidToken(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts, "/api/transactions", "not.a.token")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestTransactions_EmptySnapshot(t *testing.T) {
	authSvc := auth.NewService("test-secret", nil, &logging.MockLogger{})
	srv := New(authSvc, func() []models.Transaction { return nil }, nil)
	ts := httptest.NewServer(srv)
	t.Cleanup(ts.Close)

	_, token := login(t, ts, "user_001", "password1")
	resp := get(t, ts, "/api/transactions", token)
	defer resp.Body.Close()

	var txs []models.Transaction
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&txs))
	assert.NotNil(t, txs)
	assert.Empty(t, txs)
}

func TestExport(t *testing.T) {
	ts := newTestServer(t)
	_, token := login(t, ts, "user_002", "password2")

	resp := get(t, ts, "/api/transactions/export", token)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, export.MIMEType, resp.Header.Get("Content-Type"))
	assert.Equal(t, "attachment; filename=transactions.csv", resp.Header.Get("Content-Disposition"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimRight(string(raw), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "date,amount,category", lines[0])
	assert.Contains(t, lines[1], "350.5")
	assert.Contains(t, lines[2], "Rent")
}

func TestExport_RequiresToken(t *testing.T) {
	ts := newTestServer(t)

	resp := get(t, ts, "/api/transactions/export", "")
	defer resp.Body.Close()
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}
