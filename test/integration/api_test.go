package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"slices"
	"testing"

	"go.uber.org/zap/zaptest"

	"github.com/eugenenazirov/change-calculator/internal/api"
	"github.com/eugenenazirov/change-calculator/internal/calculator"
)

func newRouter(t *testing.T) http.Handler {
	t.Helper()

	handler := api.NewHandler(calculator.New())
	logger := zaptest.NewLogger(t)
	return api.NewRouter(handler, logger, api.WithRateLimit(0, 0))
}

func performRequest(t *testing.T, handler http.Handler, method, target string, body []byte, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, bytes.NewReader(body))
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestIntegrationFlow(t *testing.T) {
	handler := newRouter(t)

	rec := performRequest(t, handler, http.MethodGet, "/api/health", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from health, got %d", rec.Code)
	}

	rec = performRequest(t, handler, http.MethodGet, "/api/denominations", nil, nil)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 from denominations, got %d", rec.Code)
	}
	var table struct {
		Denominations []int `json:"denominations"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&table); err != nil {
		t.Fatalf("decode denominations: %v", err)
	}

	for _, amount := range []int{0, 1, 99, 101, 234, 999_999} {
		body, _ := json.Marshal(map[string]any{"amount": amount})
		rec = performRequest(t, handler, http.MethodPost, "/api/change", body, map[string]string{"Content-Type": "application/json"})
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 from change for %d, got %d", amount, rec.Code)
		}

		var response struct {
			Coins      []int `json:"coins"`
			TotalCoins int   `json:"totalCoins"`
		}
		if err := json.NewDecoder(rec.Body).Decode(&response); err != nil {
			t.Fatalf("decode response: %v", err)
		}

		sum := 0
		for _, coin := range response.Coins {
			if !slices.Contains(table.Denominations, coin) {
				t.Fatalf("amount %d: unexpected coin %d", amount, coin)
			}
			sum += coin
		}
		if sum != amount || response.TotalCoins != len(response.Coins) {
			t.Fatalf("amount %d: coins %v do not add up", amount, response.Coins)
		}
	}

	body, _ := json.Marshal(map[string]any{"amount": -1})
	rec = performRequest(t, handler, http.MethodPost, "/api/change", body, map[string]string{"Content-Type": "application/json"})
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for negative amount, got %d", rec.Code)
	}
}
