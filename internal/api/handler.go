package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/eugenenazirov/change-calculator/internal/calculator"
	"github.com/eugenenazirov/change-calculator/internal/money"
)

type contextKey string

const requestIDContextKey contextKey = "requestID"

const defaultMaxAmount = 1_000_000

// Handler wires the calculator into HTTP handlers.
type Handler struct {
	calculator calculator.Calculator
	maxAmount  int

	clock func() time.Time
}

// HandlerOption configures Handler behaviour.
type HandlerOption func(*Handler)

// WithClock overrides the time source, primarily for tests.
func WithClock(clock func() time.Time) HandlerOption {
	return func(h *Handler) {
		h.clock = clock
	}
}

// WithMaxAmount caps the amount accepted by the change endpoint.
func WithMaxAmount(limit int) HandlerOption {
	return func(h *Handler) {
		if limit > 0 {
			h.maxAmount = limit
		}
	}
}

// NewHandler constructs a Handler with the provided dependencies.
func NewHandler(calc calculator.Calculator, opts ...HandlerOption) *Handler {
	h := &Handler{
		calculator: calc,
		maxAmount:  defaultMaxAmount,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *Handler) handleHealth(w http.ResponseWriter, r *http.Request) {
	_ = r
	resp := healthResponse{
		Status:    "ok",
		Timestamp: h.clock(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleDenominations(w http.ResponseWriter, r *http.Request) {
	_ = r
	writeJSON(w, http.StatusOK, denominationsResponse{Denominations: calculator.Denominations()})
}

func (h *Handler) handleChange(w http.ResponseWriter, r *http.Request) {
	var req changeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "unable to parse JSON payload")
		return
	}

	if req.Amount == nil {
		writeError(w, http.StatusBadRequest, "Invalid request", "amount is required")
		return
	}
	amount := *req.Amount

	if amount > h.maxAmount {
		writeError(w, http.StatusBadRequest, "Amount too large",
			fmt.Sprintf("amount must not exceed %d", h.maxAmount),
			fmt.Sprintf("Split the change into amounts of at most %s%s", money.Symbol, money.FormatMajor(h.maxAmount)))
		return
	}

	start := time.Now()
	coins, calcErr := h.calculator.Calculate(amount)
	elapsed := time.Since(start)

	if calcErr != nil {
		switch {
		case errors.Is(calcErr, calculator.ErrInvalidAmount):
			writeError(w, http.StatusBadRequest, "Invalid amount",
				fmt.Sprintf("you cannot get change for %d: %v", amount, calcErr))
		case errors.Is(calcErr, calculator.ErrUnrepresentable):
			writeError(w, http.StatusUnprocessableEntity, "Cannot make exact change", calcErr.Error())
		default:
			writeInternalError(w, calcErr)
		}
		return
	}

	summary := calculator.Summarize(coins)
	breakdown := make([]coinCount, 0, len(summary.Counts))
	for _, c := range summary.Counts {
		breakdown = append(breakdown, coinCount{Denomination: c.Denomination, Count: c.Count})
	}

	resp := changeResponse{
		Amount:            amount,
		Formatted:         money.FormatMajor(amount),
		Coins:             coins,
		TotalCoins:        summary.Coins,
		Breakdown:         breakdown,
		CalculationTimeMs: elapsed.Milliseconds(),
	}
	writeJSON(w, http.StatusOK, resp)
}

func requestIDFromContext(ctx context.Context) string {
	if v := ctx.Value(requestIDContextKey); v != nil {
		if id, ok := v.(string); ok {
			return id
		}
	}
	return ""
}

type changeRequest struct {
	Amount *int `json:"amount"`
}

type coinCount struct {
	Denomination int `json:"denomination"`
	Count        int `json:"count"`
}

type changeResponse struct {
	Amount            int         `json:"amount"`
	Formatted         string      `json:"formatted"`
	Coins             []int       `json:"coins"`
	TotalCoins        int         `json:"totalCoins"`
	Breakdown         []coinCount `json:"breakdown"`
	CalculationTimeMs int64       `json:"calculationTimeMs"`
}

type denominationsResponse struct {
	Denominations []int `json:"denominations"`
}

type healthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

type errorResponse struct {
	Error      string `json:"error"`
	Details    string `json:"details,omitempty"`
	Suggestion string `json:"suggestion,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	if status != 0 {
		w.WriteHeader(status)
	}
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message, details string, suggestion ...string) {
	resp := errorResponse{
		Error:   message,
		Details: details,
	}
	if len(suggestion) > 0 {
		resp.Suggestion = suggestion[0]
	}
	writeJSON(w, status, resp)
}

func writeInternalError(w http.ResponseWriter, err error) {
	writeError(w, http.StatusInternalServerError, "Internal error", err.Error())
}
