package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// RateProvider answers rate lookups and comparisons.
type RateProvider interface {
	GetRate(ctx context.Context, source, target models.Currency) (*models.Rate, error)
	CompareRates(ctx context.Context, source models.Currency, amount decimal.Decimal, targets []models.Currency) ([]models.RateComparison, error)
}

// RateCompareRequest represents the JSON body for a rate comparison
// swagger:model RateCompareRequest
type RateCompareRequest struct {
	// Source currency
	// required: true
	// default: USD
	SourceCurrency string `json:"source_currency"`

	// Amount to convert, in the source currency
	// required: true
	// default: 1000.00
	Amount decimal.Decimal `json:"amount"`

	// Candidate target currencies
	// required: true
	TargetCurrencies []string `json:"target_currencies"`
}

// NewRateHandler returns the current quote for a currency pair.
// @Summary Get exchange rate
// @Description Returns the current rate for a pair, including the spread and the effective rate exchanges would settle at.
// @Tags rates
// @Produce json
// @Param source path string true "Source currency"
// @Param target path string true "Target currency"
// @Success 200 {object} models.Rate
// @Failure 400 {object} handlers.ExchangeErrorResponse "Invalid currency pair"
// @Failure 503 {object} handlers.ExchangeErrorResponse "Rate service unavailable"
// @Router /exchange/rates/{source}/{target} [get]
func NewRateHandler(rates RateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		source := models.Currency(chi.URLParam(r, "source"))
		target := models.Currency(chi.URLParam(r, "target"))

		rate, err := rates.GetRate(r.Context(), source, target)
		if err != nil {
			writeExchangeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, rate)
	}
}

// NewRateCompareHandler ranks target currencies by resulting amount.
// @Summary Compare exchange rates
// @Description Ranks candidate target currencies by how much the given source amount would yield, best first. Pairs without a resolvable rate are skipped.
// @Tags rates
// @Accept json
// @Produce json
// @Param request body handlers.RateCompareRequest true "Comparison request"
// @Success 200 {array} models.RateComparison
// @Failure 400 {object} handlers.ExchangeErrorResponse "Invalid request"
// @Router /exchange/rates/compare [post]
func NewRateCompareHandler(rates RateProvider) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RateCompareRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		if len(req.TargetCurrencies) == 0 {
			writeError(w, http.StatusBadRequest, "target_currencies is required")
			return
		}

		targets := make([]models.Currency, 0, len(req.TargetCurrencies))
		for _, raw := range req.TargetCurrencies {
			targets = append(targets, models.Currency(raw))
		}

		comparisons, err := rates.CompareRates(r.Context(),
			models.Currency(req.SourceCurrency), req.Amount, targets)
		if err != nil {
			writeExchangeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, comparisons)
	}
}
