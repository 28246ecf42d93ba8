package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
	"github.com/sbilibin2017/gw-exchange-saga/internal/services"
)

func TestRateHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRates := NewMockRateProvider(ctrl)
	mockRates.EXPECT().
		GetRate(gomock.Any(), models.USD, models.KRW).
		Return(&models.Rate{
			SourceCurrency: models.USD,
			TargetCurrency: models.KRW,
			Rate:           decimal.NewFromFloat(1392.46),
			Spread:         decimal.NewFromFloat(0.005),
			EffectiveRate:  decimal.NewFromFloat(1385.4977),
			EffectiveAt:    time.Now(),
		}, nil)

	req := httptest.NewRequest(http.MethodGet, "/exchange/rates/USD/KRW", nil)
	req = withURLParams(req, "source", "USD", "target", "KRW")
	rr := httptest.NewRecorder()

	NewRateHandler(mockRates).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)

	var rate models.Rate
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &rate))
	assert.Equal(t, models.USD, rate.SourceCurrency)
	assert.True(t, rate.EffectiveRate.LessThan(rate.Rate), "effective rate must include the spread")
}

func TestRateHandler_InvalidPair(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRates := NewMockRateProvider(ctrl)
	mockRates.EXPECT().
		GetRate(gomock.Any(), models.Currency("XAU"), models.KRW).
		Return(nil, services.ErrUnsupportedCurrency)

	req := httptest.NewRequest(http.MethodGet, "/exchange/rates/XAU/KRW", nil)
	req = withURLParams(req, "source", "XAU", "target", "KRW")
	rr := httptest.NewRecorder()

	NewRateHandler(mockRates).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestRateCompareHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRates := NewMockRateProvider(ctrl)
	mockRates.EXPECT().
		CompareRates(gomock.Any(), models.USD, decimal.NewFromInt(1000),
			[]models.Currency{models.KRW, models.EUR}).
		Return([]models.RateComparison{
			{TargetCurrency: models.KRW, TargetAmount: decimal.NewFromInt(1393000)},
			{TargetCurrency: models.EUR, TargetAmount: decimal.NewFromInt(915)},
		}, nil)

	rr := doRequest(NewRateCompareHandler(mockRates), http.MethodPost, "/exchange/rates/compare",
		RateCompareRequest{
			SourceCurrency:   "USD",
			Amount:           decimal.NewFromInt(1000),
			TargetCurrencies: []string{"KRW", "EUR"},
		})

	assert.Equal(t, http.StatusOK, rr.Code)

	var comparisons []models.RateComparison
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &comparisons))
	assert.Len(t, comparisons, 2)
	assert.Equal(t, models.KRW, comparisons[0].TargetCurrency)
}

func TestRateCompareHandler_EmptyTargets(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	rr := doRequest(NewRateCompareHandler(NewMockRateProvider(ctrl)),
		http.MethodPost, "/exchange/rates/compare",
		RateCompareRequest{SourceCurrency: "USD", Amount: decimal.NewFromInt(1000)})

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestSagaListHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSagas := NewMockSagaManager(ctrl)
	mockSagas.EXPECT().
		ListSagas(gomock.Any(), 1, 20).
		Return([]models.Saga{{SagaID: "saga-1", Status: models.SagaCompleted}}, nil)

	rr := doRequest(NewSagaListHandler(mockSagas), http.MethodGet, "/sagas", nil)

	assert.Equal(t, http.StatusOK, rr.Code)

	var sagas []models.Saga
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &sagas))
	assert.Len(t, sagas, 1)
}

func TestSagaListByStatusHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSagas := NewMockSagaManager(ctrl)
	mockSagas.EXPECT().
		ListSagasByStatus(gomock.Any(), models.SagaFailed, 1, 20).
		Return([]models.Saga{{SagaID: "saga-1", Status: models.SagaFailed}}, nil)

	req := httptest.NewRequest(http.MethodGet, "/sagas/status/FAILED", nil)
	req = withURLParams(req, "status", "FAILED")
	rr := httptest.NewRecorder()

	NewSagaListByStatusHandler(mockSagas).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusOK, rr.Code)
}

func TestSagaListByStatusHandler_InvalidStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSagas := NewMockSagaManager(ctrl)
	mockSagas.EXPECT().
		ListSagasByStatus(gomock.Any(), models.SagaStatus("NOPE"), 1, 20).
		Return(nil, services.ErrInvalidSagaStatus)

	req := httptest.NewRequest(http.MethodGet, "/sagas/status/NOPE", nil)
	req = withURLParams(req, "status", "NOPE")
	rr := httptest.NewRecorder()

	NewSagaListByStatusHandler(mockSagas).ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
