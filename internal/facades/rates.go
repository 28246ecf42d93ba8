package facades

import (
	"context"
	"time"

	pb "github.com/sbilibin2017/proto-exchange/exchange"
	"github.com/shopspring/decimal"

	"github.com/sbilibin2017/gw-exchange-saga/internal/logger"
	"github.com/sbilibin2017/gw-exchange-saga/internal/models"
)

// ExchangeRatesGRPCFacade resolves rate quotes via the external exchanger
// service. The spread is a service-level configuration applied uniformly to
// every quoted pair; the effective rate is what exchanges settle at.
type ExchangeRatesGRPCFacade struct {
	client pb.ExchangeServiceClient
	spread decimal.Decimal
}

// NewExchangeRatesGRPCFacade creates a facade with a gRPC client and the
// configured spread fraction (e.g. 0.005 for 0.5%).
func NewExchangeRatesGRPCFacade(client pb.ExchangeServiceClient, spread decimal.Decimal) *ExchangeRatesGRPCFacade {
	return &ExchangeRatesGRPCFacade{client: client, spread: spread}
}

// GetRate fetches the mid-market rate for a currency pair and resolves the
// effective rate after spread.
func (f *ExchangeRatesGRPCFacade) GetRate(ctx context.Context, source, target models.Currency) (*models.Rate, error) {
	req := &pb.CurrencyRequest{
		FromCurrency: source.String(),
		ToCurrency:   target.String(),
	}

	resp, err := f.client.GetExchangeRateForCurrency(ctx, req)
	if err != nil {
		logger.Log.Errorw("failed to fetch exchange rate via gRPC",
			"from", source, "to", target, "error", err)
		return nil, err
	}

	rate := decimal.NewFromFloat32(resp.Rate)
	effective := rate.Mul(decimal.NewFromInt(1).Sub(f.spread))

	return &models.Rate{
		SourceCurrency: source,
		TargetCurrency: target,
		Rate:           rate,
		Spread:         f.spread,
		EffectiveRate:  effective,
		EffectiveAt:    time.Now(),
	}, nil
}
