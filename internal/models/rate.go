package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is an exchange rate quote with the spread already resolved.
// EffectiveRate is the rate actually applied to exchanges.
type Rate struct {
	SourceCurrency Currency        `json:"source_currency"`
	TargetCurrency Currency        `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`           // Mid-market rate
	Spread         decimal.Decimal `json:"spread"`         // Fraction taken off the mid-market rate
	EffectiveRate  decimal.Decimal `json:"effective_rate"` // Rate * (1 - Spread)
	EffectiveAt    time.Time       `json:"effective_at"`
}

// TargetAmount converts the given source amount at the effective rate,
// rounded down to 2 decimal places.
func (r *Rate) TargetAmount(sourceAmount decimal.Decimal) decimal.Decimal {
	return sourceAmount.Mul(r.EffectiveRate).RoundDown(2)
}

// RateComparison is one row of a rate comparison: what a fixed source
// amount would yield in a candidate target currency.
type RateComparison struct {
	TargetCurrency Currency        `json:"target_currency"`
	Rate           decimal.Decimal `json:"rate"`
	EffectiveRate  decimal.Decimal `json:"effective_rate"`
	TargetAmount   decimal.Decimal `json:"target_amount"`
}
