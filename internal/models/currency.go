package models

// Currency is an ISO-4217 currency code supported by the exchange service.
type Currency string

// Supported currency codes. KRW is the domestic currency and is held on
// current accounts; every other currency is held on forex accounts.
const (
	KRW Currency = "KRW"
	USD Currency = "USD"
	EUR Currency = "EUR"
	JPY Currency = "JPY"
	GBP Currency = "GBP"
	CNY Currency = "CNY"
	CHF Currency = "CHF"
	CAD Currency = "CAD"
	AUD Currency = "AUD"
	SGD Currency = "SGD"
	HKD Currency = "HKD"
)

var supportedCurrencies = map[Currency]struct{}{
	KRW: {}, USD: {}, EUR: {}, JPY: {}, GBP: {}, CNY: {},
	CHF: {}, CAD: {}, AUD: {}, SGD: {}, HKD: {},
}

// IsValid reports whether the currency is one of the supported codes.
func (c Currency) IsValid() bool {
	_, ok := supportedCurrencies[c]
	return ok
}

// IsDomestic reports whether the currency is held on current accounts.
func (c Currency) IsDomestic() bool {
	return c == KRW
}

// String returns the currency code.
func (c Currency) String() string {
	return string(c)
}
