// Package currencypkg provides common currency related functionality for apps.
package currencypkg

// Currency ids as seeded in the currencies table.
const (
	USD int32 = iota + 1
	EUR
	RMB
)

// SupportedCurrencies maps seeded currency ids to their codes.
var SupportedCurrencies = map[int32]string{
	USD: "USD",
	EUR: "EUR",
	RMB: "RMB",
}

// IsSupportedCurrency returns true if the currncy id is supported.
func IsSupportedCurrency(id int32) bool {
	_, ok := SupportedCurrencies[id]
	return ok
}
