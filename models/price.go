package models

import "fmt"

// Price is the shared monetary shape across flights, hotels and cars.
// Formatted is always derived from Amount+Currency, never set by hand.
type Price struct {
	Amount    float64 `json:"amount"`
	Currency  string  `json:"currency"`
	Formatted string  `json:"formatted"`
}

var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
}

// NewPrice builds a Price with the display string precomputed:
// currency-prefixed, zero decimal places.
func NewPrice(amount float64, currency string) Price {
	if currency == "" {
		currency = "USD"
	}
	symbol, ok := currencySymbols[currency]
	if !ok {
		symbol = currency + " "
	}
	return Price{
		Amount:    amount,
		Currency:  currency,
		Formatted: fmt.Sprintf("%s%.0f", symbol, amount),
	}
}
