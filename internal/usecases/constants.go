package usecases

// currencySymbols maps ISO-like currency codes to display symbols.
// Unknown codes pass through unchanged as their raw code.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"JPY": "¥",
	"GBP": "£",
	"NGN": "₦",
	"ZAR": "R",
	"KES": "KSh",
	"CNY": "¥",
	"INR": "₹",
	"SGD": "S$",
}

// DefaultCurrency is used when a user has no plans yet
const DefaultCurrency = "USD"

// CurrencySymbol resolves a currency code to its display symbol
func CurrencySymbol(code string) string {
	if symbol, ok := currencySymbols[code]; ok {
		return symbol
	}
	return code
}
