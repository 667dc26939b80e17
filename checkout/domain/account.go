package domain

// Countries the platform sells parking passes in. Connected accounts from
// any other country are filtered out and cannot be charged.
const (
	CountryUS = "US"
	CountryCA = "CA"
	CountryMX = "MX"
)

var countryCurrencies = map[string]string{
	CountryUS: "usd",
	CountryCA: "cad",
	CountryMX: "mxn",
}

// CountryAllowed reports whether connected accounts from the given country
// can be listed and charged.
func CountryAllowed(country string) bool {
	_, ok := countryCurrencies[country]
	return ok
}

// CurrencyForCountry returns the settlement currency used for accounts in
// the given country.
func CurrencyForCountry(country string) (string, bool) {
	currency, ok := countryCurrencies[country]
	return currency, ok
}

// ConnectedAccount is a parking lot merchant onboarded under the platform.
type ConnectedAccount struct {
	ID              string            `json:"id"`
	Name            string            `json:"name"`
	Country         string            `json:"country"`
	DefaultCurrency *string           `json:"default_currency"`
	Capabilities    map[string]string `json:"capabilities"`
}

// Currency resolves the account's charge currency. The account's default
// currency wins, otherwise the currency mapped from its country.
func (a ConnectedAccount) Currency() (string, bool) {
	if a.DefaultCurrency != nil && *a.DefaultCurrency != "" {
		return *a.DefaultCurrency, true
	}

	return CurrencyForCountry(a.Country)
}
