package domain

// Spot option keys. "standard" is the default when a checkout request does
// not name an option.
const (
	SpotOptionStandard = "standard"
	SpotOptionCovered  = "covered"
	SpotOptionVIP      = "vip"
)

// SpotOption is one sellable parking pass tier. Base prices are minor units
// per currency. The catalog is static configuration, immutable for the
// process lifetime.
type SpotOption struct {
	Key         string           `json:"key"`
	Label       string           `json:"label"`
	Description string           `json:"description"`
	BasePrices  map[string]int64 `json:"base_prices"`
}

// SpotQuote is a spot option with a charge preview computed for a specific
// currency and account country. Amount is nil when there is no base price
// for the currency.
type SpotQuote struct {
	SpotOption
	Currency string `json:"currency,omitempty"`
	Amount   *int64 `json:"amount,omitempty"`
}

var spotOptions = []SpotOption{
	{
		Key:         SpotOptionStandard,
		Label:       "Standard",
		Description: "Open-air, general area",
		BasePrices:  map[string]int64{"usd": 1500, "cad": 1500, "mxn": 1500},
	},
	{
		Key:         SpotOptionCovered,
		Label:       "Covered",
		Description: "Covered spot near main gate",
		BasePrices:  map[string]int64{"usd": 2000, "cad": 2000, "mxn": 2000},
	},
	{
		Key:         SpotOptionVIP,
		Label:       "VIP",
		Description: "VIP row, closest to entrance",
		BasePrices:  map[string]int64{"usd": 3000, "cad": 3000, "mxn": 3000},
	},
}

// SpotOptions returns the spot catalog in display order.
func SpotOptions() []SpotOption {
	return spotOptions
}

// SpotOptionByKey returns the spot option for the given key.
func SpotOptionByKey(key string) (SpotOption, bool) {
	for _, option := range spotOptions {
		if option.Key == key {
			return option, true
		}
	}

	return SpotOption{}, false
}

// SpotOptionKeys returns the valid option keys in display order.
func SpotOptionKeys() []string {
	keys := make([]string, 0, len(spotOptions))
	for _, option := range spotOptions {
		keys = append(keys, option.Key)
	}

	return keys
}
