// Package pricing implements the country adjustment applied to parking pass
// base prices. The charged amount and any preview shown to the operator must
// both come from this implementation; nothing else may compute prices.
package pricing

import (
	"errors"
	"math"

	"github.com/rochabr/connect-parking-demo/checkout/domain"
)

var ErrUnsupportedCountry = errors.New("unsupported country")

// Price returns the amount charged, in minor units, for a base price in the
// given account country. CA carries a 1.3 multiplier rounded half away from
// zero, MX a flat x20, US is unchanged. Any other country is unsupported.
func Price(baseMinorUnits int64, country string) (int64, error) {
	switch country {
	case domain.CountryUS:
		return baseMinorUnits, nil
	case domain.CountryCA:
		return int64(math.Round(float64(baseMinorUnits) * 1.3)), nil
	case domain.CountryMX:
		return baseMinorUnits * 20, nil
	default:
		return 0, ErrUnsupportedCountry
	}
}
