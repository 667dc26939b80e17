package service

import (
	"fmt"

	"github.com/rochabr/connect-parking-demo/checkout/domain"
	"github.com/rochabr/connect-parking-demo/checkout/pricing"
)

// ListSpotOptions returns the sellable parking pass tiers. When country and
// currency are both given, each option carries the adjusted charge amount,
// so previews always match what checkout will charge. Without them only the
// raw catalog is returned.
func (s *CheckoutService) ListSpotOptions(country, currency string) ([]domain.SpotQuote, error) {
	options := domain.SpotOptions()
	quotes := make([]domain.SpotQuote, 0, len(options))

	if country == "" || currency == "" {
		for _, option := range options {
			quotes = append(quotes, domain.SpotQuote{SpotOption: option})
		}

		return quotes, nil
	}

	if !domain.CountryAllowed(country) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCountry, country)
	}

	for _, option := range options {
		quote := domain.SpotQuote{
			SpotOption: option,
			Currency:   currency,
		}

		if base, ok := option.BasePrices[currency]; ok {
			amount, err := pricing.Price(base, country)
			if err != nil {
				return nil, fmt.Errorf("%w: %s", ErrUnsupportedCountry, country)
			}

			quote.Amount = &amount
		}

		quotes = append(quotes, quote)
	}

	return quotes, nil
}
