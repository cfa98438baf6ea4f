package service

import (
	"encoding/json"
	"fmt"

	"coffeeos/internal/domain"
)

// rawPrediction accepts both spellings the oracle uses for the sales value.
type rawPrediction struct {
	Date           string   `json:"date"`
	Sales          *float64 `json:"sales"`
	PredictedSales *float64 `json:"predictedSales"`
}

// Normalize validates the oracle's serialized series and produces the typed
// sequence the caller renders. Element order is preserved as received. Any
// bad element rejects the whole payload with ErrMalformedForecast; there are
// no partial results.
func Normalize(payload string) ([]domain.PredictedSale, error) {
	var raw []rawPrediction
	if err := json.Unmarshal([]byte(payload), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrMalformedForecast, err)
	}
	// A JSON null decodes into a nil slice without error; it is not a series.
	if raw == nil {
		return nil, fmt.Errorf("%w: payload is not an array", domain.ErrMalformedForecast)
	}

	out := make([]domain.PredictedSale, 0, len(raw))
	for i, p := range raw {
		if p.Date == "" {
			return nil, fmt.Errorf("%w: element %d has no date", domain.ErrMalformedForecast, i)
		}
		value := p.PredictedSales
		if value == nil {
			value = p.Sales
		}
		if value == nil {
			return nil, fmt.Errorf("%w: element %d has no sales value", domain.ErrMalformedForecast, i)
		}
		out = append(out, domain.PredictedSale{Date: p.Date, PredictedSales: *value})
	}
	return out, nil
}
