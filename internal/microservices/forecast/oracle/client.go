package oracle

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"coffeeos/internal/config"
)

// Request is the wire contract with the hosted forecasting model. The
// historical series travels as a JSON-encoded string, not a nested array.
type Request struct {
	HistoricalSalesData string `json:"historicalSalesData"`
	ForecastDays        int    `json:"forecastDays"`
}

type Response struct {
	PredictedSales string `json:"predictedSales"`
	Summary        string `json:"summary"`
}

// Oracle produces a sales forecast from a historical series. It may be
// unreachable or return text that fails decoding; both are caller-visible
// errors, never silently substituted with defaults.
type Oracle interface {
	Forecast(ctx context.Context, req Request) (Response, error)
}

type HTTPOracle struct {
	url    string
	apiKey string
	client *http.Client
}

func NewHTTPOracle(cfg config.ForecastConfig) *HTTPOracle {
	timeout := time.Duration(cfg.TimeoutS) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &HTTPOracle{
		url:    cfg.OracleURL,
		apiKey: cfg.APIKey,
		client: &http.Client{Timeout: timeout},
	}
}

func (o *HTTPOracle) Forecast(ctx context.Context, req Request) (Response, error) {
	if o.url == "" {
		return Response{}, fmt.Errorf("forecast oracle URL is not configured")
	}

	body, err := json.Marshal(req)
	if err != nil {
		return Response{}, fmt.Errorf("marshal forecast request: %w", err)
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, o.url, bytes.NewReader(body))
	if err != nil {
		return Response{}, fmt.Errorf("build forecast request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if o.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+o.apiKey)
	}

	resp, err := o.client.Do(httpReq)
	if err != nil {
		return Response{}, fmt.Errorf("call forecast oracle: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return Response{}, fmt.Errorf("forecast oracle returned status %d", resp.StatusCode)
	}

	var out Response
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Response{}, fmt.Errorf("decode forecast response: %w", err)
	}
	return out, nil
}
