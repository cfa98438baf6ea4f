package service

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"coffeeos/internal/common/logger"
	"coffeeos/internal/domain"
	"coffeeos/internal/microservices/forecast/oracle"
)

type fakeSalesRepo struct {
	history []domain.HistoricalSale
}

func (f *fakeSalesRepo) DailySales(_ context.Context, _ string, _ int) ([]domain.HistoricalSale, error) {
	return f.history, nil
}

type fakeOracle struct {
	gotReq oracle.Request
	resp   oracle.Response
	err    error
}

func (f *fakeOracle) Forecast(_ context.Context, req oracle.Request) (oracle.Response, error) {
	f.gotReq = req
	return f.resp, f.err
}

func testLogger() *logger.Logger {
	return logger.NewWithWriter("forecast-test", &bytes.Buffer{})
}

func TestForecastRoundTrip(t *testing.T) {
	t.Parallel()

	repo := &fakeSalesRepo{history: []domain.HistoricalSale{
		{Date: "2023-01-01", Sales: 150},
		{Date: "2023-01-02", Sales: 180},
	}}
	o := &fakeOracle{resp: oracle.Response{
		PredictedSales: `[{"date":"2023-01-03","predictedSales":195}]`,
		Summary:        "upward trend",
	}}
	svc := NewForecastService(repo, o, testLogger())

	got, err := svc.Forecast(context.Background(), "branch-1", 7)
	require.NoError(t, err)
	require.Equal(t, repo.history, got.Historical)
	require.Equal(t, []domain.PredictedSale{{Date: "2023-01-03", PredictedSales: 195}}, got.Predicted)
	require.Equal(t, "upward trend", got.Summary)

	// The history travels as a JSON-encoded string inside the request body.
	require.Equal(t, 7, o.gotReq.ForecastDays)
	var sent []domain.HistoricalSale
	require.NoError(t, json.Unmarshal([]byte(o.gotReq.HistoricalSalesData), &sent))
	require.Equal(t, repo.history, sent)
}

func TestForecastMalformedOracleReply(t *testing.T) {
	t.Parallel()

	repo := &fakeSalesRepo{history: []domain.HistoricalSale{{Date: "2023-01-01", Sales: 150}}}
	o := &fakeOracle{resp: oracle.Response{PredictedSales: `oops, not json`}}
	svc := NewForecastService(repo, o, testLogger())

	_, err := svc.Forecast(context.Background(), "branch-1", 7)
	require.ErrorIs(t, err, domain.ErrMalformedForecast)
}

func TestForecastRequiresContextAndHistory(t *testing.T) {
	t.Parallel()

	repo := &fakeSalesRepo{}
	svc := NewForecastService(repo, &fakeOracle{}, testLogger())

	_, err := svc.Forecast(context.Background(), "", 7)
	require.ErrorIs(t, err, domain.ErrMissingContext)

	_, err = svc.Forecast(context.Background(), "branch-1", 0)
	require.ErrorIs(t, err, domain.ErrInvalidState)

	// No sales history at all: nothing to extrapolate from.
	_, err = svc.Forecast(context.Background(), "branch-1", 7)
	require.ErrorIs(t, err, domain.ErrInvalidState)
}
