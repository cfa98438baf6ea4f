package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"coffeeos/internal/domain"
)

func TestNormalizeSalesKey(t *testing.T) {
	t.Parallel()

	got, err := Normalize(`[{"date":"2023-01-01","sales":150},{"date":"2023-01-02","sales":165.5}]`)
	require.NoError(t, err)
	require.Equal(t, []domain.PredictedSale{
		{Date: "2023-01-01", PredictedSales: 150},
		{Date: "2023-01-02", PredictedSales: 165.5},
	}, got)
}

func TestNormalizePredictedSalesKey(t *testing.T) {
	t.Parallel()

	got, err := Normalize(`[{"date":"2023-01-01","predictedSales":142.25}]`)
	require.NoError(t, err)
	require.Equal(t, []domain.PredictedSale{{Date: "2023-01-01", PredictedSales: 142.25}}, got)
}

func TestNormalizePreservesOrder(t *testing.T) {
	t.Parallel()

	// Deliberately non-chronological input; the oracle's order is kept as is.
	got, err := Normalize(`[{"date":"2023-01-03","sales":3},{"date":"2023-01-01","sales":1}]`)
	require.NoError(t, err)
	require.Equal(t, "2023-01-03", got[0].Date)
	require.Equal(t, "2023-01-01", got[1].Date)
}

func TestNormalizeRejectsBadPayloads(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name, payload string
	}{
		{"truncated json", `{not valid json at all`},
		{"json null", `null`},
		{"object not array", `{"date":"2023-01-01","sales":1}`},
		{"missing sales value", `[{"date":"2023-01-01"}]`},
		{"missing date", `[{"sales":100}]`},
		{"bad element mid-series", `[{"date":"2023-01-01","sales":1},{"date":""}]`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			got, err := Normalize(tc.payload)
			require.ErrorIs(t, err, domain.ErrMalformedForecast)
			require.Nil(t, got, "a bad payload must yield no partial results")
		})
	}
}

func TestNormalizeEmptySeries(t *testing.T) {
	t.Parallel()

	got, err := Normalize(`[]`)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestNormalizeDistinguishesMalformedFromOther(t *testing.T) {
	t.Parallel()

	_, err := Normalize(`not json`)
	require.True(t, errors.Is(err, domain.ErrMalformedForecast))
	require.False(t, errors.Is(err, domain.ErrInvalidState))
}
