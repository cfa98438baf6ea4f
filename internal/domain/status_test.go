package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCanTransition(t *testing.T) {
	t.Parallel()

	cases := []struct {
		from, to OrderStatus
		want     bool
	}{
		{StatusPending, StatusOpen, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusPaid, false},
		{StatusOpen, StatusPaid, true},
		{StatusOpen, StatusPreparing, true},
		{StatusOpen, StatusCompleted, false},
		{StatusPreparing, StatusReady, true},
		{StatusPreparing, StatusPaid, false},
		{StatusReady, StatusServed, true},
		{StatusServed, StatusPaid, true},
		{StatusServed, StatusCompleted, true},
		{StatusServed, StatusOpen, false},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, CanTransition(tc.from, tc.to),
			"%s -> %s", tc.from, tc.to)
	}
}

func TestTerminalStatesHaveNoExits(t *testing.T) {
	t.Parallel()

	all := []OrderStatus{
		StatusPending, StatusOpen, StatusPreparing, StatusReady, StatusServed,
		StatusPaid, StatusCompleted, StatusCancelled, StatusRefunded,
	}
	for _, from := range all {
		if !from.IsTerminal() {
			continue
		}
		for _, to := range all {
			require.False(t, CanTransition(from, to),
				"terminal %s must not transition to %s", from, to)
		}
	}
}

func TestIsValid(t *testing.T) {
	t.Parallel()

	require.True(t, StatusOpen.IsValid())
	require.True(t, StatusRefunded.IsValid())
	require.False(t, OrderStatus("shipped").IsValid())
	require.False(t, OrderStatus("").IsValid())

	require.True(t, OrderDineIn.IsValid())
	require.True(t, OrderDelivery.IsValid())
	require.False(t, OrderType("drive-thru").IsValid())
}
