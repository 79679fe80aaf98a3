package models

import "testing"

func TestOrderStatusTransitions(t *testing.T) {
	cases := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{OrderStatusAccepted, OrderStatusInProgress, true},
		{OrderStatusAccepted, OrderStatusCancelled, true},
		{OrderStatusAccepted, OrderStatusIssued, false},
		{OrderStatusInProgress, OrderStatusReady, true},
		{OrderStatusInProgress, OrderStatusAccepted, false},
		{OrderStatusReady, OrderStatusIssued, true},
		{OrderStatusReady, OrderStatusCancelled, true},
		{OrderStatusIssued, OrderStatusCancelled, false},
		{OrderStatusCancelled, OrderStatusAccepted, false},
	}

	for _, tc := range cases {
		order := &Order{Status: tc.from}
		if got := order.CanTransitionTo(tc.to); got != tc.allowed {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.allowed, got)
		}
	}
}
