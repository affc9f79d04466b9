package domain

import "testing"

func TestOrderStatus_Known(t *testing.T) {
	tests := []struct {
		status OrderStatus
		want   bool
		name   string
	}{
		{status: OrderStatusNotPaid, want: true, name: "not_paid"},
		{status: OrderStatusPaid, want: true, name: "paid"},
		{status: OrderStatusCollected, want: true, name: "collected"},
		{status: OrderStatusCancelled, want: true, name: "cancelled"},
		{status: OrderStatusRefunded, want: true, name: "refunded"},
		{status: OrderStatus(42), want: false, name: "unknown"},
		{status: OrderStatus(-1), want: false, name: "unknown"},
	}

	for _, tc := range tests {
		if got := tc.status.Known(); got != tc.want {
			t.Fatalf("status %d known=%v, want %v", tc.status, got, tc.want)
		}
		if got := tc.status.String(); got != tc.name {
			t.Fatalf("status %d name=%q, want %q", tc.status, got, tc.name)
		}
	}
}

func TestResponseHelpers(t *testing.T) {
	ok := Success("Success", "100.0")
	if !ok.OK() || ok.Data != "100.0" {
		t.Fatalf("unexpected success envelope: %+v", ok)
	}

	fail := Failure[*Order]("Order Not Found")
	if fail.OK() || fail.Data != nil || fail.Msg != "Order Not Found" {
		t.Fatalf("unexpected failure envelope: %+v", fail)
	}
}
