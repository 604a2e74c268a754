package service

import (
	"testing"

	"github.com/lib/pq"
)

func TestAppendUniqueID_Idempotent(t *testing.T) {
	roster := pq.StringArray{}

	roster = AppendUniqueID(roster, "user-1")
	roster = AppendUniqueID(roster, "user-2")
	// Duplicate webhook delivery appends the same member again.
	roster = AppendUniqueID(roster, "user-1")

	if len(roster) != 2 {
		t.Fatalf("Expected 2 entries, got %d: %v", len(roster), roster)
	}
	if roster[0] != "user-1" || roster[1] != "user-2" {
		t.Errorf("Expected insertion order preserved, got %v", roster)
	}
}

func TestContainsID(t *testing.T) {
	roster := pq.StringArray{"a", "b"}
	if !ContainsID(roster, "a") {
		t.Error("Expected a to be present")
	}
	if ContainsID(roster, "c") {
		t.Error("Expected c to be absent")
	}
	if ContainsID(nil, "a") {
		t.Error("Expected nothing in a nil roster")
	}
}

func TestGatewayFor_UnsupportedMethod(t *testing.T) {
	if _, err := GatewayFor("paypal"); err != ErrUnsupportedPaymentMethod {
		t.Fatalf("Expected ErrUnsupportedPaymentMethod, got: %v", err)
	}
}

func TestCashGateway_NoCallback(t *testing.T) {
	g := &CashGateway{}
	if _, err := g.VerifyCallback(nil); err == nil {
		t.Fatal("Expected error: cash orders have no provider callback")
	}
}
