package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestInquiry_WithState(t *testing.T) {
	bond := NewBond("9128283H1", CUSIP, "US2Y", 0.0175, mustDate("2006/01/02", "2019/11/30"))
	inquiry := NewInquiry("INQ1", bond, Buy, 1000000, decimal.NewFromInt(100))

	if inquiry.State != Received {
		t.Fatalf("expected new inquiry to start RECEIVED, got %v", inquiry.State)
	}

	quoted := inquiry.WithState(Quoted)
	if quoted.State != Quoted {
		t.Errorf("expected QUOTED, got %v", quoted.State)
	}
	if inquiry.State != Received {
		t.Errorf("WithState must not mutate the receiver, original is now %v", inquiry.State)
	}
}

func TestInquiry_Strings(t *testing.T) {
	bond := NewBond("9128283H1", CUSIP, "US2Y", 0.0175, mustDate("2006/01/02", "2019/11/30"))
	inquiry := NewInquiry("INQ1", bond, Sell, 2000000, decimal.NewFromInt(100)).WithState(Done)

	strs := inquiry.Strings()
	want := []string{"INQ1", "9128283H1", "SELL", "2000000", "100-000", "DONE"}
	if len(strs) != len(want) {
		t.Fatalf("expected %d fields, got %d: %v", len(want), len(strs), strs)
	}
	for i := range want {
		if strs[i] != want[i] {
			t.Errorf("field %d: expected %q, got %q", i, want[i], strs[i])
		}
	}
}
