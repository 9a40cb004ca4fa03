package domain

import "testing"

func TestRegistry_Lookup(t *testing.T) {
	reg := NewRegistry()

	t.Run("known cusip", func(t *testing.T) {
		bond, ok := reg.Lookup("9128283H1")
		if !ok {
			t.Fatal("expected known CUSIP to be found")
		}
		if bond.Ticker() != "US2Y" {
			t.Errorf("expected US2Y, got %s", bond.Ticker())
		}
	})

	t.Run("unknown cusip returns zero bond", func(t *testing.T) {
		bond, ok := reg.Lookup("NOPE")
		if ok {
			t.Fatal("expected unknown CUSIP to report ok=false")
		}
		if bond.ProductID() != "" {
			t.Errorf("expected zero-value bond, got %+v", bond)
		}
	})
}

func TestRegistry_PV01(t *testing.T) {
	reg := NewRegistry()

	pv01, ok := reg.PV01("9128283H1")
	if !ok {
		t.Fatal("expected known CUSIP to have a PV01")
	}
	if pv01 != 0.01948992 {
		t.Errorf("expected 0.01948992, got %v", pv01)
	}

	if _, ok := reg.PV01("NOPE"); ok {
		t.Error("expected unknown CUSIP to report ok=false")
	}
}
