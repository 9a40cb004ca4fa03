package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewPrice(t *testing.T) {
	bond := NewBond("X", CUSIP, "X", 0, mustDate("2006/01/02", "2030/01/01"))

	t.Run("rejects negative spread", func(t *testing.T) {
		_, err := NewPrice(bond, decimal.NewFromInt(100), decimal.NewFromInt(-1))
		if err == nil {
			t.Fatal("expected error for negative spread")
		}
	})

	t.Run("accepts zero spread", func(t *testing.T) {
		_, err := NewPrice(bond, decimal.NewFromInt(100), decimal.Zero)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPrice_Strings(t *testing.T) {
	bond := NewBond("9128283H1", CUSIP, "US2Y", 0.0175, mustDate("2006/01/02", "2019/11/30"))
	p, err := NewPrice(bond, decimal.NewFromFloat(100.0+8.0/256.0), decimal.NewFromFloat(4.0/256.0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	strs := p.Strings()
	if len(strs) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(strs))
	}
	if strs[0] != "9128283H1" {
		t.Errorf("expected product id first, got %s", strs[0])
	}
	if strs[1] != "100-010" {
		t.Errorf("expected encoded mid 100-010, got %s", strs[1])
	}
	if strs[2] != "0-00+" {
		t.Errorf("expected encoded spread 0-00+, got %s", strs[2])
	}
}
