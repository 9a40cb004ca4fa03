package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestExecutionOrder_Strings(t *testing.T) {
	bond := NewBond("9128283H1", CUSIP, "US2Y", 0.0175, mustDate("2006/01/02", "2019/11/30"))

	t.Run("top level order renders NO", func(t *testing.T) {
		order := ExecutionOrder{
			Product:         bond,
			Side:            Bid,
			OrderID:         "ABC123",
			OrderType:       Market,
			Price:           decimal.NewFromInt(100),
			VisibleQuantity: 1000000,
			HiddenQuantity:  0,
			ParentOrderID:   "",
			IsChildOrder:    false,
		}
		strs := order.Strings()
		if strs[len(strs)-1] != "NO" {
			t.Errorf("expected NO for top level order, got %s", strs[len(strs)-1])
		}
	})

	t.Run("child order renders YES", func(t *testing.T) {
		order := ExecutionOrder{Product: bond, IsChildOrder: true}
		strs := order.Strings()
		if strs[len(strs)-1] != "YES" {
			t.Errorf("expected YES for child order, got %s", strs[len(strs)-1])
		}
	})
}

func TestNewAlgoExecution(t *testing.T) {
	bond := NewBond("9128283H1", CUSIP, "US2Y", 0.0175, mustDate("2006/01/02", "2019/11/30"))
	algo := NewAlgoExecution(bond, Offer, "XYZ", Market, decimal.NewFromInt(100), 500, 0, "", false)

	if algo.Order.Product.ProductID() != "9128283H1" {
		t.Errorf("expected wrapped order to carry the product, got %v", algo.Order.Product)
	}
	if algo.Order.Side != Offer {
		t.Errorf("expected OFFER side, got %v", algo.Order.Side)
	}
}
