package domain

import (
	"github.com/shopspring/decimal"

	"treasurysoa/internal/fracprice"
)

// ExecutionOrder is an order that can be placed on an exchange
// (spec.md §3). OrderID is unique per emission; ParentOrderID is empty
// for top-level orders.
type ExecutionOrder struct {
	Product         Product
	Side            PricingSide
	OrderID         string
	OrderType       OrderType
	Price           decimal.Decimal
	VisibleQuantity int64
	HiddenQuantity  int64
	ParentOrderID   string
	IsChildOrder    bool
}

// Strings renders an ExecutionOrder the way the original ToStrings() did,
// including the YES/NO rendering of IsChildOrder from spec.md §6.
func (e ExecutionOrder) Strings() []string {
	isChild := "NO"
	if e.IsChildOrder {
		isChild = "YES"
	}
	return []string{
		e.Product.ProductID(),
		e.Side.String(),
		e.OrderID,
		e.OrderType.String(),
		fracprice.Encode(e.Price),
		itoa(e.VisibleQuantity),
		itoa(e.HiddenQuantity),
		e.ParentOrderID,
		isChild,
	}
}

// AlgoExecution wraps exactly one ExecutionOrder (spec.md §3). The
// wrapped order's lifetime is bound to the AlgoExecution that produced
// it — there is no independent ownership path to it.
type AlgoExecution struct {
	Order ExecutionOrder
}

// NewAlgoExecution constructs an AlgoExecution over a fresh
// ExecutionOrder built from the given fields (mirrors the original
// AlgoExecution constructor, which builds the wrapped order in place).
func NewAlgoExecution(product Product, side PricingSide, orderID string, orderType OrderType, price decimal.Decimal, visibleQuantity, hiddenQuantity int64, parentOrderID string, isChildOrder bool) AlgoExecution {
	return AlgoExecution{Order: ExecutionOrder{
		Product:         product,
		Side:            side,
		OrderID:         orderID,
		OrderType:       orderType,
		Price:           price,
		VisibleQuantity: visibleQuantity,
		HiddenQuantity:  hiddenQuantity,
		ParentOrderID:   parentOrderID,
		IsChildOrder:    isChildOrder,
	}}
}

func itoa(n int64) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	if neg {
		i--
		buf[i] = '-'
	}
	return string(buf[i:])
}
