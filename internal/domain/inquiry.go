package domain

import (
	"github.com/shopspring/decimal"

	"treasurysoa/internal/fracprice"
)

// Inquiry is a customer RFQ moving through the quoting state machine
// (spec.md §3, §4.7).
type Inquiry struct {
	InquiryID string
	Product   Product
	Side      Side
	Quantity  int64
	Price     decimal.Decimal
	State     InquiryState
}

// NewInquiry constructs an Inquiry in the RECEIVED state.
func NewInquiry(inquiryID string, product Product, side Side, quantity int64, price decimal.Decimal) Inquiry {
	return Inquiry{
		InquiryID: inquiryID,
		Product:   product,
		Side:      side,
		Quantity:  quantity,
		Price:     price,
		State:     Received,
	}
}

// WithState returns a copy of the Inquiry transitioned to state. Inquiry
// is treated as immutable everywhere else in the fabric; state
// transitions always produce a new value rather than mutate in place.
func (i Inquiry) WithState(state InquiryState) Inquiry {
	i.State = state
	return i
}

// WithPrice returns a copy of the Inquiry quoted at price.
func (i Inquiry) WithPrice(price decimal.Decimal) Inquiry {
	i.Price = price
	return i
}

// Strings renders an Inquiry for file/log output.
func (i Inquiry) Strings() []string {
	return []string{
		i.InquiryID,
		i.Product.ProductID(),
		i.Side.String(),
		itoa(i.Quantity),
		fracprice.Encode(i.Price),
		i.State.String(),
	}
}
