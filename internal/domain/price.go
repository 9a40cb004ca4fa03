package domain

import (
	"fmt"

	"github.com/shopspring/decimal"

	"treasurysoa/internal/fracprice"
)

// Price is the internal mid/spread view of a product (spec.md §3).
// Invariant: BidOfferSpread >= 0.
type Price struct {
	Product        Product
	Mid            decimal.Decimal
	BidOfferSpread decimal.Decimal
}

// NewPrice constructs a Price, rejecting a negative spread rather than
// silently clamping it — a negative spread means the upstream feed is
// corrupt, not merely tight.
func NewPrice(product Product, mid, bidOfferSpread decimal.Decimal) (Price, error) {
	if bidOfferSpread.IsNegative() {
		return Price{}, fmt.Errorf("negative bid/offer spread: %s", bidOfferSpread)
	}
	return Price{Product: product, Mid: mid, BidOfferSpread: bidOfferSpread}, nil
}

// Strings renders [productId, mid, spread] the way the original system's
// ToStrings() rendered a Price for file/log output.
func (p Price) Strings() []string {
	return []string{
		p.Product.ProductID(),
		fracprice.Encode(p.Mid),
		fracprice.Encode(p.BidOfferSpread),
	}
}
