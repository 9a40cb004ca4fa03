package domain

import "github.com/shopspring/decimal"

// Order is a single market-data order: a price/quantity/side triple.
// Immutable once constructed.
type Order struct {
	Price    decimal.Decimal
	Quantity int64
	Side     PricingSide
}

// NewOrder constructs an Order.
func NewOrder(price decimal.Decimal, quantity int64, side PricingSide) Order {
	return Order{Price: price, Quantity: quantity, Side: side}
}

// BidOffer pairs the best bid and best offer order of a book.
// Immutable.
type BidOffer struct {
	Bid   Order
	Offer Order
}

// OrderBook holds the bid and offer stacks for one product. No ordering
// invariant is enforced on the stacks at rest; GetBidOffer computes the
// true best bid/offer on demand (spec.md §3).
type OrderBook struct {
	Product    Product
	BidStack   []Order
	OfferStack []Order
}

// NewOrderBook constructs an OrderBook from independent bid/offer stacks.
func NewOrderBook(product Product, bidStack, offerStack []Order) OrderBook {
	return OrderBook{Product: product, BidStack: bidStack, OfferStack: offerStack}
}

// GetBidOffer returns the strict maximum bid and strict minimum offer,
// breaking ties by first occurrence (spec.md §4.4). An empty stack
// yields the zero Order for that side.
func (b OrderBook) GetBidOffer() BidOffer {
	var bestBid, bestOffer Order
	haveBid, haveOffer := false, false

	for _, o := range b.BidStack {
		if !haveBid || o.Price.GreaterThan(bestBid.Price) {
			bestBid = o
			haveBid = true
		}
	}
	for _, o := range b.OfferStack {
		if !haveOffer || o.Price.LessThan(bestOffer.Price) {
			bestOffer = o
			haveOffer = true
		}
	}

	return BidOffer{Bid: bestBid, Offer: bestOffer}
}
