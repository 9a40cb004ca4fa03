package service

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"treasurysoa/internal/domain"
	"treasurysoa/internal/fracprice"
	"treasurysoa/internal/soa"
)

// defaultBookDepth is the per-side order-book depth spec.md §4.4
// describes; callers that need a different depth use
// NewMarketDataServiceWithDepth.
const defaultBookDepth = 5

// MarketDataService distributes order-book market data, keyed on
// product identifier (spec.md §4.4).
type MarketDataService struct {
	soa.ListenerRegistry[domain.OrderBook]
	orderBooks map[string]domain.OrderBook
	bookDepth  int
}

// NewMarketDataService constructs an empty MarketDataService using the
// default book depth of 5.
func NewMarketDataService() *MarketDataService {
	return NewMarketDataServiceWithDepth(defaultBookDepth)
}

// NewMarketDataServiceWithDepth constructs an empty MarketDataService
// with an explicit per-side book depth, as configured by
// infra.Config.MarketData.BookDepth.
func NewMarketDataServiceWithDepth(depth int) *MarketDataService {
	return &MarketDataService{orderBooks: make(map[string]domain.OrderBook), bookDepth: depth}
}

// GetData returns the current OrderBook for a product identifier.
func (s *MarketDataService) GetData(key string) (domain.OrderBook, bool) {
	b, ok := s.orderBooks[key]
	return b, ok
}

// OnMessage stores the order book and notifies listeners of the add.
func (s *MarketDataService) OnMessage(data domain.OrderBook) {
	s.orderBooks[data.Product.ProductID()] = data
	s.NotifyAdd(data)
}

// BookDepth returns the per-side order-book depth this service
// consumes from its Connector.
func (s *MarketDataService) BookDepth() int {
	return s.bookDepth
}

// GetBestBidOffer returns the current best bid/offer for a product.
func (s *MarketDataService) GetBestBidOffer(productID string) domain.BidOffer {
	return s.orderBooks[productID].GetBidOffer()
}

// AggregateDepth collapses the bid and offer stacks of a product's book
// by price level, summing quantity at each level (spec.md §4.4).
func (s *MarketDataService) AggregateDepth(productID string) domain.OrderBook {
	book := s.orderBooks[productID]

	bidTotals := make(map[string]int64)
	bidOrder := make([]string, 0, len(book.BidStack))
	for _, o := range book.BidStack {
		key := o.Price.String()
		if _, seen := bidTotals[key]; !seen {
			bidOrder = append(bidOrder, key)
		}
		bidTotals[key] += o.Quantity
	}
	bidStack := make([]domain.Order, 0, len(bidOrder))
	for _, key := range bidOrder {
		price, _ := decimal.NewFromString(key)
		bidStack = append(bidStack, domain.NewOrder(price, bidTotals[key], domain.Bid))
	}

	offerTotals := make(map[string]int64)
	offerOrder := make([]string, 0, len(book.OfferStack))
	for _, o := range book.OfferStack {
		key := o.Price.String()
		if _, seen := offerTotals[key]; !seen {
			offerOrder = append(offerOrder, key)
		}
		offerTotals[key] += o.Quantity
	}
	offerStack := make([]domain.Order, 0, len(offerOrder))
	for _, key := range offerOrder {
		price, _ := decimal.NewFromString(key)
		offerStack = append(offerStack, domain.NewOrder(price, offerTotals[key], domain.Offer))
	}

	return domain.NewOrderBook(book.Product, bidStack, offerStack)
}

// MarketDataConnector parses raw "productId,price,quantity,side" records
// into order-book entries and batches them, 2*bookDepth lines at a time,
// into one OrderBook per call to the service's OnMessage (spec.md §4.4,
// §7). Publish is a no-op: the fabric never pushes order books back out.
type MarketDataConnector struct {
	service  *MarketDataService
	registry domain.Registry

	bidStack   []domain.Order
	offerStack []domain.Order
	count      int
	productID  string

	// OnIngested, if set, is called once for every record that parses
	// successfully, regardless of whether it completes a batch.
	OnIngested func()
}

// NewMarketDataConnector constructs a MarketDataConnector bound to service.
func NewMarketDataConnector(service *MarketDataService) *MarketDataConnector {
	return &MarketDataConnector{service: service, registry: domain.NewRegistry()}
}

// Publish is a no-op; MarketDataService has no external sink.
func (c *MarketDataConnector) Publish(domain.OrderBook) {}

// Subscribe folds one record into the connector's in-flight batch,
// flushing a full OrderBook to the service once 2*bookDepth records have
// accumulated. Records are counted regardless of product; the flushed
// book carries the product id of the batch's last record. Malformed
// records are skipped.
func (c *MarketDataConnector) Subscribe(line string) error {
	cells := strings.Split(line, ",")
	if len(cells) != 4 {
		return domain.NewParseError("market data record", line, fmt.Errorf("expected 4 fields, got %d", len(cells)))
	}

	productID := cells[0]
	price, err := fracprice.Decode(cells[1])
	if err != nil {
		return domain.NewParseError("price", cells[1], err)
	}
	quantity, err := strconv.ParseInt(cells[2], 10, 64)
	if err != nil {
		return domain.NewParseError("quantity", cells[2], err)
	}
	side, err := domain.ParsePricingSide(cells[3])
	if err != nil {
		return err
	}

	c.productID = productID
	order := domain.NewOrder(price, quantity, side)
	switch side {
	case domain.Bid:
		c.bidStack = append(c.bidStack, order)
	case domain.Offer:
		c.offerStack = append(c.offerStack, order)
	}

	c.count++
	if c.count == c.service.BookDepth()*2 {
		bond, _ := c.registry.Lookup(c.productID)
		book := domain.NewOrderBook(bond, c.bidStack, c.offerStack)
		c.service.OnMessage(book)
		c.count = 0
		c.bidStack = nil
		c.offerStack = nil
	}
	if c.OnIngested != nil {
		c.OnIngested()
	}
	return nil
}

// SubscribeStream drains r line by line, calling Subscribe on each
// non-blank line and routing parse errors to onError without halting.
func (c *MarketDataConnector) SubscribeStream(r io.Reader, onError func(error)) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if err := c.Subscribe(line); err != nil && onError != nil {
			onError(err)
		}
	}
	return scanner.Err()
}
