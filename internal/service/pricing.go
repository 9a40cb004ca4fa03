package service

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/shopspring/decimal"

	"treasurysoa/internal/domain"
	"treasurysoa/internal/fracprice"
	"treasurysoa/internal/soa"
)

// PricingService is the fabric's source of internal mid/spread prices,
// keyed on product identifier (spec.md §4.3).
type PricingService struct {
	soa.ListenerRegistry[domain.Price]
	prices map[string]domain.Price
}

// NewPricingService constructs an empty PricingService.
func NewPricingService() *PricingService {
	return &PricingService{prices: make(map[string]domain.Price)}
}

// GetData returns the current Price for a product identifier.
func (s *PricingService) GetData(key string) (domain.Price, bool) {
	p, ok := s.prices[key]
	return p, ok
}

// OnMessage stores data and notifies every listener that a price arrived.
func (s *PricingService) OnMessage(data domain.Price) {
	s.prices[data.Product.ProductID()] = data
	s.NotifyAdd(data)
}

// PricingConnector parses raw "productId,bid,offer" records into Price
// values and feeds them into a PricingService (spec.md §4.3, §7).
// Publish is a no-op: the fabric never pushes internal prices back out
// through this connector.
type PricingConnector struct {
	service  *PricingService
	registry domain.Registry

	// OnIngested, if set, is called once for every record that parses
	// successfully. It exists so callers can count ingested events
	// without re-parsing the stream themselves.
	OnIngested func()
}

// NewPricingConnector constructs a PricingConnector bound to service.
func NewPricingConnector(service *PricingService) *PricingConnector {
	return &PricingConnector{service: service, registry: domain.NewRegistry()}
}

// Publish is a no-op; PricingService has no external sink for raw prices.
func (c *PricingConnector) Publish(domain.Price) {}

// Subscribe reads one record and, on success, calls the service's
// OnMessage. Malformed records are skipped rather than propagated
// (spec.md §7); the returned error exists only so a caller can log a
// diagnostic.
func (c *PricingConnector) Subscribe(line string) error {
	cells := strings.Split(line, ",")
	if len(cells) != 3 {
		return domain.NewParseError("pricing record", line, fmt.Errorf("expected 3 fields, got %d", len(cells)))
	}

	productID := cells[0]
	bid, err := fracprice.Decode(cells[1])
	if err != nil {
		return domain.NewParseError("bid", cells[1], err)
	}
	offer, err := fracprice.Decode(cells[2])
	if err != nil {
		return domain.NewParseError("offer", cells[2], err)
	}

	bond, _ := c.registry.Lookup(productID)
	mid := bid.Add(offer).Div(decimal.NewFromInt(2))
	spread := offer.Sub(bid)

	price, err := domain.NewPrice(bond, mid, spread)
	if err != nil {
		return domain.NewParseError("price", line, err)
	}

	c.service.OnMessage(price)
	if c.OnIngested != nil {
		c.OnIngested()
	}
	return nil
}

// SubscribeStream drains r line by line, calling Subscribe on each
// non-blank line and invoking onError (if non-nil) for every record that
// fails to parse rather than stopping the stream.
func (c *PricingConnector) SubscribeStream(r io.Reader, onError func(error)) error {
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
