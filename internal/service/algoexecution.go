package service

import (
	"github.com/shopspring/decimal"

	"treasurysoa/internal/domain"
	"treasurysoa/internal/fracprice"
	"treasurysoa/internal/soa"
)

// defaultSpreadThreshold is the maximum bid/offer spread that still
// triggers an algo execution (spec.md §4.5): 1/128.
var defaultSpreadThreshold = decimal.NewFromInt(1).Div(decimal.NewFromInt(128))

// AlgoExecutionService reacts to order-book updates by alternately
// crossing the best bid and best offer whenever the spread is tight
// enough, keyed on product identifier (spec.md §4.5).
type AlgoExecutionService struct {
	soa.ListenerRegistry[domain.AlgoExecution]
	algoExecutions  map[string]domain.AlgoExecution
	idGen           *fracprice.IDGenerator
	spreadThreshold decimal.Decimal
	count           int
}

// NewAlgoExecutionService constructs an AlgoExecutionService using the
// given ID generator and the default 1/128 spread threshold. A fresh
// process-wide counter drives the alternating BID/OFFER rule — it is
// not reset per product.
func NewAlgoExecutionService(idGen *fracprice.IDGenerator) *AlgoExecutionService {
	return NewAlgoExecutionServiceWithThreshold(idGen, defaultSpreadThreshold)
}

// NewAlgoExecutionServiceWithThreshold constructs an AlgoExecutionService
// with an explicit spread threshold, as configured by
// infra.Config.AlgoExecution.SpreadThreshold.
func NewAlgoExecutionServiceWithThreshold(idGen *fracprice.IDGenerator, threshold decimal.Decimal) *AlgoExecutionService {
	return &AlgoExecutionService{
		algoExecutions:  make(map[string]domain.AlgoExecution),
		idGen:           idGen,
		spreadThreshold: threshold,
	}
}

// GetData returns the current AlgoExecution for a product identifier.
func (s *AlgoExecutionService) GetData(key string) (domain.AlgoExecution, bool) {
	a, ok := s.algoExecutions[key]
	return a, ok
}

// OnMessage stores an AlgoExecution without dispatching it. Dispatch to
// listeners happens only through AlgoExecuteOrder's decision rule, not
// through this generic store-and-notify path.
func (s *AlgoExecutionService) OnMessage(data domain.AlgoExecution) {
	s.algoExecutions[data.Order.Product.ProductID()] = data
}

// AlgoExecuteOrder implements the spread-crossing decision rule
// (spec.md §4.5): if the best offer minus the best bid is at most
// spreadThreshold, emit a MARKET order against the side selected by an
// alternating process-wide counter, then notify listeners.
func (s *AlgoExecutionService) AlgoExecuteOrder(book domain.OrderBook) {
	bidOffer := book.GetBidOffer()
	spread := bidOffer.Offer.Price.Sub(bidOffer.Bid.Price)
	if spread.GreaterThan(s.spreadThreshold) {
		return
	}

	var side domain.PricingSide
	var price decimal.Decimal
	var quantity int64
	if s.count%2 == 0 {
		side, price, quantity = domain.Bid, bidOffer.Bid.Price, bidOffer.Bid.Quantity
	} else {
		side, price, quantity = domain.Offer, bidOffer.Offer.Price, bidOffer.Offer.Quantity
	}
	s.count++

	orderID := s.idGen.NextID()
	exec := domain.NewAlgoExecution(book.Product, side, orderID, domain.Market, price, quantity, 0, "", false)
	s.algoExecutions[book.Product.ProductID()] = exec
	s.NotifyAdd(exec)
}

// AlgoExecutionToMarketDataListener adapts MarketDataService add events
// into AlgoExecutionService's decision rule (spec.md §4.9).
type AlgoExecutionToMarketDataListener struct {
	service *AlgoExecutionService
}

// NewAlgoExecutionToMarketDataListener constructs the adapter listener.
func NewAlgoExecutionToMarketDataListener(service *AlgoExecutionService) *AlgoExecutionToMarketDataListener {
	return &AlgoExecutionToMarketDataListener{service: service}
}

func (l *AlgoExecutionToMarketDataListener) ProcessAdd(data domain.OrderBook)    { l.service.AlgoExecuteOrder(data) }
func (l *AlgoExecutionToMarketDataListener) ProcessRemove(data domain.OrderBook) {}
func (l *AlgoExecutionToMarketDataListener) ProcessUpdate(data domain.OrderBook) {}
