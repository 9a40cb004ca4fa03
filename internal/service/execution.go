package service

import (
	"treasurysoa/internal/domain"
	"treasurysoa/internal/soa"
)

// ExecutionService tracks the execution orders actually placed on a
// market, keyed on product identifier (spec.md §4.6). ExecuteOrder is
// the only path that notifies listeners; OnMessage alone only updates
// the store, matching how the fabric's internal bookkeeping is kept
// separate from externalizing an order.
type ExecutionService struct {
	soa.ListenerRegistry[domain.ExecutionOrder]
	executionOrders map[string]domain.ExecutionOrder
}

// NewExecutionService constructs an empty ExecutionService.
func NewExecutionService() *ExecutionService {
	return &ExecutionService{executionOrders: make(map[string]domain.ExecutionOrder)}
}

// GetData returns the current ExecutionOrder for a product identifier.
func (s *ExecutionService) GetData(key string) (domain.ExecutionOrder, bool) {
	o, ok := s.executionOrders[key]
	return o, ok
}

// OnMessage stores the order without notifying listeners.
func (s *ExecutionService) OnMessage(data domain.ExecutionOrder) {
	s.executionOrders[data.Product.ProductID()] = data
}

// ExecuteOrder stores the order and notifies listeners that it has been
// placed on a market (spec.md §4.6). ExecuteOrder does not consult
// RouteMarket; the venue appears only as a diagnostic field in the
// pipeline's algo-execution log line.
func (s *ExecutionService) ExecuteOrder(order domain.ExecutionOrder) {
	s.executionOrders[order.Product.ProductID()] = order
	s.NotifyAdd(order)
}

// ExecutionToAlgoExecutionListener adapts AlgoExecutionService add
// events into externalized ExecutionOrders on ExecutionService
// (spec.md §4.9).
type ExecutionToAlgoExecutionListener struct {
	service *ExecutionService
}

// NewExecutionToAlgoExecutionListener constructs the adapter listener.
func NewExecutionToAlgoExecutionListener(service *ExecutionService) *ExecutionToAlgoExecutionListener {
	return &ExecutionToAlgoExecutionListener{service: service}
}

func (l *ExecutionToAlgoExecutionListener) ProcessAdd(data domain.AlgoExecution) {
	l.service.OnMessage(data.Order)
	l.service.ExecuteOrder(data.Order)
}

func (l *ExecutionToAlgoExecutionListener) ProcessRemove(data domain.AlgoExecution) {}
func (l *ExecutionToAlgoExecutionListener) ProcessUpdate(data domain.AlgoExecution) {}
