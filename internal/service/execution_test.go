package service

import (
	"testing"

	"github.com/shopspring/decimal"

	"treasurysoa/internal/domain"
)

type executionListener struct {
	orders []domain.ExecutionOrder
}

func (l *executionListener) ProcessAdd(data domain.ExecutionOrder)    { l.orders = append(l.orders, data) }
func (l *executionListener) ProcessUpdate(data domain.ExecutionOrder) {}
func (l *executionListener) ProcessRemove(data domain.ExecutionOrder) {}

func TestExecutionService_ExecuteOrderNotifiesListeners(t *testing.T) {
	svc := NewExecutionService()
	listener := &executionListener{}
	svc.AddListener(listener)

	bond := domain.NewBond("9128283H1", domain.CUSIP, "US2Y", 0.0175, mustDateForBond())
	order := domain.ExecutionOrder{Product: bond, Side: domain.Bid, OrderID: "A1", OrderType: domain.Market, Price: decimal.NewFromInt(100)}

	svc.ExecuteOrder(order)

	if len(listener.orders) != 1 {
		t.Fatalf("expected one notified order, got %d", len(listener.orders))
	}
	if _, ok := svc.GetData("9128283H1"); !ok {
		t.Error("expected order to be stored")
	}
}

func TestExecutionToAlgoExecutionListener_ForwardsTheWrappedOrder(t *testing.T) {
	svc := NewExecutionService()
	listener := &executionListener{}
	svc.AddListener(listener)
	adapter := NewExecutionToAlgoExecutionListener(svc)

	bond := domain.NewBond("9128283H1", domain.CUSIP, "US2Y", 0.0175, mustDateForBond())
	algo := domain.NewAlgoExecution(bond, domain.Offer, "B2", domain.Market, decimal.NewFromInt(101), 500, 0, "", false)

	adapter.ProcessAdd(algo)

	if len(listener.orders) != 1 {
		t.Fatalf("expected the wrapped order to be executed, got %d notifications", len(listener.orders))
	}
	if listener.orders[0].OrderID != "B2" {
		t.Errorf("expected order id B2, got %s", listener.orders[0].OrderID)
	}
}
