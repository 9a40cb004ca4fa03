package service

import (
	"testing"

	"treasurysoa/internal/domain"
	"treasurysoa/internal/fracprice"
)

type algoListener struct {
	executions []domain.AlgoExecution
}

func (l *algoListener) ProcessAdd(data domain.AlgoExecution)    { l.executions = append(l.executions, data) }
func (l *algoListener) ProcessUpdate(data domain.AlgoExecution) {}
func (l *algoListener) ProcessRemove(data domain.AlgoExecution) {}

func tightBook(bid, offer string) domain.OrderBook {
	bond := domain.NewBond("9128283H1", domain.CUSIP, "US2Y", 0.0175, mustDateForBond())
	bidPrice, _ := fracprice.Decode(bid)
	offerPrice, _ := fracprice.Decode(offer)
	return domain.NewOrderBook(bond,
		[]domain.Order{domain.NewOrder(bidPrice, 1000000, domain.Bid)},
		[]domain.Order{domain.NewOrder(offerPrice, 1000000, domain.Offer)},
	)
}

func TestAlgoExecutionService_CrossesWithinThreshold(t *testing.T) {
	svc := NewAlgoExecutionService(fracprice.NewIDGeneratorFromSeed(1))
	listener := &algoListener{}
	svc.AddListener(listener)

	// spread = 2/256 = 1/128, exactly at threshold: still crosses.
	svc.AlgoExecuteOrder(tightBook("100-000", "100-002"))

	if len(listener.executions) != 1 {
		t.Fatalf("expected one execution notified, got %d", len(listener.executions))
	}
	if listener.executions[0].Order.Side != domain.Bid {
		t.Errorf("expected first execution to take the BID side, got %v", listener.executions[0].Order.Side)
	}
}

func TestAlgoExecutionService_SkipsWideSpread(t *testing.T) {
	svc := NewAlgoExecutionService(fracprice.NewIDGeneratorFromSeed(1))
	listener := &algoListener{}
	svc.AddListener(listener)

	// spread = 8/256 = 4/128, well over the 1/128 threshold.
	svc.AlgoExecuteOrder(tightBook("100-000", "100-008"))

	if len(listener.executions) != 0 {
		t.Fatalf("expected no execution for a wide spread, got %d", len(listener.executions))
	}
}

func TestAlgoExecutionService_AlternatesSides(t *testing.T) {
	svc := NewAlgoExecutionService(fracprice.NewIDGeneratorFromSeed(1))
	listener := &algoListener{}
	svc.AddListener(listener)

	svc.AlgoExecuteOrder(tightBook("100-000", "100-001"))
	svc.AlgoExecuteOrder(tightBook("100-000", "100-001"))

	if len(listener.executions) != 2 {
		t.Fatalf("expected two executions, got %d", len(listener.executions))
	}
	if listener.executions[0].Order.Side != domain.Bid {
		t.Errorf("expected first execution BID, got %v", listener.executions[0].Order.Side)
	}
	if listener.executions[1].Order.Side != domain.Offer {
		t.Errorf("expected second execution OFFER, got %v", listener.executions[1].Order.Side)
	}
}
