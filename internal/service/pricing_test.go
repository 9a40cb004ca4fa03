package service

import (
	"strings"
	"testing"
)

func TestPricingConnector_Subscribe(t *testing.T) {
	svc := NewPricingService()
	conn := NewPricingConnector(svc)

	t.Run("valid record updates the service", func(t *testing.T) {
		if err := conn.Subscribe("9128283H1,100-000,100-010"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		price, ok := svc.GetData("9128283H1")
		if !ok {
			t.Fatal("expected price to be stored")
		}
		if price.Mid.String() != "100.015625" {
			t.Errorf("expected mid 100.015625, got %s", price.Mid)
		}
	})

	t.Run("malformed record is skipped, not fatal", func(t *testing.T) {
		if err := conn.Subscribe("9128283H1,not-a-price,100-010"); err == nil {
			t.Fatal("expected a parse error")
		}
	})
}

func TestPricingConnector_SubscribeStream(t *testing.T) {
	svc := NewPricingService()
	conn := NewPricingConnector(svc)

	input := "9128283H1,100-000,100-010\nbroken line\n9128283L2,99-000,99-020\n"
	var errs []error
	if err := conn.SubscribeStream(strings.NewReader(input), func(e error) { errs = append(errs, e) }); err != nil {
		t.Fatalf("unexpected stream error: %v", err)
	}

	if len(errs) != 1 {
		t.Fatalf("expected exactly 1 skipped record, got %d: %v", len(errs), errs)
	}
	if _, ok := svc.GetData("9128283H1"); !ok {
		t.Error("expected first valid record to be ingested")
	}
	if _, ok := svc.GetData("9128283L2"); !ok {
		t.Error("expected third valid record to be ingested")
	}
}
