package soa

import "testing"

type recordingListener struct {
	adds, updates, removes []string
}

func (l *recordingListener) ProcessAdd(data string)    { l.adds = append(l.adds, data) }
func (l *recordingListener) ProcessUpdate(data string) { l.updates = append(l.updates, data) }
func (l *recordingListener) ProcessRemove(data string) { l.removes = append(l.removes, data) }

func TestListenerRegistry_NotifiesInRegistrationOrder(t *testing.T) {
	var reg ListenerRegistry[string]
	var order []int

	first := &orderTrackingListener{id: 1, order: &order}
	second := &orderTrackingListener{id: 2, order: &order}
	reg.AddListener(first)
	reg.AddListener(second)

	reg.NotifyAdd("x")

	if len(order) != 2 || order[0] != 1 || order[1] != 2 {
		t.Fatalf("expected notification order [1 2], got %v", order)
	}
}

type orderTrackingListener struct {
	id    int
	order *[]int
}

func (l *orderTrackingListener) ProcessAdd(string)    { *l.order = append(*l.order, l.id) }
func (l *orderTrackingListener) ProcessUpdate(string) {}
func (l *orderTrackingListener) ProcessRemove(string) {}

func TestListenerRegistry_DispatchesToEachMethod(t *testing.T) {
	var reg ListenerRegistry[string]
	l := &recordingListener{}
	reg.AddListener(l)

	reg.NotifyAdd("a")
	reg.NotifyUpdate("b")
	reg.NotifyRemove("c")

	if len(l.adds) != 1 || l.adds[0] != "a" {
		t.Errorf("ProcessAdd not dispatched correctly: %v", l.adds)
	}
	if len(l.updates) != 1 || l.updates[0] != "b" {
		t.Errorf("ProcessUpdate not dispatched correctly: %v", l.updates)
	}
	if len(l.removes) != 1 || l.removes[0] != "c" {
		t.Errorf("ProcessRemove not dispatched correctly: %v", l.removes)
	}
}

func TestListenerRegistry_GetListenersReturnsAll(t *testing.T) {
	var reg ListenerRegistry[string]
	reg.AddListener(&recordingListener{})
	reg.AddListener(&recordingListener{})

	if got := len(reg.GetListeners()); got != 2 {
		t.Fatalf("expected 2 listeners, got %d", got)
	}
}
