// Package soa defines the generic service-oriented fabric contracts
// every component in this system is built from: Service, Listener, and
// Connector (spec.md §4.2). Every concrete service in internal/service
// wires these together synchronously — there is no queue, lock, or
// goroutine hop anywhere in the fabric itself (spec.md §5).
package soa

// Service is a keyed store of data of type V, addressable by key K,
// that notifies its Listeners whenever the store changes.
type Service[K comparable, V any] interface {
	// GetData returns the current value for key, and whether it exists.
	GetData(key K) (V, bool)

	// OnMessage ingests one inbound data element, updating the service's
	// own store and notifying every registered Listener.
	OnMessage(data V)

	// AddListener registers a Listener to be notified of future changes.
	AddListener(listener Listener[V])

	// GetListeners returns every Listener currently registered.
	GetListeners() []Listener[V]
}

// Listener reacts to additions, removals, and updates flowing out of a
// Service. A Service calls these synchronously from within OnMessage;
// a Listener implementation must not block or re-enter the fabric in a
// way that would require a lock.
type Listener[V any] interface {
	// ProcessAdd is called when a brand new value of type V is observed.
	ProcessAdd(data V)

	// ProcessRemove is called when a value of type V is retired.
	ProcessRemove(data V)

	// ProcessUpdate is called when an existing value of type V changes.
	ProcessUpdate(data V)
}

// Connector moves data of type V across the boundary of the fabric: out
// via Publish (the fabric calling an external sink), in via Subscribe
// (an external source calling into the fabric).
type Connector[V any] interface {
	// Publish sends data out of the fabric.
	Publish(data V)

	// Subscribe ingests data from outside the fabric into the fabric.
	Subscribe(data V)
}
