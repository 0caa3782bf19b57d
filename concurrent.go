package registry

import "sync"

// ConcurrentRegistry is the Registry contract under concurrent access.
// Every logical operation touches all three indices, so per-index
// thread safety is not enough: a reader could observe an order in the
// ID index before it reaches its buckets. One lock spanning the whole
// registry keeps the cross-index invariant visible at every quiescent
// point and leaves no lock ordering to get wrong.
type ConcurrentRegistry struct {
	mu    sync.RWMutex
	inner *Registry
}

// NewConcurrent creates an empty ConcurrentRegistry.
func NewConcurrent() *ConcurrentRegistry {
	return &ConcurrentRegistry{inner: New()}
}

// AddOrder registers the order. See Registry.AddOrder.
func (r *ConcurrentRegistry) AddOrder(order *Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.inner.AddOrder(order)
}

// CancelOrder removes the order with the given ID; unknown IDs are a
// no-op. Racing with an overlapping bulk cancel is safe: whichever
// caller acquires the lock first removes the order, the other finds
// nothing left to do.
func (r *ConcurrentRegistry) CancelOrder(orderID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inner.CancelOrder(orderID)
}

// CancelOrdersForUser removes every order belonging to the user.
func (r *ConcurrentRegistry) CancelOrdersForUser(user string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inner.CancelOrdersForUser(user)
}

// CancelOrdersForSecurityWithMinQty removes every order for the
// security with quantity >= minQty.
func (r *ConcurrentRegistry) CancelOrdersForSecurityWithMinQty(securityID string, minQty int64) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.inner.CancelOrdersForSecurityWithMinQty(securityID, minQty)
}

// MatchingSizeForSecurity returns the matchable quantity for the
// security. Concurrent writers wait; the result reflects a fully
// consistent snapshot of the registry.
func (r *ConcurrentRegistry) MatchingSizeForSecurity(securityID string) int64 {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inner.MatchingSizeForSecurity(securityID)
}

// AllOrders returns an independent snapshot of all live orders.
func (r *ConcurrentRegistry) AllOrders() []*Order {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inner.AllOrders()
}

// Len returns the number of live orders.
func (r *ConcurrentRegistry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inner.Len()
}

// Summary returns the per-security summary view. See Registry.Summary.
func (r *ConcurrentRegistry) Summary() []SecuritySummary {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.inner.Summary()
}
