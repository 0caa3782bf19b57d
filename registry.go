package registry

// Registry is an in-memory order registry with three cross-indices:
// by order ID, by security ID, and by user. It assumes a single owner;
// use ConcurrentRegistry when multiple goroutines share one instance.
//
// After every operation the three indices are mutually consistent: the
// set of orders reachable by ID equals the union of the security
// buckets and the union of the user buckets.
type Registry struct {
	byID       map[string]*Order
	bySecurity map[string]*bucket
	byUser     map[string]*bucket
}

// New creates an empty Registry.
func New() *Registry {
	return &Registry{
		byID:       make(map[string]*Order),
		bySecurity: make(map[string]*bucket),
		byUser:     make(map[string]*bucket),
	}
}

// AddOrder registers the order in all three indices.
// Returns ErrInvalidParam for a nil order or a negative quantity, and
// ErrDuplicateOrderID if the ID is already registered. Duplicates are
// rejected rather than overwritten: a silent overwrite would leave the
// prior order dangling in the security and user buckets.
func (r *Registry) AddOrder(order *Order) error {
	if order == nil || order.Qty < 0 {
		return ErrInvalidParam
	}
	if _, exists := r.byID[order.OrderID]; exists {
		return ErrDuplicateOrderID
	}

	r.byID[order.OrderID] = order
	r.securityBucket(order.SecurityID).add(order)
	r.userBucket(order.User).add(order)

	return nil
}

// CancelOrder removes the order with the given ID from all three
// indices. Unknown IDs are a silent no-op.
func (r *Registry) CancelOrder(orderID string) {
	order, ok := r.byID[orderID]
	if !ok {
		return
	}

	delete(r.byID, orderID)
	if b, ok := r.bySecurity[order.SecurityID]; ok {
		b.remove(orderID)
	}
	if b, ok := r.byUser[order.User]; ok {
		b.remove(orderID)
	}
}

// CancelOrdersForUser removes every order belonging to the user.
// The user bucket is detached first and iterated as a snapshot, so the
// per-order removals never mutate the sequence being traversed.
// Unknown users are a no-op.
func (r *Registry) CancelOrdersForUser(user string) {
	b, ok := r.byUser[user]
	if !ok {
		return
	}
	delete(r.byUser, user)

	for _, order := range b.snapshot() {
		delete(r.byID, order.OrderID)
		if sb, ok := r.bySecurity[order.SecurityID]; ok {
			sb.remove(order.OrderID)
		}
	}
}

// CancelOrdersForSecurityWithMinQty removes every order for the
// security whose quantity is at least minQty (inclusive). Selection is
// two-phase: the target set is collected from the quantity index before
// any removal begins, then each order goes through the single-order
// cancel path. Unknown securities are a no-op.
func (r *Registry) CancelOrdersForSecurityWithMinQty(securityID string, minQty int64) {
	b, ok := r.bySecurity[securityID]
	if !ok {
		return
	}

	for _, order := range b.atLeast(minQty) {
		r.CancelOrder(order.OrderID)
	}
}

// MatchingSizeForSecurity returns the total quantity that can match for
// the security. The computation is read-only: it works on scratch
// copies of the quantities and never touches the stored orders.
// Unknown securities yield 0.
func (r *Registry) MatchingSizeForSecurity(securityID string) int64 {
	b, ok := r.bySecurity[securityID]
	if !ok {
		return 0
	}

	return matchingSize(b.orders)
}

// AllOrders returns an independent snapshot of all live orders.
// The iteration order is unspecified; mutating the returned slice does
// not affect the registry.
func (r *Registry) AllOrders() []*Order {
	orders := make([]*Order, 0, len(r.byID))
	for _, order := range r.byID {
		orders = append(orders, order)
	}

	return orders
}

// Len returns the number of live orders.
func (r *Registry) Len() int {
	return len(r.byID)
}

func (r *Registry) securityBucket(securityID string) *bucket {
	b, ok := r.bySecurity[securityID]
	if !ok {
		b = newBucket()
		r.bySecurity[securityID] = b
	}
	return b
}

func (r *Registry) userBucket(user string) *bucket {
	b, ok := r.byUser[user]
	if !ok {
		b = newBucket()
		r.byUser[user] = b
	}
	return b
}
