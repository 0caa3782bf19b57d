package registry

import (
	"strings"

	"github.com/huandu/skiplist"
)

// qtyKey orders the quantity index by quantity descending, then order ID
// ascending so that equal quantities never collide in the skiplist.
type qtyKey struct {
	qty     int64
	orderID string
}

// bucket is one secondary-index entry: the insertion-ordered list of
// orders sharing a key (security ID or user), plus a quantity-sorted
// skiplist so threshold scans can stop early instead of walking the
// whole list.
type bucket struct {
	orders   []*Order
	qtyIndex *skiplist.SkipList
}

func newBucket() *bucket {
	return &bucket{
		qtyIndex: skiplist.New(skiplist.GreaterThanFunc(func(lhs, rhs any) int {
			k1, _ := lhs.(qtyKey)
			k2, _ := rhs.(qtyKey)

			if k1.qty != k2.qty {
				if k1.qty < k2.qty {
					return 1
				}
				return -1
			}

			return strings.Compare(k1.orderID, k2.orderID)
		})),
	}
}

// add appends the order, preserving insertion order.
func (b *bucket) add(order *Order) {
	b.orders = append(b.orders, order)
	b.qtyIndex.Set(qtyKey{qty: order.Qty, orderID: order.OrderID}, order)
}

// remove deletes the order with the given ID and returns it.
// Returns nil if the bucket does not contain the ID.
func (b *bucket) remove(orderID string) *Order {
	for i, order := range b.orders {
		if order.OrderID == orderID {
			b.orders = append(b.orders[:i], b.orders[i+1:]...)
			b.qtyIndex.Remove(qtyKey{qty: order.Qty, orderID: order.OrderID})
			return order
		}
	}

	return nil
}

// atLeast returns the orders whose quantity is >= minQty, largest first.
// The index is sorted by quantity descending, so the scan stops at the
// first order below the threshold.
func (b *bucket) atLeast(minQty int64) []*Order {
	var selected []*Order
	for el := b.qtyIndex.Front(); el != nil; el = el.Next() {
		key, _ := el.Key().(qtyKey)
		if key.qty < minQty {
			break
		}
		order, _ := el.Value.(*Order)
		selected = append(selected, order)
	}

	return selected
}

// snapshot returns an independent copy of the insertion-ordered list.
// Callers iterate the copy, never the live slice, so removal during
// traversal cannot skip or double-visit elements.
func (b *bucket) snapshot() []*Order {
	cp := make([]*Order, len(b.orders))
	copy(cp, b.orders)
	return cp
}

func (b *bucket) size() int {
	return len(b.orders)
}
