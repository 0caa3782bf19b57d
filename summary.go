package registry

import "github.com/igrmk/treemap/v2"

// SecuritySummary is the aggregated view of one security: total
// resting quantity on each side plus the current matchable size.
// It is a plain value computed from a snapshot, intended for
// downstream consumers that do not need individual orders.
type SecuritySummary struct {
	SecurityID string `json:"security_id"`
	BuyQty     int64  `json:"buy_qty"`
	SellQty    int64  `json:"sell_qty"`
	Matchable  int64  `json:"matchable"`
}

// Summary returns one SecuritySummary per security with live orders,
// ordered by security ID. Read-only, like the matching computation.
func (r *Registry) Summary() []SecuritySummary {
	tree := treemap.NewWithKeyCompare[string, *SecuritySummary](func(a, b string) bool {
		return a < b
	})

	for securityID, b := range r.bySecurity {
		if b.size() == 0 {
			continue
		}

		summary := &SecuritySummary{SecurityID: securityID}
		for _, order := range b.orders {
			switch order.Side {
			case Buy:
				summary.BuyQty += order.Qty
			case Sell:
				summary.SellQty += order.Qty
			}
		}
		summary.Matchable = matchingSize(b.orders)

		tree.Set(securityID, summary)
	}

	summaries := make([]SecuritySummary, 0, tree.Len())
	for it := tree.Iterator(); it.Valid(); it.Next() {
		summaries = append(summaries, *it.Value())
	}

	return summaries
}
