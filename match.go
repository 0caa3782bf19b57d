package registry

// matchingSize computes the total quantity that can match within one
// security's orders. Greedy partial-fill matching with no price or time
// priority: buys and sells are scanned in insertion order, and a pair
// is eligible only when the two orders come from different companies.
// Orders with an unrecognized side join neither partition.
//
// The scan consumes scratch quantities only; the orders themselves are
// never modified.
func matchingSize(orders []*Order) int64 {
	var buys, sells []*Order
	for _, order := range orders {
		switch order.Side {
		case Buy:
			buys = append(buys, order)
		case Sell:
			sells = append(sells, order)
		}
	}

	// remaining holds each sell order's unconsumed quantity. A fully
	// consumed sell is skipped for every later buyer.
	remaining := make([]int64, len(sells))
	for i, sell := range sells {
		remaining[i] = sell.Qty
	}

	var total int64
	for _, buy := range buys {
		buyQty := buy.Qty

		for i, sell := range sells {
			if buyQty == 0 {
				break
			}
			if remaining[i] == 0 || buy.Company == sell.Company {
				continue
			}

			matched := min(buyQty, remaining[i])
			total += matched
			buyQty -= matched
			remaining[i] -= matched
		}
	}

	return total
}
