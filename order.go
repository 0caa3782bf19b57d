package registry

import "strings"

type Side int8

const (
	SideUnknown Side = 0
	Buy         Side = 1
	Sell        Side = 2
)

// ParseSide converts the string form of a side into a Side value.
// Matching is case-insensitive. Anything other than "buy" or "sell"
// maps to SideUnknown; such orders are stored but never matched.
func ParseSide(s string) Side {
	switch {
	case strings.EqualFold(s, "Buy"):
		return Buy
	case strings.EqualFold(s, "Sell"):
		return Sell
	default:
		return SideUnknown
	}
}

// String returns the canonical string form of the side.
func (s Side) String() string {
	switch s {
	case Buy:
		return "Buy"
	case Sell:
		return "Sell"
	default:
		return "Unknown"
	}
}

// Order is an immutable registry entry. Once added, no operation
// modifies its fields; the matching scan works on scratch copies of
// the quantities only.
type Order struct {
	OrderID    string `json:"order_id"`
	SecurityID string `json:"security_id"`
	Side       Side   `json:"side"`
	Qty        int64  `json:"qty"`
	User       string `json:"user"`
	Company    string `json:"company"`
}

// NewOrder builds an Order, parsing the side string at the boundary.
func NewOrder(orderID, securityID, side string, qty int64, user, company string) *Order {
	return &Order{
		OrderID:    orderID,
		SecurityID: securityID,
		Side:       ParseSide(side),
		Qty:        qty,
		User:       user,
		Company:    company,
	}
}
