package protocol

// CommandType defines the type of the command (using uint8 for memory alignment and performance)
type CommandType uint8

// Command Type Numbering Strategy:
// - 0-50:  Registry Management Commands (internal, low-frequency admin operations)
// - 51+:   Order Commands (external, high-frequency hot path)
const (
	// Registry Management Commands (0-50, internal use)
	CmdUnknown        CommandType = 0
	CmdCreateRegistry CommandType = 1

	// Order Commands (51+, external use)
	CmdAddOrder       CommandType = 51
	CmdCancelOrder    CommandType = 52
	CmdCancelUser     CommandType = 53
	CmdCancelSecurity CommandType = 54
)

// Command is the standard carrier for commands entering the registry engine.
// It is designed to be efficient for serialization and compatible with Event Sourcing.
type Command struct {
	// Version is the protocol version for backward compatibility.
	Version uint8 `json:"version"`

	// RegistryID is the target registry for this command (Routing Header).
	RegistryID string `json:"registry_id"`

	// SeqID is used for global ordering and deduplication.
	SeqID uint64 `json:"seq_id"`

	// Type identifies the payload type for fast routing.
	Type CommandType `json:"type"`

	// Payload contains the serialized business data (e.g., JSON bytes of AddOrderCommand).
	// We use lazy deserialization to optimize routing performance.
	Payload []byte `json:"payload"`

	// Metadata stores non-business context (e.g., Tracing ID, Source IP).
	Metadata map[string]string `json:"metadata,omitempty"`
}

// CreateRegistryCommand is the payload for creating a new registry.
type CreateRegistryCommand struct {
	UserID     string `json:"user_id"`
	RegistryID string `json:"registry_id"`
}

// AddOrderCommand is the payload for registering a new order.
// Side is carried as a string and parsed case-insensitively at the
// registry boundary.
type AddOrderCommand struct {
	OrderID    string `json:"order_id"`
	SecurityID string `json:"security_id"`
	Side       string `json:"side"`
	Qty        int64  `json:"qty"`
	User       string `json:"user"`
	Company    string `json:"company"`
}

// CancelOrderCommand is the payload for cancelling a single order.
type CancelOrderCommand struct {
	OrderID string `json:"order_id"`
}

// CancelUserCommand is the payload for cancelling all of a user's orders.
type CancelUserCommand struct {
	User string `json:"user"`
}

// CancelSecurityCommand is the payload for cancelling all orders of a
// security whose quantity is at least MinQty.
type CancelSecurityCommand struct {
	SecurityID string `json:"security_id"`
	MinQty     int64  `json:"min_qty"`
}
