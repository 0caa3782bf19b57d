package registry

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/0x5487/order-registry/protocol"
)

// Engine manages multiple order registries, one per registry ID.
// It is the command-ingest surface: serialized commands are routed to
// the owning registry, which applies them synchronously. All registries
// are the concurrent variant, so commands may arrive from any number of
// goroutines.
type Engine struct {
	isShutdown atomic.Bool
	registries sync.Map
	serializer protocol.Serializer
}

// NewEngine creates a new engine instance.
func NewEngine() *Engine {
	return &Engine{
		registries: sync.Map{},
		serializer: &protocol.DefaultJSONSerializer{},
	}
}

// EnqueueCommand routes the command to the correct registry based on the RegistryID.
// Registry operations are synchronous, so the command has been fully
// applied when this returns.
func (engine *Engine) EnqueueCommand(cmd *protocol.Command) error {
	if engine.isShutdown.Load() {
		return ErrShutdown
	}

	if cmd.Type == protocol.CmdCreateRegistry {
		return engine.handleCreateRegistry(cmd)
	}

	if len(cmd.RegistryID) == 0 {
		return ErrNotFound
	}

	reg := engine.Registry(cmd.RegistryID)
	if reg == nil {
		return ErrNotFound
	}

	return engine.apply(reg, cmd)
}

// AddOrder registers an order in the named registry.
// Returns ErrShutdown if the engine is shutting down or ErrNotFound if the registry doesn't exist.
func (engine *Engine) AddOrder(ctx context.Context, registryID string, cmd *protocol.AddOrderCommand) error {
	bytes, err := engine.serializer.Marshal(cmd)
	if err != nil {
		return err
	}
	return engine.EnqueueCommand(&protocol.Command{
		RegistryID: registryID,
		Type:       protocol.CmdAddOrder,
		Payload:    bytes,
	})
}

// CancelOrder cancels a single order in the named registry.
// Returns ErrShutdown if the engine is shutting down or ErrNotFound if the registry doesn't exist.
func (engine *Engine) CancelOrder(ctx context.Context, registryID string, cmd *protocol.CancelOrderCommand) error {
	bytes, err := engine.serializer.Marshal(cmd)
	if err != nil {
		return err
	}
	return engine.EnqueueCommand(&protocol.Command{
		RegistryID: registryID,
		Type:       protocol.CmdCancelOrder,
		Payload:    bytes,
	})
}

// CancelUser cancels all orders belonging to a user in the named registry.
// Returns ErrShutdown if the engine is shutting down or ErrNotFound if the registry doesn't exist.
func (engine *Engine) CancelUser(ctx context.Context, registryID string, cmd *protocol.CancelUserCommand) error {
	bytes, err := engine.serializer.Marshal(cmd)
	if err != nil {
		return err
	}
	return engine.EnqueueCommand(&protocol.Command{
		RegistryID: registryID,
		Type:       protocol.CmdCancelUser,
		Payload:    bytes,
	})
}

// CancelSecurity cancels all orders of a security at or above a minimum
// quantity in the named registry.
// Returns ErrShutdown if the engine is shutting down or ErrNotFound if the registry doesn't exist.
func (engine *Engine) CancelSecurity(ctx context.Context, registryID string, cmd *protocol.CancelSecurityCommand) error {
	bytes, err := engine.serializer.Marshal(cmd)
	if err != nil {
		return err
	}
	return engine.EnqueueCommand(&protocol.Command{
		RegistryID: registryID,
		Type:       protocol.CmdCancelSecurity,
		Payload:    bytes,
	})
}

// CreateRegistry sends a command to create a new registry.
func (engine *Engine) CreateRegistry(userID string, registryID string) error {
	cmd := &protocol.CreateRegistryCommand{
		UserID:     userID,
		RegistryID: registryID,
	}
	bytes, err := engine.serializer.Marshal(cmd)
	if err != nil {
		return err
	}
	return engine.EnqueueCommand(&protocol.Command{
		Type:       protocol.CmdCreateRegistry,
		RegistryID: registryID,
		Payload:    bytes,
	})
}

// Registry retrieves the registry for a specific registry ID.
// Returns nil if the registry does not exist.
func (engine *Engine) Registry(registryID string) *ConcurrentRegistry {
	value, found := engine.registries.Load(registryID)
	if !found {
		return nil
	}

	reg, _ := value.(*ConcurrentRegistry)
	return reg
}

// Shutdown stops the engine. Commands already in flight complete;
// every later command is rejected with ErrShutdown. Registries have no
// background goroutines, so shutdown does not block on the context
// beyond checking for early cancellation.
func (engine *Engine) Shutdown(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	engine.isShutdown.Store(true)
	return nil
}

// apply decodes the payload and invokes the matching registry operation.
// Invalid payloads are logged and swallowed: a malformed command cannot
// be retried into validity.
func (engine *Engine) apply(reg *ConcurrentRegistry, cmd *protocol.Command) error {
	switch cmd.Type {
	case protocol.CmdAddOrder:
		payload := &protocol.AddOrderCommand{}
		if err := engine.serializer.Unmarshal(cmd.Payload, payload); err != nil {
			logger.Error("failed to unmarshal AddOrder command", "error", err)
			return nil
		}
		order := NewOrder(payload.OrderID, payload.SecurityID, payload.Side, payload.Qty, payload.User, payload.Company)
		if err := reg.AddOrder(order); err != nil {
			logger.Warn("add order rejected", "registry_id", cmd.RegistryID, "order_id", payload.OrderID, "error", err)
		}
		return nil

	case protocol.CmdCancelOrder:
		payload := &protocol.CancelOrderCommand{}
		if err := engine.serializer.Unmarshal(cmd.Payload, payload); err != nil {
			logger.Error("failed to unmarshal CancelOrder command", "error", err)
			return nil
		}
		reg.CancelOrder(payload.OrderID)
		return nil

	case protocol.CmdCancelUser:
		payload := &protocol.CancelUserCommand{}
		if err := engine.serializer.Unmarshal(cmd.Payload, payload); err != nil {
			logger.Error("failed to unmarshal CancelUser command", "error", err)
			return nil
		}
		reg.CancelOrdersForUser(payload.User)
		return nil

	case protocol.CmdCancelSecurity:
		payload := &protocol.CancelSecurityCommand{}
		if err := engine.serializer.Unmarshal(cmd.Payload, payload); err != nil {
			logger.Error("failed to unmarshal CancelSecurity command", "error", err)
			return nil
		}
		reg.CancelOrdersForSecurityWithMinQty(payload.SecurityID, payload.MinQty)
		return nil

	default:
		logger.Warn("unknown command type", "type", cmd.Type, "registry_id", cmd.RegistryID)
		return nil
	}
}

// handleCreateRegistry handles the creation of a new registry.
func (engine *Engine) handleCreateRegistry(cmd *protocol.Command) error {
	payload := &protocol.CreateRegistryCommand{}
	if err := engine.serializer.Unmarshal(cmd.Payload, payload); err != nil {
		logger.Error("failed to unmarshal CreateRegistry command", "error", err)
		return nil // Cannot process invalid payload
	}

	if _, exists := engine.registries.Load(payload.RegistryID); exists {
		logger.Warn("registry already exists", "registry_id", payload.RegistryID)
		return nil
	}

	engine.registries.Store(payload.RegistryID, NewConcurrent())
	return nil
}
