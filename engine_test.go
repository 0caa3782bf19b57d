package registry

import (
	"context"
	"testing"

	"github.com/0x5487/order-registry/protocol"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite
	engine *Engine
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (suite *EngineTestSuite) SetupTest() {
	suite.engine = NewEngine()
}

func (suite *EngineTestSuite) TestCreateRegistryAndAddOrder() {
	ctx := context.Background()

	err := suite.engine.CreateRegistry("admin", "desk-1")
	suite.NoError(err)

	err = suite.engine.AddOrder(ctx, "desk-1", &protocol.AddOrderCommand{
		OrderID:    "order1",
		SecurityID: "SecId1",
		Side:       "Buy",
		Qty:        1000,
		User:       "User1",
		Company:    "CompanyA",
	})
	suite.NoError(err)

	reg := suite.engine.Registry("desk-1")
	suite.NotNil(reg)
	suite.Equal(1, reg.Len())
}

func (suite *EngineTestSuite) TestCommandsRouteToTheRightRegistry() {
	ctx := context.Background()

	suite.NoError(suite.engine.CreateRegistry("admin", "desk-1"))
	suite.NoError(suite.engine.CreateRegistry("admin", "desk-2"))

	suite.NoError(suite.engine.AddOrder(ctx, "desk-1", &protocol.AddOrderCommand{
		OrderID: "order1", SecurityID: "SecId1", Side: "Buy", Qty: 100, User: "User1", Company: "CompanyA",
	}))
	suite.NoError(suite.engine.AddOrder(ctx, "desk-2", &protocol.AddOrderCommand{
		OrderID: "order1", SecurityID: "SecId1", Side: "Sell", Qty: 200, User: "User2", Company: "CompanyB",
	}))

	suite.Equal(1, suite.engine.Registry("desk-1").Len())
	suite.Equal(1, suite.engine.Registry("desk-2").Len())
}

func (suite *EngineTestSuite) TestCancelCommands() {
	ctx := context.Background()

	suite.NoError(suite.engine.CreateRegistry("admin", "desk-1"))

	orders := []*protocol.AddOrderCommand{
		{OrderID: "order1", SecurityID: "SecId1", Side: "Buy", Qty: 1000, User: "User1", Company: "CompanyA"},
		{OrderID: "order2", SecurityID: "SecId1", Side: "Sell", Qty: 2500, User: "User2", Company: "CompanyB"},
		{OrderID: "order3", SecurityID: "SecId2", Side: "Sell", Qty: 3000, User: "User1", Company: "CompanyA"},
		{OrderID: "order4", SecurityID: "SecId1", Side: "Sell", Qty: 400, User: "User3", Company: "CompanyC"},
	}
	for _, cmd := range orders {
		suite.NoError(suite.engine.AddOrder(ctx, "desk-1", cmd))
	}

	reg := suite.engine.Registry("desk-1")
	suite.Equal(4, reg.Len())

	suite.NoError(suite.engine.CancelOrder(ctx, "desk-1", &protocol.CancelOrderCommand{OrderID: "order4"}))
	suite.Equal(3, reg.Len())

	suite.NoError(suite.engine.CancelUser(ctx, "desk-1", &protocol.CancelUserCommand{User: "User1"}))
	suite.Equal(1, reg.Len())

	suite.NoError(suite.engine.CancelSecurity(ctx, "desk-1", &protocol.CancelSecurityCommand{SecurityID: "SecId1", MinQty: 2000}))
	suite.Equal(0, reg.Len())
}

func (suite *EngineTestSuite) TestUnknownRegistryReturnsNotFound() {
	ctx := context.Background()

	err := suite.engine.AddOrder(ctx, "nowhere", &protocol.AddOrderCommand{OrderID: "order1"})
	suite.ErrorIs(err, ErrNotFound)

	err = suite.engine.EnqueueCommand(&protocol.Command{Type: protocol.CmdCancelOrder})
	suite.ErrorIs(err, ErrNotFound)
}

func (suite *EngineTestSuite) TestCreateRegistryTwiceIsNoOp() {
	suite.NoError(suite.engine.CreateRegistry("admin", "desk-1"))
	reg := suite.engine.Registry("desk-1")

	suite.NoError(suite.engine.CreateRegistry("admin", "desk-1"))
	suite.Same(reg, suite.engine.Registry("desk-1"))
}

func (suite *EngineTestSuite) TestShutdownRejectsCommands() {
	ctx := context.Background()

	suite.NoError(suite.engine.CreateRegistry("admin", "desk-1"))
	suite.NoError(suite.engine.Shutdown(ctx))

	err := suite.engine.AddOrder(ctx, "desk-1", &protocol.AddOrderCommand{OrderID: "order1"})
	suite.ErrorIs(err, ErrShutdown)

	err = suite.engine.CreateRegistry("admin", "desk-2")
	suite.ErrorIs(err, ErrShutdown)
}
