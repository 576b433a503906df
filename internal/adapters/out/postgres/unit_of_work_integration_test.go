package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "github.com/IanMassaccesi/gestion-erp-sub001/internal/adapters/out/postgres"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/cashshift"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/kernel"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/order"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/domain/model/product"
	"github.com/IanMassaccesi/gestion-erp-sub001/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation against a real PostgreSQL database.
// The order/stock atomicity tests here are the contract the order
// transaction coordinator is built on.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite initializes PostgreSQL container and database connection for all tests.
// Runs database migrations to prepare schema for unit of work operations.
func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2)),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres_adapter.Migrate(db))

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, products, routes, shipments, cash_shifts, cash_transactions, customers",
	).Error
	suite.Require().NoError(err)
}

// TearDownSuite cleans up PostgreSQL container after all tests complete.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates unit of work instances
// with proper initialization and isolation between instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository(), "First instance should provide order repository")
	suite.NotNil(uow1.ProductRepository(), "First instance should provide product repository")
	suite.NotNil(uow2.CashShiftRepository(), "Second instance should provide cash-shift repository")
	suite.NotNil(uow2.CustomerRepository(), "Second instance should provide customer repository")
}

// TestUnitOfWork_TransactionLifecycle verifies proper transaction management
// including begin, commit, and rollback operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionLifecycle() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Begin(ctx)
	suite.Require().NoError(err, "Should begin transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err, "Multiple begin calls should be safe")

	err = uow.Commit(ctx)
	suite.Require().NoError(err, "Should commit transaction successfully")

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Should rollback transaction successfully")
}

// TestUnitOfWork_TransactionErrors verifies error handling for invalid transaction operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_OrderWithStockReservation verifies the core order-creation
// contract: the stock decrement and the order row commit together.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderWithStockReservation() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := suite.createTestProduct(10)
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	remaining, err := uow.ProductRepository().ReserveStock(ctx, testProduct.ID(), 4)
	suite.Require().NoError(err)
	suite.Equal(6, remaining)

	testOrder := suite.createTestOrder(uow, testProduct, 4)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	// Both effects are visible from a fresh unit of work.
	newUow := suite.factory.Create()

	persistedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, persistedOrder.Status())

	persistedProduct, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(6, persistedProduct.CurrentStock())
}

// TestUnitOfWork_RollbackRestoresStock verifies that a failed order leaves
// no partial stock mutation behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackRestoresStock() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := suite.createTestProduct(10)
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	_, err = uow.ProductRepository().ReserveStock(ctx, testProduct.ID(), 7)
	suite.Require().NoError(err)

	testOrder := suite.createTestOrder(uow, testProduct, 7)
	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	persistedProduct, err := newUow.ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(10, persistedProduct.CurrentStock(), "Reserved stock should return on rollback")
}

// TestUnitOfWork_InsufficientStockAbortsReservation verifies the conditional
// decrement refuses to oversell and reports the shortfall.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_InsufficientStockAbortsReservation() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := suite.createTestProduct(3)
	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	err = uow.Begin(ctx)
	suite.Require().NoError(err)

	_, err = uow.ProductRepository().ReserveStock(ctx, testProduct.ID(), 5)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, product.ErrInsufficientStock)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	persistedProduct, err := suite.factory.Create().ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(3, persistedProduct.CurrentStock())
}

// TestUnitOfWork_SecondReservationFailureRollsBackFirst verifies the
// multi-item order contract: when the second item's reservation fails, the
// first item's already-applied decrement is undone and no order row lands.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SecondReservationFailureRollsBackFirst() {
	ctx := context.Background()

	firstProduct := suite.createTestProduct(10)
	secondProduct := suite.createTestProduct(3)

	setup := suite.factory.Create()
	suite.Require().NoError(setup.ProductRepository().Add(ctx, firstProduct))
	suite.Require().NoError(setup.ProductRepository().Add(ctx, secondProduct))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	remaining, err := uow.ProductRepository().ReserveStock(ctx, firstProduct.ID(), 4)
	suite.Require().NoError(err)
	suite.Equal(6, remaining)

	_, err = uow.ProductRepository().ReserveStock(ctx, secondProduct.ID(), 5)
	suite.Require().ErrorIs(err, product.ErrInsufficientStock)

	suite.Require().NoError(uow.Rollback(ctx))

	newUow := suite.factory.Create()

	persistedFirst, err := newUow.ProductRepository().Get(ctx, firstProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(10, persistedFirst.CurrentStock(), "First reservation should be undone")

	persistedSecond, err := newUow.ProductRepository().Get(ctx, secondProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(3, persistedSecond.CurrentStock())

	var orderCount int64
	suite.Require().NoError(suite.db.Table("orders").Count(&orderCount).Error)
	suite.Zero(orderCount, "No order row should survive the failed reservation")
}

// TestUnitOfWork_RepositoryIsolation verifies that repositories obtained
// from different unit of work instances operate independently.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryIsolation() {
	ctx := context.Background()

	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	product1 := suite.createTestProduct(5)
	product2 := suite.createTestProduct(5)

	err := uow1.Begin(ctx)
	suite.Require().NoError(err)

	err = uow2.Begin(ctx)
	suite.Require().NoError(err)

	err = uow1.ProductRepository().Add(ctx, product1)
	suite.Require().NoError(err)

	err = uow2.ProductRepository().Add(ctx, product2)
	suite.Require().NoError(err)

	// Each transaction should only see its own changes.
	_, err = uow1.ProductRepository().Get(ctx, product1.ID())
	suite.Require().NoError(err, "UOW1 should see product1")

	_, err = uow1.ProductRepository().Get(ctx, product2.ID())
	suite.Require().Error(err, "UOW1 should not see product2")

	err = uow1.Commit(ctx)
	suite.Require().NoError(err)

	err = uow2.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	_, err = newUow.ProductRepository().Get(ctx, product1.ID())
	suite.Require().NoError(err, "Product1 should persist after commit")

	_, err = newUow.ProductRepository().Get(ctx, product2.ID())
	suite.Require().Error(err, "Product2 should not persist after rollback")
}

// TestUnitOfWork_WithoutTransaction verifies that repositories work correctly
// without explicit transaction boundaries for immediate operations.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testProduct := suite.createTestProduct(1)

	err := uow.ProductRepository().Add(ctx, testProduct)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().ProductRepository().Get(ctx, testProduct.ID())
	suite.Require().NoError(err)
	suite.Equal(testProduct.ID(), retrieved.ID())
}

// TestUnitOfWork_SingleOpenShiftEnforced verifies the partial unique index
// refuses a second open shift even across separate transactions.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_SingleOpenShiftEnforced() {
	ctx := context.Background()

	first, err := cashshift.NewShift(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(5000), time.Now())
	suite.Require().NoError(err)

	err = suite.factory.Create().CashShiftRepository().Add(ctx, first)
	suite.Require().NoError(err)

	second, err := cashshift.NewShift(kernel.NewUUID(), kernel.NewUUID(), decimal.NewFromInt(100), time.Now())
	suite.Require().NoError(err)

	err = suite.factory.Create().CashShiftRepository().Add(ctx, second)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, cashshift.ErrShiftAlreadyOpen)

	// Closing the first shift frees the slot.
	err = first.Close(decimal.NewFromInt(5000), decimal.NewFromInt(5000), time.Now())
	suite.Require().NoError(err)
	err = suite.factory.Create().CashShiftRepository().Update(ctx, first)
	suite.Require().NoError(err)

	err = suite.factory.Create().CashShiftRepository().Add(ctx, second)
	suite.Require().NoError(err)
}

// createTestProduct creates a stock-tracked product with the given stock.
func (suite *UnitOfWorkIntegrationTestSuite) createTestProduct(stock int) *product.Product {
	prices, err := product.NewPricePoints(
		decimal.NewFromInt(1000),
		decimal.NewFromInt(1200),
		decimal.NewFromInt(1500),
	)
	suite.Require().NoError(err)

	testProduct, err := product.NewProduct(
		kernel.NewUUID(),
		"Fernet 750ml",
		"SKU-"+kernel.NewUUID().String()[:8],
		"Bebidas",
		prices,
		true,
		stock,
		2,
	)
	suite.Require().NoError(err)
	return testProduct
}

// createTestOrder builds a confirmed pickup order for the given product.
func (suite *UnitOfWorkIntegrationTestSuite) createTestOrder(
	uow ports.UnitOfWork, p *product.Product, quantity int,
) *order.Order {
	number, err := uow.OrderRepository().NextNumber(context.Background())
	suite.Require().NoError(err)

	item, err := order.NewItem(
		p.ID(),
		p.Name(),
		quantity,
		product.TierFinal,
		p.Prices().RetailFinal(),
		product.NoAdjustment(),
		p.Prices().RetailFinal(),
	)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		nil,
		product.TierFinal,
		"",
		[]order.Item{item},
		decimal.Zero,
		time.Now(),
	)
	suite.Require().NoError(err)
	return testOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
