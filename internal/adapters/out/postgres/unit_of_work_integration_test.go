package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "homechef/internal/adapters/out/postgres"
	"homechef/internal/adapters/out/postgres/bulkorderrepo"
	"homechef/internal/adapters/out/postgres/cartrepo"
	"homechef/internal/adapters/out/postgres/catalogrepo"
	"homechef/internal/adapters/out/postgres/deliveryrepo"
	"homechef/internal/adapters/out/postgres/orderrepo"
	"homechef/internal/adapters/out/postgres/paymentrepo"
	"homechef/internal/core/domain/model/bulkorder"
	"homechef/internal/core/domain/model/cart"
	"homechef/internal/core/domain/model/delivery"
	"homechef/internal/core/domain/model/kernel"
	"homechef/internal/core/domain/model/order"
	"homechef/internal/core/domain/model/payment"
	"homechef/internal/core/ports"
	"homechef/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite exercises the GORM-based Unit of Work
// implementation against a real PostgreSQL database.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

// SetupSuite starts the PostgreSQL container, connects, and runs migrations.
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.OrderItemDTO{}, &orderrepo.OrderHistoryDTO{},
		&cartrepo.CartDTO{}, &cartrepo.CartLineDTO{},
		&paymentrepo.PaymentDTO{}, &paymentrepo.RefundDTO{},
		&deliveryrepo.DeliveryDTO{},
		&bulkorderrepo.BulkOrderDTO{}, &bulkorderrepo.AssignmentDTO{},
		&catalogrepo.ChefDTO{}, &catalogrepo.PricePointDTO{},
		&catalogrepo.AgentDTO{}, &catalogrepo.PromoDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest truncates all tables so tests never interfere with each other.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders, order_items, order_history, carts, cart_lines, " +
		"payments, refunds, deliveries, bulk_orders, bulk_assignments, " +
		"chefs, price_points, agents, promotions").Error
	suite.Require().NoError(err)
}

// TearDownSuite terminates the PostgreSQL container.
func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies each unit of work is an isolated
// instance with access to every repository.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.CartRepository())
	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.PaymentRepository())
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.BulkOrderRepository())
	suite.NotNil(uow2.OrderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit, and rollback.
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

// TestUnitOfWork_TransactionErrors verifies behavior outside an active
// transaction: commit fails, rollback is a deferred-safe no-op.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err, "Rollback without active transaction should be a no-op")
}

// TestUnitOfWork_CheckoutPersistence verifies the aggregates produced by a
// checkout persist atomically within one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CheckoutPersistence() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	testPayment := createTestPayment(testOrder.ID())
	testDelivery := createTestDelivery(testOrder.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.PaymentRepository().Add(ctx, testPayment)
	suite.Require().NoError(err)

	err = uow.DeliveryRepository().Add(ctx, testDelivery)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedOrder, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(testOrder.Number(), retrievedOrder.Number())
	suite.Equal(order.Pending, retrievedOrder.Status())
	suite.Len(retrievedOrder.Items(), 1)
	suite.Len(retrievedOrder.History(), 1)
	suite.True(retrievedOrder.Charges().Total().IsEqual(testOrder.Charges().Total()))

	retrievedPayment, err := newUow.PaymentRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(payment.Pending, retrievedPayment.Status())
	suite.Equal(payment.MethodCash, retrievedPayment.Method())

	retrievedDelivery, err := newUow.DeliveryRepository().GetByOrder(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Unassigned, retrievedDelivery.Status())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards changes
// across every repository touched in the transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()
	testPayment := createTestPayment(testOrder.ID())

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	err = uow.PaymentRepository().Add(ctx, testPayment)
	suite.Require().NoError(err)

	_, err = uow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err, "Order should be visible within the transaction")

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().Error(err, "Order should not exist after rollback")

	_, err = newUow.PaymentRepository().Get(ctx, testPayment.ID())
	suite.Require().Error(err, "Payment should not exist after rollback")
}

// TestUnitOfWork_OptimisticConcurrency verifies a stale aggregate cannot
// overwrite a newer version of the same row.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OptimisticConcurrency() {
	ctx := context.Background()

	testOrder := createTestOrder()
	err := suite.factory.Create().OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	// Two actors load the same order.
	staleCopy, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	freshCopy, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)

	// First write wins.
	err = freshCopy.TransitionTo(order.Confirmed, order.SystemActor(), "payment settled", time.Now())
	suite.Require().NoError(err)
	err = suite.factory.Create().OrderRepository().Update(ctx, freshCopy)
	suite.Require().NoError(err)

	// The stale copy loses with a concurrency conflict.
	err = staleCopy.TransitionTo(order.Cancelled, order.SystemActor(), "stale write", time.Now())
	suite.Require().NoError(err)
	err = suite.factory.Create().OrderRepository().Update(ctx, staleCopy)
	suite.Require().Error(err)
	var conflictErr *errs.ConcurrencyConflictError
	suite.ErrorAs(err, &conflictErr)

	// The committed state is the winner's.
	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Confirmed, retrieved.Status())
}

// TestUnitOfWork_OrderHistoryAppendOnly verifies the status trail survives
// repeated updates without duplicating earlier entries.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_OrderHistoryAppendOnly() {
	ctx := context.Background()

	testOrder := createTestOrder()
	err := suite.factory.Create().OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	loaded, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = loaded.TransitionTo(order.Confirmed, order.SystemActor(), "payment settled", time.Now())
	suite.Require().NoError(err)
	err = suite.factory.Create().OrderRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	admin, err := order.AdminActor(kernel.NewUUID())
	suite.Require().NoError(err)

	loaded, err = suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	err = loaded.TransitionTo(order.Preparing, admin, "kitchen started", time.Now())
	suite.Require().NoError(err)
	err = suite.factory.Create().OrderRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.Require().Len(retrieved.History(), 3)
	suite.Equal(order.Pending, retrieved.History()[0].Status())
	suite.Equal(order.Confirmed, retrieved.History()[1].Status())
	suite.Equal(order.Preparing, retrieved.History()[2].Status())
}

// TestUnitOfWork_CartRoundTrip verifies cart lines replace on update and the
// customer lookup returns the current contents.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_CartRoundTrip() {
	ctx := context.Background()

	customerID := kernel.NewUUID()
	testCart := createTestCart(customerID)
	err := suite.factory.Create().CartRepository().Add(ctx, testCart)
	suite.Require().NoError(err)

	loaded, err := suite.factory.Create().CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Lines(), 1)

	loaded.Clear()
	err = suite.factory.Create().CartRepository().Update(ctx, loaded)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(retrieved.IsEmpty(), "Cleared cart should persist without lines")
}

// TestUnitOfWork_StalePendingOrderQuery verifies the sweep query only picks
// up pending orders older than the cutoff.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_StalePendingOrderQuery() {
	ctx := context.Background()

	staleOrder := createTestOrder()
	freshOrder := createTestOrder()

	repo := suite.factory.Create().OrderRepository()
	err := repo.Add(ctx, staleOrder)
	suite.Require().NoError(err)
	err = repo.Add(ctx, freshOrder)
	suite.Require().NoError(err)

	// Age the first order past the cutoff directly in the database.
	err = suite.db.Exec("UPDATE orders SET created_at = ? WHERE id = ?",
		time.Now().Add(-2*time.Hour), staleOrder.ID().Bytes()).Error
	suite.Require().NoError(err)

	stale, err := suite.factory.Create().OrderRepository().GetAllPendingOlderThan(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Require().Len(stale, 1)
	suite.True(stale[0].ID().IsEqual(staleOrder.ID()))
}

// TestUnitOfWork_ExpiredBulkOrderQuery verifies pending bulk orders past
// their deadline are listed while confirmed ones are not.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_ExpiredBulkOrderQuery() {
	ctx := context.Background()

	expired := createTestBulkOrder(time.Now().Add(-time.Hour))
	upcoming := createTestBulkOrder(time.Now().Add(24 * time.Hour))

	repo := suite.factory.Create().BulkOrderRepository()
	err := repo.Add(ctx, expired)
	suite.Require().NoError(err)
	err = repo.Add(ctx, upcoming)
	suite.Require().NoError(err)

	listed, err := suite.factory.Create().BulkOrderRepository().GetAllPendingExpired(ctx, time.Now())
	suite.Require().NoError(err)
	suite.Require().Len(listed, 1)
	suite.True(listed[0].ID().IsEqual(expired.ID()))
	suite.Equal(bulkorder.Pending, listed[0].Status())
}

// TestUnitOfWork_DeliveryWorkload verifies the per-agent active delivery
// count used to enforce the assignment cap.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryWorkload() {
	ctx := context.Background()
	agentID := kernel.NewUUID()

	repo := suite.factory.Create().DeliveryRepository()

	for range 2 {
		d := createTestDelivery(kernel.NewUUID())
		err := repo.Add(ctx, d)
		suite.Require().NoError(err)

		err = d.Assign(agentID, order.Ready, time.Now())
		suite.Require().NoError(err)
		err = repo.Update(ctx, d)
		suite.Require().NoError(err)
	}

	// An unassigned delivery must not count toward the workload.
	idle := createTestDelivery(kernel.NewUUID())
	err := repo.Add(ctx, idle)
	suite.Require().NoError(err)

	count, err := suite.factory.Create().DeliveryRepository().CountActiveByAgent(ctx, agentID)
	suite.Require().NoError(err)
	suite.Equal(2, count)
}

// TestUnitOfWork_WithoutTransaction verifies repositories auto-commit when
// no transaction has been begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_WithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testOrder := createTestOrder()

	err := uow.OrderRepository().Add(ctx, testOrder)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()
	retrieved, err := newUow.OrderRepository().Get(ctx, testOrder.ID())
	suite.Require().NoError(err)
	suite.True(retrieved.ID().IsEqual(testOrder.ID()))
}

func testMoney(amount float64) kernel.Money {
	m, _ := kernel.NewMoneyFromFloat(amount)
	return m
}

// createTestOrder creates a pending order with one item for testing purposes.
func createTestOrder() *order.Order {
	location, _ := kernel.NewGeoPoint(6.9271, 79.8612)
	item, _ := order.NewItem(kernel.NewUUID(), "Kottu Roti", 2, testMoney(150))
	charges, _ := order.NewCharges(testMoney(300), testMoney(50), testMoney(10), testMoney(0))
	chefID := kernel.NewUUID()

	testOrder, _ := order.NewOrder(
		kernel.NewUUID(), order.NewNumber(), kernel.NewUUID(), &chefID,
		[]order.Item{item}, charges, location, time.Now(),
	)
	return testOrder
}

// createTestPayment creates a pending cash payment for an order.
func createTestPayment(orderID kernel.UUID) *payment.Payment {
	testPayment, _ := payment.NewPayment(kernel.NewUUID(), orderID, testMoney(360), payment.MethodCash, time.Now())
	return testPayment
}

// createTestDelivery creates an unassigned delivery for an order.
func createTestDelivery(orderID kernel.UUID) *delivery.Delivery {
	testDelivery, _ := delivery.NewDelivery(kernel.NewUUID(), orderID, time.Now())
	return testDelivery
}

// createTestCart creates a cart holding a single line.
func createTestCart(customerID kernel.UUID) *cart.Cart {
	testCart, _ := cart.NewCart(kernel.NewUUID(), customerID)
	line, _ := cart.NewLine(kernel.NewUUID(), kernel.NewUUID(), "Kottu Roti", 2, testMoney(150))
	_ = testCart.AddLine(line)
	return testCart
}

// createTestBulkOrder creates a pending bulk order with the given
// confirmation deadline.
func createTestBulkOrder(deadline time.Time) *bulkorder.BulkOrder {
	location, _ := kernel.NewGeoPoint(6.9271, 79.8612)
	testBulkOrder, _ := bulkorder.NewBulkOrder(
		kernel.NewUUID(), bulkorder.NewNumber(), kernel.NewUUID(),
		"office lunch", location, time.Now().Add(72*time.Hour), 100, deadline, time.Now(),
	)
	return testBulkOrder
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
