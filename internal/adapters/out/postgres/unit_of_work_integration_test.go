package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "farmmarket/internal/adapters/out/postgres"
	"farmmarket/internal/adapters/out/postgres/deliveryrepo"
	"farmmarket/internal/adapters/out/postgres/dispatcherrepo"
	"farmmarket/internal/adapters/out/postgres/orderrepo"
	"farmmarket/internal/adapters/out/postgres/productrepo"
	"farmmarket/internal/adapters/out/postgres/ratingrepo"
	"farmmarket/internal/core/domain/model/delivery"
	"farmmarket/internal/core/domain/model/dispatcher"
	"farmmarket/internal/core/domain/model/kernel"
	"farmmarket/internal/core/domain/model/order"
	"farmmarket/internal/core/ports"
	"farmmarket/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database.
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
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&orderrepo.OrderDTO{}, &orderrepo.ItemDTO{},
		&deliveryrepo.DeliveryDTO{},
		&dispatcherrepo.DispatcherDTO{},
		&productrepo.ProductDTO{},
		&ratingrepo.RatingDTO{},
	)
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

// SetupTest ensures clean database state before each test.
func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(
		"TRUNCATE TABLE orders, order_items, deliveries, dispatchers, products, ratings",
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

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")

	suite.NotNil(uow1.OrderRepository())
	suite.NotNil(uow1.DeliveryRepository())
	suite.NotNil(uow1.DispatcherRepository())
	suite.NotNil(uow1.ProductRepository())
	suite.NotNil(uow1.RatingRepository())
}

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

func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_AssignmentTransaction exercises the two-repository write that
// assignment performs: the order gains its dispatcher and the delivery row is
// created in the same transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_AssignmentTransaction() {
	ctx := context.Background()

	rider := suite.newDispatcher()
	aggregate := suite.newConfirmedOrder()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.DispatcherRepository().Add(ctx, rider))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(aggregate.AssignDispatcher(rider.ID()))

	shipment, err := delivery.NewDelivery(kernel.NewUUID(), aggregate.ID(), rider.ID(),
		aggregate.PickupAddress(), aggregate.PickupPoint(),
		aggregate.DeliveryAddress(), aggregate.DeliveryPoint())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, shipment))
	suite.Require().NoError(uow.Commit(ctx))

	verify := suite.factory.Create()
	restoredOrder, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Require().NotNil(restoredOrder.Dispatcher())
	suite.True(restoredOrder.Dispatcher().IsEqual(rider.ID()))

	restoredShipment, err := verify.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Equal(delivery.Assigned, restoredShipment.Status())
}

// TestUnitOfWork_RollbackDiscardsAllRepositories verifies that a failed
// assignment leaves neither the order update nor the delivery row behind.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RollbackDiscardsAllRepositories() {
	ctx := context.Background()

	rider := suite.newDispatcher()
	aggregate := suite.newConfirmedOrder()

	setup := suite.factory.Create()
	suite.Require().NoError(setup.Begin(ctx))
	suite.Require().NoError(setup.DispatcherRepository().Add(ctx, rider))
	suite.Require().NoError(setup.OrderRepository().Add(ctx, aggregate))
	suite.Require().NoError(setup.Commit(ctx))

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	suite.Require().NoError(aggregate.AssignDispatcher(rider.ID()))

	shipment, err := delivery.NewDelivery(kernel.NewUUID(), aggregate.ID(), rider.ID(),
		aggregate.PickupAddress(), aggregate.PickupPoint(),
		aggregate.DeliveryAddress(), aggregate.DeliveryPoint())
	suite.Require().NoError(err)

	suite.Require().NoError(uow.OrderRepository().Update(ctx, aggregate))
	suite.Require().NoError(uow.DeliveryRepository().Add(ctx, shipment))
	suite.Require().NoError(uow.Rollback(ctx))

	verify := suite.factory.Create()
	restoredOrder, err := verify.OrderRepository().Get(ctx, aggregate.ID())
	suite.Require().NoError(err)
	suite.Nil(restoredOrder.Dispatcher(), "Rolled back assignment should not persist")

	_, err = verify.DeliveryRepository().GetByOrderID(ctx, aggregate.ID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkIntegrationTestSuite) newDispatcher() *dispatcher.Dispatcher {
	basePoint, err := kernel.NewGeoPoint(-26.1952, 28.0340)
	suite.Require().NoError(err)

	rider, err := dispatcher.NewDispatcher(kernel.NewUUID(), "Sipho Dlamini", "+27821234567",
		dispatcher.VehicleMotorbike, basePoint)
	suite.Require().NoError(err)

	return rider
}

func (suite *UnitOfWorkIntegrationTestSuite) newConfirmedOrder() *order.Order {
	unitPrice, err := kernel.NewMoney(2500)
	suite.Require().NoError(err)

	item, err := order.NewItem(kernel.NewUUID(), "Heirloom tomatoes", unitPrice, 2, "kg")
	suite.Require().NoError(err)

	total, err := unitPrice.Multiply(2)
	suite.Require().NoError(err)
	farmerAmount, err := total.Percent(90)
	suite.Require().NoError(err)
	dispatcherAmount, err := total.Percent(5)
	suite.Require().NoError(err)

	pickupPoint, err := kernel.NewGeoPoint(-26.2041, 28.0473)
	suite.Require().NoError(err)
	deliveryPoint, err := kernel.NewGeoPoint(-26.1076, 28.0567)
	suite.Require().NoError(err)

	aggregate, err := order.NewOrder(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		[]order.Item{item},
		total, farmerAmount, dispatcherAmount,
		"5 Farm Lane, Magaliesburg", pickupPoint,
		"12 Oak Avenue, Randburg", deliveryPoint,
		order.PaymentMethodLiskZAR,
	)
	suite.Require().NoError(err)

	suite.Require().NoError(aggregate.RecordPayment(order.PaymentStatusPaid))
	suite.Require().NoError(aggregate.ChangeStatus(order.Confirmed))

	return aggregate
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
