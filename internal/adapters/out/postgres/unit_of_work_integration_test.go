package postgres_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "parcelpilot/internal/adapters/out/postgres"
	"parcelpilot/internal/adapters/out/postgres/parcelrepo"
	"parcelpilot/internal/adapters/out/postgres/riderrepo"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/parcel"
	"parcelpilot/internal/core/domain/model/rider"
	"parcelpilot/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite provides integration testing for the
// GORM-based Unit of Work implementation with a real PostgreSQL database,
// focusing on the compound parcel+rider transitions.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	factory   ports.UnitOfWorkFactory
}

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

	err = db.AutoMigrate(&parcelrepo.ParcelDTO{}, &riderrepo.RiderDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres_adapter.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE parcels, riders").Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

// TestUnitOfWorkFactory_Create verifies factory creates isolated instances.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWorkFactory_Create() {
	uow1 := suite.factory.Create()
	uow2 := suite.factory.Create()

	suite.NotSame(uow1, uow2, "Factory should create separate instances")
	suite.NotNil(uow1.ParcelRepository())
	suite.NotNil(uow1.RiderRepository())
	suite.NotNil(uow2.ParcelRepository())
	suite.NotNil(uow2.RiderRepository())
}

// TestUnitOfWork_TransactionLifecycle verifies begin, commit and rollback.
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

// TestUnitOfWork_TransactionErrors verifies commit/rollback without begin fail.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionErrors() {
	ctx := context.Background()
	uow := suite.factory.Create()

	err := uow.Commit(ctx)
	suite.Require().Error(err, "Should error when committing without active transaction")

	err = uow.Rollback(ctx)
	suite.Require().Error(err, "Should error when rolling back without active transaction")
}

// TestUnitOfWork_DeliveryTransition verifies the compound parcel+rider write
// commits atomically: the parcel moves to Delivered and the earning lands on
// the rider ledger in one transaction.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_DeliveryTransition() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createPickedParcel()
	testRider := suite.createTestRider()
	testRider.BeginDelivery()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)
	err = uow.RiderRepository().Add(ctx, testRider)
	suite.Require().NoError(err)

	err = testParcel.MarkDelivered(time.Now().UTC())
	suite.Require().NoError(err)
	err = uow.ParcelRepository().Update(ctx, testParcel)
	suite.Require().NoError(err)

	err = testRider.Accrue(45)
	suite.Require().NoError(err)
	testRider.FinishDelivery()
	err = uow.RiderRepository().Update(ctx, testRider)
	suite.Require().NoError(err)

	err = uow.Commit(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	retrievedParcel, err := newUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Delivered, retrievedParcel.DeliveryStatus())

	retrievedRider, err := newUow.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().NoError(err)
	suite.InDelta(45.0, retrievedRider.Earnings(), 1e-9)
	suite.Equal(rider.Free, retrievedRider.WorkStatus())
}

// TestUnitOfWork_TransactionRollback verifies rollback discards writes
// across both repositories.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_TransactionRollback() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testParcel := suite.createPickedParcel()
	testRider := suite.createTestRider()

	err := uow.Begin(ctx)
	suite.Require().NoError(err)

	err = uow.ParcelRepository().Add(ctx, testParcel)
	suite.Require().NoError(err)
	err = uow.RiderRepository().Add(ctx, testRider)
	suite.Require().NoError(err)

	// Both exist within the transaction.
	_, err = uow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	_, err = uow.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().NoError(err)

	err = uow.Rollback(ctx)
	suite.Require().NoError(err)

	newUow := suite.factory.Create()

	_, err = newUow.ParcelRepository().Get(ctx, testParcel.ID())
	suite.Require().Error(err, "Parcel should not exist after rollback")

	_, err = newUow.RiderRepository().Get(ctx, testRider.ID())
	suite.Require().Error(err, "Rider should not exist after rollback")
}

// TestUnitOfWork_RepositoryWithoutTransaction verifies repositories work
// directly against the connection when no transaction was begun.
func (suite *UnitOfWorkIntegrationTestSuite) TestUnitOfWork_RepositoryWithoutTransaction() {
	ctx := context.Background()
	uow := suite.factory.Create()

	testRider := suite.createTestRider()
	err := uow.RiderRepository().Add(ctx, testRider)
	suite.Require().NoError(err)

	retrieved, err := suite.factory.Create().RiderRepository().GetByEmail(ctx, testRider.Email())
	suite.Require().NoError(err)
	suite.True(testRider.ID().IsEqual(retrieved.ID()))
}

// createPickedParcel builds a parcel in Parcel-picked state ready for the
// delivery-completion transition.
func (suite *UnitOfWorkIntegrationTestSuite) createPickedParcel() *parcel.Parcel {
	sender, err := kernel.NewDistrict("Mirpur")
	suite.Require().NoError(err)
	receiver, err := kernel.NewDistrict("Uttara")
	suite.Require().NoError(err)

	testParcel, err := parcel.NewParcel(
		kernel.NewUUID(), "PP-"+kernel.NewUUID().String()[:12],
		"Alice Rahman", "alice@example.com", sender,
		"Bob Karim", "12 Lake Road", receiver,
		150, time.Now().UTC(),
	)
	suite.Require().NoError(err)

	err = testParcel.AssignRider(parcel.AssignedRider{
		ID:    kernel.NewUUID(),
		Name:  "Rafi Islam",
		Email: "rafi@example.com",
	}, time.Now().UTC())
	suite.Require().NoError(err)

	err = testParcel.StartDelivery("Rafi Islam", time.Now().UTC())
	suite.Require().NoError(err)

	return testParcel
}

// createTestRider builds a pending rider application with a unique email.
func (suite *UnitOfWorkIntegrationTestSuite) createTestRider() *rider.Rider {
	district, err := kernel.NewDistrict("Mirpur")
	suite.Require().NoError(err)

	id := kernel.NewUUID()
	testRider, err := rider.NewRider(id, "Rafi Islam", id.String()+"@example.com", district)
	suite.Require().NoError(err)
	return testRider
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
