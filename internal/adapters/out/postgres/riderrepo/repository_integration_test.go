package riderrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelpilot/internal/adapters/out/postgres/riderrepo"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/rider"
	"parcelpilot/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// RiderRepositoryIntegrationTestSuite provides integration tests for
// RiderRepository using PostgreSQL containers, covering the earnings ledger
// round-trip and the get-or-create boundary.
type RiderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container       *postgres.PostgresContainer
	db              *gorm.DB
	riderRepository *riderrepo.GormRiderRepository
	tracker         *MockAggregateTracker
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupSuite() {
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

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&riderrepo.RiderDTO{}))
}

func (suite *RiderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE riders").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.riderRepository = riderrepo.NewGormRiderRepository(suite.db, suite.tracker)
}

func (suite *RiderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RiderRepositoryIntegrationTestSuite) TestAdd_Get_RoundTripsApplication() {
	ctx := context.Background()
	original := suite.createTestRider("rafi@example.com")

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.riderRepository.Add(ctx, original))

	retrieved, err := suite.riderRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal(original.Name(), retrieved.Name())
	suite.Equal(original.Email(), retrieved.Email())
	suite.Require().NotNil(retrieved.District())
	suite.Equal("Mirpur", retrieved.District().Name())
	suite.Equal(rider.Pending, retrieved.Status())
	suite.Equal(rider.Free, retrieved.WorkStatus())
	suite.Zero(retrieved.Earnings())
	suite.Empty(retrieved.Cashouts())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestUpdate_LedgerFields_RoundTrip() {
	ctx := context.Background()
	original := suite.createTestRider("rafi@example.com")

	suite.tracker.On("TrackAggregate", original.ID(), original).Times(3)
	suite.Require().NoError(suite.riderRepository.Add(ctx, original))

	suite.Require().NoError(original.Accrue(80))
	suite.Require().NoError(original.Accrue(30))
	suite.Require().NoError(suite.riderRepository.Update(ctx, original))

	amount, err := original.Cashout(time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.InDelta(110.0, amount, 1e-9)
	suite.Require().NoError(suite.riderRepository.Update(ctx, original))

	retrieved, err := suite.riderRepository.GetByEmail(ctx, "rafi@example.com")
	suite.Require().NoError(err)

	suite.Zero(retrieved.Earnings())
	suite.InDelta(110.0, retrieved.TotalEarned(), 1e-9)
	suite.InDelta(110.0, retrieved.TotalCashout(), 1e-9)

	cashouts := retrieved.Cashouts()
	suite.Require().Len(cashouts, 1)
	suite.InDelta(110.0, cashouts[0].Amount(), 1e-9)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetOrCreateByEmail_Existing_ReturnsSameRider() {
	ctx := context.Background()
	original := suite.createTestRider("rafi@example.com")

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.riderRepository.Add(ctx, original))

	resolved, err := suite.riderRepository.GetOrCreateByEmail(ctx, "rafi@example.com")
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(resolved.ID()))
	suite.Equal(rider.Pending, resolved.Status())
	suite.assertRiderCount(1)
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetOrCreateByEmail_Unknown_MaterializesLedgerRider() {
	ctx := context.Background()

	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Once()

	resolved, err := suite.riderRepository.GetOrCreateByEmail(ctx, "ghost@example.com")
	suite.Require().NoError(err)

	suite.Equal("ghost@example.com", resolved.Email())
	suite.Equal(rider.Accepted, resolved.Status())
	suite.Nil(resolved.District())
	suite.Zero(resolved.Earnings())
	suite.assertRiderCount(1)

	// The materialized rider is durable and can accrue earnings.
	suite.Require().NoError(resolved.Accrue(60))
	suite.tracker.On("TrackAggregate", resolved.ID(), resolved).Once()
	suite.Require().NoError(suite.riderRepository.Update(ctx, resolved))

	retrieved, err := suite.riderRepository.GetByEmail(ctx, "ghost@example.com")
	suite.Require().NoError(err)
	suite.InDelta(60.0, retrieved.Earnings(), 1e-9)
}

func (suite *RiderRepositoryIntegrationTestSuite) TestGetByEmail_Unknown_ReturnsNotFound() {
	ctx := context.Background()

	retrieved, err := suite.riderRepository.GetByEmail(ctx, "nobody@example.com")

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestRider creates a pending rider application for the given email.
func (suite *RiderRepositoryIntegrationTestSuite) createTestRider(email string) *rider.Rider {
	district, err := kernel.NewDistrict("Mirpur")
	suite.Require().NoError(err)

	testRider, err := rider.NewRider(kernel.NewUUID(), "Rafi Islam", email, district)
	suite.Require().NoError(err)
	return testRider
}

// assertRiderCount verifies the number of riders in the database.
func (suite *RiderRepositoryIntegrationTestSuite) assertRiderCount(expected int) {
	var count int64
	err := suite.db.Model(&riderrepo.RiderDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestRiderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RiderRepositoryIntegrationTestSuite))
}
