package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelpilot/internal/adapters/out/postgres/parcelrepo"
	"parcelpilot/internal/core/domain/model/kernel"
	"parcelpilot/internal/core/domain/model/parcel"
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

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using PostgreSQL containers to verify persistence of the
// parcel aggregate and its embedded log trail.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	parcelRepository *parcelrepo.GormParcelRepository
	tracker          *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.parcelRepository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAdd_ValidParcel_Success() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("PP-1A2B3C4D5E6F")

	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()

	err := suite.parcelRepository.Add(ctx, testParcel)
	suite.Require().NoError(err)

	suite.assertParcelCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_ExistingParcel_RoundTripsAggregate() {
	ctx := context.Background()
	original := suite.createTestParcel("PP-1A2B3C4D5E6F")

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, original))

	retrieved, err := suite.parcelRepository.Get(ctx, original.ID())
	suite.Require().NoError(err)

	suite.True(original.ID().IsEqual(retrieved.ID()))
	suite.Equal(original.TrackingID(), retrieved.TrackingID())
	suite.Equal(original.SenderEmail(), retrieved.SenderEmail())
	suite.Equal(original.SenderDistrict().Name(), retrieved.SenderDistrict().Name())
	suite.Equal(original.ReceiverName(), retrieved.ReceiverName())
	suite.Equal(original.ReceiverDistrict().Name(), retrieved.ReceiverDistrict().Name())
	suite.InDelta(original.Cost(), retrieved.Cost(), 1e-9)
	suite.Equal(parcel.Created, retrieved.DeliveryStatus())
	suite.Equal(parcel.Unpaid, retrieved.PaymentStatus())
	suite.Nil(retrieved.AssignedRider())

	logs := retrieved.Logs()
	suite.Require().Len(logs, 1)
	suite.Equal(parcel.Created.String(), logs[0].Status())
	suite.Equal("created", logs[0].Note())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingID_ExistingParcel() {
	ctx := context.Background()
	original := suite.createTestParcel("PP-ABCDEF123456")

	suite.tracker.On("TrackAggregate", original.ID(), original).Once()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, original))

	retrieved, err := suite.parcelRepository.GetByTrackingID(ctx, "PP-ABCDEF123456")
	suite.Require().NoError(err)
	suite.True(original.ID().IsEqual(retrieved.ID()))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByTrackingID_Unknown_ReturnsNotFound() {
	ctx := context.Background()

	retrieved, err := suite.parcelRepository.GetByTrackingID(ctx, "PP-DOESNOTEXIST")

	suite.Nil(retrieved)
	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGet_NonExistentParcel_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.parcelRepository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_LifecycleTransitions_PersistLogTrail() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("PP-1A2B3C4D5E6F")

	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Times(3)
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	riderID := kernel.NewUUID()
	suite.Require().NoError(testParcel.AssignRider(parcel.AssignedRider{
		ID:    riderID,
		Name:  "Rafi Islam",
		Email: "rafi@example.com",
	}, time.Now().UTC()))
	suite.Require().NoError(suite.parcelRepository.Update(ctx, testParcel))

	suite.Require().NoError(testParcel.StartDelivery("Rafi Islam", time.Now().UTC()))
	suite.Require().NoError(suite.parcelRepository.Update(ctx, testParcel))

	retrieved, err := suite.parcelRepository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)

	suite.Equal(parcel.ParcelPicked, retrieved.DeliveryStatus())
	suite.Require().NotNil(retrieved.AssignedRider())
	suite.True(riderID.IsEqual(retrieved.AssignedRider().ID))
	suite.Equal("rafi@example.com", retrieved.AssignedRider().Email)

	logs := retrieved.Logs()
	suite.Require().Len(logs, 3)
	suite.Equal("created", logs[0].Note())
	suite.Equal("rider assigned", logs[1].Note())
	suite.Equal("picked up by Rafi Islam", logs[2].Note())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PaymentConfirmation_Persists() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("PP-1A2B3C4D5E6F")

	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Twice()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	suite.Require().NoError(testParcel.ConfirmPayment(150, "card", time.Now().UTC()))
	suite.Require().NoError(suite.parcelRepository.Update(ctx, testParcel))

	retrieved, err := suite.parcelRepository.Get(ctx, testParcel.ID())
	suite.Require().NoError(err)
	suite.Equal(parcel.Paid, retrieved.PaymentStatus())
	suite.Equal(parcel.Created, retrieved.DeliveryStatus())
	suite.Require().Len(retrieved.Logs(), 2)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_ExistingParcel_Removes() {
	ctx := context.Background()
	testParcel := suite.createTestParcel("PP-1A2B3C4D5E6F")

	suite.tracker.On("TrackAggregate", testParcel.ID(), testParcel).Once()
	suite.Require().NoError(suite.parcelRepository.Add(ctx, testParcel))

	err := suite.parcelRepository.Delete(ctx, testParcel.ID())
	suite.Require().NoError(err)

	suite.assertParcelCount(0)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDelete_NonExistentParcel_ReturnsNotFound() {
	ctx := context.Background()

	err := suite.parcelRepository.Delete(ctx, kernel.NewUUID())

	suite.Require().Error(err)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

// createTestParcel creates a parcel in the initial Created/unpaid state.
func (suite *ParcelRepositoryIntegrationTestSuite) createTestParcel(trackingID string) *parcel.Parcel {
	sender, err := kernel.NewDistrict("Mirpur")
	suite.Require().NoError(err)
	receiver, err := kernel.NewDistrict("Uttara")
	suite.Require().NoError(err)

	testParcel, err := parcel.NewParcel(
		kernel.NewUUID(), trackingID,
		"Alice Rahman", "alice@example.com", sender,
		"Bob Karim", "12 Lake Road", receiver,
		150, time.Now().UTC().Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)
	return testParcel
}

// assertParcelCount verifies the number of parcels in the database.
func (suite *ParcelRepositoryIntegrationTestSuite) assertParcelCount(expected int) {
	var count int64
	err := suite.db.Model(&parcelrepo.ParcelDTO{}).Count(&count).Error
	suite.Require().NoError(err)
	suite.Equal(int64(expected), count)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
