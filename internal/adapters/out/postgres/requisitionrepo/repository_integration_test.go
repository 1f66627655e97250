package requisitionrepo_test

import (
	"context"
	"testing"
	"time"

	"orderflow/internal/adapters/out/postgres/requisitionrepo"
	"orderflow/internal/core/domain/model/kernel"
	"orderflow/internal/core/domain/model/requisition"
	"orderflow/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	m.Called(id, aggregate)
}

// RequisitionRepositoryIntegrationTestSuite provides integration tests for
// RequisitionRepository using PostgreSQL containers to verify database
// persistence behavior.
type RequisitionRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *requisitionrepo.GormRequisitionRepository
	tracker    *MockAggregateTracker
}

func (suite *RequisitionRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	// Start PostgreSQL container
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

	// Get connection string and connect to database
	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	// Auto-migrate the schema
	suite.Require().NoError(db.AutoMigrate(
		&requisitionrepo.RequisitionDTO{}, &requisitionrepo.LineItemDTO{}))
}

func (suite *RequisitionRepositoryIntegrationTestSuite) SetupTest() {
	// Clean the database before each test
	suite.Require().NoError(
		suite.db.Exec("TRUNCATE TABLE requisitions, requisition_items").Error)

	// Create fresh repository and tracker for each test
	suite.tracker = new(MockAggregateTracker)
	suite.repository = requisitionrepo.NewGormRequisitionRepository(suite.db, suite.tracker)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestAdd_ValidRequisition_Success() {
	ctx := context.Background()

	testRequisition := suite.createTestRequisition(nil, requisition.POCreated)

	suite.tracker.On("TrackAggregate", testRequisition.ID(), testRequisition).Once()

	err := suite.repository.Add(ctx, testRequisition)
	suite.Require().NoError(err)

	suite.assertRequisitionCount(1)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestGet_ExistingRequisition_RoundTrips() {
	ctx := context.Background()

	testRequisition := suite.createTestRequisition(nil, requisition.POCreated)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testRequisition))

	restored, err := suite.repository.Get(ctx, testRequisition.ID())
	suite.Require().NoError(err)

	suite.True(restored.IsEqual(testRequisition))
	suite.Equal(testRequisition.PrNumber(), restored.PrNumber())
	suite.Equal(testRequisition.PoNumber(), restored.PoNumber())
	suite.Equal(testRequisition.Status(), restored.Status())
	suite.Equal(testRequisition.Total(), restored.Total())
	suite.Equal(testRequisition.Destination().City(), restored.Destination().City())
	suite.Require().Len(restored.Items(), 1)
	suite.Equal("SKU-001", restored.Items()[0].ProductID())
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestGet_NonExistent_ReturnsNotFound() {
	ctx := context.Background()

	_, err := suite.repository.Get(ctx, kernel.NewUUID())
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestUpdate_StatusAdvance_Persists() {
	ctx := context.Background()

	testRequisition := suite.createTestRequisition(nil, requisition.POCreated)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)
	suite.Require().NoError(suite.repository.Add(ctx, testRequisition))

	suite.Require().NoError(testRequisition.Ship())
	suite.Require().NoError(suite.repository.Update(ctx, testRequisition))

	restored, err := suite.repository.Get(ctx, testRequisition.ID())
	suite.Require().NoError(err)
	suite.Equal(requisition.InShipment, restored.Status())
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestUpdate_NonExistent_ReturnsError() {
	ctx := context.Background()

	testRequisition := suite.createTestRequisition(nil, requisition.POCreated)

	err := suite.repository.Update(ctx, testRequisition)
	suite.Require().Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestGetAllForCompany_ReturnsSplitFamily() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	companyID := kernel.NewUUID()
	parent := suite.createTestRequisitionForCompany(companyID, nil, requisition.POCreated)
	parentID := parent.ID()
	childA := suite.createTestRequisitionForCompany(companyID, &parentID, requisition.POCreated)
	childB := suite.createTestRequisitionForCompany(companyID, &parentID, requisition.InShipment)
	unrelated := suite.createTestRequisition(nil, requisition.POCreated)

	suite.Require().NoError(suite.repository.Add(ctx, parent))
	suite.Require().NoError(suite.repository.Add(ctx, childA))
	suite.Require().NoError(suite.repository.Add(ctx, childB))
	suite.Require().NoError(suite.repository.Add(ctx, unrelated))

	all, err := suite.repository.GetAllForCompany(ctx, companyID)
	suite.Require().NoError(err)
	suite.Len(all, 3)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) TestGetAllForVendor_FiltersByVendor() {
	ctx := context.Background()
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything)

	mine := suite.createTestRequisition(nil, requisition.POCreated)
	other := suite.createTestRequisition(nil, requisition.POCreated)

	suite.Require().NoError(suite.repository.Add(ctx, mine))
	suite.Require().NoError(suite.repository.Add(ctx, other))

	all, err := suite.repository.GetAllForVendor(ctx, mine.VendorID())
	suite.Require().NoError(err)
	suite.Require().Len(all, 1)
	suite.True(all[0].IsEqual(mine))
}

// Helper methods

func (suite *RequisitionRepositoryIntegrationTestSuite) createTestRequisition(
	parentID *kernel.UUID, status requisition.Status,
) *requisition.Requisition {
	return suite.createTestRequisitionForCompany(kernel.NewUUID(), parentID, status)
}

func (suite *RequisitionRepositoryIntegrationTestSuite) createTestRequisitionForCompany(
	companyID kernel.UUID, parentID *kernel.UUID, status requisition.Status,
) *requisition.Requisition {
	pincode, err := kernel.NewPincode("560034")
	suite.Require().NoError(err)
	destination, err := kernel.NewAddress("14 Residency Road", "Bengaluru", "Karnataka", pincode)
	suite.Require().NoError(err)
	item, err := requisition.NewLineItem("SKU-001", "L", 3, 250)
	suite.Require().NoError(err)

	r, err := requisition.RestoreRequisition(
		kernel.NewUUID(), parentID, companyID, kernel.NewUUID(),
		"PR-7001", "PO-8001", []requisition.LineItem{item}, status,
		destination, 750, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC),
	)
	suite.Require().NoError(err)
	return r
}

func (suite *RequisitionRepositoryIntegrationTestSuite) assertRequisitionCount(expected int64) {
	var count int64
	suite.Require().NoError(
		suite.db.Model(&requisitionrepo.RequisitionDTO{}).Count(&count).Error)
	suite.Equal(expected, count)
}

func TestRequisitionRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(RequisitionRepositoryIntegrationTestSuite))
}
