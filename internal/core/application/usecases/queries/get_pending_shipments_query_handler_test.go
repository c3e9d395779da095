package queries_test

import (
	"context"
	"testing"
	"time"

	"shipping/internal/adapters/out/postgres/shipmentrepo"
	"shipping/internal/core/application/usecases/queries"
	"shipping/internal/core/domain/model/kernel"
	"shipping/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type GetPendingShipmentsQueryHandlerTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	handler      queries.GetPendingShipmentsQueryHandler
	shipmentRepo *shipmentrepo.GormShipmentRepository
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) SetupSuite() {
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

	err = db.AutoMigrate(&shipmentrepo.ShipmentDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewGetPendingShipmentsQueryHandler(db)
	suite.shipmentRepo = shipmentrepo.NewGormShipmentRepository(db, &mockAggregateTracker{})
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE shipments CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptySlice() {
	query := queries.NewGetPendingShipmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_MixedStatuses_ReturnsOnlyPending() {
	pending1 := suite.storeShipment(time.Now().UTC())
	pending2 := suite.storeShipment(time.Now().UTC())
	assigned := suite.storeShipment(time.Now().UTC())

	err := assigned.Assign(kernel.NewUUID(), kernel.NewUUID(), time.Now().UTC())
	suite.Require().NoError(err)
	err = suite.shipmentRepo.Update(context.Background(), assigned)
	suite.Require().NoError(err)

	query := queries.NewGetPendingShipmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Len(result, 2)

	resultIDs := make(map[kernel.UUID]bool)
	for _, r := range result {
		resultIDs[r.ID] = true
		suite.Equal("pending", r.Status)
		suite.Nil(r.RouteID)
		suite.Nil(r.CarrierID)
	}
	suite.True(resultIDs[pending1.ID()])
	suite.True(resultIDs[pending2.ID()])
	suite.False(resultIDs[assigned.ID()])
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_OrderedOldestFirst() {
	base := time.Now().UTC().Truncate(time.Microsecond)
	newest := suite.storeShipment(base.Add(2 * time.Hour))
	oldest := suite.storeShipment(base)
	middle := suite.storeShipment(base.Add(time.Hour))

	query := queries.NewGetPendingShipmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.True(result[0].ID.IsEqual(oldest.ID()))
	suite.True(result[1].ID.IsEqual(middle.ID()))
	suite.True(result[2].ID.IsEqual(newest.ID()))
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_MapsPackageColumns() {
	stored := suite.storeShipment(time.Now().UTC())

	query := queries.NewGetPendingShipmentsQuery()

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result, 1)
	suite.Equal(stored.Package().Weight(), result[0].Package.Weight)
	suite.Equal(stored.Package().Length(), result[0].Package.Length)
	suite.Equal(stored.Package().Width(), result[0].Package.Width)
	suite.Equal(stored.Package().Height(), result[0].Package.Height)
	suite.Equal(stored.Package().ProductType(), result[0].Package.ProductType)
	suite.Equal(stored.TrackingNumber().String(), result[0].TrackingNumber)
	suite.True(result[0].UserID.IsEqual(stored.UserID()))
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPendingShipmentsQuery{}

	result, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetPendingShipmentsQuery constructor")
}

func (suite *GetPendingShipmentsQueryHandlerTestSuite) TestHandle_ContextCancellation_ReturnsError() {
	suite.storeShipment(time.Now().UTC())

	query := queries.NewGetPendingShipmentsQuery()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().Error(err)
	suite.Nil(result)
}

// storeShipment seeds one pending shipment created at the given moment.
func (suite *GetPendingShipmentsQueryHandlerTestSuite) storeShipment(createdAt time.Time) *shipment.Shipment {
	pkg, err := shipment.NewPackage(kernel.NewUUID(), 2.5, 30, 20, 10, "books")
	suite.Require().NoError(err)

	trackingNumber, err := kernel.GenerateTrackingNumber()
	suite.Require().NoError(err)

	shp, err := shipment.NewShipment(
		kernel.NewUUID(),
		kernel.NewUUID(),
		pkg,
		"12 Dock Road",
		"7 Harbor Lane",
		trackingNumber,
		createdAt.Truncate(time.Microsecond),
	)
	suite.Require().NoError(err)

	err = suite.shipmentRepo.Add(context.Background(), shp)
	suite.Require().NoError(err)

	return shp
}

// mockAggregateTracker implements the repositories' tracker dependency for
// tests that read outside a unit of work.
type mockAggregateTracker struct{}

func (m *mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {
}

func TestGetPendingShipmentsQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPendingShipmentsQueryHandlerTestSuite))
}
