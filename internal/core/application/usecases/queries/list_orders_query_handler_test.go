package queries_test

import (
	"context"
	"testing"
	"time"

	"laborders/internal/adapters/out/postgres/orderrepo"
	"laborders/internal/core/application/usecases/queries"
	"laborders/internal/core/domain/model/kernel"
	"laborders/internal/core/domain/model/order"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type ListOrdersQueryHandlerTestSuite struct {
	suite.Suite
	container *postgres.PostgresContainer
	db        *gorm.DB
	handler   queries.ListOrdersQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupSuite() {
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

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.ServiceDTO{})
	suite.Require().NoError(err)

	suite.handler = queries.NewListOrdersQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db)
}

func (suite *ListOrdersQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		err := suite.container.Terminate(context.Background())
		suite.Require().NoError(err)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error
	suite.Require().NoError(err)
}

func (suite *ListOrdersQueryHandlerTestSuite) createOrderInState(state order.State) *order.Order {
	service, err := order.NewService("Complete Blood Count", 25.5, order.ServicePending)
	suite.Require().NoError(err)

	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), "Central Lab", "Jane Roe", "Acme Clinic",
		state, order.StatusActive, []order.Service{service})
	suite.Require().NoError(err)

	err = suite.orderRepo.Add(context.Background(), aggregate)
	suite.Require().NoError(err)
	return aggregate
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_EmptyDatabase_ReturnsEmptyPage() {
	query, err := queries.NewListOrdersQuery(1, 10, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(0, result.Total)
	suite.Equal(1, result.Page)
	suite.Equal(10, result.RowPerPage)
	suite.NotNil(result.Orders)
	suite.Empty(result.Orders)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_LastPartialPage() {
	for range 25 {
		suite.createOrderInState(order.StateCreated)
	}

	query, err := queries.NewListOrdersQuery(3, 10, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(25, result.Total)
	suite.Equal(3, result.Page)
	suite.Equal(10, result.RowPerPage)
	suite.Len(result.Orders, 5)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_PageBeyondRange_ReturnsEmptyPage() {
	for range 5 {
		suite.createOrderInState(order.StateCreated)
	}

	query, err := queries.NewListOrdersQuery(3, 10, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(5, result.Total)
	suite.Empty(result.Orders)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_StateFilter_TotalReflectsFilteredSet() {
	for range 3 {
		suite.createOrderInState(order.StateCreated)
	}
	suite.createOrderInState(order.StateAnalysis)

	query, err := queries.NewListOrdersQuery(1, 2, order.StateCreated.String())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Equal(3, result.Total)
	suite.Len(result.Orders, 2)
	for _, o := range result.Orders {
		suite.Equal(order.StateCreated.String(), o.State)
	}
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_Idempotent() {
	for range 4 {
		suite.createOrderInState(order.StateCreated)
	}

	query, err := queries.NewListOrdersQuery(1, 10, "")
	suite.Require().NoError(err)

	first, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	second, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.Equal(first, second)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_ReadModelCarriesServices() {
	created := suite.createOrderInState(order.StateCreated)

	query, err := queries.NewListOrdersQuery(1, 10, "")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.Require().Len(result.Orders, 1)

	got := result.Orders[0]
	suite.Equal(created.ID(), got.ID)
	suite.Equal("Central Lab", got.Lab)
	suite.Equal("Jane Roe", got.Patient)
	suite.Equal("Acme Clinic", got.Customer)
	suite.Equal(order.StateCreated.String(), got.State)
	suite.Equal(order.StatusActive.String(), got.Status)
	suite.Require().Len(got.Services, 1)
	suite.Equal("Complete Blood Count", got.Services[0].Name)
	suite.InDelta(25.5, got.Services[0].Value, 0.001)
	suite.Equal(order.ServicePending.String(), got.Services[0].Status)
}

func (suite *ListOrdersQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.ListOrdersQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewListOrdersQuery constructor")
}

func TestListOrdersQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(ListOrdersQueryHandlerTestSuite))
}
