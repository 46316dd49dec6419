package queries_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/orderrepo"
	"ordering/internal/core/application/usecases/queries"
	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
	"ordering/internal/core/domain/model/product"
	"ordering/internal/core/domain/services"
	"ordering/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// fixedGradeProvider feeds the discount calculation with canned buyer data.
type fixedGradeProvider struct {
	hasOrders bool
	rate      int
}

func (p fixedGradeProvider) HasOrders(string) (bool, error)          { return p.hasOrders, nil }
func (p fixedGradeProvider) DiscountRatePercent(string) (int, error) { return p.rate, nil }

type GetPaymentAmountQueryHandlerTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	handler   queries.GetPaymentAmountQueryHandler
	orderRepo *orderrepo.GormOrderRepository
}

func (suite *GetPaymentAmountQueryHandlerTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	suite.Require().NoError(db.AutoMigrate(&orderrepo.OrderDTO{}, &orderrepo.OrderLineDTO{}))

	discountService := services.NewCalculateDiscountService(
		services.NewGradeDiscounter(fixedGradeProvider{hasOrders: true, rate: 50}))
	suite.handler = queries.NewGetPaymentAmountQueryHandler(db, discountService)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, mockAggregateTracker{})
}

func (suite *GetPaymentAmountQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetPaymentAmountQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE order_lines").Error)
}

func (suite *GetPaymentAmountQueryHandlerTestSuite) TestHandle_AppliesDiscounts() {
	ctx := context.Background()
	testOrder := suite.persistOrderTotalling(ctx, 100)

	query, err := queries.NewGetPaymentAmountQuery(testOrder.OrderNo(), "alice", "VIP")
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(ctx, query)

	suite.Require().NoError(err)
	suite.Equal(testOrder.OrderNo().String(), result.OrderNo)
	suite.Equal(int64(100), result.TotalAmount)
	// 50% grade discount then the visit discount halves the remainder.
	suite.Equal(int64(25), result.PayableAmount)
}

func (suite *GetPaymentAmountQueryHandlerTestSuite) TestHandle_NonExistentOrder_ReturnsNotFoundError() {
	query, err := queries.NewGetPaymentAmountQuery(kernel.GenerateOrderNo(), "alice", "VIP")
	suite.Require().NoError(err)

	_, err = suite.handler.Handle(context.Background(), query)

	suite.Require().Error(err)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *GetPaymentAmountQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetPaymentAmountQuery{}

	_, err := suite.handler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetPaymentAmountQuery constructor")
}

// persistOrderTotalling stores a single-line order with the given total.
func (suite *GetPaymentAmountQueryHandlerTestSuite) persistOrderTotalling(
	ctx context.Context, amount int64,
) *order.Order {
	keyboard, err := product.NewProduct("keyboard", "P-1001")
	suite.Require().NoError(err)
	line, err := order.NewOrderLine(keyboard, kernel.NewMoney(amount), 1)
	suite.Require().NoError(err)

	address, err := order.NewAddress("Main St 1", "", "04532")
	suite.Require().NoError(err)
	shippingInfo, err := order.NewShippingInfo("J. Doe", "010-1234-5678", address)
	suite.Require().NoError(err)

	testOrder, err := order.NewOrder(kernel.GenerateOrderNo(), []order.OrderLine{line}, shippingInfo)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(ctx, testOrder))
	return testOrder
}

func TestGetPaymentAmountQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetPaymentAmountQueryHandlerTestSuite))
}
