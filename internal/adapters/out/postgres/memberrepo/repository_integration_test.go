package memberrepo_test

import (
	"context"
	"testing"
	"time"

	"ordering/internal/adapters/out/postgres/memberrepo"
	"ordering/internal/core/domain/model/member"
	"ordering/internal/pkg/errs"

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

func (m *MockAggregateTracker) TrackAggregate(id string, aggregate any) {
	m.Called(id, aggregate)
}

// MemberRepositoryIntegrationTestSuite provides integration tests for MemberRepository
// using PostgreSQL containers to verify database persistence behavior.
type MemberRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *memberrepo.GormMemberRepository
	tracker    *MockAggregateTracker
}

func (suite *MemberRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&memberrepo.MemberDTO{}))
}

func (suite *MemberRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE members").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = memberrepo.NewGormMemberRepository(suite.db, suite.tracker)
}

func (suite *MemberRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *MemberRepositoryIntegrationTestSuite) TestAdd_ValidMember_Success() {
	ctx := context.Background()
	testMember := suite.createTestMember("alice")

	suite.tracker.On("TrackAggregate", "alice", testMember).Once()

	err := suite.repository.Add(ctx, testMember)
	suite.Require().NoError(err)

	var count int64
	suite.Require().NoError(suite.db.Model(&memberrepo.MemberDTO{}).Count(&count).Error)
	suite.Equal(int64(1), count)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MemberRepositoryIntegrationTestSuite) TestAdd_DuplicateID_ReturnsError() {
	ctx := context.Background()
	first := suite.createTestMember("alice")
	second := suite.createTestMember("alice")

	suite.tracker.On("TrackAggregate", "alice", first).Once()
	suite.Require().NoError(suite.repository.Add(ctx, first))

	err := suite.repository.Add(ctx, second)
	suite.Require().Error(err)
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MemberRepositoryIntegrationTestSuite) TestGet_ExistingMember_RoundTripsAggregate() {
	ctx := context.Background()
	originalMember := suite.createTestMember("alice")

	suite.tracker.On("TrackAggregate", "alice", originalMember).Once()
	suite.Require().NoError(suite.repository.Add(ctx, originalMember))

	retrievedMember, err := suite.repository.Get(ctx, "alice")
	suite.Require().NoError(err)
	suite.True(retrievedMember.IsEqual(originalMember))
	suite.Equal("Alice", retrievedMember.Name())
	suite.tracker.AssertExpectations(suite.T())
}

func (suite *MemberRepositoryIntegrationTestSuite) TestGet_NonExistentMember_ReturnsNotFoundError() {
	ctx := context.Background()

	retrievedMember, err := suite.repository.Get(ctx, "nobody")

	suite.Nil(retrievedMember)
	suite.Require().Error(err)

	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *MemberRepositoryIntegrationTestSuite) TestExistsWithID() {
	ctx := context.Background()
	testMember := suite.createTestMember("alice")

	suite.tracker.On("TrackAggregate", "alice", testMember).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testMember))

	exists, err := suite.repository.ExistsWithID(ctx, "alice")
	suite.Require().NoError(err)
	suite.True(exists)

	exists, err = suite.repository.ExistsWithID(ctx, "bob")
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *MemberRepositoryIntegrationTestSuite) TestExistsWithID_EmptyID_ReturnsError() {
	_, err := suite.repository.ExistsWithID(context.Background(), "")
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrValueIsRequired)
}

// createTestMember creates a member with the given id and default credentials.
func (suite *MemberRepositoryIntegrationTestSuite) createTestMember(id string) *member.Member {
	testMember, err := member.NewMember(id, "Alice", "secret")
	suite.Require().NoError(err)
	return testMember
}

func TestMemberRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(MemberRepositoryIntegrationTestSuite))
}
