package tailorrepo_test

import (
	"context"
	"testing"
	"time"

	"atelier/internal/adapters/out/postgres/tailorrepo"
	"atelier/internal/core/domain/model/kernel"
	"atelier/internal/core/domain/model/tailor"
	"atelier/internal/core/ports"
	"atelier/internal/pkg/errs"

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

// TailorRepositoryIntegrationTestSuite provides integration tests for
// TailorRepository, with particular attention to the conditional job counter
// statements that back capacity re-validation.
type TailorRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *tailorrepo.GormTailorRepository
	tracker    *MockAggregateTracker
}

func (suite *TailorRepositoryIntegrationTestSuite) SetupSuite() {
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

	suite.Require().NoError(db.AutoMigrate(&tailorrepo.TailorDTO{}))
}

func (suite *TailorRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE tailors").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.repository = tailorrepo.NewGormTailorRepository(suite.db, suite.tracker)
}

func (suite *TailorRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *TailorRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()

	testTailor, err := tailor.NewTailor(kernel.NewUUID(), "Meera Pillai", tailor.SkillMaster, 0.98, 0, "north")
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", testTailor.ID(), testTailor).Once()
	suite.Require().NoError(suite.repository.Add(ctx, testTailor))

	retrieved, err := suite.repository.Get(ctx, testTailor.ID())
	suite.Require().NoError(err)

	suite.Equal(testTailor.ID(), retrieved.ID())
	suite.Equal("Meera Pillai", retrieved.Name())
	suite.Equal(tailor.SkillMaster, retrieved.SkillLevel())
	suite.InDelta(0.98, retrieved.QCPassRate(), 0.0001)
	suite.Equal(tailor.SkillMaster.DefaultCapacity(), retrieved.MaxConcurrentJobs())
	suite.Equal(0, retrieved.CurrentJobCount())
	suite.Equal("north", retrieved.Zone())
	suite.True(retrieved.IsActive())

	suite.tracker.AssertExpectations(suite.T())
}

func (suite *TailorRepositoryIntegrationTestSuite) TestGet_NonExistentTailor_ReturnsNotFoundError() {
	ctx := context.Background()

	retrieved, err := suite.repository.Get(ctx, kernel.NewUUID())

	suite.Nil(retrieved)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TailorRepositoryIntegrationTestSuite) TestUpdate_DoesNotTouchJobCounter() {
	ctx := context.Background()

	testTailor := suite.addTailor("Farid Iqbal", tailor.SkillSenior, 0.93, 2, "east")

	// Claim a slot through the counter path
	suite.Require().NoError(suite.repository.IncrementJobCount(ctx, testTailor.ID()))

	// Update from a stale aggregate still carrying a zero counter
	stale, err := tailor.RestoreTailor(
		testTailor.ID(), "Farid Iqbal", tailor.SkillSenior, 0.95, 2, 0, "west", true)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", stale.ID(), stale).Once()
	suite.Require().NoError(suite.repository.Update(ctx, stale))

	retrieved, err := suite.repository.Get(ctx, testTailor.ID())
	suite.Require().NoError(err)
	suite.Equal("west", retrieved.Zone())
	suite.InDelta(0.95, retrieved.QCPassRate(), 0.0001)
	suite.Equal(1, retrieved.CurrentJobCount(), "Counter must survive profile updates")
}

func (suite *TailorRepositoryIntegrationTestSuite) TestIncrementJobCount_RefusesOverCapacity() {
	ctx := context.Background()

	testTailor := suite.addTailor("Lena Wong", tailor.SkillJunior, 0.88, 1, "south")

	err := suite.repository.IncrementJobCount(ctx, testTailor.ID())
	suite.Require().NoError(err)

	err = suite.repository.IncrementJobCount(ctx, testTailor.ID())
	suite.Require().ErrorIs(err, tailor.ErrNoSpareCapacity)

	retrieved, err := suite.repository.Get(ctx, testTailor.ID())
	suite.Require().NoError(err)
	suite.Equal(1, retrieved.CurrentJobCount())
}

func (suite *TailorRepositoryIntegrationTestSuite) TestDecrementJobCount_RefusesBelowZero() {
	ctx := context.Background()

	testTailor := suite.addTailor("Noor Malik", tailor.SkillSenior, 0.91, 2, "south")

	suite.Require().NoError(suite.repository.IncrementJobCount(ctx, testTailor.ID()))
	suite.Require().NoError(suite.repository.DecrementJobCount(ctx, testTailor.ID()))

	err := suite.repository.DecrementJobCount(ctx, testTailor.ID())
	suite.Require().ErrorIs(err, tailor.ErrNoJobsInProgress)

	retrieved, err := suite.repository.Get(ctx, testTailor.ID())
	suite.Require().NoError(err)
	suite.Equal(0, retrieved.CurrentJobCount())
}

func (suite *TailorRepositoryIntegrationTestSuite) TestCounterAdjustments_UnknownTailor() {
	ctx := context.Background()
	missing := kernel.NewUUID()

	err := suite.repository.IncrementJobCount(ctx, missing)
	var notFoundErr *errs.ObjectNotFoundError
	suite.Require().ErrorAs(err, &notFoundErr)

	err = suite.repository.DecrementJobCount(ctx, missing)
	suite.Require().ErrorAs(err, &notFoundErr)
}

func (suite *TailorRepositoryIntegrationTestSuite) TestGetAll_Filters() {
	ctx := context.Background()

	east := suite.addTailor("East Senior", tailor.SkillSenior, 0.95, 2, "east")
	suite.addTailor("West Master", tailor.SkillMaster, 0.98, 3, "west")
	full := suite.addTailor("East Full", tailor.SkillJunior, 0.85, 1, "east")
	suite.Require().NoError(suite.repository.IncrementJobCount(ctx, full.ID()))

	all, err := suite.repository.GetAll(ctx, ports.TailorFilter{})
	suite.Require().NoError(err)
	suite.Len(all, 3)

	eastOnly, err := suite.repository.GetAll(ctx, ports.TailorFilter{Zone: "east"})
	suite.Require().NoError(err)
	suite.Len(eastOnly, 2)

	available, err := suite.repository.GetAll(ctx, ports.TailorFilter{Zone: "east", AvailableOnly: true})
	suite.Require().NoError(err)
	suite.Require().Len(available, 1)
	suite.Equal(east.ID(), available[0].ID())

	masters, err := suite.repository.GetAll(ctx, ports.TailorFilter{SkillLevel: tailor.SkillMaster})
	suite.Require().NoError(err)
	suite.Require().Len(masters, 1)
	suite.Equal("West Master", masters[0].Name())
}

// addTailor persists a tailor directly, expecting the tracker call.
func (suite *TailorRepositoryIntegrationTestSuite) addTailor(
	name string,
	skill tailor.SkillLevel,
	qcPassRate float64,
	maxJobs int,
	zone string,
) *tailor.Tailor {
	t, err := tailor.NewTailor(kernel.NewUUID(), name, skill, qcPassRate, maxJobs, zone)
	suite.Require().NoError(err)

	suite.tracker.On("TrackAggregate", t.ID(), t).Once()
	suite.Require().NoError(suite.repository.Add(context.Background(), t))
	return t
}

func TestTailorRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(TailorRepositoryIntegrationTestSuite))
}
