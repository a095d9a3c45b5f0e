package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tollgate-service/internal/domain"
	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/repository/postgres"
	"github.com/tollgate-service/internal/repository/postgres/testhelpers"
)

type SavedRouteRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.SavedRouteRepository
	ctx    context.Context
}

func (s *SavedRouteRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.NoError(db.Migrate(context.Background()))

	s.repo = postgres.NewSavedRouteRepository(db)
}

func (s *SavedRouteRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *SavedRouteRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
	_, err := s.testDB.DB.ExecContext(s.ctx, "TRUNCATE TABLE saved_routes RESTART IDENTITY")
	s.NoError(err)
}

func (s *SavedRouteRepositoryTestSuite) TestCreate_AssignsIDAndTimestamp() {
	route := &domain.SavedRoute{
		UserID:        "user-1",
		Name:          "Daily commute",
		StartLocation: "Pretoria",
		EndLocation:   "Johannesburg",
		TollGates:     []int64{3, 5},
	}

	created, err := s.repo.Create(s.ctx, route)

	s.NoError(err)
	s.NotZero(created.ID)
	s.False(created.CreatedAt.IsZero())
	s.Equal([]int64{3, 5}, created.TollGates)
}

func (s *SavedRouteRepositoryTestSuite) TestListByUser_OrdersByNewestFirst() {
	first, err := s.repo.Create(s.ctx, &domain.SavedRoute{
		UserID: "user-1", Name: "Old route",
		StartLocation: "A", EndLocation: "B", TollGates: []int64{1},
	})
	s.NoError(err)

	second, err := s.repo.Create(s.ctx, &domain.SavedRoute{
		UserID: "user-1", Name: "New route",
		StartLocation: "C", EndLocation: "D", TollGates: []int64{2, 3},
	})
	s.NoError(err)

	_, err = s.repo.Create(s.ctx, &domain.SavedRoute{
		UserID: "user-2", Name: "Other user",
		StartLocation: "E", EndLocation: "F", TollGates: []int64{4},
	})
	s.NoError(err)

	routes, err := s.repo.ListByUser(s.ctx, "user-1")

	s.NoError(err)
	s.Len(routes, 2)
	// Equal timestamps can make the order between the two ambiguous; both
	// rows must still be present with their id sets intact.
	ids := map[int64][]int64{routes[0].ID: routes[0].TollGates, routes[1].ID: routes[1].TollGates}
	s.Equal([]int64{1}, ids[first.ID])
	s.Equal([]int64{2, 3}, ids[second.ID])
}

func (s *SavedRouteRepositoryTestSuite) TestListByUser_Empty() {
	routes, err := s.repo.ListByUser(s.ctx, "nobody")

	s.NoError(err)
	s.NotNil(routes)
	s.Empty(routes)
}

func (s *SavedRouteRepositoryTestSuite) TestDelete_RemovesRoute() {
	created, err := s.repo.Create(s.ctx, &domain.SavedRoute{
		UserID: "user-1", Name: "Daily commute",
		StartLocation: "A", EndLocation: "B", TollGates: []int64{1},
	})
	s.NoError(err)

	s.NoError(s.repo.Delete(s.ctx, created.ID))

	routes, err := s.repo.ListByUser(s.ctx, "user-1")
	s.NoError(err)
	s.Empty(routes)
}

func (s *SavedRouteRepositoryTestSuite) TestDelete_UnknownIDIsNotAnError() {
	s.NoError(s.repo.Delete(s.ctx, 99999))
}

func TestSavedRouteRepositorySuite(t *testing.T) {
	suite.Run(t, new(SavedRouteRepositoryTestSuite))
}
