package postgres_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tollgate-service/internal/domain/repository"
	"github.com/tollgate-service/internal/pkg/errors"
	"github.com/tollgate-service/internal/repository/postgres"
	"github.com/tollgate-service/internal/repository/postgres/testhelpers"
)

// TollGateRepositoryTestSuite tests the catalogue against a real Postgres
// instance. The embedded seed dataset is the fixture.
type TollGateRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.TollGateRepository
	ctx    context.Context
}

func (s *TollGateRepositoryTestSuite) SetupSuite() {
	s.testDB = testhelpers.SetupTestDB(s.T())

	err := s.testDB.Cleanup(context.Background())
	s.NoError(err, "Failed to cleanup test database")

	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)
	s.NoError(db.Migrate(context.Background()))
	s.NoError(db.SeedTollGates(context.Background()))

	s.repo = postgres.NewTollGateRepository(db)
}

func (s *TollGateRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		s.testDB.Close()
	}
}

func (s *TollGateRepositoryTestSuite) SetupTest() {
	s.ctx = context.Background()
}

func (s *TollGateRepositoryTestSuite) TestListAll_ReturnsSeededCatalogue() {
	gates, err := s.repo.ListAll(s.ctx)

	s.NoError(err)
	s.NotEmpty(gates)

	// Catalogue order is (route, name)
	for i := 1; i < len(gates); i++ {
		prev, cur := gates[i-1], gates[i]
		if prev.Route == cur.Route {
			s.LessOrEqual(prev.Name, cur.Name)
		} else {
			s.Less(prev.Route, cur.Route)
		}
	}
}

func (s *TollGateRepositoryTestSuite) TestListAll_FeesAreClassOrdered() {
	gates, err := s.repo.ListAll(s.ctx)
	s.NoError(err)

	for _, g := range gates {
		s.Greater(g.Class1Fee, 0.0)
		s.GreaterOrEqual(g.Class2Fee, g.Class1Fee)
		s.GreaterOrEqual(g.Class3Fee, g.Class2Fee)
		s.GreaterOrEqual(g.Class4Fee, g.Class3Fee)
	}
}

func (s *TollGateRepositoryTestSuite) TestGetByID_Success() {
	gates, err := s.repo.ListAll(s.ctx)
	s.NoError(err)
	s.NotEmpty(gates)

	gate, err := s.repo.GetByID(s.ctx, gates[0].ID)

	s.NoError(err)
	s.NotNil(gate)
	s.Equal(gates[0].Name, gate.Name)
	s.Equal(gates[0].Route, gate.Route)
}

func (s *TollGateRepositoryTestSuite) TestGetByID_NotFound() {
	gate, err := s.repo.GetByID(s.ctx, 99999)

	s.ErrorIs(err, errors.ErrTollGateNotFound)
	s.Nil(gate)
}

func (s *TollGateRepositoryTestSuite) TestSearch_MatchesCaseInsensitive() {
	gates, err := s.repo.Search(s.ctx, "huguenot")

	s.NoError(err)
	s.NotEmpty(gates)
	s.Equal("Huguenot Tunnel Plaza", gates[0].Name)
}

func (s *TollGateRepositoryTestSuite) TestSearch_MatchesRoute() {
	gates, err := s.repo.Search(s.ctx, "N3")

	s.NoError(err)
	s.NotEmpty(gates)
	for _, g := range gates {
		s.Contains(g.Route, "N3")
	}
}

func (s *TollGateRepositoryTestSuite) TestSearch_NoMatches() {
	gates, err := s.repo.Search(s.ctx, "zzz-no-such-plaza")

	s.NoError(err)
	s.Empty(gates)
}

func (s *TollGateRepositoryTestSuite) TestSearch_EmptyQueryReturnsAll() {
	all, err := s.repo.ListAll(s.ctx)
	s.NoError(err)

	gates, err := s.repo.Search(s.ctx, "  ")
	s.NoError(err)
	s.Len(gates, len(all))
}

func (s *TollGateRepositoryTestSuite) TestGetByIDs_EmptyInput() {
	gates, err := s.repo.GetByIDs(s.ctx, []int64{})

	s.NoError(err)
	s.NotNil(gates)
	s.Empty(gates)
}

func (s *TollGateRepositoryTestSuite) TestGetByIDs_DropsUnknownAndCollapsesDuplicates() {
	all, err := s.repo.ListAll(s.ctx)
	s.NoError(err)
	s.NotEmpty(all)

	id := all[0].ID
	gates, err := s.repo.GetByIDs(s.ctx, []int64{id, id, 99999})

	s.NoError(err)
	s.Len(gates, 1)
	s.Equal(id, gates[0].ID)
}

func (s *TollGateRepositoryTestSuite) TestSeed_IsIdempotent() {
	db := postgres.NewDBForTest(s.testDB.DB, s.testDB.Logger)

	before, err := s.repo.ListAll(s.ctx)
	s.NoError(err)

	s.NoError(db.SeedTollGates(s.ctx))

	after, err := s.repo.ListAll(s.ctx)
	s.NoError(err)
	s.Len(after, len(before))
}

func TestTollGateRepositorySuite(t *testing.T) {
	suite.Run(t, new(TollGateRepositoryTestSuite))
}
