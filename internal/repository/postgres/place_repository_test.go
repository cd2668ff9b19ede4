package postgres_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/pattaya-dashboard/internal/domain"
	"github.com/pattaya-dashboard/internal/domain/repository"
	"github.com/pattaya-dashboard/internal/repository/postgres/testhelpers"
)

// PlaceRepositoryTestSuite тестирует зеркалирование мест в PostgreSQL
type PlaceRepositoryTestSuite struct {
	suite.Suite
	testDB *testhelpers.TestDB
	repo   repository.PlaceMirrorRepository
	table  string
	ctx    context.Context
}

func (s *PlaceRepositoryTestSuite) SetupSuite() {
	s.ctx = context.Background()
	s.testDB = testhelpers.SetupTestDB(s.T())
	s.table = fmt.Sprintf("places_test_%d", time.Now().UnixNano())
	s.repo = testhelpers.NewPlaceRepositoryForTest(s.testDB.DB, s.testDB.Logger, s.table)
	s.Require().NoError(s.repo.EnsureSchema(s.ctx))
}

func (s *PlaceRepositoryTestSuite) TearDownSuite() {
	if s.testDB != nil {
		_ = s.testDB.DropTable(s.ctx, s.table)
		s.testDB.Close()
	}
}

func (s *PlaceRepositoryTestSuite) TestEnsureSchema_Idempotent() {
	s.NoError(s.repo.EnsureSchema(s.ctx))
}

func (s *PlaceRepositoryTestSuite) TestReplaceAll() {
	places := make([]domain.Place, 0, 1200)
	for i := 0; i < 1200; i++ {
		places = append(places, domain.NewPlace(domain.PlaceAttributes{
			Row:          i,
			Latitude:     12.9 + float64(i)/10000,
			Longitude:    100.88,
			MainCategory: "Food",
			SubCategory:  "Cafe",
		}))
	}

	n, err := s.repo.ReplaceAll(s.ctx, places)
	s.Require().NoError(err)
	s.Equal(int64(1200), n)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(1200), count)

	// Повторная загрузка заменяет данные, а не дополняет
	n, err = s.repo.ReplaceAll(s.ctx, places[:3])
	s.Require().NoError(err)
	s.Equal(int64(3), n)

	count, err = s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Equal(int64(3), count)
}

func (s *PlaceRepositoryTestSuite) TestReplaceAll_Empty() {
	n, err := s.repo.ReplaceAll(s.ctx, nil)
	s.Require().NoError(err)
	s.Zero(n)

	count, err := s.repo.Count(s.ctx)
	s.Require().NoError(err)
	s.Zero(count)
}

func TestPlaceRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(PlaceRepositoryTestSuite))
}
