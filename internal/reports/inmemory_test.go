package reports_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/hargrim/skirmish/internal/errors"
	"github.com/hargrim/skirmish/internal/reports"
)

type InMemoryRepositoryTestSuite struct {
	suite.Suite
	repo *reports.InMemoryRepository
	ctx  context.Context
}

func (s *InMemoryRepositoryTestSuite) SetupTest() {
	s.repo = reports.NewInMemory()
	s.ctx = context.Background()
}

func (s *InMemoryRepositoryTestSuite) report(id, winner string) *reports.Report {
	started := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	return &reports.Report{
		ID:         id,
		First:      "Sir Lancelot",
		Second:     "Grendel",
		Winner:     winner,
		Turns:      9,
		StartedAt:  started,
		ResolvedAt: started.Add(time.Second),
	}
}

func (s *InMemoryRepositoryTestSuite) TestSaveAndGet() {
	saveOut, err := s.repo.Save(s.ctx, &reports.SaveInput{Report: s.report("battle-1", "Sir Lancelot")})
	s.Require().NoError(err)
	s.True(saveOut.Success)

	getOut, err := s.repo.Get(s.ctx, &reports.GetInput{BattleID: "battle-1"})
	s.Require().NoError(err)
	s.Equal("battle-1", getOut.Report.ID)
	s.Equal("Sir Lancelot", getOut.Report.Winner)
	s.Equal(9, getOut.Report.Turns)
}

func (s *InMemoryRepositoryTestSuite) TestGetReturnsACopy() {
	_, err := s.repo.Save(s.ctx, &reports.SaveInput{Report: s.report("battle-1", "Sir Lancelot")})
	s.Require().NoError(err)

	first, err := s.repo.Get(s.ctx, &reports.GetInput{BattleID: "battle-1"})
	s.Require().NoError(err)
	first.Report.Winner = "Grendel"

	second, err := s.repo.Get(s.ctx, &reports.GetInput{BattleID: "battle-1"})
	s.Require().NoError(err)
	s.Equal("Sir Lancelot", second.Report.Winner, "stored report must not be mutable from outside")
}

func (s *InMemoryRepositoryTestSuite) TestGetNotFound() {
	out, err := s.repo.Get(s.ctx, &reports.GetInput{BattleID: "battle-404"})

	s.Require().Error(err)
	s.Nil(out)
	s.True(errors.IsNotFound(err))
}

func (s *InMemoryRepositoryTestSuite) TestListKeepsSaveOrder() {
	for _, id := range []string{"battle-1", "battle-2", "battle-3"} {
		_, err := s.repo.Save(s.ctx, &reports.SaveInput{Report: s.report(id, "Grendel")})
		s.Require().NoError(err)
	}

	out, err := s.repo.List(s.ctx, &reports.ListInput{})
	s.Require().NoError(err)
	s.Require().Len(out.Reports, 3)
	s.Equal("battle-1", out.Reports[0].ID)
	s.Equal("battle-2", out.Reports[1].ID)
	s.Equal("battle-3", out.Reports[2].ID)
}

func (s *InMemoryRepositoryTestSuite) TestSaveValidation() {
	_, err := s.repo.Save(s.ctx, nil)
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &reports.SaveInput{})
	s.True(errors.IsInvalidArgument(err))

	_, err = s.repo.Save(s.ctx, &reports.SaveInput{Report: &reports.Report{}})
	s.True(errors.IsInvalidArgument(err))
}

func TestInMemoryRepositorySuite(t *testing.T) {
	suite.Run(t, new(InMemoryRepositoryTestSuite))
}
