package worlds_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/repositories/worlds"
	"github.com/KirkDiggler/starjumper/internal/testutils"
)

// RepositoryContractSuite runs the same behaviour checks against every
// Repository implementation.
type RepositoryContractSuite struct {
	suite.Suite
	newRepo func() (worlds.Repository, func())
	repo    worlds.Repository
	cleanup func()
	ctx     context.Context
}

func (s *RepositoryContractSuite) SetupTest() {
	s.repo, s.cleanup = s.newRepo()
	s.ctx = context.Background()
}

func (s *RepositoryContractSuite) TearDownTest() {
	s.cleanup()
}

func TestInMemoryRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() (worlds.Repository, func()) {
			return worlds.NewInMemory(), func() {}
		},
	})
}

func TestRedisRepository(t *testing.T) {
	suite.Run(t, &RepositoryContractSuite{
		newRepo: func() (worlds.Repository, func()) {
			client, cleanup := testutils.CreateTestRedisClient(t)
			repo, err := worlds.NewRedis(&worlds.RedisConfig{Client: client})
			if err != nil {
				t.Fatal(err)
			}
			return repo, cleanup
		},
	})
}

func (s *RepositoryContractSuite) TestCreateAndGet() {
	data := testutils.CreateTestWorldData("world_1", "")

	created, err := s.repo.Create(s.ctx, worlds.CreateInput{Data: data})
	s.Require().NoError(err)
	s.Equal(data, created.Data)

	got, err := s.repo.Get(s.ctx, worlds.GetInput{ID: "world_1"})
	s.Require().NoError(err)
	s.Equal(data, got.Data)
	s.Equal("A788899-C", got.Data.World.UWP())
}

func (s *RepositoryContractSuite) TestCreate_Validation() {
	testCases := []struct {
		name  string
		input worlds.CreateInput
	}{
		{name: "nil data", input: worlds.CreateInput{}},
		{name: "nil world", input: worlds.CreateInput{Data: &worlds.WorldData{}}},
		{name: "empty id", input: worlds.CreateInput{Data: testutils.CreateTestWorldData("", "")}},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			_, err := s.repo.Create(s.ctx, tc.input)
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
		})
	}
}

func (s *RepositoryContractSuite) TestCreate_Duplicate() {
	data := testutils.CreateTestWorldData("world_1", "")

	_, err := s.repo.Create(s.ctx, worlds.CreateInput{Data: data})
	s.Require().NoError(err)

	_, err = s.repo.Create(s.ctx, worlds.CreateInput{Data: data})
	s.Require().Error(err)
	s.True(errors.IsAlreadyExists(err))
}

func (s *RepositoryContractSuite) TestGet_NotFound() {
	_, err := s.repo.Get(s.ctx, worlds.GetInput{ID: "missing"})
	s.Require().Error(err)
	s.True(errors.IsNotFound(err))

	_, err = s.repo.Get(s.ctx, worlds.GetInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestListBySubsector_OrderedByHex() {
	for _, w := range []struct {
		id        string
		h, v      int
		subsector string
	}{
		{"world_c", 8, 10, testutils.TestSubsectorID},
		{"world_a", 1, 1, testutils.TestSubsectorID},
		{"world_b", 3, 7, testutils.TestSubsectorID},
		{"world_other", 2, 2, "subsector_2"},
	} {
		data := testutils.CreateTestWorldData(w.id, w.subsector)
		data.World = testutils.CreateTestWorldAt(w.id, w.h, w.v)
		_, err := s.repo.Create(s.ctx, worlds.CreateInput{Data: data})
		s.Require().NoError(err)
	}

	out, err := s.repo.ListBySubsector(s.ctx, worlds.ListBySubsectorInput{SubsectorID: testutils.TestSubsectorID})
	s.Require().NoError(err)
	s.Require().Len(out.Worlds, 3)
	s.Equal("0101", out.Worlds[0].World.Hex.String())
	s.Equal("0307", out.Worlds[1].World.Hex.String())
	s.Equal("0810", out.Worlds[2].World.Hex.String())
}

func (s *RepositoryContractSuite) TestListBySubsector_Empty() {
	out, err := s.repo.ListBySubsector(s.ctx, worlds.ListBySubsectorInput{SubsectorID: "nothing"})
	s.Require().NoError(err)
	s.Empty(out.Worlds)

	_, err = s.repo.ListBySubsector(s.ctx, worlds.ListBySubsectorInput{})
	s.True(errors.IsInvalidArgument(err))
}

func (s *RepositoryContractSuite) TestSubsector() {
	subsector := testutils.CreateTestSubsector(testutils.TestSubsectorID)

	_, err := s.repo.CreateSubsector(s.ctx, worlds.CreateSubsectorInput{Subsector: subsector})
	s.Require().NoError(err)

	got, err := s.repo.GetSubsector(s.ctx, worlds.GetSubsectorInput{ID: testutils.TestSubsectorID})
	s.Require().NoError(err)
	s.Equal(subsector, got.Subsector)

	_, err = s.repo.CreateSubsector(s.ctx, worlds.CreateSubsectorInput{Subsector: subsector})
	s.True(errors.IsAlreadyExists(err))

	_, err = s.repo.GetSubsector(s.ctx, worlds.GetSubsectorInput{ID: "missing"})
	s.True(errors.IsNotFound(err))

	_, err = s.repo.CreateSubsector(s.ctx, worlds.CreateSubsectorInput{})
	s.True(errors.IsInvalidArgument(err))
}
