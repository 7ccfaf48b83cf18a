package world_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"

	"github.com/KirkDiggler/starjumper/internal/classification"
	"github.com/KirkDiggler/starjumper/internal/description"
	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
	"github.com/KirkDiggler/starjumper/internal/orchestrators/world"
	"github.com/KirkDiggler/starjumper/internal/pkg/clock"
	"github.com/KirkDiggler/starjumper/internal/pkg/idgen"
	"github.com/KirkDiggler/starjumper/internal/random"
	"github.com/KirkDiggler/starjumper/internal/repositories/worlds"
	worldsmock "github.com/KirkDiggler/starjumper/internal/repositories/worlds/mock"
	"github.com/KirkDiggler/starjumper/internal/testutils"
	"github.com/KirkDiggler/starjumper/internal/worldgen"
)

type OrchestratorTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockRepo     *worldsmock.MockRepository
	generator    *worldgen.Generator
	clock        *clock.Fixed
	orchestrator world.Service
	ctx          context.Context
}

func (s *OrchestratorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())
	s.mockRepo = worldsmock.NewMockRepository(s.ctrl)
	s.clock = clock.NewFixed(time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC))
	s.ctx = context.Background()

	var err error
	s.generator, err = worldgen.NewGenerator(&worldgen.Config{Classifier: classification.NewRuleset()})
	s.Require().NoError(err)

	s.orchestrator, err = world.NewOrchestrator(&world.Config{
		Generator:   s.generator,
		Repository:  s.mockRepo,
		IDGenerator: idgen.NewSequential("world"),
		Clock:       s.clock,
		SeedSource:  func() (uint64, error) { return 777, nil },
	})
	s.Require().NoError(err)
}

func (s *OrchestratorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestOrchestratorSuite(t *testing.T) {
	suite.Run(t, new(OrchestratorTestSuite))
}

func (s *OrchestratorTestSuite) TestNewOrchestrator_MissingDependencies() {
	_, err := world.NewOrchestrator(&world.Config{})
	s.Require().Error(err)
	s.Contains(err.Error(), "Generator")
	s.Contains(err.Error(), "Repository")
	s.Contains(err.Error(), "IDGenerator")

	_, err = world.NewOrchestrator(nil)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateWorld() {
	hex := entities.HexCoordinate{Horizontal: 19, Vertical: 10}
	expected, _ := s.generator.Generate(worldgen.Input{ID: "world_1", Name: "Regina", Hex: hex}, random.New(42))

	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input worlds.CreateInput) (*worlds.CreateOutput, error) {
			s.Equal(expected, input.Data.World)
			s.Equal(uint64(42), input.Data.Seed)
			s.Empty(input.Data.SubsectorID)
			s.Equal(s.clock.At, input.Data.CreatedAt)
			return &worlds.CreateOutput{Data: input.Data}, nil
		})

	out, err := s.orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{
		Name: "Regina",
		Hex:  hex,
		Seed: 42,
	})
	s.Require().NoError(err)

	s.Equal(expected, out.World)
	s.Equal(uint64(42), out.Seed)
	s.Equal(description.Render(expected), out.Description)
}

func (s *OrchestratorTestSuite) TestGenerateWorld_ZeroSeedDrawsOne() {
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(&worlds.CreateOutput{}, nil)

	out, err := s.orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{Name: "Efate"})
	s.Require().NoError(err)
	s.Equal(uint64(777), out.Seed)
}

func (s *OrchestratorTestSuite) TestGenerateWorld_SeedSourceFailure() {
	orchestrator, err := world.NewOrchestrator(&world.Config{
		Generator:   s.generator,
		Repository:  s.mockRepo,
		IDGenerator: idgen.NewSequential("world"),
		SeedSource:  func() (uint64, error) { return 0, errors.New(errors.CodeUnavailable, "entropy exhausted") },
	})
	s.Require().NoError(err)

	_, err = orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestGenerateWorld_NameDrawnWhenEmpty() {
	s.mockRepo.EXPECT().Create(s.ctx, gomock.Any()).Return(&worlds.CreateOutput{}, nil).Times(2)

	first, err := s.orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{Seed: 5})
	s.Require().NoError(err)
	second, err := s.orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{Seed: 5})
	s.Require().NoError(err)

	s.NotEmpty(first.World.Name)
	s.Equal(first.World.Name, second.World.Name)
	s.Equal(first.World.Profile, second.World.Profile)
	s.NotEqual(first.World.ID, second.World.ID)
}

func (s *OrchestratorTestSuite) TestGenerateWorld_InvalidHex() {
	_, err := s.orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{
		Hex: entities.HexCoordinate{Horizontal: 100, Vertical: 1},
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateWorld_StorageFailure() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.New(errors.CodeUnavailable, "redis down"))

	_, err := s.orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{Seed: 1})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestGenerateSubsector_StoresEveryWorld() {
	var stored []*worlds.WorldData
	storedBeforeSubsector := -1

	s.mockRepo.EXPECT().
		CreateSubsector(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input worlds.CreateSubsectorInput) (*worlds.CreateSubsectorOutput, error) {
			storedBeforeSubsector = len(stored)
			s.Equal("Spinward", input.Subsector.Name)
			s.Equal(entities.DensityDense, input.Subsector.Density)
			s.Equal(uint64(9), input.Subsector.Seed)
			return &worlds.CreateSubsectorOutput{Subsector: input.Subsector}, nil
		})
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input worlds.CreateInput) (*worlds.CreateOutput, error) {
			stored = append(stored, input.Data)
			return &worlds.CreateOutput{Data: input.Data}, nil
		}).
		AnyTimes()

	out, err := s.orchestrator.GenerateSubsector(s.ctx, &world.GenerateSubsectorInput{
		Name:    "Spinward",
		Seed:    9,
		Density: entities.DensityDense,
	})
	s.Require().NoError(err)

	s.Require().NotEmpty(out.Worlds)
	s.Len(stored, len(out.Worlds))
	s.Equal(len(out.Worlds), storedBeforeSubsector, "worlds are stored before the subsector")
	s.Len(out.Descriptions, len(out.Worlds))
	for i, data := range stored {
		s.Equal(out.Subsector.ID, data.SubsectorID)
		s.Same(out.Worlds[i], data.World)
		s.Equal(description.Render(data.World), out.Descriptions[i])

		hex := data.World.Hex
		s.GreaterOrEqual(hex.Horizontal, 1)
		s.LessOrEqual(hex.Horizontal, entities.SubsectorColumns)
		s.GreaterOrEqual(hex.Vertical, 1)
		s.LessOrEqual(hex.Vertical, entities.SubsectorRows)
		if i > 0 {
			s.Less(stored[i-1].World.Hex.String(), hex.String())
		}
	}
}

func (s *OrchestratorTestSuite) TestGenerateSubsector_InvalidDensity() {
	_, err := s.orchestrator.GenerateSubsector(s.ctx, &world.GenerateSubsectorInput{Density: "crowded"})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
}

func (s *OrchestratorTestSuite) TestGenerateSubsector_WorldStorageFailureSkipsSubsector() {
	// No CreateSubsector expectation: the strict mock fails the test if the
	// subsector is written after a world failed to store.
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		Return(nil, errors.New(errors.CodeUnavailable, "redis down"))

	_, err := s.orchestrator.GenerateSubsector(s.ctx, &world.GenerateSubsectorInput{
		Seed:    9,
		Density: entities.DensityDense,
	})
	s.Require().Error(err)
	s.Equal(errors.CodeUnavailable, errors.GetCode(err))
}

func (s *OrchestratorTestSuite) TestGenerateSubsector_NameTooLong() {
	_, err := s.orchestrator.GenerateSubsector(s.ctx, &world.GenerateSubsectorInput{
		Name: strings.Repeat("x", world.MaxSubsectorNameLength+1),
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "name")
}

func (s *OrchestratorTestSuite) TestGenerateWorld_NameTooLong() {
	_, err := s.orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{
		Name: "Shadowmere Antares Prime",
		Hex:  entities.HexCoordinate{Horizontal: 1, Vertical: 1},
		Seed: 5,
	})
	s.Require().Error(err)
	s.True(errors.IsInvalidArgument(err))
	s.Contains(err.Error(), "must be at most 18 characters, got 24")
}

func (s *OrchestratorTestSuite) TestGenerateWorld_NameAtColumnWidth() {
	s.mockRepo.EXPECT().
		Create(s.ctx, gomock.Any()).
		DoAndReturn(func(_ context.Context, input worlds.CreateInput) (*worlds.CreateOutput, error) {
			return &worlds.CreateOutput{Data: input.Data}, nil
		})

	out, err := s.orchestrator.GenerateWorld(s.ctx, &world.GenerateWorldInput{
		Name: strings.Repeat("a", description.NameWidth),
		Hex:  entities.HexCoordinate{Horizontal: 1, Vertical: 1},
		Seed: 5,
	})
	s.Require().NoError(err)
	s.Len(out.World.Name, description.NameWidth)
}

func (s *OrchestratorTestSuite) TestGetWorld() {
	data := testutils.CreateTestWorldData("world_9", testutils.TestSubsectorID)
	s.mockRepo.EXPECT().
		Get(s.ctx, worlds.GetInput{ID: "world_9"}).
		Return(&worlds.GetOutput{Data: data}, nil)

	out, err := s.orchestrator.GetWorld(s.ctx, &world.GetWorldInput{ID: "world_9"})
	s.Require().NoError(err)
	s.Equal(data.World, out.World)
	s.Equal(testutils.TestSubsectorID, out.SubsectorID)
	s.Equal(testutils.TestSeed, out.Seed)
	s.Equal(description.Render(data.World), out.Description)
}

func (s *OrchestratorTestSuite) TestGetWorld_Errors() {
	_, err := s.orchestrator.GetWorld(s.ctx, &world.GetWorldInput{})
	s.True(errors.IsInvalidArgument(err))

	s.mockRepo.EXPECT().
		Get(s.ctx, worlds.GetInput{ID: "missing"}).
		Return(nil, errors.NotFound("world with ID missing not found"))

	_, err = s.orchestrator.GetWorld(s.ctx, &world.GetWorldInput{ID: "missing"})
	s.True(errors.IsNotFound(err))
}

func (s *OrchestratorTestSuite) TestListWorlds() {
	subsector := testutils.CreateTestSubsector(testutils.TestSubsectorID)
	first := testutils.CreateTestWorldData("world_1", testutils.TestSubsectorID)
	second := testutils.CreateTestWorldData("world_2", testutils.TestSubsectorID)
	second.World = testutils.CreateTestWorldAt("world_2", 20, 1)

	s.mockRepo.EXPECT().
		GetSubsector(s.ctx, worlds.GetSubsectorInput{ID: testutils.TestSubsectorID}).
		Return(&worlds.GetSubsectorOutput{Subsector: subsector}, nil)
	s.mockRepo.EXPECT().
		ListBySubsector(s.ctx, worlds.ListBySubsectorInput{SubsectorID: testutils.TestSubsectorID}).
		Return(&worlds.ListBySubsectorOutput{Worlds: []*worlds.WorldData{first, second}}, nil)

	out, err := s.orchestrator.ListWorlds(s.ctx, &world.ListWorldsInput{SubsectorID: testutils.TestSubsectorID})
	s.Require().NoError(err)
	s.Equal(subsector, out.Subsector)
	s.Equal([]*entities.World{first.World, second.World}, out.Worlds)
	s.Len(out.Descriptions, 2)
}

func (s *OrchestratorTestSuite) TestListWorlds_UnknownSubsector() {
	s.mockRepo.EXPECT().
		GetSubsector(s.ctx, worlds.GetSubsectorInput{ID: "missing"}).
		Return(nil, errors.NotFound("subsector with ID missing not found"))

	_, err := s.orchestrator.ListWorlds(s.ctx, &world.ListWorldsInput{SubsectorID: "missing"})
	s.True(errors.IsNotFound(err))
}
