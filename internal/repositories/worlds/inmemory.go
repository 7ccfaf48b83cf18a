package worlds

import (
	"context"
	"sort"
	"sync"

	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// InMemoryRepository implements Repository using in-memory storage
type InMemoryRepository struct {
	mu         sync.RWMutex
	worlds     map[string]*WorldData
	subsectors map[string]*entities.Subsector
	members    map[string][]string
}

// Verify that InMemoryRepository implements Repository
var _ Repository = (*InMemoryRepository)(nil)

// NewInMemory creates a new in-memory repository
func NewInMemory() *InMemoryRepository {
	return &InMemoryRepository{
		worlds:     make(map[string]*WorldData),
		subsectors: make(map[string]*entities.Subsector),
		members:    make(map[string][]string),
	}
}

// Create stores a world
func (r *InMemoryRepository) Create(_ context.Context, input CreateInput) (*CreateOutput, error) {
	if err := validateWorldData(input.Data); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := input.Data.World.ID
	if _, exists := r.worlds[id]; exists {
		return nil, errors.AlreadyExistsf("world with ID %s already exists", id)
	}

	stored := *input.Data
	r.worlds[id] = &stored
	if stored.SubsectorID != "" {
		r.members[stored.SubsectorID] = append(r.members[stored.SubsectorID], id)
	}

	return &CreateOutput{Data: input.Data}, nil
}

// Get retrieves a world by ID
func (r *InMemoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errWorldIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	data, exists := r.worlds[input.ID]
	if !exists {
		return nil, errors.NotFoundf("world with ID %s not found", input.ID)
	}

	// Return a copy to prevent external modification
	copied := *data
	return &GetOutput{Data: &copied}, nil
}

// ListBySubsector retrieves the worlds of a subsector ordered by hex
func (r *InMemoryRepository) ListBySubsector(_ context.Context, input ListBySubsectorInput) (*ListBySubsectorOutput, error) {
	if input.SubsectorID == "" {
		return nil, errors.InvalidArgument(errSubsectorIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := r.members[input.SubsectorID]
	out := make([]*WorldData, 0, len(ids))
	for _, id := range ids {
		copied := *r.worlds[id]
		out = append(out, &copied)
	}
	sortByHex(out)

	return &ListBySubsectorOutput{Worlds: out}, nil
}

// CreateSubsector stores subsector metadata
func (r *InMemoryRepository) CreateSubsector(_ context.Context, input CreateSubsectorInput) (*CreateSubsectorOutput, error) {
	if err := validateSubsector(input.Subsector); err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.subsectors[input.Subsector.ID]; exists {
		return nil, errors.AlreadyExistsf("subsector with ID %s already exists", input.Subsector.ID)
	}

	stored := *input.Subsector
	r.subsectors[stored.ID] = &stored

	return &CreateSubsectorOutput{Subsector: input.Subsector}, nil
}

// GetSubsector retrieves subsector metadata by ID
func (r *InMemoryRepository) GetSubsector(_ context.Context, input GetSubsectorInput) (*GetSubsectorOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSubsectorIDEmpty)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	subsector, exists := r.subsectors[input.ID]
	if !exists {
		return nil, errors.NotFoundf("subsector with ID %s not found", input.ID)
	}

	copied := *subsector
	return &GetSubsectorOutput{Subsector: &copied}, nil
}

func sortByHex(list []*WorldData) {
	sort.Slice(list, func(i, j int) bool {
		return list[i].World.Hex.String() < list[j].World.Hex.String()
	})
}
