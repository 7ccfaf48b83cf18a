// Package worlds provides the interface for generated world persistence
package worlds

//go:generate mockgen -destination=mock/mock_repository.go -package=worldsmock github.com/KirkDiggler/starjumper/internal/repositories/worlds Repository

import (
	"context"
	"time"

	"github.com/KirkDiggler/starjumper/internal/entities"
	"github.com/KirkDiggler/starjumper/internal/errors"
)

// Repository defines the interface for world and subsector persistence
type Repository interface {
	// Create stores a generated world
	// Returns errors.InvalidArgument for validation failures
	// Returns errors.AlreadyExists if a world with the same ID exists
	Create(ctx context.Context, input CreateInput) (*CreateOutput, error)

	// Get retrieves a world by ID
	// Returns errors.NotFound if the world doesn't exist
	Get(ctx context.Context, input GetInput) (*GetOutput, error)

	// ListBySubsector retrieves the worlds of a subsector ordered by hex
	ListBySubsector(ctx context.Context, input ListBySubsectorInput) (*ListBySubsectorOutput, error)

	// CreateSubsector stores subsector metadata
	// Returns errors.AlreadyExists if a subsector with the same ID exists
	CreateSubsector(ctx context.Context, input CreateSubsectorInput) (*CreateSubsectorOutput, error)

	// GetSubsector retrieves subsector metadata by ID
	// Returns errors.NotFound if the subsector doesn't exist
	GetSubsector(ctx context.Context, input GetSubsectorInput) (*GetSubsectorOutput, error)
}

// WorldData is the stored form of a generated world
type WorldData struct {
	World       *entities.World `json:"world"`
	SubsectorID string          `json:"subsector_id,omitempty"`
	Seed        uint64          `json:"seed"`
	CreatedAt   time.Time       `json:"created_at"`
}

// CreateInput defines the input for storing a world
type CreateInput struct {
	Data *WorldData
}

// CreateOutput defines the output for storing a world
type CreateOutput struct {
	Data *WorldData
}

// GetInput defines the input for retrieving a world
type GetInput struct {
	ID string
}

// GetOutput defines the output for retrieving a world
type GetOutput struct {
	Data *WorldData
}

// ListBySubsectorInput defines the input for listing a subsector's worlds
type ListBySubsectorInput struct {
	SubsectorID string
}

// ListBySubsectorOutput defines the output for listing a subsector's worlds
type ListBySubsectorOutput struct {
	Worlds []*WorldData
}

// CreateSubsectorInput defines the input for storing a subsector
type CreateSubsectorInput struct {
	Subsector *entities.Subsector
}

// CreateSubsectorOutput defines the output for storing a subsector
type CreateSubsectorOutput struct {
	Subsector *entities.Subsector
}

// GetSubsectorInput defines the input for retrieving a subsector
type GetSubsectorInput struct {
	ID string
}

// GetSubsectorOutput defines the output for retrieving a subsector
type GetSubsectorOutput struct {
	Subsector *entities.Subsector
}

const (
	errWorldNil         = "world data cannot be nil"
	errWorldIDEmpty     = "world ID cannot be empty"
	errSubsectorNil     = "subsector cannot be nil"
	errSubsectorIDEmpty = "subsector ID cannot be empty"
)

func validateSubsector(subsector *entities.Subsector) error {
	if subsector == nil {
		return errors.InvalidArgument(errSubsectorNil)
	}
	if subsector.ID == "" {
		return errors.InvalidArgument(errSubsectorIDEmpty)
	}
	return nil
}

func validateWorldData(data *WorldData) error {
	if data == nil || data.World == nil {
		return errors.InvalidArgument(errWorldNil)
	}
	if data.World.ID == "" {
		return errors.InvalidArgument(errWorldIDEmpty)
	}
	return nil
}
