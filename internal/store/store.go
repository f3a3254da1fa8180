package store

import (
	"context"

	"github.com/handoverhq/tenancy-stats/internal/domain"
	"github.com/handoverhq/tenancy-stats/internal/store/schema"
)

// Store defines the interface for the read-only database operations of the statistics engine
type Store interface {
	// ListProtocols retrieves all protocols ordered by id, with the building resolved through the unit.
	// PhotoCount is left zero; LoadSnapshot fills it in.
	ListProtocols(ctx context.Context) ([]domain.ProtocolRecord, error)
	// ListProtocolsByUnit retrieves the protocols of a single unit ordered by id
	ListProtocolsByUnit(ctx context.Context, unitID uint64) ([]domain.ProtocolRecord, error)
	// ListBuildings retrieves all buildings with their unit counts ordered by id
	ListBuildings(ctx context.Context) ([]domain.Building, error)
	// CountPhotosByProtocol returns the number of photos per protocol id
	CountPhotosByProtocol(ctx context.Context) (map[uint64]int, error)
	// GetUnit retrieves a unit by id, nil when it does not exist
	GetUnit(ctx context.Context, unitID uint64) (*schema.Unit, error)
	// LoadSnapshot reads protocols, photo counts and buildings in one read-only transaction
	LoadSnapshot(ctx context.Context) (*domain.Snapshot, error)
	// Ping checks the database connection
	Ping(ctx context.Context) error
}
