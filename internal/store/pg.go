package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/handoverhq/tenancy-stats/internal/domain"
	"github.com/handoverhq/tenancy-stats/internal/logger"
	"github.com/handoverhq/tenancy-stats/internal/store/schema"
)

type pgStore struct {
	db *gorm.DB
}

// NewPGStore creates a new PostgreSQL store instance
func NewPGStore(db *gorm.DB) Store {
	return &pgStore{db: db}
}

// Migrate creates or updates the tables of all models
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(schema.Models()...); err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}

// ConfigureConnectionPool configures the connection pool settings for a GORM database connection.
// If any of the pool settings are 0, reasonable defaults are used:
//   - MaxOpenConns: 20 (if 0)
//   - MaxIdleConns: 5 (if 0)
//   - ConnMaxLifetime: 5 minutes (if 0)
//   - ConnMaxIdleTime: 10 minutes (if 0)
func ConfigureConnectionPool(db *gorm.DB, maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) error {
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime =
		NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime)

	sqlDB.SetMaxOpenConns(maxOpenConns)
	sqlDB.SetMaxIdleConns(maxIdleConns)
	sqlDB.SetConnMaxLifetime(connMaxLifetime)
	sqlDB.SetConnMaxIdleTime(connMaxIdleTime)

	return nil
}

// NormalizeConnectionPoolSettings applies defaults and keeps idle connections within the open limit
func NormalizeConnectionPoolSettings(maxOpenConns, maxIdleConns int, connMaxLifetime, connMaxIdleTime time.Duration) (int, int, time.Duration, time.Duration) {
	if maxOpenConns <= 0 {
		maxOpenConns = 20
	}
	if maxIdleConns <= 0 {
		maxIdleConns = 5
	}
	if connMaxLifetime <= 0 {
		connMaxLifetime = 5 * time.Minute
	}
	if connMaxIdleTime <= 0 {
		connMaxIdleTime = 10 * time.Minute
	}

	if maxIdleConns > maxOpenConns {
		maxIdleConns = maxOpenConns
	}

	return maxOpenConns, maxIdleConns, connMaxLifetime, connMaxIdleTime
}

// protocolRow is the scan target of the protocol queries
type protocolRow struct {
	ID         uint64
	UnitID     uint64
	BuildingID uint64
	Kind       string
	Payload    []byte
	CreatedAt  time.Time
}

func (r protocolRow) toRecord() domain.ProtocolRecord {
	return domain.ProtocolRecord{
		ID:         r.ID,
		UnitID:     r.UnitID,
		BuildingID: r.BuildingID,
		Kind:       r.Kind,
		CreatedAt:  r.CreatedAt,
		Payload:    r.Payload,
	}
}

// protocolQuery selects protocols with the building of their unit.
// Protocols of deleted units keep building id 0.
func (s *pgStore) protocolQuery(ctx context.Context) *gorm.DB {
	return s.db.WithContext(ctx).
		Table("protocols AS p").
		Select("p.id, p.unit_id, COALESCE(u.building_id, 0) AS building_id, p.kind, p.payload, p.created_at").
		Joins("LEFT JOIN units u ON u.id = p.unit_id").
		Order("p.id ASC")
}

func scanProtocols(query *gorm.DB) ([]domain.ProtocolRecord, error) {
	var rows []protocolRow
	if err := query.Scan(&rows).Error; err != nil {
		return nil, err
	}

	records := make([]domain.ProtocolRecord, 0, len(rows))
	for _, r := range rows {
		records = append(records, r.toRecord())
	}
	return records, nil
}

// ListProtocols retrieves all protocols ordered by id
func (s *pgStore) ListProtocols(ctx context.Context) ([]domain.ProtocolRecord, error) {
	records, err := scanProtocols(s.protocolQuery(ctx))
	if err != nil {
		return nil, fmt.Errorf("failed to list protocols: %w", err)
	}
	return records, nil
}

// ListProtocolsByUnit retrieves the protocols of a single unit ordered by id
func (s *pgStore) ListProtocolsByUnit(ctx context.Context, unitID uint64) ([]domain.ProtocolRecord, error) {
	records, err := scanProtocols(s.protocolQuery(ctx).Where("p.unit_id = ?", unitID))
	if err != nil {
		return nil, fmt.Errorf("failed to list protocols of unit %d: %w", unitID, err)
	}
	return records, nil
}

// ListBuildings retrieves all buildings with their unit counts ordered by id
func (s *pgStore) ListBuildings(ctx context.Context) ([]domain.Building, error) {
	var buildings []domain.Building
	err := s.db.WithContext(ctx).
		Table("buildings AS b").
		Select("b.id, b.name, b.street, b.house_no, b.zip, b.city, COUNT(u.id) AS unit_count").
		Joins("LEFT JOIN units u ON u.building_id = b.id").
		Group("b.id, b.name, b.street, b.house_no, b.zip, b.city").
		Order("b.id ASC").
		Scan(&buildings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list buildings: %w", err)
	}
	return buildings, nil
}

// CountPhotosByProtocol returns the number of photos per protocol id
func (s *pgStore) CountPhotosByProtocol(ctx context.Context) (map[uint64]int, error) {
	var counts []struct {
		ProtocolID uint64
		PhotoCount int
	}
	err := s.db.WithContext(ctx).
		Model(&schema.ProtocolPhoto{}).
		Select("protocol_id, COUNT(*) AS photo_count").
		Group("protocol_id").
		Scan(&counts).Error
	if err != nil {
		return nil, fmt.Errorf("failed to count photos: %w", err)
	}

	result := make(map[uint64]int, len(counts))
	for _, c := range counts {
		result[c.ProtocolID] = c.PhotoCount
	}
	return result, nil
}

// GetUnit retrieves a unit by id
func (s *pgStore) GetUnit(ctx context.Context, unitID uint64) (*schema.Unit, error) {
	var unit schema.Unit
	err := s.db.WithContext(ctx).Where("id = ?", unitID).First(&unit).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get unit: %w", err)
	}
	return &unit, nil
}

// LoadSnapshot reads everything the engine needs in one read-only transaction
func (s *pgStore) LoadSnapshot(ctx context.Context) (*domain.Snapshot, error) {
	var snapshot domain.Snapshot
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		txStore := &pgStore{db: tx}

		protocols, err := txStore.ListProtocols(ctx)
		if err != nil {
			return err
		}
		photos, err := txStore.CountPhotosByProtocol(ctx)
		if err != nil {
			return err
		}
		buildings, err := txStore.ListBuildings(ctx)
		if err != nil {
			return err
		}

		for i := range protocols {
			protocols[i].PhotoCount = photos[protocols[i].ID]
		}
		snapshot = domain.Snapshot{Protocols: protocols, Buildings: buildings}
		return nil
	}, &sql.TxOptions{Isolation: sql.LevelRepeatableRead, ReadOnly: true})
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSnapshotUnavailable, err)
	}

	logger.DebugCtx(ctx, "Loaded snapshot",
		zap.Int("protocols", len(snapshot.Protocols)),
		zap.Int("buildings", len(snapshot.Buildings)),
	)
	return &snapshot, nil
}

// Ping checks the database connection
func (s *pgStore) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}
	return nil
}
