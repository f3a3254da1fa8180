package store

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/handoverhq/tenancy-stats/internal/domain"
	"github.com/handoverhq/tenancy-stats/internal/store/schema"
)

// InitDBFunc prepares an isolated database for one test
type InitDBFunc func(t *testing.T) (Store, *gorm.DB)

// =============================================================================
// Test Data Builders
// =============================================================================

// fixture holds the seeded rows of a test
type fixture struct {
	buildings []schema.Building
	units     []schema.Unit
	protocols []schema.Protocol
}

// buildTestPayload marshals a payload document
func buildTestPayload(t *testing.T, payload map[string]any) datatypes.JSON {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return datatypes.JSON(raw)
}

// seedTestData creates three buildings, three units, four protocols and three photos.
// The last protocol references a unit that no longer exists.
func seedTestData(t *testing.T, db *gorm.DB) fixture {
	t.Helper()
	var f fixture

	f.buildings = []schema.Building{
		{Name: "Haus am See", Street: "Seestraße", HouseNo: "1", Zip: "10115", City: "Berlin"},
		{Name: "Hinterhaus", Street: "Hauptstraße", HouseNo: "12a", Zip: "80331", City: "München"},
		{Name: "Neubau", Street: "Ringweg", HouseNo: "3", Zip: "50667", City: "Köln"},
	}
	require.NoError(t, db.Create(&f.buildings).Error)

	f.units = []schema.Unit{
		{BuildingID: f.buildings[0].ID, Label: "EG links", Floor: "EG"},
		{BuildingID: f.buildings[0].ID, Label: "EG rechts", Floor: "EG"},
		{BuildingID: f.buildings[1].ID, Label: "1. OG", Floor: "1"},
	}
	require.NoError(t, db.Create(&f.units).Error)

	base := time.Date(2024, 1, 10, 9, 30, 0, 0, time.UTC)
	f.protocols = []schema.Protocol{
		{
			UnitID:    f.units[0].ID,
			Kind:      "einzug",
			Payload:   buildTestPayload(t, map[string]any{"meters": map[string]any{"strom_we": "1 000,5"}}),
			CreatedAt: base,
		},
		{UnitID: f.units[0].ID, Kind: "auszug", CreatedAt: base.AddDate(0, 6, 0)},
		{
			UnitID:    f.units[2].ID,
			Kind:      "zwischen",
			Payload:   buildTestPayload(t, map[string]any{"rooms": []any{map[string]any{"type": "Küche"}}}),
			CreatedAt: base.AddDate(0, 1, 0),
		},
		{UnitID: f.units[2].ID + 1000, Kind: "einzug", CreatedAt: base.AddDate(0, 2, 0)},
	}
	for i := range f.protocols {
		require.NoError(t, db.Create(&f.protocols[i]).Error)
	}

	photos := []schema.ProtocolPhoto{
		{ProtocolID: f.protocols[0].ID, FileName: "kitchen.jpg"},
		{ProtocolID: f.protocols[0].ID, FileName: "bath.jpg"},
		{ProtocolID: f.protocols[2].ID, FileName: "meter.jpg"},
	}
	require.NoError(t, db.Create(&photos).Error)

	return f
}

// =============================================================================
// Suite
// =============================================================================

// RunStoreTests runs the store test suite against the database prepared by initDB
func RunStoreTests(t *testing.T, initDB InitDBFunc) {
	t.Run("ListProtocols", func(t *testing.T) { testListProtocols(t, initDB) })
	t.Run("ListProtocolsByUnit", func(t *testing.T) { testListProtocolsByUnit(t, initDB) })
	t.Run("ListBuildings", func(t *testing.T) { testListBuildings(t, initDB) })
	t.Run("CountPhotosByProtocol", func(t *testing.T) { testCountPhotosByProtocol(t, initDB) })
	t.Run("GetUnit", func(t *testing.T) { testGetUnit(t, initDB) })
	t.Run("LoadSnapshot", func(t *testing.T) { testLoadSnapshot(t, initDB) })
	t.Run("LoadSnapshot_Empty", func(t *testing.T) { testLoadSnapshotEmpty(t, initDB) })
	t.Run("Ping", func(t *testing.T) { testPing(t, initDB) })
}

func testListProtocols(t *testing.T, initDB InitDBFunc) {
	store, db := initDB(t)
	f := seedTestData(t, db)
	ctx := context.Background()

	records, err := store.ListProtocols(ctx)
	require.NoError(t, err)
	require.Len(t, records, 4)

	for i, rec := range records {
		assert.Equal(t, f.protocols[i].ID, rec.ID, "records are ordered by id")
		assert.Equal(t, f.protocols[i].UnitID, rec.UnitID)
		assert.Equal(t, f.protocols[i].Kind, rec.Kind)
		assert.True(t, f.protocols[i].CreatedAt.Equal(rec.CreatedAt), "created_at %s != %s", f.protocols[i].CreatedAt, rec.CreatedAt)
		assert.Zero(t, rec.PhotoCount)
	}

	assert.Equal(t, f.buildings[0].ID, records[0].BuildingID)
	assert.Equal(t, f.buildings[0].ID, records[1].BuildingID)
	assert.Equal(t, f.buildings[1].ID, records[2].BuildingID)
	assert.Zero(t, records[3].BuildingID, "protocol of a deleted unit has no building")

	assert.JSONEq(t, `{"meters": {"strom_we": "1 000,5"}}`, string(records[0].Payload))
	assert.Empty(t, records[1].Payload)
}

func testListProtocolsByUnit(t *testing.T, initDB InitDBFunc) {
	store, db := initDB(t)
	f := seedTestData(t, db)
	ctx := context.Background()

	records, err := store.ListProtocolsByUnit(ctx, f.units[0].ID)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, f.protocols[0].ID, records[0].ID)
	assert.Equal(t, f.protocols[1].ID, records[1].ID)

	records, err = store.ListProtocolsByUnit(ctx, f.units[1].ID)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func testListBuildings(t *testing.T, initDB InitDBFunc) {
	store, db := initDB(t)
	f := seedTestData(t, db)

	buildings, err := store.ListBuildings(context.Background())
	require.NoError(t, err)
	require.Len(t, buildings, 3)

	assert.Equal(t, domain.Building{
		ID:        f.buildings[0].ID,
		Name:      "Haus am See",
		Street:    "Seestraße",
		HouseNo:   "1",
		Zip:       "10115",
		City:      "Berlin",
		UnitCount: 2,
	}, buildings[0])
	assert.Equal(t, 1, buildings[1].UnitCount)
	assert.Equal(t, "12a", buildings[1].HouseNo)
	assert.Equal(t, 0, buildings[2].UnitCount)
}

func testCountPhotosByProtocol(t *testing.T, initDB InitDBFunc) {
	store, db := initDB(t)
	f := seedTestData(t, db)

	counts, err := store.CountPhotosByProtocol(context.Background())
	require.NoError(t, err)
	assert.Equal(t, map[uint64]int{
		f.protocols[0].ID: 2,
		f.protocols[2].ID: 1,
	}, counts)
}

func testGetUnit(t *testing.T, initDB InitDBFunc) {
	store, db := initDB(t)
	f := seedTestData(t, db)
	ctx := context.Background()

	unit, err := store.GetUnit(ctx, f.units[2].ID)
	require.NoError(t, err)
	require.NotNil(t, unit)
	assert.Equal(t, f.buildings[1].ID, unit.BuildingID)
	assert.Equal(t, "1. OG", unit.Label)

	unit, err = store.GetUnit(ctx, f.units[2].ID+1000)
	require.NoError(t, err)
	assert.Nil(t, unit)
}

func testLoadSnapshot(t *testing.T, initDB InitDBFunc) {
	store, db := initDB(t)
	f := seedTestData(t, db)

	snapshot, err := store.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	require.Len(t, snapshot.Protocols, 4)
	require.Len(t, snapshot.Buildings, 3)

	photos := make(map[uint64]int)
	for _, p := range snapshot.Protocols {
		photos[p.ID] = p.PhotoCount
	}
	assert.Equal(t, 2, photos[f.protocols[0].ID])
	assert.Equal(t, 0, photos[f.protocols[1].ID])
	assert.Equal(t, 1, photos[f.protocols[2].ID])
	assert.Equal(t, 0, photos[f.protocols[3].ID])
}

func testLoadSnapshotEmpty(t *testing.T, initDB InitDBFunc) {
	store, _ := initDB(t)

	snapshot, err := store.LoadSnapshot(context.Background())
	require.NoError(t, err)
	require.NotNil(t, snapshot)
	assert.Empty(t, snapshot.Protocols)
	assert.Empty(t, snapshot.Buildings)
}

func testPing(t *testing.T, initDB InitDBFunc) {
	store, _ := initDB(t)
	assert.NoError(t, store.Ping(context.Background()))
}

func TestNormalizeConnectionPoolSettings(t *testing.T) {
	tests := []struct {
		name                       string
		maxOpen, maxIdle           int
		lifetime, idleTime         time.Duration
		wantOpen, wantIdle         int
		wantLifetime, wantIdleTime time.Duration
	}{
		{
			name:         "defaults",
			wantOpen:     20,
			wantIdle:     5,
			wantLifetime: 5 * time.Minute,
			wantIdleTime: 10 * time.Minute,
		},
		{
			name:         "idle clamped to open",
			maxOpen:      3,
			maxIdle:      10,
			lifetime:     time.Minute,
			idleTime:     time.Second,
			wantOpen:     3,
			wantIdle:     3,
			wantLifetime: time.Minute,
			wantIdleTime: time.Second,
		},
		{
			name:         "explicit values kept",
			maxOpen:      50,
			maxIdle:      10,
			lifetime:     time.Hour,
			idleTime:     30 * time.Minute,
			wantOpen:     50,
			wantIdle:     10,
			wantLifetime: time.Hour,
			wantIdleTime: 30 * time.Minute,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			open, idle, lifetime, idleTime := NormalizeConnectionPoolSettings(tt.maxOpen, tt.maxIdle, tt.lifetime, tt.idleTime)
			assert.Equal(t, tt.wantOpen, open)
			assert.Equal(t, tt.wantIdle, idle)
			assert.Equal(t, tt.wantLifetime, lifetime)
			assert.Equal(t, tt.wantIdleTime, idleTime)
		})
	}
}
