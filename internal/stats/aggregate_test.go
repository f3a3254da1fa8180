package stats

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/handoverhq/tenancy-stats/internal/domain"
)

func TestDurationAggregator_Touch(t *testing.T) {
	agg := newDurationAggregator()
	agg.touch(1, 11)
	agg.touch(1, 11)
	agg.touch(1, 12)
	agg.touch(2, 0)
	agg.touch(0, 31)

	require.Len(t, agg.buildings, 2)
	assert.Len(t, agg.buildings[1].units, 2)
	assert.Empty(t, agg.buildings[2].units)
}

func TestBuild_ActiveUnits(t *testing.T) {
	snapshot := domain.Snapshot{
		Protocols: []domain.ProtocolRecord{
			buildRecord(t, 1, 11, 1, "move_in", "2024-01-10", nil),
			buildRecord(t, 2, 12, 1, "zwischen", "2024-02-10", nil),
			buildRecord(t, 3, 13, 1, "besichtigung", "2024-03-10", nil),
			buildRecord(t, 4, 11, 1, "move_out", "2024-04-10", nil),
		},
		Buildings: []domain.Building{{ID: 1, UnitCount: 6}},
	}

	report, err := NewEngine(Options{}).Build(context.Background(), snapshot, 2024)
	require.NoError(t, err)

	require.Len(t, report.Buildings, 1)
	assert.Equal(t, 6, report.Buildings[0].UnitCount)
	assert.Equal(t, 3, report.Buildings[0].ActiveUnits)
	assert.Equal(t, 3, report.Totals.Units)
}

func TestBucketBuilder_NonCanonicalKind(t *testing.T) {
	b := newBucketBuilder(2024, time.UTC)
	ev := &Event{
		Label:      "einzug",
		Kind:       domain.ProtocolKind("einzug"),
		Known:      true,
		CreatedAt:  mustTime(t, "2024-05-01T12:00"),
		PhotoCount: 3,
	}

	require.NotPanics(t, func() { assert.True(t, b.add(ev)) })
	assert.Equal(t, 1, b.kinds["einzug"])
	assert.Equal(t, 1, b.monthly.Total[4])
	assert.Zero(t, b.monthly.MoveIn[4])
}
