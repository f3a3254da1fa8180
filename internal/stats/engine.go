package stats

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/alitto/pond/v2"
	"go.uber.org/zap"

	"github.com/handoverhq/tenancy-stats/internal/domain"
	"github.com/handoverhq/tenancy-stats/internal/logger"
)

const (
	// DefaultTopRoomTypes is the length of the room type frequency table
	DefaultTopRoomTypes = 10

	minReportYear = 2000
	maxReportYear = 2100
)

// Options configures an Engine
type Options struct {
	// Location is used to parse payload timestamps and to bucket creation times
	Location *time.Location
	// Workers is the number of goroutines sequencing units; 1 or less runs sequentially
	Workers int
	// TopRoomTypes limits the room type frequency table
	TopRoomTypes int
}

// Engine reconstructs tenancy timelines and builds statistics reports
type Engine struct {
	opts Options
}

// NewEngine creates a new engine, filling in defaults
func NewEngine(opts Options) *Engine {
	if opts.Location == nil {
		opts.Location = time.UTC
	}
	if opts.TopRoomTypes <= 0 {
		opts.TopRoomTypes = DefaultTopRoomTypes
	}
	return &Engine{opts: opts}
}

// Location returns the engine's time zone
func (e *Engine) Location() *time.Location {
	return e.opts.Location
}

// Totals summarizes the report inputs
type Totals struct {
	Protocols      int `json:"protocols"`
	Photos         int `json:"photos"`
	TenancyPeriods int `json:"tenancy_periods"`
	VacancyGaps    int `json:"vacancy_gaps"`
	Buildings      int `json:"buildings"`
	Units          int `json:"units"`
}

// Report is the statistics report for one year
type Report struct {
	Year                int                   `json:"year"`
	Totals              Totals                `json:"totals"`
	TypeCounts          map[string]int        `json:"type_counts"`
	AverageTenancyDays  *float64              `json:"average_tenancy_days"`
	VacancyRatio        *float64              `json:"vacancy_ratio"`
	Monthly             MonthlyCounts         `json:"monthly"`
	QualityByMonth      [12]*float64          `json:"quality_by_month"`
	Weekday             [7]int                `json:"weekday"`
	Hour                [24]int               `json:"hour"`
	AveragePhotosByKind map[string]float64    `json:"average_photos_by_kind"`
	MeterAverages       map[string]*float64   `json:"meter_averages"`
	TopRoomTypes        []RoomTypeCount       `json:"top_room_types"`
	Buildings           []BuildingFluctuation `json:"buildings"`
	Units               []UnitFluctuation     `json:"units"`
}

// NormalizeYear returns year when it lies in [2000, 2100], otherwise the year of now
func NormalizeYear(year int, now time.Time) int {
	if year < minReportYear || year > maxReportYear {
		return now.Year()
	}
	return year
}

// Extract converts every record of the snapshot into an event, preserving snapshot order
func (e *Engine) Extract(ctx context.Context, protocols []domain.ProtocolRecord) []*Event {
	events := make([]*Event, 0, len(protocols))
	for i, rec := range protocols {
		ev := Extract(rec, i, e.opts.Location)
		if !ev.PayloadOK {
			logger.DebugCtx(ctx, "Protocol payload missing or malformed", zap.Uint64("protocol_id", rec.ID))
		} else if ev.Payload.Timestamp != "" && !ev.TimestampOverridden {
			logger.DebugCtx(ctx, "Protocol timestamp not parseable, using creation time",
				zap.Uint64("protocol_id", rec.ID),
				zap.String("timestamp", ev.Payload.Timestamp),
			)
		}
		if !ev.Known {
			logger.DebugCtx(ctx, "Protocol kind not sequenced", zap.Uint64("protocol_id", rec.ID), zap.String("kind", rec.Kind))
		}
		events = append(events, &ev)
	}
	return events
}

// Timeline reconstructs the timeline of a single unit from its protocols
func (e *Engine) Timeline(ctx context.Context, unitID uint64, protocols []domain.ProtocolRecord) UnitTimeline {
	events := e.Extract(ctx, protocols)
	unitEvents := make([]*Event, 0, len(events))
	for _, ev := range events {
		if ev.UnitID == unitID {
			unitEvents = append(unitEvents, ev)
		}
	}
	return SequenceUnit(unitID, unitEvents)
}

// Build computes the report for year from the snapshot
func (e *Engine) Build(ctx context.Context, snapshot domain.Snapshot, year int) (*Report, error) {
	buildings := make(map[uint64]domain.Building, len(snapshot.Buildings))
	for _, b := range snapshot.Buildings {
		buildings[b.ID] = b
	}

	events := e.Extract(ctx, snapshot.Protocols)

	durations := newDurationAggregator()
	meters := newMeterAggregator()
	buckets := newBucketBuilder(year, e.opts.Location)
	rooms := roomTypeCounter{}

	byUnit := make(map[uint64][]*Event)
	for _, ev := range events {
		buckets.add(ev)
		rooms.add(ev.Payload)
		durations.touch(ev.BuildingID, ev.UnitID)
		if ev.UnitID != 0 && ev.Known {
			byUnit[ev.UnitID] = append(byUnit[ev.UnitID], ev)
		}
	}

	unitIDs := make([]uint64, 0, len(byUnit))
	for id := range byUnit {
		unitIDs = append(unitIDs, id)
	}
	sort.Slice(unitIDs, func(i, j int) bool { return unitIDs[i] < unitIDs[j] })

	timelines, err := e.sequence(ctx, unitIDs, byUnit)
	if err != nil {
		return nil, err
	}

	periods := 0
	for _, tl := range timelines {
		durations.addTimeline(tl)
		for _, p := range tl.Periods {
			meters.addPeriod(p)
		}
		periods += len(tl.Periods)
	}

	units := make(map[uint64]struct{})
	for _, ev := range events {
		if ev.UnitID != 0 {
			units[ev.UnitID] = struct{}{}
		}
	}

	report := &Report{
		Year: year,
		Totals: Totals{
			Protocols:      buckets.total,
			Photos:         buckets.photoSum,
			TenancyPeriods: periods,
			VacancyGaps:    durations.gapCount,
			Buildings:      len(durations.buildings),
			Units:          len(units),
		},
		TypeCounts:          buckets.kinds,
		AverageTenancyDays:  durations.averageDuration(),
		VacancyRatio:        durations.vacancyRatio(),
		Monthly:             buckets.monthly,
		QualityByMonth:      buckets.qualityByMonth(),
		Weekday:             buckets.weekday,
		Hour:                buckets.hour,
		AveragePhotosByKind: buckets.averagePhotos(),
		MeterAverages:       meters.averages(),
		TopRoomTypes:        rooms.top(e.opts.TopRoomTypes),
		Buildings:           buildingTable(durations, buildings),
		Units:               unitTable(durations),
	}

	logger.InfoCtx(ctx, "Built statistics report",
		zap.Int("year", year),
		zap.Int("protocols", len(snapshot.Protocols)),
		zap.Int("protocols_in_year", buckets.total),
		zap.Int("units", len(unitIDs)),
		zap.Int("tenancy_periods", periods),
		zap.Int("vacancy_gaps", durations.gapCount),
	)

	return report, nil
}

// sequence replays every unit, in parallel when configured. Results keep the order of unitIDs.
func (e *Engine) sequence(ctx context.Context, unitIDs []uint64, byUnit map[uint64][]*Event) ([]UnitTimeline, error) {
	timelines := make([]UnitTimeline, len(unitIDs))
	if e.opts.Workers <= 1 || len(unitIDs) < 2 {
		for i, id := range unitIDs {
			timelines[i] = SequenceUnit(id, byUnit[id])
		}
		return timelines, nil
	}

	pool := pond.NewResultPool[UnitTimeline](e.opts.Workers, pond.WithContext(ctx))
	defer pool.StopAndWait()

	results := make([]pond.Result[UnitTimeline], len(unitIDs))
	for i, id := range unitIDs {
		events := byUnit[id]
		unitID := id
		results[i] = pool.Submit(func() UnitTimeline {
			return SequenceUnit(unitID, events)
		})
	}
	for i, r := range results {
		tl, err := r.Wait()
		if err != nil {
			return nil, fmt.Errorf("failed to sequence unit %d: %w", unitIDs[i], err)
		}
		timelines[i] = tl
	}
	return timelines, nil
}
