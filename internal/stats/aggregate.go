package stats

import (
	"github.com/handoverhq/tenancy-stats/internal/domain"
)

// buildingAccumulator collects per-building tenancy figures
type buildingAccumulator struct {
	durations   []int
	vacancyDays []int
	moveOuts    int
	units       map[uint64]struct{}
}

// durationAggregator accumulates tenancy durations and vacancy days
type durationAggregator struct {
	durations      []int
	tenancyDaysSum int
	vacancyDaysSum int
	gapCount       int
	buildings      map[uint64]*buildingAccumulator
	unitMoveOuts   map[uint64]int
	unitBuilding   map[uint64]uint64
}

func newDurationAggregator() *durationAggregator {
	return &durationAggregator{
		buildings:    make(map[uint64]*buildingAccumulator),
		unitMoveOuts: make(map[uint64]int),
		unitBuilding: make(map[uint64]uint64),
	}
}

func (a *durationAggregator) building(id uint64) *buildingAccumulator {
	b, ok := a.buildings[id]
	if !ok {
		b = &buildingAccumulator{units: make(map[uint64]struct{})}
		a.buildings[id] = b
	}
	return b
}

// touch records that a building has at least one event and which unit it came from
func (a *durationAggregator) touch(buildingID, unitID uint64) {
	if buildingID == 0 {
		return
	}
	b := a.building(buildingID)
	if unitID != 0 {
		b.units[unitID] = struct{}{}
	}
}

// addTimeline folds one unit timeline into the aggregates
func (a *durationAggregator) addTimeline(tl UnitTimeline) {
	for _, p := range tl.Periods {
		a.durations = append(a.durations, p.DurationDays)
		a.tenancyDaysSum += p.DurationDays
		if p.BuildingID != 0 {
			b := a.building(p.BuildingID)
			b.durations = append(b.durations, p.DurationDays)
		}
	}
	for _, g := range tl.Gaps {
		a.vacancyDaysSum += g.Days
		a.gapCount++
		if g.BuildingID != 0 {
			b := a.building(g.BuildingID)
			b.vacancyDays = append(b.vacancyDays, g.Days)
		}
	}
	for buildingID, n := range tl.MoveOuts {
		if buildingID != 0 {
			a.building(buildingID).moveOuts += n
		}
	}
	if tl.MoveOutCount > 0 {
		a.unitMoveOuts[tl.UnitID] += tl.MoveOutCount
		a.unitBuilding[tl.UnitID] = tl.BuildingID
	}
}

// averageDuration returns the global mean tenancy duration in days
func (a *durationAggregator) averageDuration() *float64 {
	return meanInts(a.durations)
}

// vacancyRatio returns vacancy days as a percentage of vacancy plus tenancy days
func (a *durationAggregator) vacancyRatio() *float64 {
	total := a.vacancyDaysSum + a.tenancyDaysSum
	if total == 0 {
		return nil
	}
	return floatPtr(round1(float64(a.vacancyDaysSum) / float64(total) * 100))
}

// fluctuationQuote returns move-outs per unit as a percentage
func fluctuationQuote(moveOuts, unitCount int) *float64 {
	if unitCount <= 0 {
		return nil
	}
	return floatPtr(round1(float64(moveOuts) / float64(unitCount) * 100))
}

func meanInts(values []int) *float64 {
	if len(values) == 0 {
		return nil
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return floatPtr(round1(float64(sum) / float64(len(values))))
}

// runningAverage is a sum and count pair
type runningAverage struct {
	sum   float64
	count int
}

func (r *runningAverage) add(v float64) {
	r.sum += v
	r.count++
}

func (r runningAverage) value(decimals int) *float64 {
	if r.count == 0 {
		return nil
	}
	return floatPtr(round(r.sum/float64(r.count), decimals))
}

// meterAggregator accumulates consumption deltas per meter across all closed tenancies
type meterAggregator struct {
	deltas map[domain.MeterKey]*runningAverage
}

func newMeterAggregator() *meterAggregator {
	m := &meterAggregator{deltas: make(map[domain.MeterKey]*runningAverage, len(domain.MeterKeys))}
	for _, key := range domain.MeterKeys {
		m.deltas[key] = &runningAverage{}
	}
	return m
}

// addPeriod adds end minus start for every meter read at both ends of the tenancy.
// Negative deltas are kept.
func (m *meterAggregator) addPeriod(p TenancyPeriod) {
	for _, key := range domain.MeterKeys {
		start, end := p.StartMeters[key], p.EndMeters[key]
		if start == nil || end == nil {
			continue
		}
		m.deltas[key].add(*end - *start)
	}
}

// averages returns the mean delta per meter rounded to 2 decimals
func (m *meterAggregator) averages() map[string]*float64 {
	out := make(map[string]*float64, len(m.deltas))
	for _, key := range domain.MeterKeys {
		out[string(key)] = m.deltas[key].value(2)
	}
	return out
}
