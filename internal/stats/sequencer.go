package stats

import (
	"sort"
	"time"

	"github.com/handoverhq/tenancy-stats/internal/domain"
)

// OccupancyState is the occupancy of a unit while its events are replayed
type OccupancyState string

const (
	StateVacant   OccupancyState = "vacant"
	StateOccupied OccupancyState = "occupied"
)

// TenancyPeriod is a closed interval between a move-in and the following move-out of a unit
type TenancyPeriod struct {
	UnitID       uint64                       `json:"unit_id"`
	BuildingID   uint64                       `json:"building_id"`
	Start        time.Time                    `json:"start"`
	End          time.Time                    `json:"end"`
	DurationDays int                          `json:"duration_days"`
	StartMeters  map[domain.MeterKey]*float64 `json:"start_meters"`
	EndMeters    map[domain.MeterKey]*float64 `json:"end_meters"`
}

// Consumption returns end minus start per meter rounded to 2 decimals, nil when either reading is missing
func (p TenancyPeriod) Consumption() map[domain.MeterKey]*float64 {
	out := make(map[domain.MeterKey]*float64, len(domain.MeterKeys))
	for _, key := range domain.MeterKeys {
		start, end := p.StartMeters[key], p.EndMeters[key]
		if start == nil || end == nil {
			out[key] = nil
			continue
		}
		out[key] = floatPtr(round2(*end - *start))
	}
	return out
}

// VacancyGap is the interval a unit stood empty between a move-out and the next move-in
type VacancyGap struct {
	UnitID     uint64    `json:"unit_id"`
	BuildingID uint64    `json:"building_id"`
	Start      time.Time `json:"start"`
	End        time.Time `json:"end"`
	Days       int       `json:"days"`
}

// UnitTimeline is the reconstructed occupancy history of one unit
type UnitTimeline struct {
	UnitID     uint64          `json:"unit_id"`
	BuildingID uint64          `json:"building_id"`
	Periods    []TenancyPeriod `json:"periods"`
	Gaps       []VacancyGap    `json:"gaps"`
	// MoveOuts counts move-out events by building, including unmatched ones
	MoveOuts map[uint64]int `json:"-"`
	// MoveOutCount is the total number of move-out events of the unit
	MoveOutCount int            `json:"move_out_count"`
	State        OccupancyState `json:"state"`
	// OccupiedSince is the start of the open tenancy when State is occupied
	OccupiedSince *time.Time `json:"occupied_since,omitempty"`
}

// occupancy is the state of the per-unit machine between two events
type occupancy struct {
	state OccupancyState
	// openStart is the move-in that opened the current tenancy
	openStart *Event
	// pending is the move-out that opened the current vacancy window
	pending *Event
	// vacatedAt is the move-out whose gap ends at openStart; the gap follows a replacing move-in
	vacatedAt *Event
}

// transition is what a single step emits
type transition struct {
	period *TenancyPeriod
	gap    *VacancyGap
	// regap is true when gap replaces the last emitted gap
	regap bool
}

func vacancyGap(from, to *Event) *VacancyGap {
	return &VacancyGap{
		UnitID:     to.UnitID,
		BuildingID: to.BuildingID,
		Start:      from.EffectiveTime,
		End:        to.EffectiveTime,
		Days:       wholeDays(from.EffectiveTime, to.EffectiveTime),
	}
}

// step applies one event to the machine and returns the next state
func (o occupancy) step(ev *Event) (occupancy, transition) {
	var out transition
	if !ev.Known {
		return o, out
	}

	switch ev.Kind {
	case domain.ProtocolKindMoveIn:
		vacatedAt := o.pending
		if o.state == StateOccupied {
			// a second move-in replaces the open one and moves the end of its gap
			vacatedAt = o.vacatedAt
			out.regap = vacatedAt != nil
		}
		if vacatedAt != nil {
			out.gap = vacancyGap(vacatedAt, ev)
		}
		return occupancy{state: StateOccupied, openStart: ev, vacatedAt: vacatedAt}, out

	case domain.ProtocolKindMoveOut:
		if o.state == StateOccupied && o.openStart != nil {
			start := o.openStart
			out.period = &TenancyPeriod{
				UnitID:       ev.UnitID,
				BuildingID:   start.BuildingID,
				Start:        start.EffectiveTime,
				End:          ev.EffectiveTime,
				DurationDays: wholeDays(start.EffectiveTime, ev.EffectiveTime),
				StartMeters:  start.Meters,
				EndMeters:    ev.Meters,
			}
		}
		// vacancy before an unmatched move-out is unknown; the window starts here
		return occupancy{state: StateVacant, pending: ev}, out
	}

	return o, out
}

// sortEvents orders events by effective time, ties by snapshot position
func sortEvents(events []*Event) {
	sort.SliceStable(events, func(i, j int) bool {
		if !events[i].EffectiveTime.Equal(events[j].EffectiveTime) {
			return events[i].EffectiveTime.Before(events[j].EffectiveTime)
		}
		return events[i].seq < events[j].seq
	})
}

// SequenceUnit replays the events of a single unit and reconstructs its timeline.
// The slice is sorted in place.
func SequenceUnit(unitID uint64, events []*Event) UnitTimeline {
	sortEvents(events)

	tl := UnitTimeline{
		UnitID:   unitID,
		MoveOuts: make(map[uint64]int),
		State:    StateVacant,
	}

	state := occupancy{state: StateVacant}
	for _, ev := range events {
		if tl.BuildingID == 0 {
			tl.BuildingID = ev.BuildingID
		}
		if ev.Known && ev.Kind == domain.ProtocolKindMoveOut {
			tl.MoveOuts[ev.BuildingID]++
			tl.MoveOutCount++
		}

		var out transition
		state, out = state.step(ev)
		if out.gap != nil {
			if out.regap && len(tl.Gaps) > 0 {
				tl.Gaps[len(tl.Gaps)-1] = *out.gap
			} else {
				tl.Gaps = append(tl.Gaps, *out.gap)
			}
		}
		if out.period != nil {
			tl.Periods = append(tl.Periods, *out.period)
		}
	}

	tl.State = state.state
	if state.state == StateOccupied && state.openStart != nil {
		since := state.openStart.EffectiveTime
		tl.OccupiedSince = &since
	}
	return tl
}
