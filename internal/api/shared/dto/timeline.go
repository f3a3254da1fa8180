package dto

import (
	"time"

	"github.com/handoverhq/tenancy-stats/internal/stats"
	"github.com/handoverhq/tenancy-stats/internal/store/schema"
)

// TenancyPeriodResponse represents a closed tenancy of a unit
type TenancyPeriodResponse struct {
	Start        time.Time `json:"start"`
	End          time.Time `json:"end"`
	DurationDays int       `json:"duration_days"`
	// Consumption is end minus start per meter; nil when either reading is missing
	Consumption map[string]*float64 `json:"consumption"`
}

// VacancyGapResponse represents a vacancy between two tenancies
type VacancyGapResponse struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Days  int       `json:"days"`
}

// UnitTimelineResponse represents the reconstructed occupancy history of a unit
type UnitTimelineResponse struct {
	UnitID        uint64                  `json:"unit_id"`
	BuildingID    uint64                  `json:"building_id"`
	Label         string                  `json:"label"`
	Floor         string                  `json:"floor"`
	State         string                  `json:"state"`
	OccupiedSince *time.Time              `json:"occupied_since,omitempty"`
	MoveOutCount  int                     `json:"move_out_count"`
	Periods       []TenancyPeriodResponse `json:"periods"`
	Gaps          []VacancyGapResponse    `json:"gaps"`
}

// MapTimelineToDTO maps a unit row and its timeline to the response
func MapTimelineToDTO(unit *schema.Unit, tl stats.UnitTimeline) *UnitTimelineResponse {
	resp := &UnitTimelineResponse{
		UnitID:        unit.ID,
		BuildingID:    unit.BuildingID,
		Label:         unit.Label,
		Floor:         unit.Floor,
		State:         string(tl.State),
		OccupiedSince: tl.OccupiedSince,
		MoveOutCount:  tl.MoveOutCount,
		Periods:       make([]TenancyPeriodResponse, 0, len(tl.Periods)),
		Gaps:          make([]VacancyGapResponse, 0, len(tl.Gaps)),
	}

	for _, p := range tl.Periods {
		resp.Periods = append(resp.Periods, TenancyPeriodResponse{
			Start:        p.Start,
			End:          p.End,
			DurationDays: p.DurationDays,
			Consumption:  consumption(p),
		})
	}
	for _, g := range tl.Gaps {
		resp.Gaps = append(resp.Gaps, VacancyGapResponse{
			Start: g.Start,
			End:   g.End,
			Days:  g.Days,
		})
	}

	return resp
}

func consumption(p stats.TenancyPeriod) map[string]*float64 {
	deltas := p.Consumption()
	out := make(map[string]*float64, len(deltas))
	for key, v := range deltas {
		out[string(key)] = v
	}
	return out
}
