package stats

import (
	"sort"
	"strings"
	"time"

	"github.com/handoverhq/tenancy-stats/internal/domain"
)

// MonthlyCounts holds 12 calendar-month buckets per protocol kind; index 0 is January
type MonthlyCounts struct {
	MoveIn  [12]int `json:"move_in"`
	MoveOut [12]int `json:"move_out"`
	Interim [12]int `json:"interim"`
	Total   [12]int `json:"total"`
}

// RoomTypeCount is a row of the room type frequency table
type RoomTypeCount struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// bucketBuilder accumulates the in-year histograms in a single pass
type bucketBuilder struct {
	year     int
	loc      *time.Location
	monthly  MonthlyCounts
	quality  [12]runningAverage
	weekday  [7]int
	hour     [24]int
	kinds    map[string]int
	photos   map[domain.ProtocolKind]*runningAverage
	total    int
	photoSum int
}

func newBucketBuilder(year int, loc *time.Location) *bucketBuilder {
	b := &bucketBuilder{
		year:   year,
		loc:    loc,
		kinds:  make(map[string]int),
		photos: make(map[domain.ProtocolKind]*runningAverage, len(domain.ProtocolKinds)),
	}
	for _, k := range domain.ProtocolKinds {
		b.photos[k] = &runningAverage{}
	}
	return b
}

// add counts an event if it was created in the report year
func (b *bucketBuilder) add(ev *Event) bool {
	created := ev.CreatedAt.In(b.loc)
	if created.Year() != b.year {
		return false
	}

	month := int(created.Month()) - 1
	b.monthly.Total[month]++
	if ev.Known && ev.Kind.Valid() {
		switch ev.Kind {
		case domain.ProtocolKindMoveIn:
			b.monthly.MoveIn[month]++
		case domain.ProtocolKindMoveOut:
			b.monthly.MoveOut[month]++
		case domain.ProtocolKindInterim:
			b.monthly.Interim[month]++
		}
		b.photos[ev.Kind].add(float64(ev.PhotoCount))
		b.kinds[string(ev.Kind)]++
	} else {
		b.kinds[ev.Label]++
	}

	b.quality[month].add(ev.Score())
	// Monday first
	b.weekday[(int(created.Weekday())+6)%7]++
	b.hour[created.Hour()]++
	b.total++
	b.photoSum += ev.PhotoCount
	return true
}

func (b *bucketBuilder) qualityByMonth() [12]*float64 {
	var out [12]*float64
	for i, q := range b.quality {
		out[i] = q.value(1)
	}
	return out
}

func (b *bucketBuilder) averagePhotos() map[string]float64 {
	out := make(map[string]float64, len(b.photos))
	for kind, avg := range b.photos {
		if v := avg.value(1); v != nil {
			out[string(kind)] = *v
		} else {
			out[string(kind)] = 0
		}
	}
	return out
}

// roomTypeCounter counts rooms by their free-text type across all protocols
type roomTypeCounter map[string]int

func (c roomTypeCounter) add(p Payload) {
	for _, room := range p.Rooms {
		t := strings.TrimSpace(room.Type)
		if t == "" {
			continue
		}
		c[t]++
	}
}

// top returns the n most frequent room types, ties by type
func (c roomTypeCounter) top(n int) []RoomTypeCount {
	out := make([]RoomTypeCount, 0, len(c))
	for t, count := range c {
		out = append(out, RoomTypeCount{Type: t, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Type < out[j].Type
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

// BuildingFluctuation is a row of the per-building fluctuation table
type BuildingFluctuation struct {
	BuildingID         uint64   `json:"building_id"`
	Name               string   `json:"name"`
	Street             string   `json:"street"`
	HouseNo            string   `json:"house_no"`
	City               string   `json:"city"`
	UnitCount          int      `json:"unit_count"`
	// ActiveUnits is the number of units with at least one protocol
	ActiveUnits        int      `json:"active_units"`
	MoveOutCount       int      `json:"move_out_count"`
	Quote              *float64 `json:"quote"`
	AverageTenancyDays *float64 `json:"average_tenancy_days"`
	AverageVacancyDays *float64 `json:"average_vacancy_days"`
}

// UnitFluctuation is a row of the per-unit fluctuation table
type UnitFluctuation struct {
	UnitID       uint64 `json:"unit_id"`
	BuildingID   uint64 `json:"building_id"`
	MoveOutCount int    `json:"move_out_count"`
}

// buildingTable builds the per-building rows, most move-outs first, then highest quote
func buildingTable(agg *durationAggregator, buildings map[uint64]domain.Building) []BuildingFluctuation {
	rows := make([]BuildingFluctuation, 0, len(agg.buildings))
	for id, acc := range agg.buildings {
		b := buildings[id]
		rows = append(rows, BuildingFluctuation{
			BuildingID:         id,
			Name:               b.Name,
			Street:             b.Street,
			HouseNo:            b.HouseNo,
			City:               b.City,
			UnitCount:          b.UnitCount,
			ActiveUnits:        len(acc.units),
			MoveOutCount:       acc.moveOuts,
			Quote:              fluctuationQuote(acc.moveOuts, b.UnitCount),
			AverageTenancyDays: meanInts(acc.durations),
			AverageVacancyDays: meanInts(acc.vacancyDays),
		})
	}
	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.MoveOutCount != b.MoveOutCount {
			return a.MoveOutCount > b.MoveOutCount
		}
		switch {
		case a.Quote != nil && b.Quote == nil:
			return true
		case a.Quote == nil && b.Quote != nil:
			return false
		case a.Quote != nil && b.Quote != nil && *a.Quote != *b.Quote:
			return *a.Quote > *b.Quote
		}
		return a.BuildingID < b.BuildingID
	})
	return rows
}

// unitTable builds the per-unit rows for units with at least one move-out
func unitTable(agg *durationAggregator) []UnitFluctuation {
	rows := make([]UnitFluctuation, 0, len(agg.unitMoveOuts))
	for id, n := range agg.unitMoveOuts {
		rows = append(rows, UnitFluctuation{UnitID: id, BuildingID: agg.unitBuilding[id], MoveOutCount: n})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].MoveOutCount != rows[j].MoveOutCount {
			return rows[i].MoveOutCount > rows[j].MoveOutCount
		}
		return rows[i].UnitID < rows[j].UnitID
	})
	return rows
}
