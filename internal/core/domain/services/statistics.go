package services

import (
	"cmp"
	"slices"
	"time"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/kernel"
	"courierdesk/internal/core/domain/model/order"
)

const (
	// OnTimeThreshold is the longest delivery still counted as on time.
	OnTimeThreshold = 60 * time.Minute
	// TopCouriersLimit caps the courier ranking.
	TopCouriersLimit = 10
	// DayLabelLayout formats the days of the daily series.
	DayLabelLayout = "02/01/2006"
)

// Dataset is the input of every statistic. Slices are read, never modified.
type Dataset struct {
	Orders   []*order.Order
	Records  []*history.Record
	Couriers []*courier.Courier
}

// Dashboard holds the KPI scalars shown on the administrator's dashboard.
type Dashboard struct {
	OnTimePercentage       float64
	AverageDeliveryMinutes float64
	DeliveredToday         int
	InProgressOrders       int
	ActiveCouriers         int
}

// CourierPerformance is one row of the courier ranking.
type CourierPerformance struct {
	CourierID        string
	Name             string
	Total            int
	OnTime           int
	OnTimePercentage float64
}

// DailyPoint is one day of the per-day series.
type DailyPoint struct {
	Day                    time.Time
	Label                  string
	OrdersCreated          int
	AverageDeliveryMinutes float64
}

// Statistics derives delivery metrics from orders, history records and couriers.
//
// A history record is "measurable" when its order resolves, both the order's
// creation time and the record's event time are set, and the event does not
// precede the creation. Records failing any of these checks are data errors
// and are left out of every duration-based metric. Durations are whole minutes,
// truncated.
//
// Example usage:
//
//	stats := services.NewStatistics(time.Local)
//	dashboard := stats.Dashboard(services.Dataset{Orders: orders, Records: records, Couriers: couriers}, now)
type Statistics struct {
	loc *time.Location
}

// NewStatistics returns an engine that groups by calendar day in loc
// (time.Local when nil).
func NewStatistics(loc *time.Location) Statistics {
	if loc == nil {
		loc = time.Local
	}
	return Statistics{loc: loc}
}

type measurement struct {
	record  *history.Record
	minutes int64
}

func (m measurement) onTime() bool {
	return m.record.Outcome() == history.Delivered && m.minutes <= int64(OnTimeThreshold/time.Minute)
}

func indexOrders(orders []*order.Order) map[string]*order.Order {
	byID := make(map[string]*order.Order, len(orders))
	for _, o := range orders {
		byID[o.ID()] = o
	}
	return byID
}

// measure returns the measurable records, in input order.
func measure(orders []*order.Order, records []*history.Record) []measurement {
	byID := indexOrders(orders)

	out := make([]measurement, 0, len(records))
	for _, r := range records {
		o, ok := byID[r.OrderID()]
		if !ok || o.CreatedAt().IsZero() || r.OccurredAt().IsZero() {
			continue
		}
		minutes := kernel.WholeMinutesBetween(o.CreatedAt(), r.OccurredAt())
		if minutes < 0 {
			continue
		}
		out = append(out, measurement{record: r, minutes: minutes})
	}
	return out
}

func delivered(ms []measurement) []measurement {
	out := make([]measurement, 0, len(ms))
	for _, m := range ms {
		if m.record.Outcome() == history.Delivered {
			out = append(out, m)
		}
	}
	return out
}

// OnTimePercentage is the share of measurable Delivered records within the
// threshold, in [0, 100]; 0 when there are none.
func (s Statistics) OnTimePercentage(orders []*order.Order, records []*history.Record) float64 {
	ms := delivered(measure(orders, records))
	if len(ms) == 0 {
		return 0
	}

	onTime := 0
	for _, m := range ms {
		if m.onTime() {
			onTime++
		}
	}
	return percentage(onTime, len(ms))
}

// AverageDeliveryMinutes averages the duration of measurable Delivered
// records; 0 when there are none.
func (s Statistics) AverageDeliveryMinutes(orders []*order.Order, records []*history.Record) float64 {
	return averageMinutes(delivered(measure(orders, records)))
}

// DeliveredOn counts Delivered records whose event falls on day's calendar
// date. Only the event time is required.
func (s Statistics) DeliveredOn(records []*history.Record, day time.Time) int {
	count := 0
	for _, r := range records {
		if r.Outcome() != history.Delivered || r.OccurredAt().IsZero() {
			continue
		}
		if kernel.SameLocalDay(r.OccurredAt(), day, s.loc) {
			count++
		}
	}
	return count
}

// InProgressOrders counts Pending and EnRoute orders.
func InProgressOrders(orders []*order.Order) int {
	count := 0
	for _, o := range orders {
		if o.Status().IsInProgress() {
			count++
		}
	}
	return count
}

// ActiveCouriers counts couriers flagged as available.
func ActiveCouriers(couriers []*courier.Courier) int {
	count := 0
	for _, c := range couriers {
		if c.IsAvailable() {
			count++
		}
	}
	return count
}

// Dashboard computes every KPI scalar with now as "today".
func (s Statistics) Dashboard(data Dataset, now time.Time) Dashboard {
	return Dashboard{
		OnTimePercentage:       s.OnTimePercentage(data.Orders, data.Records),
		AverageDeliveryMinutes: s.AverageDeliveryMinutes(data.Orders, data.Records),
		DeliveredToday:         s.DeliveredOn(data.Records, now),
		InProgressOrders:       InProgressOrders(data.Orders),
		ActiveCouriers:         ActiveCouriers(data.Couriers),
	}
}

// TopCouriers ranks every courier by on-time percentage, then by total
// measurable records, both descending, and returns at most TopCouriersLimit
// rows. Ties keep the courier input order.
func (s Statistics) TopCouriers(data Dataset) []CourierPerformance {
	type tally struct{ total, onTime int }
	tallies := make(map[string]*tally, len(data.Couriers))
	for _, c := range data.Couriers {
		tallies[c.ID()] = &tally{}
	}

	for _, m := range measure(data.Orders, data.Records) {
		t, ok := tallies[m.record.CourierID()]
		if !ok {
			continue
		}
		t.total++
		if m.onTime() {
			t.onTime++
		}
	}

	rows := make([]CourierPerformance, 0, len(data.Couriers))
	seen := make(map[string]struct{}, len(data.Couriers))
	for _, c := range data.Couriers {
		if _, dup := seen[c.ID()]; dup {
			continue
		}
		seen[c.ID()] = struct{}{}

		t := tallies[c.ID()]
		rows = append(rows, CourierPerformance{
			CourierID:        c.ID(),
			Name:             c.Name(),
			Total:            t.total,
			OnTime:           t.onTime,
			OnTimePercentage: percentage(t.onTime, t.total),
		})
	}

	slices.SortStableFunc(rows, func(a, b CourierPerformance) int {
		if c := cmp.Compare(b.OnTimePercentage, a.OnTimePercentage); c != 0 {
			return c
		}
		return cmp.Compare(b.Total, a.Total)
	})

	if len(rows) > TopCouriersLimit {
		rows = rows[:TopCouriersLimit]
	}
	return rows
}

// DailySeries returns one point per calendar day on which an order was created
// or a measurable delivery happened, in chronological order.
func (s Statistics) DailySeries(orders []*order.Order, records []*history.Record) []DailyPoint {
	created := make(map[time.Time]int)
	for _, o := range orders {
		if o.CreatedAt().IsZero() {
			continue
		}
		created[kernel.LocalDay(o.CreatedAt(), s.loc)]++
	}

	durations := make(map[time.Time][]measurement)
	for _, m := range delivered(measure(orders, records)) {
		day := kernel.LocalDay(m.record.OccurredAt(), s.loc)
		durations[day] = append(durations[day], m)
	}

	days := make([]time.Time, 0, len(created)+len(durations))
	for day := range created {
		days = append(days, day)
	}
	for day := range durations {
		if _, ok := created[day]; !ok {
			days = append(days, day)
		}
	}
	slices.SortFunc(days, func(a, b time.Time) int { return a.Compare(b) })

	points := make([]DailyPoint, 0, len(days))
	for _, day := range days {
		points = append(points, DailyPoint{
			Day:                    day,
			Label:                  day.Format(DayLabelLayout),
			OrdersCreated:          created[day],
			AverageDeliveryMinutes: averageMinutes(durations[day]),
		})
	}
	return points
}

func averageMinutes(ms []measurement) float64 {
	if len(ms) == 0 {
		return 0
	}
	var sum int64
	for _, m := range ms {
		sum += m.minutes
	}
	return float64(sum) / float64(len(ms))
}

func percentage(part, total int) float64 {
	if total == 0 {
		return 0
	}
	return float64(part) / float64(total) * 100
}
