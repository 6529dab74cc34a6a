package services_test

import (
	"fmt"
	"testing"
	"time"

	"courierdesk/internal/core/domain/model/courier"
	"courierdesk/internal/core/domain/model/history"
	"courierdesk/internal/core/domain/model/order"
	"courierdesk/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	loc  = time.FixedZone("VET", -4*60*60)
	day1 = time.Date(2025, 5, 10, 10, 0, 0, 0, loc)
)

func newOrder(t *testing.T, id string, createdAt time.Time, status order.Status) *order.Order {
	t.Helper()

	o, err := order.RestoreOrder(order.State{
		ID:              id,
		ClientID:        "12345678",
		DeliveryAddress: "Calle 1",
		Combo:           order.ComboForFour,
		ComboPrice:      10,
		Payment:         order.RestorePayment(order.Cash, false, 0),
		Total:           10,
		Status:          status,
		CreatedAt:       createdAt,
	})
	require.NoError(t, err)
	return o
}

func newRecord(t *testing.T, id, orderID, courierID string, outcome history.Outcome, at time.Time) *history.Record {
	t.Helper()

	r, err := history.RestoreRecord(id, orderID, courierID, outcome, at, "Calle 1")
	require.NoError(t, err)
	return r
}

func newCourier(t *testing.T, id string, available bool) *courier.Courier {
	t.Helper()

	c, err := courier.RestoreCourier(id, "Courier "+id, "04141234567", available, "pw")
	require.NoError(t, err)
	return c
}

func TestStatistics_OnTimePercentage(t *testing.T) {
	stats := services.NewStatistics(loc)

	t.Run("delivered after 45 minutes is on time", func(t *testing.T) {
		orders := []*order.Order{newOrder(t, "PED-1", day1, order.Delivered)}
		records := []*history.Record{newRecord(t, "H1", "PED-1", "V1", history.Delivered, day1.Add(45*time.Minute))}

		assert.InDelta(t, 100.0, stats.OnTimePercentage(orders, records), 0)
		assert.InDelta(t, 45.0, stats.AverageDeliveryMinutes(orders, records), 0)
	})

	t.Run("delivered after 75 minutes is late", func(t *testing.T) {
		orders := []*order.Order{newOrder(t, "PED-1", day1, order.Delivered)}
		records := []*history.Record{newRecord(t, "H1", "PED-1", "V1", history.Delivered, day1.Add(75*time.Minute))}

		assert.InDelta(t, 0.0, stats.OnTimePercentage(orders, records), 0)
		assert.InDelta(t, 75.0, stats.AverageDeliveryMinutes(orders, records), 0)
	})

	t.Run("exactly sixty minutes is on time", func(t *testing.T) {
		orders := []*order.Order{newOrder(t, "PED-1", day1, order.Delivered)}
		records := []*history.Record{newRecord(t, "H1", "PED-1", "V1", history.Delivered, day1.Add(60*time.Minute+59*time.Second))}

		assert.InDelta(t, 100.0, stats.OnTimePercentage(orders, records), 0)
	})

	t.Run("no valid deliveries yields zero", func(t *testing.T) {
		orders := []*order.Order{newOrder(t, "PED-1", day1, order.Cancelled)}
		records := []*history.Record{
			newRecord(t, "H1", "PED-1", "V1", history.Cancelled, day1.Add(5*time.Minute)),
			newRecord(t, "H2", "PED-404", "V1", history.Delivered, day1.Add(5*time.Minute)),
			newRecord(t, "H3", "PED-1", "V1", history.Delivered, time.Time{}),
		}

		assert.InDelta(t, 0.0, stats.OnTimePercentage(orders, records), 0)
		assert.InDelta(t, 0.0, stats.AverageDeliveryMinutes(orders, records), 0)
		assert.InDelta(t, 0.0, stats.OnTimePercentage(nil, nil), 0)
	})

	t.Run("events before creation are excluded", func(t *testing.T) {
		orders := []*order.Order{
			newOrder(t, "PED-1", day1, order.Delivered),
			newOrder(t, "PED-2", day1, order.Delivered),
		}
		records := []*history.Record{
			newRecord(t, "H1", "PED-1", "V1", history.Delivered, day1.Add(-30*time.Minute)),
			newRecord(t, "H2", "PED-2", "V1", history.Delivered, day1.Add(90*time.Minute)),
		}

		assert.InDelta(t, 0.0, stats.OnTimePercentage(orders, records), 0)
		assert.InDelta(t, 90.0, stats.AverageDeliveryMinutes(orders, records), 0)
	})

	t.Run("percentage stays within bounds", func(t *testing.T) {
		var orders []*order.Order
		var records []*history.Record
		for i := 0; i < 37; i++ {
			id := fmt.Sprintf("PED-%d", i)
			orders = append(orders, newOrder(t, id, day1, order.Delivered))
			records = append(records, newRecord(t, "H"+id, id, "V1", history.Delivered, day1.Add(time.Duration(i*5)*time.Minute)))
		}

		got := stats.OnTimePercentage(orders, records)
		assert.GreaterOrEqual(t, got, 0.0)
		assert.LessOrEqual(t, got, 100.0)
		// i*5 <= 60 for i in [0, 12]
		assert.InDelta(t, 13.0/37.0*100, got, 1e-9)
	})
}

func TestStatistics_Dashboard(t *testing.T) {
	stats := services.NewStatistics(loc)
	now := time.Date(2025, 5, 11, 9, 0, 0, 0, loc)

	data := services.Dataset{
		Orders: []*order.Order{
			newOrder(t, "PED-1", day1, order.Delivered),
			newOrder(t, "PED-2", now.Add(-2*time.Hour), order.Delivered),
			newOrder(t, "PED-3", now.Add(-time.Hour), order.Pending),
			newOrder(t, "PED-4", now.Add(-time.Hour), order.EnRoute),
			newOrder(t, "PED-5", now.Add(-time.Hour), order.Cancelled),
		},
		Records: []*history.Record{
			newRecord(t, "H1", "PED-1", "V1", history.Delivered, day1.Add(30*time.Minute)),
			newRecord(t, "H2", "PED-2", "V1", history.Delivered, now.Add(-30*time.Minute)),
			newRecord(t, "H3", "PED-5", "V2", history.Cancelled, now.Add(-10*time.Minute)),
			// Orphan records still count for "delivered today".
			newRecord(t, "H4", "PED-404", "", history.Delivered, now.Add(-5*time.Minute)),
		},
		Couriers: []*courier.Courier{
			newCourier(t, "V1", true),
			newCourier(t, "V2", false),
			newCourier(t, "V3", true),
		},
	}

	got := stats.Dashboard(data, now)

	assert.InDelta(t, 50.0, got.OnTimePercentage, 0)
	assert.InDelta(t, 60.0, got.AverageDeliveryMinutes, 0)
	assert.Equal(t, 2, got.DeliveredToday)
	assert.Equal(t, 2, got.InProgressOrders)
	assert.Equal(t, 2, got.ActiveCouriers)
}

func TestStatistics_DeliveredOn_UsesLocalCalendarDay(t *testing.T) {
	stats := services.NewStatistics(loc)
	// 23:30 local on the 10th is 03:30 UTC on the 11th.
	records := []*history.Record{
		newRecord(t, "H1", "PED-1", "", history.Delivered, time.Date(2025, 5, 10, 23, 30, 0, 0, loc)),
	}

	assert.Equal(t, 1, stats.DeliveredOn(records, time.Date(2025, 5, 10, 8, 0, 0, 0, loc)))
	assert.Equal(t, 0, stats.DeliveredOn(records, time.Date(2025, 5, 11, 8, 0, 0, 0, loc)))
}

func TestStatistics_TopCouriers(t *testing.T) {
	stats := services.NewStatistics(loc)

	t.Run("ties on percentage are broken by total", func(t *testing.T) {
		data := services.Dataset{
			Orders: []*order.Order{
				newOrder(t, "PED-1", day1, order.Delivered),
				newOrder(t, "PED-2", day1, order.Delivered),
				newOrder(t, "PED-3", day1, order.Delivered),
			},
			Records: []*history.Record{
				newRecord(t, "H1", "PED-1", "A", history.Delivered, day1.Add(10*time.Minute)),
				newRecord(t, "H2", "PED-2", "B", history.Delivered, day1.Add(10*time.Minute)),
				newRecord(t, "H3", "PED-3", "B", history.Delivered, day1.Add(20*time.Minute)),
			},
			Couriers: []*courier.Courier{newCourier(t, "A", true), newCourier(t, "B", true)},
		}

		got := stats.TopCouriers(data)

		require.Len(t, got, 2)
		assert.Equal(t, "B", got[0].CourierID)
		assert.Equal(t, 2, got[0].Total)
		assert.InDelta(t, 100.0, got[0].OnTimePercentage, 0)
		assert.Equal(t, "A", got[1].CourierID)
	})

	t.Run("cancellations count toward total but never on time", func(t *testing.T) {
		data := services.Dataset{
			Orders: []*order.Order{
				newOrder(t, "PED-1", day1, order.Delivered),
				newOrder(t, "PED-2", day1, order.Cancelled),
			},
			Records: []*history.Record{
				newRecord(t, "H1", "PED-1", "A", history.Delivered, day1.Add(10*time.Minute)),
				newRecord(t, "H2", "PED-2", "A", history.Cancelled, day1.Add(5*time.Minute)),
			},
			Couriers: []*courier.Courier{newCourier(t, "A", true)},
		}

		got := stats.TopCouriers(data)

		require.Len(t, got, 1)
		assert.Equal(t, 2, got[0].Total)
		assert.Equal(t, 1, got[0].OnTime)
		assert.InDelta(t, 50.0, got[0].OnTimePercentage, 0)
		assert.Equal(t, "Courier A", got[0].Name)
	})

	t.Run("couriers without records rank with zero and keep input order", func(t *testing.T) {
		data := services.Dataset{Couriers: []*courier.Courier{
			newCourier(t, "X", true), newCourier(t, "Y", true), newCourier(t, "Z", true),
		}}

		got := stats.TopCouriers(data)

		require.Len(t, got, 3)
		assert.Equal(t, []string{"X", "Y", "Z"}, []string{got[0].CourierID, got[1].CourierID, got[2].CourierID})
		assert.InDelta(t, 0.0, got[0].OnTimePercentage, 0)
	})

	t.Run("ranking is capped at ten", func(t *testing.T) {
		var couriers []*courier.Courier
		for i := 0; i < 15; i++ {
			couriers = append(couriers, newCourier(t, fmt.Sprintf("C%02d", i), true))
		}

		got := stats.TopCouriers(services.Dataset{Couriers: couriers})

		assert.Len(t, got, services.TopCouriersLimit)
		assert.Equal(t, "C00", got[0].CourierID)
		assert.Equal(t, "C09", got[9].CourierID)
	})

	t.Run("output is deterministic", func(t *testing.T) {
		data := services.Dataset{
			Orders: []*order.Order{newOrder(t, "PED-1", day1, order.Delivered)},
			Records: []*history.Record{
				newRecord(t, "H1", "PED-1", "B", history.Delivered, day1.Add(10*time.Minute)),
			},
			Couriers: []*courier.Courier{newCourier(t, "A", true), newCourier(t, "B", true), newCourier(t, "C", true)},
		}

		first := stats.TopCouriers(data)
		for n := 0; n < 20; n++ {
			assert.Equal(t, first, stats.TopCouriers(data))
		}
		assert.Equal(t, "B", first[0].CourierID)
	})
}

func TestStatistics_DailySeries(t *testing.T) {
	stats := services.NewStatistics(loc)
	day2 := day1.AddDate(0, 0, 1)
	day3 := day1.AddDate(0, 0, 2)

	orders := []*order.Order{
		newOrder(t, "PED-3", day3, order.Pending),
		newOrder(t, "PED-1", day1, order.Delivered),
		newOrder(t, "PED-2", day1.Add(time.Hour), order.Delivered),
	}
	records := []*history.Record{
		newRecord(t, "H1", "PED-1", "A", history.Delivered, day1.Add(30*time.Minute)),
		// Delivered after midnight: counted on day 2.
		newRecord(t, "H2", "PED-2", "A", history.Delivered, day2.Add(50*time.Minute)),
		newRecord(t, "H3", "PED-3", "A", history.Cancelled, day3.Add(50*time.Minute)),
	}

	got := stats.DailySeries(orders, records)

	require.Len(t, got, 3)
	assert.Equal(t, "10/05/2025", got[0].Label)
	assert.Equal(t, 2, got[0].OrdersCreated)
	assert.InDelta(t, 30.0, got[0].AverageDeliveryMinutes, 0)

	assert.Equal(t, "11/05/2025", got[1].Label)
	assert.Equal(t, 0, got[1].OrdersCreated)
	assert.InDelta(t, float64(24*60-60+50), got[1].AverageDeliveryMinutes, 0)

	assert.Equal(t, "12/05/2025", got[2].Label)
	assert.Equal(t, 1, got[2].OrdersCreated)
	assert.InDelta(t, 0.0, got[2].AverageDeliveryMinutes, 0)

	assert.Empty(t, stats.DailySeries(nil, nil))
}
