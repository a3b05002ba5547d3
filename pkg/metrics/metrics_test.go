package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_NilReceiverIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.ObserveHTTPRequest("GET", "/x", 200, 0.1)
		m.ObserveDBQuery("SELECT", 0.01, nil)
		m.SetDBConnections(1, 1, 0)
		m.ObserveOccupancy(101, 30)
		m.IncAvailabilityQuery("available")
		m.IncReservationCreated("confirmed")
		m.ObserveCheckOut(240)
	})
}

func TestMetrics_Record(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWithRegistry(reg, "stay-service")

	m.ObserveOccupancy(101, 30)
	m.ObserveCheckOut(200)
	m.ObserveCheckOut(40)
	m.IncReservationCreated("confirmed")

	assert.Equal(t, 30.0, testutil.ToFloat64(m.RoomOccupancyRate.WithLabelValues("101")))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.CheckOutsTotal.WithLabelValues()))
	assert.Equal(t, 240.0, testutil.ToFloat64(m.CheckOutRevenue.WithLabelValues()))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReservationsCreated.WithLabelValues("confirmed")))
}
