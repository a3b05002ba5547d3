package metrics

import (
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics набор prometheus-метрик сервиса
// Все методы безопасны для nil-получателя: при выключенных метриках передаётся nil
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration *prometheus.HistogramVec
	DBQueryErrors   *prometheus.CounterVec
	DBConnections   *prometheus.GaugeVec

	RoomOccupancyRate   *prometheus.GaugeVec
	AvailabilityQueries *prometheus.CounterVec
	ReservationsCreated *prometheus.CounterVec
	CheckOutsTotal      *prometheus.CounterVec
	CheckOutRevenue     *prometheus.CounterVec
}

// New регистрирует метрики в глобальном prometheus registry
func New(serviceName string) *Metrics {
	return NewWithRegistry(prometheus.DefaultRegisterer, serviceName)
}

// NewWithRegistry регистрирует метрики в указанном registry (удобно для тестов)
func NewWithRegistry(reg prometheus.Registerer, serviceName string) *Metrics {
	factory := promauto.With(reg)
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		HTTPRequestsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),

		HTTPRequestDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request latency",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),

		DBQueryDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query latency",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),

		DBQueryErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "db_query_errors_total",
			Help:        "Total number of failed database queries",
			ConstLabels: constLabels,
		}, []string{"operation"}),

		DBConnections: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_connections",
			Help:        "Database connection pool state",
			ConstLabels: constLabels,
		}, []string{"state"}),

		RoomOccupancyRate: factory.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "room_occupancy_rate_percent",
			Help:        "Last computed trailing-window occupancy rate per room",
			ConstLabels: constLabels,
		}, []string{"room_id"}),

		AvailabilityQueries: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_queries_total",
			Help:        "Availability lookups by outcome",
			ConstLabels: constLabels,
		}, []string{"result"}),

		ReservationsCreated: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "reservations_created_total",
			Help:        "Reservations created",
			ConstLabels: constLabels,
		}, []string{"status"}),

		CheckOutsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "checkouts_total",
			Help:        "Completed check-outs",
			ConstLabels: constLabels,
		}, []string{}),

		CheckOutRevenue: factory.NewCounterVec(prometheus.CounterOpts{
			Name:        "checkout_revenue_total",
			Help:        "Sum of total amounts billed at check-out",
			ConstLabels: constLabels,
		}, []string{}),
	}
}

func (m *Metrics) ObserveHTTPRequest(method, route string, status int, seconds float64) {
	if m == nil {
		return
	}
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func (m *Metrics) ObserveDBQuery(operation string, seconds float64, err error) {
	if m == nil {
		return
	}
	m.DBQueryDuration.WithLabelValues(operation).Observe(seconds)
	if err != nil {
		m.DBQueryErrors.WithLabelValues(operation).Inc()
	}
}

func (m *Metrics) SetDBConnections(open, inUse, idle int) {
	if m == nil {
		return
	}
	m.DBConnections.WithLabelValues("open").Set(float64(open))
	m.DBConnections.WithLabelValues("in_use").Set(float64(inUse))
	m.DBConnections.WithLabelValues("idle").Set(float64(idle))
}

func (m *Metrics) ObserveOccupancy(roomID int64, rate float64) {
	if m == nil {
		return
	}
	m.RoomOccupancyRate.WithLabelValues(strconv.FormatInt(roomID, 10)).Set(rate)
}

// IncAvailabilityQuery result: "available" если нашлись свободные номера, иначе "sold_out"
func (m *Metrics) IncAvailabilityQuery(result string) {
	if m == nil {
		return
	}
	m.AvailabilityQueries.WithLabelValues(result).Inc()
}

func (m *Metrics) IncReservationCreated(status string) {
	if m == nil {
		return
	}
	m.ReservationsCreated.WithLabelValues(status).Inc()
}

func (m *Metrics) ObserveCheckOut(totalAmount float64) {
	if m == nil {
		return
	}
	m.CheckOutsTotal.WithLabelValues().Inc()
	m.CheckOutRevenue.WithLabelValues().Add(totalAmount)
}
