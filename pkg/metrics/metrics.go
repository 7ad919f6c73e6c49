package metrics

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics набор метрик сервиса
type Metrics struct {
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec

	DBQueryDuration   *prometheus.HistogramVec
	DBOpenConnections *prometheus.GaugeVec
	DBInUse           *prometheus.GaugeVec
	DBIdle            *prometheus.GaugeVec

	SlotProbesTotal     *prometheus.CounterVec
	HourStatusesTotal   *prometheus.CounterVec
	ConfirmationsTotal  *prometheus.CounterVec
	RemindersSentTotal  *prometheus.CounterVec
	DayHoursComputeTime *prometheus.HistogramVec
}

// New создает и регистрирует метрики в DefaultRegisterer
func New(serviceName string) *Metrics {
	return NewWithRegisterer(serviceName, prometheus.DefaultRegisterer)
}

// NewWithRegisterer создает метрики и регистрирует их в указанном регистре
func NewWithRegisterer(serviceName string, reg prometheus.Registerer) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	m := &Metrics{
		HTTPRequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "route", "status"}),
		HTTPRequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "route"}),
		DBQueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "db_query_duration_seconds",
			Help:        "Database query duration in seconds",
			ConstLabels: constLabels,
			Buckets:     []float64{.001, .0025, .005, .01, .025, .05, .1, .25, .5, 1},
		}, []string{"operation"}),
		DBOpenConnections: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_open_connections",
			Help:        "Number of established connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBInUse: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_in_use_connections",
			Help:        "Number of connections currently in use",
			ConstLabels: constLabels,
		}, []string{"db"}),
		DBIdle: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Name:        "db_idle_connections",
			Help:        "Number of idle connections",
			ConstLabels: constLabels,
		}, []string{"db"}),
		SlotProbesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "slot_probes_total",
			Help:        "Occupancy probes issued while resolving opening hours",
			ConstLabels: constLabels,
		}, []string{"result"}),
		HourStatusesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "hour_statuses_total",
			Help:        "Hour statuses returned by the classifier",
			ConstLabels: constLabels,
		}, []string{"status"}),
		ConfirmationsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_confirmations_total",
			Help:        "Booking confirmation attempts by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		RemindersSentTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name:        "booking_reminders_total",
			Help:        "Reminder events by outcome",
			ConstLabels: constLabels,
		}, []string{"outcome"}),
		DayHoursComputeTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "day_hours_compute_seconds",
			Help:        "Time spent resolving opening hours",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"scope"}),
	}

	reg.MustRegister(
		m.HTTPRequestsTotal,
		m.HTTPRequestDuration,
		m.DBQueryDuration,
		m.DBOpenConnections,
		m.DBInUse,
		m.DBIdle,
		m.SlotProbesTotal,
		m.HourStatusesTotal,
		m.ConfirmationsTotal,
		m.RemindersSentTotal,
		m.DayHoursComputeTime,
	)

	return m
}

// ObserveHTTP записывает метрики HTTP запроса
func (m *Metrics) ObserveHTTP(method, route string, status int, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// IncSlotProbe учитывает проверку занятости слота
func (m *Metrics) IncSlotProbe(occupied bool) {
	if m == nil {
		return
	}
	result := "free"
	if occupied {
		result = "occupied"
	}
	m.SlotProbesTotal.WithLabelValues(result).Inc()
}

// IncHourStatus учитывает результат классификации часа
func (m *Metrics) IncHourStatus(status string) {
	if m == nil {
		return
	}
	m.HourStatusesTotal.WithLabelValues(status).Inc()
}

// IncConfirmation учитывает результат подтверждения бронирования
func (m *Metrics) IncConfirmation(outcome string) {
	if m == nil {
		return
	}
	m.ConfirmationsTotal.WithLabelValues(outcome).Inc()
}

// IncReminder учитывает результат отправки напоминания
func (m *Metrics) IncReminder(outcome string) {
	if m == nil {
		return
	}
	m.RemindersSentTotal.WithLabelValues(outcome).Inc()
}

// ObserveDayHours записывает время вычисления часов работы
func (m *Metrics) ObserveDayHours(scope string, duration time.Duration) {
	if m == nil {
		return
	}
	m.DayHoursComputeTime.WithLabelValues(scope).Observe(duration.Seconds())
}
