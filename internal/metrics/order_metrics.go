package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Значения метки result.
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
	ResultError   = "error"
)

// OrderMetrics содержит метрики операций сервиса заказов.
type OrderMetrics struct {
	operations      *prometheus.CounterVec
	duration        *prometheus.HistogramVec
	inFlight        prometheus.Gauge
	eventsPublished *prometheus.CounterVec
	stationResolves *prometheus.CounterVec
}

// NewOrderMetrics регистрирует метрики в prometheus.DefaultRegisterer.
func NewOrderMetrics() *OrderMetrics {
	return NewOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewOrderMetricsWithRegisterer регистрирует метрики в переданном реестре.
// Повторная регистрация возвращает уже существующие коллекторы.
func NewOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		operations: register(registerer, "ticketorder_operations_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ticketorder_operations_total",
			Help: "Total number of order operations by outcome",
		}, []string{"operation", "result"})),
		duration: register(registerer, "ticketorder_operation_duration_seconds", prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "ticketorder_operation_duration_seconds",
			Help:    "Duration of order operations in seconds",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}, []string{"operation"})),
		inFlight: register(registerer, "ticketorder_operations_in_flight", prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "ticketorder_operations_in_flight",
			Help: "Number of order operations currently executing",
		})),
		eventsPublished: register(registerer, "ticketorder_events_published_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ticketorder_events_published_total",
			Help: "Total number of order events handed to the publisher",
		}, []string{"event_type", "result"})),
		stationResolves: register(registerer, "ticketorder_station_resolve_total", prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "ticketorder_station_resolve_total",
			Help: "Total number of station name resolution calls",
		}, []string{"result"})),
	}
}

func register[C prometheus.Collector](registerer prometheus.Registerer, name string, collector C) C {
	if err := registerer.Register(collector); err != nil {
		var alreadyRegistered prometheus.AlreadyRegisteredError
		if errors.As(err, &alreadyRegistered) {
			existing, ok := alreadyRegistered.ExistingCollector.(C)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", name))
			}
			return existing
		}
		panic(fmt.Sprintf("register collector %q: %v", name, err))
	}
	return collector
}

// Begin отмечает начало операции и возвращает функцию её завершения.
func (m *OrderMetrics) Begin(operation string) func(result string) {
	if m == nil {
		return func(string) {}
	}
	start := time.Now()
	m.inFlight.Inc()
	return func(result string) {
		m.inFlight.Dec()
		m.RecordOperation(operation, result, time.Since(start))
	}
}

// RecordOperation фиксирует исход операции и её длительность.
func (m *OrderMetrics) RecordOperation(operation, result string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.operations.WithLabelValues(operation, result).Inc()
	m.duration.WithLabelValues(operation).Observe(elapsed.Seconds())
}

// RecordEventPublished фиксирует попытку публикации события.
func (m *OrderMetrics) RecordEventPublished(eventType string, err error) {
	if m == nil {
		return
	}
	m.eventsPublished.WithLabelValues(eventType, resultOf(err)).Inc()
}

// RecordStationResolve фиксирует обращение к сервису станций.
func (m *OrderMetrics) RecordStationResolve(err error) {
	if m == nil {
		return
	}
	m.stationResolves.WithLabelValues(resultOf(err)).Inc()
}

func resultOf(err error) string {
	if err != nil {
		return ResultError
	}
	return ResultSuccess
}
