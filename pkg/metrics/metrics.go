package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

// Внешний API.
var (
	UpstreamAttempts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_attempts_total",
			Help: "HTTP attempts made to the upstream API",
		},
		[]string{"endpoint", "result"}, // ok|retryable|fatal
	)
	UpstreamCalls = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "upstream_calls_total",
			Help: "Logical upstream calls by final outcome",
		},
		[]string{"endpoint", "outcome"}, // success|http_error|transport_error|decode_error|config_error|canceled
	)
	UpstreamCallDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "upstream_call_duration_seconds",
			Help:    "Duration of logical upstream calls including retries",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
		},
		[]string{"endpoint"},
	)
)

// Кэш справочников.
var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_operations_total",
			Help: "Cache operations",
		},
		[]string{"op"}, // hit|miss|expired|stale_write|cleared
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cache_size",
			Help: "Number of entries currently held in cache",
		},
	)
	CacheRefresh = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_refresh_total",
			Help: "Background and warm-up refreshes by key and result",
		},
		[]string{"key", "result"}, // ok|failed
	)
)

// Команды управления кэшем из Kafka.
var (
	KafkaMessagesConsumed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_consumed_total",
			Help: "Number of messages fetched from Kafka",
		},
		[]string{"topic"},
	)
	KafkaMessagesProcessed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_processed_total",
			Help: "Number of messages processed successfully",
		},
		[]string{"topic"},
	)
	KafkaMessagesFailed = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kafka_messages_failed_total",
			Help: "Number of messages failed to process",
		},
		[]string{"topic"},
	)
)

var registerOnce sync.Once

// MustRegister - регистрирует все метрики в default registry; повторный вызов безопасен.
func MustRegister() {
	registerOnce.Do(func() {
		prometheus.MustRegister(
			UpstreamAttempts, UpstreamCalls, UpstreamCallDuration,
			CacheOps, CacheSize, CacheRefresh,
			KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		)
	})
}
