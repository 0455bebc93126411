package metrics

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
)

// Потребитель событий инвалидации корзин.
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

// Кэш корзин.
var (
	CacheOps = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_cache_operations_total",
			Help: "Cart cache operations",
		},
		[]string{"op"}, // hit|miss|evicted|expired|invalidated|set
	)
	CacheSize = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "cart_cache_size",
			Help: "Number of cart snapshots currently in cache",
		},
	)
)

// Оркестратор корзины и оформление заказа.
var (
	CartMutations = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cart_mutations_total",
			Help: "Cart mutations by operation and outcome",
		},
		[]string{"op", "outcome"}, // outcome: ok|failed|invalid|error
	)
	CheckoutHalts = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_pipeline_halts_total",
			Help: "Checkout data pipeline halts by failing step",
		},
		[]string{"step"},
	)
)

// MustRegister — регистрирует метрики; повторный вызов безопасен.
func MustRegister() {
	collectors := []prometheus.Collector{
		KafkaMessagesConsumed, KafkaMessagesProcessed, KafkaMessagesFailed,
		CacheOps, CacheSize,
		CartMutations, CheckoutHalts,
	}
	for _, c := range collectors {
		if err := prometheus.Register(c); err != nil {
			var already prometheus.AlreadyRegisteredError
			if errors.As(err, &already) {
				continue
			}
			panic(err)
		}
	}
}
