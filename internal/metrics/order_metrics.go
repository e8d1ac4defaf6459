// Package metrics exposes Prometheus counters for the order lifecycle.
package metrics

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// OrderMetrics counts lifecycle events: placements, rejections, stage
// advancements, and background delivery completions.
type OrderMetrics struct {
	ordersCreated       prometheus.Counter
	ordersRejected      prometheus.Counter
	ordersAdvanced      prometheus.Counter
	deliveriesCompleted prometheus.Counter
}

// NewOrderMetrics creates lifecycle metrics on the default registerer.
func NewOrderMetrics() *OrderMetrics {
	return newOrderMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

func newOrderMetricsWithRegisterer(registerer prometheus.Registerer) *OrderMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &OrderMetrics{
		ordersCreated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_created_total",
			Help: "Total number of orders placed successfully",
		}),
		ordersRejected: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_rejected_total",
			Help: "Total number of order placements rejected by precondition checks",
		}),
		ordersAdvanced: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_orders_advanced_total",
			Help: "Total number of order status advancements",
		}),
		deliveriesCompleted: registerCounter(registerer, prometheus.CounterOpts{
			Name: "ordering_deliveries_completed_total",
			Help: "Total number of deliveries completed by the background job",
		}),
	}
}

// OrderCreated records a successful order placement.
func (m *OrderMetrics) OrderCreated() {
	m.ordersCreated.Inc()
}

// OrderRejected records an order placement that failed a precondition check.
func (m *OrderMetrics) OrderRejected() {
	m.ordersRejected.Inc()
}

// OrderAdvanced records one order stage advancement.
func (m *OrderMetrics) OrderAdvanced() {
	m.ordersAdvanced.Inc()
}

// DeliveryCompleted records a delivery finished by the background job.
func (m *OrderMetrics) DeliveryCompleted() {
	m.deliveriesCompleted.Inc()
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok { //nolint:errorlint //value type error
			existing, isCounter := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !isCounter {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}
