package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the stall counters exposed on /metrics.
type Metrics struct {
	gatherer prometheus.Gatherer

	ordersSubmitted *prometheus.CounterVec
	submitFailures  *prometheus.CounterVec
	statusUpdates   *prometheus.CounterVec
	payments        *prometheus.CounterVec
	basketItems     prometheus.Counter
	httpDuration    *prometheus.HistogramVec
}

// New registers collectors on registerer. A collector that is already
// registered is reused.
func New(registerer prometheus.Registerer, gatherer prometheus.Gatherer) *Metrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	return &Metrics{
		gatherer: gatherer,
		ordersSubmitted: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "foodstall_orders_submitted_total",
			Help: "Orders accepted by the store",
		}, []string{"dine_option"}),
		submitFailures: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "foodstall_order_submit_failures_total",
			Help: "Rejected order submissions",
		}, []string{"reason"}),
		statusUpdates: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "foodstall_order_status_updates_total",
			Help: "Kitchen status updates",
		}, []string{"status"}),
		payments: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "foodstall_order_payments_total",
			Help: "Recorded payments",
		}, []string{"method"}),
		basketItems: registerCounter(registerer, prometheus.CounterOpts{
			Name: "foodstall_basket_items_added_total",
			Help: "Lines added to customer baskets",
		}),
		httpDuration: registerHistogramVec(registerer, prometheus.HistogramOpts{
			Name:    "foodstall_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "route", "status"}),
	}
}

func (m *Metrics) OrderSubmitted(dineOption string) {
	m.ordersSubmitted.WithLabelValues(dineOption).Inc()
}

func (m *Metrics) SubmitFailed(reason string) {
	m.submitFailures.WithLabelValues(reason).Inc()
}

func (m *Metrics) StatusUpdated(status string) {
	m.statusUpdates.WithLabelValues(status).Inc()
}

func (m *Metrics) PaymentRecorded(method string) {
	m.payments.WithLabelValues(method).Inc()
}

func (m *Metrics) BasketItemAdded() {
	m.basketItems.Inc()
}

// ObserveRequest records latency of one HTTP request.
func (m *Metrics) ObserveRequest(method, route string, status int, elapsed time.Duration) {
	m.httpDuration.WithLabelValues(method, route, fmt.Sprint(status)).Observe(elapsed.Seconds())
}

// Handler serves the gathered metrics.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.gatherer, promhttp.HandlerOpts{})
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(prometheus.Counter); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogramVec(registerer prometheus.Registerer, opts prometheus.HistogramOpts, labels []string) *prometheus.HistogramVec {
	collector := prometheus.NewHistogramVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing
			}
		}
		panic(fmt.Sprintf("register histogram vec %q: %v", opts.Name, err))
	}
	return collector
}
