package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	RequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "property_admin_requests_total",
			Help: "Update requests by response status",
		},
		[]string{"status"},
	)

	MutationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "property_admin_mutations_total",
			Help: "Applied mutations by action",
		},
		[]string{"action"},
	)

	WebhookFailuresTotal = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "property_admin_webhook_failures_total",
			Help: "Redeploy webhook calls that failed",
		},
	)
)

// NewMux serves /metrics and nothing else. The metrics listener must never
// share a mux with the application listener, or each port would expose the
// other's routes.
func NewMux() *http.ServeMux {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())
	return mux
}

func Start(port string) {
	prometheus.MustRegister(RequestsTotal, MutationsTotal, WebhookFailuresTotal)
	go http.ListenAndServe(":"+port, NewMux())
}
