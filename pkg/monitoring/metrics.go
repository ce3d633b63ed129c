package monitoring

import (
	"github.com/prometheus/client_golang/prometheus"
	"sigs.k8s.io/controller-runtime/pkg/metrics"
)

// Domain-specific metric collectors.
//
// These complement the generic controller-runtime metrics (reconcile counts,
// durations, work queue depth, etc.) with operator-specific state that the
// framework cannot know about.
var (
	domainInfo = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "weblogic_operator_domain_info",
			Help: "Info-style metric for Domain discovery and UID tracking. Always 1.",
		},
		[]string{"name", "namespace", "domain_uid"},
	)

	domainClustersTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "weblogic_operator_domain_clusters_total",
			Help: "Number of clusters configured in a Domain.",
		},
		[]string{"domain", "namespace"},
	)

	domainServersTotal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "weblogic_operator_domain_servers_total",
			Help: "Number of servers with resolved configuration in a Domain.",
		},
		[]string{"domain", "namespace"},
	)

	domainServersByPolicy = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "weblogic_operator_domain_servers_by_start_policy",
			Help: "Number of servers per effective start policy in a Domain.",
		},
		[]string{"domain", "namespace", "policy"},
	)

	webhookRequestTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "weblogic_operator_webhook_request_total",
			Help: "Total number of webhook admission requests.",
		},
		[]string{"operation", "resource", "result"},
	)

	webhookRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "weblogic_operator_webhook_request_duration_seconds",
			Help:    "Latency of webhook admission handling in seconds.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation", "resource"},
	)
)

func init() {
	metrics.Registry.MustRegister(
		domainInfo,
		domainClustersTotal,
		domainServersTotal,
		domainServersByPolicy,
		webhookRequestTotal,
		webhookRequestDuration,
	)
}

// Collectors returns all registered metric collectors. This is useful for
// testing that metrics are properly registered.
func Collectors() []prometheus.Collector {
	return []prometheus.Collector{
		domainInfo,
		domainClustersTotal,
		domainServersTotal,
		domainServersByPolicy,
		webhookRequestTotal,
		webhookRequestDuration,
	}
}
