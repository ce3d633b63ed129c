package monitoring

import "time"

// SetDomainInfo sets the info-style gauge for a Domain.
// Old domain_uid labels are automatically cleaned up via DeletePartialMatch.
func SetDomainInfo(name, namespace, domainUID string) {
	domainInfo.DeletePartialMatch(map[string]string{
		"name":      name,
		"namespace": namespace,
	})
	domainInfo.WithLabelValues(name, namespace, domainUID).Set(1)
}

// SetDomainTopology sets the cluster and server count gauges for a Domain.
func SetDomainTopology(domain, namespace string, clusters, servers int) {
	domainClustersTotal.WithLabelValues(domain, namespace).Set(float64(clusters))
	domainServersTotal.WithLabelValues(domain, namespace).Set(float64(servers))
}

// SetDomainServersByPolicy sets the per-start-policy server count gauges for
// a Domain. Policies no longer present are cleaned up first.
func SetDomainServersByPolicy(domain, namespace string, counts map[string]int) {
	domainServersByPolicy.DeletePartialMatch(map[string]string{
		"domain":    domain,
		"namespace": namespace,
	})
	for policy, n := range counts {
		domainServersByPolicy.WithLabelValues(domain, namespace, policy).Set(float64(n))
	}
}

// DeleteDomainMetrics removes all gauges for a Domain that no longer exists.
func DeleteDomainMetrics(name, namespace string) {
	domainInfo.DeletePartialMatch(map[string]string{"name": name, "namespace": namespace})
	domainClustersTotal.DeleteLabelValues(name, namespace)
	domainServersTotal.DeleteLabelValues(name, namespace)
	domainServersByPolicy.DeletePartialMatch(map[string]string{"domain": name, "namespace": namespace})
}

// RecordWebhookRequest records a webhook admission request's result and duration.
func RecordWebhookRequest(operation, resource string, err error, duration time.Duration) {
	result := "success"
	if err != nil {
		result = "error"
	}
	webhookRequestTotal.WithLabelValues(operation, resource, result).Inc()
	webhookRequestDuration.WithLabelValues(operation, resource).Observe(duration.Seconds())
}
