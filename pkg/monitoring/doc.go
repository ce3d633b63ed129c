// Package monitoring provides Prometheus metrics and recording helpers for
// the WebLogic domain operator. It exposes domain-specific gauges and
// counters that complement the generic controller-runtime metrics already
// registered by the framework.
//
// All metrics follow the naming convention weblogic_operator_<metric>_<unit>
// and are registered against controller-runtime's default Prometheus registry
// on import.
//
// Usage in controllers:
//
//	monitoring.SetDomainInfo(domain.Name, domain.Namespace, domain.EffectiveDomainUID())
//	monitoring.SetDomainTopology(domain.Name, domain.Namespace, clusters, servers)
//
// Usage in webhooks:
//
//	monitoring.RecordWebhookRequest("CREATE", "Domain", err, elapsed)
package monitoring
