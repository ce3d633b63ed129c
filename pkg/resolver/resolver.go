package resolver

import (
	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
)

// EffectiveServerConfig computes the fully resolved configuration for the
// named managed server: the server scope, filled in from its cluster scope
// (if it belongs to one), filled in from the domain scope.
//
// The domain is read-only; the returned configuration shares no mutable state
// with it. A server the domain doesn't declare explicitly still resolves,
// starting from an empty server scope.
func EffectiveServerConfig(
	domain *weblogicv1alpha1.Domain,
	serverName string,
) *weblogicv1alpha1.BaseConfiguration {
	var cfg *weblogicv1alpha1.BaseConfiguration
	var clusterName string

	if server := domain.ManagedServer(serverName); server != nil {
		cfg = server.BaseConfiguration.DeepCopy()
		clusterName = server.ClusterName
	} else {
		cfg = &weblogicv1alpha1.BaseConfiguration{}
	}

	if cluster := domain.Cluster(clusterName); cluster != nil {
		cfg.FillInFrom(&cluster.BaseConfiguration)
	}
	cfg.FillInFrom(&domain.Spec.BaseConfiguration)

	return cfg
}

// EffectiveClusterConfig computes the resolved configuration of a cluster
// scope: the cluster, filled in from the domain scope. Returns nil when the
// domain doesn't declare the cluster.
func EffectiveClusterConfig(
	domain *weblogicv1alpha1.Domain,
	clusterName string,
) *weblogicv1alpha1.BaseConfiguration {
	cluster := domain.Cluster(clusterName)
	if cluster == nil {
		return nil
	}

	cfg := cluster.BaseConfiguration.DeepCopy()
	cfg.FillInFrom(&domain.Spec.BaseConfiguration)
	return cfg
}

// EffectiveAdminServerConfig computes the resolved configuration of the admin
// server: the admin server scope, filled in from the domain scope.
func EffectiveAdminServerConfig(
	domain *weblogicv1alpha1.Domain,
) *weblogicv1alpha1.BaseConfiguration {
	var cfg *weblogicv1alpha1.BaseConfiguration

	if domain.Spec.AdminServer != nil {
		cfg = domain.Spec.AdminServer.BaseConfiguration.DeepCopy()
	} else {
		cfg = &weblogicv1alpha1.BaseConfiguration{}
	}

	cfg.FillInFrom(&domain.Spec.BaseConfiguration)
	return cfg
}

// ClusterReplicas returns the effective replica count for the named cluster,
// falling back to the domain-wide default when the cluster doesn't set one.
func ClusterReplicas(domain *weblogicv1alpha1.Domain, clusterName string) int32 {
	if cluster := domain.Cluster(clusterName); cluster != nil && cluster.Replicas != nil {
		return *cluster.Replicas
	}
	if domain.Spec.Replicas != nil {
		return *domain.Spec.Replicas
	}
	return DefaultClusterReplicas
}
