package resolver

import (
	"fmt"
	"slices"

	"k8s.io/apimachinery/pkg/util/validation/field"

	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
)

var (
	validStartPolicies = []weblogicv1alpha1.ServerStartPolicy{
		weblogicv1alpha1.StartPolicyAlways,
		weblogicv1alpha1.StartPolicyNever,
		weblogicv1alpha1.StartPolicyIfNeeded,
		weblogicv1alpha1.StartPolicyAdminOnly,
	}

	validStartStates = []weblogicv1alpha1.ServerStartState{
		weblogicv1alpha1.StartStateRunning,
		weblogicv1alpha1.StartStateAdmin,
	}
)

// ValidateDomain checks the Domain's configuration hierarchy: enum-valued
// fields against their closed value sets, uniqueness of cluster and server
// names, and that every cluster reference points at a declared cluster.
//
// Validation is deliberately separate from the merge. The merge treats the
// enum fields as opaque strings and never fails; a value outside the closed
// set is caught here before (or independent of) resolution.
func ValidateDomain(domain *weblogicv1alpha1.Domain) field.ErrorList {
	var errs field.ErrorList
	specPath := field.NewPath("spec")

	errs = append(errs, validateBaseConfiguration(&domain.Spec.BaseConfiguration, specPath)...)

	if domain.Spec.AdminServer != nil {
		errs = append(errs, validateBaseConfiguration(
			&domain.Spec.AdminServer.BaseConfiguration,
			specPath.Child("adminServer"),
		)...)
	}

	clusterNames := make(map[string]struct{}, len(domain.Spec.Clusters))
	for i := range domain.Spec.Clusters {
		cluster := &domain.Spec.Clusters[i]
		clusterPath := specPath.Child("clusters").Index(i)

		if _, dup := clusterNames[cluster.ClusterName]; dup {
			errs = append(errs, field.Duplicate(clusterPath.Child("clusterName"), cluster.ClusterName))
		}
		clusterNames[cluster.ClusterName] = struct{}{}

		errs = append(errs, validateBaseConfiguration(&cluster.BaseConfiguration, clusterPath)...)
	}

	serverNames := make(map[string]struct{}, len(domain.Spec.ManagedServers))
	for i := range domain.Spec.ManagedServers {
		server := &domain.Spec.ManagedServers[i]
		serverPath := specPath.Child("managedServers").Index(i)

		if _, dup := serverNames[server.ServerName]; dup {
			errs = append(errs, field.Duplicate(serverPath.Child("serverName"), server.ServerName))
		}
		serverNames[server.ServerName] = struct{}{}

		if server.ClusterName != "" {
			if _, ok := clusterNames[server.ClusterName]; !ok {
				errs = append(errs, field.Invalid(
					serverPath.Child("clusterName"),
					server.ClusterName,
					fmt.Sprintf("cluster %q is not declared in spec.clusters", server.ClusterName),
				))
			}
		}

		errs = append(errs, validateBaseConfiguration(&server.BaseConfiguration, serverPath)...)
	}

	return errs
}

func validateBaseConfiguration(
	base *weblogicv1alpha1.BaseConfiguration,
	fldPath *field.Path,
) field.ErrorList {
	var errs field.ErrorList

	if base.ServerStartPolicy != "" && !slices.Contains(validStartPolicies, base.ServerStartPolicy) {
		errs = append(errs, field.NotSupported(
			fldPath.Child("serverStartPolicy"),
			base.ServerStartPolicy,
			validStartPolicies,
		))
	}
	if base.ServerStartState != "" && !slices.Contains(validStartStates, base.ServerStartState) {
		errs = append(errs, field.NotSupported(
			fldPath.Child("serverStartState"),
			base.ServerStartState,
			validStartStates,
		))
	}

	return errs
}
