package resolver

import (
	corev1 "k8s.io/api/core/v1"
	"k8s.io/utils/ptr"

	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
)

const (
	// DefaultImage is the WebLogic image used when the domain doesn't name one.
	DefaultImage = "container-registry.oracle.com/middleware/weblogic:12.2.1.3"

	// DefaultImagePullPolicy is applied when the domain doesn't set a policy.
	DefaultImagePullPolicy = corev1.PullIfNotPresent

	// DefaultClusterReplicas is the number of managed servers started per
	// cluster when neither the cluster nor the domain sets a count.
	DefaultClusterReplicas int32 = 2

	// DefaultServerStartPolicy is the domain-scope start policy when unset.
	// Narrower scopes inherit it through resolution.
	DefaultServerStartPolicy = weblogicv1alpha1.StartPolicyIfNeeded

	// DefaultServerStartState is the domain-scope start state when unset.
	DefaultServerStartState = weblogicv1alpha1.StartStateRunning
)

// PopulateDomainDefaults applies static defaults to the Domain spec. It is
// safe to call during admission: it touches only the object itself and makes
// no API calls.
//
// Defaults are applied at the domain scope only; clusters and servers pick
// them up through the normal fill-in walk, so an explicit value at any
// narrower scope still wins.
func PopulateDomainDefaults(domain *weblogicv1alpha1.Domain) {
	if domain.Spec.DomainUID == "" {
		domain.Spec.DomainUID = domain.Name
	}
	if domain.Spec.Image == "" {
		domain.Spec.Image = DefaultImage
	}
	if domain.Spec.ImagePullPolicy == "" {
		domain.Spec.ImagePullPolicy = DefaultImagePullPolicy
	}
	if domain.Spec.Replicas == nil {
		domain.Spec.Replicas = ptr.To(DefaultClusterReplicas)
	}
	if domain.Spec.ServerStartPolicy == "" {
		domain.Spec.ServerStartPolicy = DefaultServerStartPolicy
	}
	if domain.Spec.ServerStartState == "" {
		domain.Spec.ServerStartState = DefaultServerStartState
	}
}
