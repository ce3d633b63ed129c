/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package v1alpha1

import (
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
)

// ============================================================================
// Domain Spec (User-editable API)
// ============================================================================

// DomainSpec defines the desired state of Domain. The embedded
// BaseConfiguration is the broadest scope of the configuration hierarchy;
// clusters and individual servers inherit from it.
type DomainSpec struct {
	BaseConfiguration `json:",inline"`

	// DomainUID is the unique identifier of the WebLogic domain. Defaults to
	// the name of the Domain resource.
	// +kubebuilder:validation:MaxLength=63
	// +optional
	DomainUID string `json:"domainUID,omitempty"`

	// Image is the WebLogic container image.
	// +optional
	Image string `json:"image,omitempty"`

	// ImagePullPolicy overrides the default image pull policy.
	// +kubebuilder:validation:Enum=Always;Never;IfNotPresent
	// +optional
	ImagePullPolicy corev1.PullPolicy `json:"imagePullPolicy,omitempty"`

	// ImagePullSecrets is an optional list of references to secrets in the
	// same namespace to use for pulling the WebLogic image.
	// +optional
	ImagePullSecrets []corev1.LocalObjectReference `json:"imagePullSecrets,omitempty"`

	// Replicas is the default number of managed servers to run per cluster,
	// for clusters that don't specify their own count.
	// +kubebuilder:validation:Minimum=0
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	// AdminServer configures the admin server.
	// +optional
	AdminServer *AdminServerSpec `json:"adminServer,omitempty"`

	// ManagedServers configures individual managed servers by name.
	// +optional
	ManagedServers []ManagedServerSpec `json:"managedServers,omitempty"`

	// Clusters configures WebLogic clusters by name.
	// +optional
	Clusters []ClusterSpec `json:"clusters,omitempty"`
}

// AdminServerSpec configures the admin server scope.
type AdminServerSpec struct {
	BaseConfiguration `json:",inline"`
}

// ManagedServerSpec configures a single managed server, the most specific
// scope of the hierarchy.
type ManagedServerSpec struct {
	// ServerName is the name of the managed server in the WebLogic
	// configuration.
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:MaxLength=63
	ServerName string `json:"serverName"`

	// ClusterName names the cluster this server belongs to. Standalone
	// servers leave it empty and inherit directly from the domain scope.
	// +optional
	ClusterName string `json:"clusterName,omitempty"`

	BaseConfiguration `json:",inline"`
}

// ClusterSpec configures a WebLogic cluster, the scope between the domain and
// its member servers.
type ClusterSpec struct {
	// ClusterName is the name of the cluster in the WebLogic configuration.
	// +kubebuilder:validation:MinLength=1
	// +kubebuilder:validation:MaxLength=63
	ClusterName string `json:"clusterName"`

	// Replicas is the number of managed servers to run in this cluster.
	// +kubebuilder:validation:Minimum=0
	// +optional
	Replicas *int32 `json:"replicas,omitempty"`

	BaseConfiguration `json:",inline"`
}

// ============================================================================
// Domain Status
// ============================================================================

// DomainStatus defines the observed state of Domain.
type DomainStatus struct {
	// ObservedGeneration is the generation most recently reconciled.
	// +optional
	ObservedGeneration int64 `json:"observedGeneration,omitempty"`

	// Message is a human-readable summary of the domain's state.
	// +optional
	Message string `json:"message,omitempty"`

	// Servers summarizes the resolved configuration of each known server.
	// +optional
	Servers []ServerStatus `json:"servers,omitempty"`
}

// ServerStatus is the resolved configuration summary for one server.
type ServerStatus struct {
	// ServerName is the name of the server.
	ServerName string `json:"serverName"`

	// ClusterName is the cluster this server belongs to, if any.
	// +optional
	ClusterName string `json:"clusterName,omitempty"`

	// StartPolicy is the server's effective start policy after resolution.
	// +optional
	StartPolicy ServerStartPolicy `json:"startPolicy,omitempty"`

	// DesiredState is the server's effective start state after resolution.
	// +optional
	DesiredState ServerStartState `json:"desiredState,omitempty"`
}

// ============================================================================
// Kind Definition and registration
// ============================================================================

// +kubebuilder:object:root=true
// +kubebuilder:subresource:status
// +kubebuilder:resource:scope=Namespaced

// Domain is the Schema for the domains API
// +kubebuilder:resource:shortName=dom
type Domain struct {
	metav1.TypeMeta   `json:",inline"`
	metav1.ObjectMeta `json:"metadata,omitempty"`

	Spec   DomainSpec   `json:"spec,omitempty"`
	Status DomainStatus `json:"status,omitempty"`
}

// +kubebuilder:object:root=true

// DomainList contains a list of Domain
type DomainList struct {
	metav1.TypeMeta `json:",inline"`
	metav1.ListMeta `json:"metadata,omitempty"`
	Items           []Domain `json:"items"`
}

func init() {
	SchemeBuilder.Register(&Domain{}, &DomainList{})
}

// EffectiveDomainUID returns the domain's UID, falling back to the resource
// name when the spec leaves it unset.
func (d *Domain) EffectiveDomainUID() string {
	if d.Spec.DomainUID != "" {
		return d.Spec.DomainUID
	}
	return d.Name
}

// Cluster returns the cluster scope with the given name, or nil if the
// domain doesn't declare one.
func (d *Domain) Cluster(name string) *ClusterSpec {
	if name == "" {
		return nil
	}
	for i := range d.Spec.Clusters {
		if d.Spec.Clusters[i].ClusterName == name {
			return &d.Spec.Clusters[i]
		}
	}
	return nil
}

// ManagedServer returns the managed server scope with the given name, or nil
// if the domain doesn't declare one.
func (d *Domain) ManagedServer(name string) *ManagedServerSpec {
	for i := range d.Spec.ManagedServers {
		if d.Spec.ManagedServers[i].ServerName == name {
			return &d.Spec.ManagedServers[i]
		}
	}
	return nil
}
