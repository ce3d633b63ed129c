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

// ============================================================================
// Start Policy / Start State Enums
// ============================================================================

// ServerStartPolicy is the strategy for deciding whether to start a server.
//
// An empty value means "not specified at this scope" and is eligible to be
// filled in from a broader scope during resolution. Out-of-set values are a
// validation concern (see pkg/resolver); the merge treats the field as an
// opaque string.
//
// +kubebuilder:validation:Enum=ALWAYS;NEVER;IF_NEEDED;ADMIN_ONLY
type ServerStartPolicy string

const (
	// StartPolicyAlways starts the server unconditionally.
	StartPolicyAlways ServerStartPolicy = "ALWAYS"

	// StartPolicyNever keeps the server stopped. By convention this reads as
	// "no opinion, do not start" and a broader scope may still override it.
	StartPolicyNever ServerStartPolicy = "NEVER"

	// StartPolicyIfNeeded starts the server when required to reach the
	// cluster's replica count.
	StartPolicyIfNeeded ServerStartPolicy = "IF_NEEDED"

	// StartPolicyAdminOnly starts only the admin server. It does not
	// propagate to narrower scopes during resolution.
	StartPolicyAdminOnly ServerStartPolicy = "ADMIN_ONLY"
)

// ServerStartState is the state in which a server is to be started.
//
// +kubebuilder:validation:Enum=RUNNING;ADMIN
type ServerStartState string

const (
	// StartStateRunning starts the server in the running state.
	StartStateRunning ServerStartState = "RUNNING"

	// StartStateAdmin starts the server in the admin state.
	StartStateAdmin ServerStartState = "ADMIN"
)

// ============================================================================
// BaseConfiguration
// ============================================================================

// BaseConfiguration holds the configuration values shared by every scope of
// the domain hierarchy: the domain itself, clusters, managed servers, and the
// admin server.
type BaseConfiguration struct {
	// ServerStartState is the state in which the server is to be started.
	// Use ADMIN if the server should start in the admin state.
	// Defaults to RUNNING.
	// +optional
	ServerStartState ServerStartState `json:"serverStartState,omitempty"`

	// ServerStartPolicy is the strategy for deciding whether to start the
	// server. Legal values are ALWAYS, NEVER, IF_NEEDED, and ADMIN_ONLY.
	// +optional
	ServerStartPolicy ServerStartPolicy `json:"serverStartPolicy,omitempty"`

	// ServerPod configures the Kubernetes pod generated for the server.
	// +optional
	ServerPod ServerPod `json:"serverPod,omitempty"`
}

// FillInFrom fills in any undefined settings in this configuration from a
// broader-scope configuration.
//
// other is read-only: every value copied in is deep-copied, so later edits to
// the receiver never leak into the broader scope (or vice versa).
func (b *BaseConfiguration) FillInFrom(other *BaseConfiguration) {
	if other == nil {
		return
	}

	if b.ServerStartState == "" {
		b.ServerStartState = other.ServerStartState
	}
	if b.overrideStartPolicyFrom(other) {
		b.ServerStartPolicy = other.ServerStartPolicy
	}

	b.ServerPod.FillInFrom(&other.ServerPod)
}

// overrideStartPolicyFrom reports whether the broader scope's start policy
// replaces the receiver's.
//
// A broader scope that sets no policy contributes nothing, and ADMIN_ONLY
// never propagates down, even into an unset policy. Otherwise the broader
// scope wins when the receiver has no policy or the receiver's policy is
// NEVER.
func (b *BaseConfiguration) overrideStartPolicyFrom(other *BaseConfiguration) bool {
	if other.ServerStartPolicy == "" || other.ServerStartPolicy == StartPolicyAdminOnly {
		return false
	}
	return b.ServerStartPolicy == "" || b.ServerStartPolicy == StartPolicyNever
}
