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
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/utils/ptr"
)

// ============================================================================
// ServerPod
// ============================================================================

// ServerPod describes the Kubernetes pod generated for a WebLogic server.
// Each field follows one of three inheritance policies during resolution:
// scalar fields are filled only if unset, lists are appended to, and maps are
// unioned key-wise with the narrower scope winning on conflict.
type ServerPod struct {
	// Env are environment variables to inject into the server container.
	// +optional
	Env []corev1.EnvVar `json:"env,omitempty"`

	// LivenessProbe tunes the timing of the server liveness probe.
	// +optional
	LivenessProbe *ProbeTuning `json:"livenessProbe,omitempty"`

	// ReadinessProbe tunes the timing of the server readiness probe.
	// +optional
	ReadinessProbe *ProbeTuning `json:"readinessProbe,omitempty"`

	// NodeSelector constrains which nodes the pod may be scheduled on.
	// +optional
	// +kubebuilder:validation:MaxProperties=64
	NodeSelector map[string]string `json:"nodeSelector,omitempty"`

	// Resources defines the compute resource requirements of the server
	// container.
	// +optional
	Resources corev1.ResourceRequirements `json:"resources,omitempty"`

	// PodSecurityContext is the pod-level security context.
	// +optional
	PodSecurityContext *corev1.PodSecurityContext `json:"podSecurityContext,omitempty"`

	// ContainerSecurityContext is the security context of the server
	// container.
	// +optional
	ContainerSecurityContext *corev1.SecurityContext `json:"containerSecurityContext,omitempty"`

	// AdditionalVolumes are extra volumes added to the pod.
	// +optional
	AdditionalVolumes []corev1.Volume `json:"additionalVolumes,omitempty"`

	// AdditionalVolumeMounts are extra mounts added to the server container.
	// +optional
	AdditionalVolumeMounts []corev1.VolumeMount `json:"additionalVolumeMounts,omitempty"`

	// Labels are additional labels to add to the pod.
	// +optional
	// +kubebuilder:validation:MaxProperties=64
	Labels map[string]string `json:"labels,omitempty"`

	// Annotations are additional annotations to add to the pod.
	// +optional
	// +kubebuilder:validation:MaxProperties=64
	Annotations map[string]string `json:"annotations,omitempty"`
}

// ProbeTuning adjusts the timing of a liveness or readiness probe. Fields
// left nil fall back to the container defaults.
type ProbeTuning struct {
	// InitialDelaySeconds is the delay before the first probe.
	// +kubebuilder:validation:Minimum=0
	// +optional
	InitialDelaySeconds *int32 `json:"initialDelaySeconds,omitempty"`

	// TimeoutSeconds is the per-probe timeout.
	// +kubebuilder:validation:Minimum=1
	// +optional
	TimeoutSeconds *int32 `json:"timeoutSeconds,omitempty"`

	// PeriodSeconds is the interval between probes.
	// +kubebuilder:validation:Minimum=1
	// +optional
	PeriodSeconds *int32 `json:"periodSeconds,omitempty"`
}

// ============================================================================
// Merge
// ============================================================================

// FillInFrom fills in any undefined settings in this pod configuration from a
// broader-scope pod configuration.
//
// Scalar fields are copied whole when the receiver's value is nil. List
// fields get the broader scope's entries appended after the receiver's own,
// in declaration order, with no de-duplication. Map fields gain only the keys
// the receiver doesn't already have. other is never mutated and nothing in it
// ends up aliased by the receiver.
func (p *ServerPod) FillInFrom(other *ServerPod) {
	if other == nil {
		return
	}

	if p.LivenessProbe == nil {
		p.LivenessProbe = other.LivenessProbe.DeepCopy()
	}
	if p.ReadinessProbe == nil {
		p.ReadinessProbe = other.ReadinessProbe.DeepCopy()
	}
	if p.PodSecurityContext == nil {
		p.PodSecurityContext = other.PodSecurityContext.DeepCopy()
	}
	if p.ContainerSecurityContext == nil {
		p.ContainerSecurityContext = other.ContainerSecurityContext.DeepCopy()
	}

	for i := range other.Env {
		p.Env = append(p.Env, *other.Env[i].DeepCopy())
	}
	for i := range other.AdditionalVolumes {
		p.AdditionalVolumes = append(p.AdditionalVolumes, *other.AdditionalVolumes[i].DeepCopy())
	}
	for i := range other.AdditionalVolumeMounts {
		p.AdditionalVolumeMounts = append(
			p.AdditionalVolumeMounts,
			*other.AdditionalVolumeMounts[i].DeepCopy(),
		)
	}

	p.NodeSelector = fillInMap(p.NodeSelector, other.NodeSelector)
	p.Labels = fillInMap(p.Labels, other.Labels)
	p.Annotations = fillInMap(p.Annotations, other.Annotations)
	p.Resources.Requests = fillInResourceList(p.Resources.Requests, other.Resources.Requests)
	p.Resources.Limits = fillInResourceList(p.Resources.Limits, other.Resources.Limits)
}

// fillInMap inserts every key present in other but absent from m. Existing
// keys are left untouched.
func fillInMap(m, other map[string]string) map[string]string {
	for k, v := range other {
		if m == nil {
			m = make(map[string]string)
		}
		if _, ok := m[k]; !ok {
			m[k] = v
		}
	}
	return m
}

// fillInResourceList is fillInMap for resource quantities. Quantities are
// deep-copied so the two scopes never share amount state.
func fillInResourceList(rl, other corev1.ResourceList) corev1.ResourceList {
	for k, v := range other {
		if rl == nil {
			rl = corev1.ResourceList{}
		}
		if _, ok := rl[k]; !ok {
			rl[k] = v.DeepCopy()
		}
	}
	return rl
}

// ============================================================================
// Mutators
// ============================================================================

// AddEnvVar appends one environment variable.
func (p *ServerPod) AddEnvVar(ev corev1.EnvVar) {
	p.Env = append(p.Env, ev)
}

// SetLivenessProbeTuning replaces the liveness probe tuning.
func (p *ServerPod) SetLivenessProbeTuning(initialDelay, timeout, period int32) {
	p.LivenessProbe = &ProbeTuning{
		InitialDelaySeconds: ptr.To(initialDelay),
		TimeoutSeconds:      ptr.To(timeout),
		PeriodSeconds:       ptr.To(period),
	}
}

// SetReadinessProbeTuning replaces the readiness probe tuning.
func (p *ServerPod) SetReadinessProbeTuning(initialDelay, timeout, period int32) {
	p.ReadinessProbe = &ProbeTuning{
		InitialDelaySeconds: ptr.To(initialDelay),
		TimeoutSeconds:      ptr.To(timeout),
		PeriodSeconds:       ptr.To(period),
	}
}

// AddNodeSelector adds one node selector requirement.
func (p *ServerPod) AddNodeSelector(key, value string) {
	if p.NodeSelector == nil {
		p.NodeSelector = make(map[string]string)
	}
	p.NodeSelector[key] = value
}

// AddRequestRequirement adds one resource request.
func (p *ServerPod) AddRequestRequirement(name corev1.ResourceName, quantity resource.Quantity) {
	if p.Resources.Requests == nil {
		p.Resources.Requests = corev1.ResourceList{}
	}
	p.Resources.Requests[name] = quantity
}

// AddLimitRequirement adds one resource limit.
func (p *ServerPod) AddLimitRequirement(name corev1.ResourceName, quantity resource.Quantity) {
	if p.Resources.Limits == nil {
		p.Resources.Limits = corev1.ResourceList{}
	}
	p.Resources.Limits[name] = quantity
}

// AddAdditionalVolume adds one host-path volume.
func (p *ServerPod) AddAdditionalVolume(name, path string) {
	p.AdditionalVolumes = append(p.AdditionalVolumes, corev1.Volume{
		Name: name,
		VolumeSource: corev1.VolumeSource{
			HostPath: &corev1.HostPathVolumeSource{Path: path},
		},
	})
}

// AddAdditionalVolumeMount adds one volume mount.
func (p *ServerPod) AddAdditionalVolumeMount(name, path string) {
	p.AdditionalVolumeMounts = append(p.AdditionalVolumeMounts, corev1.VolumeMount{
		Name:      name,
		MountPath: path,
	})
}

// AddPodLabel adds one pod label.
func (p *ServerPod) AddPodLabel(name, value string) {
	if p.Labels == nil {
		p.Labels = make(map[string]string)
	}
	p.Labels[name] = value
}

// AddPodAnnotation adds one pod annotation.
func (p *ServerPod) AddPodAnnotation(name, value string) {
	if p.Annotations == nil {
		p.Annotations = make(map[string]string)
	}
	p.Annotations[name] = value
}
