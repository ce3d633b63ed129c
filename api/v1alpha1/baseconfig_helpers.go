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
)

// Convenience mutators that reach through to the embedded ServerPod, so
// callers authoring a single scope don't have to manipulate the pod
// configuration directly.

// AddEnvironmentVariable adds one name/value environment variable to the
// server pod.
func (b *BaseConfiguration) AddEnvironmentVariable(name, value string) {
	b.ServerPod.AddEnvVar(corev1.EnvVar{Name: name, Value: value})
}

// SetLivenessProbe tunes the server pod's liveness probe timing.
func (b *BaseConfiguration) SetLivenessProbe(initialDelay, timeout, period int32) {
	b.ServerPod.SetLivenessProbeTuning(initialDelay, timeout, period)
}

// SetReadinessProbe tunes the server pod's readiness probe timing.
func (b *BaseConfiguration) SetReadinessProbe(initialDelay, timeout, period int32) {
	b.ServerPod.SetReadinessProbeTuning(initialDelay, timeout, period)
}

// AddNodeSelector adds one node selector requirement to the server pod.
func (b *BaseConfiguration) AddNodeSelector(labelKey, labelValue string) {
	b.ServerPod.AddNodeSelector(labelKey, labelValue)
}

// AddRequestRequirement adds one compute resource request to the server pod.
func (b *BaseConfiguration) AddRequestRequirement(name corev1.ResourceName, quantity resource.Quantity) {
	b.ServerPod.AddRequestRequirement(name, quantity)
}

// AddLimitRequirement adds one compute resource limit to the server pod.
func (b *BaseConfiguration) AddLimitRequirement(name corev1.ResourceName, quantity resource.Quantity) {
	b.ServerPod.AddLimitRequirement(name, quantity)
}

// SetPodSecurityContext replaces the pod-level security context.
func (b *BaseConfiguration) SetPodSecurityContext(sc *corev1.PodSecurityContext) {
	b.ServerPod.PodSecurityContext = sc
}

// SetContainerSecurityContext replaces the container-level security context.
func (b *BaseConfiguration) SetContainerSecurityContext(sc *corev1.SecurityContext) {
	b.ServerPod.ContainerSecurityContext = sc
}

// AddAdditionalVolume adds one host-path volume to the server pod.
func (b *BaseConfiguration) AddAdditionalVolume(name, path string) {
	b.ServerPod.AddAdditionalVolume(name, path)
}

// AddAdditionalVolumeMount adds one volume mount to the server container.
func (b *BaseConfiguration) AddAdditionalVolumeMount(name, path string) {
	b.ServerPod.AddAdditionalVolumeMount(name, path)
}

// AddPodLabel adds one label to the server pod.
func (b *BaseConfiguration) AddPodLabel(name, value string) {
	b.ServerPod.AddPodLabel(name, value)
}

// AddPodAnnotation adds one annotation to the server pod.
func (b *BaseConfiguration) AddPodAnnotation(name, value string) {
	b.ServerPod.AddPodAnnotation(name, value)
}
