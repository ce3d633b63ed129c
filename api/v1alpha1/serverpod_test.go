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
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	corev1 "k8s.io/api/core/v1"
	"k8s.io/apimachinery/pkg/api/resource"
	"k8s.io/utils/ptr"
)

func TestServerPod_FillInFrom_Scalars(t *testing.T) {
	t.Parallel()

	probe := &ProbeTuning{
		InitialDelaySeconds: ptr.To(int32(5)),
		TimeoutSeconds:      ptr.To(int32(3)),
		PeriodSeconds:       ptr.To(int32(10)),
	}
	podSC := &corev1.PodSecurityContext{RunAsNonRoot: ptr.To(true)}
	containerSC := &corev1.SecurityContext{ReadOnlyRootFilesystem: ptr.To(true)}

	tests := map[string]struct {
		receiver ServerPod
		fallback ServerPod
		want     ServerPod
	}{
		"Unset Probes Inherit Whole Value": {
			fallback: ServerPod{LivenessProbe: probe, ReadinessProbe: probe},
			want:     ServerPod{LivenessProbe: probe, ReadinessProbe: probe},
		},
		"Set Probe Not Partially Merged": {
			receiver: ServerPod{
				LivenessProbe: &ProbeTuning{InitialDelaySeconds: ptr.To(int32(30))},
			},
			fallback: ServerPod{LivenessProbe: probe},
			want: ServerPod{
				LivenessProbe: &ProbeTuning{InitialDelaySeconds: ptr.To(int32(30))},
			},
		},
		"Security Contexts Inherit": {
			fallback: ServerPod{PodSecurityContext: podSC, ContainerSecurityContext: containerSC},
			want:     ServerPod{PodSecurityContext: podSC, ContainerSecurityContext: containerSC},
		},
		"Set Security Context Wins": {
			receiver: ServerPod{PodSecurityContext: &corev1.PodSecurityContext{}},
			fallback: ServerPod{PodSecurityContext: podSC},
			want:     ServerPod{PodSecurityContext: &corev1.PodSecurityContext{}},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			got := tc.receiver.DeepCopy()
			got.FillInFrom(&tc.fallback)

			if diff := cmp.Diff(&tc.want, got, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("Pod Diff (-want +got):\n%s", diff)
			}
		})
	}
}

func TestServerPod_FillInFrom_InheritedProbeIsIndependent(t *testing.T) {
	t.Parallel()

	fallback := &ServerPod{}
	fallback.SetLivenessProbeTuning(5, 3, 10)

	pod := &ServerPod{}
	pod.FillInFrom(fallback)

	// Mutating the fallback afterwards must not change the resolved pod.
	*fallback.LivenessProbe.InitialDelaySeconds = 99

	if got, want := *pod.LivenessProbe.InitialDelaySeconds, int32(5); got != want {
		t.Errorf("InitialDelaySeconds: got %d, want %d", got, want)
	}
}

func TestServerPod_FillInFrom_ListsAppendInOrder(t *testing.T) {
	t.Parallel()

	pod := &ServerPod{}
	pod.AddEnvVar(corev1.EnvVar{Name: "A", Value: "1"})
	pod.AddEnvVar(corev1.EnvVar{Name: "B", Value: "2"})
	pod.AddAdditionalVolume("local", "/var/local")
	pod.AddAdditionalVolumeMount("local", "/local")

	fallback := &ServerPod{}
	fallback.AddEnvVar(corev1.EnvVar{Name: "C", Value: "3"})
	fallback.AddEnvVar(corev1.EnvVar{Name: "D", Value: "4"})
	fallback.AddAdditionalVolume("shared", "/var/shared")
	fallback.AddAdditionalVolumeMount("shared", "/shared")

	pod.FillInFrom(fallback)

	wantEnv := []corev1.EnvVar{
		{Name: "A", Value: "1"},
		{Name: "B", Value: "2"},
		{Name: "C", Value: "3"},
		{Name: "D", Value: "4"},
	}
	if diff := cmp.Diff(wantEnv, pod.Env); diff != "" {
		t.Errorf("Env Diff (-want +got):\n%s", diff)
	}

	wantVolumeOrder := []string{"local", "shared"}
	for i, name := range wantVolumeOrder {
		if got := pod.AdditionalVolumes[i].Name; got != name {
			t.Errorf("Volume[%d]: got %q, want %q", i, got, name)
		}
		if got := pod.AdditionalVolumeMounts[i].Name; got != name {
			t.Errorf("VolumeMount[%d]: got %q, want %q", i, got, name)
		}
	}
}

func TestServerPod_FillInFrom_ListsKeepDuplicateNames(t *testing.T) {
	t.Parallel()

	pod := &ServerPod{}
	pod.AddEnvVar(corev1.EnvVar{Name: "JAVA_OPTIONS", Value: "-Xmx512m"})

	fallback := &ServerPod{}
	fallback.AddEnvVar(corev1.EnvVar{Name: "JAVA_OPTIONS", Value: "-Xmx1g"})

	pod.FillInFrom(fallback)

	// Same-named entries accumulate; the merge never de-duplicates.
	wantEnv := []corev1.EnvVar{
		{Name: "JAVA_OPTIONS", Value: "-Xmx512m"},
		{Name: "JAVA_OPTIONS", Value: "-Xmx1g"},
	}
	if diff := cmp.Diff(wantEnv, pod.Env); diff != "" {
		t.Errorf("Env Diff (-want +got):\n%s", diff)
	}
}

func TestServerPod_FillInFrom_MapsReceiverWins(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		receiver map[string]string
		fallback map[string]string
		want     map[string]string
	}{
		"Conflicting Key Kept": {
			receiver: map[string]string{"tier": "web"},
			fallback: map[string]string{"tier": "batch", "owner": "ops"},
			want:     map[string]string{"tier": "web", "owner": "ops"},
		},
		"Nil Receiver Allocated": {
			receiver: nil,
			fallback: map[string]string{"owner": "ops"},
			want:     map[string]string{"owner": "ops"},
		},
		"Nil Fallback Leaves Receiver Nil": {
			receiver: nil,
			fallback: nil,
			want:     nil,
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			pod := &ServerPod{
				NodeSelector: tc.receiver,
				Labels:       copyMap(tc.receiver),
				Annotations:  copyMap(tc.receiver),
			}
			pod.FillInFrom(&ServerPod{
				NodeSelector: tc.fallback,
				Labels:       copyMap(tc.fallback),
				Annotations:  copyMap(tc.fallback),
			})

			for field, got := range map[string]map[string]string{
				"NodeSelector": pod.NodeSelector,
				"Labels":       pod.Labels,
				"Annotations":  pod.Annotations,
			} {
				if diff := cmp.Diff(tc.want, got); diff != "" {
					t.Errorf("%s Diff (-want +got):\n%s", field, diff)
				}
			}
		})
	}
}

func copyMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

func TestServerPod_FillInFrom_Resources(t *testing.T) {
	t.Parallel()

	pod := &ServerPod{}
	pod.AddRequestRequirement(corev1.ResourceCPU, resource.MustParse("500m"))

	fallback := &ServerPod{}
	fallback.AddRequestRequirement(corev1.ResourceCPU, resource.MustParse("250m"))
	fallback.AddRequestRequirement(corev1.ResourceMemory, resource.MustParse("512Mi"))
	fallback.AddLimitRequirement(corev1.ResourceMemory, resource.MustParse("1Gi"))

	pod.FillInFrom(fallback)

	want := corev1.ResourceRequirements{
		Requests: corev1.ResourceList{
			corev1.ResourceCPU:    resource.MustParse("500m"),
			corev1.ResourceMemory: resource.MustParse("512Mi"),
		},
		Limits: corev1.ResourceList{
			corev1.ResourceMemory: resource.MustParse("1Gi"),
		},
	}
	opts := []cmp.Option{cmpopts.IgnoreUnexported(resource.Quantity{})}
	if diff := cmp.Diff(want, pod.Resources, opts...); diff != "" {
		t.Errorf("Resources Diff (-want +got):\n%s", diff)
	}
}

func TestServerPod_FillInFrom_Idempotent(t *testing.T) {
	t.Parallel()

	pod := &ServerPod{}
	pod.AddEnvVar(corev1.EnvVar{Name: "A", Value: "1"})
	pod.AddPodLabel("tier", "web")

	pod.FillInFrom(nil)

	want := &ServerPod{
		Env:    []corev1.EnvVar{{Name: "A", Value: "1"}},
		Labels: map[string]string{"tier": "web"},
	}
	if diff := cmp.Diff(want, pod); diff != "" {
		t.Errorf("Pod changed by nil fallback (-want +got):\n%s", diff)
	}
}
