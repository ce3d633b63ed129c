package resolver

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	corev1 "k8s.io/api/core/v1"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"

	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
)

// setupDomain returns a domain with configuration at all three scopes:
// domain-wide, the "primary" cluster, and the "ms1" server inside it.
func setupDomain(t testing.TB) *weblogicv1alpha1.Domain {
	t.Helper()

	domain := &weblogicv1alpha1.Domain{
		ObjectMeta: metav1.ObjectMeta{Name: "sample", Namespace: "default"},
		Spec: weblogicv1alpha1.DomainSpec{
			BaseConfiguration: weblogicv1alpha1.BaseConfiguration{
				ServerStartPolicy: weblogicv1alpha1.StartPolicyAlways,
				ServerStartState:  weblogicv1alpha1.StartStateRunning,
			},
		},
	}
	domain.Spec.AddPodLabel("g", "y")
	domain.Spec.AddPodLabel("z", "w")

	cluster := weblogicv1alpha1.ClusterSpec{
		ClusterName: "primary",
		BaseConfiguration: weblogicv1alpha1.BaseConfiguration{
			ServerStartPolicy: weblogicv1alpha1.StartPolicyNever,
		},
	}
	cluster.AddEnvironmentVariable("B", "2")
	cluster.AddPodLabel("g", "x")
	domain.Spec.Clusters = append(domain.Spec.Clusters, cluster)

	server := weblogicv1alpha1.ManagedServerSpec{
		ServerName:  "ms1",
		ClusterName: "primary",
	}
	server.AddEnvironmentVariable("A", "1")
	domain.Spec.ManagedServers = append(domain.Spec.ManagedServers, server)

	return domain
}

func TestEffectiveServerConfig(t *testing.T) {
	t.Parallel()

	domain := setupDomain(t)
	cfg := EffectiveServerConfig(domain, "ms1")

	// The cluster's NEVER shadows the server's unset policy first, then the
	// domain's ALWAYS overrides NEVER.
	if got, want := cfg.ServerStartPolicy, weblogicv1alpha1.StartPolicyAlways; got != want {
		t.Errorf("ServerStartPolicy: got %q, want %q", got, want)
	}
	if got, want := cfg.ServerStartState, weblogicv1alpha1.StartStateRunning; got != want {
		t.Errorf("ServerStartState: got %q, want %q", got, want)
	}

	wantEnv := []corev1.EnvVar{{Name: "A", Value: "1"}, {Name: "B", Value: "2"}}
	if diff := cmp.Diff(wantEnv, cfg.ServerPod.Env); diff != "" {
		t.Errorf("Env Diff (-want +got):\n%s", diff)
	}

	wantLabels := map[string]string{"g": "x", "z": "w"}
	if diff := cmp.Diff(wantLabels, cfg.ServerPod.Labels); diff != "" {
		t.Errorf("Labels Diff (-want +got):\n%s", diff)
	}
}

func TestEffectiveServerConfig_DomainUnchanged(t *testing.T) {
	t.Parallel()

	domain := setupDomain(t)
	want := domain.DeepCopy()

	_ = EffectiveServerConfig(domain, "ms1")

	if diff := cmp.Diff(want, domain); diff != "" {
		t.Errorf("Domain mutated by resolution (-want +got):\n%s", diff)
	}
}

func TestEffectiveServerConfig_UndeclaredServer(t *testing.T) {
	t.Parallel()

	domain := setupDomain(t)
	cfg := EffectiveServerConfig(domain, "ms7")

	// An undeclared server starts from an empty scope and inherits the
	// domain configuration directly (it belongs to no cluster).
	if got, want := cfg.ServerStartPolicy, weblogicv1alpha1.StartPolicyAlways; got != want {
		t.Errorf("ServerStartPolicy: got %q, want %q", got, want)
	}
	if len(cfg.ServerPod.Env) != 0 {
		t.Errorf("Env: got %v, want empty", cfg.ServerPod.Env)
	}
	wantLabels := map[string]string{"g": "y", "z": "w"}
	if diff := cmp.Diff(wantLabels, cfg.ServerPod.Labels); diff != "" {
		t.Errorf("Labels Diff (-want +got):\n%s", diff)
	}
}

func TestEffectiveServerConfig_IndependentResolutions(t *testing.T) {
	t.Parallel()

	domain := setupDomain(t)

	first := EffectiveServerConfig(domain, "ms1")
	first.ServerPod.Labels["g"] = "mutated"
	first.ServerPod.Env[1].Value = "mutated"

	second := EffectiveServerConfig(domain, "ms1")

	if got, want := second.ServerPod.Labels["g"], "x"; got != want {
		t.Errorf("Labels leaked between resolutions: got %q, want %q", got, want)
	}
	if got, want := second.ServerPod.Env[1].Value, "2"; got != want {
		t.Errorf("Env leaked between resolutions: got %q, want %q", got, want)
	}
}

func TestEffectiveClusterConfig(t *testing.T) {
	t.Parallel()

	domain := setupDomain(t)

	tests := map[string]struct {
		clusterName string
		wantPolicy  weblogicv1alpha1.ServerStartPolicy
		wantNil     bool
	}{
		// The cluster's own NEVER is overridable by the domain's ALWAYS.
		"Declared Cluster":   {clusterName: "primary", wantPolicy: weblogicv1alpha1.StartPolicyAlways},
		"Undeclared Cluster": {clusterName: "missing", wantNil: true},
		"Empty Name":         {clusterName: "", wantNil: true},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			cfg := EffectiveClusterConfig(domain, tc.clusterName)
			if tc.wantNil {
				if cfg != nil {
					t.Errorf("Expected nil config, got %+v", cfg)
				}
				return
			}
			if cfg == nil {
				t.Fatal("Expected config, got nil")
			}
			if got := cfg.ServerStartPolicy; got != tc.wantPolicy {
				t.Errorf("ServerStartPolicy: got %q, want %q", got, tc.wantPolicy)
			}
		})
	}
}

func TestEffectiveAdminServerConfig(t *testing.T) {
	t.Parallel()

	domain := setupDomain(t)
	domain.Spec.AdminServer = &weblogicv1alpha1.AdminServerSpec{
		BaseConfiguration: weblogicv1alpha1.BaseConfiguration{
			ServerStartState: weblogicv1alpha1.StartStateAdmin,
		},
	}

	cfg := EffectiveAdminServerConfig(domain)

	if got, want := cfg.ServerStartState, weblogicv1alpha1.StartStateAdmin; got != want {
		t.Errorf("ServerStartState: got %q, want %q", got, want)
	}
	if got, want := cfg.ServerStartPolicy, weblogicv1alpha1.StartPolicyAlways; got != want {
		t.Errorf("ServerStartPolicy: got %q, want %q", got, want)
	}
}

func TestEffectiveAdminServerConfig_NoAdminScope(t *testing.T) {
	t.Parallel()

	domain := setupDomain(t)
	cfg := EffectiveAdminServerConfig(domain)

	wantLabels := map[string]string{"g": "y", "z": "w"}
	if diff := cmp.Diff(wantLabels, cfg.ServerPod.Labels); diff != "" {
		t.Errorf("Labels Diff (-want +got):\n%s", diff)
	}
}

func TestClusterReplicas(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		clusterReplicas *int32
		domainReplicas  *int32
		want            int32
	}{
		"Cluster Wins":    {clusterReplicas: ptr.To(int32(5)), domainReplicas: ptr.To(int32(3)), want: 5},
		"Domain Fallback": {domainReplicas: ptr.To(int32(3)), want: 3},
		"Static Default":  {want: DefaultClusterReplicas},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			domain := setupDomain(t)
			domain.Spec.Replicas = tc.domainReplicas
			domain.Spec.Clusters[0].Replicas = tc.clusterReplicas

			if got := ClusterReplicas(domain, "primary"); got != tc.want {
				t.Errorf("ClusterReplicas: got %d, want %d", got, tc.want)
			}
		})
	}
}
