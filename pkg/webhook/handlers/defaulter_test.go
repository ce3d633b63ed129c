package handlers

import (
	"context"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/apimachinery/pkg/runtime"

	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/resolver"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/util/metadata"
)

func TestDomainDefaulter_Default(t *testing.T) {
	t.Parallel()

	tests := map[string]struct {
		domain      *weblogicv1alpha1.Domain
		wantError   bool
		wantMessage string // substring match on error message
		validateObj func(t *testing.T, d *weblogicv1alpha1.Domain)
	}{
		"Happy Path: Static Defaults Applied": {
			domain: &weblogicv1alpha1.Domain{
				ObjectMeta: metav1.ObjectMeta{Name: "sample", Namespace: "test-ns"},
			},
			validateObj: func(t *testing.T, d *weblogicv1alpha1.Domain) {
				if got, want := d.Spec.DomainUID, "sample"; got != want {
					t.Errorf("DomainUID: got %q, want %q", got, want)
				}
				if got, want := d.Spec.Image, resolver.DefaultImage; got != want {
					t.Errorf("Image: got %q, want %q", got, want)
				}
				if got, want := d.Spec.ServerStartPolicy, resolver.DefaultServerStartPolicy; got != want {
					t.Errorf("ServerStartPolicy: got %q, want %q", got, want)
				}
				wantLabels := map[string]string{
					metadata.LabelAppName:           metadata.AppNameWebLogic,
					metadata.LabelAppInstance:       "sample",
					metadata.LabelAppComponent:      metadata.ComponentDomain,
					metadata.LabelAppPartOf:         metadata.AppNameWebLogic,
					metadata.LabelAppManagedBy:      metadata.ManagedByOperator,
					metadata.LabelDomainUID:         "sample",
					metadata.LabelCreatedByOperator: "true",
				}
				if diff := cmp.Diff(wantLabels, d.Labels); diff != "" {
					t.Errorf("Labels Diff (-want +got):\n%s", diff)
				}
			},
		},
		"User Labels Preserved": {
			domain: &weblogicv1alpha1.Domain{
				ObjectMeta: metav1.ObjectMeta{
					Name:      "sample",
					Namespace: "test-ns",
					Labels: map[string]string{
						metadata.LabelAppName: "custom",
						"team":                "middleware",
					},
				},
			},
			validateObj: func(t *testing.T, d *weblogicv1alpha1.Domain) {
				if got, want := d.Labels[metadata.LabelAppName], "custom"; got != want {
					t.Errorf("User label overwritten: got %q, want %q", got, want)
				}
				if got, want := d.Labels["team"], "middleware"; got != want {
					t.Errorf("User label lost: got %q, want %q", got, want)
				}
				if got, want := d.Labels[metadata.LabelDomainUID], "sample"; got != want {
					t.Errorf("Domain UID label: got %q, want %q", got, want)
				}
			},
		},
		"Explicit Values Untouched": {
			domain: &weblogicv1alpha1.Domain{
				ObjectMeta: metav1.ObjectMeta{Name: "sample", Namespace: "test-ns"},
				Spec: weblogicv1alpha1.DomainSpec{
					BaseConfiguration: weblogicv1alpha1.BaseConfiguration{
						ServerStartPolicy: weblogicv1alpha1.StartPolicyAdminOnly,
					},
					DomainUID: "uid-1",
				},
			},
			validateObj: func(t *testing.T, d *weblogicv1alpha1.Domain) {
				if got, want := d.Spec.DomainUID, "uid-1"; got != want {
					t.Errorf("DomainUID: got %q, want %q", got, want)
				}
				if got, want := d.Spec.ServerStartPolicy, weblogicv1alpha1.StartPolicyAdminOnly; got != want {
					t.Errorf("ServerStartPolicy: got %q, want %q", got, want)
				}
			},
		},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			d := NewDomainDefaulter()

			err := d.Default(context.Background(), tc.domain)
			if tc.wantError {
				if err == nil {
					t.Fatal("Expected error, got nil")
				}
				if tc.wantMessage != "" && !strings.Contains(err.Error(), tc.wantMessage) {
					t.Errorf("Error message: got %q, want substring %q", err.Error(), tc.wantMessage)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if tc.validateObj != nil {
				tc.validateObj(t, tc.domain)
			}
		})
	}
}

func TestDomainDefaulter_WrongType(t *testing.T) {
	t.Parallel()

	d := NewDomainDefaulter()
	var notADomain runtime.Object = &weblogicv1alpha1.DomainList{}

	err := d.Default(context.Background(), notADomain)
	if err == nil {
		t.Fatal("Expected error for wrong object type")
	}
	if !strings.Contains(err.Error(), "expected Domain") {
		t.Errorf("Error message: got %q", err.Error())
	}
}
