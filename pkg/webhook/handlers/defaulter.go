package handlers

import (
	"context"
	"fmt"
	"time"

	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook"

	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/monitoring"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/resolver"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/util/metadata"
)

// +kubebuilder:webhook:path=/mutate-weblogic-oracle-v1alpha1-domain,mutating=true,failurePolicy=fail,sideEffects=None,groups=weblogic.oracle,resources=domains,verbs=create;update,versions=v1alpha1,name=mdomain.kb.io,admissionReviewVersions=v1

// DomainDefaulter handles the mutation of Domain resources.
type DomainDefaulter struct{}

var _ webhook.CustomDefaulter = &DomainDefaulter{}

// NewDomainDefaulter creates a new defaulter handler.
func NewDomainDefaulter() *DomainDefaulter {
	return &DomainDefaulter{}
}

// Default implements webhook.CustomDefaulter. It applies the static domain
// defaults in place; narrower scopes pick them up later through resolution,
// so nothing a user set explicitly is touched.
func (d *DomainDefaulter) Default(ctx context.Context, obj runtime.Object) error {
	start := time.Now()
	var err error
	defer func() { monitoring.RecordWebhookRequest("DEFAULT", "Domain", err, time.Since(start)) }()

	domain, ok := obj.(*weblogicv1alpha1.Domain)
	if !ok {
		err = fmt.Errorf("expected Domain, got %T", obj)
		return err
	}

	resolver.PopulateDomainDefaults(domain)

	// Stamp the standard label set so tooling can select domains by UID
	// without parsing the spec. User-set labels win, except the
	// weblogic.oracle labels, which the operator owns.
	uid := domain.EffectiveDomainUID()
	labels := metadata.BuildStandardLabels(uid, metadata.ComponentDomain)
	for k, v := range domain.Labels {
		labels[k] = v
	}
	domain.Labels = metadata.AddDomainLabels(labels, uid)

	return nil
}
