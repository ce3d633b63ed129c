package handlers

import (
	"context"
	"fmt"
	"time"

	apierrors "k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/monitoring"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/resolver"
)

// +kubebuilder:webhook:path=/validate-weblogic-oracle-v1alpha1-domain,mutating=false,failurePolicy=fail,sideEffects=None,groups=weblogic.oracle,resources=domains,verbs=create;update,versions=v1alpha1,name=vdomain.kb.io,admissionReviewVersions=v1

// DomainValidator validates Create and Update events for Domains.
type DomainValidator struct{}

var _ webhook.CustomValidator = &DomainValidator{}

// NewDomainValidator creates a new validator for Domains.
func NewDomainValidator() *DomainValidator {
	return &DomainValidator{}
}

func (v *DomainValidator) ValidateCreate(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return v.validate(obj, "CREATE")
}

func (v *DomainValidator) ValidateUpdate(
	ctx context.Context,
	oldObj, newObj runtime.Object,
) (admission.Warnings, error) {
	return v.validate(newObj, "UPDATE")
}

func (v *DomainValidator) ValidateDelete(
	ctx context.Context,
	obj runtime.Object,
) (admission.Warnings, error) {
	return nil, nil
}

func (v *DomainValidator) validate(
	obj runtime.Object,
	operation string,
) (admission.Warnings, error) {
	start := time.Now()
	var err error
	defer func() { monitoring.RecordWebhookRequest(operation, "Domain", err, time.Since(start)) }()

	domain, ok := obj.(*weblogicv1alpha1.Domain)
	if !ok {
		err = fmt.Errorf("expected Domain, got %T", obj)
		return nil, err
	}

	if errs := resolver.ValidateDomain(domain); len(errs) > 0 {
		err = apierrors.NewInvalid(
			weblogicv1alpha1.GroupVersion.WithKind("Domain").GroupKind(),
			domain.Name,
			errs,
		)
		return nil, err
	}

	return nil, nil
}
