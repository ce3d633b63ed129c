// Package webhook wires the Domain admission handlers into the manager's
// webhook server.
//
// Certificates are expected to be provisioned externally (for example by
// cert-manager) and mounted into the directory the webhook server reads
// from; see the --webhook-cert-dir flag on the operator binary.
package webhook

import (
	"k8s.io/apimachinery/pkg/runtime"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/webhook/admission"

	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/webhook/handlers"
)

// Setup registers the Domain admission handlers with the manager's webhook
// server. The paths must match the +kubebuilder:webhook markers in the
// handlers package.
func Setup(mgr ctrl.Manager) {
	var domain runtime.Object = &weblogicv1alpha1.Domain{}
	server := mgr.GetWebhookServer()

	server.Register(
		"/mutate-weblogic-oracle-v1alpha1-domain",
		admission.WithCustomDefaulter(mgr.GetScheme(), domain, handlers.NewDomainDefaulter()),
	)
	server.Register(
		"/validate-weblogic-oracle-v1alpha1-domain",
		admission.WithCustomValidator(mgr.GetScheme(), domain, handlers.NewDomainValidator()),
	)
}
