package controller

import (
	"context"
	"fmt"
	"sort"

	"k8s.io/apimachinery/pkg/api/errors"
	"k8s.io/apimachinery/pkg/runtime"
	"k8s.io/client-go/tools/record"
	ctrl "sigs.k8s.io/controller-runtime"
	"sigs.k8s.io/controller-runtime/pkg/client"
	"sigs.k8s.io/controller-runtime/pkg/controller"
	"sigs.k8s.io/controller-runtime/pkg/log"

	weblogicv1alpha1 "github.com/amyroh/weblogic-kubernetes-operator/api/v1alpha1"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/monitoring"
	"github.com/amyroh/weblogic-kubernetes-operator/pkg/resolver"
)

const (
	// adminServerName is the conventional name of the WebLogic admin server.
	adminServerName = "admin-server"
)

// DomainReconciler reconciles a Domain object.
type DomainReconciler struct {
	client.Client
	Scheme   *runtime.Scheme
	Recorder record.EventRecorder
}

// Reconcile resolves the effective per-server configuration of the Domain and
// publishes it to status.
//
// +kubebuilder:rbac:groups=weblogic.oracle,resources=domains,verbs=get;list;watch;create;update;patch;delete
// +kubebuilder:rbac:groups=weblogic.oracle,resources=domains/status,verbs=get;update;patch
// +kubebuilder:rbac:groups=weblogic.oracle,resources=domains/finalizers,verbs=update
func (r *DomainReconciler) Reconcile(
	ctx context.Context,
	req ctrl.Request,
) (ctrl.Result, error) {
	l := log.FromContext(ctx)

	ctx, span := monitoring.StartReconcileSpan(
		ctx, "domain.reconcile", req.Name, req.Namespace, "Domain",
	)
	defer span.End()

	domain := &weblogicv1alpha1.Domain{}
	if err := r.Get(ctx, req.NamespacedName, domain); err != nil {
		if errors.IsNotFound(err) {
			monitoring.DeleteDomainMetrics(req.Name, req.Namespace)
			return ctrl.Result{}, nil
		}
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, fmt.Errorf("failed to get Domain: %w", err)
	}

	// Apply defaults in-memory so resolution sees the effective domain scope
	// even if the mutating webhook didn't run. The stored object is untouched.
	working := domain.DeepCopy()
	resolver.PopulateDomainDefaults(working)

	if errs := resolver.ValidateDomain(working); len(errs) > 0 {
		msg := fmt.Sprintf("Domain configuration is invalid: %v", errs.ToAggregate())
		r.Recorder.Event(domain, "Warning", "ValidationFailed", msg)
		l.Info("Domain failed validation, not resolving", "errors", errs.ToAggregate())

		domain.Status.ObservedGeneration = domain.Generation
		domain.Status.Message = msg
		domain.Status.Servers = nil
		if err := r.Status().Update(ctx, domain); err != nil {
			monitoring.RecordSpanError(span, err)
			return ctrl.Result{}, fmt.Errorf("failed to update status: %w", err)
		}
		// An invalid spec won't fix itself; wait for the next edit.
		return ctrl.Result{}, nil
	}

	_, resolveSpan := monitoring.StartChildSpan(ctx, "domain.resolve")
	servers := resolveServerStatuses(working)
	resolveSpan.End()

	domain.Status.ObservedGeneration = domain.Generation
	domain.Status.Message = fmt.Sprintf("Resolved configuration for %d servers", len(servers))
	domain.Status.Servers = servers

	updateCtx, updateSpan := monitoring.StartChildSpan(ctx, "domain.status.update")
	if err := r.Status().Update(updateCtx, domain); err != nil {
		monitoring.RecordSpanError(updateSpan, err)
		updateSpan.End()
		monitoring.RecordSpanError(span, err)
		return ctrl.Result{}, fmt.Errorf("failed to update status: %w", err)
	}
	updateSpan.End()

	recordDomainMetrics(working, servers)

	return ctrl.Result{}, nil
}

// resolveServerStatuses computes the effective start policy and state of the
// admin server and every declared managed server, sorted by server name with
// the admin server first.
func resolveServerStatuses(
	domain *weblogicv1alpha1.Domain,
) []weblogicv1alpha1.ServerStatus {
	servers := make([]weblogicv1alpha1.ServerStatus, 0, len(domain.Spec.ManagedServers)+1)

	adminCfg := resolver.EffectiveAdminServerConfig(domain)
	servers = append(servers, weblogicv1alpha1.ServerStatus{
		ServerName:   adminServerName,
		StartPolicy:  adminCfg.ServerStartPolicy,
		DesiredState: adminCfg.ServerStartState,
	})

	managed := make([]weblogicv1alpha1.ServerStatus, 0, len(domain.Spec.ManagedServers))
	for _, ms := range domain.Spec.ManagedServers {
		cfg := resolver.EffectiveServerConfig(domain, ms.ServerName)
		managed = append(managed, weblogicv1alpha1.ServerStatus{
			ServerName:   ms.ServerName,
			ClusterName:  ms.ClusterName,
			StartPolicy:  cfg.ServerStartPolicy,
			DesiredState: cfg.ServerStartState,
		})
	}
	sort.Slice(managed, func(i, j int) bool {
		return managed[i].ServerName < managed[j].ServerName
	})

	return append(servers, managed...)
}

func recordDomainMetrics(
	domain *weblogicv1alpha1.Domain,
	servers []weblogicv1alpha1.ServerStatus,
) {
	monitoring.SetDomainInfo(domain.Name, domain.Namespace, domain.EffectiveDomainUID())
	monitoring.SetDomainTopology(
		domain.Name, domain.Namespace,
		len(domain.Spec.Clusters), len(servers),
	)

	counts := make(map[string]int)
	for _, s := range servers {
		if s.StartPolicy != "" {
			counts[string(s.StartPolicy)]++
		}
	}
	monitoring.SetDomainServersByPolicy(domain.Name, domain.Namespace, counts)
}

// SetupWithManager sets up the controller with the Manager.
func (r *DomainReconciler) SetupWithManager(
	mgr ctrl.Manager,
	opts ...controller.Options,
) error {
	controllerOpts := controller.Options{}
	if len(opts) > 0 {
		controllerOpts = opts[0]
	}

	return ctrl.NewControllerManagedBy(mgr).
		For(&weblogicv1alpha1.Domain{}).
		Named("domain").
		WithOptions(controllerOpts).
		Complete(r)
}
