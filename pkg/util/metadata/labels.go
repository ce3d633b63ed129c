package metadata

// Standard Kubernetes label keys following kubernetes.io conventions.
//
// See: https://kubernetes.io/docs/concepts/overview/working-with-objects/common-labels/
const (
	// LabelAppName is the standard label key for the application name.
	LabelAppName = "app.kubernetes.io/name"

	// LabelAppInstance is the standard label key for the unique instance name.
	LabelAppInstance = "app.kubernetes.io/instance"

	// LabelAppComponent is the standard label key for the component within the
	// application.
	LabelAppComponent = "app.kubernetes.io/component"

	// LabelAppPartOf is the standard label key for the name of a higher level
	// application this one is part of.
	LabelAppPartOf = "app.kubernetes.io/part-of"

	// LabelAppManagedBy is the standard label key for the tool managing the
	// resource.
	LabelAppManagedBy = "app.kubernetes.io/managed-by"
)

const (
	// AppNameWebLogic is the fixed application name for all WebLogic resources.
	AppNameWebLogic = "weblogic"

	// ManagedByOperator identifies the operator managing these resources.
	ManagedByOperator = "weblogic-operator"

	// ComponentDomain identifies a Domain resource.
	ComponentDomain = "domain"
)

const (
	// LabelDomainUID identifies which WebLogic domain a resource belongs to.
	LabelDomainUID = "weblogic.oracle/domain-uid"

	// LabelCreatedByOperator marks resources whose labels the operator
	// maintains.
	LabelCreatedByOperator = "weblogic.oracle/created-by-operator"
)

// BuildStandardLabels returns a map of standard kubernetes labels.
// domainUID should be the effective UID of the Domain CR (used for the
// instance label). component is the name of the component (e.g. domain).
func BuildStandardLabels(domainUID, component string) map[string]string {
	return map[string]string{
		LabelAppName:      AppNameWebLogic,
		LabelAppInstance:  domainUID,
		LabelAppComponent: component,
		LabelAppPartOf:    AppNameWebLogic,
		LabelAppManagedBy: ManagedByOperator,
	}
}

// AddDomainLabels adds the domain UID and created-by labels to the provided
// labels map. The UID label is always set to the given value so it tracks
// spec changes.
func AddDomainLabels(labels map[string]string, domainUID string) map[string]string {
	if labels == nil {
		labels = make(map[string]string, 2)
	}
	labels[LabelDomainUID] = domainUID
	labels[LabelCreatedByOperator] = "true"
	return labels
}
