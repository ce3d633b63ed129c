// Package handlers contains the admission webhook handlers for the Domain
// resource.
//
// The defaulter applies the same static defaults the reconciler would
// (resolver.PopulateDomainDefaults), so the values in effect are visible on
// the stored object instead of materializing invisibly at reconcile time.
// The validator enforces the closed value sets of the enum-valued start
// policy and start state fields and the structural consistency of the
// cluster/server hierarchy, using the exact same logic as the reconciler
// (resolver.ValidateDomain).
package handlers
