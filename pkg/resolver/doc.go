// Package resolver computes the "Effective Configuration" of the servers in a
// WebLogic Domain.
//
// A Domain declares configuration at up to three nested scopes:
//  1. The domain scope (the BaseConfiguration embedded in DomainSpec).
//  2. A cluster scope (per named cluster).
//  3. A server scope (per managed server, or the admin server).
//
// The resolver is the single source of truth for collapsing those scopes into
// one concrete configuration per server. It ensures the reconciler and the
// admission webhook always agree on what the final configuration should be.
//
// # Logic Hierarchy
//
// Resolution walks from the most specific scope outward, filling in any value
// the narrower scope left unset from the next broader one:
//
//	server ← cluster ← domain
//
// A value set at a narrower scope is never overwritten. The one exception to
// plain fill-if-unset is the server start policy, which has its own
// precedence rule (see BaseConfiguration.FillInFrom in api/v1alpha1).
//
// # Dual Usage
//
// This package is designed to be used in two distinct phases:
//
//  1. Mutation (Webhook):
//     PopulateDomainDefaults applies static defaults (image, pull policy,
//     replicas, domain-scope start policy and state) to the API object
//     itself, so users see the values that will actually be in effect.
//
//  2. Reconciliation (Controller):
//     The Effective... functions compute the resolved configuration of a
//     single server; the controller publishes them to the Domain status.
//
//  3. Validation (Webhook):
//     ValidateDomain checks the enum-valued fields against their closed
//     value sets and the structural consistency of the hierarchy before the
//     Domain is persisted. The merge itself never fails; a bad value is
//     caught here, not there.
//
// Usage:
//
//	// Webhook: apply static defaults to the object
//	resolver.PopulateDomainDefaults(domain)
//
//	// Webhook: validate the domain structure and enum fields
//	if errs := resolver.ValidateDomain(domain); len(errs) > 0 {
//	    return errs.ToAggregate()
//	}
//
//	// Controller: calculate the final config for one managed server
//	cfg := resolver.EffectiveServerConfig(domain, "managed-server-1")
package resolver
