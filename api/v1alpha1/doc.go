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

// Package v1alpha1 defines the API types for the WebLogic domain operator.
//
// This package contains the Go type definitions for the weblogic.oracle API
// group. These types are used by kubebuilder to generate:
//   - CustomResourceDefinitions (CRDs)
//   - DeepCopy methods
//   - Client code
//
// # Custom Resources
//
//   - Domain: the root resource describing a WebLogic domain, its admin
//     server, managed servers, and clusters.
//
// # Configuration Hierarchy
//
// Settings may be declared at three nested scopes, from most general to most
// specific:
//
//	Domain (spec-level BaseConfiguration)
//	├── Cluster (per named cluster)
//	│   └── Managed Server (per named server, member of the cluster)
//	├── Managed Server (standalone, no cluster)
//	└── Admin Server
//
// Every scope carries a BaseConfiguration: the server start policy, the
// desired start state, and the ServerPod settings (environment variables,
// probe tunings, node selector, resources, security contexts, volumes,
// labels, annotations). A more specific scope inherits any setting it leaves
// unset from the next broader scope via BaseConfiguration.FillInFrom; it
// never loses a value it set explicitly. See pkg/resolver for the scope walk
// that produces the effective configuration of a single server.
//
// # Versioning
//
// This is the v1alpha1 version, indicating the API is in early development
// and may change in backward-incompatible ways.
//
// +kubebuilder:object:generate=true
// +groupName=weblogic.oracle
package v1alpha1
