// Package testutil provides testing utilities for controller tests.
package testutil

import (
	"context"

	"sigs.k8s.io/controller-runtime/pkg/client"
)

// FailureConfig configures when the fake client should return errors.
// Each field is a function that receives the object/key and returns an error
// if the operation should fail.
type FailureConfig struct {
	// OnGet is called before Get operations. Return non-nil to fail the operation.
	OnGet func(key client.ObjectKey) error

	// OnUpdate is called before Update operations. Return non-nil to fail the operation.
	OnUpdate func(obj client.Object) error

	// OnStatusUpdate is called before Status().Update() operations. Return non-nil to fail the operation.
	OnStatusUpdate func(obj client.Object) error
}

// fakeClientWithFailures wraps a real fake client and injects failures based
// on configuration.
type fakeClientWithFailures struct {
	client.Client
	config *FailureConfig
}

// NewFakeClientWithFailures creates a fake client that can be configured to
// fail operations. This is useful for testing error handling paths in
// controllers.
func NewFakeClientWithFailures(baseClient client.Client, config *FailureConfig) client.Client {
	if config == nil {
		config = &FailureConfig{}
	}
	return &fakeClientWithFailures{
		Client: baseClient,
		config: config,
	}
}

func (c *fakeClientWithFailures) Get(
	ctx context.Context,
	key client.ObjectKey,
	obj client.Object,
	opts ...client.GetOption,
) error {
	if c.config.OnGet != nil {
		if err := c.config.OnGet(key); err != nil {
			return err
		}
	}
	return c.Client.Get(ctx, key, obj, opts...)
}

func (c *fakeClientWithFailures) Update(
	ctx context.Context,
	obj client.Object,
	opts ...client.UpdateOption,
) error {
	if c.config.OnUpdate != nil {
		if err := c.config.OnUpdate(obj); err != nil {
			return err
		}
	}
	return c.Client.Update(ctx, obj, opts...)
}

// Status returns a status writer that consults the failure configuration
// before delegating to the underlying fake client.
func (c *fakeClientWithFailures) Status() client.StatusWriter {
	return &statusWriterWithFailures{
		StatusWriter: c.Client.Status(),
		config:       c.config,
	}
}

type statusWriterWithFailures struct {
	client.StatusWriter
	config *FailureConfig
}

func (w *statusWriterWithFailures) Update(
	ctx context.Context,
	obj client.Object,
	opts ...client.SubResourceUpdateOption,
) error {
	if w.config.OnStatusUpdate != nil {
		if err := w.config.OnStatusUpdate(obj); err != nil {
			return err
		}
	}
	return w.StatusWriter.Update(ctx, obj, opts...)
}
