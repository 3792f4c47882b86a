// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

// Package workers runs the background jobs of the application. Today that
// is a single job, the periodic weather cache refresh, but the Worker
// interface and the Workers aggregate keep the wiring uniform if more are
// added.
package workers

// Worker is a background job. Run starts it and returns immediately;
// implementations spawn their own goroutines and keep running until stopped
// or until the process exits.
type Worker interface {
	Run()
}
