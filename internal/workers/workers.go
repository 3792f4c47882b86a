// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Kisaanlabs

package workers

// Workers starts a fixed set of background jobs together.
type Workers struct {
	workers []Worker
}

func NewWorkers(ws ...Worker) *Workers {
	return &Workers{workers: ws}
}

// Run starts every registered worker.
func (w *Workers) Run() {
	for _, worker := range w.workers {
		worker.Run()
	}
}
