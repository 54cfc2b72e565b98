// Package cpu implements the tensor.Backend interface with pure Go kernels.
package cpu

import (
	"github.com/govision-ml/govision/internal/parallel"
	"github.com/govision-ml/govision/internal/tensor"
)

// Verify that CPUBackend implements Backend.
var _ tensor.Backend = (*CPUBackend)(nil)

// CPUBackend executes tensor operations on the host CPU.
//
// Element-wise kernels stage through float64 for dtype-generic code and
// take a gonum fast path when both operands are float64 with identical
// shapes. Large loops are chunked across goroutines.
type CPUBackend struct {
	par parallel.Config
}

// New creates a new CPU backend with default parallelism.
func New() *CPUBackend {
	return &CPUBackend{par: parallel.DefaultConfig()}
}

// NewSequential creates a CPU backend that never spawns goroutines.
// Useful for deterministic benchmarks and small workloads.
func NewSequential() *CPUBackend {
	cfg := parallel.DefaultConfig()
	cfg.Enabled = false
	return &CPUBackend{par: cfg}
}

// Name returns the backend name.
func (c *CPUBackend) Name() string {
	return "cpu"
}

// Device returns the device type.
func (c *CPUBackend) Device() tensor.Device {
	return tensor.CPU
}
