// Copyright 2022 Sogang University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package communicator

import (
	"context"

	"github.com/pkg/errors"
)

// Gradient is one named parameter gradient buffer of a shared component.
type Gradient struct {
	Name string
	Data []float32

	// Ready reports whether a local backward pass actually produced this
	// gradient since the last synchronization.  A parameter of a shared
	// component is not ready when no task using the component was sampled
	// on this device during the current communication round.
	Ready bool
}

// SyncReadyGradients averages the gradients of one shared component across
// its communication group, tolerating parameters that received no local
// gradient on some of the member devices.
//
// Each member first communicates a readiness bit per parameter; the bits are
// reduced by summation, giving the number of members holding a real gradient
// for that parameter.  Parameters nobody touched are skipped entirely and
// their buffers are left unmodified.  For the remaining parameters every
// member participates in a chunked all-reduce, members without a real
// gradient contributing zeros, and each reduced gradient is divided by its
// participation count.  The post-sync gradient therefore equals the
// unweighted mean over the devices that actually computed one, not the mean
// over all devices nominally holding the component.
func SyncReadyGradients(ctx context.Context, grads []*Gradient, group Group, buffer *Buffer) error {
	if len(grads) == 0 {
		return nil
	}

	readiness := make([]float32, len(grads))
	for index, grad := range grads {
		if grad.Ready {
			readiness[index] = 1
		}
	}
	if err := group.AllReduceSum(ctx, readiness); err != nil {
		return errors.WithMessage(err, "reduce readiness bits")
	}

	// Parameters with a zero participation count are omitted before the
	// data reduction, so their buffers are never written.  Stale buffers of
	// locally missing but remotely trained parameters are zero-filled here
	// to keep the summation well-defined.
	participating := make([]*Gradient, 0, len(grads))
	tensors := make([][]float32, 0, len(grads))
	denoms := make([]float32, 0, len(grads))
	for index, grad := range grads {
		if readiness[index] <= 0 {
			continue
		}
		if !grad.Ready {
			for i := range grad.Data {
				grad.Data[i] = 0
			}
		}
		participating = append(participating, grad)
		tensors = append(tensors, grad.Data)
		denoms = append(denoms, readiness[index])
	}
	if len(participating) == 0 {
		return nil
	}

	if err := buffer.AllReduceSum(ctx, group, tensors); err != nil {
		return errors.WithMessage(err, "reduce gradients")
	}

	for index, grad := range participating {
		denom := denoms[index]
		for i := range grad.Data {
			grad.Data[i] /= denom
		}
		// The gradient is now real on every member, including those that
		// contributed zeros.
		grad.Ready = true
	}
	return nil
}
