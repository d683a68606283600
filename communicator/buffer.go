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

// DefaultBufferCap is the default transfer buffer capacity in elements,
// equivalent to 10 MiB of float32 data.
const DefaultBufferCap = 10485760 / 4

// Buffer is a bounded transfer buffer for packing small tensors into a
// single collective call.  It is allocated once with a fixed capacity and
// owned by its user; it is not safe for concurrent use.
type Buffer struct {
	data []float32
}

// NewBuffer creates a new transfer buffer with the given capacity in
// elements.  A non-positive capacity selects DefaultBufferCap.
func NewBuffer(capacity int) *Buffer {
	if capacity <= 0 {
		capacity = DefaultBufferCap
	}
	return &Buffer{data: make([]float32, capacity)}
}

// Cap returns the buffer capacity in elements.
func (b *Buffer) Cap() int {
	return len(b.data)
}

// AllReduceSum sums the given tensors element-wise across the group.
// Tensors are packed into the buffer and flushed once the next tensor would
// overflow it; a tensor larger than the buffer is reduced individually.
// Tensor identity and layout are preserved: each slice holds its own reduced
// values when the call returns.
func (b *Buffer) AllReduceSum(ctx context.Context, group Group, tensors [][]float32) error {
	queued := make([][]float32, 0, len(tensors))
	filled := 0

	flush := func() error {
		if len(queued) == 0 {
			return nil
		}
		offset := 0
		for _, tensor := range queued {
			offset += copy(b.data[offset:], tensor)
		}
		if err := group.AllReduceSum(ctx, b.data[:offset]); err != nil {
			return err
		}
		offset = 0
		for _, tensor := range queued {
			offset += copy(tensor, b.data[offset:])
		}
		queued = queued[:0]
		filled = 0
		return nil
	}

	for _, tensor := range tensors {
		switch {
		case len(tensor) > len(b.data):
			// tensor is bigger than the buffer, reduce it directly
			if err := group.AllReduceSum(ctx, tensor); err != nil {
				return err
			}
		case filled+len(tensor) > len(b.data):
			// buffer is full, flush and start over with this tensor
			if err := flush(); err != nil {
				return err
			}
			queued = append(queued, tensor)
			filled = len(tensor)
		default:
			queued = append(queued, tensor)
			filled += len(tensor)
		}
	}

	return errors.WithMessage(flush(), "flush transfer buffer")
}
