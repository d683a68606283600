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

// Package worker runs one training loop per device and feeds each loop with
// batches through a bounded producer/consumer queue.  A failure on any device
// cancels the whole world; a silently missing worker would deadlock its peers
// inside the next collective call.
package worker

import (
	"context"

	"github.com/convoy-ml/convoy/internal/topology"
	"github.com/golang/glog"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"
)

// Batch is one unit of training data drawn for a task.  The payload is opaque
// to the queue.
type Batch struct {
	CorpusID string
	Payload  any
}

// Feed is a bounded FIFO queue of batches between a producer and a consumer.
// A slot is held from Produce until Done, so the bound covers batches being
// processed as well as batches waiting; a slow consumer stalls the producer
// instead of growing the queue without limit.
type Feed struct {
	batches chan Batch
	slots   *semaphore.Weighted
}

// NewFeed creates a new feed holding at most capacity outstanding batches.
func NewFeed(capacity int) (*Feed, error) {
	if capacity < 1 {
		return nil, errors.Errorf("invalid feed capacity %d", capacity)
	}
	return &Feed{
		batches: make(chan Batch, capacity),
		slots:   semaphore.NewWeighted(int64(capacity)),
	}, nil
}

// Produce enqueues a batch, blocking while the feed is at capacity.
func (f *Feed) Produce(ctx context.Context, batch Batch) error {
	if err := f.slots.Acquire(ctx, 1); err != nil {
		return err
	}
	select {
	case f.batches <- batch:
		return nil
	case <-ctx.Done():
		f.slots.Release(1)
		return ctx.Err()
	}
}

// Next dequeues the oldest batch, blocking until one is produced.  The slot
// it occupies stays held until Done.
func (f *Feed) Next(ctx context.Context) (Batch, error) {
	select {
	case batch := <-f.batches:
		return batch, nil
	case <-ctx.Done():
		return Batch{}, ctx.Err()
	}
}

// Done releases the slot of a batch obtained from Next.
func (f *Feed) Done() {
	f.slots.Release(1)
}

// Run executes fn once per device of the world, each on its own goroutine.
// The first failure cancels the context passed to all remaining workers and
// is returned, wrapped with the failing device, after every worker has
// stopped.  On a non-distributed world fn runs exactly once.
func Run(ctx context.Context, world *topology.WorldContext, fn func(ctx context.Context, device topology.DeviceContext) error) error {
	devices := make([]topology.DeviceContext, 0, world.WorldSize())
	if world.IsDistributed() {
		for nodeRank := 0; nodeRank < world.NodeCount(); nodeRank++ {
			for localRank := 0; localRank < world.DevicesPerNode(); localRank++ {
				device, err := world.Localize(nodeRank, localRank)
				if err != nil {
					return err
				}
				devices = append(devices, device)
			}
		}
	} else {
		device, err := world.Localize(0, 0)
		if err != nil {
			return err
		}
		devices = append(devices, device)
	}

	eg, ctx := errgroup.WithContext(ctx)
	for _, device := range devices {
		device := device
		eg.Go(func() error {
			if err := fn(ctx, device); err != nil {
				glog.Errorf("worker on %s failed: %v", device.ID(), err)
				return errors.Wrapf(err, "worker on %s", device.ID())
			}
			return nil
		})
	}
	return eg.Wait()
}
