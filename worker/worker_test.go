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

package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/convoy-ml/convoy/internal/topology"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sync/errgroup"
)

func TestFeedFIFO(t *testing.T) {
	feed, err := NewFeed(4)
	require.NoError(t, err)
	ctx := context.Background()

	for i := 0; i < 4; i++ {
		require.NoError(t, feed.Produce(ctx, Batch{CorpusID: fmt.Sprintf("corpus %d", i)}))
	}
	for i := 0; i < 4; i++ {
		batch, err := feed.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, fmt.Sprintf("corpus %d", i), batch.CorpusID)
		feed.Done()
	}
}

func TestFeedBackpressure(t *testing.T) {
	feed, err := NewFeed(2)
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, feed.Produce(ctx, Batch{CorpusID: "one"}))
	require.NoError(t, feed.Produce(ctx, Batch{CorpusID: "two"}))

	// a consumed but unfinished batch still counts against the bound
	_, err = feed.Next(ctx)
	require.NoError(t, err)

	full, cancel := context.WithTimeout(ctx, 10*time.Millisecond)
	defer cancel()
	err = feed.Produce(full, Batch{CorpusID: "three"})
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// finishing the batch frees its slot
	feed.Done()
	require.NoError(t, feed.Produce(ctx, Batch{CorpusID: "three"}))
}

func TestFeedProducerConsumer(t *testing.T) {
	feed, err := NewFeed(3)
	require.NoError(t, err)
	ctx := context.Background()

	const n = 100
	var eg errgroup.Group
	eg.Go(func() error {
		for i := 0; i < n; i++ {
			if err := feed.Produce(ctx, Batch{CorpusID: "corpus", Payload: i}); err != nil {
				return err
			}
		}
		return nil
	})

	for i := 0; i < n; i++ {
		batch, err := feed.Next(ctx)
		require.NoError(t, err)
		assert.Equal(t, i, batch.Payload)
		feed.Done()
	}
	require.NoError(t, eg.Wait())
}

func TestNewFeedInvalid(t *testing.T) {
	_, err := NewFeed(0)
	assert.Error(t, err)
}

func TestRun(t *testing.T) {
	world, err := topology.New(2, 4, 2)
	require.NoError(t, err)

	var mu sync.Mutex
	ranks := make(map[int]struct{})
	require.NoError(t, Run(context.Background(), world, func(ctx context.Context, device topology.DeviceContext) error {
		mu.Lock()
		defer mu.Unlock()
		ranks[device.GlobalRank()] = struct{}{}
		return nil
	}))
	assert.Len(t, ranks, 4)
}

func TestRunNotDistributed(t *testing.T) {
	world, err := topology.New(0, 0, 1)
	require.NoError(t, err)

	runs := 0
	require.NoError(t, Run(context.Background(), world, func(ctx context.Context, device topology.DeviceContext) error {
		runs++
		assert.Equal(t, "CPU", device.ID())
		return nil
	}))
	assert.Equal(t, 1, runs)
}

func TestRunFailureCancelsSiblings(t *testing.T) {
	world, err := topology.New(2, 4, 2)
	require.NoError(t, err)

	boom := errors.New("device lost")
	var cancelled int32
	err = Run(context.Background(), world, func(ctx context.Context, device topology.DeviceContext) error {
		if device.GlobalRank() == 2 {
			return boom
		}
		// the sibling workers block until the failure propagates
		<-ctx.Done()
		atomic.AddInt32(&cancelled, 1)
		return nil
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "GPU 1:0")
	assert.Equal(t, int32(3), atomic.LoadInt32(&cancelled))
}
