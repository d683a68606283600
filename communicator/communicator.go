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

// The communicator package implements collective communication between the
// devices sharing a parameter component.  The primitives are based on the
// syntax of the Message Passing Interface (MPI); a communication group is
// created once per replicated component, and every collective call on it is a
// synchronous barrier: all members must invoke the same collective, for the
// same component, in the same relative order.  The package also provides an
// in-process fabric backed by channels, used when all workers live in one
// process (tests, single-node runs).
package communicator

import (
	"context"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/pkg/errors"
)

// Group is the set of devices that must collectively exchange one
// component's tensors.
type Group interface {
	// Ranks returns the global ranks of the members in ascending order.
	Ranks() []int

	// AllReduceSum replaces data with the element-wise sum over all
	// members.  It blocks until every member has contributed, or until ctx
	// is cancelled.
	AllReduceSum(ctx context.Context, data []float32) error

	// Broadcast replaces data with the root member's data on every other
	// member.  It blocks until every member has joined, or until ctx is
	// cancelled.
	Broadcast(ctx context.Context, data []float32, root int) error
}

// GroupFactory creates the communication group spanning the given global
// ranks.  Every process must invoke the factory for the same groups in the
// same order, whether or not it is a member; the returned handle is only
// usable by members.
type GroupFactory func(globalRanks []int) (Group, error)

// World is an in-process communication fabric.  Each worker goroutine holds
// one Peer; groups created by different peers with the same creation history
// resolve to the same underlying rendezvous state, mirroring how every
// process of a distributed run issues group-creation calls in identical
// order.
type World struct {
	size    int
	mu      sync.Mutex
	groups  map[string][]*groupState
	cursors map[cursorKey]int
}

type cursorKey struct {
	signature string
	rank      int
}

// NewWorld creates a new in-process fabric with the given world size.
func NewWorld(size int) *World {
	return &World{
		size:    size,
		groups:  make(map[string][]*groupState),
		cursors: make(map[cursorKey]int),
	}
}

// Size returns the world size.
func (w *World) Size() int {
	return w.size
}

// Localize returns the peer bound to the given global rank.
func (w *World) Localize(globalRank int) (*Peer, error) {
	if globalRank < 0 || w.size <= globalRank {
		return nil, errors.Errorf("global_rank %d out of range: world_size %d", globalRank, w.size)
	}
	return &Peer{world: w, rank: globalRank}, nil
}

// Peer is one worker's endpoint in the fabric.
type Peer struct {
	world *World
	rank  int
}

// Rank returns the global rank of this peer.
func (p *Peer) Rank() int {
	return p.rank
}

// NewGroup creates, or joins, the communication group spanning the given
// global ranks.  It satisfies GroupFactory.
func (p *Peer) NewGroup(globalRanks []int) (Group, error) {
	if len(globalRanks) < 2 {
		return nil, errors.Errorf("group must span at least 2 devices, got %v", globalRanks)
	}
	if !sort.IntsAreSorted(globalRanks) {
		return nil, errors.Errorf("group ranks must be sorted, got %v", globalRanks)
	}
	for _, rank := range globalRanks {
		if rank < 0 || p.world.size <= rank {
			return nil, errors.Errorf("global_rank %d out of range: world_size %d", rank, p.world.size)
		}
	}
	return &memberGroup{
		state: p.world.state(globalRanks, p.rank),
		rank:  p.rank,
	}, nil
}

// state resolves the n-th group this peer creates over the given rank
// signature to a single shared rendezvous state.
func (w *World) state(globalRanks []int, rank int) *groupState {
	parts := make([]string, len(globalRanks))
	for index, rank := range globalRanks {
		parts[index] = strconv.Itoa(rank)
	}
	signature := strings.Join(parts, ",")

	w.mu.Lock()
	defer w.mu.Unlock()

	key := cursorKey{signature: signature, rank: rank}
	index := w.cursors[key]
	w.cursors[key] = index + 1
	for len(w.groups[signature]) <= index {
		ranks := make([]int, len(globalRanks))
		copy(ranks, globalRanks)
		w.groups[signature] = append(w.groups[signature], &groupState{ranks: ranks})
	}
	return w.groups[signature][index]
}

// groupState is the rendezvous state shared by all members of one group.
type groupState struct {
	ranks  []int
	mu     sync.Mutex
	reduce *collectiveRound
	bcast  *collectiveRound
}

type collectiveRound struct {
	need int
	got  int
	data []float32
	err  error
	done chan struct{}
}

// memberGroup is a group handle bound to one member.
type memberGroup struct {
	state *groupState
	rank  int
}

func (g *memberGroup) Ranks() []int {
	ranks := make([]int, len(g.state.ranks))
	copy(ranks, g.state.ranks)
	return ranks
}

func (g *memberGroup) member() bool {
	for _, rank := range g.state.ranks {
		if rank == g.rank {
			return true
		}
	}
	return false
}

func (g *memberGroup) AllReduceSum(ctx context.Context, data []float32) error {
	if !g.member() {
		return errors.Errorf("global_rank %d is not a member of group %v", g.rank, g.state.ranks)
	}

	s := g.state
	s.mu.Lock()
	if s.reduce == nil {
		s.reduce = &collectiveRound{
			need: len(s.ranks),
			data: make([]float32, len(data)),
			done: make(chan struct{}),
		}
	}
	round := s.reduce
	if round.err == nil && len(round.data) != len(data) {
		round.err = errors.Errorf("all-reduce length mismatch in group %v: %d != %d", s.ranks, len(round.data), len(data))
	}
	if round.err == nil {
		for index, v := range data {
			round.data[index] += v
		}
	}
	round.got++
	if round.got == round.need {
		s.reduce = nil
		close(round.done)
	}
	s.mu.Unlock()

	select {
	case <-round.done:
		if round.err != nil {
			return round.err
		}
		copy(data, round.data)
		return nil
	case <-ctx.Done():
		// The round can never complete; the whole run is being torn down.
		return ctx.Err()
	}
}

func (g *memberGroup) Broadcast(ctx context.Context, data []float32, root int) error {
	if !g.member() {
		return errors.Errorf("global_rank %d is not a member of group %v", g.rank, g.state.ranks)
	}
	rootIsMember := false
	for _, rank := range g.state.ranks {
		rootIsMember = rootIsMember || rank == root
	}
	if !rootIsMember {
		return errors.Errorf("broadcast root %d is not a member of group %v", root, g.state.ranks)
	}

	s := g.state
	s.mu.Lock()
	if s.bcast == nil {
		s.bcast = &collectiveRound{
			need: len(s.ranks),
			data: make([]float32, len(data)),
			done: make(chan struct{}),
		}
	}
	round := s.bcast
	if round.err == nil && len(round.data) != len(data) {
		round.err = errors.Errorf("broadcast length mismatch in group %v: %d != %d", s.ranks, len(round.data), len(data))
	}
	if round.err == nil && g.rank == root {
		copy(round.data, data)
	}
	round.got++
	if round.got == round.need {
		s.bcast = nil
		close(round.done)
	}
	s.mu.Unlock()

	select {
	case <-round.done:
		if round.err != nil {
			return round.err
		}
		if g.rank != root {
			copy(data, round.data)
		}
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// BroadcastTensors broadcasts each of the given tensors from the root member
// to its peers, e.g. to push a freshly loaded or initialized shared component
// to every device holding a replica.
func BroadcastTensors(ctx context.Context, group Group, tensors [][]float32, root int) error {
	for _, tensor := range tensors {
		if err := group.Broadcast(ctx, tensor, root); err != nil {
			return err
		}
	}
	return nil
}
