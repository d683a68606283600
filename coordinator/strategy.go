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

package coordinator

import (
	"math/rand"
	"time"

	"github.com/pkg/errors"
)

// StrategyType selects one of the task distribution strategies.
type StrategyType int

const (
	// RoundRobin schedules the local tasks in an infinite cycle over their
	// registration order, ignoring weights and curriculum.
	RoundRobin StrategyType = iota
	// WeightedSampling draws tasks with replacement from the categorical
	// distribution found by normalizing the weights of the local tasks
	// whose curriculum starting point has been reached.
	WeightedSampling
)

func (t StrategyType) String() string {
	switch t {
	case RoundRobin:
		return "roundrobin"
	case WeightedSampling:
		return "weighted_sampling"
	default:
		return "invalid"
	}
}

// ParseStrategyType parses a strategy name from the configuration.
func ParseStrategyType(name string) (StrategyType, error) {
	switch name {
	case "roundrobin":
		return RoundRobin, nil
	case "weighted_sampling":
		return WeightedSampling, nil
	default:
		return 0, errors.Errorf("invalid task_distribution_strategy %q", name)
	}
}

// Strategy chooses which tasks' data to sample next on one device.
type Strategy interface {
	// SampleTaskIDs returns the corpus ids of the n tasks to train on
	// during the communication round starting at the given step.
	SampleTaskIDs(n, step int) ([]string, error)
}

// NewStrategy creates a new strategy of the given type over the given local
// tasks.  The strategy set is closed; there is no open-ended subclassing.
// source seeds the random draws of WeightedSampling and may be nil, in which
// case the current time is used.
func NewStrategy(typ StrategyType, tasks []TaskSpec, source rand.Source) (Strategy, error) {
	switch typ {
	case RoundRobin:
		return newRoundRobin(tasks)
	case WeightedSampling:
		if source == nil {
			source = rand.NewSource(time.Now().UnixNano())
		}
		return newWeightedSampling(tasks, rand.New(source))
	default:
		return nil, errors.Errorf("invalid strategy type %d", typ)
	}
}

// roundRobin is an infinite cyclic sequence over the local corpus ids in
// registration order.
type roundRobin struct {
	ids    []string
	cursor int
}

func newRoundRobin(tasks []TaskSpec) (*roundRobin, error) {
	if len(tasks) == 0 {
		return nil, errors.New("no corpora on device")
	}
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.CorpusID)
	}
	return &roundRobin{ids: ids}, nil
}

// SampleTaskIDs returns the next n corpus ids of the cycle.  It uses neither
// weights nor curriculum and never fails.
func (s *roundRobin) SampleTaskIDs(n, step int) ([]string, error) {
	out := make([]string, 0, n)
	for len(out) < n {
		out = append(out, s.ids[s.cursor])
		s.cursor = (s.cursor + 1) % len(s.ids)
	}
	return out, nil
}

// weightedSampling draws corpus ids with replacement, proportionally to the
// weights of the tasks whose curriculum gate has opened.
type weightedSampling struct {
	ids         []string
	weights     []float64
	introduceAt []int
	rng         *rand.Rand
}

func newWeightedSampling(tasks []TaskSpec, rng *rand.Rand) (*weightedSampling, error) {
	if len(tasks) == 0 {
		return nil, errors.New("no corpora on device")
	}
	s := &weightedSampling{
		ids:         make([]string, 0, len(tasks)),
		weights:     make([]float64, 0, len(tasks)),
		introduceAt: make([]int, 0, len(tasks)),
		rng:         rng,
	}
	weightSum := 0.
	eligibleAtStart := false
	allDeferred := true
	for _, task := range tasks {
		s.ids = append(s.ids, task.CorpusID)
		s.weights = append(s.weights, task.Weight)
		s.introduceAt = append(s.introduceAt, task.IntroduceAtTrainingStep)
		weightSum += task.Weight
		eligibleAtStart = eligibleAtStart || (task.Weight > 0 && task.IntroduceAtTrainingStep == 0)
		allDeferred = allDeferred && task.IntroduceAtTrainingStep > 0
	}
	if weightSum <= 0 {
		return nil, errors.New(`can not set "weight" of all corpora on a device to zero`)
	}
	if allDeferred {
		return nil, errors.New(`can not set "introduce_at_training_step" of all corpora on a device to nonzero`)
	}
	if !eligibleAtStart {
		return nil, errors.New("invalid curriculum: no corpus is ready to start in the first step")
	}
	return s, nil
}

// SampleTaskIDs draws n corpus ids independently with replacement from the
// probability simplex over the currently eligible weights.
func (s *weightedSampling) SampleTaskIDs(n, step int) ([]string, error) {
	weights := make([]float64, len(s.weights))
	weightSum := 0.
	for index, weight := range s.weights {
		if s.introduceAt[index] <= step {
			weights[index] = weight
			weightSum += weight
		}
	}
	if weightSum <= 0 {
		return nil, errors.Errorf("no corpus eligible at step %d: all eligible weights are zero", step)
	}

	out := make([]string, 0, n)
	for len(out) < n {
		pivot := s.rng.Float64() * weightSum
		index := 0
		for pivot >= weights[index] && index < len(weights)-1 {
			pivot -= weights[index]
			index++
		}
		out = append(out, s.ids[index])
	}
	return out, nil
}
