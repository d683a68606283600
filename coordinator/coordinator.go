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

// Package coordinator schedules tasks (language pairs) to devices.  It has
// the responsibility for all resources that need to be consistently assigned
// to nodes and devices: which task trains where, which parameter components
// are replicated across devices, and which communication group synchronizes
// each replicated component.  A Coordinator is the global view shared by all
// processes; a LocalCoordinator is the view bound to one device.
package coordinator

import (
	"github.com/convoy-ml/convoy/communicator"
	"github.com/convoy-ml/convoy/config"
	"github.com/convoy-ml/convoy/internal/topology"
	"github.com/golang/glog"
	"github.com/pkg/errors"
)

// GroupEntry is one replicated component together with its elected owner and
// communication group.  The owner is the numerically smallest member rank,
// used as the broadcast root for freshly loaded or initialized parameters.
type GroupEntry struct {
	Key   ComponentKey
	Owner int
	Group communicator.Group
}

// Module is a handle to a concrete parameter-bearing module instance,
// resolved by the model-construction collaborator.
type Module interface {
	Parameters() []*communicator.Gradient
}

// ModuleResolver resolves a component key to the concrete module instance
// built for it on this device.
type ModuleResolver func(ComponentKey) (Module, error)

// ModuleEntry is one component on this device together with its resolved
// module instance.
type ModuleEntry struct {
	Key    ComponentKey
	Module Module
}

// Coordinator is the global task-queue coordinator.  It holds the full task
// registry and, after BuildComponentMaps, the component-to-devices and
// component-to-group maps.  The global view intentionally has no
// single-device identity; use Localize to obtain one.
type Coordinator struct {
	tasks    []TaskSpec
	world    *topology.WorldContext
	accum    int
	strategy StrategyType

	usesAdapters bool

	built      bool
	keyOrder   []ComponentKey
	deviceSets map[ComponentKey][]int
	groups     map[ComponentKey]GroupEntry
}

// New creates a new coordinator with the given task registry.  accum is the
// number of tasks sampled per communication round.
func New(tasks []TaskSpec, world *topology.WorldContext, accum int, strategy StrategyType) (*Coordinator, error) {
	if len(tasks) == 0 {
		return nil, errors.New("empty task registry")
	}
	if accum < 1 {
		return nil, errors.Errorf("invalid accum_count %d", accum)
	}

	encStacks, decStacks := len(tasks[0].EncoderID), len(tasks[0].DecoderID)
	seen := make(map[string]struct{}, len(tasks))
	usesAdapters := false
	for i := range tasks {
		task := &tasks[i]
		if task.CorpusID == "" {
			return nil, errors.Errorf("task %d has no corpus id", i)
		}
		if _, found := seen[task.CorpusID]; found {
			return nil, errors.Errorf("duplicate corpus id %q", task.CorpusID)
		}
		seen[task.CorpusID] = struct{}{}
		if task.Weight < 0 {
			return nil, errors.Errorf("corpus %q: invalid weight %v", task.CorpusID, task.Weight)
		}
		if task.IntroduceAtTrainingStep < 0 {
			return nil, errors.Errorf("corpus %q: invalid introduce_at_training_step %d", task.CorpusID, task.IntroduceAtTrainingStep)
		}
		if len(task.EncoderID) != encStacks || encStacks == 0 {
			return nil, errors.Errorf("corpus %q: encoder sharing assignment has %d entries, want %d",
				task.CorpusID, len(task.EncoderID), encStacks)
		}
		if len(task.DecoderID) != decStacks || decStacks == 0 {
			return nil, errors.Errorf("corpus %q: decoder sharing assignment has %d entries, want %d",
				task.CorpusID, len(task.DecoderID), decStacks)
		}
		if _, err := world.Localize(task.NodeRank, task.LocalRank); err != nil {
			return nil, errors.Wrapf(err, "corpus %q placement", task.CorpusID)
		}
		for _, adapter := range task.EncoderAdapterIDs {
			if adapter.LayerStackIndex < 0 || len(task.EncoderID) <= adapter.LayerStackIndex {
				return nil, errors.Errorf("corpus %q: encoder adapter %s %s: layer_stack_index %d out of range: %d encoder stacks",
					task.CorpusID, adapter.Group, adapter.SubID, adapter.LayerStackIndex, len(task.EncoderID))
			}
		}
		for _, adapter := range task.DecoderAdapterIDs {
			if adapter.LayerStackIndex < 0 || len(task.DecoderID) <= adapter.LayerStackIndex {
				return nil, errors.Errorf("corpus %q: decoder adapter %s %s: layer_stack_index %d out of range: %d decoder stacks",
					task.CorpusID, adapter.Group, adapter.SubID, adapter.LayerStackIndex, len(task.DecoderID))
			}
		}
		usesAdapters = usesAdapters || len(task.EncoderAdapterIDs) > 0 || len(task.DecoderAdapterIDs) > 0
	}

	return &Coordinator{
		tasks:        tasks,
		world:        world,
		accum:        accum,
		strategy:     strategy,
		usesAdapters: usesAdapters,
	}, nil
}

// FromConfig builds the task registry from the configuration and creates the
// global coordinator.  When no explicit node_gpu placement is configured,
// tasks are assigned to devices by cycling all (node_rank, local_rank) pairs
// in ascending order, repeating as needed.
func FromConfig(cfg *config.Config, world *topology.WorldContext) (*Coordinator, error) {
	strategy, err := ParseStrategyType(cfg.TaskDistribution)
	if err != nil {
		return nil, err
	}

	ids := cfg.Tasks.IDs()
	placements, err := placements(cfg, world)
	if err != nil {
		return nil, err
	}

	tasks := make([]TaskSpec, 0, len(ids))
	for index, id := range ids {
		corpus := cfg.Tasks.Get(id)
		src, tgt, err := corpus.Langs()
		if err != nil {
			return nil, errors.Wrapf(err, "corpus %q", id)
		}

		encoderID, err := sharingGroup(corpus.EncSharingGroup, len(cfg.EncLayers), src, id, "enc_sharing_group")
		if err != nil {
			return nil, err
		}
		decoderID, err := sharingGroup(corpus.DecSharingGroup, len(cfg.DecLayers), tgt, id, "dec_sharing_group")
		if err != nil {
			return nil, err
		}

		var encoderAdapters, decoderAdapters []AdapterRef
		if corpus.Adapters != nil {
			encoderAdapters = adapterRefs(corpus.Adapters.Encoder, cfg.Adapters.Encoder)
			decoderAdapters = adapterRefs(corpus.Adapters.Decoder, cfg.Adapters.Decoder)
		}

		tasks = append(tasks, TaskSpec{
			NodeRank:                placements[index][0],
			LocalRank:               placements[index][1],
			SrcLang:                 src,
			TgtLang:                 tgt,
			EncoderID:               encoderID,
			DecoderID:               decoderID,
			CorpusID:                id,
			Weight:                  corpus.Weight,
			IntroduceAtTrainingStep: corpus.IntroduceAtTrainingStep,
			EncoderAdapterIDs:       encoderAdapters,
			DecoderAdapterIDs:       decoderAdapters,
		})
	}

	return New(tasks, world, cfg.AccumCount, strategy)
}

// placements resolves the (node_rank, local_rank) assignment of every task.
func placements(cfg *config.Config, world *topology.WorldContext) ([][2]int, error) {
	ids := cfg.Tasks.IDs()
	if !world.IsDistributed() {
		return make([][2]int, len(ids)), nil
	}

	explicit := 0
	out := make([][2]int, len(ids))
	for index, id := range ids {
		nodeRank, localRank, ok, err := cfg.Tasks.Get(id).Placement()
		if err != nil {
			return nil, errors.Wrapf(err, "corpus %q", id)
		}
		if ok {
			explicit++
			out[index] = [2]int{nodeRank, localRank}
		}
	}
	switch explicit {
	case len(ids):
		return out, nil
	case 0:
		return defaultPlacements(len(ids), world.NodeCount(), world.DevicesPerNode()), nil
	default:
		return nil, errors.Errorf("node_gpu must be set on all corpora or none: %d of %d set", explicit, len(ids))
	}
}

// defaultPlacements yields devices in ascending rank order, repeating as
// necessary to cover all tasks.  It is a pure function of its arguments.
func defaultPlacements(nTasks, nNodes, devicesPerNode int) [][2]int {
	out := make([][2]int, 0, nTasks)
	for len(out) < nTasks {
		for nodeRank := 0; nodeRank < nNodes && len(out) < nTasks; nodeRank++ {
			for localRank := 0; localRank < devicesPerNode && len(out) < nTasks; localRank++ {
				out = append(out, [2]int{nodeRank, localRank})
			}
		}
	}
	return out
}

// sharingGroup resolves one side's sharing-group assignment.  With a single
// layer stack and no explicit assignment the component is language specific;
// with several stacks the assignment cannot be defaulted and its omission is
// a configuration error.
func sharingGroup(explicit []string, stacks int, lang, id, field string) ([]string, error) {
	if len(explicit) == 0 {
		if stacks != 1 {
			return nil, errors.Errorf("corpus %q: with more than one layer stack you must explicitly define %s", id, field)
		}
		return []string{lang}, nil
	}
	if len(explicit) != stacks {
		return nil, errors.Errorf("corpus %q: %s has %d entries, want one per layer stack (%d)", id, field, len(explicit), stacks)
	}
	return explicit, nil
}

func adapterRefs(pairs [][]string, index map[string]config.AdapterGroup) []AdapterRef {
	if len(pairs) == 0 {
		return nil
	}
	refs := make([]AdapterRef, 0, len(pairs))
	for _, pair := range pairs {
		refs = append(refs, AdapterRef{
			LayerStackIndex: index[pair[0]].LayerStackIndex,
			Group:           pair[0],
			SubID:           pair[1],
		})
	}
	return refs
}

// Tasks returns the full task registry.  The returned slice is read-only.
func (c *Coordinator) Tasks() []TaskSpec {
	return c.tasks
}

// WorldContext returns the world this coordinator schedules for.
func (c *Coordinator) WorldContext() *topology.WorldContext {
	return c.world
}

// AccumCount returns the number of tasks sampled per communication round.
func (c *Coordinator) AccumCount() int {
	return c.accum
}

func (c *Coordinator) tasksOnDevice(nodeRank, localRank int) []TaskSpec {
	tasks := make([]TaskSpec, 0, len(c.tasks))
	for _, task := range c.tasks {
		if task.NodeRank == nodeRank && task.LocalRank == localRank {
			tasks = append(tasks, task)
		}
	}
	return tasks
}

// BuildComponentMaps derives which devices hold each component and creates
// one communication group per component replicated on two or more devices.
// It traverses all (node_rank, local_rank) pairs in ascending order, the
// local tasks in registration order, and each task's component references in
// a fixed order, so that every process, computing the maps independently,
// issues its group-creation calls in an identical order; a divergent order
// would deadlock the collective group creation.  If the topology is not
// distributed the maps are emptied and no group is created.
func (c *Coordinator) BuildComponentMaps(factory communicator.GroupFactory) error {
	c.keyOrder = nil
	c.deviceSets = make(map[ComponentKey][]int)
	c.groups = make(map[ComponentKey]GroupEntry)
	c.built = true

	if !c.world.IsDistributed() {
		return nil
	}

	for nodeRank := 0; nodeRank < c.world.NodeCount(); nodeRank++ {
		for localRank := 0; localRank < c.world.DevicesPerNode(); localRank++ {
			globalRank := nodeRank*c.world.DevicesPerNode() + localRank
			for _, task := range c.tasksOnDevice(nodeRank, localRank) {
				for _, key := range task.componentKeys() {
					ranks, found := c.deviceSets[key]
					if !found {
						c.keyOrder = append(c.keyOrder, key)
					}
					// devices are visited in ascending global rank order
					if len(ranks) == 0 || ranks[len(ranks)-1] != globalRank {
						c.deviceSets[key] = append(ranks, globalRank)
					}
				}
			}
		}
	}

	for _, key := range c.keyOrder {
		ranks := c.deviceSets[key]
		if len(ranks) < 2 {
			// only create a group if the component is on 2 or more devices
			continue
		}
		members := make([]int, len(ranks))
		copy(members, ranks)
		group, err := factory(members)
		if err != nil {
			return errors.Wrapf(err, "create group for %s on ranks %v", key, ranks)
		}
		c.groups[key] = GroupEntry{Key: key, Owner: ranks[0], Group: group}
	}
	return nil
}

// DeviceRanks returns the ascending global ranks holding the given
// component, as derived by BuildComponentMaps.
func (c *Coordinator) DeviceRanks(key ComponentKey) ([]int, bool) {
	ranks, found := c.deviceSets[key]
	return ranks, found
}

// ComponentGroups returns every communication group, grouped by component
// type.  The slices follow the deterministic construction order.
func (c *Coordinator) ComponentGroups() (map[ComponentType][]GroupEntry, error) {
	if !c.built {
		return nil, errors.New("component maps not built: call BuildComponentMaps first")
	}
	groups := make(map[ComponentType][]GroupEntry, len(ComponentTypes))
	for _, typ := range ComponentTypes {
		groups[typ] = nil
	}
	for _, key := range c.keyOrder {
		if entry, found := c.groups[key]; found {
			groups[key.Type] = append(groups[key.Type], entry)
		}
	}
	return groups, nil
}

// Localize returns the coordinator view bound to the given device.  It
// shares the global task registry and any already-computed component maps,
// and scopes task queries to tasks placed on the device.
func (c *Coordinator) Localize(nodeRank, localRank int) (*LocalCoordinator, error) {
	device, err := c.world.Localize(nodeRank, localRank)
	if err != nil {
		return nil, err
	}
	if err := device.Validate(c.world); err != nil {
		return nil, err
	}
	strategy, err := NewStrategy(c.strategy, c.tasksOnDevice(nodeRank, localRank), nil)
	if err != nil {
		return nil, errors.Wrapf(err, "creating task distribution strategy on %d:%d", nodeRank, localRank)
	}
	return &LocalCoordinator{
		Coordinator: c,
		device:      device,
		taskDist:    strategy,
	}, nil
}

// LocalCoordinator is a coordinator view bound to one device.  Unlike the
// global view it has a device identity, a task distribution strategy, and
// task queries scoped to its own placement.
type LocalCoordinator struct {
	*Coordinator
	device   topology.DeviceContext
	taskDist Strategy
}

// Device returns the device context this view is bound to.
func (l *LocalCoordinator) Device() topology.DeviceContext {
	return l.device
}

// NodeRank returns the node rank of this device.
func (l *LocalCoordinator) NodeRank() int {
	return l.device.NodeRank()
}

// LocalRank returns the local rank of this device.
func (l *LocalCoordinator) LocalRank() int {
	return l.device.LocalRank()
}

// GlobalRank returns the global rank of this device.
func (l *LocalCoordinator) GlobalRank() int {
	return l.device.GlobalRank()
}

// Tasks returns the tasks placed on this device, in registration order.
func (l *LocalCoordinator) Tasks() []TaskSpec {
	return l.tasksOnDevice(l.device.NodeRank(), l.device.LocalRank())
}

// CorpusIDs returns the corpus ids of the tasks placed on this device.
func (l *LocalCoordinator) CorpusIDs() []string {
	tasks := l.Tasks()
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		ids = append(ids, task.CorpusID)
	}
	return ids
}

// SampleTaskIDs draws the corpus ids to train on during the next
// communication round, according to the task distribution strategy.
func (l *LocalCoordinator) SampleTaskIDs(step int) ([]string, error) {
	return l.taskDist.SampleTaskIDs(l.accum, step)
}

// LocalGroups returns the communication groups of the components replicated
// on this device and at least one other, grouped by component type.  The
// slices follow the deterministic construction order, which is identical on
// every device; iterating them to issue collective calls is therefore safe.
func (l *LocalCoordinator) LocalGroups() (map[ComponentType][]GroupEntry, error) {
	if !l.built {
		return nil, errors.New("component maps not built: call BuildComponentMaps first")
	}
	groups := make(map[ComponentType][]GroupEntry, len(ComponentTypes))
	for _, typ := range ComponentTypes {
		groups[typ] = nil
	}
	globalRank := l.device.GlobalRank()
	for _, key := range l.keyOrder {
		if !containsRank(l.deviceSets[key], globalRank) {
			continue
		}
		entry, found := l.groups[key]
		if !found {
			// replicated only on this device, nothing to communicate
			glog.Infof("%s is co-located on %s, no group", key, l.device.ID())
			continue
		}
		groups[key.Type] = append(groups[key.Type], entry)
	}
	return groups, nil
}

// GroupedComponents resolves the concrete module instance of every component
// referenced by a task on this device, including components that live on a
// single device.  This is how an external broadcaster learns which module to
// read from the owner and push to the peers.
func (l *LocalCoordinator) GroupedComponents(resolver ModuleResolver) (map[ComponentType][]ModuleEntry, error) {
	if !l.built {
		return nil, errors.New("component maps not built: call BuildComponentMaps first")
	}
	modules := make(map[ComponentType][]ModuleEntry, len(ComponentTypes))
	for _, typ := range ComponentTypes {
		modules[typ] = nil
	}
	seen := make(map[ComponentKey]struct{})
	for _, task := range l.Tasks() {
		for _, key := range task.componentKeys() {
			if _, found := seen[key]; found {
				continue
			}
			seen[key] = struct{}{}
			module, err := resolver(key)
			if err != nil {
				return nil, errors.Wrapf(err, "resolve %s", key)
			}
			modules[key.Type] = append(modules[key.Type], ModuleEntry{Key: key, Module: module})
		}
	}
	return modules, nil
}

// Encoders returns the encoder sharing-group ids used at the given layer
// stack by the tasks on this device, one per task.
func (l *LocalCoordinator) Encoders(layerStackIndex int) ([]string, error) {
	tasks := l.Tasks()
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if layerStackIndex < 0 || len(task.EncoderID) <= layerStackIndex {
			return nil, errors.Errorf("layer_stack_index %d out of range: %d encoder stacks", layerStackIndex, len(task.EncoderID))
		}
		ids = append(ids, task.EncoderID[layerStackIndex])
	}
	return ids, nil
}

// Decoders returns the decoder sharing-group ids used at the given layer
// stack by the tasks on this device, one per task.
func (l *LocalCoordinator) Decoders(layerStackIndex int) ([]string, error) {
	tasks := l.Tasks()
	ids := make([]string, 0, len(tasks))
	for _, task := range tasks {
		if layerStackIndex < 0 || len(task.DecoderID) <= layerStackIndex {
			return nil, errors.Errorf("layer_stack_index %d out of range: %d decoder stacks", layerStackIndex, len(task.DecoderID))
		}
		ids = append(ids, task.DecoderID[layerStackIndex])
	}
	return ids, nil
}

// SrcLangs returns the source language of each task on this device.
func (l *LocalCoordinator) SrcLangs() []string {
	tasks := l.Tasks()
	langs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		langs = append(langs, task.SrcLang)
	}
	return langs
}

// TgtLangs returns the target language of each task on this device.
func (l *LocalCoordinator) TgtLangs() []string {
	tasks := l.Tasks()
	langs := make([]string, 0, len(tasks))
	for _, task := range tasks {
		langs = append(langs, task.TgtLang)
	}
	return langs
}

func containsRank(ranks []int, rank int) bool {
	for _, r := range ranks {
		if r == rank {
			return true
		}
	}
	return false
}
