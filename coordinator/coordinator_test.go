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
	"context"
	"testing"

	"github.com/convoy-ml/convoy/communicator"
	"github.com/convoy-ml/convoy/config"
	"github.com/convoy-ml/convoy/internal/topology"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGroup is a communication group that records nothing and reduces
// nothing; map construction only needs a handle.
type stubGroup struct {
	ranks []int
}

func (g stubGroup) Ranks() []int                                    { return g.ranks }
func (g stubGroup) AllReduceSum(context.Context, []float32) error   { return nil }
func (g stubGroup) Broadcast(context.Context, []float32, int) error { return nil }

// recordingFactory records every group-creation call in order.
type recordingFactory struct {
	calls [][]int
}

func (f *recordingFactory) new(globalRanks []int) (communicator.Group, error) {
	f.calls = append(f.calls, globalRanks)
	return stubGroup{ranks: globalRanks}, nil
}

const minimalDocument = `
world_size: 2
n_nodes: 1
gpus_per_node: 2
accum_count: 1
task_distribution_strategy: roundrobin
enc_layers: [6]
dec_layers: [6]
data:
  train_a-b: {src_tgt: a-b}
  train_c-d: {src_tgt: c-d}
`

// The scenario used throughout: 4 tasks on 2 nodes with 2 devices each,
// with an unconventional assignment (two tasks on 0:1, none on 1:1).
// Encoder component x is referenced from devices 0:0 and 0:1; decoder
// component y from 0:0 and 1:0; xx, xxx and yy never leave a single device.
const basicDocument = `
world_size: 4
n_nodes: 2
gpus_per_node: 2
accum_count: 8
task_distribution_strategy: weighted_sampling
enc_layers: [6]
dec_layers: [6]
data:
  train_a-b:
    src_tgt: a-b
    weight: 2
    node_gpu: "0:0"
    enc_sharing_group: [x]
    dec_sharing_group: [y]
  train_c-d:
    src_tgt: c-d
    node_gpu: "0:1"
    enc_sharing_group: [xx]
    dec_sharing_group: [yy]
  train_a-d:
    src_tgt: a-d
    introduce_at_training_step: 10
    node_gpu: "0:1"
    enc_sharing_group: [x]
    dec_sharing_group: [yy]
  train_e-b:
    src_tgt: e-b
    node_gpu: "1:0"
    enc_sharing_group: [xxx]
    dec_sharing_group: [y]
`

func build(t *testing.T, document string) *Coordinator {
	t.Helper()
	cfg, err := config.Parse([]byte(document))
	require.NoError(t, err)
	world, err := cfg.World()
	require.NoError(t, err)
	global, err := FromConfig(cfg, world)
	require.NoError(t, err)
	return global
}

func TestFromConfigMinimal(t *testing.T) {
	global := build(t, minimalDocument)
	require.Len(t, global.Tasks(), 2)
	assert.True(t, global.WorldContext().IsDistributed())

	// no explicit node_gpu: devices are filled in ascending rank order
	assert.Equal(t, 0, global.Tasks()[0].NodeRank)
	assert.Equal(t, 0, global.Tasks()[0].LocalRank)
	assert.Equal(t, 0, global.Tasks()[1].NodeRank)
	assert.Equal(t, 1, global.Tasks()[1].LocalRank)

	// single stack without explicit sharing: components are language specific
	assert.Equal(t, []string{"a"}, global.Tasks()[0].EncoderID)
	assert.Equal(t, []string{"b"}, global.Tasks()[0].DecoderID)

	local, err := global.Localize(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, local.NodeRank())
	assert.Equal(t, 1, local.LocalRank())
	assert.Equal(t, 1, local.GlobalRank())

	encoders, err := local.Encoders(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"c"}, encoders)
	decoders, err := local.Decoders(0)
	require.NoError(t, err)
	assert.Equal(t, []string{"d"}, decoders)
	assert.Equal(t, []string{"train_c-d"}, local.CorpusIDs())
}

func TestFromConfigBasic(t *testing.T) {
	global := build(t, basicDocument)
	require.Len(t, global.Tasks(), 4)

	local, err := global.Localize(0, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"train_c-d", "train_a-d"}, local.CorpusIDs())
	assert.Equal(t, []string{"c", "a"}, local.SrcLangs())
	assert.Equal(t, []string{"d", "d"}, local.TgtLangs())

	// the embedded registry is global, not filtered by rank
	assert.Len(t, local.Coordinator.Tasks(), 4)

	_, err = local.Encoders(1)
	assert.Error(t, err)
}

func TestDefaultPlacements(t *testing.T) {
	got := defaultPlacements(5, 2, 2)
	want := [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {0, 0}}
	assert.Equal(t, want, got)

	// pure function of its arguments
	assert.Equal(t, got, defaultPlacements(5, 2, 2))
}

func TestBuildComponentMaps(t *testing.T) {
	global := build(t, basicDocument)
	factory := new(recordingFactory)
	require.NoError(t, global.BuildComponentMaps(factory.new))

	// every process must issue these calls in exactly this order
	assert.Equal(t, [][]int{
		{0, 1}, // src_emb a
		{0, 2}, // tgt_emb b
		{0, 1}, // encoder 0:x
		{0, 2}, // decoder 0:y
	}, factory.calls)

	ranks, found := global.DeviceRanks(ComponentKey{Type: Encoder, ComponentID: ComponentID{LayerStackIndex: 0, ID: "x"}})
	require.True(t, found)
	assert.Equal(t, []int{0, 1}, ranks)

	for _, id := range []string{"xx", "xxx"} {
		ranks, found = global.DeviceRanks(ComponentKey{Type: Encoder, ComponentID: ComponentID{LayerStackIndex: 0, ID: id}})
		require.True(t, found, id)
		assert.Len(t, ranks, 1, id)
	}

	groups, err := global.ComponentGroups()
	require.NoError(t, err)
	require.Len(t, groups[Encoder], 1)
	assert.Equal(t, "x", groups[Encoder][0].Key.ID)
	assert.Equal(t, 0, groups[Encoder][0].Owner)
	require.Len(t, groups[Decoder], 1)
	assert.Equal(t, "y", groups[Decoder][0].Key.ID)
	require.Len(t, groups[SrcEmb], 1)
	assert.Equal(t, "a", groups[SrcEmb][0].Key.Lang)
	require.Len(t, groups[TgtEmb], 1)
	assert.Equal(t, "b", groups[TgtEmb][0].Key.Lang)
}

func TestBuildComponentMapsDeterministic(t *testing.T) {
	first, second := build(t, basicDocument), build(t, basicDocument)
	firstFactory, secondFactory := new(recordingFactory), new(recordingFactory)
	require.NoError(t, first.BuildComponentMaps(firstFactory.new))
	require.NoError(t, second.BuildComponentMaps(secondFactory.new))

	assert.Equal(t, firstFactory.calls, secondFactory.calls)
	assert.Equal(t, first.keyOrder, second.keyOrder)
	assert.Equal(t, first.deviceSets, second.deviceSets)
}

func TestLocalGroups(t *testing.T) {
	global := build(t, basicDocument)
	factory := new(recordingFactory)
	require.NoError(t, global.BuildComponentMaps(factory.new))

	type want struct {
		nodeRank, localRank int
		types               map[ComponentType][]string
	}
	for _, tt := range []want{
		{0, 0, map[ComponentType][]string{SrcEmb: {"a"}, TgtEmb: {"b"}, Encoder: {"x"}, Decoder: {"y"}}},
		{0, 1, map[ComponentType][]string{SrcEmb: {"a"}, Encoder: {"x"}}},
		{1, 0, map[ComponentType][]string{TgtEmb: {"b"}, Decoder: {"y"}}},
	} {
		local, err := global.Localize(tt.nodeRank, tt.localRank)
		require.NoError(t, err)
		groups, err := local.LocalGroups()
		require.NoError(t, err)

		for _, typ := range ComponentTypes {
			ids := make([]string, 0, len(groups[typ]))
			for _, entry := range groups[typ] {
				if typ == SrcEmb || typ == TgtEmb {
					ids = append(ids, entry.Key.Lang)
				} else {
					ids = append(ids, entry.Key.ID)
				}
				assert.Equal(t, 0, entry.Owner)
				assert.NotNil(t, entry.Group)
			}
			if len(tt.types[typ]) == 0 {
				assert.Empty(t, ids, "%d:%d %s", tt.nodeRank, tt.localRank, typ)
			} else {
				assert.Equal(t, tt.types[typ], ids, "%d:%d %s", tt.nodeRank, tt.localRank, typ)
			}
		}
	}

	// no tasks were placed on 1:1, so no strategy can be built for it
	_, err := global.Localize(1, 1)
	assert.Error(t, err)
}

func TestComponentMapsNotBuilt(t *testing.T) {
	global := build(t, basicDocument)

	_, err := global.ComponentGroups()
	assert.Error(t, err)

	local, err := global.Localize(0, 0)
	require.NoError(t, err)
	_, err = local.LocalGroups()
	assert.Error(t, err)
	_, err = local.GroupedComponents(func(ComponentKey) (Module, error) { return nil, nil })
	assert.Error(t, err)
}

type stubModule struct {
	key ComponentKey
}

func (m stubModule) Parameters() []*communicator.Gradient { return nil }

func TestGroupedComponents(t *testing.T) {
	global := build(t, basicDocument)
	require.NoError(t, global.BuildComponentMaps(new(recordingFactory).new))

	local, err := global.Localize(0, 1)
	require.NoError(t, err)
	modules, err := local.GroupedComponents(func(key ComponentKey) (Module, error) {
		return stubModule{key: key}, nil
	})
	require.NoError(t, err)

	langs := func(entries []ModuleEntry) (out []string) {
		for _, entry := range entries {
			out = append(out, entry.Key.Lang)
		}
		return
	}
	ids := func(entries []ModuleEntry) (out []string) {
		for _, entry := range entries {
			out = append(out, entry.Key.ID)
		}
		return
	}

	// unlike LocalGroups, components on a single device are included,
	// and a component referenced by both local tasks appears once
	assert.Equal(t, []string{"c", "a"}, langs(modules[SrcEmb]))
	assert.Equal(t, []string{"d"}, langs(modules[TgtEmb]))
	assert.Equal(t, []string{"xx", "x"}, ids(modules[Encoder]))
	assert.Equal(t, []string{"yy"}, ids(modules[Decoder]))

	for _, typ := range ComponentTypes {
		for _, entry := range modules[typ] {
			assert.Equal(t, entry.Key, entry.Module.(stubModule).key)
		}
	}
}

func TestBuildComponentMapsNotDistributed(t *testing.T) {
	global := build(t, `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 1
task_distribution_strategy: roundrobin
enc_layers: [6]
dec_layers: [6]
data:
  train_a-b: {src_tgt: a-b}
  train_c-d: {src_tgt: c-d}
`)
	require.NoError(t, global.BuildComponentMaps(func(globalRanks []int) (communicator.Group, error) {
		t.Fatalf("group factory invoked on a non-distributed topology: %v", globalRanks)
		return nil, nil
	}))

	groups, err := global.ComponentGroups()
	require.NoError(t, err)
	for _, typ := range ComponentTypes {
		assert.Empty(t, groups[typ])
	}

	local, err := global.Localize(0, 0)
	require.NoError(t, err)
	localGroups, err := local.LocalGroups()
	require.NoError(t, err)
	for _, typ := range ComponentTypes {
		assert.Empty(t, localGroups[typ])
	}
}

func TestNewValidation(t *testing.T) {
	world, err := topology.New(2, 4, 2)
	require.NoError(t, err)

	task := func(id string, encoder, decoder []string) TaskSpec {
		return TaskSpec{CorpusID: id, SrcLang: "a", TgtLang: "b", EncoderID: encoder, DecoderID: decoder}
	}

	// mismatched sharing assignment lengths
	_, err = New([]TaskSpec{
		task("one", []string{"x", "xx"}, []string{"y"}),
		task("two", []string{"x"}, []string{"y"}),
	}, world, 1, RoundRobin)
	assert.Error(t, err)

	// duplicate corpus id
	_, err = New([]TaskSpec{
		task("one", []string{"x"}, []string{"y"}),
		task("one", []string{"x"}, []string{"y"}),
	}, world, 1, RoundRobin)
	assert.Error(t, err)

	// placement outside the world
	bad := task("one", []string{"x"}, []string{"y"})
	bad.NodeRank = 7
	_, err = New([]TaskSpec{bad}, world, 1, RoundRobin)
	assert.Error(t, err)

	// empty registry
	_, err = New(nil, world, 1, RoundRobin)
	assert.Error(t, err)

	// adapter referencing a layer stack that does not exist; indexing it
	// during map construction would be an out-of-range panic
	withAdapter := task("one", []string{"x"}, []string{"y"})
	withAdapter.EncoderAdapterIDs = []AdapterRef{{LayerStackIndex: 1, Group: "low_rank", SubID: "sub"}}
	_, err = New([]TaskSpec{withAdapter}, world, 1, RoundRobin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "layer_stack_index 1")

	withAdapter = task("one", []string{"x"}, []string{"y"})
	withAdapter.DecoderAdapterIDs = []AdapterRef{{LayerStackIndex: -1, Group: "low_rank", SubID: "sub"}}
	_, err = New([]TaskSpec{withAdapter}, world, 1, RoundRobin)
	assert.Error(t, err)
}

func TestFromConfigMultiStackRequiresExplicitSharing(t *testing.T) {
	cfg, err := config.Parse([]byte(`
world_size: 2
n_nodes: 1
gpus_per_node: 2
accum_count: 1
task_distribution_strategy: roundrobin
enc_layers: [6, 6]
dec_layers: [6]
data:
  train_a-b: {src_tgt: a-b}
`))
	require.NoError(t, err)
	world, err := cfg.World()
	require.NoError(t, err)
	_, err = FromConfig(cfg, world)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "enc_sharing_group")
}

func TestFromConfigMixedPlacement(t *testing.T) {
	cfg, err := config.Parse([]byte(`
world_size: 2
n_nodes: 1
gpus_per_node: 2
accum_count: 1
task_distribution_strategy: roundrobin
enc_layers: [6]
dec_layers: [6]
data:
  train_a-b: {src_tgt: a-b, node_gpu: "0:0"}
  train_c-d: {src_tgt: c-d}
`))
	require.NoError(t, err)
	world, err := cfg.World()
	require.NoError(t, err)
	_, err = FromConfig(cfg, world)
	assert.Error(t, err)
}

func TestAdapterComponentMaps(t *testing.T) {
	global := build(t, `
world_size: 2
n_nodes: 1
gpus_per_node: 2
accum_count: 1
task_distribution_strategy: roundrobin
enc_layers: [6]
dec_layers: [6]
adapters:
  encoder:
    low_rank:
      layer_stack_index: 0
data:
  train_a-b:
    src_tgt: a-b
    node_gpu: "0:0"
    enc_sharing_group: [x]
    dec_sharing_group: [y]
    adapters:
      encoder:
        - [low_rank, sub]
  train_c-b:
    src_tgt: c-b
    node_gpu: "0:1"
    enc_sharing_group: [x]
    dec_sharing_group: [yy]
    adapters:
      encoder:
        - [low_rank, sub]
`)
	factory := new(recordingFactory)
	require.NoError(t, global.BuildComponentMaps(factory.new))

	key := ComponentKey{Type: EncoderAdapters, ComponentID: ComponentID{
		LayerStackIndex: 0, ID: "x", AdapterGroup: "low_rank", SubID: "sub",
	}}
	ranks, found := global.DeviceRanks(key)
	require.True(t, found)
	assert.Equal(t, []int{0, 1}, ranks)

	groups, err := global.ComponentGroups()
	require.NoError(t, err)
	require.Len(t, groups[EncoderAdapters], 1)
	assert.Equal(t, key, groups[EncoderAdapters][0].Key)
}

func BenchmarkBuildComponentMaps(b *testing.B) {
	cfg, err := config.Parse([]byte(basicDocument))
	if err != nil {
		b.Fatal(err)
	}
	world, err := cfg.World()
	if err != nil {
		b.Fatal(err)
	}
	global, err := FromConfig(cfg, world)
	if err != nil {
		b.Fatal(err)
	}
	factory := func(globalRanks []int) (communicator.Group, error) {
		return stubGroup{ranks: globalRanks}, nil
	}

	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		if err := global.BuildComponentMaps(factory); err != nil {
			b.Fatal(err)
		}
	}
}
