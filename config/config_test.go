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

package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `
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

func TestParse(t *testing.T) {
	config, err := Parse([]byte(document))
	require.NoError(t, err)

	assert.Equal(t, 4, config.WorldSize)
	assert.Equal(t, 2, config.NNodes)
	assert.Equal(t, 2, config.GPUsPerNode)
	assert.Equal(t, 8, config.AccumCount)
	assert.Equal(t, "weighted_sampling", config.TaskDistribution)

	// corpus order must follow the document, not map iteration order
	assert.Equal(t, []string{"train_a-b", "train_c-d", "train_a-d", "train_e-b"}, config.Tasks.IDs())

	corpus := config.Tasks.Get("train_a-b")
	require.NotNil(t, corpus)
	src, tgt, err := corpus.Langs()
	require.NoError(t, err)
	assert.Equal(t, "a", src)
	assert.Equal(t, "b", tgt)
	assert.Equal(t, 2., corpus.Weight)

	// weight defaults to 1 when omitted
	assert.Equal(t, 1., config.Tasks.Get("train_c-d").Weight)
	assert.Equal(t, 10, config.Tasks.Get("train_a-d").IntroduceAtTrainingStep)

	nodeRank, localRank, ok, err := config.Tasks.Get("train_e-b").Placement()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, nodeRank)
	assert.Equal(t, 0, localRank)

	world, err := config.World()
	require.NoError(t, err)
	assert.True(t, world.IsDistributed())
	assert.Equal(t, 4, world.WorldSize())
}

func TestParseAdapters(t *testing.T) {
	config, err := Parse([]byte(`
world_size: 2
n_nodes: 1
gpus_per_node: 2
accum_count: 1
task_distribution_strategy: roundrobin
enc_layers: [6, 6]
dec_layers: [6]
adapters:
  encoder:
    low_rank:
      layer_stack_index: 1
data:
  train_a-b:
    src_tgt: a-b
    enc_sharing_group: [x, shared]
    dec_sharing_group: [y]
    adapters:
      encoder:
        - [low_rank, a]
`))
	require.NoError(t, err)
	corpus := config.Tasks.Get("train_a-b")
	require.NotNil(t, corpus.Adapters)
	require.Len(t, corpus.Adapters.Encoder, 1)
	assert.Equal(t, []string{"low_rank", "a"}, corpus.Adapters.Encoder[0])
	assert.Equal(t, 1, config.Adapters.Encoder["low_rank"].LayerStackIndex)
}

func TestParseInvalid(t *testing.T) {
	for name, document := range map[string]string{
		"no corpora": `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 1
enc_layers: [6]
dec_layers: [6]
data: {}
`,
		"bad src_tgt": `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 1
enc_layers: [6]
dec_layers: [6]
data:
  bad: {src_tgt: nodash}
`,
		"negative weight": `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 1
enc_layers: [6]
dec_layers: [6]
data:
  bad: {src_tgt: a-b, weight: -1}
`,
		"bad node_gpu": `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 1
enc_layers: [6]
dec_layers: [6]
data:
  bad: {src_tgt: a-b, node_gpu: "zero"}
`,
		"zero accum_count": `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 0
enc_layers: [6]
dec_layers: [6]
data:
  ok: {src_tgt: a-b}
`,
		"adapter stack index out of range": `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 1
enc_layers: [6]
dec_layers: [6]
adapters:
  encoder:
    low_rank:
      layer_stack_index: 1
data:
  ok:
    src_tgt: a-b
    adapters:
      encoder:
        - [low_rank, a]
`,
		"negative decoder adapter stack index": `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 1
enc_layers: [6]
dec_layers: [6]
adapters:
  decoder:
    low_rank:
      layer_stack_index: -1
data:
  ok:
    src_tgt: a-b
    adapters:
      decoder:
        - [low_rank, a]
`,
		"undeclared adapter group": `
world_size: 1
n_nodes: 1
gpus_per_node: 1
accum_count: 1
enc_layers: [6]
dec_layers: [6]
data:
  ok:
    src_tgt: a-b
    adapters:
      encoder:
        - [missing, a]
`,
	} {
		_, err := Parse([]byte(document))
		assert.Error(t, err, name)
	}
}
