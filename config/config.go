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

// Package config reads the training configuration.  The configuration is
// parsed once into an explicit record, validated, and treated as read-only
// for the life of the process.  The order in which corpora appear in the
// configuration is preserved; every process derives its communication groups
// from this order, so it must be identical everywhere.
package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/convoy-ml/convoy/internal/topology"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Config is the validated training configuration.
type Config struct {
	WorldSize        int    `yaml:"world_size"`
	NNodes           int    `yaml:"n_nodes"`
	GPUsPerNode      int    `yaml:"gpus_per_node"`
	AccumCount       int    `yaml:"accum_count"`
	TaskDistribution string `yaml:"task_distribution_strategy"`

	// EncLayers and DecLayers give the depth of each encoder and decoder
	// layer stack; their lengths give the number of stacks.
	EncLayers []int `yaml:"enc_layers"`
	DecLayers []int `yaml:"dec_layers"`

	Adapters *AdapterIndex `yaml:"adapters"`
	Tasks    TaskTable     `yaml:"data"`
}

// AdapterIndex declares the adapters available on each side and the layer
// stack each adapter group is injected into.
type AdapterIndex struct {
	Encoder map[string]AdapterGroup `yaml:"encoder"`
	Decoder map[string]AdapterGroup `yaml:"decoder"`
}

// AdapterGroup describes one adapter group.
type AdapterGroup struct {
	LayerStackIndex int `yaml:"layer_stack_index"`
}

// CorpusConfig describes one training corpus, i.e. one language-pair
// translation direction.
type CorpusConfig struct {
	SrcTgt                  string          `yaml:"src_tgt"`
	Weight                  float64         `yaml:"weight"`
	IntroduceAtTrainingStep int             `yaml:"introduce_at_training_step"`
	NodeGPU                 string          `yaml:"node_gpu"`
	EncSharingGroup         []string        `yaml:"enc_sharing_group"`
	DecSharingGroup         []string        `yaml:"dec_sharing_group"`
	Adapters                *CorpusAdapters `yaml:"adapters"`
}

// CorpusAdapters lists the (adapter group, sub id) pairs a corpus trains.
type CorpusAdapters struct {
	Encoder [][]string `yaml:"encoder"`
	Decoder [][]string `yaml:"decoder"`
}

// Langs splits the src_tgt field into its source and target languages.
func (c *CorpusConfig) Langs() (src, tgt string, err error) {
	src, tgt, found := strings.Cut(c.SrcTgt, "-")
	if !found || src == "" || tgt == "" {
		return "", "", errors.Errorf("invalid src_tgt %q: expected <src>-<tgt>", c.SrcTgt)
	}
	return src, tgt, nil
}

// Placement parses the node_gpu field.  ok is false when no explicit
// placement was configured.
func (c *CorpusConfig) Placement() (nodeRank, localRank int, ok bool, err error) {
	if c.NodeGPU == "" {
		return 0, 0, false, nil
	}
	node, device, found := strings.Cut(c.NodeGPU, ":")
	if !found {
		return 0, 0, false, errors.Errorf("invalid node_gpu %q: expected <node>:<device>", c.NodeGPU)
	}
	if nodeRank, err = strconv.Atoi(node); err != nil {
		return 0, 0, false, errors.Wrapf(err, "invalid node_gpu %q", c.NodeGPU)
	}
	if localRank, err = strconv.Atoi(device); err != nil {
		return 0, 0, false, errors.Wrapf(err, "invalid node_gpu %q", c.NodeGPU)
	}
	return nodeRank, localRank, true, nil
}

// TaskTable holds the per-corpus configuration records in the order they
// appear in the configuration file.
type TaskTable struct {
	ids  []string
	byID map[string]*CorpusConfig
}

// UnmarshalYAML decodes the corpus mapping while preserving its key order,
// which a plain map would lose.
func (t *TaskTable) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return errors.Errorf("data: expected a mapping of corpus ids, got %s", node.Tag)
	}
	t.ids = make([]string, 0, len(node.Content)/2)
	t.byID = make(map[string]*CorpusConfig, len(node.Content)/2)
	for index := 0; index < len(node.Content); index += 2 {
		var id string
		if err := node.Content[index].Decode(&id); err != nil {
			return errors.Wrap(err, "data: corpus id")
		}
		if _, found := t.byID[id]; found {
			return errors.Errorf("data: duplicate corpus id %q", id)
		}
		corpus := &CorpusConfig{Weight: 1}
		if err := node.Content[index+1].Decode(corpus); err != nil {
			return errors.Wrapf(err, "data: corpus %q", id)
		}
		t.ids = append(t.ids, id)
		t.byID[id] = corpus
	}
	return nil
}

// IDs returns the corpus ids in configuration order.
func (t *TaskTable) IDs() []string {
	return t.ids
}

// Get returns the configuration record of the given corpus.
func (t *TaskTable) Get(id string) *CorpusConfig {
	return t.byID[id]
}

// Len returns the number of configured corpora.
func (t *TaskTable) Len() int {
	return len(t.ids)
}

// Load reads and validates the configuration in the given file.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	return Parse(raw)
}

// Parse decodes and validates the given configuration document.
func Parse(raw []byte) (*Config, error) {
	config := new(Config)
	if err := yaml.Unmarshal(raw, config); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

// World builds the world context described by the configuration.
func (c *Config) World() (*topology.WorldContext, error) {
	return topology.New(c.GPUsPerNode, c.WorldSize, c.NNodes)
}

func (c *Config) validate() error {
	if c.NNodes < 1 {
		return errors.Errorf("invalid n_nodes %d", c.NNodes)
	}
	if c.WorldSize > 0 && c.GPUsPerNode < 1 {
		return errors.Errorf("invalid gpus_per_node %d with world_size %d", c.GPUsPerNode, c.WorldSize)
	}
	if c.AccumCount < 1 {
		return errors.Errorf("invalid accum_count %d", c.AccumCount)
	}
	if len(c.EncLayers) == 0 {
		return errors.New("enc_layers must name at least one layer stack")
	}
	if len(c.DecLayers) == 0 {
		return errors.New("dec_layers must name at least one layer stack")
	}
	if c.Adapters != nil {
		for name, group := range c.Adapters.Encoder {
			if group.LayerStackIndex < 0 || len(c.EncLayers) <= group.LayerStackIndex {
				return errors.Errorf("encoder adapter group %q: layer_stack_index %d out of range: %d encoder layer stacks",
					name, group.LayerStackIndex, len(c.EncLayers))
			}
		}
		for name, group := range c.Adapters.Decoder {
			if group.LayerStackIndex < 0 || len(c.DecLayers) <= group.LayerStackIndex {
				return errors.Errorf("decoder adapter group %q: layer_stack_index %d out of range: %d decoder layer stacks",
					name, group.LayerStackIndex, len(c.DecLayers))
			}
		}
	}
	if c.Tasks.Len() == 0 {
		return errors.New("no corpora configured under data")
	}
	for _, id := range c.Tasks.IDs() {
		corpus := c.Tasks.Get(id)
		if _, _, err := corpus.Langs(); err != nil {
			return errors.Wrapf(err, "corpus %q", id)
		}
		if corpus.Weight < 0 {
			return errors.Errorf("corpus %q: invalid weight %v", id, corpus.Weight)
		}
		if corpus.IntroduceAtTrainingStep < 0 {
			return errors.Errorf("corpus %q: invalid introduce_at_training_step %d", id, corpus.IntroduceAtTrainingStep)
		}
		if _, _, _, err := corpus.Placement(); err != nil {
			return errors.Wrapf(err, "corpus %q", id)
		}
		if err := c.validateAdapters(id, corpus); err != nil {
			return err
		}
	}
	return nil
}

func (c *Config) validateAdapters(id string, corpus *CorpusConfig) error {
	if corpus.Adapters == nil {
		return nil
	}
	if c.Adapters == nil {
		return errors.Errorf("corpus %q names adapters but no adapters are declared", id)
	}
	for _, pair := range corpus.Adapters.Encoder {
		if len(pair) != 2 {
			return errors.Errorf("corpus %q: encoder adapter %v: expected [group, sub_id]", id, pair)
		}
		if _, found := c.Adapters.Encoder[pair[0]]; !found {
			return errors.Errorf("corpus %q names undeclared encoder adapter group %q", id, pair[0])
		}
	}
	for _, pair := range corpus.Adapters.Decoder {
		if len(pair) != 2 {
			return errors.Errorf("corpus %q: decoder adapter %v: expected [group, sub_id]", id, pair)
		}
		if _, found := c.Adapters.Decoder[pair[0]]; !found {
			return errors.Errorf("corpus %q names undeclared decoder adapter group %q", id, pair[0])
		}
	}
	return nil
}
