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

import "fmt"

// ComponentType classifies the shareable parameter-bearing components of the
// model.
type ComponentType int

const (
	SrcEmb ComponentType = iota
	TgtEmb
	Encoder
	Decoder
	EncoderAdapters
	DecoderAdapters
)

// ComponentTypes lists all component types in their fixed traversal order.
var ComponentTypes = []ComponentType{SrcEmb, TgtEmb, Encoder, Decoder, EncoderAdapters, DecoderAdapters}

func (t ComponentType) String() string {
	switch t {
	case SrcEmb:
		return "src_emb"
	case TgtEmb:
		return "tgt_emb"
	case Encoder:
		return "encoder"
	case Decoder:
		return "decoder"
	case EncoderAdapters:
		return "encoder_adapters"
	case DecoderAdapters:
		return "decoder_adapters"
	default:
		return fmt.Sprintf("ComponentType(%d)", int(t))
	}
}

// ComponentID identifies a component instance within its type.  Only the
// fields relevant to the type are set: embeddings use Lang; encoder and
// decoder stacks use LayerStackIndex and ID; adapters additionally use
// AdapterGroup and SubID.
type ComponentID struct {
	Lang            string
	LayerStackIndex int
	ID              string
	AdapterGroup    string
	SubID           string
}

// ComponentKey identifies a shareable module instance.  Two tasks reference
// the same component instance iff they produce the same key; this
// equivalence, not task identity, drives communication-group formation.
type ComponentKey struct {
	Type ComponentType
	ComponentID
}

func (k ComponentKey) String() string {
	switch k.Type {
	case SrcEmb, TgtEmb:
		return fmt.Sprintf("%s %s", k.Type, k.Lang)
	case Encoder, Decoder:
		return fmt.Sprintf("%s %d:%s", k.Type, k.LayerStackIndex, k.ID)
	default:
		return fmt.Sprintf("%s %d:%s:%s:%s", k.Type, k.LayerStackIndex, k.ID, k.AdapterGroup, k.SubID)
	}
}

// AdapterRef names one adapter a task trains: the layer stack it is injected
// into, its adapter group and its sub id.
type AdapterRef struct {
	LayerStackIndex int
	Group           string
	SubID           string
}

// TaskSpec is the static description of one task: a language-pair
// translation direction with its placement, shared-component assignment,
// sampling weight and curriculum gate.  Task specs are created once from
// configuration and are read-only for the life of the process.
type TaskSpec struct {
	NodeRank  int
	LocalRank int

	SrcLang string
	TgtLang string

	// EncoderID and DecoderID hold one sharing-group id per layer stack.
	EncoderID []string
	DecoderID []string

	CorpusID string

	Weight                  float64
	IntroduceAtTrainingStep int

	EncoderAdapterIDs []AdapterRef
	DecoderAdapterIDs []AdapterRef
}

// componentKeys derives the component references of the task in the fixed,
// data-independent order required for every process to issue group-creation
// calls identically: source embedding, target embedding, encoder stacks by
// index, decoder stacks by index, encoder adapters, decoder adapters.
func (t *TaskSpec) componentKeys() []ComponentKey {
	keys := make([]ComponentKey, 0, 2+len(t.EncoderID)+len(t.DecoderID)+len(t.EncoderAdapterIDs)+len(t.DecoderAdapterIDs))
	keys = append(keys,
		ComponentKey{Type: SrcEmb, ComponentID: ComponentID{Lang: t.SrcLang}},
		ComponentKey{Type: TgtEmb, ComponentID: ComponentID{Lang: t.TgtLang}},
	)
	for layerStackIndex, id := range t.EncoderID {
		keys = append(keys, ComponentKey{Type: Encoder, ComponentID: ComponentID{LayerStackIndex: layerStackIndex, ID: id}})
	}
	for layerStackIndex, id := range t.DecoderID {
		keys = append(keys, ComponentKey{Type: Decoder, ComponentID: ComponentID{LayerStackIndex: layerStackIndex, ID: id}})
	}
	for _, adapter := range t.EncoderAdapterIDs {
		keys = append(keys, ComponentKey{Type: EncoderAdapters, ComponentID: ComponentID{
			LayerStackIndex: adapter.LayerStackIndex,
			ID:              t.EncoderID[adapter.LayerStackIndex],
			AdapterGroup:    adapter.Group,
			SubID:           adapter.SubID,
		}})
	}
	for _, adapter := range t.DecoderAdapterIDs {
		keys = append(keys, ComponentKey{Type: DecoderAdapters, ComponentID: ComponentID{
			LayerStackIndex: adapter.LayerStackIndex,
			ID:              t.DecoderID[adapter.LayerStackIndex],
			AdapterGroup:    adapter.Group,
			SubID:           adapter.SubID,
		}})
	}
	return keys
}
