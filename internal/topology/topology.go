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

// Package topology models the shape of the training cluster and, optionally,
// the position of one process in it.  A WorldContext describes how many nodes
// there are and how many devices each node carries; a DeviceContext extends it
// with the ranks identifying a single device.  Both are immutable once built.
package topology

import (
	"fmt"

	"github.com/pkg/errors"
)

// Mode classifies the compute topology of the world.
type Mode int

const (
	// CPU means training runs on the host processor of a single node.
	CPU Mode = iota
	// SingleDevice means training uses one accelerator and is not distributed.
	SingleDevice
	// MultiDevice means training is distributed over several accelerators,
	// coordinated through collective communication.
	MultiDevice
)

func (m Mode) String() string {
	switch m {
	case CPU:
		return "CPU"
	case SingleDevice:
		return "SINGLE_DEVICE"
	case MultiDevice:
		return "MULTI_DEVICE"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// WorldContext describes the size of the world: the total number of nodes and
// the number of devices on each node.
type WorldContext struct {
	mode           Mode
	nodeCount      int
	devicesPerNode int
}

// New creates a new world context with the given arguments.  A non-positive
// world size selects CPU mode; a world size of one selects single-device mode;
// anything larger is distributed.  The world size must agree with
// nodeCount * devicesPerNode whenever it is positive.
func New(devicesPerNode, worldSize, nodeCount int) (*WorldContext, error) {
	switch {
	case worldSize <= 0:
		if nodeCount != 1 {
			return nil, errors.Errorf("CPU training is only possible on a single node: n_nodes %d", nodeCount)
		}
		return &WorldContext{mode: CPU, nodeCount: nodeCount, devicesPerNode: devicesPerNode}, nil
	case worldSize == 1:
		if nodeCount != 1 || devicesPerNode != 1 {
			return nil, errors.Errorf(
				"invalid single-device configuration: n_nodes %d devices_per_node %d world_size %d",
				nodeCount, devicesPerNode, worldSize)
		}
		return &WorldContext{mode: SingleDevice, nodeCount: nodeCount, devicesPerNode: devicesPerNode}, nil
	default:
		if nodeCount < 1 || devicesPerNode < 1 || nodeCount*devicesPerNode != worldSize {
			return nil, errors.Errorf(
				"invalid multi-device configuration: n_nodes %d devices_per_node %d world_size %d",
				nodeCount, devicesPerNode, worldSize)
		}
		return &WorldContext{mode: MultiDevice, nodeCount: nodeCount, devicesPerNode: devicesPerNode}, nil
	}
}

// Mode returns the compute topology of the world.
func (w *WorldContext) Mode() Mode {
	return w.mode
}

// NodeCount returns the total number of nodes in the cluster.
func (w *WorldContext) NodeCount() int {
	return w.nodeCount
}

// DevicesPerNode returns the number of devices on each node.
func (w *WorldContext) DevicesPerNode() int {
	return w.devicesPerNode
}

// WorldSize returns the total number of training devices.
func (w *WorldContext) WorldSize() int {
	if w.mode == CPU {
		return 0
	}
	return w.nodeCount * w.devicesPerNode
}

// IsDistributed reports whether training is distributed over several devices;
// if so, gradients must be communicated between processes.
func (w *WorldContext) IsDistributed() bool {
	return w.mode == MultiDevice
}

// IsGPU reports whether data tensors must be moved to an accelerator
// for compute.
func (w *WorldContext) IsGPU() bool {
	return w.mode != CPU
}

// Localize binds the world context to the device identified by the given
// ranks.  It fails if the ranks do not fit in the world.
func (w *WorldContext) Localize(nodeRank, localRank int) (DeviceContext, error) {
	if nodeRank < 0 || w.nodeCount <= nodeRank {
		return DeviceContext{}, errors.Errorf("node_rank %d out of range: n_nodes %d", nodeRank, w.nodeCount)
	}
	if w.IsGPU() && (localRank < 0 || w.devicesPerNode <= localRank) {
		return DeviceContext{}, errors.Errorf("local_rank %d out of range: devices_per_node %d", localRank, w.devicesPerNode)
	}
	return DeviceContext{
		WorldContext: *w,
		nodeRank:     nodeRank,
		localRank:    localRank,
	}, nil
}

// DeviceContext is a world context bound to our place in the world.
type DeviceContext struct {
	WorldContext
	nodeRank  int
	localRank int
}

// NodeRank returns the rank of the node this device belongs to.
func (d DeviceContext) NodeRank() int {
	return d.nodeRank
}

// LocalRank returns the rank of this device within its node.
func (d DeviceContext) LocalRank() int {
	return d.localRank
}

// GlobalRank returns the unique index of this device in the whole cluster.
func (d DeviceContext) GlobalRank() int {
	return d.nodeRank*d.devicesPerNode + d.localRank
}

// IsMaster reports whether this process should perform single-writer actions
// such as saving fully shared modules, avoiding the same work being done once
// per device.
func (d DeviceContext) IsMaster() bool {
	return !d.IsDistributed() || d.GlobalRank() == 0
}

// ID returns a human-readable tag identifying the device.
func (d DeviceContext) ID() string {
	if d.IsGPU() {
		return fmt.Sprintf("GPU %d:%d", d.nodeRank, d.localRank)
	}
	return "CPU"
}

// Validate checks that this device context is consistent with the
// authoritative world context and that its ranks fit in the world.
func (d DeviceContext) Validate(world *WorldContext) error {
	if d.mode != world.mode || d.nodeCount != world.nodeCount || d.devicesPerNode != world.devicesPerNode {
		return errors.Errorf("device context %s disagrees with world context: mode %s n_nodes %d devices_per_node %d",
			d.ID(), world.mode, world.nodeCount, world.devicesPerNode)
	}
	if d.nodeRank < 0 || d.nodeCount <= d.nodeRank {
		return errors.Errorf("node_rank %d out of range: n_nodes %d", d.nodeRank, d.nodeCount)
	}
	if d.IsGPU() && (d.localRank < 0 || d.devicesPerNode <= d.localRank) {
		return errors.Errorf("local_rank %d out of range: devices_per_node %d", d.localRank, d.devicesPerNode)
	}
	return nil
}
