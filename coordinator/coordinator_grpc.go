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
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"golang.org/x/exp/constraints"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// coordinatorServer implements the server API for Coordinator service.
type coordinatorServer struct {
	UnimplementedCoordinatorServer
	global *Coordinator
	done   chan<- os.Signal

	mu     sync.Mutex
	locals map[[2]int]*LocalCoordinator
}

// NewCoordinatorServer creates a new coordinator server over the given global
// coordinator, whose component maps must already be built.
func NewCoordinatorServer(global *Coordinator, done chan<- os.Signal) CoordinatorServer {
	return &coordinatorServer{
		global: global,
		done:   done,
		locals: make(map[[2]int]*LocalCoordinator),
	}
}

// localize returns the cached coordinator view of the querying device,
// creating it on first use.  Caching keeps per-device strategy state, such as
// the round-robin cursor, alive across calls.
func (s *coordinatorServer) localize(nodeRank, localRank int32) (*LocalCoordinator, error) {
	key := [2]int{int(nodeRank), int(localRank)}

	s.mu.Lock()
	defer s.mu.Unlock()
	if local, found := s.locals[key]; found {
		return local, nil
	}
	local, err := s.global.Localize(key[0], key[1])
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	s.locals[key] = local
	return local, nil
}

// Tasks returns the tasks assigned to the querying device.
func (s *coordinatorServer) Tasks(ctx context.Context, in *TaskQuery) (*TaskList, error) {
	glog.Infof("Tasks called from rank %d:%d", in.GetNodeRank(), in.GetLocalRank())

	local, err := s.localize(in.GetNodeRank(), in.GetLocalRank())
	if err != nil {
		return nil, err
	}

	tasks := local.Tasks()
	out := make([]*Task, 0, len(tasks))
	for _, task := range tasks {
		out = append(out, &Task{
			NodeRank:                int32(task.NodeRank),
			LocalRank:               int32(task.LocalRank),
			SrcLang:                 task.SrcLang,
			TgtLang:                 task.TgtLang,
			EncoderId:               task.EncoderID,
			DecoderId:               task.DecoderID,
			CorpusId:                task.CorpusID,
			Weight:                  task.Weight,
			IntroduceAtTrainingStep: int32(task.IntroduceAtTrainingStep),
		})
	}
	return &TaskList{Tasks: out}, nil
}

// Sample draws the corpus ids to train on during the communication round
// starting at the given step.
func (s *coordinatorServer) Sample(ctx context.Context, in *SampleRequest) (*Sampled, error) {
	glog.Infof("Sample called from rank %d:%d at step %d", in.GetNodeRank(), in.GetLocalRank(), in.GetStep())

	local, err := s.localize(in.GetNodeRank(), in.GetLocalRank())
	if err != nil {
		return nil, err
	}

	ids, err := local.SampleTaskIDs(int(in.GetStep()))
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}
	return &Sampled{CorpusIds: ids}, nil
}

// Groups returns the communication groups of the components replicated on the
// querying device and at least one other.
func (s *coordinatorServer) Groups(ctx context.Context, in *TaskQuery) (*GroupList, error) {
	glog.Infof("Groups called from rank %d:%d", in.GetNodeRank(), in.GetLocalRank())

	local, err := s.localize(in.GetNodeRank(), in.GetLocalRank())
	if err != nil {
		return nil, err
	}

	groups, err := local.LocalGroups()
	if err != nil {
		return nil, status.Error(codes.FailedPrecondition, err.Error())
	}

	var out []*Group
	for _, typ := range ComponentTypes {
		for _, entry := range groups[typ] {
			out = append(out, &Group{
				Component: entry.Key.String(),
				Owner:     int64(entry.Owner),
				Ranks:     cast[int, int64](entry.Group.Ranks()),
			})
		}
	}
	return &GroupList{Groups: out}, nil
}

// cast casts the given slice.
func cast[T, U constraints.Integer](slice []T) []U {
	out := make([]U, len(slice))
	for index, v := range slice {
		out[index] = U(v)
	}
	return out
}

// Finalize terminates the coordinator.
func (s *coordinatorServer) Finalize(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	defer func() {
		signal.Notify(s.done, syscall.SIGTERM)
		close(s.done)
	}()

	glog.Info("Finalize called")
	defer glog.Flush()

	return new(empty.Empty), nil
}
