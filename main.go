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

//go:generate protoc --proto_path=proto/ --go_out=coordinator/ --go_opt=paths=source_relative --go-grpc_out=coordinator/ --go-grpc_opt=paths=source_relative coordinator.proto

// Package main implements the coordinator server. It loads the task
// configuration, derives the task-to-device assignment and the communication
// groups of the shared components, and serves them to training processes.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"github.com/convoy-ml/convoy/communicator"
	"github.com/convoy-ml/convoy/config"
	"github.com/convoy-ml/convoy/coordinator"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	path := flag.String("f", "convoy.yaml", "The task configuration file")
	flag.Parse()

	if err := serve(*port, *path); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port int, path string) error {
	global, err := bootstrap(path)
	if err != nil {
		return err
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer(global)
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

// bootstrap loads the task configuration and builds the global coordinator
// with its component maps.
func bootstrap(path string) (*coordinator.Coordinator, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	world, err := cfg.World()
	if err != nil {
		return nil, err
	}
	global, err := coordinator.FromConfig(cfg, world)
	if err != nil {
		return nil, err
	}

	fabric := communicator.NewWorld(world.WorldSize())
	if err = global.BuildComponentMaps(func(globalRanks []int) (communicator.Group, error) {
		peer, err := fabric.Localize(globalRanks[0])
		if err != nil {
			return nil, err
		}
		return peer.NewGroup(globalRanks)
	}); err != nil {
		return nil, err
	}
	return global, nil
}

func newServer(global *coordinator.Coordinator) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	done := make(chan os.Signal)

	go func(done <-chan os.Signal, server *grpc.Server) {
		<-done
		server.GracefulStop()
	}(done, server)

	coordinator.RegisterCoordinatorServer(server, coordinator.NewCoordinatorServer(global, done))

	return server
}
