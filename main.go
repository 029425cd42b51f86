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

// Package main implements the store server.  The server keeps an ordered
// key-value store in memory and stops when it is finalized by a client or
// receives SIGINT or SIGTERM.
package main

import (
	"flag"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/9rum/ordtree/internal/bst"
	"github.com/9rum/ordtree/store"
	"github.com/golang/glog"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"google.golang.org/grpc"
)

func main() {
	port := flag.Int("p", 50051, "The server port")
	maxNodes := flag.Int("max_nodes", 0, "The maximum number of entries held by the store and its snapshot, 0 for no limit")
	freelistSize := flag.Int("freelist_size", bst.DefaultFreeListSize, "The number of released nodes kept for reuse")
	flag.Parse()
	defer glog.Flush()

	if err := serve(*port, store.New(*freelistSize, *maxNodes)); err != nil {
		glog.Fatalf("failed to serve: %v", err)
	}
}

func serve(port int, s *store.Store) error {
	lis, err := net.Listen("tcp", fmt.Sprintf(":%d", port))
	if err != nil {
		return err
	}

	server := newServer(s)
	glog.Infof("server listening at %v", lis.Addr())

	return server.Serve(lis)
}

func newServer(s *store.Store) *grpc.Server {
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	done := make(chan os.Signal, 1)
	signal.Notify(done, syscall.SIGINT, syscall.SIGTERM)

	go func(done <-chan os.Signal, server *grpc.Server) {
		sig := <-done
		glog.Infof("received %v, stopping", sig)
		server.GracefulStop()
	}(done, server)

	store.RegisterStoreServer(server, store.NewStoreServer(s, done))

	return server
}
