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

package store

import (
	"context"
	"math"
	"os"
	"syscall"

	"github.com/9rum/ordtree/internal/bst"
	"github.com/cockroachdb/errors"
	"github.com/golang/glog"
	"github.com/golang/protobuf/ptypes/empty"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// storeServer implements the server API for Store service.
type storeServer struct {
	UnimplementedStoreServer
	store *Store
	done  chan<- os.Signal
}

// NewStoreServer creates a new store server backed by the given store.  A
// Finalize call sends SIGTERM on done without blocking.
func NewStoreServer(store *Store, done chan<- os.Signal) StoreServer {
	return &storeServer{
		store: store,
		done:  done,
	}
}

// toStatus converts an error of the store into a gRPC status error.
func toStatus(err error) error {
	if errors.Is(err, bst.ErrAllocation) {
		return status.Error(codes.ResourceExhausted, err.Error())
	}
	return status.Error(codes.Internal, err.Error())
}

// entry extracts the key and value fields of an entry message.
func entry(in *structpb.Struct) (string, *structpb.Value, error) {
	key, err := stringField(in, "key")
	if err != nil {
		return "", nil, err
	}
	if key == nil {
		return "", nil, status.Error(codes.InvalidArgument, "missing key")
	}
	value, ok := in.GetFields()["value"]
	if !ok {
		return "", nil, status.Errorf(codes.InvalidArgument, "missing value for key %q", *key)
	}
	return *key, value, nil
}

// stringField returns the string field name of in, or nil if it is absent.
func stringField(in *structpb.Struct, name string) (*string, error) {
	v, ok := in.GetFields()[name]
	if !ok {
		return nil, nil
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a string", name)
	}
	return &s.StringValue, nil
}

// rangeOf extracts the optional from and to fields of a range message.
func rangeOf(in *structpb.Struct) (r Range, err error) {
	if r.From, err = stringField(in, "from"); err != nil {
		return
	}
	r.To, err = stringField(in, "to")
	return
}

// Insert adds an entry unless its key is already present.
func (s *storeServer) Insert(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	key, value, err := entry(in)
	if err != nil {
		return nil, err
	}
	glog.Infof("Insert called with key: %q", key)

	ok, err := s.store.Insert(key, value)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bool(ok), nil
}

// Put adds an entry or overwrites the value of an existing one.
func (s *storeServer) Put(ctx context.Context, in *structpb.Struct) (*wrapperspb.BoolValue, error) {
	key, value, err := entry(in)
	if err != nil {
		return nil, err
	}
	glog.Infof("Put called with key: %q", key)

	created, err := s.store.Put(key, value)
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Bool(created), nil
}

// Get returns the value associated with the given key.
func (s *storeServer) Get(ctx context.Context, in *wrapperspb.StringValue) (*structpb.Value, error) {
	glog.Infof("Get called with key: %q", in.GetValue())

	value, ok := s.store.Get(in.GetValue())
	if !ok {
		return nil, status.Errorf(codes.NotFound, "key %q not found", in.GetValue())
	}
	return value, nil
}

// Delete removes the given key.
func (s *storeServer) Delete(ctx context.Context, in *wrapperspb.StringValue) (*wrapperspb.BoolValue, error) {
	glog.Infof("Delete called with key: %q", in.GetValue())

	return wrapperspb.Bool(s.store.Delete(in.GetValue())), nil
}

// Scan lists the entries within the range [from, to), in reverse key order if
// reverse is set and at most limit of them if limit is positive.
func (s *storeServer) Scan(ctx context.Context, in *structpb.Struct) (*structpb.ListValue, error) {
	var (
		opts ScanOptions
		err  error
	)
	if opts.Range, err = rangeOf(in); err != nil {
		return nil, err
	}
	if v, ok := in.GetFields()["reverse"]; ok {
		reverse, ok := v.GetKind().(*structpb.Value_BoolValue)
		if !ok {
			return nil, status.Error(codes.InvalidArgument, "reverse must be a bool")
		}
		opts.Reverse = reverse.BoolValue
	}
	if v, ok := in.GetFields()["limit"]; ok {
		limit, ok := v.GetKind().(*structpb.Value_NumberValue)
		if !ok || limit.NumberValue < 0 || limit.NumberValue != math.Trunc(limit.NumberValue) {
			return nil, status.Error(codes.InvalidArgument, "limit must be a non-negative integer")
		}
		opts.Limit = int(limit.NumberValue)
	}
	glog.Infof("Scan called with reverse: %v limit: %d", opts.Reverse, opts.Limit)

	entries := s.store.Scan(opts)
	out := &structpb.ListValue{
		Values: make([]*structpb.Value, 0, len(entries)),
	}
	for _, e := range entries {
		out.Values = append(out.Values, structpb.NewStructValue(&structpb.Struct{
			Fields: map[string]*structpb.Value{
				"key":   structpb.NewStringValue(e.Key),
				"value": e.Value,
			},
		}))
	}
	return out, nil
}

// DeleteRange removes the entries within the range [from, to).
func (s *storeServer) DeleteRange(ctx context.Context, in *structpb.Struct) (*wrapperspb.Int64Value, error) {
	r, err := rangeOf(in)
	if err != nil {
		return nil, err
	}
	glog.Info("DeleteRange called")

	return wrapperspb.Int64(int64(s.store.DeleteRange(r))), nil
}

// Len returns the number of entries.
func (s *storeServer) Len(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	glog.Info("Len called")

	return wrapperspb.Int64(int64(s.store.Len())), nil
}

// Clear removes all entries.
func (s *storeServer) Clear(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Clear called")

	s.store.Clear()
	return new(empty.Empty), nil
}

// Snapshot saves the current entries.
func (s *storeServer) Snapshot(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	glog.Info("Snapshot called")

	size, err := s.store.Snapshot()
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Int64(int64(size)), nil
}

// Restore brings back the entries saved by the last snapshot.
func (s *storeServer) Restore(ctx context.Context, in *empty.Empty) (*wrapperspb.Int64Value, error) {
	glog.Info("Restore called")

	size, err := s.store.Restore()
	if err != nil {
		return nil, toStatus(err)
	}
	return wrapperspb.Int64(int64(size)), nil
}

// Stats reports the size and height of the store and the size of its
// snapshot.
func (s *storeServer) Stats(ctx context.Context, in *empty.Empty) (*structpb.Struct, error) {
	glog.Info("Stats called")

	stats := s.store.Stats()
	if glog.V(1) {
		glog.Infof("size: %d height: %d snapshot: %d", stats.Size, stats.Height, stats.Snapshot)
	}

	return &structpb.Struct{
		Fields: map[string]*structpb.Value{
			"size":     structpb.NewNumberValue(float64(stats.Size)),
			"height":   structpb.NewNumberValue(float64(stats.Height)),
			"snapshot": structpb.NewNumberValue(float64(stats.Snapshot)),
		},
	}, nil
}

// Finalize notifies the main goroutine that the server should stop.
func (s *storeServer) Finalize(ctx context.Context, in *empty.Empty) (*empty.Empty, error) {
	glog.Info("Finalize called")
	defer glog.Flush()

	select {
	case s.done <- syscall.SIGTERM:
	default:
	}
	return new(empty.Empty), nil
}
