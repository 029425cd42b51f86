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
	"net"
	"os"
	"syscall"
	"testing"
	"time"

	"github.com/golang/protobuf/ptypes/empty"
	grpc_recovery "github.com/grpc-ecosystem/go-grpc-middleware/recovery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/structpb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// panicServer fails every Len call with a panic.
type panicServer struct {
	StoreServer
}

func (panicServer) Len(context.Context, *empty.Empty) (*wrapperspb.Int64Value, error) {
	panic("len")
}

// serve starts an in-process server for srv and returns a client connected to
// it.
func serve(t *testing.T, srv StoreServer) StoreClient {
	t.Helper()
	lis := bufconn.Listen(1 << 20)
	server := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			grpc_recovery.UnaryServerInterceptor(),
		),
	)
	RegisterStoreServer(server, srv)
	go server.Serve(lis)
	t.Cleanup(server.Stop)

	conn, err := grpc.Dial("bufnet",
		grpc.WithContextDialer(func(context.Context, string) (net.Conn, error) {
			return lis.Dial()
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	return NewStoreClient(conn)
}

func newEntry(t *testing.T, key string, value interface{}) *structpb.Struct {
	t.Helper()
	in, err := structpb.NewStruct(map[string]interface{}{
		"key":   key,
		"value": value,
	})
	require.NoError(t, err)
	return in
}

func newRequest(t *testing.T, fields map[string]interface{}) *structpb.Struct {
	t.Helper()
	in, err := structpb.NewStruct(fields)
	require.NoError(t, err)
	return in
}

func TestStoreServer(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	done := make(chan os.Signal, 1)
	client := serve(t, NewStoreServer(New(16, 0), done))

	for i, key := range []string{"m", "c", "x", "a", "q"} {
		out, err := client.Insert(ctx, newEntry(t, key, float64(i)))
		require.NoError(t, err)
		assert.True(t, out.GetValue())
	}
	out, err := client.Insert(ctx, newEntry(t, "m", "ignored"))
	require.NoError(t, err)
	assert.False(t, out.GetValue())

	created, err := client.Put(ctx, newEntry(t, "m", map[string]interface{}{"nested": true}))
	require.NoError(t, err)
	assert.False(t, created.GetValue())

	value, err := client.Get(ctx, wrapperspb.String("m"))
	require.NoError(t, err)
	assert.True(t, value.GetStructValue().GetFields()["nested"].GetBoolValue())

	_, err = client.Get(ctx, wrapperspb.String("b"))
	assert.Equal(t, codes.NotFound, status.Code(err))

	list, err := client.Scan(ctx, newRequest(t, map[string]interface{}{
		"from":    "b",
		"reverse": true,
	}))
	require.NoError(t, err)
	var keys []string
	for _, v := range list.GetValues() {
		keys = append(keys, v.GetStructValue().GetFields()["key"].GetStringValue())
	}
	assert.Equal(t, []string{"x", "q", "m", "c"}, keys)

	list, err = client.Scan(ctx, newRequest(t, map[string]interface{}{"limit": 2}))
	require.NoError(t, err)
	require.Len(t, list.GetValues(), 2)
	first := list.GetValues()[0].GetStructValue().GetFields()
	assert.Equal(t, "a", first["key"].GetStringValue())
	assert.Equal(t, float64(3), first["value"].GetNumberValue())

	snapshot, err := client.Snapshot(ctx, new(empty.Empty))
	require.NoError(t, err)
	assert.Equal(t, int64(5), snapshot.GetValue())

	removed, err := client.DeleteRange(ctx, newRequest(t, map[string]interface{}{"to": "n"}))
	require.NoError(t, err)
	assert.Equal(t, int64(3), removed.GetValue())

	deleted, err := client.Delete(ctx, wrapperspb.String("x"))
	require.NoError(t, err)
	assert.True(t, deleted.GetValue())

	size, err := client.Len(ctx, new(empty.Empty))
	require.NoError(t, err)
	assert.Equal(t, int64(1), size.GetValue())

	size, err = client.Restore(ctx, new(empty.Empty))
	require.NoError(t, err)
	assert.Equal(t, int64(5), size.GetValue())

	stats, err := client.Stats(ctx, new(empty.Empty))
	require.NoError(t, err)
	assert.Equal(t, float64(5), stats.GetFields()["size"].GetNumberValue())
	assert.Equal(t, float64(5), stats.GetFields()["snapshot"].GetNumberValue())
	assert.Less(t, float64(0), stats.GetFields()["height"].GetNumberValue())

	_, err = client.Clear(ctx, new(empty.Empty))
	require.NoError(t, err)
	size, err = client.Len(ctx, new(empty.Empty))
	require.NoError(t, err)
	assert.Zero(t, size.GetValue())

	_, err = client.Finalize(ctx, new(empty.Empty))
	require.NoError(t, err)
	select {
	case sig := <-done:
		assert.Equal(t, syscall.SIGTERM, sig)
	case <-ctx.Done():
		t.Fatal("Finalize did not signal")
	}

	// a second call does not block
	_, err = client.Finalize(ctx, new(empty.Empty))
	require.NoError(t, err)
}

func TestInvalidArgument(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := serve(t, NewStoreServer(New(16, 0), make(chan os.Signal, 1)))

	for name, in := range map[string]map[string]interface{}{
		"no key":      {"value": 1},
		"no value":    {"key": "a"},
		"numeric key": {"key": 1, "value": 1},
	} {
		_, err := client.Insert(ctx, newRequest(t, in))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), name)
		_, err = client.Put(ctx, newRequest(t, in))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), name)
	}

	for name, in := range map[string]map[string]interface{}{
		"numeric from":   {"from": 1},
		"string reverse": {"reverse": "yes"},
		"negative limit": {"limit": -1},
		"partial limit":  {"limit": 1.5},
	} {
		_, err := client.Scan(ctx, newRequest(t, in))
		assert.Equal(t, codes.InvalidArgument, status.Code(err), name)
	}

	_, err := client.DeleteRange(ctx, newRequest(t, map[string]interface{}{"to": false}))
	assert.Equal(t, codes.InvalidArgument, status.Code(err))
}

func TestResourceExhausted(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := serve(t, NewStoreServer(New(0, 2), make(chan os.Signal, 1)))

	for _, key := range []string{"a", "b"} {
		_, err := client.Put(ctx, newEntry(t, key, nil))
		require.NoError(t, err)
	}
	_, err := client.Put(ctx, newEntry(t, "c", nil))
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
	_, err = client.Snapshot(ctx, new(empty.Empty))
	assert.Equal(t, codes.ResourceExhausted, status.Code(err))
}

func TestRecovery(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := serve(t, panicServer{NewStoreServer(New(16, 0), make(chan os.Signal, 1))})

	_, err := client.Len(ctx, new(empty.Empty))
	assert.Equal(t, codes.Internal, status.Code(err))

	// the server survives the panic
	out, err := client.Insert(ctx, newEntry(t, "a", "b"))
	require.NoError(t, err)
	assert.True(t, out.GetValue())
}

func TestUnimplemented(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client := serve(t, UnimplementedStoreServer{})

	_, err := client.Get(ctx, wrapperspb.String("a"))
	assert.Equal(t, codes.Unimplemented, status.Code(err))
}
