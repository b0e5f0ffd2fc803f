// Package api exposes one long-lived accumulator over gRPC.
package api

import (
	"context"
	"fmt"
	"sync"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/frankonly/rollingmerkle/api/accumulator"
	"github.com/frankonly/rollingmerkle/merkle"
	"github.com/frankonly/rollingmerkle/storage"
)

// Server serves a single accumulator instance. The accumulator itself is not
// safe for concurrent mutation, so every handler takes the server mutex.
type Server[D merkle.Digest[D]] struct {
	pb.UnimplementedAccumulatorServer

	mu          sync.Mutex
	accumulator *merkle.Accumulator[D]
	db          storage.KvStore
}

// NewServer wraps an accumulator. If db is non-nil, the slot vector is
// persisted there after every state change.
func NewServer[D merkle.Digest[D]](accumulator *merkle.Accumulator[D], db storage.KvStore) *Server[D] {
	return &Server[D]{accumulator: accumulator, db: db}
}

func (s *Server[D]) Append(_ context.Context, hash *pb.Hash) (*pb.Hash, error) {
	leaf, err := digest[D](hash.Hash)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	root := s.accumulator.Append(leaf)
	if err := s.persist(); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.Hash{Hash: bytes(root)}, nil
}

func (s *Server[D]) GetDigest(context.Context, *pb.Empty) (*pb.Hash, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	return &pb.Hash{Hash: bytes(s.accumulator.Digest())}, nil
}

func (s *Server[D]) GetSnapshot(context.Context, *pb.Empty) (*pb.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	slots := s.accumulator.Slots()
	out := &pb.Snapshot{Slots: make([][]byte, len(slots))}
	for i, slot := range slots {
		out.Slots[i] = bytes(slot)
	}

	return out, nil
}

func (s *Server[D]) Restore(_ context.Context, snapshot *pb.Snapshot) (*pb.Hash, error) {
	slots := make([]D, len(snapshot.Slots))
	for i, raw := range snapshot.Slots {
		slot, err := digest[D](raw)
		if err != nil {
			return nil, status.Error(codes.InvalidArgument, err.Error())
		}
		slots[i] = slot
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.accumulator = merkle.Load(slots)
	if err := s.persist(); err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &pb.Hash{Hash: bytes(s.accumulator.Digest())}, nil
}

func (s *Server[D]) persist() error {
	if s.db == nil {
		return nil
	}

	return storage.SaveSnapshot(s.db, s.accumulator.Slots())
}

func digest[D merkle.Digest[D]](raw []byte) (D, error) {
	var d D
	if len(raw) != len(d) {
		return d, fmt.Errorf("digest must be %d bytes, got %d", len(d), len(raw))
	}

	copy(d[:], raw)
	return d, nil
}

func bytes[D merkle.Digest[D]](d D) []byte {
	out := make([]byte, len(d))
	copy(out, d[:])
	return out
}
