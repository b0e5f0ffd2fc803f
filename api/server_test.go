package api

import (
	"context"
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	pb "github.com/frankonly/rollingmerkle/api/accumulator"
	"github.com/frankonly/rollingmerkle/crypto"
	"github.com/frankonly/rollingmerkle/merkle"
	"github.com/frankonly/rollingmerkle/storage"
)

func TestServerAppend(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	server := NewServer(merkle.NewAccumulator[crypto.SHA256](), nil)

	leaves := make([]crypto.SHA256, 20)
	for i := range leaves {
		rand.Read(leaves[i][:])

		root, err := server.Append(ctx, &pb.Hash{Hash: leaves[i][:]})
		r.NoError(err)
		r.Equal(merkle.Root(leaves[:i+1]), crypto.SHA256(root.Hash))

		current, err := server.GetDigest(ctx, &pb.Empty{})
		r.NoError(err)
		r.Equal(root.Hash, current.Hash)
	}
}

func TestServerAppendInvalid(t *testing.T) {
	r := require.New(t)

	server := NewServer(merkle.NewAccumulator[crypto.SHA256](), nil)

	_, err := server.Append(context.Background(), &pb.Hash{Hash: []byte("short")})
	r.Error(err)
	r.Equal(codes.InvalidArgument, status.Code(err))
}

func TestServerSnapshotRestore(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	server := NewServer(merkle.NewAccumulator[crypto.SHA3](), nil)

	leaves := make([]crypto.SHA3, 11)
	var last *pb.Hash
	for i := range leaves {
		rand.Read(leaves[i][:])

		var err error
		last, err = server.Append(ctx, &pb.Hash{Hash: leaves[i][:]})
		r.NoError(err)
	}

	snapshot, err := server.GetSnapshot(ctx, &pb.Empty{})
	r.NoError(err)

	restored := NewServer(merkle.NewAccumulator[crypto.SHA3](), nil)
	root, err := restored.Restore(ctx, snapshot)
	r.NoError(err)
	r.Equal(crypto.SHA3{}, crypto.SHA3(root.Hash), "restore resets the root")
	r.NotEqual(last.Hash, root.Hash)

	var next crypto.SHA3
	next = next.Hash([]byte("next"))

	want, err := server.Append(ctx, &pb.Hash{Hash: next[:]})
	r.NoError(err)
	got, err := restored.Append(ctx, &pb.Hash{Hash: next[:]})
	r.NoError(err)
	r.Equal(want.Hash, got.Hash)
}

func TestServerPersists(t *testing.T) {
	r := require.New(t)
	ctx := context.Background()

	db, err := storage.NewLevelDB(filepath.Join(t.TempDir(), "server-test.db"))
	r.NoError(err)
	defer func() { r.NoError(db.Close()) }()

	acc := merkle.NewAccumulator[crypto.SHA256]()
	server := NewServer(acc, db)

	leaves := make([]crypto.SHA256, 7)
	for i := range leaves {
		rand.Read(leaves[i][:])
		_, err := server.Append(ctx, &pb.Hash{Hash: leaves[i][:]})
		r.NoError(err)
	}

	slots, err := storage.LoadSnapshot[crypto.SHA256](db)
	r.NoError(err)
	r.Equal(acc.Slots(), slots)
}
