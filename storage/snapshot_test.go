package storage

import (
	"math/rand"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankonly/rollingmerkle/crypto"
	"github.com/frankonly/rollingmerkle/merkle"
)

func testStore(t *testing.T) KvStore {
	r := require.New(t)

	db, err := NewLevelDB(filepath.Join(t.TempDir(), testDB))
	r.NoError(err)
	r.NotNil(db)

	t.Cleanup(func() { r.NoError(db.Close()) })
	return db
}

func randomDigests(n int) []crypto.SHA256 {
	digests := make([]crypto.SHA256, n)
	for i := range digests {
		rand.Read(digests[i][:])
	}
	return digests
}

func TestSnapshotMissing(t *testing.T) {
	r := require.New(t)
	db := testStore(t)

	_, err := LoadSnapshot[crypto.SHA256](db)
	r.ErrorIs(err, ErrNotFound)
}

func TestSnapshotRoundTrip(t *testing.T) {
	r := require.New(t)
	db := testStore(t)

	slots := randomDigests(9)
	slots[2] = crypto.SHA256{}
	slots[5] = crypto.SHA256{}

	r.NoError(SaveSnapshot(db, slots))

	loaded, err := LoadSnapshot[crypto.SHA256](db)
	r.NoError(err)
	r.Equal(slots, loaded)
}

func TestSnapshotEmptyVector(t *testing.T) {
	r := require.New(t)
	db := testStore(t)

	r.NoError(SaveSnapshot(db, []crypto.SHA256{}))

	loaded, err := LoadSnapshot[crypto.SHA256](db)
	r.NoError(err)
	r.Empty(loaded)
}

func TestSnapshotOverwrite(t *testing.T) {
	r := require.New(t)
	db := testStore(t)

	r.NoError(SaveSnapshot(db, randomDigests(12)))

	// shrinking must drop the stale upper levels
	slots := randomDigests(3)
	r.NoError(SaveSnapshot(db, slots))

	loaded, err := LoadSnapshot[crypto.SHA256](db)
	r.NoError(err)
	r.Equal(slots, loaded)

	_, err = db.Get(slotKey(3))
	r.ErrorIs(err, ErrNotFound)
	_, err = db.Get(slotKey(11))
	r.ErrorIs(err, ErrNotFound)
}

func TestSnapshotCorrupted(t *testing.T) {
	r := require.New(t)
	db := testStore(t)

	r.NoError(SaveSnapshot(db, randomDigests(4)))

	r.NoError(db.Delete(slotKey(2)))
	_, err := LoadSnapshot[crypto.SHA256](db)
	r.ErrorIs(err, ErrCorrupted)

	r.NoError(db.Put(slotKey(2), []byte("short")))
	_, err = LoadSnapshot[crypto.SHA256](db)
	r.ErrorIs(err, ErrCorrupted)

	r.NoError(db.Put(sizeKey(), []byte{1, 2, 3}))
	_, err = LoadSnapshot[crypto.SHA256](db)
	r.ErrorIs(err, ErrCorrupted)
}

func TestSnapshotResumesAccumulator(t *testing.T) {
	r := require.New(t)
	db := testStore(t)

	leaves := randomDigests(100)

	acc := merkle.NewAccumulator[crypto.SHA256]()
	for _, leaf := range leaves[:57] {
		acc.Append(leaf)
	}
	r.NoError(SaveSnapshot(db, acc.Slots()))

	slots, err := LoadSnapshot[crypto.SHA256](db)
	r.NoError(err)
	restored := merkle.Load(slots)

	for _, leaf := range leaves[57:] {
		r.Equal(acc.Append(leaf), restored.Append(leaf))
	}
	r.Equal(merkle.Root(leaves), restored.Digest())
}
