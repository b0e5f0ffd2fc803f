package merkle

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/frankonly/rollingmerkle/crypto"
)

func testEquivalence[D Digest[D]](t *testing.T, leaves []D) {
	r := require.New(t)

	acc := NewAccumulator[D]()
	for i := range leaves {
		root := acc.Append(leaves[i])
		r.Equal(Root(leaves[:i+1]), root, "prefix of length %d", i+1)
		r.Equal(root, acc.Digest())
	}
}

func TestAccumulatorSHA256(t *testing.T) {
	testEquivalence(t, hashLetters[crypto.SHA256](len(letters)))
}

func TestAccumulatorSHA3(t *testing.T) {
	testEquivalence(t, hashLetters[crypto.SHA3](len(letters)))
}

func TestAccumulatorRandom(t *testing.T) {
	leaves := make([]crypto.SHA256, 257)
	for i := range leaves {
		rand.Read(leaves[i][:])
	}

	testEquivalence(t, leaves)
}

func TestAccumulatorEmpty(t *testing.T) {
	r := require.New(t)

	acc := NewAccumulator[crypto.SHA256]()
	r.Equal(crypto.SHA256{}, acc.Digest())
	r.Zero(acc.Size())
	r.Empty(acc.Slots())
}

func TestAccumulatorSaveRestore(t *testing.T) {
	r := require.New(t)

	leaves := hashLetters[crypto.SHA3](len(letters))

	for n := 1; n < len(leaves); n++ {
		acc := NewAccumulator[crypto.SHA3]()
		for _, leaf := range leaves[:n] {
			acc.Append(leaf)
		}

		restored := Load(acc.Slots())
		r.Equal(crypto.SHA3{}, restored.Digest(), "load resets the root")

		r.Equal(acc.Append(leaves[n]), restored.Append(leaves[n]), "after %d saved leaves", n)
	}
}

func TestAccumulatorSlotsCopied(t *testing.T) {
	r := require.New(t)

	leaves := hashLetters[crypto.SHA256](5)

	acc := NewAccumulator[crypto.SHA256]()
	for _, leaf := range leaves {
		acc.Append(leaf)
	}

	// corrupting the returned view must not corrupt the accumulator
	view := acc.Slots()
	for i := range view {
		rand.Read(view[i][:])
	}
	r.Equal(Root(append(leaves, leaves[0])), acc.Append(leaves[0]))

	// and Load must take its own copy of the caller's slice
	saved := acc.Slots()
	restored := Load(saved)
	for i := range saved {
		rand.Read(saved[i][:])
	}
	r.Equal(acc.Append(leaves[1]), restored.Append(leaves[1]))
}

func TestAccumulatorGrowth(t *testing.T) {
	r := require.New(t)

	leaves := make([]crypto.SHA256, 64)
	for i := range leaves {
		rand.Read(leaves[i][:])
	}

	acc := NewAccumulator[crypto.SHA256]()
	for i, leaf := range leaves {
		acc.Append(leaf)
		r.LessOrEqual(acc.Size(), i+2, "slot vector stays logarithmic")
	}
	r.LessOrEqual(acc.Size(), 8)
}
