// Package merkle computes merkle roots over pluggable 32-byte digest types,
// either in one shot over a complete leaf list or incrementally one leaf at a
// time with O(log n) retained state.
package merkle

// Digest is the contract a digest type must satisfy. The zero value of a
// digest (all-zero bytes) doubles as the "empty" sentinel and as the root of
// an empty tree.
type Digest[D any] interface {
	~[32]byte

	// Hash digests raw bytes. The receiver carries no state; any value of
	// the type, including the zero value, may be used to call it.
	Hash(data []byte) D

	// String returns the canonical encoding of the digest: a fixed prefix
	// followed by lowercase hex. Parent nodes are computed by hashing the
	// UTF-8 bytes of the two children's encodings, so String is part of
	// the tree's wire contract rather than a display convenience.
	String() string
}

// combine hashes the canonical encodings of two children, left first.
func combine[D Digest[D]](left, right D) D {
	var zero D
	return zero.Hash([]byte(left.String() + right.String()))
}
