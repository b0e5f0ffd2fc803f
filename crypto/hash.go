// Package crypto provides the digest types the merkle algorithms run over.
package crypto

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"
)

// Size is the digest width in bytes for both supported hash families.
const Size = 32

// Prefix starts every canonical digest encoding.
const Prefix = "0x"

// SHA256 is a SHA-256 digest.
type SHA256 [Size]byte

// Hash hashes data by SHA256
func (SHA256) Hash(data []byte) SHA256 {
	return SHA256(sha256.Sum256(data))
}

// String returns the canonical encoding: "0x" followed by 64 lowercase hex
// characters. The encoding is the byte serialization fed into parent hashes,
// not just a display form.
func (d SHA256) String() string {
	return Encode(d[:])
}

// SHA3 is a SHA3-256 digest.
type SHA3 [Size]byte

// Hash hashes data by SHA3-256
func (SHA3) Hash(data []byte) SHA3 {
	return SHA3(sha3.Sum256(data))
}

// String returns the canonical encoding, same form as SHA256.String.
func (d SHA3) String() string {
	return Encode(d[:])
}

// Encode renders raw digest bytes in the canonical encoding.
func Encode(digest []byte) string {
	return Prefix + hex.EncodeToString(digest)
}

// Decode parses a canonical encoding back into raw digest bytes.
func Decode(s string) ([Size]byte, error) {
	var digest [Size]byte

	if len(s) != len(Prefix)+2*Size || s[:len(Prefix)] != Prefix {
		return digest, fmt.Errorf("invalid digest encoding: %q", s)
	}

	raw, err := hex.DecodeString(s[len(Prefix):])
	if err != nil {
		return digest, fmt.Errorf("invalid digest encoding: %w", err)
	}

	copy(digest[:], raw)
	return digest, nil
}
