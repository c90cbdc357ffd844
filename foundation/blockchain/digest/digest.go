// Package digest provides the hash value used to link and protect blocks
// in the ledger.
package digest

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
)

// Empty is the zero-length hash. The genesis block uses it as its
// previous hash.
var Empty = Hash{}

// IndexError is returned when a byte outside of the hash is requested.
type IndexError struct {
	Index  int
	Length int
}

// Error implements the error interface.
func (ie *IndexError) Error() string {
	return fmt.Sprintf("index %d out of range for hash of length %d", ie.Index, ie.Length)
}

// =============================================================================

// Hash is an immutable sequence of bytes. The bytes are copied on the way
// in and on the way out so a Hash can't be changed once it's constructed.
type Hash struct {
	data []byte
}

// New constructs a hash from a copy of the raw bytes.
func New(raw []byte) Hash {
	return Hash{data: bytes.Clone(raw)}
}

// Sum returns the SHA-256 hash of the parts fed in order.
func Sum(parts ...[]byte) Hash {
	h := sha256.New()
	for _, part := range parts {
		h.Write(part)
	}

	return Hash{data: h.Sum(nil)}
}

// Len returns the number of bytes in the hash.
func (h Hash) Len() int {
	return len(h.data)
}

// At returns the byte at the specified index.
func (h Hash) At(i int) (byte, error) {
	if i < 0 || i >= len(h.data) {
		return 0, &IndexError{Index: i, Length: len(h.data)}
	}

	return h.data[i], nil
}

// Bytes returns a copy of the bytes in the hash.
func (h Hash) Bytes() []byte {
	return bytes.Clone(h.data)
}

// Equal reports whether both hashes hold the same bytes.
func (h Hash) Equal(other Hash) bool {
	return bytes.Equal(h.data, other.data)
}

// Hex returns the hash as uppercase hex, two characters per byte.
func (h Hash) Hex() string {
	return strings.ToUpper(hex.EncodeToString(h.data))
}

// String implements the fmt.Stringer interface for logging.
func (h Hash) String() string {
	return h.Hex()
}
