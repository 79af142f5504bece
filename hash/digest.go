// Package hash implements the digest, encoding, and compression layer of a
// content-addressed path metadata core: a streaming multi-algorithm hasher
// plus conversion of raw digest bytes to and from base-16, a Nix-flavored
// base-32, base-64, and SRI textual forms.
package hash

import (
	"bytes"
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
)

// HashType names one of the four supported digest algorithms.
type HashType int

const (
	MD5 HashType = iota
	SHA1
	SHA256
	SHA512
)

// maxHashSize is the byte length of the largest supported digest (SHA-512).
const maxHashSize = 64

// naturalSize returns the digest byte length produced by the algorithm
// identified by t.
func naturalSize(t HashType) int {
	switch t {
	case MD5:
		return md5.Size
	case SHA1:
		return sha1.Size
	case SHA256:
		return sha256.Size
	case SHA512:
		return sha512.Size
	default:
		panic("hash: invalid HashType")
	}
}

// HashFormat names one of the four textual renderings a Hash can take.
type HashFormat int

const (
	Base16 HashFormat = iota
	Base32
	Base64
	SRI
)

// Hash is an immutable digest value: an algorithm tag plus a fixed-capacity
// byte buffer of which only the first Size bytes are meaningful.
//
// Equality and ordering are over (Size, Bytes[:Size]) only — the Type is not
// part of either. This is deliberate: a fingerprint uses type plus body, but
// raw Hash equality is a statement about the bytes alone.
type Hash struct {
	typ   HashType
	size  int
	bytes [maxHashSize]byte
}

// HashOfType returns the all-zero Hash of natural size for t.
func HashOfType(t HashType) Hash {
	return Hash{typ: t, size: naturalSize(t)}
}

// Dummy is the canonical all-zero SHA-256 placeholder Hash, used by callers
// that need a Hash value before a real one is available. It is the only
// process-wide state this package exposes.
var Dummy = HashOfType(SHA256)

// Type reports the Hash's algorithm tag.
func (h Hash) Type() HashType { return h.typ }

// Size reports the number of meaningful leading bytes.
func (h Hash) Size() int { return h.size }

// Bytes returns a copy of the meaningful leading bytes.
func (h Hash) Bytes() []byte {
	out := make([]byte, h.size)
	copy(out, h.bytes[:h.size])
	return out
}

// Equal reports whether h and other have the same size and the same
// leading bytes. The Type tag is deliberately excluded.
func (h Hash) Equal(other Hash) bool {
	return h.size == other.size && bytes.Equal(h.bytes[:h.size], other.bytes[:other.size])
}

// Compare orders Hash values lexicographically over (size, bytes[:size]),
// matching the C++ implementation's operator<. It returns a negative number,
// zero, or a positive number as h is less than, equal to, or greater than
// other.
func (h Hash) Compare(other Hash) int {
	if h.size != other.size {
		if h.size < other.size {
			return -1
		}
		return 1
	}
	return bytes.Compare(h.bytes[:h.size], other.bytes[:other.size])
}

// Less reports whether h orders before other under Compare.
func (h Hash) Less(other Hash) bool { return h.Compare(other) < 0 }

// fromRawBytes builds a Hash of type t whose meaningful prefix is exactly
// raw. It panics if len(raw) exceeds maxHashSize; callers within this
// package are expected to have already validated lengths.
func fromRawBytes(t HashType, raw []byte) Hash {
	if len(raw) > maxHashSize {
		panic("hash: digest longer than 64 bytes")
	}
	var h Hash
	h.typ = t
	h.size = len(raw)
	copy(h.bytes[:], raw)
	return h
}

// FromBytes builds a Hash of type t from an arbitrary byte slice of length
// in [1, 64], without requiring len(raw) to equal t's natural digest size.
// This is how a Hash is built from bytes that already went through
// Compress, or from a digest computed outside this package (e.g. by a
// reference Store implementation deriving a fixed-output path).
func FromBytes(t HashType, raw []byte) (Hash, error) {
	if len(raw) < 1 || len(raw) > maxHashSize {
		return Hash{}, newError(KindBadHashLength, "NIX-HASH-LEN-001", "hash size must be in [1, 64]")
	}
	return fromRawBytes(t, raw), nil
}

var hashTypeNames = map[HashType]string{
	MD5:    "md5",
	SHA1:   "sha1",
	SHA256: "sha256",
	SHA512: "sha512",
}

var hashTypesByName = map[string]HashType{
	"md5":    MD5,
	"sha1":   SHA1,
	"sha256": SHA256,
	"sha512": SHA512,
}

// PrintHashType renders t as its lowercase algorithm tag ("md5", "sha1",
// "sha256", "sha512").
func PrintHashType(t HashType) string {
	name, ok := hashTypeNames[t]
	if !ok {
		panic("hash: invalid HashType")
	}
	return name
}

// ParseHashTypeOpt parses s as a HashType, reporting false if s names no
// known algorithm. It never returns an error.
func ParseHashTypeOpt(s string) (HashType, bool) {
	t, ok := hashTypesByName[s]
	return t, ok
}

// ParseHashType parses s as a HashType or fails with KindUnknownType.
func ParseHashType(s string) (HashType, error) {
	t, ok := ParseHashTypeOpt(s)
	if !ok {
		return 0, newError(KindUnknownType, "NIX-HASH-TYPE-001", "unknown hash algorithm '"+s+"', expect 'md5', 'sha1', 'sha256', or 'sha512'")
	}
	return t, nil
}

var hashFormatNames = map[HashFormat]string{
	Base16: "base16",
	Base32: "base32",
	Base64: "base64",
	SRI:    "sri",
}

var hashFormatsByName = map[string]HashFormat{
	"base16": Base16,
	"base32": Base32,
	"base64": Base64,
	"sri":    SRI,
}

// PrintHashFormat renders f as its lowercase token ("base16", "base32",
// "base64", "sri").
func PrintHashFormat(f HashFormat) string {
	name, ok := hashFormatNames[f]
	if !ok {
		panic("hash: invalid HashFormat")
	}
	return name
}

// ParseHashFormatOpt parses s as a HashFormat, reporting false if s names no
// known format. It never returns an error.
func ParseHashFormatOpt(s string) (HashFormat, bool) {
	f, ok := hashFormatsByName[s]
	return f, ok
}

// ParseHashFormat parses s as a HashFormat or fails with KindUnknownFormat.
func ParseHashFormat(s string) (HashFormat, error) {
	f, ok := ParseHashFormatOpt(s)
	if !ok {
		return 0, newError(KindUnknownFormat, "NIX-HASH-FMT-001", "unknown hash format '"+s+"', expect 'base16', 'base32', 'base64', or 'sri'")
	}
	return f, nil
}
