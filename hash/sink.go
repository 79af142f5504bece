package hash

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding"
	gohash "hash"
)

func newContext(t HashType) gohash.Hash {
	switch t {
	case MD5:
		return md5.New()
	case SHA1:
		return sha1.New()
	case SHA256:
		return sha256.New()
	case SHA512:
		return sha512.New()
	default:
		panic("hash: invalid HashType")
	}
}

// HashString hashes s in one shot, returning a Hash of natural size for t.
func HashString(t HashType, s []byte) Hash {
	ctx := newContext(t)
	ctx.Write(s)
	return fromRawBytes(t, ctx.Sum(nil))
}

// HashSink is a streaming multi-algorithm hasher. It is not safe for
// concurrent use by more than one writer; Current may be called by the
// writer mid-stream without disturbing further writes.
type HashSink struct {
	typ   HashType
	ctx   gohash.Hash
	bytes uint64
}

// NewHashSink constructs a streaming hasher for the given algorithm.
func NewHashSink(t HashType) *HashSink {
	return &HashSink{typ: t, ctx: newContext(t)}
}

// Write appends data to the running digest and returns its length, never an
// error, matching io.Writer.
func (s *HashSink) Write(data []byte) (int, error) {
	n, err := s.ctx.Write(data)
	s.bytes += uint64(n)
	return n, err
}

// Finish finalizes the sink, returning the digest and the total number of
// bytes written. The sink must not be used again afterward.
func (s *HashSink) Finish() (Hash, uint64) {
	return fromRawBytes(s.typ, s.ctx.Sum(nil)), s.bytes
}

// Current returns the digest as if Finish were called now, without
// consuming the sink: writes after Current continue to extend the original
// stream. It clones the underlying digest context via
// encoding.BinaryMarshaler/BinaryUnmarshaler, the Go-native analogue of
// copying the OpenSSL context struct by value.
func (s *HashSink) Current() (Hash, uint64) {
	clone := cloneContext(s.typ, s.ctx)
	return fromRawBytes(s.typ, clone.Sum(nil)), s.bytes
}

// cloneContext returns an independent copy of ctx's in-progress state.
func cloneContext(t HashType, ctx gohash.Hash) gohash.Hash {
	marshaler, ok := ctx.(encoding.BinaryMarshaler)
	if !ok {
		panic("hash: digest context does not support snapshotting")
	}
	state, err := marshaler.MarshalBinary()
	if err != nil {
		panic("hash: failed to snapshot digest context: " + err.Error())
	}
	clone := newContext(t)
	if err := clone.(encoding.BinaryUnmarshaler).UnmarshalBinary(state); err != nil {
		panic("hash: failed to restore digest context snapshot: " + err.Error())
	}
	return clone
}
