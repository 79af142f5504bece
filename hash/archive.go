package hash

import "io"

// PathFilter decides whether relPath (a path relative to the subtree root)
// is included in a canonical archive serialization.
type PathFilter func(relPath string) bool

// AcceptAll is a PathFilter that excludes nothing.
func AcceptAll(string) bool { return true }

// ArchiveSource streams a canonical, filtered serialization of a
// file-system subtree into sink. Producing that serialization (e.g. a NAR)
// is explicitly out of scope for this package — traversal and serialization
// belong to an external collaborator; this package only owns the hashing
// sink the collaborator writes into.
type ArchiveSource interface {
	WriteTo(sink io.Writer, filter PathFilter) error
}

// HashPath hashes the canonical serialization ArchiveSource produces for a
// subtree, returning the digest and the number of bytes streamed through
// the sink.
func HashPath(t HashType, src ArchiveSource, filter PathFilter) (Hash, uint64, error) {
	sink := NewHashSink(t)
	if err := src.WriteTo(sink, filter); err != nil {
		return Hash{}, 0, err
	}
	h, n := sink.Finish()
	return h, n, nil
}
