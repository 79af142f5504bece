package store

import "github.com/zseri/nix/hash"

// FileIngestionMethod names how a subtree was ingested when
// ContentAddressMethod is FileIngestion.
type FileIngestionMethod int

const (
	Flat FileIngestionMethod = iota
	NAR
	Git
)

// ContentAddressMethod is a closed tagged variant: either TextIngestion
// (flat, serialized-text mode) or FileIngestion(method). It is modeled as
// an unexported discriminant plus accessor methods rather than an
// interface, so new cases cannot be added outside this package — Go has no
// native closed sum type, and this is the narrowest stand-in for one.
type ContentAddressMethod struct {
	isFile bool
	file   FileIngestionMethod
}

// TextIngestion is the flat, serialized-text ingestion method.
func TextIngestion() ContentAddressMethod { return ContentAddressMethod{} }

// FileIngestionM wraps a FileIngestionMethod as a ContentAddressMethod.
func FileIngestionM(m FileIngestionMethod) ContentAddressMethod {
	return ContentAddressMethod{isFile: true, file: m}
}

// IsTextIngestion reports whether m is the TextIngestion case.
func (m ContentAddressMethod) IsTextIngestion() bool { return !m.isFile }

// FileIngestionMethod returns m's FileIngestionMethod and true if m is the
// FileIngestion case.
func (m ContentAddressMethod) FileIngestionMethod() (FileIngestionMethod, bool) {
	return m.file, m.isFile
}

// ContentAddress pairs an ingestion method with the digest of the ingested
// content.
type ContentAddress struct {
	Method ContentAddressMethod
	Hash   hash.Hash
}

// SelfReferences records whether a path refers to itself, alongside the
// other references it holds, for the FixedOutputInfo case of
// ContentAddressWithReferences.
type SelfReferences struct {
	Others PathSet
	Self   bool
}

// TextInfo is the TextIngestion arm of ContentAddressWithReferences. The
// owning path must never be among References (spec invariant).
type TextInfo struct {
	Hash       hash.Hash
	References PathSet
}

// FixedOutputInfo is the FileIngestion arm of ContentAddressWithReferences.
type FixedOutputInfo struct {
	Method     FileIngestionMethod
	Hash       hash.Hash
	References SelfReferences
}

// ContentAddressWithReferences is the closed tagged variant reconstructed
// from a ValidPathInfo's ContentAddress plus its reference set: either
// TextInfo or FixedOutputInfo.
type ContentAddressWithReferences struct {
	isFixed  bool
	text     TextInfo
	fixed    FixedOutputInfo
}

// NewTextInfo wraps a TextInfo as a ContentAddressWithReferences.
func NewTextInfo(t TextInfo) ContentAddressWithReferences {
	return ContentAddressWithReferences{text: t}
}

// NewFixedOutputInfo wraps a FixedOutputInfo as a ContentAddressWithReferences.
func NewFixedOutputInfo(f FixedOutputInfo) ContentAddressWithReferences {
	return ContentAddressWithReferences{isFixed: true, fixed: f}
}

// TextInfo returns car's TextInfo arm and true if car is that case.
func (car ContentAddressWithReferences) TextInfo() (TextInfo, bool) {
	return car.text, !car.isFixed
}

// FixedOutputInfo returns car's FixedOutputInfo arm and true if car is that
// case.
func (car ContentAddressWithReferences) FixedOutputInfo() (FixedOutputInfo, bool) {
	return car.fixed, car.isFixed
}

// Hash returns the content hash common to both arms.
func (car ContentAddressWithReferences) Hash() hash.Hash {
	if car.isFixed {
		return car.fixed.Hash
	}
	return car.text.Hash
}
