// Package pathinfo binds a store path to its content hash, reference
// closure, and signature set, and implements the canonical fingerprint,
// detached-signing protocol, and content-address reconstruction that make
// such a binding independently verifiable.
package pathinfo

import (
	"time"

	"github.com/zseri/nix/hash"
	"github.com/zseri/nix/store"
)

// UnkeyedValidPathInfo is a store path's metadata without the path's own
// identity: its content hash, reference closure, registration metadata,
// trust bits, and signature set.
type UnkeyedValidPathInfo struct {
	Deriver    store.StorePath
	HasDeriver bool

	// NarHash is the canonical content digest of the path (conventionally
	// SHA-256 over a NAR serialization, though this package does not
	// enforce the algorithm).
	NarHash hash.Hash

	References       store.PathSet
	RegistrationTime time.Time
	// NarSize is the serialized size in bytes; zero means unknown, which
	// makes Fingerprint fail.
	NarSize uint64
	// Ultimate records whether this path was built locally rather than
	// substituted or imported.
	Ultimate bool
	// Sigs holds detached signature tokens over Fingerprint(). Membership
	// here is not itself a claim of validity — see CheckSignatures.
	Sigs map[string]struct{}
	// CA, if non-nil, asserts that the path is content-addressed: derivable
	// from its content plus the ingestion method, rather than trusted by
	// signature.
	CA *store.ContentAddress
}

// NewUnkeyedValidPathInfo returns a zero-valued record carrying narHash,
// with its set-typed fields initialized to empty rather than nil.
func NewUnkeyedValidPathInfo(narHash hash.Hash) UnkeyedValidPathInfo {
	return UnkeyedValidPathInfo{
		NarHash:    narHash,
		References: store.NewPathSet(),
		Sigs:       make(map[string]struct{}),
	}
}

// Equal compares every field, matching the record's C++ ancestor's
// GENERATE_CMP_EXT field list exactly (deriver, narHash, references,
// registrationTime, narSize, ultimate, sigs, ca).
func (u UnkeyedValidPathInfo) Equal(other UnkeyedValidPathInfo) bool {
	if u.HasDeriver != other.HasDeriver {
		return false
	}
	if u.HasDeriver && u.Deriver != other.Deriver {
		return false
	}
	if !u.NarHash.Equal(other.NarHash) {
		return false
	}
	if !u.References.Equal(other.References) {
		return false
	}
	if !u.RegistrationTime.Equal(other.RegistrationTime) {
		return false
	}
	if u.NarSize != other.NarSize {
		return false
	}
	if u.Ultimate != other.Ultimate {
		return false
	}
	if len(u.Sigs) != len(other.Sigs) {
		return false
	}
	for s := range u.Sigs {
		if _, ok := other.Sigs[s]; !ok {
			return false
		}
	}
	if (u.CA == nil) != (other.CA == nil) {
		return false
	}
	if u.CA != nil {
		if u.CA.Method != other.CA.Method {
			return false
		}
		if !u.CA.Hash.Equal(other.CA.Hash) {
			return false
		}
	}
	return true
}

// ValidPathInfo pairs a StorePath with its UnkeyedValidPathInfo. It is
// mutated only by Sign, which inserts into Sigs; every other operation is
// read-only.
type ValidPathInfo struct {
	Path store.StorePath
	UnkeyedValidPathInfo
}

// Equal compares Path plus every embedded field.
func (v ValidPathInfo) Equal(other ValidPathInfo) bool {
	return v.Path == other.Path && v.UnkeyedValidPathInfo.Equal(other.UnkeyedValidPathInfo)
}

// NewValidPathInfo constructs a ValidPathInfo whose Path is derived
// deterministically from car via s, rather than supplied directly. See
// ContentAddressWithReferences for the inverse operation.
func NewValidPathInfo(s store.Store, name string, car store.ContentAddressWithReferences, narHash hash.Hash) ValidPathInfo {
	path := s.MakeFixedOutputPathFromCA(name, car)
	u := NewUnkeyedValidPathInfo(narHash)

	if ti, ok := car.TextInfo(); ok {
		u.References = ti.References
		u.CA = &store.ContentAddress{Method: store.TextIngestion(), Hash: ti.Hash}
	} else {
		foi, _ := car.FixedOutputInfo()
		refs := foi.References.Others
		if foi.References.Self {
			refs = refs.With(path)
		}
		u.References = refs
		u.CA = &store.ContentAddress{Method: store.FileIngestionM(foi.Method), Hash: foi.Hash}
	}

	return ValidPathInfo{Path: path, UnkeyedValidPathInfo: u}
}
