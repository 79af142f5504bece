// Package memstore provides a deterministic, in-process reference
// implementation of store.Store, for use by tests and examples that need a
// concrete Store without depending on any particular on-disk package store.
//
// Nothing here is a claim about any real store's on-disk path grammar —
// that grammar is explicitly out of scope for this core. This
// implementation instead derives each path's digest the way a real store
// would (hash the content-address descriptor, compress to 20 bytes) and
// renders that digest through an existing, already-specified textual
// grammar — CIDv1 — rather than inventing a bespoke one.
package memstore

import (
	"crypto/sha256"
	"strconv"
	"strings"

	"github.com/zseri/nix/hash"
	"github.com/zseri/nix/store"
)

// Store is a deterministic in-memory store.Store.
type Store struct {
	dir string
}

// New returns a Store rooted at dir. An empty dir defaults to "/nix/store".
func New(dir string) *Store {
	if dir == "" {
		dir = "/nix/store"
	}
	return &Store{dir: dir}
}

// StoreDir reports the store's directory prefix.
func (s *Store) StoreDir() string { return s.dir }

// PrintPath renders p with the store's directory prefix.
func (s *Store) PrintPath(p store.StorePath) string {
	return s.dir + "/" + p.String()
}

// PrintPathSet renders ps in the store's canonical order: sorted by the
// opaque StorePath identifier.
func (s *Store) PrintPathSet(ps store.PathSet) []string {
	sorted := ps.Sorted()
	out := make([]string, len(sorted))
	for i, p := range sorted {
		out[i] = s.PrintPath(p)
	}
	return out
}

// MakeFixedOutputPathFromCA derives the StorePath that name and car imply
// under this store's (test-only) content-addressing scheme.
func (s *Store) MakeFixedOutputPathFromCA(name string, car store.ContentAddressWithReferences) store.StorePath {
	descriptor := descriptorFor(s.dir, name, car)
	sum := sha256.Sum256([]byte(descriptor))
	digest, err := hash.FromBytes(hash.SHA256, sum[:])
	if err != nil {
		// sha256.Sum256 always yields 32 bytes; FromBytes only rejects
		// lengths outside [1, 64].
		panic(err)
	}
	compressed := hash.Compress(digest, 20)
	c, err := hash.ToCID(compressed)
	if err != nil {
		panic(err)
	}
	return store.NewStorePath(c.String()+"-"+name, name)
}

// descriptorFor builds the canonical byte string whose digest identifies
// the derived path: a colon-separated record of everything that makes the
// path's identity unique, mirroring the ":"+hash+":"+dir+":"+name shape a
// real store's legacy fixed-output digest uses, extended with ingestion
// method and reference-closure fields so text and file content-addresses
// with different reference sets never collide.
func descriptorFor(dir, name string, car store.ContentAddressWithReferences) string {
	var b strings.Builder
	if ti, ok := car.TextInfo(); ok {
		b.WriteString("text:")
		b.WriteString(ti.Hash.ToString(hash.Base16, true))
		b.WriteString(":")
		b.WriteString(dir)
		b.WriteString(":")
		b.WriteString(name)
		b.WriteString(":refs=")
		writeSortedRefs(&b, ti.References)
		return b.String()
	}
	foi, _ := car.FixedOutputInfo()
	b.WriteString("fixed:")
	b.WriteString(strconv.Itoa(int(foi.Method)))
	b.WriteString(":")
	b.WriteString(foi.Hash.ToString(hash.Base16, true))
	b.WriteString(":")
	b.WriteString(dir)
	b.WriteString(":")
	b.WriteString(name)
	b.WriteString(":self=")
	b.WriteString(strconv.FormatBool(foi.References.Self))
	b.WriteString(":refs=")
	writeSortedRefs(&b, foi.References.Others)
	return b.String()
}

func writeSortedRefs(b *strings.Builder, refs store.PathSet) {
	sorted := refs.Sorted()
	for i, p := range sorted {
		if i > 0 {
			b.WriteString(",")
		}
		b.WriteString(p.String())
	}
}
