// Package storetest is a conformance battery for store.Store
// implementations, in the shape of a shared RunConformance helper rather
// than duplicated assertions per implementation.
package storetest

import (
	"testing"

	"github.com/zseri/nix/hash"
	"github.com/zseri/nix/store"
)

// NewStore constructs a fresh store.Store for a test. The returned Store
// must be isolated from other tests.
type NewStore func(t *testing.T) store.Store

// RunConformance exercises the invariants every store.Store implementation
// must satisfy, independent of how it derives or renders paths.
func RunConformance(t *testing.T, newStore NewStore) {
	t.Helper()

	t.Run("MakeFixedOutputPathDeterministic", func(t *testing.T) {
		s := newStore(t)
		car := store.NewTextInfo(store.TextInfo{
			Hash: hash.HashString(hash.SHA256, []byte("hello")),
		})
		p1 := s.MakeFixedOutputPathFromCA("greeting", car)
		p2 := s.MakeFixedOutputPathFromCA("greeting", car)
		if p1 != p2 {
			t.Fatalf("MakeFixedOutputPathFromCA not deterministic: %v vs %v", p1, p2)
		}
	})

	t.Run("DifferentNameDifferentPath", func(t *testing.T) {
		s := newStore(t)
		car := store.NewTextInfo(store.TextInfo{
			Hash: hash.HashString(hash.SHA256, []byte("hello")),
		})
		p1 := s.MakeFixedOutputPathFromCA("a", car)
		p2 := s.MakeFixedOutputPathFromCA("b", car)
		if p1 == p2 {
			t.Fatalf("distinct names produced the same path")
		}
	})

	t.Run("DifferentHashDifferentPath", func(t *testing.T) {
		s := newStore(t)
		car1 := store.NewTextInfo(store.TextInfo{Hash: hash.HashString(hash.SHA256, []byte("a"))})
		car2 := store.NewTextInfo(store.TextInfo{Hash: hash.HashString(hash.SHA256, []byte("b"))})
		p1 := s.MakeFixedOutputPathFromCA("same-name", car1)
		p2 := s.MakeFixedOutputPathFromCA("same-name", car2)
		if p1 == p2 {
			t.Fatalf("distinct content hashes produced the same path")
		}
	})

	t.Run("TextAndFixedOutputDontCollide", func(t *testing.T) {
		s := newStore(t)
		h := hash.HashString(hash.SHA256, []byte("same bytes"))
		textCar := store.NewTextInfo(store.TextInfo{Hash: h})
		fixedCar := store.NewFixedOutputInfo(store.FixedOutputInfo{
			Method: store.Flat,
			Hash:   h,
		})
		p1 := s.MakeFixedOutputPathFromCA("n", textCar)
		p2 := s.MakeFixedOutputPathFromCA("n", fixedCar)
		if p1 == p2 {
			t.Fatalf("text and fixed-output content addresses collided")
		}
	})

	t.Run("PrintPathIncludesStoreDir", func(t *testing.T) {
		s := newStore(t)
		car := store.NewTextInfo(store.TextInfo{Hash: hash.HashString(hash.SHA256, []byte("x"))})
		p := s.MakeFixedOutputPathFromCA("x", car)
		printed := s.PrintPath(p)
		dir := s.StoreDir()
		if len(printed) <= len(dir) || printed[:len(dir)] != dir {
			t.Fatalf("PrintPath %q does not start with StoreDir %q", printed, dir)
		}
	})

	t.Run("PrintPathSetIsStable", func(t *testing.T) {
		s := newStore(t)
		car := store.NewTextInfo(store.TextInfo{Hash: hash.HashString(hash.SHA256, []byte("x"))})
		a := s.MakeFixedOutputPathFromCA("a", car)
		b := s.MakeFixedOutputPathFromCA("bbbb", car)
		ps := store.NewPathSet(b, a)
		out1 := s.PrintPathSet(ps)
		out2 := s.PrintPathSet(ps)
		if len(out1) != 2 || len(out2) != 2 {
			t.Fatalf("expected 2 printed paths, got %d and %d", len(out1), len(out2))
		}
		for i := range out1 {
			if out1[i] != out2[i] {
				t.Fatalf("PrintPathSet is not stable across calls")
			}
		}
	})
}
