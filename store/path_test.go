package store

import "testing"

func TestStorePathNameAndString(t *testing.T) {
	p := NewStorePath("abc123-greeting", "greeting")
	if p.String() != "abc123-greeting" {
		t.Fatalf("got %q", p.String())
	}
	if p.Name() != "greeting" {
		t.Fatalf("got %q", p.Name())
	}
	if p.IsZero() {
		t.Fatalf("expected non-zero")
	}
	if !(StorePath{}).IsZero() {
		t.Fatalf("expected zero StorePath to report IsZero")
	}
}

func TestStorePathLessIsLexicographicOnID(t *testing.T) {
	a := NewStorePath("a-foo", "foo")
	b := NewStorePath("b-bar", "bar")
	if !a.Less(b) {
		t.Fatalf("expected a-foo < b-bar")
	}
	if b.Less(a) {
		t.Fatalf("expected b-bar not less than a-foo")
	}
}

func TestPathSetWithWithoutContains(t *testing.T) {
	p1 := NewStorePath("a-one", "one")
	p2 := NewStorePath("b-two", "two")

	s := NewPathSet(p1)
	if !s.Contains(p1) || s.Contains(p2) {
		t.Fatalf("unexpected membership")
	}

	s2 := s.With(p2)
	if !s2.Contains(p1) || !s2.Contains(p2) {
		t.Fatalf("With did not add member")
	}
	if s.Contains(p2) {
		t.Fatalf("With mutated original set")
	}

	s3, had := s2.Without(p1)
	if !had {
		t.Fatalf("expected Without to report present")
	}
	if s3.Contains(p1) || !s3.Contains(p2) {
		t.Fatalf("Without left wrong membership")
	}
	if !s2.Contains(p1) {
		t.Fatalf("Without mutated original set")
	}

	if _, had := s3.Without(p1); had {
		t.Fatalf("expected Without to report absent on second removal")
	}
}

func TestPathSetSortedIsStableTotalOrder(t *testing.T) {
	p1 := NewStorePath("c-third", "third")
	p2 := NewStorePath("a-first", "first")
	p3 := NewStorePath("b-second", "second")

	s := NewPathSet(p1, p2, p3)
	got := s.Sorted()
	want := []StorePath{p2, p3, p1}
	if len(got) != len(want) {
		t.Fatalf("got %d paths, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Sorted()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestPathSetEqual(t *testing.T) {
	p1 := NewStorePath("a-one", "one")
	p2 := NewStorePath("b-two", "two")

	a := NewPathSet(p1, p2)
	b := NewPathSet(p2, p1)
	if !a.Equal(b) {
		t.Fatalf("expected equal regardless of construction order")
	}

	c := NewPathSet(p1)
	if a.Equal(c) {
		t.Fatalf("expected unequal on different size")
	}
}
