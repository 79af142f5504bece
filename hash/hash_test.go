package hash

import (
	"crypto/rand"
	"crypto/sha256"
	"io"
	"sort"
	"strings"
	"testing"
)

func TestRoundTripEncoding(t *testing.T) {
	types := []HashType{MD5, SHA1, SHA256, SHA512}
	formats := []HashFormat{Base16, Base32, Base64, SRI}

	for _, typ := range types {
		raw := make([]byte, naturalSize(typ))
		if _, err := rand.Read(raw); err != nil {
			t.Fatalf("rand.Read: %v", err)
		}
		h := fromRawBytes(typ, raw)

		for _, f := range formats {
			s := h.ToString(f, true)
			got, err := ParseAny(s, nil)
			if err != nil {
				t.Fatalf("ParseAny(%q) for type %v format %v: %v", s, typ, f, err)
			}
			if !got.Equal(h) || got.Type() != typ {
				t.Fatalf("round trip mismatch: got %+v want %+v (rendered %q)", got, h, s)
			}
		}
	}
}

func TestLengthLaws(t *testing.T) {
	cases := []struct {
		typ      HashType
		base16   int
		base32   int
		base64   int
	}{
		{MD5, 32, 26, 24},
		{SHA1, 40, 32, 28},
		{SHA256, 64, 52, 44},
		{SHA512, 128, 103, 88},
	}
	for _, c := range cases {
		h := HashOfType(c.typ)
		if got := len(h.ToString(Base16, false)); got != c.base16 {
			t.Errorf("%v base16 length: got %d want %d", c.typ, got, c.base16)
		}
		if got := len(h.ToString(Base32, false)); got != c.base32 {
			t.Errorf("%v base32 length: got %d want %d", c.typ, got, c.base32)
		}
		if got := len(h.ToString(Base64, false)); got != c.base64 {
			t.Errorf("%v base64 length: got %d want %d", c.typ, got, c.base64)
		}
	}
}

func TestBase16CaseInsensitive(t *testing.T) {
	h := HashString(SHA256, []byte("abc"))
	lower := h.ToString(Base16, false)
	upper := strings.ToUpper(lower)
	got, err := ParseNonSRIUnprefixed(upper, SHA256)
	if err != nil {
		t.Fatalf("ParseNonSRIUnprefixed(upper): %v", err)
	}
	if !got.Equal(h) {
		t.Fatalf("uppercase hex did not round-trip")
	}
	if strings.ToLower(lower) != lower {
		t.Fatalf("renderer emitted non-lowercase base16: %q", lower)
	}
}

func TestBase32AlphabetExcludesEOUT(t *testing.T) {
	if len(base32Alphabet) != 32 {
		t.Fatalf("alphabet length = %d, want 32", len(base32Alphabet))
	}
	for _, bad := range []byte{'e', 'o', 'u', 't'} {
		if strings.IndexByte(base32Alphabet, bad) >= 0 {
			t.Fatalf("alphabet unexpectedly contains %q", bad)
		}
	}
}

func TestBase32HighBitRejected(t *testing.T) {
	// A 1-byte digest's base-32 form is 2 characters; with n=1 only the low
	// 3 bits of the second (leftmost, per the left-to-right rendering) digit
	// are meaningful. Construct a string whose leading character carries a
	// high bit beyond that and confirm it is rejected.
	valid := encodeBase32([]byte{0xff})
	// Leading character currently encodes bits that must be zero once the
	// 5th bit past the byte boundary is set; find an alphabet symbol whose
	// value has that high bit set and is not the valid leading character.
	for _, c := range base32Alphabet {
		candidate := string(c) + valid[1:]
		if candidate == valid {
			continue
		}
		_, err := decodeBase32(candidate, 1)
		if err == nil {
			continue
		}
		if !IsKind(err, KindBadHashEncoding) {
			t.Fatalf("unexpected error kind: %v", err)
		}
		return
	}
	t.Fatalf("did not find an invalid high-bit leading character to test")
}

func TestHashStringEmptySHA256(t *testing.T) {
	h := HashString(SHA256, nil)
	want := sha256.Sum256(nil)
	if !h.Equal(fromRawBytes(SHA256, want[:])) {
		t.Fatalf("hash mismatch for empty input")
	}
	got := h.ToString(Base16, false)
	wantHex := "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"
	if got != wantHex {
		t.Fatalf("got %q want %q", got, wantHex)
	}
}

func TestCompress(t *testing.T) {
	h := HashString(SHA256, []byte("abc"))
	c := Compress(h, 20)
	if c.Type() != SHA256 {
		t.Fatalf("compress changed type: got %v", c.Type())
	}
	if c.Size() != 20 {
		t.Fatalf("compress size = %d, want 20", c.Size())
	}
	want := make([]byte, 20)
	src := h.Bytes()
	for i, b := range src {
		want[i%20] ^= b
	}
	if string(c.Bytes()) != string(want) {
		t.Fatalf("compressed bytes mismatch")
	}
}

func TestCompressIdentityOnNaturalSize(t *testing.T) {
	h := HashString(SHA1, []byte("hello"))
	c := Compress(h, h.Size())
	if !c.Equal(h) {
		t.Fatalf("Compress(h, naturalSize) != h")
	}
}

func TestEqualityIgnoresType(t *testing.T) {
	raw := make([]byte, 32)
	raw[0] = 0x42
	a := fromRawBytes(SHA256, raw)
	b := Hash{typ: MD5, size: 32}
	b.bytes = a.bytes
	if !a.Equal(b) {
		t.Fatalf("Equal should ignore Type")
	}
	if a.Type() == b.Type() {
		t.Fatalf("test setup invalid: types should differ")
	}
}

func TestHashSinkCurrentDoesNotDisturbStream(t *testing.T) {
	sink := NewHashSink(SHA256)
	sink.Write([]byte("abc"))
	mid, midBytes := sink.Current()
	sink.Write([]byte("def"))
	final, finalBytes := sink.Finish()

	wantMid := HashString(SHA256, []byte("abc"))
	if !mid.Equal(wantMid) || midBytes != 3 {
		t.Fatalf("Current() snapshot wrong: got %v/%d", mid, midBytes)
	}
	wantFinal := HashString(SHA256, []byte("abcdef"))
	if !final.Equal(wantFinal) || finalBytes != 6 {
		t.Fatalf("Finish() after Current() wrong: got %v/%d", final, finalBytes)
	}
}

func TestParseSRI(t *testing.T) {
	h := HashString(SHA256, nil)
	s := h.ToString(SRI, true)
	if !strings.HasPrefix(s, "sha256-") {
		t.Fatalf("expected sha256- prefix, got %q", s)
	}
	got, err := ParseSRI(s)
	if err != nil {
		t.Fatalf("ParseSRI: %v", err)
	}
	if !got.Equal(h) {
		t.Fatalf("ParseSRI round trip mismatch")
	}
}

func TestDummySRI(t *testing.T) {
	want := "sha256-47DEQpj8HBSa+/TImW+5JCeuQeRkm5NMpJWZG3hSuFU="
	got := Dummy.ToString(SRI, true)
	if got != want {
		t.Fatalf("got %q want %q", got, want)
	}
	wantHex := strings.Repeat("0", 64)
	if got := Dummy.ToString(Base16, false); got != wantHex {
		t.Fatalf("dummy base16 got %q want %q", got, wantHex)
	}
}

func TestParseAnyTypeMismatch(t *testing.T) {
	h := HashString(SHA256, []byte("x"))
	s := h.ToString(Base16, true)
	other := SHA1
	if _, err := ParseAny(s, &other); !IsKind(err, KindBadHashType) {
		t.Fatalf("expected BadHashType, got %v", err)
	}
}

func TestBadHashLength(t *testing.T) {
	if _, err := ParseNonSRIUnprefixed("deadbeef", SHA256); !IsKind(err, KindBadHashLength) {
		t.Fatalf("expected BadHashLength, got %v", err)
	}
}

func TestUnknownFormatAndType(t *testing.T) {
	if _, err := ParseHashFormat("base99"); !IsKind(err, KindUnknownFormat) {
		t.Fatalf("expected UnknownHashFormat, got %v", err)
	}
	if _, err := ParseHashType("sha3"); !IsKind(err, KindUnknownType) {
		t.Fatalf("expected UnknownHashType, got %v", err)
	}
}

func TestNewHashAllowEmpty(t *testing.T) {
	typ := SHA256
	h, err := NewHashAllowEmpty("", &typ, nil)
	if err != nil {
		t.Fatalf("NewHashAllowEmpty: %v", err)
	}
	if !h.Equal(HashOfType(SHA256)) {
		t.Fatalf("expected all-zero hash")
	}

	want := HashString(SHA256, []byte("abc"))
	s := want.ToString(SRI, true)
	got, err := NewHashAllowEmpty(s, nil, nil)
	if err != nil {
		t.Fatalf("NewHashAllowEmpty(non-empty): %v", err)
	}
	if !got.Equal(want) {
		t.Fatalf("NewHashAllowEmpty(non-empty) mismatch")
	}
}

type fakeArchiveSource struct {
	files map[string][]byte
}

func (s fakeArchiveSource) WriteTo(sink io.Writer, filter PathFilter) error {
	names := make([]string, 0, len(s.files))
	for name := range s.files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !filter(name) {
			continue
		}
		if _, err := sink.Write(s.files[name]); err != nil {
			return err
		}
	}
	return nil
}

func TestHashPathMatchesDirectSinkOverFilteredBytes(t *testing.T) {
	src := fakeArchiveSource{files: map[string][]byte{
		"b.txt": []byte("second"),
		"a.txt": []byte("first"),
		"skip":  []byte("excluded"),
	}}
	filter := func(relPath string) bool { return relPath != "skip" }

	h, n, err := HashPath(SHA256, src, filter)
	if err != nil {
		t.Fatalf("HashPath: %v", err)
	}

	want := HashString(SHA256, []byte("firstsecond"))
	if !h.Equal(want) {
		t.Fatalf("HashPath digest mismatch")
	}
	if n != uint64(len("firstsecond")) {
		t.Fatalf("got %d bytes, want %d", n, len("firstsecond"))
	}
}

func TestHashPathAcceptAllIncludesEverything(t *testing.T) {
	src := fakeArchiveSource{files: map[string][]byte{"only.txt": []byte("x")}}
	_, n, err := HashPath(MD5, src, AcceptAll)
	if err != nil {
		t.Fatalf("HashPath: %v", err)
	}
	if n != 1 {
		t.Fatalf("got %d bytes, want 1", n)
	}
}

func TestToCIDFromCIDRoundTrip(t *testing.T) {
	h := HashString(SHA256, []byte("cid round trip"))
	c, err := ToCID(h)
	if err != nil {
		t.Fatalf("ToCID: %v", err)
	}
	got, err := FromCID(c)
	if err != nil {
		t.Fatalf("FromCID: %v", err)
	}
	if !got.Equal(h) || got.Type() != h.Type() {
		t.Fatalf("CID round trip mismatch")
	}
}
