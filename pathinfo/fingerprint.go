package pathinfo

import (
	"strconv"
	"strings"

	"github.com/zseri/nix/hash"
	"github.com/zseri/nix/store"
)

// Fingerprint computes the canonical, version-tagged string that Sign and
// CheckSignature operate over:
//
//	"1;" + printedPath + ";" + narHash(base32,typed) + ";" + narSize + ";" + joinedReferences
//
// It fails with KindFingerprintUnavailable when NarSize is zero, since the
// size is then not yet known and the fingerprint would silently change
// once it became known.
func (v ValidPathInfo) Fingerprint(s store.Store) (string, error) {
	if v.NarSize == 0 {
		return "", newError(KindFingerprintUnavailable, "NIX-PATHINFO-FP-001",
			"cannot calculate fingerprint of path '"+s.PrintPath(v.Path)+"' because its size is not known")
	}
	refs := s.PrintPathSet(v.References)
	var b strings.Builder
	b.WriteString("1;")
	b.WriteString(s.PrintPath(v.Path))
	b.WriteString(";")
	b.WriteString(v.NarHash.ToString(hash.Base32, true))
	b.WriteString(";")
	b.WriteString(strconv.FormatUint(v.NarSize, 10))
	b.WriteString(";")
	b.WriteString(strings.Join(refs, ","))
	return b.String(), nil
}
