package pathinfo

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/zseri/nix/sig"
	"github.com/zseri/nix/store"
)

// MaxSigs is the sentinel CheckSignatures returns for a path proven
// content-addressed: such a path verifies itself, so it is trusted
// regardless of how many (if any) of its signatures individually check out.
const MaxSigs = ^uint(0)

// Sign computes v's fingerprint and inserts the detached signature token
// secretKey produces over it into v.Sigs. Distinct calls with the same key
// may accumulate distinct tokens if the signature primitive is not
// deterministic; callers tolerate this rather than deduplicating by value.
func (v *ValidPathInfo) Sign(s store.Store, secretKey sig.SecretKey) error {
	fp, err := v.Fingerprint(s)
	if err != nil {
		return err
	}
	token := sig.SignDetached([]byte(fp), secretKey)
	if v.Sigs == nil {
		v.Sigs = make(map[string]struct{})
	}
	v.Sigs[token] = struct{}{}
	return nil
}

// CheckSignature reports whether token is a valid detached signature over
// v's fingerprint under one of publicKeys. An unknown signer or a
// fingerprint that cannot be computed both report false, never an error.
func (v ValidPathInfo) CheckSignature(s store.Store, publicKeys sig.PublicKeys, token string) bool {
	fp, err := v.Fingerprint(s)
	if err != nil {
		return false
	}
	return sig.VerifyDetached([]byte(fp), token, publicKeys)
}

// CheckSignatures counts how many of v.Sigs verify under publicKeys,
// unless v is provably content-addressed, in which case it returns
// MaxSigs without inspecting Sigs at all. logger defaults to
// logrus.StandardLogger() when nil and is passed through to
// IsContentAddressed for the CA-mismatch warning.
func (v ValidPathInfo) CheckSignatures(s store.Store, publicKeys sig.PublicKeys, logger *logrus.Logger) uint {
	if v.IsContentAddressed(s, logger) {
		return MaxSigs
	}
	good := uint(0)
	for token := range v.Sigs {
		if v.CheckSignature(s, publicKeys, token) {
			good++
		}
	}
	return good
}

// ShortRefs returns the textual forms of v's references with the store's
// directory prefix stripped, in the reference set's sorted order
// (PathSet.Sorted).
func (v ValidPathInfo) ShortRefs(s store.Store) []string {
	dir := s.StoreDir()
	sorted := v.References.Sorted()
	out := make([]string, len(sorted))
	for i, p := range sorted {
		full := s.PrintPath(p)
		out[i] = strings.TrimPrefix(strings.TrimPrefix(full, dir), "/")
	}
	return out
}
