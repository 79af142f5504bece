package pathinfo

import (
	"github.com/sirupsen/logrus"

	"github.com/zseri/nix/store"
)

// ContentAddressWithReferences reconstructs the tagged variant implied by
// v's stored ContentAddress and reference set, or reports false if v has
// no content address at all. It panics if a text-ingested path lists
// itself among its references.
func (v ValidPathInfo) ContentAddressWithReferences() (store.ContentAddressWithReferences, bool) {
	if v.CA == nil {
		return store.ContentAddressWithReferences{}, false
	}
	if v.CA.Method.IsTextIngestion() {
		if v.References.Contains(v.Path) {
			panic("pathinfo: text-ingested path '" + v.Path.String() + "' refers to itself")
		}
		return store.NewTextInfo(store.TextInfo{
			Hash:       v.CA.Hash,
			References: v.References,
		}), true
	}
	method, _ := v.CA.Method.FileIngestionMethod()
	others, hasSelf := v.References.Without(v.Path)
	return store.NewFixedOutputInfo(store.FixedOutputInfo{
		Method: method,
		Hash:   v.CA.Hash,
		References: store.SelfReferences{
			Others: others,
			Self:   hasSelf,
		},
	}), true
}

// IsContentAddressed reports whether v's stated content address,
// reconstructed and re-derived through s, actually yields v.Path. A
// mismatch logs a warning through logger (defaulting to
// logrus.StandardLogger() when nil) and reports false rather than
// returning an error — this check is advisory, not a parse failure.
func (v ValidPathInfo) IsContentAddressed(s store.Store, logger *logrus.Logger) bool {
	car, ok := v.ContentAddressWithReferences()
	if !ok {
		return false
	}
	caPath := s.MakeFixedOutputPathFromCA(v.Path.Name(), car)
	if caPath == v.Path {
		return true
	}
	if logger == nil {
		logger = logrus.StandardLogger()
	}
	logger.Warnf("path '%s' claims to be content-addressed but isn't", s.PrintPath(v.Path))
	return false
}
