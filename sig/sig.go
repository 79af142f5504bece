// Package sig implements the detached-signature primitive this core treats
// as an external collaborator: producing and checking "name:base64(sig)"
// tokens over an arbitrary message, against one or more named public keys.
//
// Two signature algorithms are wired behind the common Signer/Verifier
// interfaces: Ed25519 (the classical default) and Dilithium3 (post-quantum,
// for callers that need to outlast a quantum-capable adversary). Neither
// algorithm is named by the value types in package pathinfo — a
// ValidPathInfo's sigs are opaque tokens, and verification only needs a
// PublicKeys map from name to Verifier.
package sig

import (
	"encoding/base64"
	"strings"
)

// Signer produces a raw (non-base64) signature over a message under one
// named key. Alg reports the algorithm tag, e.g. "ed25519" or
// "dilithium3" — informational only, the wire token does not embed it.
type Signer interface {
	Alg() string
	Sign(message []byte) []byte
}

// Verifier is the matching verification half of a Signer.
type Verifier interface {
	Alg() string
	Verify(message, signature []byte) bool
}

// SecretKey names a Signer for use in detached signing.
type SecretKey struct {
	Name   string
	Signer Signer
}

// PublicKeys maps a key name to the Verifier that checks signatures claimed
// under that name.
type PublicKeys map[string]Verifier

// SignDetached computes a detached signature token over message using
// secretKey, in "name:base64(sig)" form.
func SignDetached(message []byte, secretKey SecretKey) string {
	raw := secretKey.Signer.Sign(message)
	return secretKey.Name + ":" + base64.StdEncoding.EncodeToString(raw)
}

// VerifyDetached reports whether sigToken is a valid detached signature
// over message under one of publicKeys. An unrecognized key name, a
// malformed token, or a failing cryptographic check all report false —
// this operation never returns an error, matching the fact that an unknown
// signer is not itself a failure condition for a caller counting trusted
// signatures.
func VerifyDetached(message []byte, sigToken string, publicKeys PublicKeys) bool {
	name, enc, ok := strings.Cut(sigToken, ":")
	if !ok {
		return false
	}
	verifier, ok := publicKeys[name]
	if !ok {
		return false
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return false
	}
	return verifier.Verify(message, raw)
}
