package sig

import "crypto/ed25519"

// Ed25519Signer wraps an Ed25519 private key as a Signer. It signs the
// message bytes directly; Ed25519's own internal SHA-512 pass is the only
// hashing involved — no separate pre-hash step.
type Ed25519Signer struct {
	priv ed25519.PrivateKey
}

// NewEd25519Signer wraps priv as a Signer.
func NewEd25519Signer(priv ed25519.PrivateKey) Ed25519Signer {
	return Ed25519Signer{priv: priv}
}

func (s Ed25519Signer) Alg() string { return "ed25519" }

func (s Ed25519Signer) Sign(message []byte) []byte {
	return ed25519.Sign(s.priv, message)
}

// Ed25519Verifier wraps an Ed25519 public key as a Verifier.
type Ed25519Verifier struct {
	pub ed25519.PublicKey
}

// NewEd25519Verifier validates pub's length and wraps it as a Verifier.
func NewEd25519Verifier(pub []byte) (Ed25519Verifier, error) {
	if len(pub) != ed25519.PublicKeySize {
		return Ed25519Verifier{}, newError(KindBadKeyLen, "NIX-SIG-KEY-001", "ed25519 public key must be 32 bytes")
	}
	return Ed25519Verifier{pub: ed25519.PublicKey(pub)}, nil
}

func (v Ed25519Verifier) Alg() string { return "ed25519" }

func (v Ed25519Verifier) Verify(message, signature []byte) bool {
	return ed25519.Verify(v.pub, message, signature)
}
