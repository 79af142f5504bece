package sig

import (
	"io"

	"github.com/cloudflare/circl/sign/dilithium/mode3"
	"golang.org/x/crypto/sha3"
)

// Dilithium3Signer wraps a CRYSTALS-Dilithium (mode3) private key as a
// Signer. The message is pre-hashed with SHA3-256 before signing, the way
// a fixed-size digest is threaded through the primitive regardless of
// message length.
type Dilithium3Signer struct {
	priv *mode3.PrivateKey
}

// NewDilithium3Signer wraps priv as a Signer.
func NewDilithium3Signer(priv *mode3.PrivateKey) Dilithium3Signer {
	return Dilithium3Signer{priv: priv}
}

func (s Dilithium3Signer) Alg() string { return "dilithium3" }

func (s Dilithium3Signer) Sign(message []byte) []byte {
	digest := sha3.Sum256(message)
	out := make([]byte, mode3.SignatureSize)
	mode3.SignTo(s.priv, digest[:], out)
	return out
}

// Dilithium3Verifier wraps a CRYSTALS-Dilithium (mode3) public key as a
// Verifier.
type Dilithium3Verifier struct {
	pub *mode3.PublicKey
}

// NewDilithium3Verifier unmarshals raw as a mode3 public key.
func NewDilithium3Verifier(raw []byte) (Dilithium3Verifier, error) {
	var pk mode3.PublicKey
	if err := pk.UnmarshalBinary(raw); err != nil {
		return Dilithium3Verifier{}, wrapError(KindBadKeyLen, "NIX-SIG-KEY-002", "invalid dilithium3 public key", err)
	}
	return Dilithium3Verifier{pub: &pk}, nil
}

func (v Dilithium3Verifier) Alg() string { return "dilithium3" }

func (v Dilithium3Verifier) Verify(message, signature []byte) bool {
	digest := sha3.Sum256(message)
	return mode3.Verify(v.pub, digest[:], signature)
}

// GenerateDilithium3Keypair returns a new Dilithium3 keypair.
func GenerateDilithium3Keypair(rand io.Reader) (*mode3.PublicKey, *mode3.PrivateKey, error) {
	return mode3.GenerateKey(rand)
}
