package sig

import (
	"crypto/ed25519"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"strings"
)

// ParseSecretKey parses a "name:base64(key)" secret-key line into a
// SecretKey backed by an Ed25519 signer. Both a bare 32-byte seed and a
// full 64-byte Ed25519 private key are accepted.
func ParseSecretKey(line string) (SecretKey, error) {
	name, enc, ok := strings.Cut(strings.TrimSpace(line), ":")
	if !ok {
		return SecretKey{}, newError(KindBadToken, "NIX-SIG-TOKEN-001", "secret key must be \"name:base64\"")
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return SecretKey{}, wrapError(KindBadToken, "NIX-SIG-TOKEN-002", "invalid base64 in secret key", err)
	}
	switch len(raw) {
	case ed25519.SeedSize:
		return SecretKey{Name: name, Signer: NewEd25519Signer(ed25519.NewKeyFromSeed(raw))}, nil
	case ed25519.PrivateKeySize:
		return SecretKey{Name: name, Signer: NewEd25519Signer(ed25519.PrivateKey(raw))}, nil
	default:
		return SecretKey{}, newError(KindBadSeedLen, "NIX-SIG-SEED-001", "secret key must be a 32-byte seed or a 64-byte ed25519 private key")
	}
}

// GenerateSecretKey creates a fresh Ed25519 secret key named name, returning
// the usable SecretKey plus the "name:base64" lines for the secret and
// matching public key (for distribution to verifiers).
func GenerateSecretKey(name string) (secretKey SecretKey, secretLine string, publicLine string, err error) {
	pub, priv, err := ed25519.GenerateKey(rand.Reader)
	if err != nil {
		return SecretKey{}, "", "", err
	}
	secretLine = name + ":" + base64.StdEncoding.EncodeToString(priv)
	publicLine = name + ":" + base64.StdEncoding.EncodeToString(pub)
	return SecretKey{Name: name, Signer: NewEd25519Signer(priv)}, secretLine, publicLine, nil
}

// ParsePublicKey parses a "name:base64(key)" public-key line, dispatching
// on the decoded length to either an Ed25519 or a Dilithium3 Verifier.
func ParsePublicKey(line string) (name string, verifier Verifier, err error) {
	name, enc, ok := strings.Cut(strings.TrimSpace(line), ":")
	if !ok {
		return "", nil, newError(KindBadToken, "NIX-SIG-TOKEN-003", "public key must be \"name:base64\"")
	}
	raw, err := base64.StdEncoding.DecodeString(enc)
	if err != nil {
		return "", nil, wrapError(KindBadToken, "NIX-SIG-TOKEN-004", "invalid base64 in public key", err)
	}
	if len(raw) == ed25519.PublicKeySize {
		v, verr := NewEd25519Verifier(raw)
		if verr != nil {
			return "", nil, verr
		}
		return name, v, nil
	}
	v, verr := NewDilithium3Verifier(raw)
	if verr != nil {
		return "", nil, newError(KindBadKeyLen, "NIX-SIG-KEY-003", "public key length matches neither ed25519 nor dilithium3")
	}
	return name, v, nil
}

// DeriveSubSeed deterministically derives a purpose-scoped Ed25519 seed
// from a root seed, so a single root secret can be partitioned into
// independently revocable subkeys without shipping multiple independently
// generated roots.
func DeriveSubSeed(rootSeed []byte, purpose string) ([]byte, error) {
	if len(rootSeed) != ed25519.SeedSize {
		return nil, newError(KindBadSeedLen, "NIX-SIG-SEED-002", "root seed must be 32 bytes")
	}
	if purpose == "" {
		return nil, newError(KindBadToken, "NIX-SIG-TOKEN-005", "purpose must not be empty")
	}
	h := sha256.New()
	h.Write(rootSeed)
	h.Write([]byte{0})
	h.Write([]byte("nix-subkey-v1"))
	h.Write([]byte{0})
	h.Write([]byte(purpose))
	sum := h.Sum(nil)
	out := make([]byte, ed25519.SeedSize)
	copy(out, sum[:ed25519.SeedSize])
	return out, nil
}
