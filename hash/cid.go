package hash

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

var multihashCodes = map[HashType]uint64{
	MD5:    multihash.MD5,
	SHA1:   multihash.SHA1,
	SHA256: multihash.SHA2_256,
	SHA512: multihash.SHA2_512,
}

// ToCID renders h as a CIDv1 using the "raw" multicodec, so external
// IPFS-style tooling can address the same bytes this package hashes
// without this core inventing its own store-path grammar.
func ToCID(h Hash) (cid.Cid, error) {
	code, ok := multihashCodes[h.typ]
	if !ok {
		return cid.Undef, fmt.Errorf("hash: no multihash code for %s", PrintHashType(h.typ))
	}
	mh, err := multihash.Encode(h.bytes[:h.size], code)
	if err != nil {
		return cid.Undef, err
	}
	return cid.NewCidV1(cid.Raw, mh), nil
}

// FromCID recovers a Hash from a CID produced by ToCID (or any CIDv1/CIDv0
// wrapping a supported multihash). It fails if the CID's multihash uses an
// algorithm this package does not support.
func FromCID(c cid.Cid) (Hash, error) {
	decoded, err := multihash.Decode(c.Hash())
	if err != nil {
		return Hash{}, err
	}
	for t, code := range multihashCodes {
		if code == decoded.Code {
			if decoded.Length != naturalSize(t) {
				return Hash{}, fmt.Errorf("hash: multihash length %d does not match %s digest size", decoded.Length, PrintHashType(t))
			}
			return fromRawBytes(t, decoded.Digest), nil
		}
	}
	return Hash{}, fmt.Errorf("hash: unsupported multihash code %#x", decoded.Code)
}
