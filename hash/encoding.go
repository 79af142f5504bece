package hash

import (
	"encoding/base64"
	"encoding/hex"
	"strings"

	"github.com/sirupsen/logrus"
)

// base16Len, base64Len return the textual length of the base-16 / padded
// base-64 rendering of an n-byte digest.
func base16Len(n int) int { return 2 * n }
func base64Len(n int) int { return ((n + 2) / 3) * 4 }

// ToString renders h per format. If format is SRI, the rendering is always
// prefixed "<type>-<base64>". Otherwise, if includeType is set, the
// rendering is prefixed "<type>:<body>".
func (h Hash) ToString(format HashFormat, includeType bool) string {
	var s strings.Builder
	if format == SRI || includeType {
		s.WriteString(PrintHashType(h.typ))
		if format == SRI {
			s.WriteByte('-')
		} else {
			s.WriteByte(':')
		}
	}
	switch format {
	case Base16:
		s.WriteString(hex.EncodeToString(h.bytes[:h.size]))
	case Base32:
		s.WriteString(encodeBase32(h.bytes[:h.size]))
	case Base64, SRI:
		s.WriteString(base64.StdEncoding.EncodeToString(h.bytes[:h.size]))
	default:
		panic("hash: invalid HashFormat")
	}
	return s.String()
}

// PrintHash16Or32 renders h without a type prefix, using base-16 for MD5
// and base-32 for everything else. This is the backwards-compatible
// rendering used internally by the fingerprint format's predecessor and
// still relied on by some callers.
func PrintHash16Or32(h Hash) string {
	if h.typ == MD5 {
		return h.ToString(Base16, false)
	}
	return h.ToString(Base32, false)
}

// fromBody decodes rest as the digest body for type t, inferring the
// encoding from rest's length (base16, base32, or base64), unless isSRI is
// set, in which case the body is always base64.
func fromBody(rest string, t HashType, isSRI bool) (Hash, error) {
	size := naturalSize(t)

	if !isSRI && len(rest) == base16Len(size) {
		raw, err := hex.DecodeString(rest)
		if err != nil {
			return Hash{}, wrapError(KindBadHashEncoding, "NIX-HASH-ENC-003", "invalid base-16 hash '"+rest+"'", err)
		}
		return fromRawBytes(t, raw), nil
	}

	if !isSRI && len(rest) == base32Len(size) {
		raw, err := decodeBase32(rest, size)
		if err != nil {
			return Hash{}, err
		}
		return fromRawBytes(t, raw), nil
	}

	if isSRI || len(rest) == base64Len(size) || len(rest) == rawBase64Len(size) {
		raw, err := decodeBase64Lenient(rest)
		if err != nil {
			return Hash{}, wrapError(KindBadHashEncoding, "NIX-HASH-ENC-004", "invalid base-64 hash '"+rest+"'", err)
		}
		if len(raw) != size {
			kind := KindBadHashEncoding
			if !isSRI {
				kind = KindBadHashLength
			}
			return Hash{}, newError(kind, "NIX-HASH-LEN-002", "invalid "+sriOrBase64(isSRI)+" hash '"+rest+"'")
		}
		return fromRawBytes(t, raw), nil
	}

	return Hash{}, newError(KindBadHashLength, "NIX-HASH-LEN-003", "hash '"+rest+"' has wrong length for hash type '"+PrintHashType(t)+"'")
}

func sriOrBase64(isSRI bool) string {
	if isSRI {
		return "SRI"
	}
	return "base-64"
}

func rawBase64Len(n int) int { return (n*8 + 5) / 6 }

func decodeBase64Lenient(s string) ([]byte, error) {
	if b, err := base64.StdEncoding.DecodeString(s); err == nil {
		return b, nil
	}
	return base64.RawStdEncoding.DecodeString(s)
}

// splitPrefix splits rest on the first occurrence of sep, returning the
// part before sep and the remainder, or ("", rest, false) if sep is absent.
func splitPrefix(rest string, sep byte) (before, after string, found bool) {
	idx := strings.IndexByte(rest, sep)
	if idx < 0 {
		return "", rest, false
	}
	return rest[:idx], rest[idx+1:], true
}

// getTypeAndSRI inspects rest for a "<type>:" or "<type>-" prefix, returning
// the parsed type (if any) and whether the "-" (SRI) form was used. rest
// beyond the separator, if any, is returned as the remaining body. A colon
// takes precedence over a dash: once either separator is found at all, the
// text before it is committed to as the type and parsed with the throwing
// form, so an unrecognized type prefix is reported as such rather than
// silently falling through to try the other separator.
func getTypeAndSRI(rest string) (t HashType, hasType bool, isSRI bool, body string, err error) {
	if before, after, ok := splitPrefix(rest, ':'); ok {
		pt, err := ParseHashType(before)
		if err != nil {
			return 0, false, false, "", err
		}
		return pt, true, false, after, nil
	}
	if before, after, ok := splitPrefix(rest, '-'); ok {
		pt, err := ParseHashType(before)
		if err != nil {
			return 0, false, false, "", err
		}
		return pt, true, true, after, nil
	}
	return 0, false, false, rest, nil
}

// ParseSRI parses s as "<type>-<base64>"; the type tag is mandatory and the
// body must be base-64 of the natural length for that type.
func ParseSRI(s string) (Hash, error) {
	before, after, ok := splitPrefix(s, '-')
	if !ok {
		return Hash{}, newError(KindBadHashType, "NIX-HASH-TYPE-002", "hash '"+s+"' is not SRI")
	}
	t, err := ParseHashType(before)
	if err != nil {
		return Hash{}, err
	}
	return fromBody(after, t, true)
}

// ParseAnyPrefixed requires an explicit "<type>:" or SRI "<type>-" prefix
// and chooses the body's encoding from its length and the SRI flag.
func ParseAnyPrefixed(s string) (Hash, error) {
	t, hasType, isSRI, body, err := getTypeAndSRI(s)
	if err != nil {
		return Hash{}, err
	}
	if !hasType {
		return Hash{}, newError(KindBadHashType, "NIX-HASH-TYPE-003", "hash '"+s+"' does not include a type")
	}
	return fromBody(body, t, isSRI)
}

// ParseAny accepts an optional prefix. If both s and expectedType supply a
// type, they must agree.
func ParseAny(s string, expectedType *HashType) (Hash, error) {
	parsedType, hasType, isSRI, body, err := getTypeAndSRI(s)
	if err != nil {
		return Hash{}, err
	}
	switch {
	case !hasType && expectedType == nil:
		return Hash{}, newError(KindBadHashType, "NIX-HASH-TYPE-004", "hash '"+s+"' does not include a type, nor is the type otherwise known from context")
	case hasType && expectedType != nil && parsedType != *expectedType:
		return Hash{}, newError(KindBadHashType, "NIX-HASH-TYPE-005", "hash '"+s+"' should have type '"+PrintHashType(*expectedType)+"'")
	}
	t := parsedType
	if !hasType {
		t = *expectedType
	}
	return fromBody(body, t, isSRI)
}

// ParseNonSRIUnprefixed parses s as a bare digest body (no prefix allowed,
// SRI disallowed) of type t.
func ParseNonSRIUnprefixed(s string, t HashType) (Hash, error) {
	return fromBody(s, t, false)
}

// NewHashAllowEmpty parses s as in ParseAny, except that an empty s is
// accepted when expectedType is non-nil: it yields the all-zero Hash of
// that type and logs a warning through logger (which defaults to
// logrus.StandardLogger() when nil).
func NewHashAllowEmpty(s string, expectedType *HashType, logger *logrus.Logger) (Hash, error) {
	if s == "" {
		if expectedType == nil {
			return Hash{}, newError(KindBadHashType, "NIX-HASH-TYPE-006", "empty hash requires explicit hash type")
		}
		h := HashOfType(*expectedType)
		if logger == nil {
			logger = logrus.StandardLogger()
		}
		logger.Warnf("found empty hash, assuming '%s'", h.ToString(SRI, true))
		return h, nil
	}
	return ParseAny(s, expectedType)
}
