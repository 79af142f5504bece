package sig

import "errors"

// Kind is a stable category for programmatic error handling.
type Kind string

const (
	KindBadToken   Kind = "BadToken"
	KindUnknownAlg Kind = "UnknownSignatureAlg"
	KindBadKeyLen  Kind = "BadKeyLength"
	KindBadSeedLen Kind = "BadSeedLength"
	KindNoSigner   Kind = "NoSigner"
)

// Error is the structured error type returned by this package.
//
// RuleID is a stable identifier (e.g. NIX-SIG-TOKEN-001) that names the
// violated invariant, independent of Kind's broader category. Message is
// for humans; do not match on it.
type Error struct {
	Kind    Kind
	RuleID  string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e == nil {
		return "<nil>"
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Cause
}

func newError(kind Kind, ruleID, msg string) error {
	return &Error{Kind: kind, RuleID: ruleID, Message: msg}
}

func wrapError(kind Kind, ruleID, msg string, cause error) error {
	if cause == nil {
		return newError(kind, ruleID, msg)
	}
	return &Error{Kind: kind, RuleID: ruleID, Message: msg, Cause: cause}
}

// IsKind reports whether err is (or wraps) an *Error with the given Kind.
func IsKind(err error, kind Kind) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.Kind == kind
}

// RuleID returns the stable RuleID for a structured error, or "" if unknown.
func RuleID(err error) string {
	var e *Error
	if !errors.As(err, &e) {
		return ""
	}
	return e.RuleID
}
