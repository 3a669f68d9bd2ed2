package domain

import "errors"

// Kind is the closed set of failure categories surfaced to the HTTP boundary.
type Kind uint8

const (
	KindInternal Kind = iota
	KindBadRequest
	KindNotFound
	KindPreconditionFailed
	KindPaymentRequired
)

// Kinds lists every Kind; keep in sync with the const block above.
var Kinds = []Kind{KindInternal, KindBadRequest, KindNotFound, KindPreconditionFailed, KindPaymentRequired}

func (k Kind) String() string {
	switch k {
	case KindBadRequest:
		return "bad_request"
	case KindNotFound:
		return "not_found"
	case KindPreconditionFailed:
		return "precondition_failed"
	case KindPaymentRequired:
		return "payment_required"
	default:
		return "internal"
	}
}

type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil && e.Msg != "":
		return e.Msg + ": " + e.Err.Error()
	case e.Err != nil:
		return e.Err.Error()
	case e.Msg != "":
		return e.Msg
	}
	return e.Kind.String()
}

func (e *Error) Unwrap() error { return e.Err }

// Is matches any *Error of the same Kind, so errors.Is(err, ErrNotFound) holds
// for every not-found error regardless of message.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

var (
	ErrBadRequest         = &Error{Kind: KindBadRequest, Msg: "bad request"}
	ErrNotFound           = &Error{Kind: KindNotFound, Msg: "not found"}
	ErrPreconditionFailed = &Error{Kind: KindPreconditionFailed, Msg: "precondition failed"}
	ErrPaymentRequired    = &Error{Kind: KindPaymentRequired, Msg: "payment required"}
)

func E(k Kind, msg string) error { return &Error{Kind: k, Msg: msg} }

// KindOf classifies err. Anything that is not a *Error is KindInternal.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
