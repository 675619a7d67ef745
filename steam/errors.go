package steam

import "fmt"

// Kind classifies why a call to the Steam Web API failed.
type Kind int

const (
	// KindRequestFailed covers transport errors, unexpected status codes
	// and success responses whose body is not JSON.
	KindRequestFailed Kind = iota
	// KindUnauthorized is an HTTP 401. Steam uses it both for invalid keys
	// and for private data so the two can't be told apart.
	KindUnauthorized
	// KindNoData means Steam answered with JSON that doesn't carry the
	// payload we asked for.
	KindNoData
)

func (k Kind) String() string {
	switch k {
	case KindRequestFailed:
		return "request failed"
	case KindUnauthorized:
		return "unauthorized"
	case KindNoData:
		return "no data"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Error is returned by every Client method. Err holds the underlying cause
// when there is one, such as a transport or decoding error.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

var (
	ErrRequestFailed = &Error{Kind: KindRequestFailed}
	ErrUnauthorized  = &Error{Kind: KindUnauthorized}
	ErrNoData        = &Error{Kind: KindNoData}
)

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = e.Kind.String()
	}
	if e.Err != nil {
		return fmt.Sprintf("error response from steam: %s: %v", msg, e.Err)
	}
	return fmt.Sprintf("error response from steam: %s", msg)
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same kind, so callers can
// write errors.Is(err, steam.ErrUnauthorized).
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Kind == e.Kind
}

func requestFailed(message string, err error) *Error {
	return &Error{Kind: KindRequestFailed, Message: message, Err: err}
}
