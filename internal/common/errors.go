// Package common defines the domain-error taxonomy shared across the
// service and transport layers. Every validation or authorization failure
// is an *Error carrying a kind, a user-facing message and the HTTP status
// the boundary should answer with. Callers match with errors.As or the
// Is helper.
package common

import "errors"

// Kind identifies a class of domain failure.
type Kind int

const (
	KindMissingCredentials Kind = iota
	KindInvalidUsername
	KindInvalidPassword
	KindUserAlreadyExists
	KindUserDoesNotExist
	KindIncorrectPassword
	KindMissingNoteParams
	KindInvalidTitle
	KindInvalidText
	KindInvalidNoteID
	KindInvalidUserID
	KindAccessDenied
	KindNoteDoesNotExist
	KindNoteOutdated
	KindInvalidDateGap
	KindInvalidPageParams
	KindNoData
)

// Error is the single tagged error type for domain failures. The message
// and status propagate to the HTTP boundary verbatim.
type Error struct {
	Kind    Kind
	Message string
	Status  int
}

func (e *Error) Error() string {
	return e.Message
}

var (
	ErrMissingCredentials = &Error{KindMissingCredentials, "Username and password are required.", 401}
	ErrInvalidUsername    = &Error{KindInvalidUsername, "Username is invalid.", 400}
	ErrInvalidPassword    = &Error{KindInvalidPassword, "Password is invalid.", 400}
	ErrUserAlreadyExists  = &Error{KindUserAlreadyExists, "User already exists.", 409}
	ErrUserDoesNotExist   = &Error{KindUserDoesNotExist, "User doesn't exist.", 404}
	ErrIncorrectPassword  = &Error{KindIncorrectPassword, "Password is incorrect.", 401}
	ErrMissingNoteParams  = &Error{KindMissingNoteParams, "Text and title are required.", 401}
	ErrInvalidTitle       = &Error{KindInvalidTitle, "Title is too long.", 400}
	ErrInvalidText        = &Error{KindInvalidText, "Text is too long.", 400}
	ErrInvalidNoteID      = &Error{KindInvalidNoteID, "Note ID is invalid.", 400}
	ErrInvalidUserID      = &Error{KindInvalidUserID, "User ID is invalid.", 400}
	ErrAccessDenied       = &Error{KindAccessDenied, "Access denied.", 403}
	ErrNoteDoesNotExist   = &Error{KindNoteDoesNotExist, "Note doesn't exist.", 404}
	ErrNoteOutdated       = &Error{KindNoteOutdated, "This note is outdated.", 400}
	ErrInvalidDateGap     = &Error{KindInvalidDateGap, "Start date later than end date.", 400}
	ErrInvalidPageParams  = &Error{KindInvalidPageParams, "Invalid page params.", 400}
	ErrNoData             = &Error{KindNoData, "There is no any data to get.", 400}
)

var (
	// Repository-level errors.
	ErrorNotFound      = errors.New("not found")
	ErrorAlreadyExists = errors.New("already exists")

	// Service-level errors (generic/internal flow control).
	ErrorInternal = errors.New("internal error")

	// Auth errors (invalid, expired or malformed token).
	ErrInvalidToken = errors.New("invalid token")
)

// AsDomain unwraps err into the taxonomy, or returns nil if err is not a
// domain failure.
func AsDomain(err error) *Error {
	var e *Error
	if errors.As(err, &e) {
		return e
	}
	return nil
}

// Is reports whether err is a domain failure of the given kind.
func Is(err error, kind Kind) bool {
	if e := AsDomain(err); e != nil {
		return e.Kind == kind
	}
	return false
}
