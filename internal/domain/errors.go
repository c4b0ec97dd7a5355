package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrIO is the kind for a file that is missing, unreadable or unwritable.
	ErrIO = errors.New("i/o failure")

	// ErrDecryption is the kind for ciphertext that is malformed, was written
	// under another key, or decrypts to something that is not a document.
	ErrDecryption = errors.New("decryption failure")

	// ErrKeyNotFound is returned by Delete for a key that is not present.
	// It is never published as an event.
	ErrKeyNotFound = errors.New("key not found")

	// ErrInvalidArgument is returned when a required constructor argument is empty.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrSerialization is the kind for a document that cannot be encoded as JSON.
	ErrSerialization = errors.New("serialization failure")
)

// Error describes a failed store operation. It unwraps to both its Kind and
// the underlying cause, so errors.Is matches either.
type Error struct {
	Op   string // "load", "save", "bootstrap", "delete", ...
	Path string
	Kind error
	Err  error
}

func (e *Error) Error() string {
	msg := e.Op
	if e.Path != "" {
		msg += " " + e.Path
	}
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", msg, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", msg, e.Kind, e.Err)
}

// Unwrap returns the kind and cause.
func (e *Error) Unwrap() []error {
	errs := []error{e.Kind}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// IsIO reports whether err is an I/O failure.
func IsIO(err error) bool { return errors.Is(err, ErrIO) }

// IsDecryption reports whether err is a decryption or parse failure.
func IsDecryption(err error) bool { return errors.Is(err, ErrDecryption) }
