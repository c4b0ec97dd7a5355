// Package securedb is an encrypted, file-persisted key-value store: one
// JSON document of string keys to arbitrary values, always written to disk
// as a single encrypted blob.
//
//	db, err := securedb.New("/var/lib/app", "settings.enc", key)
//	if err != nil {
//		return err
//	}
//	db.OnError(func(err error) { log.Print(err) })
//	_ = db.Add("theme", "dark")
//
// Every mutation rewrites the whole document, so this is meant for small
// documents. Concurrent handles on the same file are not coordinated.
package securedb

import (
	"securedb/internal/crypto"
	"securedb/internal/domain"
	"securedb/internal/events"
	"securedb/internal/store"
)

type (
	// Store is a handle on one encrypted document.
	Store = store.Store
	// Option configures a Store.
	Option = store.Option
	// Document is the decrypted key-to-value mapping.
	Document = domain.Document
	// Cipher turns a serialized document into stored bytes and back.
	Cipher = domain.Cipher
	// Filesystem is where the document file lives.
	Filesystem = domain.Filesystem
	// Error describes a failed operation.
	Error = domain.Error
	// Event is one notification published by a Store.
	Event = events.Event
	// EventKind identifies the kind of an Event.
	EventKind = events.Kind
	// Handler receives events.
	Handler = events.Handler
	// Bus dispatches events to subscribers.
	Bus = events.Bus
	// LegacyCipher is the default AES-256-CBC adapter.
	LegacyCipher = crypto.Legacy
	// SealedCipher is the opt-in authenticated adapter.
	SealedCipher = crypto.Sealed
	// OSFS is the default filesystem.
	OSFS = store.OSFS
	// AferoFS adapts an afero filesystem.
	AferoFS = store.AferoFS
)

// Event kinds.
const (
	Saved           = events.Saved
	ErrorEvent      = events.Error
	RecordAdded     = events.RecordAdded
	RecordDeleted   = events.RecordDeleted
	DatabaseCleared = events.DatabaseCleared
)

// Error kinds, for use with errors.Is.
var (
	ErrIO              = domain.ErrIO
	ErrDecryption      = domain.ErrDecryption
	ErrKeyNotFound     = domain.ErrKeyNotFound
	ErrInvalidArgument = domain.ErrInvalidArgument
	ErrSerialization   = domain.ErrSerialization
)

// Options.
var (
	WithCipher     = store.WithCipher
	WithFilesystem = store.WithFilesystem
	WithLogger     = store.WithLogger
	WithFileMode   = store.WithFileMode
	WithBus        = store.WithBus
	WithSubscriber = store.WithSubscriber
	NewAferoFS     = store.NewAferoFS
)

// New opens the document stored as filename inside folder, creating an empty
// one if the file does not exist. See store.New.
func New(folder, filename, key string, opts ...Option) (*Store, error) {
	return store.New(folder, filename, key, opts...)
}
