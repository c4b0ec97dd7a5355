package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"path/filepath"
	"sync"

	pkgerrors "github.com/pkg/errors"

	"securedb/internal/domain"
	"securedb/internal/events"
	"securedb/internal/logger"
)

// Store is a handle on one encrypted document, identified by its path and
// encryption key. The key is held in memory only and never persisted.
type Store struct {
	path   string
	key    string
	cipher domain.Cipher
	fsys   domain.Filesystem
	perm   fs.FileMode
	log    logger.Logger
	bus    *events.Bus

	mu sync.Mutex
}

// New returns a Store for filename inside folder. All three arguments are
// required. If no file exists yet, an empty document is written immediately;
// the folder itself is never created.
//
// When that initial write fails, New still returns a usable Store together
// with the error, and publishes events.Error to subscribers added with
// WithSubscriber.
func New(folder, filename, key string, opts ...Option) (*Store, error) {
	switch {
	case folder == "":
		return nil, pkgerrors.Wrap(domain.ErrInvalidArgument, "folder path is required")
	case filename == "":
		return nil, pkgerrors.Wrap(domain.ErrInvalidArgument, "filename is required")
	case key == "":
		return nil, pkgerrors.Wrap(domain.ErrInvalidArgument, "encryption key is required")
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.bus == nil {
		o.bus = &events.Bus{}
	}
	for _, sub := range o.subscribers {
		o.bus.Subscribe(sub.kind, sub.h)
	}

	s := &Store{
		path:   filepath.Join(folder, filename),
		key:    key,
		cipher: o.cipher,
		fsys:   o.fsys,
		perm:   o.perm,
		log:    o.log,
		bus:    o.bus,
	}

	if !s.fsys.Exists(s.path) {
		s.log.Infof("securedb: creating empty database at %s", s.path)
		if err := s.Save(domain.NewDocument()); err != nil {
			return s, err
		}
	}
	return s, nil
}

// Path returns the location of the database file.
func (s *Store) Path() string { return s.path }

// Algorithm returns the identifier of the cipher in use.
func (s *Store) Algorithm() string { return s.cipher.Algorithm() }

// Bus returns the event bus the store publishes to.
func (s *Store) Bus() *events.Bus { return s.bus }

// Save serializes doc, encrypts it and replaces the file with it. A nil doc
// is saved as an empty document.
func (s *Store) Save(doc domain.Document) error {
	s.mu.Lock()
	err := s.save(doc)
	s.mu.Unlock()

	s.publishSave(err)
	return err
}

// Load reads, decrypts and parses the file. On failure it returns an empty
// document and the error.
func (s *Store) Load() (domain.Document, error) {
	s.mu.Lock()
	doc, err := s.load()
	s.mu.Unlock()

	s.publishLoad(err)
	return doc, err
}

// Add sets key to value, overwriting any existing value.
//
// The write happens even if the load failed, replacing an unreadable file
// with a document that holds only key. events.RecordAdded is published after
// the save step whether or not it succeeded.
func (s *Store) Add(key string, value any) error {
	s.mu.Lock()
	doc, loadErr := s.load()
	doc[key] = value
	saveErr := s.save(doc)
	s.mu.Unlock()

	s.publishLoad(loadErr)
	s.publishSave(saveErr)
	s.bus.Publish(events.Event{Kind: events.RecordAdded, Key: key, Value: value})
	return errors.Join(loadErr, saveErr)
}

// Delete removes key. An absent key is logged and reported as
// domain.ErrKeyNotFound without saving or publishing anything for it.
func (s *Store) Delete(key string) error {
	s.mu.Lock()
	doc, loadErr := s.load()
	if !doc.Has(key) {
		s.mu.Unlock()
		s.publishLoad(loadErr)
		s.log.Warnf("securedb: record with key %q does not exist", key)
		return errors.Join(loadErr, pkgerrors.Wrapf(domain.ErrKeyNotFound, "delete %q", key))
	}
	delete(doc, key)
	saveErr := s.save(doc)
	s.mu.Unlock()

	s.publishSave(saveErr)
	s.bus.Publish(events.Event{Kind: events.RecordDeleted, Key: key})
	return saveErr
}

// Clear replaces the document with an empty one. The file is kept.
func (s *Store) Clear() error {
	err := s.Save(domain.NewDocument())
	s.bus.Publish(events.Event{Kind: events.DatabaseCleared})
	return err
}

// Keys returns the keys of the document in ascending order.
func (s *Store) Keys() ([]string, error) {
	doc, err := s.Load()
	return doc.Keys(), err
}

// Get returns the value stored under key and whether it was present.
func (s *Store) Get(key string) (any, bool, error) {
	doc, err := s.Load()
	v, ok := doc[key]
	return v, ok, err
}

// Subscribe registers h for events of kind.
func (s *Store) Subscribe(kind events.Kind, h events.Handler) { s.bus.Subscribe(kind, h) }

// OnSaved registers fn to receive the location of every successful save.
func (s *Store) OnSaved(fn func(location string)) {
	s.bus.Subscribe(events.Saved, func(e events.Event) { fn(e.Location) })
}

// OnError registers fn to receive every load or save failure.
func (s *Store) OnError(fn func(err error)) {
	s.bus.Subscribe(events.Error, func(e events.Event) { fn(e.Err) })
}

// OnRecordAdded registers fn to receive every added record.
func (s *Store) OnRecordAdded(fn func(key string, value any)) {
	s.bus.Subscribe(events.RecordAdded, func(e events.Event) { fn(e.Key, e.Value) })
}

// OnRecordDeleted registers fn to receive every deleted key.
func (s *Store) OnRecordDeleted(fn func(key string)) {
	s.bus.Subscribe(events.RecordDeleted, func(e events.Event) { fn(e.Key) })
}

// OnDatabaseCleared registers fn to be called after every Clear.
func (s *Store) OnDatabaseCleared(fn func()) {
	s.bus.Subscribe(events.DatabaseCleared, func(events.Event) { fn() })
}

// load must be called with mu held. It never returns a nil Document.
func (s *Store) load() (domain.Document, error) {
	stored, err := s.fsys.ReadFile(s.path)
	if err != nil {
		return domain.NewDocument(), s.fail("load", domain.ErrIO, err)
	}
	plain, err := s.cipher.Decrypt(stored, s.key)
	if err != nil {
		return domain.NewDocument(), s.fail("load", domain.ErrDecryption, err)
	}

	var doc domain.Document
	if err := json.Unmarshal(plain, &doc); err != nil {
		return domain.NewDocument(), s.fail("load", domain.ErrDecryption, pkgerrors.Wrap(err, "parse document"))
	}
	if doc == nil {
		doc = domain.NewDocument()
	}
	s.log.Debugf("securedb: loaded %d keys from %s", len(doc), s.path)
	return doc, nil
}

// save must be called with mu held.
func (s *Store) save(doc domain.Document) error {
	if doc == nil {
		doc = domain.NewDocument()
	}
	plain, err := marshal(doc)
	if err != nil {
		return s.fail("save", domain.ErrSerialization, err)
	}
	stored, err := s.cipher.Encrypt(plain, s.key)
	if err != nil {
		return s.fail("save", domain.ErrSerialization, pkgerrors.Wrap(err, "encrypt"))
	}
	if err := s.fsys.WriteFile(s.path, stored, s.perm); err != nil {
		return s.fail("save", domain.ErrIO, err)
	}
	s.log.Debugf("securedb: saved %d keys to %s", len(doc), s.path)
	return nil
}

func (s *Store) fail(op string, kind, cause error) error {
	err := &domain.Error{Op: op, Path: s.path, Kind: kind, Err: cause}
	s.log.Errorf("securedb: %v", err)
	return err
}

func (s *Store) publishLoad(err error) {
	if err != nil {
		s.bus.Publish(events.Event{Kind: events.Error, Location: s.path, Err: err})
	}
}

func (s *Store) publishSave(err error) {
	if err != nil {
		s.bus.Publish(events.Event{Kind: events.Error, Location: s.path, Err: err})
		return
	}
	s.bus.Publish(events.Event{Kind: events.Saved, Location: s.path})
}

// marshal is json.Marshal without HTML escaping.
func marshal(doc domain.Document) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
