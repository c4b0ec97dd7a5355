package store

import (
	"io/fs"

	"securedb/internal/crypto"
	"securedb/internal/domain"
	"securedb/internal/events"
	"securedb/internal/logger"
)

// DefaultFileMode is the permission new database files are written with.
const DefaultFileMode fs.FileMode = 0o600

type options struct {
	cipher      domain.Cipher
	fsys        domain.Filesystem
	log         logger.Logger
	perm        fs.FileMode
	bus         *events.Bus
	subscribers []subscriber
}

type subscriber struct {
	kind events.Kind
	h    events.Handler
}

func defaultOptions() options {
	return options{
		cipher: crypto.Legacy{},
		fsys:   OSFS{},
		log:    logger.NewLogger(logger.DefaultLevel),
		perm:   DefaultFileMode,
	}
}

// Option configures a Store.
type Option func(*options)

// WithCipher selects the cipher adapter. The default is crypto.Legacy.
func WithCipher(c domain.Cipher) Option {
	return func(o *options) { o.cipher = c }
}

// WithFilesystem replaces the operating system filesystem.
func WithFilesystem(fsys domain.Filesystem) Option {
	return func(o *options) { o.fsys = fsys }
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(o *options) { o.log = l }
}

// WithFileMode sets the permission bits of written files.
func WithFileMode(perm fs.FileMode) Option {
	return func(o *options) { o.perm = perm.Perm() }
}

// WithBus shares an existing event bus, e.g. between several stores.
func WithBus(b *events.Bus) Option {
	return func(o *options) { o.bus = b }
}

// WithSubscriber registers h before the store bootstraps its file, so
// failures of the initial write are observable.
func WithSubscriber(kind events.Kind, h events.Handler) Option {
	return func(o *options) { o.subscribers = append(o.subscribers, subscriber{kind: kind, h: h}) }
}
