package domain

import "io/fs"

// Cipher turns a plaintext document into stored bytes and back.
// Implementations must wrap every decoding or authentication failure in
// ErrDecryption.
type Cipher interface {
	// Algorithm returns the fixed algorithm identifier.
	Algorithm() string
	Encrypt(plaintext []byte, key string) ([]byte, error)
	Decrypt(stored []byte, key string) ([]byte, error)
}

// Filesystem is the byte-addressable persistent store the document lives in.
type Filesystem interface {
	ReadFile(path string) ([]byte, error)
	// WriteFile replaces the file at path in full. Implementations should
	// never leave a partially written file behind.
	WriteFile(path string, data []byte, perm fs.FileMode) error
	Exists(path string) bool
}
