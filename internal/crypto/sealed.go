package crypto

import (
	"bytes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/hex"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/scrypt"

	"securedb/internal/domain"
)

// SealedAlgorithm is the algorithm identifier of Sealed.
const SealedAlgorithm = "scrypt-xchacha20poly1305"

const sealedSaltSize = 16

// Sealed is the authenticated adapter. Stored bytes are
// hex(salt || nonce || ciphertext). Zero scrypt parameters select the
// defaults (N=2^15, r=8, p=1); decrypting requires the same parameters.
type Sealed struct {
	N, R, P int
}

func (s Sealed) params() (N, r, p int) {
	N, r, p = s.N, s.R, s.P
	if N == 0 {
		N = 1 << 15
	}
	if r == 0 {
		r = 8
	}
	if p == 0 {
		p = 1
	}
	return N, r, p
}

// Algorithm returns "scrypt-xchacha20poly1305".
func (Sealed) Algorithm() string { return SealedAlgorithm }

// Encrypt derives a fresh key from key and a random salt and seals plaintext.
func (s Sealed) Encrypt(plaintext []byte, key string) ([]byte, error) {
	salt := make([]byte, sealedSaltSize)
	if _, err := rand.Read(salt); err != nil {
		return nil, errors.Wrap(err, "read salt")
	}
	aead, wipe, err := s.aead(key, salt)
	if err != nil {
		return nil, err
	}
	defer wipe()

	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return nil, errors.Wrap(err, "read nonce")
	}
	raw := make([]byte, 0, len(salt)+len(nonce)+len(plaintext)+aead.Overhead())
	raw = append(raw, salt...)
	raw = append(raw, nonce...)
	raw = aead.Seal(raw, nonce, plaintext, salt)

	out := make([]byte, hex.EncodedLen(len(raw)))
	hex.Encode(out, raw)
	return out, nil
}

// Decrypt opens stored bytes produced by Encrypt.
func (s Sealed) Decrypt(stored []byte, key string) ([]byte, error) {
	stored = bytes.TrimSpace(stored)
	raw := make([]byte, hex.DecodedLen(len(stored)))
	if _, err := hex.Decode(raw, stored); err != nil {
		return nil, errors.Wrapf(domain.ErrDecryption, "hex decode: %v", err)
	}
	if len(raw) < sealedSaltSize+chacha20poly1305.NonceSizeX+chacha20poly1305.Overhead {
		return nil, errors.Wrap(domain.ErrDecryption, "envelope too short")
	}
	salt := raw[:sealedSaltSize]
	nonce := raw[sealedSaltSize : sealedSaltSize+chacha20poly1305.NonceSizeX]
	ct := raw[sealedSaltSize+chacha20poly1305.NonceSizeX:]

	aead, wipe, err := s.aead(key, salt)
	if err != nil {
		return nil, err
	}
	defer wipe()

	pt, err := aead.Open(nil, nonce, ct, salt)
	if err != nil {
		return nil, errors.Wrap(domain.ErrDecryption, "wrong key or corrupted data")
	}
	return pt, nil
}

func (s Sealed) aead(key string, salt []byte) (cipher.AEAD, func(), error) {
	N, r, p := s.params()
	k, err := scrypt.Key([]byte(key), salt, N, r, p, chacha20poly1305.KeySize)
	if err != nil {
		return nil, nil, errors.Wrap(err, "derive key")
	}
	a, err := chacha20poly1305.NewX(k)
	if err != nil {
		Wipe(k)
		return nil, nil, errors.Wrap(err, "init aead")
	}
	return a, func() { Wipe(k) }, nil
}

var _ domain.Cipher = Sealed{}
