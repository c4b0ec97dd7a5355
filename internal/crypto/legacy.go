package crypto

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/md5" // #nosec G501 -- required by the EVP_BytesToKey file format
	"encoding/hex"

	"github.com/pkg/errors"

	"securedb/internal/domain"
)

// LegacyAlgorithm is the algorithm identifier of Legacy.
const LegacyAlgorithm = "aes-256-cbc"

const (
	legacyKeySize = 32
	legacyIVSize  = aes.BlockSize
)

// Legacy is the AES-256-CBC adapter. The zero value is ready to use.
type Legacy struct{}

// Algorithm returns "aes-256-cbc".
func (Legacy) Algorithm() string { return LegacyAlgorithm }

// Encrypt pads plaintext, encrypts it under key and returns lower-case hex.
func (Legacy) Encrypt(plaintext []byte, key string) ([]byte, error) {
	k, iv := bytesToKey([]byte(key), legacyKeySize, legacyIVSize)
	defer Wipe(k, iv)

	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, errors.Wrap(err, "init aes")
	}
	buf := pkcs7Pad(plaintext, aes.BlockSize)
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(buf, buf)

	out := make([]byte, hex.EncodedLen(len(buf)))
	hex.Encode(out, buf)
	return out, nil
}

// Decrypt reverses Encrypt. Surrounding whitespace in stored is ignored.
func (Legacy) Decrypt(stored []byte, key string) ([]byte, error) {
	stored = bytes.TrimSpace(stored)
	ct := make([]byte, hex.DecodedLen(len(stored)))
	if _, err := hex.Decode(ct, stored); err != nil {
		return nil, errors.Wrapf(domain.ErrDecryption, "hex decode: %v", err)
	}
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, errors.Wrapf(domain.ErrDecryption, "ciphertext length %d is not a positive multiple of the block size", len(ct))
	}

	k, iv := bytesToKey([]byte(key), legacyKeySize, legacyIVSize)
	defer Wipe(k, iv)

	block, err := aes.NewCipher(k)
	if err != nil {
		return nil, errors.Wrap(err, "init aes")
	}
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(ct, ct)

	pt, err := pkcs7Unpad(ct, aes.BlockSize)
	if err != nil {
		Wipe(ct)
		return nil, err
	}
	return pt, nil
}

// bytesToKey is OpenSSL's EVP_BytesToKey with MD5, one iteration and no salt.
func bytesToKey(password []byte, keyLen, ivLen int) (key, iv []byte) {
	var (
		out  []byte
		prev []byte
	)
	for len(out) < keyLen+ivLen {
		h := md5.New() // #nosec G401
		h.Write(prev)
		h.Write(password)
		prev = h.Sum(nil)
		out = append(out, prev...)
	}
	return out[:keyLen], out[keyLen : keyLen+ivLen]
}

func pkcs7Pad(b []byte, size int) []byte {
	n := size - len(b)%size
	out := make([]byte, len(b)+n)
	copy(out, b)
	for i := len(b); i < len(out); i++ {
		out[i] = byte(n)
	}
	return out
}

func pkcs7Unpad(b []byte, size int) ([]byte, error) {
	n := int(b[len(b)-1])
	if n == 0 || n > size || n > len(b) {
		return nil, errors.Wrap(domain.ErrDecryption, "bad padding")
	}
	for _, c := range b[len(b)-n:] {
		if int(c) != n {
			return nil, errors.Wrap(domain.ErrDecryption, "bad padding")
		}
	}
	return b[:len(b)-n], nil
}

var _ domain.Cipher = Legacy{}
