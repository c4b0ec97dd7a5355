// Package crypto implements the cipher adapters that turn a serialized
// document into the stored file content and back.
//
// Contents
//
//   - Legacy: AES-256-CBC keyed through OpenSSL's EVP_BytesToKey (MD5, one
//     round, no salt), PKCS#7 padding, hex output. This is the default and the
//     format every existing database file uses.
//   - Sealed: scrypt-derived key with XChaCha20-Poly1305, random salt and
//     nonce, hex output. Opt-in; files written with it cannot be read by Legacy.
//   - Best-effort memory wiping for derived key material (Wipe)
//
// # Notes
//
// Legacy is deterministic: the same plaintext under the same key always yields
// the same stored bytes, and nothing authenticates the ciphertext. A wrong key
// is usually caught by the padding check and otherwise by the JSON parse that
// follows decryption.
package crypto
