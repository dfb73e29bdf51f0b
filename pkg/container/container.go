// Package container implements the encrypted container format exchanged
// between clients and the blindstore API. A container is a single flat byte
// sequence `salt(16) || nonce(12) || ciphertext||tag(16)`: the key is derived
// from a user password with PBKDF2-HMAC-SHA256 and the payload is sealed with
// AES-256-GCM. The server never decodes containers; this package lives under
// pkg/ so client tooling can import it.
package container

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"fmt"

	"golang.org/x/crypto/pbkdf2"
)

const (
	SaltSize  = 16
	NonceSize = 12
	TagSize   = 16

	// HeaderSize is the minimum length of a well-formed container.
	HeaderSize = SaltSize + NonceSize

	// Iterations is the PBKDF2 iteration count. The server cannot rate-limit
	// offline guesses against a stolen container, so the KDF has to be slow.
	Iterations = 100_000

	keySize = 32
)

// AlgoID names the construction; clients send it in upload metadata.
const AlgoID = "PBKDF2-SHA256-100000/AES-256-GCM"

func deriveKey(password string, salt []byte) []byte {
	return pbkdf2.Key([]byte(password), salt, Iterations, keySize, sha256.New)
}

func newAEAD(key []byte) (cipher.AEAD, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	return cipher.NewGCM(block)
}

// Encode seals plaintext under a key derived from password. The salt and
// nonce are freshly random on every call, so encoding the same plaintext
// twice yields unrelated containers.
func Encode(plaintext []byte, password string) ([]byte, error) {
	buf := make([]byte, HeaderSize, HeaderSize+len(plaintext)+TagSize)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("container: rand: %w", err)
	}

	key := deriveKey(password, buf[:SaltSize])
	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("container: cipher init: %w", err)
	}

	return aead.Seal(buf, buf[SaltSize:HeaderSize], plaintext, nil), nil
}

// Decode reverses Encode. It fails with ErrMalformedContainer when the input
// cannot even hold a salt and nonce, and with ErrDecryptionFailed when the
// authentication tag does not verify. A wrong password and a tampered
// container are indistinguishable here; GCM gives a single yes/no answer and
// no attempt is made to tell the cases apart.
func Decode(data []byte, password string) ([]byte, error) {
	if len(data) < HeaderSize {
		return nil, ErrMalformedContainer
	}

	key := deriveKey(password, data[:SaltSize])
	aead, err := newAEAD(key)
	if err != nil {
		return nil, fmt.Errorf("container: cipher init: %w", err)
	}

	plaintext, err := aead.Open(nil, data[SaltSize:HeaderSize], data[HeaderSize:], nil)
	if err != nil {
		return nil, ErrDecryptionFailed
	}

	return plaintext, nil
}
