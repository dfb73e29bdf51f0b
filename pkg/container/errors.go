package container

import "errors"

var (
	// ErrMalformedContainer means the input is too short to contain the
	// inline salt and nonce.
	ErrMalformedContainer = errors.New("container: malformed container")

	// ErrDecryptionFailed means the authentication tag did not verify.
	// A wrong password and a tampered container produce the same error.
	ErrDecryptionFailed = errors.New("container: decryption failed")
)
