package strata

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// KeyLength is the AES-256 key size NewCrypt requires.
const KeyLength = 32

// NewCrypt encrypts payloads with AES-GCM before they reach the inner
// store and decrypts on the way out. References pass through untouched.
// The nonce is prepended to each stored ciphertext.
func NewCrypt(inner Storage, key []byte) (*Mapper, error) {
	if len(key) != KeyLength {
		return nil, fmt.Errorf("%w: key must be %d bytes, got %d", ConfigError, KeyLength, len(key))
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ConfigError, err)
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ConfigError, err)
	}
	m := NewMapper(inner)
	m.MapToStore = func(i interface{}, r Ref) (interface{}, error) {
		plain, err := Blob(i)
		if err != nil {
			return nil, err
		}
		nonce := make([]byte, gcm.NonceSize())
		if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
			return nil, fmt.Errorf("%w: generating nonce: %v", EncodingError, err)
		}
		return gcm.Seal(nonce, nonce, plain, nil), nil
	}
	m.MapRetrieved = func(i interface{}, r Ref) (interface{}, error) {
		buf, err := Blob(i)
		if err != nil {
			return nil, err
		}
		if len(buf) < gcm.NonceSize() {
			return nil, fmt.Errorf("%w: ciphertext too short for %v", EncodingError, r)
		}
		plain, err := gcm.Open(nil, buf[:gcm.NonceSize()], buf[gcm.NonceSize():], nil)
		if err != nil {
			return nil, fmt.Errorf("%w: decrypting %v: %v", EncodingError, r, err)
		}
		return plain, nil
	}
	return m, nil
}
