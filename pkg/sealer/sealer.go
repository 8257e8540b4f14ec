// Package sealer шифрует короткие секреты (ключи API) для хранения в базе.
//
// Формат запечатанного значения: base64(nonce || ciphertext), алгоритм XChaCha20-Poly1305. Ключ шифрования
// выводится из мастер-секрета через HKDF-SHA256.
package sealer

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"io"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"
	"golang.org/x/crypto/hkdf"
)

const hkdfInfo = "uc-store credential sealing v1"

var (
	ErrEmptySecret    = errors.New("encryption secret is empty")
	ErrMalformedValue = errors.New("malformed sealed value")
)

type Sealer struct {
	key []byte
}

// New выводит ключ шифрования из secret.
func New(secret string) (*Sealer, error) {
	if secret == "" {
		return nil, ErrEmptySecret
	}
	key := make([]byte, chacha20poly1305.KeySize)
	if _, err := io.ReadFull(hkdf.New(sha256.New, []byte(secret), nil, []byte(hkdfInfo)), key); err != nil {
		return nil, errors.Wrap(err, "deriving sealing key")
	}
	return &Sealer{key: key}, nil
}

// SealCredential шифрует plain. Каждый вызов использует новый случайный nonce.
func (s *Sealer) SealCredential(plain string) (string, error) {
	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", errors.Wrap(err, "creating cipher")
	}

	nonce := make([]byte, aead.NonceSize(), aead.NonceSize()+len(plain)+aead.Overhead())
	if _, randErr := rand.Read(nonce); randErr != nil {
		return "", errors.Wrap(randErr, "generating nonce")
	}

	sealed := aead.Seal(nonce, nonce, []byte(plain), nil)
	return base64.StdEncoding.EncodeToString(sealed), nil
}

// OpenCredential расшифровывает значение, полученное от SealCredential. Поврежденные данные или другой ключ
// дают ошибку ErrMalformedValue.
func (s *Sealer) OpenCredential(sealed string) (string, error) {
	raw, decodeErr := base64.StdEncoding.DecodeString(sealed)
	if decodeErr != nil {
		return "", errors.Wrap(ErrMalformedValue, decodeErr.Error())
	}

	aead, err := chacha20poly1305.NewX(s.key)
	if err != nil {
		return "", errors.Wrap(err, "creating cipher")
	}
	if len(raw) < aead.NonceSize()+aead.Overhead() {
		return "", ErrMalformedValue
	}

	nonce, ciphertext := raw[:aead.NonceSize()], raw[aead.NonceSize():]
	plain, openErr := aead.Open(nil, nonce, ciphertext, nil)
	if openErr != nil {
		return "", errors.Wrap(ErrMalformedValue, openErr.Error())
	}
	return string(plain), nil
}
