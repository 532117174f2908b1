// Package token signs and verifies the HMAC tokens embedded in shared cart
// links.
//
// The signed message is
//
//	timestamp + ":" + cartID + ":" + label + ":" + uuid + ":" + state
//
// and the digest is HMAC-SHA256 encoded as unpadded URL-safe base64. Both the
// field order and the encoding are part of the link format: changing either
// invalidates every link already handed out.
package token

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"sharecart/pkg/domain"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const separator = ":"

// SecretKeyProvider supplies the process wide signing secret.
type SecretKeyProvider interface {
	SecretKey() []byte
}

// StaticSecret is a SecretKeyProvider returning a fixed key, usually loaded
// from configuration.
type StaticSecret []byte

func (s StaticSecret) SecretKey() []byte {
	return s
}

// Fields are the cart attributes a token is bound to.
type Fields struct {
	CartID    domain.CartID
	Label     string
	UUID      uuid.UUID
	State     domain.CartState
	Timestamp int64
}

// FieldsOf binds the given cart to timestamp.
func FieldsOf(cart *domain.Cart, timestamp int64) Fields {
	return Fields{
		CartID:    cart.ID,
		Label:     cart.Label,
		UUID:      cart.UUID,
		State:     cart.State,
		Timestamp: timestamp,
	}
}

// Message returns the canonical string that gets signed.
func (f Fields) Message() string {
	return strings.Join([]string{
		strconv.FormatInt(f.Timestamp, 10),
		strconv.FormatInt(int64(f.CartID), 10),
		f.Label,
		f.UUID.String(),
		string(f.State),
	}, separator)
}

// Service computes and checks sharing tokens. It is safe for concurrent use.
type Service struct {
	secret SecretKeyProvider
}

func New(secret SecretKeyProvider) *Service {
	return &Service{secret: secret}
}

// Sign returns the token for the given fields. Equal fields always produce
// the same token.
func (s *Service) Sign(f Fields) string {
	return base64.RawURLEncoding.EncodeToString(s.mac(f))
}

// Verify reports whether candidate is the token of f. The encoded forms are
// compared in constant time, so any altered character fails, including the
// low bits of the last one that decoding would ignore.
func (s *Service) Verify(f Fields, candidate string) bool {
	return hmac.Equal([]byte(s.Sign(f)), []byte(candidate))
}

func (s *Service) mac(f Fields) []byte {
	h := hmac.New(sha256.New, s.secret.SecretKey())
	_, _ = h.Write([]byte(f.Message()))

	return h.Sum(nil)
}
