package sign

import (
	"crypto/hmac"
	"crypto/md5"
	"encoding/hex"
	"strings"
)

// Signer computes and verifies the payment provider's HMAC-MD5 signatures.
// A signature is the hex HMAC of the ";"-joined field values in the order
// the provider declares for each message kind.
type Signer struct {
	secret []byte
}

// New creates a Signer with the shared merchant secret.
func New(secret string) *Signer {
	return &Signer{secret: []byte(secret)}
}

// Sign returns the hex HMAC-MD5 of the ";"-joined fields.
func (s *Signer) Sign(fields ...string) string {
	mac := hmac.New(md5.New, s.secret)
	mac.Write([]byte(strings.Join(fields, ";")))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether signature matches the fields. Comparison is
// constant-time.
func (s *Signer) Verify(signature string, fields ...string) bool {
	expected := s.Sign(fields...)
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
