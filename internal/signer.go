package internal

import (
	"crypto/hmac"
	"crypto/sha256"
	"fmt"
	"gitee.com/golang-module/dongle"
	"sort"
	"strings"
)

const signSeparator = "|"

// Signer computes Paysera parameter signatures: values joined with "|" in
// ascending key order, HMAC-SHA256 keyed by the project sign password, hex encoded.
type Signer struct {
	secret string // project sign password
}

func NewSigner(secret string) *Signer {
	return &Signer{
		secret: secret,
	}
}

// Sign returns the lowercase hex signature of fields. Keys are not part of the
// signed message, only their values in key order.
func (s *Signer) Sign(fields map[string]interface{}) string {
	return s.mac256(canonicalize(fields))
}

// Verify reports whether signature matches fields. The comparison takes
// the same time wherever the first differing character is.
// An empty signature never matches.
func (s *Signer) Verify(fields map[string]interface{}, signature string) bool {
	if signature == "" {
		return false
	}
	expected := s.Sign(fields)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// mac256 returns the hex HMAC-SHA256 of message, an empty message included.
func (s *Signer) mac256(message string) string {
	mac := hmac.New(sha256.New, []byte(s.secret))
	mac.Write([]byte(message))
	return dongle.Encode.FromBytes(mac.Sum(nil)).ByHex().ToString()
}

func canonicalize(fields map[string]interface{}) string {
	keys := make([]string, 0, len(fields))
	for key := range fields {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	values := make([]string, len(keys))
	for i, key := range keys {
		values[i] = fmt.Sprint(fields[key])
	}
	return strings.Join(values, signSeparator)
}
