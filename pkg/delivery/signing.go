package delivery

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/relayforge/relayforge/pkg/config"
)

const defaultSignatureHeader = "X-Signature"

// SignatureHeader returns the configured header name, defaulting to
// X-Signature.
func SignatureHeader(s *config.Signing) string {
	if s.Header != "" {
		return s.Header
	}
	return defaultSignatureHeader
}

// Sign computes the signature header value for a request body. Every
// configured secret contributes a versioned HMAC-SHA256 so receivers can
// rotate keys without a flag day:
//
//	v1=<hmac(newest secret)>,v2=<hmac(previous secret)>
func Sign(body []byte, s *config.Signing) string {
	parts := make([]string, 0, len(s.Secrets))
	for i, secret := range s.Secrets {
		mac := hmac.New(sha256.New, []byte(secret))
		mac.Write(body)
		parts = append(parts, fmt.Sprintf("v%d=%s", i+1, hex.EncodeToString(mac.Sum(nil))))
	}
	return strings.Join(parts, ",")
}
