package delivery

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/pkg/config"
)

func expectedHMAC(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body)
	return hex.EncodeToString(mac.Sum(nil))
}

func TestSign_SingleSecret(t *testing.T) {
	body := []byte(`{"amount":100}`)
	got := Sign(body, &config.Signing{Secrets: []string{"s3cret"}})
	assert.Equal(t, "v1="+expectedHMAC("s3cret", body), got)
}

func TestSign_RotationEmitsAllVersions(t *testing.T) {
	body := []byte(`{"amount":100}`)
	got := Sign(body, &config.Signing{Secrets: []string{"new", "old"}})

	parts := strings.Split(got, ",")
	require.Len(t, parts, 2)
	assert.Equal(t, "v1="+expectedHMAC("new", body), parts[0])
	assert.Equal(t, "v2="+expectedHMAC("old", body), parts[1])
}

func TestSignatureHeader_Default(t *testing.T) {
	assert.Equal(t, "X-Signature", SignatureHeader(&config.Signing{}))
	assert.Equal(t, "X-Hub-Signature", SignatureHeader(&config.Signing{Header: "X-Hub-Signature"}))
}
