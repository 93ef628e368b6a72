package delivery

import (
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func policyResolving(ips ...string) *URLPolicy {
	p := NewURLPolicy(false)
	p.lookupHost = func(string) ([]net.IP, error) {
		out := make([]net.IP, 0, len(ips))
		for _, raw := range ips {
			out = append(out, net.ParseIP(raw))
		}
		return out, nil
	}
	return p
}

func TestValidate_RequiresHTTPS(t *testing.T) {
	p := policyResolving("93.184.216.34")

	_, err := p.Validate("http://api.example.com/hook")
	require.NotNil(t, err)
	assert.Equal(t, KindURLBlocked, err.Kind)

	u, err := p.Validate("https://api.example.com/hook")
	require.Nil(t, err)
	assert.Equal(t, "api.example.com", u.Hostname())
}

func TestValidate_BlocksPrivateLiterals(t *testing.T) {
	p := NewURLPolicy(false)

	for _, target := range []string{
		"https://127.0.0.1/hook",
		"https://10.0.0.5/hook",
		"https://192.168.1.20/hook",
		"https://172.16.0.1/hook",
		"https://169.254.169.254/latest/meta-data",
		"https://0.0.0.0/hook",
		"https://[::1]/hook",
	} {
		_, err := p.Validate(target)
		if assert.NotNil(t, err, target) {
			assert.Equal(t, KindURLBlocked, err.Kind, target)
		}
	}
}

func TestValidate_BlocksNamesResolvingInternally(t *testing.T) {
	p := policyResolving("93.184.216.34", "10.0.0.8")

	_, err := p.Validate("https://rebind.example.com/hook")
	require.NotNil(t, err)
	assert.Equal(t, KindURLBlocked, err.Kind)
}

func TestValidate_AllowInsecureLocal(t *testing.T) {
	p := NewURLPolicy(true)

	u, err := p.Validate("http://localhost:8080/hook")
	require.Nil(t, err)
	assert.Equal(t, "localhost", u.Hostname())
}

func TestValidate_MalformedURL(t *testing.T) {
	p := NewURLPolicy(false)

	_, err := p.Validate("://missing-scheme")
	require.NotNil(t, err)
	assert.Equal(t, KindURLBlocked, err.Kind)
}
