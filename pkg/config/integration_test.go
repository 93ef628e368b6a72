package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntegrationTimeoutBounds(t *testing.T) {
	def := 10 * time.Second

	assert.Equal(t, def, (&Integration{}).Timeout(def))
	assert.Equal(t, def, (&Integration{TimeoutMs: -5}).Timeout(def))
	assert.Equal(t, 2*time.Second, (&Integration{TimeoutMs: 2000}).Timeout(def))
	// Floor 1s, ceiling 60s.
	assert.Equal(t, time.Second, (&Integration{TimeoutMs: 100}).Timeout(def))
	assert.Equal(t, 60*time.Second, (&Integration{TimeoutMs: 600000}).Timeout(def))
}

func TestIntegrationMaxAttempts(t *testing.T) {
	intp := func(n int) *int { return &n }

	assert.Equal(t, 3, (&Integration{}).MaxAttempts(3))
	// 0 is an explicit "no retries", distinct from unset.
	assert.Equal(t, 0, (&Integration{RetryCount: intp(0)}).MaxAttempts(3))
	assert.Equal(t, 5, (&Integration{RetryCount: intp(5)}).MaxAttempts(3))
	assert.Equal(t, 0, (&Integration{RetryCount: intp(-2)}).MaxAttempts(3))
	assert.Equal(t, 10, (&Integration{RetryCount: intp(99)}).MaxAttempts(3))
}

func TestIntegrationRegistryGet(t *testing.T) {
	r := NewIntegrationRegistry([]*Integration{{ID: "int-1", Name: "one"}})

	got, err := r.Get("int-1")
	require.NoError(t, err)
	assert.Equal(t, "one", got.Name)

	_, err = r.Get("int-missing")
	assert.ErrorIs(t, err, ErrIntegrationNotFound)
}

func TestIntegrationRegistryAllOrdering(t *testing.T) {
	t0 := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	r := NewIntegrationRegistry([]*Integration{
		{ID: "int-b", UpdatedAt: t0},
		{ID: "int-a", UpdatedAt: t0},
		{ID: "int-new", UpdatedAt: t0.Add(time.Hour)},
	})

	all := r.All()
	require.Len(t, all, 3)
	// Newest first, ties broken by ID.
	assert.Equal(t, "int-new", all[0].ID)
	assert.Equal(t, "int-a", all[1].ID)
	assert.Equal(t, "int-b", all[2].ID)
}

func TestIntegrationRegistryByProxyPath(t *testing.T) {
	r := NewIntegrationRegistry([]*Integration{
		{ID: "int-in", Direction: DirectionInbound, IsActive: true, ProxyPath: "crm/orders"},
		{ID: "int-off", Direction: DirectionInbound, IsActive: false, ProxyPath: "crm/disabled"},
		{ID: "int-out", Direction: DirectionOutbound, IsActive: true, ProxyPath: "crm/outbound"},
	})

	got, err := r.ByProxyPath("crm/orders")
	require.NoError(t, err)
	assert.Equal(t, "int-in", got.ID)

	// Inactive and non-inbound integrations never resolve.
	_, err = r.ByProxyPath("crm/disabled")
	assert.ErrorIs(t, err, ErrIntegrationNotFound)
	_, err = r.ByProxyPath("crm/outbound")
	assert.ErrorIs(t, err, ErrIntegrationNotFound)
}

func TestIntegrationRegistryDeactivate(t *testing.T) {
	r := NewIntegrationRegistry([]*Integration{{ID: "int-1", IsActive: true}})

	assert.True(t, r.Deactivate("int-1"))
	got, err := r.Get("int-1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	assert.False(t, r.Deactivate("int-missing"))
}

func TestIntegrationRegistryDeactivateConcurrentReads(t *testing.T) {
	r := NewIntegrationRegistry([]*Integration{{ID: "int-1", IsActive: true}})

	// Readers hold pointers from Get and check IsActive outside the registry
	// lock; deactivation must not mutate the shared value under them.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < 1000; i++ {
			in, err := r.Get("int-1")
			if err == nil {
				_ = in.IsActive
			}
		}
	}()

	for i := 0; i < 100; i++ {
		r.Deactivate("int-1")
	}
	<-done

	got, err := r.Get("int-1")
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}
