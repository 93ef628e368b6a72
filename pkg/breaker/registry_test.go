package breaker

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/relayforge/relayforge/pkg/config"
)

func newTestRegistry(threshold, autoDisable int, onDisable DisableFunc) *Registry {
	return NewRegistry(&config.BreakerConfig{
		FailureThreshold:     threshold,
		Cooldown:             time.Minute,
		AutoDisableThreshold: autoDisable,
	}, nil, onDisable)
}

func TestExecute_OpensAfterThreshold(t *testing.T) {
	r := newTestRegistry(3, 0, nil)
	failing := errors.New("connection refused")

	for i := 0; i < 3; i++ {
		assert.True(t, r.Allow("int-1"))
		err := r.Execute(context.Background(), "int-1", func() error { return failing })
		assert.ErrorIs(t, err, failing)
	}

	assert.False(t, r.Allow("int-1"))
	assert.Equal(t, "open", r.State("int-1"))

	err := r.Execute(context.Background(), "int-1", func() error { return nil })
	assert.ErrorIs(t, err, ErrCircuitOpen)
}

func TestExecute_SuccessResetsCount(t *testing.T) {
	r := newTestRegistry(3, 0, nil)
	failing := errors.New("timeout")

	for i := 0; i < 2; i++ {
		_ = r.Execute(context.Background(), "int-1", func() error { return failing })
	}
	assert.NoError(t, r.Execute(context.Background(), "int-1", func() error { return nil }))

	// Two more failures should not trip a threshold of three.
	for i := 0; i < 2; i++ {
		_ = r.Execute(context.Background(), "int-1", func() error { return failing })
	}
	assert.True(t, r.Allow("int-1"))
}

func TestExecute_BreakersAreIndependent(t *testing.T) {
	r := newTestRegistry(1, 0, nil)

	_ = r.Execute(context.Background(), "int-1", func() error { return errors.New("boom") })

	assert.False(t, r.Allow("int-1"))
	assert.True(t, r.Allow("int-2"))
}

func TestExecute_HalfOpenAdmitsSingleRequest(t *testing.T) {
	r := NewRegistry(&config.BreakerConfig{
		FailureThreshold: 1,
		Cooldown:         50 * time.Millisecond,
	}, nil, nil)

	_ = r.Execute(context.Background(), "int-1", func() error { return errors.New("boom") })
	assert.False(t, r.Allow("int-1"))

	// Past the cooldown the breaker admits exactly one request. A second
	// concurrent Execute must be refused without running its function.
	time.Sleep(60 * time.Millisecond)

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	done := make(chan error, 1)
	go func() {
		done <- r.Execute(context.Background(), "int-1", func() error {
			close(firstStarted)
			<-release
			return nil
		})
	}()
	<-firstStarted

	var ran bool
	err := r.Execute(context.Background(), "int-1", func() error {
		ran = true
		return nil
	})
	assert.ErrorIs(t, err, ErrTooManyRequests)
	assert.False(t, ran, "refused request must not reach the endpoint")

	close(release)
	assert.NoError(t, <-done)
	assert.Equal(t, "closed", r.State("int-1"))
}

func TestExecute_AutoDisable(t *testing.T) {
	var disabledID string
	var disabledCount int
	r := newTestRegistry(100, 2, func(_ context.Context, id string, n int) {
		disabledID = id
		disabledCount = n
	})

	for i := 0; i < 2; i++ {
		_ = r.Execute(context.Background(), "int-1", func() error { return errors.New("boom") })
	}

	assert.Equal(t, "int-1", disabledID)
	assert.Equal(t, 2, disabledCount)
	assert.False(t, r.Allow("int-1"))
}
