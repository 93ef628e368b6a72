package source

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relayforge/relayforge/pkg/config"
	"github.com/relayforge/relayforge/pkg/models"
)

// memCheckpoints is an in-memory Checkpoints implementation.
type memCheckpoints struct {
	mu    sync.Mutex
	marks map[string]int64
}

func newMemCheckpoints() *memCheckpoints {
	return &memCheckpoints{marks: make(map[string]int64)}
}

func (m *memCheckpoints) Get(_ context.Context, source, identifier, orgID string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.marks[source+"|"+identifier+"|"+orgID], nil
}

func (m *memCheckpoints) Advance(_ context.Context, source, identifier, orgID string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.marks[source+"|"+identifier+"|"+orgID] = id
	return nil
}

type fakeReader struct {
	events []*models.Event
	err    error
}

func (r *fakeReader) Identifier() string { return "fake" }

func (r *fakeReader) Fetch(_ context.Context, after int64, limit int) ([]*models.Event, error) {
	if r.err != nil {
		return nil, r.err
	}
	var out []*models.Event
	for _, e := range r.events {
		if e.Cursor > after && len(out) < limit {
			out = append(out, e)
		}
	}
	return out, nil
}

func event(id string, cursor int64) *models.Event {
	return &models.Event{
		Source:    "src-1",
		SourceID:  id,
		OrgID:     "org-1",
		EventType: "thing.happened",
		Payload:   map[string]interface{}{"id": id},
		Cursor:    cursor,
	}
}

func testSource() *config.Source {
	return &config.Source{ID: "src-1", OrgID: "org-1", Type: config.SourceMySQL}
}

func TestPollOnce_AdvancesPerRow(t *testing.T) {
	reader := &fakeReader{events: []*models.Event{
		event("1", 1), event("2", 2), event("3", 3),
	}}
	checkpoints := newMemCheckpoints()

	var handled []string
	p := NewPoller(config.DefaultPollerConfig(), checkpoints, func(_ context.Context, e *models.Event) error {
		handled = append(handled, e.SourceID)
		return nil
	})

	processed, err := p.pollOnce(context.Background(), testSource(), reader, map[string]int{})
	require.NoError(t, err)
	assert.Equal(t, 3, processed)
	assert.Equal(t, []string{"1", "2", "3"}, handled)

	mark, _ := checkpoints.Get(context.Background(), "src-1", "fake", "org-1")
	assert.Equal(t, int64(3), mark)

	// Second poll starts after the checkpoint and finds nothing new.
	processed, err = p.pollOnce(context.Background(), testSource(), reader, map[string]int{})
	require.NoError(t, err)
	assert.Zero(t, processed)
	assert.Len(t, handled, 3)
}

func TestPollOnce_HandlerFailureHoldsCheckpoint(t *testing.T) {
	reader := &fakeReader{events: []*models.Event{
		event("1", 1), event("2", 2), event("3", 3),
	}}
	checkpoints := newMemCheckpoints()

	p := NewPoller(config.DefaultPollerConfig(), checkpoints, func(_ context.Context, e *models.Event) error {
		if e.SourceID == "2" {
			return errors.New("transform blew up")
		}
		return nil
	})

	failures := map[string]int{}
	processed, err := p.pollOnce(context.Background(), testSource(), reader, failures)

	require.Error(t, err)
	assert.Equal(t, 1, processed, "row 3 must not run before row 2 succeeds or is skipped")
	assert.Equal(t, 1, failures["2"])

	mark, _ := checkpoints.Get(context.Background(), "src-1", "fake", "org-1")
	assert.Equal(t, int64(1), mark, "checkpoint stops at the last good row")
}

func TestPollOnce_PoisonRowSkippedAfterThreshold(t *testing.T) {
	reader := &fakeReader{events: []*models.Event{
		event("1", 1), event("2", 2), event("3", 3),
	}}
	checkpoints := newMemCheckpoints()

	p := NewPoller(config.DefaultPollerConfig(), checkpoints, func(_ context.Context, e *models.Event) error {
		if e.SourceID == "2" {
			return errors.New("always fails")
		}
		return nil
	})

	failures := map[string]int{}
	for i := 0; i < poisonThreshold-1; i++ {
		_, err := p.pollOnce(context.Background(), testSource(), reader, failures)
		require.Error(t, err)
	}

	// Threshold reached: the poison row is skipped and the batch completes.
	processed, err := p.pollOnce(context.Background(), testSource(), reader, failures)
	require.NoError(t, err)
	assert.Equal(t, 2, processed)
	assert.NotContains(t, failures, "2")

	mark, _ := checkpoints.Get(context.Background(), "src-1", "fake", "org-1")
	assert.Equal(t, int64(3), mark)
}

func TestPollOnce_FetchErrorPropagates(t *testing.T) {
	reader := &fakeReader{err: errors.New("connection reset")}
	p := NewPoller(config.DefaultPollerConfig(), newMemCheckpoints(), func(context.Context, *models.Event) error {
		t.Fatal("handler must not run on fetch error")
		return nil
	})

	_, err := p.pollOnce(context.Background(), testSource(), reader, map[string]int{})
	require.Error(t, err)
}
