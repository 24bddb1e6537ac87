package provisioning

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mockObserver records events for assertions.
type mockObserver struct {
	events []Event
	fields map[string]string
}

func newMockObserver() *mockObserver {
	return &mockObserver{fields: map[string]string{}}
}

func (m *mockObserver) Event(event Event) { m.events = append(m.events, event) }

func (m *mockObserver) Progress(phase string, current, total int) {
	m.Event(Event{Type: EventProgress, Phase: phase, Message: fmt.Sprintf("%d/%d", current, total)})
}

func (m *mockObserver) WithFields(fields map[string]string) Observer {
	next := newMockObserver()
	for k, v := range m.fields {
		next.fields[k] = v
	}
	for k, v := range fields {
		next.fields[k] = v
	}
	return next
}

func (m *mockObserver) types() []EventType {
	out := make([]EventType, len(m.events))
	for i, e := range m.events {
		out[i] = e.Type
	}
	return out
}

type phaseFuncImpl struct {
	name string
	fn   func(*Context) error
}

func phaseFunc(name string, fn func(*Context) error) Phase {
	return &phaseFuncImpl{name: name, fn: fn}
}

func (p *phaseFuncImpl) Name() string                 { return p.name }
func (p *phaseFuncImpl) Provision(ctx *Context) error { return p.fn(ctx) }

func TestNewPipeline(t *testing.T) {
	t.Parallel()
	pipeline := NewPipeline(phaseFunc("a", nil), phaseFunc("b", nil))

	require.NotNil(t, pipeline)
	require.Len(t, pipeline.Phases, 2)
	assert.Equal(t, "a", pipeline.Phases[0].Name())
	assert.Empty(t, NewPipeline().Phases)
}

func TestPipeline_Run_Order(t *testing.T) {
	t.Parallel()
	var executed []string
	record := func(name string) Phase {
		return phaseFunc(name, func(_ *Context) error {
			executed = append(executed, name)
			return nil
		})
	}

	observer := newMockObserver()
	ctx := NewContext(context.Background(), nil, observer, nil)

	require.NoError(t, NewPipeline(record("one"), record("two"), record("three")).Run(ctx))
	assert.Equal(t, []string{"one", "two", "three"}, executed)

	types := observer.types()
	assert.Equal(t, EventRunStarted, types[0])
	assert.Equal(t, EventRunCompleted, types[len(types)-1])
	assert.Contains(t, types, EventPhaseStarted)
	assert.Contains(t, types, EventPhaseCompleted)
}

func TestPipeline_Run_StopsOnError(t *testing.T) {
	t.Parallel()
	var executed []string
	observer := newMockObserver()
	ctx := NewContext(context.Background(), nil, observer, nil)

	err := NewPipeline(
		phaseFunc("first", func(_ *Context) error { executed = append(executed, "first"); return nil }),
		phaseFunc("second", func(_ *Context) error { return fmt.Errorf("boom") }),
		phaseFunc("third", func(_ *Context) error { executed = append(executed, "third"); return nil }),
	).Run(ctx)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "second phase failed")
	assert.Equal(t, []string{"first"}, executed)
	assert.Contains(t, observer.types(), EventPhaseFailed)
	assert.NotContains(t, observer.types(), EventRunCompleted)
}

func TestPipeline_Run_CancelledBeforePhase(t *testing.T) {
	t.Parallel()
	cctx, cancel := context.WithCancel(context.Background())
	cancel()
	ctx := NewContext(cctx, nil, newMockObserver(), nil)

	called := false
	err := RunPhases(ctx, []Phase{phaseFunc("x", func(_ *Context) error { called = true; return nil })})

	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}

func TestLogObserver_WithFieldsDoesNotLeak(t *testing.T) {
	t.Parallel()
	base := NewLogObserver(discardLogger())
	child := base.WithFields(map[string]string{"session": "abc"}).(*LogObserver)

	assert.Empty(t, base.fields)
	assert.Equal(t, "abc", child.fields["session"])

	// Must not panic on any event type.
	child.Event(Event{Type: EventPhaseFailed, Phase: "p", Message: "failed"})
	child.Progress("p", 1, 0)
}
