package observability_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/aretw0/navstack"
	"github.com/aretw0/navstack/pkg/adapters/memory"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/observability"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type screen string

func (s screen) Name() string { return string(s) }

func TestMetrics_Hooks(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.NewMetrics(reg)

	nav, err := navstack.NewBuilder().
		AddScreen(screen("home"), "").
		AddScreen(screen("list"), "").
		WithContainer(memory.NewContainer()).
		WithHooks(metrics.Hooks()).
		Build()
	require.NoError(t, err)

	nav.GoBack()
	nav.OnResume()
	nav.GoForward(screen("detail"), "")

	assert.Equal(t, 3.0, testutil.ToFloat64(metrics.Transitions.WithLabelValues("forward")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Transitions.WithLabelValues("back")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Deferred.WithLabelValues("back")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Deferred.WithLabelValues("forward")))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Replayed.WithLabelValues("back", "true")))
	assert.Equal(t, 2.0, testutil.ToFloat64(metrics.Depth))
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Active))

	nav.OnPause()
	assert.Equal(t, 0.0, testutil.ToFloat64(metrics.Active))

	count, err := testutil.GatherAndCount(reg)
	require.NoError(t, err)
	assert.Positive(t, count)
}

func TestMerge_AndLogHooks(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var seen int
	counting := domain.Hooks{OnTransition: func(domain.TransitionEvent) { seen++ }}
	hooks := observability.Merge(observability.LogHooks(logger), counting, domain.Hooks{})

	hooks.OnTransition(domain.TransitionEvent{Kind: domain.OpForward, To: screen("a"), Depth: 1})
	hooks.OnDeferred(domain.Back())
	hooks.OnReplay(domain.Back(), false)
	hooks.OnLifecycle(domain.LifecycleChange{From: domain.Suspended, To: domain.Active})

	assert.Equal(t, 1, seen)
	out := buf.String()
	assert.Contains(t, out, "msg=transition")
	assert.Contains(t, out, "to=a")
	assert.Contains(t, out, "msg=deferred op=back")
	assert.Contains(t, out, "executed=false")
}
