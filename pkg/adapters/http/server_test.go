package http_test

import (
	"bufio"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	navhttp "github.com/aretw0/navstack/pkg/adapters/http"
	"github.com/aretw0/navstack/pkg/adapters/memory"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seededStore(t *testing.T) *memory.Store {
	t.Helper()
	store := memory.NewStore()
	require.NoError(t, store.Save(context.Background(), "main", &domain.Snapshot{
		ContainerID: "c-1",
		Entries: []domain.SnapshotEntry{
			{Kind: "color", Args: map[string]any{"level": 10}},
			{Kind: "number", Args: map[string]any{"value": 1}, Tag: "n1"},
		},
	}))
	return store
}

func TestHandler_Snapshots(t *testing.T) {
	handler := navhttp.NewHandler(seededStore(t))

	t.Run("List", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/snapshots/", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var rows []navhttp.SnapshotSummary
		require.NoError(t, json.NewDecoder(w.Body).Decode(&rows))
		assert.Equal(t, []navhttp.SnapshotSummary{{Key: "main", ContainerID: "c-1", Depth: 2, Top: "number"}}, rows)
	})

	t.Run("Get", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/snapshots/main", nil))
		require.Equal(t, http.StatusOK, w.Code)

		var snap domain.Snapshot
		require.NoError(t, json.NewDecoder(w.Body).Decode(&snap))
		assert.Equal(t, "n1", snap.Entries[1].Tag)
	})

	t.Run("Get Missing", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/snapshots/nope", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("Delete", func(t *testing.T) {
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/snapshots/main", nil))
		assert.Equal(t, http.StatusNoContent, w.Code)

		w = httptest.NewRecorder()
		handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/snapshots/main", nil))
		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}

func TestHandler_HealthAndInfo(t *testing.T) {
	handler := navhttp.NewHandler(memory.NewStore())

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())

	w = httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/info", nil))
	assert.Contains(t, w.Body.String(), `"app":"navstack-inspector"`)
}

func TestHandler_Metrics(t *testing.T) {
	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "navstack_test_total", Help: "test"})
	reg.MustRegister(counter)
	counter.Inc()

	handler := navhttp.NewHandler(memory.NewStore(), navhttp.WithGatherer(reg))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "navstack_test_total 1")

	plain := navhttp.NewHandler(memory.NewStore())
	w = httptest.NewRecorder()
	plain.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

type screen string

func (s screen) Name() string { return string(s) }

func TestHandler_Events(t *testing.T) {
	streams := navhttp.NewStreamManager(nil)
	srv := httptest.NewServer(navhttp.NewHandler(memory.NewStore(), navhttp.WithStreams(streams)))
	defer srv.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, srv.URL+"/events?key=main", nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, "text/event-stream", resp.Header.Get("Content-Type"))

	reader := bufio.NewReader(resp.Body)
	readData := func() string {
		for {
			line, err := reader.ReadString('\n')
			require.NoError(t, err)
			if strings.HasPrefix(line, "data: ") {
				return strings.TrimSpace(strings.TrimPrefix(line, "data: "))
			}
		}
	}
	assert.Equal(t, "connected", readData())

	// Events for other keys are filtered out.
	streams.Hooks("other").OnTransition(domain.TransitionEvent{Kind: domain.OpForward, To: screen("x"), Depth: 1})
	streams.Hooks("main").OnTransition(domain.TransitionEvent{Kind: domain.OpBack, From: screen("b"), To: screen("a"), Depth: 1})

	var ev navhttp.Event
	require.NoError(t, json.Unmarshal([]byte(readData()), &ev))
	assert.Equal(t, navhttp.Event{Key: "main", Type: "transition", Kind: "back", From: "b", To: "a", Depth: 1}, ev)
}

func TestStreamManager_Unsubscribe(t *testing.T) {
	sm := navhttp.NewStreamManager(nil)
	all, cancelAll := sm.Subscribe("")
	_, cancelMain := sm.Subscribe("main")
	assert.Equal(t, 2, sm.Subscribers())

	sm.Broadcast(navhttp.Event{Key: "main", Type: "lifecycle", To: "active"})
	assert.Contains(t, <-all, `"to":"active"`)

	cancelMain()
	cancelMain()
	cancelAll()
	assert.Zero(t, sm.Subscribers())
	_, open := <-all
	assert.False(t, open)
}
