package runtime_test

import (
	"fmt"

	"github.com/aretw0/navstack/pkg/domain"
)

type screen struct {
	name string
}

func (s *screen) Name() string { return s.name }

func newScreen(name string) *screen { return &screen{name: name} }

type restorableScreen struct {
	kind string
	n    int
}

func (s *restorableScreen) Name() string { return fmt.Sprintf("%s-%d", s.kind, s.n) }

func (s *restorableScreen) Descriptor() domain.Descriptor {
	return domain.Descriptor{Kind: s.kind, Args: map[string]any{"n": s.n}}
}

// recorder is a fake container that logs every call it receives.
type recorder struct {
	calls   []string
	visible domain.Screen
}

func (r *recorder) Show(containerID string, s domain.Screen) {
	r.calls = append(r.calls, "show "+s.Name())
	r.visible = s
}

func (r *recorder) Detach(containerID string, s domain.Screen) {
	r.calls = append(r.calls, "detach "+s.Name())
	if r.visible == s {
		r.visible = nil
	}
}

func (r *recorder) reset() { r.calls = nil }

// trace renders transition events compactly for order assertions.
type trace []string

func (t *trace) listen(e domain.TransitionEvent) {
	from := "-"
	if e.From != nil {
		from = e.From.Name()
	}
	*t = append(*t, fmt.Sprintf("%s %s->%s", e.Kind, from, e.To.Name()))
}

func names(entries []domain.Entry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.ScreenName()
	}
	return out
}
