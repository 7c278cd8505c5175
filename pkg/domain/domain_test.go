package domain_test

import (
	"testing"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/stretchr/testify/assert"
)

type screen string

func (s screen) Name() string { return string(s) }

func TestNextLifecycle(t *testing.T) {
	tests := []struct {
		from    domain.Lifecycle
		event   domain.LifecycleEvent
		want    domain.Lifecycle
		changed bool
	}{
		{domain.Suspended, domain.EventResume, domain.Active, true},
		{domain.Active, domain.EventPause, domain.Suspended, true},
		{domain.Active, domain.EventResume, domain.Active, false},
		{domain.Suspended, domain.EventPause, domain.Suspended, false},
		{domain.Active, domain.LifecycleEvent("destroy"), domain.Active, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.from)+"/"+string(tt.event), func(t *testing.T) {
			got, changed := domain.NextLifecycle(tt.from, tt.event)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestOperation_String(t *testing.T) {
	assert.Equal(t, "forward(a#t)", domain.Forward(domain.Entry{Screen: screen("a"), Tag: "t"}).String())
	assert.Equal(t, "replace(b)", domain.Replace(domain.Entry{Screen: screen("b")}).String())
	assert.Equal(t, "back", domain.Back().String())
	assert.False(t, domain.Reset().HasPayload())
	assert.True(t, domain.ResetTo(domain.Entry{Screen: screen("c")}).HasPayload())
}

func TestSnapshot_Top(t *testing.T) {
	var snap domain.Snapshot
	_, ok := snap.Top()
	assert.False(t, ok)

	snap.Entries = []domain.SnapshotEntry{{Kind: "root"}, {Kind: "leaf", Tag: "x"}}
	top, ok := snap.Top()
	assert.True(t, ok)
	assert.Equal(t, "leaf", top.Kind)
	assert.Equal(t, 2, snap.Depth())
}
