package tests

import (
	"testing"

	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// VisibleFunc reports the screen a host currently shows in a container, or nil.
type VisibleFunc func(containerID string) domain.Screen

// HostContractTest is a reusable test suite that verifies if an adapter complies with ports.Host.
// newScreen must return a fresh screen the host is able to display.
func HostContractTest(t *testing.T, host ports.Host, visible VisibleFunc, newScreen func(name string) domain.Screen) {
	t.Helper()

	t.Run("Attach_Once", func(t *testing.T) {
		require.NoError(t, host.Attach("contract-key", "contract-container"))
		err := host.Attach("contract-key", "other-container")
		assert.ErrorIs(t, err, domain.ErrKeyInUse)
	})

	t.Run("Show_Replaces", func(t *testing.T) {
		require.NoError(t, host.Attach("show-key", "show-container"))
		a := newScreen("a")
		b := newScreen("b")

		host.Show("show-container", a)
		assert.Equal(t, a, visible("show-container"))

		host.Show("show-container", b)
		assert.Equal(t, b, visible("show-container"), "showing a screen must hide the previous one")
	})

	t.Run("Detach_Visible", func(t *testing.T) {
		require.NoError(t, host.Attach("detach-key", "detach-container"))
		a := newScreen("a")

		host.Show("detach-container", a)
		host.Detach("detach-container", a)
		assert.Nil(t, visible("detach-container"))
	})

	t.Run("Detach_Unknown", func(t *testing.T) {
		require.NoError(t, host.Attach("unknown-key", "unknown-container"))
		shown := newScreen("shown")
		host.Show("unknown-container", shown)

		// Detaching a screen that is not shown must leave the container untouched.
		host.Detach("unknown-container", newScreen("stranger"))
		assert.Equal(t, shown, visible("unknown-container"))
	})
}
