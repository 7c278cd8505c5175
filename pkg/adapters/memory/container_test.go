package memory_test

import (
	"testing"

	"github.com/aretw0/navstack/pkg/adapters/memory"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/aretw0/navstack/pkg/ports/tests"
	"github.com/stretchr/testify/assert"
)

type named string

func (n *named) Name() string { return string(*n) }

func newNamed(name string) domain.Screen {
	n := named(name)
	return &n
}

func TestContainer_HostContract(t *testing.T) {
	host := memory.NewContainer()
	tests.HostContractTest(t, host, host.Visible, newNamed)
}

func TestContainer_RecordsCalls(t *testing.T) {
	host := memory.NewContainer()
	a, b := newNamed("a"), newNamed("b")

	host.Show("c1", a)
	host.Show("c1", b)
	host.Detach("c1", b)

	calls := host.Calls()
	assert.Len(t, calls, 3)
	assert.Equal(t, "show c1 a", calls[0].String())
	assert.Equal(t, "detach c1 b", calls[2].String())
	assert.Nil(t, host.Visible("c1"))
}
