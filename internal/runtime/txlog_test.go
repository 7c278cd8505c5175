package runtime_test

import (
	"testing"

	"github.com/aretw0/navstack/internal/runtime"
	"github.com/aretw0/navstack/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestTxLog_FIFO(t *testing.T) {
	log := runtime.NewTxLog()
	a := domain.Entry{Screen: newScreen("a")}

	log.Append(domain.Forward(a))
	log.Append(domain.Back())
	log.Append(domain.Reset())
	assert.Equal(t, 3, log.Len())

	pending := log.Pending()
	assert.Equal(t, []domain.OpKind{domain.OpForward, domain.OpBack, domain.OpReset},
		[]domain.OpKind{pending[0].Kind, pending[1].Kind, pending[2].Kind})
	assert.Equal(t, 3, log.Len(), "Pending does not consume")

	drained := log.Drain()
	assert.Len(t, drained, 3)
	assert.Equal(t, domain.OpForward, drained[0].Kind)
	assert.Zero(t, log.Len())
	assert.Empty(t, log.Drain())
}

func TestTxLog_Prepend(t *testing.T) {
	log := runtime.NewTxLog()
	log.Append(domain.Forward(domain.Entry{Screen: newScreen("x")}))

	log.Prepend(domain.Back(), domain.Reset())
	log.Prepend()

	pending := log.Pending()
	assert.Equal(t, []domain.OpKind{domain.OpBack, domain.OpReset, domain.OpForward},
		[]domain.OpKind{pending[0].Kind, pending[1].Kind, pending[2].Kind})
}
