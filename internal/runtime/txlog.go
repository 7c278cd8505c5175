package runtime

import "github.com/aretw0/navstack/pkg/domain"

// TxLog is the FIFO queue of operations recorded while the controller is suspended.
// Operations are appended in issue order; an interrupted replay puts its
// remainder back at the head.
type TxLog struct {
	ops []domain.Operation
}

// NewTxLog creates an empty transaction log.
func NewTxLog() *TxLog {
	return &TxLog{}
}

// Append records op at the end of the log.
func (l *TxLog) Append(op domain.Operation) {
	l.ops = append(l.ops, op)
}

// Prepend puts ops back at the head of the log, ahead of anything appended
// since they were drained.
func (l *TxLog) Prepend(ops ...domain.Operation) {
	if len(ops) == 0 {
		return
	}
	merged := make([]domain.Operation, 0, len(ops)+len(l.ops))
	merged = append(merged, ops...)
	l.ops = append(merged, l.ops...)
}

// Len returns the number of pending operations.
func (l *TxLog) Len() int {
	return len(l.ops)
}

// Pending returns a copy of the queued operations in issue order.
func (l *TxLog) Pending() []domain.Operation {
	out := make([]domain.Operation, len(l.ops))
	copy(out, l.ops)
	return out
}

// Drain returns every queued operation in issue order and empties the log.
func (l *TxLog) Drain() []domain.Operation {
	ops := l.ops
	l.ops = nil
	return ops
}
