package domain

// OpKind identifies the variant of an Operation.
type OpKind string

const (
	OpForward OpKind = "forward"
	OpReplace OpKind = "replace"
	OpBack    OpKind = "back"
	OpReset   OpKind = "reset"
	OpResetTo OpKind = "reset_to"
)

// Operation is a navigation request recorded in the transaction log.
// Entry is only meaningful for Forward, Replace and ResetTo.
// Operations are values: once enqueued they are never mutated.
type Operation struct {
	Kind  OpKind
	Entry Entry
}

// Forward creates a push operation.
func Forward(e Entry) Operation {
	return Operation{Kind: OpForward, Entry: e}
}

// Replace creates an operation swapping the top of the stack.
func Replace(e Entry) Operation {
	return Operation{Kind: OpReplace, Entry: e}
}

// Back creates a pop operation.
func Back() Operation {
	return Operation{Kind: OpBack}
}

// Reset creates an operation collapsing the stack to its root.
func Reset() Operation {
	return Operation{Kind: OpReset}
}

// ResetTo creates an operation replacing the whole stack with a single entry.
func ResetTo(e Entry) Operation {
	return Operation{Kind: OpResetTo, Entry: e}
}

// HasPayload reports whether the operation carries an entry.
func (o Operation) HasPayload() bool {
	switch o.Kind {
	case OpForward, OpReplace, OpResetTo:
		return true
	default:
		return false
	}
}

func (o Operation) String() string {
	if o.HasPayload() {
		if o.Entry.HasTag() {
			return string(o.Kind) + "(" + o.Entry.ScreenName() + "#" + o.Entry.Tag + ")"
		}
		return string(o.Kind) + "(" + o.Entry.ScreenName() + ")"
	}
	return string(o.Kind)
}
