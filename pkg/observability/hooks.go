package observability

import (
	"log/slog"

	"github.com/aretw0/navstack/pkg/domain"
)

// LogHooks logs every hook at Info level.
func LogHooks(logger *slog.Logger) domain.Hooks {
	return domain.Hooks{
		OnTransition: func(e domain.TransitionEvent) {
			logger.Info("transition",
				"kind", e.Kind,
				"from", screenName(e.From),
				"to", screenName(e.To),
				"depth", e.Depth,
			)
		},
		OnDeferred: func(op domain.Operation) {
			logger.Info("deferred", "op", op.String())
		},
		OnReplay: func(op domain.Operation, executed bool) {
			logger.Info("replay", "op", op.String(), "executed", executed)
		},
		OnLifecycle: func(ch domain.LifecycleChange) {
			logger.Info("lifecycle",
				"container", ch.ContainerID,
				"from", ch.From,
				"to", ch.To,
				"pending", ch.Pending,
			)
		},
	}
}

// Merge calls every set of hooks in order. Nil callbacks are skipped.
func Merge(sets ...domain.Hooks) domain.Hooks {
	return domain.Hooks{
		OnTransition: func(e domain.TransitionEvent) {
			for _, h := range sets {
				if h.OnTransition != nil {
					h.OnTransition(e)
				}
			}
		},
		OnDeferred: func(op domain.Operation) {
			for _, h := range sets {
				if h.OnDeferred != nil {
					h.OnDeferred(op)
				}
			}
		},
		OnReplay: func(op domain.Operation, executed bool) {
			for _, h := range sets {
				if h.OnReplay != nil {
					h.OnReplay(op, executed)
				}
			}
		},
		OnLifecycle: func(ch domain.LifecycleChange) {
			for _, h := range sets {
				if h.OnLifecycle != nil {
					h.OnLifecycle(ch)
				}
			}
		},
	}
}

func screenName(s domain.Screen) string {
	if s == nil {
		return ""
	}
	return s.Name()
}
