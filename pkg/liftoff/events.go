package liftoff

import (
	"log/slog"
	"slices"
	"sync"
)

// RequireHandler observes a module loaded by RequireLocal.
type RequireHandler func(name string, value any)

// RequireFailHandler observes a module RequireLocal failed to resolve or load.
type RequireFailHandler func(name string, err error)

// OnRequire registers h to be called after each successful RequireLocal.
// Handlers run synchronously, in registration order.
func (l *Liftoff) OnRequire(h RequireHandler) {
	if h == nil {
		return
	}

	l.observers.mu.Lock()
	defer l.observers.mu.Unlock()

	l.observers.require = append(l.observers.require, h)
}

// OnRequireFail registers h to be called after each failed RequireLocal.
// Handlers run synchronously, in registration order.
func (l *Liftoff) OnRequireFail(h RequireFailHandler) {
	if h == nil {
		return
	}

	l.observers.mu.Lock()
	defer l.observers.mu.Unlock()

	l.observers.requireFail = append(l.observers.requireFail, h)
}

// LogEvents registers observers logging every RequireLocal outcome to logger.
func LogEvents(l *Liftoff, logger *slog.Logger) {
	l.OnRequire(func(name string, _ any) {
		logger.Info("preloaded module", "module", name)
	})
	l.OnRequireFail(func(name string, err error) {
		logger.Warn("failed to preload module", "module", name, "error", err)
	})
}

type observers struct {
	mu          sync.RWMutex
	require     []RequireHandler
	requireFail []RequireFailHandler
}

// handlers are called outside the lock so that they may register others.

func (o *observers) notifyRequire(name string, value any) {
	o.mu.RLock()
	handlers := slices.Clone(o.require)
	o.mu.RUnlock()

	for _, h := range handlers {
		h(name, value)
	}
}

func (o *observers) notifyFail(name string, err error) {
	o.mu.RLock()
	handlers := slices.Clone(o.requireFail)
	o.mu.RUnlock()

	for _, h := range handlers {
		h(name, err)
	}
}
