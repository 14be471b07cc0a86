package anim

// Events dispatches registry lifecycle notifications to registered handlers.
// Dispatch is synchronous: every handler runs before the mutating call
// returns, and an add handler always observes the animation already stored.
type Events struct {
	add    []func(key string, a *Animation)
	remove []func(key string, a *Animation)
	pause  []func()
	resume []func()
}

// OnAdd registers a handler for animation-added notifications.
func (e *Events) OnAdd(h func(key string, a *Animation)) {
	if e == nil || h == nil {
		return
	}
	e.add = append(e.add, h)
}

// OnRemove registers a handler for animation-removed notifications.
func (e *Events) OnRemove(h func(key string, a *Animation)) {
	if e == nil || h == nil {
		return
	}
	e.remove = append(e.remove, h)
}

// OnPauseAll registers a handler for the global pause notification.
func (e *Events) OnPauseAll(h func()) {
	if e == nil || h == nil {
		return
	}
	e.pause = append(e.pause, h)
}

// OnResumeAll registers a handler for the global resume notification.
func (e *Events) OnResumeAll(h func()) {
	if e == nil || h == nil {
		return
	}
	e.resume = append(e.resume, h)
}

func (e *Events) emitAdd(key string, a *Animation) {
	for _, h := range e.add {
		h(key, a)
	}
}

func (e *Events) emitRemove(key string, a *Animation) {
	for _, h := range e.remove {
		h(key, a)
	}
}

func (e *Events) emitPauseAll() {
	for _, h := range e.pause {
		h()
	}
}

func (e *Events) emitResumeAll() {
	for _, h := range e.resume {
		h()
	}
}
