package anim

import (
	"log"
	"math"
)

// Player is the playback capability an actor exposes to the manager. Delays
// are in milliseconds.
type Player interface {
	Play(key string)
	DelayedPlay(delayMs float64, key string)
}

// Manager is the registry of animation definitions shared by every actor in
// the game. It owns the key-to-animation map, the global pause flag and the
// global time scale. Construct one per game with NewManager and tear it down
// with Destroy on shutdown.
//
// All methods must be called from the game's update goroutine; the manager
// performs no locking of its own.
type Manager struct {
	textures TextureSource

	anims map[string]*Animation
	order []string

	paused    bool
	timeScale float64

	events Events
}

// NewManager creates an empty registry backed by the given texture source.
func NewManager(textures TextureSource) *Manager {
	return &Manager{
		textures:  textures,
		anims:     map[string]*Animation{},
		timeScale: 1,
	}
}

// Events returns the registry's notification hub.
func (m *Manager) Events() *Events {
	return &m.events
}

// Add registers an existing animation under key. A key that is already taken
// rejects the add and leaves the stored animation untouched.
func (m *Manager) Add(key string, a *Animation) bool {
	if key == "" || a == nil {
		return false
	}
	if _, ok := m.anims[key]; ok {
		log.Printf("anim: animation key already exists: %s", key)
		return false
	}
	a.Key = key
	m.anims[key] = a
	m.order = append(m.order, key)
	m.events.emitAdd(key, a)
	return true
}

// Create builds an animation from cfg and registers it. A config without a
// key returns nil. Creating a key that already exists returns the existing
// animation unchanged and emits no notification.
func (m *Manager) Create(cfg Config) *Animation {
	if cfg.Key == "" {
		return nil
	}
	if existing, ok := m.anims[cfg.Key]; ok {
		return existing
	}
	a := NewAnimation(cfg)
	if !m.Add(cfg.Key, a) {
		return nil
	}
	return a
}

// Exists reports whether an animation is registered under key.
func (m *Manager) Exists(key string) bool {
	_, ok := m.anims[key]
	return ok
}

// Get returns the animation registered under key.
func (m *Manager) Get(key string) (*Animation, bool) {
	a, ok := m.anims[key]
	return a, ok
}

// Remove detaches and returns the animation registered under key. The removed
// notification fires before the animation leaves the map, so handlers can
// still look it up.
func (m *Manager) Remove(key string) (*Animation, bool) {
	a, ok := m.anims[key]
	if !ok {
		return nil, false
	}
	m.events.emitRemove(key, a)
	delete(m.anims, key)
	for i, k := range m.order {
		if k == key {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return a, true
}

// Len returns the number of registered animations.
func (m *Manager) Len() int {
	return len(m.anims)
}

// Keys returns the registered keys in insertion order.
func (m *Manager) Keys() []string {
	return append([]string(nil), m.order...)
}

// PauseAll sets the global pause flag. Only the first call of a pause/resume
// cycle emits the paused notification.
func (m *Manager) PauseAll() {
	if m.paused {
		return
	}
	m.paused = true
	m.events.emitPauseAll()
}

// ResumeAll clears the global pause flag. Only emits when currently paused.
func (m *Manager) ResumeAll() {
	if !m.paused {
		return
	}
	m.paused = false
	m.events.emitResumeAll()
}

// Paused reports the global pause flag. Actors read this each update;
// honoring it is their responsibility.
func (m *Manager) Paused() bool {
	return m.paused
}

// TimeScale returns the global time scale applied by actors. 1 is realtime.
func (m *Manager) TimeScale() float64 {
	return m.timeScale
}

// SetTimeScale sets the global time scale.
func (m *Manager) SetTimeScale(scale float64) {
	m.timeScale = scale
}

// Clear empties the registry without per-animation notifications.
func (m *Manager) Clear() {
	m.anims = map[string]*Animation{}
	m.order = nil
}

// Destroy clears the registry and releases the texture source. The manager
// must not be used afterwards.
func (m *Manager) Destroy() {
	m.Clear()
	m.textures = nil
}

// Play starts the animation on each actor immediately.
func (m *Manager) Play(key string, actors ...Player) {
	for _, p := range actors {
		if p != nil {
			p.Play(key)
		}
	}
}

// StaggerPlay starts the animation across actors with a per-actor delay of
// staggerMs. A positive stagger delays later actors more; a negative stagger
// reverses the delay order so the first actor waits longest and the last
// starts immediately. staggerFirst=false removes one stagger unit of spacing
// across the batch.
func (m *Manager) StaggerPlay(key string, actors []Player, staggerMs float64, staggerFirst bool) {
	limit := len(actors)
	if !staggerFirst {
		limit--
	}
	for i, p := range actors {
		if p == nil {
			continue
		}
		delay := staggerMs * float64(i)
		if staggerMs < 0 {
			delay = math.Abs(staggerMs) * float64(limit-1-i)
		}
		p.DelayedPlay(delay, key)
	}
}
