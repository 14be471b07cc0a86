package texture

import (
	"fmt"

	"github.com/milk9111/animkit/anim"
)

// Store is the game's texture catalog. It satisfies anim.TextureSource so an
// anim.Manager can generate frame sequences against it.
type Store struct {
	textures map[string]*Texture
}

// NewStore creates an empty catalog.
func NewStore() *Store {
	return &Store{textures: map[string]*Texture{}}
}

// Add registers a texture under its key. Adding a key that is already taken
// is an error and leaves the stored texture untouched.
func (s *Store) Add(t *Texture) error {
	if t == nil || t.Key() == "" {
		return fmt.Errorf("texture: cannot store a texture without a key")
	}
	if _, ok := s.textures[t.Key()]; ok {
		return fmt.Errorf("texture: key already exists: %s", t.Key())
	}
	s.textures[t.Key()] = t
	return nil
}

// Exists reports whether a texture is registered under key.
func (s *Store) Exists(key string) bool {
	_, ok := s.textures[key]
	return ok
}

// Get returns the texture registered under key.
func (s *Store) Get(key string) (*Texture, bool) {
	t, ok := s.textures[key]
	return t, ok
}

// Remove detaches and returns the texture registered under key.
func (s *Store) Remove(key string) (*Texture, bool) {
	t, ok := s.textures[key]
	if !ok {
		return nil, false
	}
	delete(s.textures, key)
	return t, true
}

// Frames resolves key to its frame lookup capability.
func (s *Store) Frames(key string) (anim.TextureFrames, bool) {
	t, ok := s.textures[key]
	if !ok {
		return nil, false
	}
	return t, true
}
