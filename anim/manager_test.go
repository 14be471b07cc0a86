package anim

import (
	"strconv"
	"testing"
)

// fakeTexture implements TextureFrames over a fixed ordered name list.
type fakeTexture struct {
	names []string
}

func sheetTexture(total int) *fakeTexture {
	t := &fakeTexture{}
	for i := 0; i < total; i++ {
		t.names = append(t.names, strconv.Itoa(i))
	}
	return t
}

func (t *fakeTexture) Has(id FrameID) bool {
	for _, n := range t.names {
		if n == id.Name() {
			return true
		}
	}
	return false
}

func (t *fakeTexture) FrameNames() []string {
	return append([]string(nil), t.names...)
}

func (t *fakeTexture) FrameTotal() int {
	return len(t.names)
}

// fakeStore implements TextureSource.
type fakeStore struct {
	textures map[string]*fakeTexture
}

func newFakeStore() *fakeStore {
	return &fakeStore{textures: map[string]*fakeTexture{}}
}

func (s *fakeStore) add(key string, t *fakeTexture) *fakeStore {
	s.textures[key] = t
	return s
}

func (s *fakeStore) Exists(key string) bool {
	_, ok := s.textures[key]
	return ok
}

func (s *fakeStore) Frames(key string) (TextureFrames, bool) {
	t, ok := s.textures[key]
	if !ok {
		return nil, false
	}
	return t, true
}

func testFrames(textureKey string, indices ...int) []Frame {
	frames := make([]Frame, 0, len(indices))
	for _, i := range indices {
		frames = append(frames, Frame{TextureKey: textureKey, Frame: FrameIndex(i)})
	}
	return frames
}

func TestManagerAddRejectsDuplicateKey(t *testing.T) {
	m := NewManager(newFakeStore())

	first := NewAnimation(Config{Key: "walk", Frames: testFrames("tex", 0, 1)})
	second := NewAnimation(Config{Key: "walk", Frames: testFrames("tex", 2, 3)})

	if !m.Add("walk", first) {
		t.Fatalf("first add should succeed")
	}
	if m.Add("walk", second) {
		t.Fatalf("second add under the same key should be rejected")
	}

	got, ok := m.Get("walk")
	if !ok || got != first {
		t.Fatalf("expected first animation to survive the duplicate add")
	}
}

func TestManagerCreateIsIdempotent(t *testing.T) {
	m := NewManager(newFakeStore())

	added := 0
	m.Events().OnAdd(func(key string, a *Animation) {
		added++
		if !m.Exists(key) {
			t.Fatalf("add handler should observe the animation already stored")
		}
	})

	a := m.Create(Config{Key: "run", Frames: testFrames("tex", 0, 1, 2)})
	if a == nil {
		t.Fatalf("create should return the new animation")
	}
	b := m.Create(Config{Key: "run", Frames: testFrames("tex", 5)})
	if b != a {
		t.Fatalf("second create should return the existing animation")
	}
	if added != 1 {
		t.Fatalf("expected exactly one add notification, got %d", added)
	}
}

func TestManagerCreateRequiresKey(t *testing.T) {
	m := NewManager(newFakeStore())
	if a := m.Create(Config{Frames: testFrames("tex", 0)}); a != nil {
		t.Fatalf("create without a key should return nil, got %v", a)
	}
	if m.Len() != 0 {
		t.Fatalf("keyless create should not store anything")
	}
}

func TestManagerRemove(t *testing.T) {
	m := NewManager(newFakeStore())
	a := m.Create(Config{Key: "die", Frames: testFrames("tex", 0)})

	removed := 0
	m.Events().OnRemove(func(key string, got *Animation) {
		removed++
		if got != a {
			t.Fatalf("remove handler got wrong animation")
		}
		if !m.Exists(key) {
			t.Fatalf("remove handler should run before the animation detaches")
		}
	})

	got, ok := m.Remove("die")
	if !ok || got != a {
		t.Fatalf("remove should return the detached animation")
	}
	if m.Exists("die") {
		t.Fatalf("animation should be gone after remove")
	}
	if removed != 1 {
		t.Fatalf("expected one remove notification, got %d", removed)
	}

	if _, ok := m.Remove("die"); ok {
		t.Fatalf("removing an unknown key should report absence")
	}
	if removed != 1 {
		t.Fatalf("removing an unknown key should not notify")
	}
}

func TestManagerPauseResumeIdempotence(t *testing.T) {
	m := NewManager(newFakeStore())

	paused, resumed := 0, 0
	m.Events().OnPauseAll(func() { paused++ })
	m.Events().OnResumeAll(func() { resumed++ })

	m.ResumeAll()
	if resumed != 0 {
		t.Fatalf("resume without a prior pause should not notify")
	}

	m.PauseAll()
	m.PauseAll()
	if paused != 1 {
		t.Fatalf("expected one paused notification, got %d", paused)
	}
	if !m.Paused() {
		t.Fatalf("manager should be paused")
	}

	m.ResumeAll()
	m.ResumeAll()
	if resumed != 1 {
		t.Fatalf("expected one resumed notification, got %d", resumed)
	}
	if m.Paused() {
		t.Fatalf("manager should be resumed")
	}
}

func TestManagerKeysInsertionOrder(t *testing.T) {
	m := NewManager(newFakeStore())
	for _, key := range []string{"c", "a", "b"} {
		m.Create(Config{Key: key, Frames: testFrames("tex", 0)})
	}
	m.Remove("a")
	m.Create(Config{Key: "d", Frames: testFrames("tex", 0)})

	want := []string{"c", "b", "d"}
	got := m.Keys()
	if len(got) != len(want) {
		t.Fatalf("expected keys %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected keys %v, got %v", want, got)
		}
	}
}

func TestManagerDestroy(t *testing.T) {
	store := newFakeStore().add("tex", sheetTexture(4))
	m := NewManager(store)
	m.Create(Config{Key: "walk", Frames: testFrames("tex", 0, 1)})

	m.Destroy()

	if m.Len() != 0 {
		t.Fatalf("destroy should clear the registry")
	}
	if frames := m.GenerateFrameNumbers("tex", nil); len(frames) != 0 {
		t.Fatalf("destroyed manager should not generate frames, got %d", len(frames))
	}
}
