package sprite

import (
	"log"
	"math"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animkit/anim"
	"github.com/milk9111/animkit/texture"
)

// Sprite is an actor that plays registry animations and draws the current
// frame. It implements anim.Player, so it can be handed straight to
// Manager.Play and Manager.StaggerPlay.
type Sprite struct {
	manager  *anim.Manager
	textures *texture.Store

	X, Y    float64
	Visible bool

	current     *anim.Animation
	frameIndex  int
	forward     bool
	playing     bool
	accMs       float64
	waitMs      float64
	pendingKey  string
	repeatsLeft int
}

// New creates a visible sprite at the origin. textures may be nil for actors
// that are never drawn.
func New(manager *anim.Manager, textures *texture.Store) *Sprite {
	return &Sprite{
		manager:  manager,
		textures: textures,
		Visible:  true,
	}
}

// Play starts the animation registered under key immediately, honoring the
// animation's own start delay. Unknown keys are a logged no-op.
func (s *Sprite) Play(key string) {
	a, ok := s.manager.Get(key)
	if !ok {
		log.Printf("sprite: unknown animation: %s", key)
		return
	}
	s.current = a
	s.pendingKey = ""
	s.frameIndex = 0
	s.forward = true
	s.accMs = 0
	s.waitMs = a.Delay
	s.repeatsLeft = a.Repeat
	s.playing = true
	if a.ShowOnStart {
		s.Visible = true
	}
}

// DelayedPlay schedules Play(key) after delayMs of animated time. A second
// call replaces any pending one.
func (s *Sprite) DelayedPlay(delayMs float64, key string) {
	if delayMs <= 0 {
		s.Play(key)
		return
	}
	s.pendingKey = key
	s.waitMs = delayMs
	s.playing = false
}

// Update advances playback by deltaMs of wall time, scaled by the manager's
// global time scale. It does nothing while the manager is paused.
func (s *Sprite) Update(deltaMs float64) {
	if s.manager == nil || s.manager.Paused() {
		return
	}
	deltaMs *= s.manager.TimeScale()

	if s.pendingKey != "" {
		s.waitMs -= deltaMs
		if s.waitMs > 0 {
			return
		}
		carry := -s.waitMs
		key := s.pendingKey
		s.pendingKey = ""
		s.Play(key)
		deltaMs = carry
	}

	if !s.playing || s.current == nil {
		return
	}

	if s.waitMs > 0 {
		s.waitMs -= deltaMs
		if s.waitMs > 0 {
			return
		}
		deltaMs = -s.waitMs
		s.waitMs = 0
	}

	ms := s.current.MsPerFrame
	if ms <= 0 || s.current.FrameTotal() == 0 {
		return
	}

	s.accMs += deltaMs
	if s.current.SkipMissedFrames {
		for s.accMs >= ms && s.playing && s.waitMs == 0 {
			s.accMs -= ms
			s.advance()
		}
	} else if s.accMs >= ms {
		s.accMs = math.Mod(s.accMs, ms)
		s.advance()
	}
}

func (s *Sprite) advance() {
	last := s.current.FrameTotal() - 1

	if s.forward {
		if s.frameIndex < last {
			s.frameIndex++
			return
		}
		if s.current.Yoyo && last > 0 {
			s.forward = false
			s.frameIndex--
			return
		}
	} else {
		if s.frameIndex > 0 {
			s.frameIndex--
			return
		}
	}

	s.completePass()
}

func (s *Sprite) completePass() {
	if s.repeatsLeft != 0 {
		if s.repeatsLeft > 0 {
			s.repeatsLeft--
		}
		s.frameIndex = 0
		s.forward = true
		s.waitMs = s.current.RepeatDelay
		return
	}
	s.playing = false
	if s.current.HideOnComplete {
		s.Visible = false
	}
}

// IsPlaying reports whether an animation is advancing or scheduled.
func (s *Sprite) IsPlaying() bool {
	return s.playing || s.pendingKey != ""
}

// CurrentKey returns the key of the animation being played, if any.
func (s *Sprite) CurrentKey() (string, bool) {
	if s.current == nil {
		return "", false
	}
	return s.current.Key, true
}

// CurrentFrame returns the frame reference the sprite is showing.
func (s *Sprite) CurrentFrame() (anim.Frame, bool) {
	if s.current == nil || s.current.FrameTotal() == 0 {
		return anim.Frame{}, false
	}
	i := s.frameIndex
	if i > s.current.FrameTotal()-1 {
		i = s.current.FrameTotal() - 1
	}
	return s.current.Frames[i], true
}

// Draw renders the current frame at the sprite's position.
func (s *Sprite) Draw(screen *ebiten.Image) {
	if !s.Visible || s.textures == nil {
		return
	}
	frame, ok := s.CurrentFrame()
	if !ok {
		return
	}
	tex, ok := s.textures.Get(frame.TextureKey)
	if !ok {
		return
	}
	img := tex.SubImage(frame.Frame)
	if img == nil {
		return
	}
	op := &ebiten.DrawImageOptions{}
	op.Filter = ebiten.FilterNearest
	op.GeoM.Translate(s.X, s.Y)
	screen.DrawImage(img, op)
}
