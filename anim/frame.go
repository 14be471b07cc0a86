package anim

import (
	"encoding/json"
	"fmt"
	"strconv"
)

// FrameID identifies a single frame within a texture, either by name (atlas
// textures) or by numeric index (sprite sheet textures). The zero value is
// index 0.
type FrameID struct {
	name  string
	index int
	named bool
}

// FrameName returns a FrameID for a named atlas frame.
func FrameName(name string) FrameID {
	return FrameID{name: name, named: true}
}

// FrameIndex returns a FrameID for a numeric sheet frame.
func FrameIndex(i int) FrameID {
	return FrameID{index: i}
}

// Name returns the string form used to look the frame up in a texture.
// Index frames use their decimal representation.
func (id FrameID) Name() string {
	if id.named {
		return id.name
	}
	return strconv.Itoa(id.index)
}

// Index returns the numeric form of the id and whether it has one.
func (id FrameID) Index() (int, bool) {
	if id.named {
		return 0, false
	}
	return id.index, true
}

func (id FrameID) MarshalJSON() ([]byte, error) {
	if id.named {
		return json.Marshal(id.name)
	}
	return json.Marshal(id.index)
}

func (id *FrameID) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*id = FrameIndex(n)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("anim: frame id must be a string or an integer: %w", err)
	}
	*id = FrameName(s)
	return nil
}

// Frame references one renderable region of a texture. Frames are plain
// values; the same reference may appear in any number of animations.
type Frame struct {
	TextureKey string  `json:"key"`
	Frame      FrameID `json:"frame"`
	Duration   float64 `json:"duration,omitempty"`
}

// TextureFrames is the per-texture frame lookup capability consumed by the
// frame generators. Implemented by texture.Texture.
type TextureFrames interface {
	Has(id FrameID) bool
	FrameNames() []string
	FrameTotal() int
}

// TextureSource resolves texture keys. Implemented by texture.Store.
type TextureSource interface {
	Exists(key string) bool
	Frames(key string) (TextureFrames, bool)
}
