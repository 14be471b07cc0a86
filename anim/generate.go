package anim

import (
	"fmt"
	"strconv"
	"strings"
)

// GenerateFrameNamesConfig narrows GenerateFrameNames. The zero value walks
// the single frame named by Prefix+Start+Suffix; set End for a range or
// Frames for an explicit list. Out, when set, is appended to, so repeated
// calls can build one cross-texture sequence.
type GenerateFrameNamesConfig struct {
	Prefix  string
	Start   int
	End     int
	Suffix  string
	ZeroPad int
	Frames  []any // explicit names or indices; overrides Start/End
	Out     []Frame
}

// GenerateFrameNames builds an ordered frame sequence from a texture's named
// frames. A nil cfg enumerates every frame the texture knows, in the
// texture's own order. Frames the texture does not have are skipped silently,
// and an unknown texture key returns cfg.Out unchanged.
func (m *Manager) GenerateFrameNames(textureKey string, cfg *GenerateFrameNamesConfig) []Frame {
	var out []Frame
	if cfg != nil {
		out = cfg.Out
	}
	if m.textures == nil {
		return out
	}
	tex, ok := m.textures.Frames(textureKey)
	if !ok {
		return out
	}

	if cfg == nil {
		for _, name := range tex.FrameNames() {
			out = append(out, Frame{TextureKey: textureKey, Frame: FrameName(name)})
		}
		return out
	}

	appendName := func(name string) {
		id := FrameName(name)
		if tex.Has(id) {
			out = append(out, Frame{TextureKey: textureKey, Frame: id})
		}
	}

	if len(cfg.Frames) > 0 {
		for _, raw := range cfg.Frames {
			appendName(cfg.Prefix + pad(frameString(raw), cfg.ZeroPad) + cfg.Suffix)
		}
		return out
	}

	diff := -1
	if cfg.Start < cfg.End {
		diff = 1
	}
	for i := cfg.Start; ; i += diff {
		appendName(cfg.Prefix + pad(strconv.Itoa(i), cfg.ZeroPad) + cfg.Suffix)
		if i == cfg.End {
			break
		}
	}
	return out
}

// GenerateFrameNumbersConfig narrows GenerateFrameNumbers. An End below zero
// means "through the texture's total frame count". First, when set, prepends
// that frame before everything else.
type GenerateFrameNumbersConfig struct {
	Start  int
	End    int
	First  *int
	Frames []int // explicit indices; overrides Start/End
	Out    []Frame
}

// GenerateFrameNumbers builds an ordered frame sequence from a texture's
// numeric frames. A nil cfg enumerates from 0 through the texture's total.
// Missing frames are skipped silently; an unknown texture key returns cfg.Out
// unchanged.
func (m *Manager) GenerateFrameNumbers(textureKey string, cfg *GenerateFrameNumbersConfig) []Frame {
	var out []Frame
	if cfg != nil {
		out = cfg.Out
	}
	if m.textures == nil {
		return out
	}
	tex, ok := m.textures.Frames(textureKey)
	if !ok {
		return out
	}

	start, end := 0, -1
	var frames []int
	var first *int
	if cfg != nil {
		start, end, frames, first = cfg.Start, cfg.End, cfg.Frames, cfg.First
	}

	appendIndex := func(i int) {
		id := FrameIndex(i)
		if tex.Has(id) {
			out = append(out, Frame{TextureKey: textureKey, Frame: id})
		}
	}

	if first != nil {
		appendIndex(*first)
	}

	if len(frames) > 0 {
		for _, i := range frames {
			appendIndex(i)
		}
		return out
	}

	if end < 0 {
		end = tex.FrameTotal()
	}
	diff := -1
	if start < end {
		diff = 1
	}
	for i := start; ; i += diff {
		appendIndex(i)
		if i == end {
			break
		}
	}
	return out
}

// pad left-pads s with zeroes to width digits. A width of 0 disables padding.
func pad(s string, width int) string {
	if width <= len(s) {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}

func frameString(raw any) string {
	switch v := raw.(type) {
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		// json numbers decode as float64
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(raw)
	}
}
