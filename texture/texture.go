package texture

import (
	"fmt"
	"image"
	"strconv"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/milk9111/animkit/anim"
)

// Frame is one named rectangular region of a texture's source image.
type Frame struct {
	Name    string
	Source  image.Rectangle
	Rotated bool
	Trimmed bool

	sub *ebiten.Image
}

// Texture is a keyed source image plus its ordered frame table. Frames keep
// the order they were added in; that order is what frame generation walks
// when no explicit range is given.
type Texture struct {
	key    string
	image  *ebiten.Image
	frames map[string]*Frame
	names  []string
}

// New creates a texture with no frames. img may be nil for metadata-only
// textures (tests, headless tools).
func New(key string, img *ebiten.Image) *Texture {
	return &Texture{
		key:    key,
		image:  img,
		frames: map[string]*Frame{},
	}
}

// Key returns the texture's store key.
func (t *Texture) Key() string {
	return t.key
}

// Image returns the backing image, which may be nil.
func (t *Texture) Image() *ebiten.Image {
	return t.image
}

// AddFrame registers a named region. Re-adding a name replaces its region
// without changing its position in the enumeration order.
func (t *Texture) AddFrame(name string, source image.Rectangle) *Frame {
	f := &Frame{Name: name, Source: source}
	if _, ok := t.frames[name]; !ok {
		t.names = append(t.names, name)
	}
	t.frames[name] = f
	return f
}

// Has reports whether the texture holds the frame.
func (t *Texture) Has(id anim.FrameID) bool {
	_, ok := t.frames[id.Name()]
	return ok
}

// FrameNames returns the frame names in enumeration order.
func (t *Texture) FrameNames() []string {
	return append([]string(nil), t.names...)
}

// FrameTotal returns the number of frames.
func (t *Texture) FrameTotal() int {
	return len(t.frames)
}

// Frame returns the frame's metadata.
func (t *Texture) Frame(id anim.FrameID) (*Frame, bool) {
	f, ok := t.frames[id.Name()]
	return f, ok
}

// SubImage returns the frame's region of the backing image, sliced lazily and
// cached. Returns nil for unknown frames or metadata-only textures.
func (t *Texture) SubImage(id anim.FrameID) *ebiten.Image {
	f, ok := t.frames[id.Name()]
	if !ok || t.image == nil {
		return nil
	}
	if f.sub == nil {
		f.sub = t.image.SubImage(f.Source).(*ebiten.Image)
	}
	return f.sub
}

// SheetConfig describes a fixed-size grid layout of a sprite sheet.
type SheetConfig struct {
	FrameWidth  int
	FrameHeight int
	FrameCount  int // 0 infers from the sheet size
	Margin      int // pixels before the first frame
	Spacing     int // pixels between frames
}

// FromSheet slices a sprite sheet into numerically named frames, left to
// right, top to bottom.
func FromSheet(key string, img *ebiten.Image, cfg SheetConfig) (*Texture, error) {
	if img == nil {
		return nil, fmt.Errorf("texture: sheet %q has no image", key)
	}
	bounds := img.Bounds()
	t, err := FromGrid(key, bounds.Dx(), bounds.Dy(), cfg)
	if err != nil {
		return nil, err
	}
	t.image = img
	return t, nil
}

// FromGrid builds the frame table FromSheet would produce for a sheet of the
// given pixel size, without an image. Useful for tests and headless tools.
func FromGrid(key string, sheetWidth, sheetHeight int, cfg SheetConfig) (*Texture, error) {
	if cfg.FrameWidth <= 0 || cfg.FrameHeight <= 0 {
		return nil, fmt.Errorf("texture: sheet %q needs a positive frame size", key)
	}

	cols := (sheetWidth - cfg.Margin + cfg.Spacing) / (cfg.FrameWidth + cfg.Spacing)
	rows := (sheetHeight - cfg.Margin + cfg.Spacing) / (cfg.FrameHeight + cfg.Spacing)
	if cols <= 0 || rows <= 0 {
		return nil, fmt.Errorf("texture: sheet %q (%dx%d) is smaller than one %dx%d frame",
			key, sheetWidth, sheetHeight, cfg.FrameWidth, cfg.FrameHeight)
	}

	total := cols * rows
	if cfg.FrameCount > 0 && cfg.FrameCount < total {
		total = cfg.FrameCount
	}

	t := New(key, nil)
	for i := 0; i < total; i++ {
		col := i % cols
		row := i / cols
		x := cfg.Margin + col*(cfg.FrameWidth+cfg.Spacing)
		y := cfg.Margin + row*(cfg.FrameHeight+cfg.Spacing)
		t.AddFrame(strconv.Itoa(i), image.Rect(x, y, x+cfg.FrameWidth, y+cfg.FrameHeight))
	}
	return t, nil
}
