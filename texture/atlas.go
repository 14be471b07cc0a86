package texture

import (
	"bytes"
	"encoding/json"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// atlasData matches the TexturePacker JSON export. The frames field is either
// an object keyed by frame name (hash format) or an array of entries carrying
// a filename (array format).
type atlasData struct {
	Frames json.RawMessage `json:"frames"`
	Meta   atlasMeta       `json:"meta"`
}

type atlasMeta struct {
	Image string    `json:"image"`
	Size  atlasSize `json:"size"`
	Scale string    `json:"scale"`
}

type atlasEntry struct {
	Filename         string     `json:"filename,omitempty"`
	Frame            atlasRect  `json:"frame"`
	Rotated          bool       `json:"rotated"`
	Trimmed          bool       `json:"trimmed"`
	SpriteSourceSize atlasRect  `json:"spriteSourceSize"`
	SourceSize       atlasSize  `json:"sourceSize"`
	Pivot            atlasPoint `json:"pivot"`
}

type atlasRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type atlasSize struct {
	W int `json:"w"`
	H int `json:"h"`
}

type atlasPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// FromAtlasJSON builds a texture from TexturePacker-style atlas JSON, in
// either the hash or the array format. Frame enumeration order follows the
// document order of the frames field. img may be nil for metadata-only use.
func FromAtlasJSON(key string, img *ebiten.Image, data []byte) (*Texture, error) {
	var atlas atlasData
	if err := json.Unmarshal(data, &atlas); err != nil {
		return nil, fmt.Errorf("texture: atlas %q: %w", key, err)
	}
	if len(atlas.Frames) == 0 {
		return nil, fmt.Errorf("texture: atlas %q has no frames field", key)
	}

	t := New(key, img)

	trimmed := bytes.TrimLeft(atlas.Frames, " \t\r\n")
	switch {
	case len(trimmed) > 0 && trimmed[0] == '[':
		var entries []atlasEntry
		if err := json.Unmarshal(atlas.Frames, &entries); err != nil {
			return nil, fmt.Errorf("texture: atlas %q frames: %w", key, err)
		}
		for _, e := range entries {
			addAtlasFrame(t, e.Filename, e)
		}
	case len(trimmed) > 0 && trimmed[0] == '{':
		// Decode token by token so the hash format keeps its document order;
		// unmarshalling into a map would scramble it.
		if err := walkAtlasHash(atlas.Frames, func(name string, e atlasEntry) {
			addAtlasFrame(t, name, e)
		}); err != nil {
			return nil, fmt.Errorf("texture: atlas %q frames: %w", key, err)
		}
	default:
		return nil, fmt.Errorf("texture: atlas %q frames must be an object or an array", key)
	}

	return t, nil
}

func addAtlasFrame(t *Texture, name string, e atlasEntry) {
	if name == "" {
		return
	}
	f := t.AddFrame(name, image.Rect(e.Frame.X, e.Frame.Y, e.Frame.X+e.Frame.W, e.Frame.Y+e.Frame.H))
	f.Rotated = e.Rotated
	f.Trimmed = e.Trimmed
}

func walkAtlasHash(data []byte, visit func(name string, e atlasEntry)) error {
	dec := json.NewDecoder(bytes.NewReader(data))

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("expected object, got %v", tok)
	}

	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return err
		}
		name, ok := tok.(string)
		if !ok {
			return fmt.Errorf("expected frame name, got %v", tok)
		}
		var e atlasEntry
		if err := dec.Decode(&e); err != nil {
			return fmt.Errorf("frame %q: %w", name, err)
		}
		visit(name, e)
	}

	_, err = dec.Token() // closing brace
	return err
}
