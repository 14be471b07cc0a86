package texture

import (
	"bytes"
	"fmt"
	"image"
	_ "image/png"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// LoadImage decodes an image file from disk into an ebiten image.
func LoadImage(path string) (*ebiten.Image, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	img, _, err := image.Decode(bytes.NewReader(b))
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	return ebiten.NewImageFromImage(img), nil
}

// LoadSheet loads a sprite sheet from disk, slices it, and registers it.
func LoadSheet(store *Store, key, path string, cfg SheetConfig) (*Texture, error) {
	img, err := LoadImage(path)
	if err != nil {
		return nil, err
	}
	t, err := FromSheet(key, img, cfg)
	if err != nil {
		return nil, err
	}
	if err := store.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadSheetLayout builds the frame table for a sheet on disk without creating
// an image, so headless tools can generate frames outside a game loop.
func LoadSheetLayout(store *Store, key, path string, cfg SheetConfig) (*Texture, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", path, err)
	}
	defer f.Close()

	imgCfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return nil, fmt.Errorf("texture: decode %s: %w", path, err)
	}
	t, err := FromGrid(key, imgCfg.Width, imgCfg.Height, cfg)
	if err != nil {
		return nil, err
	}
	if err := store.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}

// LoadAtlas loads an atlas image and its JSON metadata from disk and
// registers the texture. imagePath may be empty for metadata-only use.
func LoadAtlas(store *Store, key, imagePath, dataPath string) (*Texture, error) {
	var img *ebiten.Image
	if imagePath != "" {
		var err error
		img, err = LoadImage(imagePath)
		if err != nil {
			return nil, err
		}
	}
	data, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("texture: read %s: %w", dataPath, err)
	}
	t, err := FromAtlasJSON(key, img, data)
	if err != nil {
		return nil, err
	}
	if err := store.Add(t); err != nil {
		return nil, err
	}
	return t, nil
}
