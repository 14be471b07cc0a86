package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/milk9111/animkit/anim"
	"github.com/milk9111/animkit/specs"
	"github.com/milk9111/animkit/texture"
)

// animexport resolves a definition file against a sheet or atlas layout and
// prints the registry's JSON export, without opening a window.
func main() {
	defs := flag.String("defs", "", "definition file in specs/")
	textureKey := flag.String("texture", "demo", "texture key the definitions reference")
	sheetPath := flag.String("sheet", "", "sprite sheet image path (layout only, pixels are not read)")
	frameW := flag.Int("frame-w", 16, "frame width in pixels")
	frameH := flag.Int("frame-h", 16, "frame height in pixels")
	atlasPath := flag.String("atlas", "", "TexturePacker JSON atlas path (instead of -sheet)")
	key := flag.String("key", "", "export a single animation instead of all of them")
	flag.Parse()

	if *defs == "" {
		log.Fatal("animexport: -defs is required")
	}

	store := texture.NewStore()
	switch {
	case *atlasPath != "":
		if _, err := texture.LoadAtlas(store, *textureKey, "", *atlasPath); err != nil {
			log.Fatal(err)
		}
	case *sheetPath != "":
		if _, err := texture.LoadSheetLayout(store, *textureKey, *sheetPath, texture.SheetConfig{
			FrameWidth:  *frameW,
			FrameHeight: *frameH,
		}); err != nil {
			log.Fatal(err)
		}
	default:
		log.Fatal("animexport: -sheet or -atlas is required")
	}

	manager := anim.NewManager(store)
	f, err := specs.LoadSpec[specs.File](*defs)
	if err != nil {
		log.Fatal(err)
	}
	for i, a := range specs.Apply(manager, f) {
		if a == nil {
			log.Printf("animexport: definition %d was rejected", i)
		}
	}

	out, err := json.MarshalIndent(manager.ToJSON(*key), "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Fprintln(os.Stdout, string(out))
}
