package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"golang.org/x/image/colornames"

	"github.com/milk9111/animkit/anim"
	"github.com/milk9111/animkit/script"
	"github.com/milk9111/animkit/specs"
	"github.com/milk9111/animkit/sprite"
	"github.com/milk9111/animkit/texture"
)

const (
	baseWidth  = 640
	baseHeight = 360
	tickMs     = 1000.0 / 60.0
)

type game struct {
	manager *anim.Manager
	sprites []*sprite.Sprite
	watcher *specs.Watcher
	defs    string
	key     string
	frames  int
}

func (g *game) Update() error {
	g.frames++
	g.drainReloads()
	for _, s := range g.sprites {
		s.Update(tickMs)
	}
	return nil
}

func (g *game) drainReloads() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case name, ok := <-g.watcher.Events:
			if !ok {
				return
			}
			log.Printf("animview: reloading %s", name)
			f, err := specs.LoadSpec[specs.File](g.defs)
			if err != nil {
				log.Printf("animview: reload failed: %v", err)
				continue
			}
			specs.Reload(g.manager, f)
			g.manager.Play(g.key, players(g.sprites)...)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("animview: watch error: %v", err)
		default:
			return
		}
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(colornames.Darkslategray)
	for _, s := range g.sprites {
		s.Draw(screen)
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("anims: %d    paused: %v    FPS: %.2f",
		g.manager.Len(), g.manager.Paused(), ebiten.ActualFPS()))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return baseWidth, baseHeight
}

func players(sprites []*sprite.Sprite) []anim.Player {
	out := make([]anim.Player, len(sprites))
	for i, s := range sprites {
		out[i] = s
	}
	return out
}

func main() {
	sheetPath := flag.String("sheet", "", "sprite sheet image path")
	frameW := flag.Int("frame-w", 16, "frame width in pixels")
	frameH := flag.Int("frame-h", 16, "frame height in pixels")
	textureKey := flag.String("texture", "demo", "texture key the definitions reference")
	defs := flag.String("defs", "demo.yaml", "definition file in specs/ (disk copy overrides the embedded one)")
	scenePath := flag.String("scene", "", "tengo scene script in specs/scripts/")
	key := flag.String("key", "walk", "animation to stagger across the actors")
	actors := flag.Int("actors", 4, "number of preview sprites")
	stagger := flag.Float64("stagger", 250, "per-actor stagger delay in ms (negative reverses)")
	watch := flag.Bool("watch", false, "reload definitions when specs/ changes on disk")
	flag.Parse()

	if *sheetPath == "" {
		log.Fatal("animview: -sheet is required")
	}

	store := texture.NewStore()
	if _, err := texture.LoadSheet(store, *textureKey, *sheetPath, texture.SheetConfig{
		FrameWidth:  *frameW,
		FrameHeight: *frameH,
	}); err != nil {
		log.Fatal(err)
	}

	manager := anim.NewManager(store)
	manager.Events().OnAdd(func(key string, a *anim.Animation) {
		log.Printf("animview: added %s (%d frames)", key, a.FrameTotal())
	})

	f, err := specs.LoadSpec[specs.File](*defs)
	if err != nil {
		log.Fatal(err)
	}
	specs.Apply(manager, f)

	g := &game{manager: manager, defs: *defs, key: *key}
	for i := 0; i < *actors; i++ {
		s := sprite.New(manager, store)
		s.X = 32 + float64(i*(*frameW+16))
		s.Y = baseHeight/2 - float64(*frameH)/2
		g.sprites = append(g.sprites, s)
	}

	if *scenePath != "" {
		rt := script.NewRuntime(manager)
		for i, s := range g.sprites {
			rt.RegisterActor(fmt.Sprintf("actor%d", i), s)
		}
		src, err := specs.LoadScript(*scenePath)
		if err != nil {
			log.Fatal(err)
		}
		if err := rt.Run(src); err != nil {
			log.Fatal(err)
		}
	} else {
		manager.StaggerPlay(*key, players(g.sprites), *stagger, true)
	}

	if *watch {
		w, err := specs.NewWatcher("specs")
		if err != nil {
			log.Printf("animview: watch disabled: %v", err)
		} else {
			g.watcher = w
			defer w.Close()
		}
	}

	ebiten.SetWindowSize(baseWidth*2, baseHeight*2)
	ebiten.SetWindowTitle("animview")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
