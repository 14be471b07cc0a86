package texture

import (
	"image"
	"testing"

	"github.com/milk9111/animkit/anim"
)

func TestFromGridSlicing(t *testing.T) {
	cases := []struct {
		name       string
		sheetW     int
		sheetH     int
		cfg        SheetConfig
		wantTotal  int
		checkIndex int
		wantRect   image.Rectangle
	}{
		{
			name:      "plain_grid",
			sheetW:    64, sheetH: 32,
			cfg:       SheetConfig{FrameWidth: 16, FrameHeight: 16},
			wantTotal: 8, checkIndex: 5,
			// frame 5 is column 1, row 1 of a 4-wide grid
			wantRect: image.Rect(16, 16, 32, 32),
		},
		{
			name:      "frame_count_caps_total",
			sheetW:    64, sheetH: 32,
			cfg:       SheetConfig{FrameWidth: 16, FrameHeight: 16, FrameCount: 3},
			wantTotal: 3, checkIndex: 2,
			wantRect: image.Rect(32, 0, 48, 16),
		},
		{
			name:      "margin_and_spacing",
			sheetW:    70, sheetH: 20,
			cfg:       SheetConfig{FrameWidth: 16, FrameHeight: 16, Margin: 2, Spacing: 1},
			wantTotal: 4, checkIndex: 1,
			wantRect: image.Rect(19, 2, 35, 18),
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tex, err := FromGrid("sheet", c.sheetW, c.sheetH, c.cfg)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tex.FrameTotal() != c.wantTotal {
				t.Fatalf("expected %d frames, got %d", c.wantTotal, tex.FrameTotal())
			}
			f, ok := tex.Frame(anim.FrameIndex(c.checkIndex))
			if !ok {
				t.Fatalf("frame %d should exist", c.checkIndex)
			}
			if f.Source != c.wantRect {
				t.Fatalf("frame %d: expected rect %v, got %v", c.checkIndex, c.wantRect, f.Source)
			}
		})
	}
}

func TestFromGridRejectsBadLayouts(t *testing.T) {
	if _, err := FromGrid("sheet", 64, 32, SheetConfig{}); err == nil {
		t.Fatalf("zero frame size should error")
	}
	if _, err := FromGrid("sheet", 8, 8, SheetConfig{FrameWidth: 16, FrameHeight: 16}); err == nil {
		t.Fatalf("sheet smaller than one frame should error")
	}
}

func TestTextureLookups(t *testing.T) {
	tex, err := FromGrid("hero", 48, 16, SheetConfig{FrameWidth: 16, FrameHeight: 16})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !tex.Has(anim.FrameIndex(0)) || !tex.Has(anim.FrameIndex(2)) {
		t.Fatalf("expected frames 0 and 2 to exist")
	}
	if tex.Has(anim.FrameIndex(3)) {
		t.Fatalf("frame 3 should not exist on a 3-frame sheet")
	}
	if tex.Has(anim.FrameName("walk")) {
		t.Fatalf("sheet textures have no named frames")
	}

	names := tex.FrameNames()
	want := []string{"0", "1", "2"}
	if len(names) != len(want) {
		t.Fatalf("expected names %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected names %v, got %v", want, names)
		}
	}
}

func TestStoreAddAndLookup(t *testing.T) {
	s := NewStore()

	tex, _ := FromGrid("hero", 32, 32, SheetConfig{FrameWidth: 16, FrameHeight: 16})
	if err := s.Add(tex); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Add(tex); err == nil {
		t.Fatalf("duplicate key should be rejected")
	}

	if !s.Exists("hero") {
		t.Fatalf("hero should exist")
	}
	if _, ok := s.Get("villain"); ok {
		t.Fatalf("villain should not exist")
	}

	frames, ok := s.Frames("hero")
	if !ok || frames.FrameTotal() != 4 {
		t.Fatalf("expected the hero frame table")
	}

	if _, ok := s.Remove("hero"); !ok {
		t.Fatalf("remove should return the texture")
	}
	if s.Exists("hero") {
		t.Fatalf("hero should be gone after remove")
	}
}
