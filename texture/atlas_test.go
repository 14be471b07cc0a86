package texture

import (
	"image"
	"testing"

	"github.com/milk9111/animkit/anim"
)

const hashAtlas = `{
	"frames": {
		"ruby_0000": {"frame": {"x": 0, "y": 0, "w": 16, "h": 16}, "rotated": false, "trimmed": false},
		"ruby_0001": {"frame": {"x": 16, "y": 0, "w": 16, "h": 16}, "rotated": false, "trimmed": true},
		"ruby_0002": {"frame": {"x": 32, "y": 0, "w": 16, "h": 16}, "rotated": true, "trimmed": false}
	},
	"meta": {"image": "gems.png", "size": {"w": 48, "h": 16}, "scale": "1"}
}`

const arrayAtlas = `{
	"frames": [
		{"filename": "spark3", "frame": {"x": 0, "y": 0, "w": 8, "h": 8}},
		{"filename": "spark1", "frame": {"x": 8, "y": 0, "w": 8, "h": 8}},
		{"filename": "spark2", "frame": {"x": 16, "y": 0, "w": 8, "h": 8}}
	],
	"meta": {"image": "fx.png", "size": {"w": 24, "h": 8}, "scale": "1"}
}`

func TestFromAtlasJSONHashKeepsDocumentOrder(t *testing.T) {
	tex, err := FromAtlasJSON("gems", nil, []byte(hashAtlas))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"ruby_0000", "ruby_0001", "ruby_0002"}
	got := tex.FrameNames()
	if len(got) != len(want) {
		t.Fatalf("expected names %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected names %v, got %v", want, got)
		}
	}

	f, ok := tex.Frame(anim.FrameName("ruby_0001"))
	if !ok {
		t.Fatalf("ruby_0001 should exist")
	}
	if f.Source != image.Rect(16, 0, 32, 16) {
		t.Fatalf("expected rect (16,0)-(32,16), got %v", f.Source)
	}
	if !f.Trimmed {
		t.Fatalf("ruby_0001 should be trimmed")
	}

	f, _ = tex.Frame(anim.FrameName("ruby_0002"))
	if !f.Rotated {
		t.Fatalf("ruby_0002 should be rotated")
	}
}

func TestFromAtlasJSONArrayKeepsEntryOrder(t *testing.T) {
	tex, err := FromAtlasJSON("fx", nil, []byte(arrayAtlas))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := []string{"spark3", "spark1", "spark2"}
	got := tex.FrameNames()
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected names %v, got %v", want, got)
		}
	}
}

func TestFromAtlasJSONRejectsBadData(t *testing.T) {
	cases := []struct {
		name string
		data string
	}{
		{"not_json", `{"frames": [`},
		{"missing_frames", `{"meta": {"image": "x.png"}}`},
		{"frames_wrong_type", `{"frames": 7}`},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if _, err := FromAtlasJSON("bad", nil, []byte(c.data)); err == nil {
				t.Fatalf("expected error for %s", c.name)
			}
		})
	}
}
