package specs

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/milk9111/animkit/anim"
)

// File is the root of an animation definition file.
type File struct {
	Animations []AnimationSpec `yaml:"animations"`
}

// AnimationSpec describes one animation definition in YAML.
type AnimationSpec struct {
	Key            string     `yaml:"key"`
	Texture        string     `yaml:"texture"`
	FrameRate      float64    `yaml:"frame_rate"`
	Duration       float64    `yaml:"duration"`
	Delay          float64    `yaml:"delay"`
	Repeat         int        `yaml:"repeat"`
	RepeatDelay    float64    `yaml:"repeat_delay"`
	Yoyo           bool       `yaml:"yoyo"`
	ShowOnStart    bool       `yaml:"show_on_start"`
	HideOnComplete bool       `yaml:"hide_on_complete"`
	Frames         FramesSpec `yaml:"frames"`
}

// FramesSpec selects the animation's frames. Exactly one of Names, Numbers or
// List is expected; when none is set, every frame of the texture is used in
// the texture's own order.
type FramesSpec struct {
	Names   *NamesRangeSpec   `yaml:"names"`
	Numbers *NumbersRangeSpec `yaml:"numbers"`
	List    []string          `yaml:"list"`
}

// NamesRangeSpec generates named frames from a prefix/suffix numeric range.
type NamesRangeSpec struct {
	Prefix  string `yaml:"prefix"`
	Start   int    `yaml:"start"`
	End     int    `yaml:"end"`
	Suffix  string `yaml:"suffix"`
	ZeroPad int    `yaml:"zero_pad"`
}

// NumbersRangeSpec generates numeric frames from a range or an explicit list.
type NumbersRangeSpec struct {
	Start  int   `yaml:"start"`
	End    *int  `yaml:"end"` // nil walks through the texture's total
	First  *int  `yaml:"first"`
	Frames []int `yaml:"frames"`
}

// LoadSpec loads and unmarshals a definition file by name.
func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("specs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("specs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

// Config resolves the spec's frame selection against the manager's texture
// source and returns the config to create.
func (s AnimationSpec) Config(m *anim.Manager) anim.Config {
	return anim.Config{
		Key:            s.Key,
		Type:           "frame",
		Frames:         s.frames(m),
		FrameRate:      s.FrameRate,
		Duration:       s.Duration,
		Delay:          s.Delay,
		Repeat:         s.Repeat,
		RepeatDelay:    s.RepeatDelay,
		Yoyo:           s.Yoyo,
		ShowOnStart:    s.ShowOnStart,
		HideOnComplete: s.HideOnComplete,
	}
}

func (s AnimationSpec) frames(m *anim.Manager) []anim.Frame {
	switch {
	case len(s.Frames.List) > 0:
		raw := make([]any, 0, len(s.Frames.List))
		for _, name := range s.Frames.List {
			raw = append(raw, name)
		}
		return m.GenerateFrameNames(s.Texture, &anim.GenerateFrameNamesConfig{Frames: raw})
	case s.Frames.Names != nil:
		n := s.Frames.Names
		return m.GenerateFrameNames(s.Texture, &anim.GenerateFrameNamesConfig{
			Prefix:  n.Prefix,
			Start:   n.Start,
			End:     n.End,
			Suffix:  n.Suffix,
			ZeroPad: n.ZeroPad,
		})
	case s.Frames.Numbers != nil:
		n := s.Frames.Numbers
		cfg := &anim.GenerateFrameNumbersConfig{
			Start:  n.Start,
			End:    -1,
			First:  n.First,
			Frames: n.Frames,
		}
		if n.End != nil {
			cfg.End = *n.End
		}
		return m.GenerateFrameNumbers(s.Texture, cfg)
	default:
		return m.GenerateFrameNames(s.Texture, nil)
	}
}

// Apply creates every animation in the file, in order, returning the Create
// results.
func Apply(m *anim.Manager, f File) []*anim.Animation {
	out := make([]*anim.Animation, 0, len(f.Animations))
	for _, s := range f.Animations {
		out = append(out, m.Create(s.Config(m)))
	}
	return out
}

// Reload re-creates every animation in the file, replacing definitions that
// already exist. Used by watchers when a definition file changes on disk.
func Reload(m *anim.Manager, f File) []*anim.Animation {
	for _, s := range f.Animations {
		if s.Key != "" {
			m.Remove(s.Key)
		}
	}
	return Apply(m, f)
}
