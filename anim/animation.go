package anim

// Config describes an animation to create. It doubles as the per-definition
// interchange form used by ToJSON/FromJSON.
type Config struct {
	Key              string  `json:"key"`
	Type             string  `json:"type,omitempty"`
	Frames           []Frame `json:"frames"`
	FrameRate        float64 `json:"frameRate,omitempty"`
	Duration         float64 `json:"duration,omitempty"`
	Delay            float64 `json:"delay,omitempty"`
	Repeat           int     `json:"repeat,omitempty"`
	RepeatDelay      float64 `json:"repeatDelay,omitempty"`
	Yoyo             bool    `json:"yoyo,omitempty"`
	ShowOnStart      bool    `json:"showOnStart,omitempty"`
	HideOnComplete   bool    `json:"hideOnComplete,omitempty"`
	SkipMissedFrames *bool   `json:"skipMissedFrames,omitempty"`
}

// Animation is a named, ordered sequence of frame references plus the
// playback parameters actors apply when it plays. Animations are built by
// Manager.Create and shared by every actor playing them; the frame sequence
// must not be mutated after creation.
type Animation struct {
	Key              string
	Frames           []Frame
	FrameRate        float64
	Duration         float64 // total run in ms
	MsPerFrame       float64
	Delay            float64
	Repeat           int // -1 repeats forever
	RepeatDelay      float64
	Yoyo             bool
	ShowOnStart      bool
	HideOnComplete   bool
	SkipMissedFrames bool
}

const defaultFrameRate = 24

// NewAnimation builds an animation from its config, deriving whichever of
// frame rate and duration the config leaves unset.
func NewAnimation(cfg Config) *Animation {
	a := &Animation{
		Key:              cfg.Key,
		Frames:           cfg.Frames,
		FrameRate:        cfg.FrameRate,
		Duration:         cfg.Duration,
		Delay:            cfg.Delay,
		Repeat:           cfg.Repeat,
		RepeatDelay:      cfg.RepeatDelay,
		Yoyo:             cfg.Yoyo,
		ShowOnStart:      cfg.ShowOnStart,
		HideOnComplete:   cfg.HideOnComplete,
		SkipMissedFrames: true,
	}
	if cfg.SkipMissedFrames != nil {
		a.SkipMissedFrames = *cfg.SkipMissedFrames
	}

	frames := float64(len(a.Frames))
	switch {
	case a.FrameRate == 0 && a.Duration == 0:
		a.FrameRate = defaultFrameRate
	case a.FrameRate == 0 && frames > 0:
		a.FrameRate = frames / (a.Duration / 1000)
	}
	if a.FrameRate > 0 {
		a.MsPerFrame = 1000 / a.FrameRate
		if a.Duration == 0 {
			a.Duration = frames * a.MsPerFrame
		}
	}
	return a
}

// FrameTotal returns the number of frames in the sequence.
func (a *Animation) FrameTotal() int {
	return len(a.Frames)
}

func (a *Animation) toConfig() Config {
	skip := a.SkipMissedFrames
	return Config{
		Key:              a.Key,
		Type:             "frame",
		Frames:           a.Frames,
		FrameRate:        a.FrameRate,
		Duration:         a.Duration,
		Delay:            a.Delay,
		Repeat:           a.Repeat,
		RepeatDelay:      a.RepeatDelay,
		Yoyo:             a.Yoyo,
		ShowOnStart:      a.ShowOnStart,
		HideOnComplete:   a.HideOnComplete,
		SkipMissedFrames: &skip,
	}
}
