package anim

import "testing"

func TestNewAnimationDerivesRateAndDuration(t *testing.T) {
	cases := []struct {
		name         string
		cfg          Config
		wantRate     float64
		wantDuration float64
	}{
		{
			name:         "defaults_to_24fps",
			cfg:          Config{Key: "a", Frames: testFrames("tex", 0, 1, 2, 3, 4, 5)},
			wantRate:     24,
			wantDuration: 250,
		},
		{
			name:         "duration_derives_rate",
			cfg:          Config{Key: "a", Frames: testFrames("tex", 0, 1, 2, 3), Duration: 1000},
			wantRate:     4,
			wantDuration: 1000,
		},
		{
			name:         "rate_derives_duration",
			cfg:          Config{Key: "a", Frames: testFrames("tex", 0, 1), FrameRate: 10},
			wantRate:     10,
			wantDuration: 200,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			a := NewAnimation(c.cfg)
			if a.FrameRate != c.wantRate {
				t.Fatalf("expected frame rate %v, got %v", c.wantRate, a.FrameRate)
			}
			if a.Duration != c.wantDuration {
				t.Fatalf("expected duration %v, got %v", c.wantDuration, a.Duration)
			}
			if !a.SkipMissedFrames {
				t.Fatalf("skipMissedFrames should default to true")
			}
		})
	}
}

func TestNewAnimationEmptyFrames(t *testing.T) {
	a := NewAnimation(Config{Key: "empty"})
	if a.FrameTotal() != 0 {
		t.Fatalf("expected no frames, got %d", a.FrameTotal())
	}
	if a.FrameRate != 24 {
		t.Fatalf("expected default frame rate, got %v", a.FrameRate)
	}
}
