package script

import (
	"fmt"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"

	"github.com/milk9111/animkit/anim"
)

// Runtime executes tengo scene scripts against an animation manager, so
// playback choreography can live in data files next to the definitions.
//
// Scripts see a single `anims` module:
//
//	anims.create({key: "walk", texture: "hero", start: 0, end: 3, repeat: -1})
//	anims.stagger_play("walk", 1000, true)
//	anims.play("walk", "torch_left", "torch_right")
type Runtime struct {
	manager    *anim.Manager
	actors     map[string]anim.Player
	actorOrder []string
}

// NewRuntime creates a runtime bound to the manager.
func NewRuntime(m *anim.Manager) *Runtime {
	return &Runtime{
		manager: m,
		actors:  map[string]anim.Player{},
	}
}

// RegisterActor makes an actor addressable from scripts by name. Batch calls
// walk actors in registration order.
func (r *Runtime) RegisterActor(name string, p anim.Player) {
	if name == "" || p == nil {
		return
	}
	if _, ok := r.actors[name]; !ok {
		r.actorOrder = append(r.actorOrder, name)
	}
	r.actors[name] = p
}

// Run compiles and executes a scene script.
func (r *Runtime) Run(src []byte) error {
	s := tengo.NewScript(src)
	if err := s.Add("anims", &tengo.ImmutableMap{Value: r.module()}); err != nil {
		return fmt.Errorf("script: bind anims module: %w", err)
	}
	s.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	if _, err := s.Run(); err != nil {
		return fmt.Errorf("script: run: %w", err)
	}
	return nil
}

func (r *Runtime) module() map[string]tengo.Object {
	return map[string]tengo.Object{
		"create":         &tengo.UserFunction{Name: "create", Value: r.createFn},
		"exists":         &tengo.UserFunction{Name: "exists", Value: r.existsFn},
		"remove":         &tengo.UserFunction{Name: "remove", Value: r.removeFn},
		"play":           &tengo.UserFunction{Name: "play", Value: r.playFn},
		"stagger_play":   &tengo.UserFunction{Name: "stagger_play", Value: r.staggerPlayFn},
		"pause_all":      &tengo.UserFunction{Name: "pause_all", Value: r.pauseAllFn},
		"resume_all":     &tengo.UserFunction{Name: "resume_all", Value: r.resumeAllFn},
		"set_time_scale": &tengo.UserFunction{Name: "set_time_scale", Value: r.setTimeScaleFn},
	}
}

func (r *Runtime) createFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	fields, ok := mapValue(args[0])
	if !ok {
		return nil, fmt.Errorf("create expects a map argument")
	}

	cfg := anim.Config{
		Key:            stringField(fields, "key"),
		Type:           "frame",
		FrameRate:      floatField(fields, "frame_rate"),
		Duration:       floatField(fields, "duration"),
		Delay:          floatField(fields, "delay"),
		Repeat:         intField(fields, "repeat"),
		RepeatDelay:    floatField(fields, "repeat_delay"),
		Yoyo:           boolField(fields, "yoyo"),
		ShowOnStart:    boolField(fields, "show_on_start"),
		HideOnComplete: boolField(fields, "hide_on_complete"),
	}
	cfg.Frames = r.framesFromFields(fields)

	if a := r.manager.Create(cfg); a == nil {
		return tengo.FalseValue, nil
	}
	return tengo.TrueValue, nil
}

// framesFromFields resolves the script's frame selection fields. A prefix,
// suffix or zero_pad switches to named-frame generation; otherwise numeric
// frames are generated.
func (r *Runtime) framesFromFields(fields map[string]tengo.Object) []anim.Frame {
	textureKey := stringField(fields, "texture")
	if textureKey == "" {
		return nil
	}

	named := hasField(fields, "prefix") || hasField(fields, "suffix") || hasField(fields, "zero_pad")
	if named {
		cfg := &anim.GenerateFrameNamesConfig{
			Prefix:  stringField(fields, "prefix"),
			Start:   intField(fields, "start"),
			End:     intField(fields, "end"),
			Suffix:  stringField(fields, "suffix"),
			ZeroPad: intField(fields, "zero_pad"),
		}
		for _, o := range arrayField(fields, "frames") {
			cfg.Frames = append(cfg.Frames, objectToAny(o))
		}
		return r.manager.GenerateFrameNames(textureKey, cfg)
	}

	cfg := &anim.GenerateFrameNumbersConfig{
		Start: intField(fields, "start"),
		End:   -1,
	}
	if hasField(fields, "end") {
		cfg.End = intField(fields, "end")
	}
	if hasField(fields, "first") {
		first := intField(fields, "first")
		cfg.First = &first
	}
	for _, o := range arrayField(fields, "frames") {
		if n, ok := objectAsInt(o); ok {
			cfg.Frames = append(cfg.Frames, n)
		}
	}
	return r.manager.GenerateFrameNumbers(textureKey, cfg)
}

func (r *Runtime) existsFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	if r.manager.Exists(objectAsString(args[0])) {
		return tengo.TrueValue, nil
	}
	return tengo.FalseValue, nil
}

func (r *Runtime) removeFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	if _, ok := r.manager.Remove(objectAsString(args[0])); ok {
		return tengo.TrueValue, nil
	}
	return tengo.FalseValue, nil
}

// play(key) plays on every registered actor; play(key, names...) plays on
// the named ones.
func (r *Runtime) playFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	key := objectAsString(args[0])

	var actors []anim.Player
	if len(args) == 1 {
		actors = r.allActors()
	} else {
		for _, arg := range args[1:] {
			name := objectAsString(arg)
			p, ok := r.actors[name]
			if !ok {
				return nil, fmt.Errorf("play: unknown actor: %s", name)
			}
			actors = append(actors, p)
		}
	}

	r.manager.Play(key, actors...)
	return tengo.UndefinedValue, nil
}

// stagger_play(key, stagger_ms, stagger_first?) plays across every registered
// actor in registration order.
func (r *Runtime) staggerPlayFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) < 2 || len(args) > 3 {
		return nil, tengo.ErrWrongNumArguments
	}
	key := objectAsString(args[0])
	stagger, ok := objectAsFloat(args[1])
	if !ok {
		return nil, fmt.Errorf("stagger_play: stagger must be a number")
	}
	staggerFirst := true
	if len(args) == 3 {
		staggerFirst = !args[2].IsFalsy()
	}

	r.manager.StaggerPlay(key, r.allActors(), stagger, staggerFirst)
	return tengo.UndefinedValue, nil
}

func (r *Runtime) pauseAllFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	r.manager.PauseAll()
	return tengo.UndefinedValue, nil
}

func (r *Runtime) resumeAllFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 0 {
		return nil, tengo.ErrWrongNumArguments
	}
	r.manager.ResumeAll()
	return tengo.UndefinedValue, nil
}

func (r *Runtime) setTimeScaleFn(args ...tengo.Object) (tengo.Object, error) {
	if len(args) != 1 {
		return nil, tengo.ErrWrongNumArguments
	}
	scale, ok := objectAsFloat(args[0])
	if !ok {
		return nil, fmt.Errorf("set_time_scale: scale must be a number")
	}
	r.manager.SetTimeScale(scale)
	return tengo.UndefinedValue, nil
}

func (r *Runtime) allActors() []anim.Player {
	out := make([]anim.Player, 0, len(r.actorOrder))
	for _, name := range r.actorOrder {
		out = append(out, r.actors[name])
	}
	return out
}

func mapValue(o tengo.Object) (map[string]tengo.Object, bool) {
	switch v := o.(type) {
	case *tengo.Map:
		return v.Value, true
	case *tengo.ImmutableMap:
		return v.Value, true
	default:
		return nil, false
	}
}

func hasField(fields map[string]tengo.Object, name string) bool {
	_, ok := fields[name]
	return ok
}

func stringField(fields map[string]tengo.Object, name string) string {
	o, ok := fields[name]
	if !ok {
		return ""
	}
	return objectAsString(o)
}

func intField(fields map[string]tengo.Object, name string) int {
	o, ok := fields[name]
	if !ok {
		return 0
	}
	n, _ := objectAsInt(o)
	return n
}

func floatField(fields map[string]tengo.Object, name string) float64 {
	o, ok := fields[name]
	if !ok {
		return 0
	}
	f, _ := objectAsFloat(o)
	return f
}

func boolField(fields map[string]tengo.Object, name string) bool {
	o, ok := fields[name]
	if !ok {
		return false
	}
	return !o.IsFalsy()
}

func objectAsString(o tengo.Object) string {
	if s, ok := o.(*tengo.String); ok {
		return s.Value
	}
	return ""
}

func objectAsInt(o tengo.Object) (int, bool) {
	switch v := o.(type) {
	case *tengo.Int:
		return int(v.Value), true
	case *tengo.Float:
		return int(v.Value), true
	default:
		return 0, false
	}
}

func objectAsFloat(o tengo.Object) (float64, bool) {
	switch v := o.(type) {
	case *tengo.Float:
		return v.Value, true
	case *tengo.Int:
		return float64(v.Value), true
	default:
		return 0, false
	}
}

func objectToAny(o tengo.Object) any {
	switch v := o.(type) {
	case *tengo.String:
		return v.Value
	case *tengo.Int:
		return int(v.Value)
	case *tengo.Float:
		return v.Value
	default:
		return o.String()
	}
}

func arrayField(fields map[string]tengo.Object, name string) []tengo.Object {
	o, ok := fields[name]
	if !ok {
		return nil
	}
	switch v := o.(type) {
	case *tengo.Array:
		return v.Value
	case *tengo.ImmutableArray:
		return v.Value
	default:
		return nil
	}
}
