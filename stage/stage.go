package stage

import (
	"log/slog"
	"time"

	"github.com/oliverbestmann/jetlag"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/physics"
)

type Config struct {
	// Length of one fixed simulation step.
	StepInterval time.Duration

	// Upper limit of fixed steps per frame.
	MaxStepsPerFrame int

	Physics physics.Config
}

func DefaultConfig() Config {
	return Config{
		StepInterval:     time.Second / 60,
		MaxStepsPerFrame: 5,
		Physics:          physics.DefaultConfig(),
	}
}

// Stage owns the scenes of a running game and advances them in fixed steps.
type Stage struct {
	config Config
	time   jetlag.FixedTime

	world   *Scene
	hud     *Scene
	overlay *Scene

	// Time spent in the ticks of the world scene.
	Stats TimingStats
}

func NewStage(config Config) *Stage {
	stage := &Stage{
		config: config,
		time:   jetlag.NewFixedTime(config.StepInterval, config.MaxStepsPerFrame),
	}

	stage.Reset()

	return stage
}

func (s *Stage) Config() Config {
	return s.config
}

func (s *Stage) World() *Scene {
	return s.world
}

func (s *Stage) Hud() *Scene {
	return s.hud
}

// Overlay returns the current overlay scene, or nil.
func (s *Stage) Overlay() *Scene {
	return s.overlay
}

// Elapsed returns the time simulated by the fixed steps.
func (s *Stage) Elapsed() time.Duration {
	return s.time.Elapsed
}

// Advance adds the time passed since the last frame and runs as many fixed
// steps as fit in. While an overlay is shown, only the overlay is ticked.
// Returns the number of steps run.
func (s *Stage) Advance(delta time.Duration) int {
	steps := s.time.Accumulate(delta)

	for range steps {
		if s.overlay != nil {
			s.overlay.Tick(s.time.StepInterval)
			continue
		}

		s.world.Tick(s.time.StepInterval)
		s.hud.Tick(s.time.StepInterval)
	}

	return steps
}

// Tap delivers a tap to the first actor at the point that handles it. The
// overlay is asked first, then the hud, then the world.
func (s *Stage) Tap(point gm.Vec) bool {
	return s.TapPoints(point, point)
}

// TapPoints is like Tap, but the point is given in the coordinates of the
// screen for overlay and hud, and in the coordinates of the world for the world.
func (s *Stage) TapPoints(screenPoint, worldPoint gm.Vec) bool {
	targets := []struct {
		scene *Scene
		point gm.Vec
	}{
		{s.overlay, screenPoint},
		{s.hud, screenPoint},
		{s.world, worldPoint},
	}

	for _, target := range targets {
		scene, point := target.scene, target.point
		if scene == nil {
			continue
		}

		for _, actor := range scene.ActorsAt(point) {
			if actor.Tap == nil {
				continue
			}

			if actor.Tap(actor, point) {
				slog.Debug("Tapped actor",
					slog.Any("actor", actor),
					slog.String("scene", scene.kind.String()))

				return true
			}
		}
	}

	return false
}

// SetOverlay replaces the current overlay with a fresh scene and pauses the world.
func (s *Stage) SetOverlay() *Scene {
	s.ClearOverlay()

	s.overlay = NewScene(SceneOverlay, s.config.Physics)
	return s.overlay
}

// ClearOverlay destroys the overlay, if any. The world continues with the next step.
func (s *Stage) ClearOverlay() {
	if s.overlay == nil {
		return
	}

	s.overlay.Destroy()
	s.overlay = nil
}

// Reset destroys all scenes and starts with an empty world and hud.
func (s *Stage) Reset() {
	s.ClearOverlay()

	if s.world != nil {
		s.world.Destroy()
	}

	if s.hud != nil {
		s.hud.Destroy()
	}

	s.world = NewScene(SceneWorld, s.config.Physics)
	s.world.stats = &s.Stats

	s.hud = NewScene(SceneHud, s.config.Physics)
}
