// Package jetlagebiten runs a stage inside an ebiten window.
package jetlagebiten

import (
	"fmt"
	"image/color"
	"log/slog"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/oliverbestmann/jetlag/gm"
	"github.com/oliverbestmann/jetlag/stage"
)

type WindowConfig struct {
	Title         string
	Width         int
	Height        int
	DisableResize bool

	// Pixels per meter of the world camera.
	Scale float64

	Background color.Color
}

func DefaultWindowConfig() WindowConfig {
	return WindowConfig{
		Title:      "JetLag",
		Width:      800,
		Height:     600,
		Scale:      50,
		Background: color.RGBA{R: 0x20, G: 0x20, B: 0x28, A: 0xff},
	}
}

// Game implements ebiten.Game for a stage.
type Game struct {
	Stage *stage.Stage

	// Camera of the world scene. Hud and overlay are drawn with a camera
	// at the origin of the screen with the same scale.
	Camera *Camera

	// Called once per update before the stage advances.
	OnUpdate func(dt time.Duration)

	// Draw the physics shapes. Toggled with F1.
	Debug bool

	// Draw timings of the stage. Toggled with F2.
	ShowTimings bool

	config     WindowConfig
	screenSize gm.Vec

	// set to a non nil value to exit the game
	exit error
}

func NewGame(stage *stage.Stage, config WindowConfig) *Game {
	return &Game{
		Stage:  stage,
		Camera: NewCamera(config.Scale),
		config: config,
	}
}

// Exit stops the game after the current update.
func (g *Game) Exit(err error) {
	if err == nil {
		err = ebiten.Termination
	}

	g.exit = err
}

func (g *Game) Update() error {
	if g.exit != nil {
		return g.exit
	}

	dt := time.Second / time.Duration(ebiten.TPS())

	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		g.Debug = !g.Debug
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyF2) {
		g.ShowTimings = !g.ShowTimings
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.tap()
	}

	if g.OnUpdate != nil {
		g.OnUpdate(dt)
	}

	g.Stage.Advance(dt)
	g.Camera.Update(float32(dt.Seconds()))

	return g.exit
}

// tap sends a mouse click to the stage. Only the world scene is seen through the camera.
func (g *Game) tap() {
	x, y := ebiten.CursorPosition()
	cursor := gm.Vec{X: float64(x), Y: float64(y)}

	screenPoint := g.hudCamera().ScreenToWorld(cursor, g.screenSize)
	worldPoint := g.Camera.ScreenToWorld(cursor, g.screenSize)

	if !g.Stage.TapPoints(screenPoint, worldPoint) {
		slog.Debug("Tap not handled", slog.String("point", worldPoint.String()))
	}
}

// hudCamera puts the origin of hud and overlay scenes into the top left corner.
func (g *Game) hudCamera() *Camera {
	return &Camera{
		Center: g.screenSize.Mul(0.5 / g.Camera.Scale),
		Scale:  g.Camera.Scale,
	}
}

func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.config.Background)

	if g.Debug {
		DrawWorld(screen, g.Stage.World().World(), g.Camera)

		hudCamera := g.hudCamera()

		DrawWorld(screen, g.Stage.Hud().World(), hudCamera)

		if overlay := g.Stage.Overlay(); overlay != nil {
			DrawWorld(screen, overlay.World(), hudCamera)
		}
	}

	if g.ShowTimings {
		drawTimings(screen, &g.Stage.Stats)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	g.screenSize = gm.Vec{X: float64(outsideWidth), Y: float64(outsideHeight)}
	return outsideWidth, outsideHeight
}

func drawTimings(screen *ebiten.Image, stats *stage.TimingStats) {
	for row, phase := range stats.Phases() {
		t := stats.ByPhase[phase]

		text := fmt.Sprintf("%-8s runs=%5d, latest=%4.2fms, min=%4.2fms, max=%4.2fms, avg=%4.2fms",
			phase,
			t.Count,
			t.Latest.Seconds()*1000,
			t.Min.Seconds()*1000,
			t.Max.Seconds()*1000,
			t.MovingAverage.Seconds()*1000,
		)

		ebitenutil.DebugPrintAt(screen, text, 16, 16+16*row)
	}
}

// Run opens a window and runs the game until the window is closed or the game exits.
func Run(game *Game) error {
	win := game.config

	ebiten.SetWindowTitle(win.Title)
	ebiten.SetWindowSize(win.Width, win.Height)

	if !win.DisableResize {
		ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	}

	var options ebiten.RunGameOptions
	options.SingleThread = true

	slog.Info("Starting game", slog.String("title", win.Title))

	err := ebiten.RunGameWithOptions(game, &options)
	if err == ebiten.Termination {
		return nil
	}

	return err
}
