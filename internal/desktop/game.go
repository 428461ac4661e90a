// Package desktop hosts a session in an ebiten window: both widgets side by
// side, mouse dragging, keyboard shortcuts and a PNG export.
package desktop

import (
	"errors"
	"fmt"
	"os"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"
	"github.com/tobyhogan/seasons-viewer-tool/internal/desktop/scene"
	"github.com/tobyhogan/seasons-viewer-tool/internal/interaction"
	"github.com/tobyhogan/seasons-viewer-tool/internal/log"
	"github.com/tobyhogan/seasons-viewer-tool/internal/panel"
	"github.com/tobyhogan/seasons-viewer-tool/internal/render"
	"github.com/tobyhogan/seasons-viewer-tool/internal/session"
)

const statusDuration = 4 * time.Second

var keyActions = map[ebiten.Key]scene.Action{
	ebiten.KeyT: scene.ActionToday,
	ebiten.KeyN: scene.ActionNow,
	ebiten.KeyM: scene.ActionCycleMode,
	ebiten.KeyD: scene.ActionToggleScheme,
	ebiten.KeyV: scene.ActionToggleVariant,
}

// Game implements ebiten.Game over one session.
type Game struct {
	session *session.Session
	layout  scene.Layout
	router  *scene.Router
	canvas  *Canvas
	frame   *render.Recorder
	stale   bool
	info    panel.Info
	dirty   atomic.Bool
	cancel  func()

	status      string
	statusUntil time.Time
}

// NewGame builds the window contents for s.
func NewGame(s *session.Session) *Game {
	info := s.Info()
	l := scene.NewLayout(s, scene.Rows(info))
	g := &Game{
		session: s,
		layout:  l,
		router:  scene.NewRouter(l, s),
		canvas:  NewCanvas(),
		frame:   render.NewRecorder(),
		stale:   true,
		info:    info,
	}
	g.cancel = s.Subscribe(func(session.Event) { g.dirty.Store(true) })
	return g
}

// Size is the window size in pixels.
func (g *Game) Size() (int, int) { return g.layout.Width, g.layout.Height }

func (g *Game) Update() error {
	x, y := ebiten.CursorPosition()
	g.router.Mouse(float64(x), float64(y),
		ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft),
		inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft))
	ebiten.SetCursorShape(cursorShape(g.router.Cursor()))

	for key, action := range keyActions {
		if inpututil.IsKeyJustPressed(key) {
			action.Apply(g.session)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		g.setStatus(g.saveDialog())
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	if g.dirty.Swap(false) {
		g.info = g.session.Info()
		g.stale = true
	}
	if g.status != "" && time.Now().After(g.statusUntil) {
		g.status = ""
		g.stale = true
	}
	return nil
}

// Draw replays the recorded scene, repainting it only after a change.
func (g *Game) Draw(screen *ebiten.Image) {
	if g.stale {
		g.frame.Reset()
		scene.Paint(g.frame, g.session, g.layout, g.info, g.status)
		g.stale = false
	}
	g.canvas.Begin(screen)
	if err := g.frame.Replay(g.canvas); err != nil {
		log.Errorf("error drawing frame: %v", err)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.layout.Width, g.layout.Height
}

// Close stops listening to the session.
func (g *Game) Close() {
	if g.cancel != nil {
		g.cancel()
	}
}

func (g *Game) setStatus(msg string) {
	if msg == "" {
		return
	}
	g.status = msg
	g.statusUntil = time.Now().Add(statusDuration)
	g.stale = true
}

// saveDialog asks for a file name and writes the scene there as PNG.
func (g *Game) saveDialog() string {
	filename, err := zenity.SelectFileSave(
		zenity.Title("Save Seasons Image"),
		zenity.Filename("seasons.png"),
		zenity.ConfirmOverwrite(),
		zenity.FileFilters{{
			Name:     "PNG image",
			Patterns: []string{"*.png"},
		}},
	)
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return ""
		}
		log.Errorf("save dialog: %v", err)
		return "Save failed: " + err.Error()
	}

	if err := g.SavePNG(filename); err != nil {
		log.Errorf("error saving %s: %v", filename, err)
		return "Save failed: " + err.Error()
	}
	log.Infof("saved %s", filename)
	return "Saved " + filename
}

// SavePNG writes the current scene to filename.
func (g *Game) SavePNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("error creating %s: %w", filename, err)
	}
	err = render.Encode(f, render.FormatPNG, g.layout.Width, g.layout.Height, func(r render.Renderer) {
		scene.Paint(r, g.session, g.layout, g.info, "")
	})
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

func cursorShape(c interaction.Cursor) ebiten.CursorShapeType {
	switch c {
	case interaction.CursorPointer:
		return ebiten.CursorShapePointer
	case interaction.CursorGrabbing:
		return ebiten.CursorShapeMove
	}
	return ebiten.CursorShapeDefault
}

// Run opens the window and blocks until it is closed.
func Run(s *session.Session, title string) error {
	g := NewGame(s)
	defer g.Close()

	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
