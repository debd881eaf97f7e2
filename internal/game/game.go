package game

import (
	"errors"
	"fmt"
	"image"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/iburimskiy/molnar/internal/canvas"
	"github.com/iburimskiy/molnar/internal/config"
	"github.com/iburimskiy/molnar/internal/sketch"
	"github.com/rs/zerolog"
)

// Game hosts a sketch in an ebiten window. The sketch draws onto an
// offscreen raster which is then uploaded and presented.
type Game struct {
	sketch sketch.Sketch
	size   config.Canvas
	raster *canvas.Raster
	rng    *rand.Rand
	log    zerolog.Logger

	// state
	loop   bool
	frames int
	frame  *ebiten.Image
}

// New runs the sketch's size and setup hooks.
func New(s sketch.Sketch, rng *rand.Rand, log zerolog.Logger) (*Game, error) {
	size := s.Settings()
	r, err := canvas.NewRaster(size.Width, size.Height)
	if err != nil {
		return nil, fmt.Errorf("create canvas: %w", err)
	}
	g := &Game{
		sketch: s,
		size:   size,
		raster: r,
		rng:    rng,
		log:    log,
		loop:   true,
	}
	s.Setup(r, g)
	log.Debug().Int("width", size.Width).Int("height", size.Height).Bool("loop", g.loop).Msg("sketch set up")
	return g, nil
}

// NoLoop implements sketch.Host.
func (g *Game) NoLoop() { g.loop = false }

// Frames reports how many times the sketch's draw hook has run.
func (g *Game) Frames() int { return g.frames }

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if img, ok := g.render(); ok {
		g.upload(img)
	}
	if g.frame != nil {
		screen.DrawImage(g.frame, nil)
	}
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.size.Width, g.size.Height
}

// render runs the draw hook unless looping is off and a frame already exists.
func (g *Game) render() (image.Image, bool) {
	if !g.loop && g.frames > 0 {
		return nil, false
	}
	g.sketch.Draw(g.raster, g.rng)
	g.frames++
	if g.frames == 1 {
		g.log.Info().Bool("loop", g.loop).Msg("first frame rendered")
	}
	return g.raster.Image(), true
}

func (g *Game) upload(img image.Image) {
	if rgba, ok := img.(*image.RGBA); ok && g.frame != nil {
		g.frame.WritePixels(rgba.Pix)
		return
	}
	g.frame = ebiten.NewImageFromImage(img)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(g.size.Width, g.size.Height)
	ebiten.SetWindowTitle(title)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
