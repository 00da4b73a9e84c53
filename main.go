package main

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/OpticalFlyer/trellis/config"
	"github.com/OpticalFlyer/trellis/layout"
	"github.com/OpticalFlyer/trellis/ui"
)

const (
	rowHeight = 28
	rowGap    = 6
)

// Trellis implements ebiten.Game interface.
type Trellis struct {
	ui        *ui.Controller
	debug     *ui.Toggle
	debugMode bool
	count     int
}

func (g *Trellis) Update() error {
	// Update UI first to handle any panel interactions
	if err := g.ui.Update(); err != nil {
		return err
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) && !g.ui.IsInteractingWithUI() {
		g.debug.Activate()
	}
	return nil
}

func (g *Trellis) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 0x20, G: 0x24, B: 0x2a, A: 0xff})
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("Count: %d", g.count), 10, screen.Bounds().Dy()-20)

	g.ui.Draw(screen)

	// Draw debug overlay if enabled
	if g.debugMode {
		g.ui.ShowDebugInfo(screen)
	}
}

func (g *Trellis) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ui.UpdateWindowSize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}

// row places a full-width widget below prev inside content.
func row(content, prev layout.Handle) layout.Body {
	if prev == layout.None {
		return layout.Body{
			Size:           [2]layout.Value{layout.Px(0), layout.Px(rowHeight)},
			PositionParent: [2]layout.Handle{content, content},
			SizeParent:     [2]layout.Handle{content, layout.None},
		}
	}
	return layout.Body{
		Position:       [2]layout.Value{layout.Px(0), layout.Px(rowGap)},
		Size:           [2]layout.Value{layout.Px(0), layout.Px(rowHeight)},
		PositionParent: [2]layout.Handle{prev, prev},
		SizeParent:     [2]layout.Handle{content, layout.None},
		Anchor:         layout.Anchor{Child: layout.TopLeft, Parent: layout.BottomLeft},
	}
}

func buildControls(c *ui.Controller, g *Trellis, styles []string) (*ui.Panel, error) {
	panel, err := ui.NewPanel(c, 10, 10, 220, 220, "Controls")
	if err != nil {
		return nil, err
	}
	content := panel.Content()

	inc, err := ui.NewButton(c, row(content, layout.None), "Increment", func() { g.count++ })
	if err != nil {
		return nil, err
	}
	// Holding the button keeps counting after half a second.
	inc.SetRepeat(30, func() { g.count++ })
	panel.AddChild(inc)

	reset, err := ui.NewButton(c, row(content, inc.Body()), "Reset", func() { g.count = 0 })
	if err != nil {
		return nil, err
	}
	panel.AddChild(reset)

	debug := 0
	if g.debugMode {
		debug = 1
	}
	dbg, err := ui.NewToggle(c, row(content, reset.Body()), []string{"Debug off", "Debug on"}, debug,
		func(state int) { g.debugMode = state == 1 })
	if err != nil {
		return nil, err
	}
	panel.AddChild(dbg)
	g.debug = dbg

	prev := dbg.Body()
	if len(styles) > 1 {
		style, err := ui.NewToggle(c, row(content, prev), styles, 0,
			func(state int) { c.SetStyle(styles[state]) })
		if err != nil {
			return nil, err
		}
		c.SetStyle(styles[0])
		panel.AddChild(style)
		prev = style.Body()
	}

	lock, err := ui.NewToggle(c, row(content, prev), []string{"Reset unlocked", "Reset locked"}, 0,
		func(state int) { reset.SetEnabled(state == 0) })
	if err != nil {
		return nil, err
	}
	panel.AddChild(lock)
	return panel, nil
}

func main() {
	cfg, err := config.LoadOptional(".")
	if err != nil {
		log.Fatal(err)
	}
	palette := cfg.Palette()

	uiController := ui.NewController(ui.NewEbitenInput(), palette, cfg.Window.Width, cfg.Window.Height)
	app := &Trellis{
		ui:        uiController,
		debugMode: cfg.Debug,
	}

	// Create main control panel
	panel, err := buildControls(uiController, app, palette.Styles())
	if err != nil {
		log.Fatal(err)
	}
	uiController.AddPanel(panel)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetTPS(cfg.Window.TPS)
	ebiten.SetVsyncEnabled(*cfg.Window.Vsync)

	if err := ebiten.RunGame(app); err != nil {
		log.Fatal(err)
	}
}
