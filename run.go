package glint

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// RunConfig configures the window opened by Run.
type RunConfig struct {
	Title   string
	Width   int
	Height  int
	ShowFPS bool
}

// game adapts a Page to ebiten.Game.
type game struct {
	page    *Page
	surface *EbitenSurface
	fps     *fpsWidget
	cfg     RunConfig
}

func (g *game) Update() error {
	dt := time.Second / time.Duration(ebiten.TPS())
	g.page.Update(dt)
	if g.fps != nil {
		g.fps.update(dt.Seconds())
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.surface.SetImage(screen)
	g.page.Draw(g.surface)
	if g.fps != nil {
		g.fps.draw(screen)
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

// Run opens a window and drives page with ebiten until the window closes.
// Zero Width or Height fall back to the page's configured size.
func Run(page *Page, cfg RunConfig) error {
	if cfg.Width <= 0 {
		cfg.Width = page.cfg.Width
	}
	if cfg.Height <= 0 {
		cfg.Height = page.cfg.Height
	}
	g := &game{
		page:    page,
		surface: NewEbitenSurface(nil, Color{}),
		cfg:     cfg,
	}
	if cfg.ShowFPS {
		g.fps = newFPSWidget()
	}
	page.live = true
	defer func() { page.live = false }()

	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	return ebiten.RunGame(g)
}
