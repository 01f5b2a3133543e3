package sway

import (
	"fmt"

	"github.com/caarlos0/env/v11"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// RunConfig configures the window and loop created by Run. LoadRunConfig
// fills it from SWAY_* environment variables.
type RunConfig struct {
	Title     string `env:"SWAY_TITLE" envDefault:"sway"`
	Width     int    `env:"SWAY_WIDTH" envDefault:"640"`
	Height    int    `env:"SWAY_HEIGHT" envDefault:"480"`
	TPS       int    `env:"SWAY_TPS" envDefault:"60"`
	ShowStats bool   `env:"SWAY_SHOW_STATS"`
	Debug     bool   `env:"SWAY_DEBUG"`
}

// LoadRunConfig reads a RunConfig from the environment.
func LoadRunConfig() (RunConfig, error) {
	var cfg RunConfig
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("sway: parse env: %w", err)
	}
	return cfg, nil
}

// Run opens a window and drives stage from ebiten's game loop until the
// window closes or an update hook returns an error.
func Run(stage *Stage, cfg RunConfig) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return fmt.Errorf("sway: invalid window size %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width, cfg.Height)
	if cfg.Debug {
		stage.SetDebugMode(true)
	}
	return ebiten.RunGame(&game{stage: stage, cfg: cfg})
}

// game adapts a Stage to ebiten.Game.
type game struct {
	stage *Stage
	cfg   RunConfig
}

func (g *game) Update() error {
	return g.stage.Update()
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(g.stage.ClearColor.toRGBA())
	if g.stage.drawFn != nil {
		g.stage.drawFn(screen)
	}
	if g.cfg.ShowStats {
		ebitenutil.DebugPrint(screen, statsText(g.stage))
	}
}

func (g *game) Layout(_, _ int) (int, int) {
	return g.cfg.Width, g.cfg.Height
}

func statsText(s *Stage) string {
	return fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nActions: %d",
		ebiten.ActualFPS(), ebiten.ActualTPS(), s.actions.Len())
}
