package game

import (
	"fmt"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/iburimskiy/pendulum-animation/internal/config"
	"github.com/iburimskiy/pendulum-animation/internal/hum"
	"github.com/iburimskiy/pendulum-animation/internal/scene"
)

// Game drives the scene at the fixed tick rate and composites the layers
// back-to-front each frame. The hum is optional; nil means audio never
// came up and the animation runs silently.
type Game struct {
	scene *scene.Scene
	hum   *hum.Hum
}

func New(sc *scene.Scene, h *hum.Hum) *Game {
	return &Game{scene: sc, hum: h}
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	g.scene.Advance()
	if g.hum != nil {
		g.hum.SetSpeed(g.scene.Speed())
	}

	if g.scene.Done() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	// Back to front: vortex, grid, trail, beams, arm, hexagon.
	g.drawVortex(screen)
	g.drawGrid(screen)
	g.drawTrail(screen)
	g.drawBeams(screen)
	g.drawArm(screen)
	g.drawHexagon(screen)

	remaining := time.Duration(g.scene.Remaining() * float64(time.Second))
	status := fmt.Sprintf("%s left - Esc/Q to quit", formatDuration(remaining))
	ebitenutil.DebugPrintAt(screen, status, 12, 12)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}
