package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/pendulum-animation/internal/config"
	"github.com/iburimskiy/pendulum-animation/internal/neon"
	"github.com/iburimskiy/pendulum-animation/internal/scene"
)

// whiteSubImage is the 1x1 fill texture for DrawTriangles; taking the
// center of a 3x3 image dodges bleeding at the texture edge.
var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

func (g *Game) drawVortex(screen *ebiten.Image) {
	for _, d := range g.scene.VortexDots() {
		v := uint8(255 * d.Bright)
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), 1, color.RGBA{R: v, G: v, B: v, A: 255}, false)
	}
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	for _, d := range g.scene.GridDots() {
		r := float32(1)
		if d.Warped {
			r = 2
		}
		vector.DrawFilledCircle(screen, float32(d.X), float32(d.Y), r, neon.GridGray, false)
	}
}

func (g *Game) drawTrail(screen *ebiten.Image) {
	pts := g.scene.TrailPoints()
	if len(pts) < 2 {
		return
	}
	for i := 0; i < len(pts)-1; i++ {
		vector.StrokeLine(screen,
			float32(pts[i].X), float32(pts[i].Y),
			float32(pts[i+1].X), float32(pts[i+1].Y),
			config.TrailWidth, neon.TrailColor(i, len(pts)), false)
	}
}

func (g *Game) drawBeams(screen *ebiten.Image) {
	for _, b := range g.scene.Beams() {
		fillTriangle(screen, b.Apex, b.Left, b.Right, neon.BeamWhite)
	}
}

func (g *Game) drawArm(screen *ebiten.Image) {
	pivot := g.scene.Pivot()
	bob := g.scene.Bob()
	vector.StrokeLine(screen,
		float32(pivot.X), float32(pivot.Y),
		float32(bob.X), float32(bob.Y),
		2, neon.Cyan, false)
}

func (g *Game) drawHexagon(screen *ebiten.Image) {
	hex := g.scene.Hexagon()
	fillPolygon(screen, hex[:], neon.Cyan)
}

func fillTriangle(dst *ebiten.Image, a, b, c scene.Point, clr color.RGBA) {
	fillPolygon(dst, []scene.Point{a, b, c}, clr)
}

// fillPolygon fills a convex polygon with a flat translucent color.
func fillPolygon(dst *ebiten.Image, pts []scene.Point, clr color.RGBA) {
	if len(pts) < 3 {
		return
	}

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	path.Close()

	vs, is := path.AppendVerticesAndIndicesForFilling(nil, nil)
	for i := range vs {
		vs[i].SrcX = 1
		vs[i].SrcY = 1
		// Straight alpha: DrawTrianglesOptions' default color scale mode.
		vs[i].ColorR = float32(clr.R) / 255
		vs[i].ColorG = float32(clr.G) / 255
		vs[i].ColorB = float32(clr.B) / 255
		vs[i].ColorA = float32(clr.A) / 255
	}

	op := &ebiten.DrawTrianglesOptions{FillRule: ebiten.FillRuleNonZero}
	dst.DrawTriangles(vs, is, whiteSubImage, op)
}
