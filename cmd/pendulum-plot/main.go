// Headless trace tool: steps the scene without a renderer and writes the
// pendulum's angle, velocity, speed and bob path as PNG plots.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/iburimskiy/pendulum-animation/internal/config"
	"github.com/iburimskiy/pendulum-animation/internal/scene"
)

func main() {
	var (
		outDir  = flag.String("out", "plots", "output directory for the PNG plots")
		seconds = flag.Float64("seconds", config.RunSeconds, "simulated duration in seconds")
		seed    = flag.Int64("seed", 1, "vortex random seed")
	)
	flag.Parse()

	sc := scene.New(*seed)
	sc.SetDuration(*seconds)

	var ts, angles, vels, speeds, xs, ys []float64
	for !sc.Done() {
		sc.Advance()
		bob := sc.Bob()
		ts = append(ts, sc.Elapsed())
		angles = append(angles, sc.Angle())
		vels = append(vels, sc.Velocity())
		speeds = append(speeds, sc.Speed())
		xs = append(xs, bob.X)
		// Flip to a y-up axis so the bob hangs below the pivot on paper too.
		ys = append(ys, config.WindowHeight-bob.Y)
	}

	if err := savePlots(*outDir, ts, angles, vels, speeds, xs, ys); err != nil {
		log.Fatalf("plot saving failed: %v", err)
	}
	fmt.Printf("wrote %d-sample traces to %s\n", len(ts), *outDir)
}

func savePlots(outDir string, ts, angles, vels, speeds, xs, ys []float64) error {
	if err := saveLinePlot(outDir, "angle.png", "Pendulum Angle", "time (s)", "angle (rad)", ts, angles); err != nil {
		return err
	}
	if err := saveLinePlot(outDir, "velocity.png", "Angular Velocity", "time (s)", "velocity (rad/frame)", ts, vels); err != nil {
		return err
	}
	if err := saveLinePlot(outDir, "speed.png", "Bob Speed", "time (s)", "speed (px/frame)", ts, speeds); err != nil {
		return err
	}
	return saveLinePlot(outDir, "bob-path.png", "Bob Path", "x (px)", "height (px)", xs, ys)
}

func saveLinePlot(outDir, filename, title, xlabel, ylabel string, xs, ys []float64) error {
	if len(xs) != len(ys) || len(xs) == 0 {
		return fmt.Errorf("plot data invalid for %s", filename)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xlabel
	p.Y.Label.Text = ylabel
	stylePlot(p)

	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.LineStyle.Width = vg.Points(2.0)
	p.Add(line)

	return savePlotPNG(p, 8.0, 6.0, filepath.Join(outDir, filename))
}

func stylePlot(p *plot.Plot) {
	p.Title.TextStyle.Font.Size = vg.Points(18)
	p.Title.Padding = vg.Points(8)

	p.X.Label.TextStyle.Font.Size = vg.Points(14)
	p.Y.Label.TextStyle.Font.Size = vg.Points(14)
	p.X.Padding = vg.Points(10)
	p.Y.Padding = vg.Points(10)

	p.X.Tick.Marker = limitedTicker(8, "%.1f")
	p.Y.Tick.Marker = limitedTicker(8, "%.2f")
}

func limitedTicker(maxLabels int, labelFmt string) plot.Ticker {
	if maxLabels < 2 {
		maxLabels = 2
	}
	return plot.TickerFunc(func(min, max float64) []plot.Tick {
		if min == max {
			return []plot.Tick{{Value: min, Label: fmt.Sprintf(labelFmt, min)}}
		}
		step := (max - min) / float64(maxLabels-1)
		ticks := make([]plot.Tick, 0, maxLabels)
		for i := 0; i < maxLabels; i++ {
			v := min + float64(i)*step
			ticks = append(ticks, plot.Tick{Value: v, Label: fmt.Sprintf(labelFmt, v)})
		}
		return ticks
	})
}

func savePlotPNG(p *plot.Plot, widthIn, heightIn float64, filename string) error {
	if err := os.MkdirAll(filepath.Dir(filename), 0o755); err != nil {
		return fmt.Errorf("cannot create directory: %w", err)
	}

	c := vgimg.NewWith(
		vgimg.UseWH(vg.Length(widthIn)*vg.Inch, vg.Length(heightIn)*vg.Inch),
		vgimg.UseDPI(150),
	)
	p.Draw(draw.New(c))

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("cannot create png: %w", err)
	}
	defer f.Close()

	bw := bufio.NewWriter(f)
	defer bw.Flush()

	pngc := vgimg.PngCanvas{Canvas: c}
	if _, err := pngc.WriteTo(bw); err != nil {
		return fmt.Errorf("cannot write png: %w", err)
	}
	return nil
}
