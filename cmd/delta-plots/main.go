// Command delta-plots renders PNG figures for the Dirac delta teaching
// demos: the rectangle approximations for a set of resolutions and the
// sifting-estimate error as the resolution grows. Each run writes its
// figures plus a manifest.json into a timestamped output directory.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/lenslab-data/cvprimer/internal/dirac"
)

// Config holds the run parameters.
type Config struct {
	OutputDir string
	Ns        []float64
	A         float64
	Fn        string
}

// Manifest records what a run produced.
type Manifest struct {
	RunID     string    `json:"run_id"`
	Timestamp time.Time `json:"timestamp"`
	Ns        []float64 `json:"ns"`
	A         float64   `json:"a"`
	Fn        string    `json:"fn"`
	Files     []string  `json:"files"`
}

// integrands are the functions selectable with -fn.
var integrands = map[string]func(float64) float64{
	"square": func(x float64) float64 { return x * x },
	"sin":    math.Sin,
	"exp":    math.Exp,
}

func main() {
	var (
		outDir = flag.String("out", "plots", "output directory for figures")
		nList  = flag.String("n", "1,2,5,10", "comma-separated delta resolutions to plot")
		a      = flag.Float64("a", 2.0, "sifting evaluation point")
		fnName = flag.String("fn", "square", "integrand for the sifting figure (square, sin, exp)")
	)
	flag.Parse()

	cfg := Config{OutputDir: *outDir, A: *a, Fn: *fnName}
	for _, s := range strings.Split(*nList, ",") {
		n, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil || n <= 0 {
			log.Fatalf("invalid resolution %q: must be a positive number", s)
		}
		cfg.Ns = append(cfg.Ns, n)
	}
	if _, ok := integrands[cfg.Fn]; !ok {
		log.Fatalf("unknown integrand %q (want square, sin, or exp)", cfg.Fn)
	}

	manifest, err := run(cfg)
	if err != nil {
		log.Fatalf("delta-plots: %v", err)
	}
	log.Printf("run %s: wrote %d files to %s", manifest.RunID, len(manifest.Files), cfg.OutputDir)
}

func run(cfg Config) (*Manifest, error) {
	runDir := filepath.Join(cfg.OutputDir, time.Now().Format("20060102_150405"))
	if err := os.MkdirAll(runDir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	manifest := &Manifest{
		RunID:     uuid.New().String(),
		Timestamp: time.Now(),
		Ns:        cfg.Ns,
		A:         cfg.A,
		Fn:        cfg.Fn,
	}

	deltaFile := filepath.Join(runDir, "delta_approximations.png")
	if err := plotDeltaCurves(cfg.Ns, deltaFile); err != nil {
		return nil, err
	}
	manifest.Files = append(manifest.Files, deltaFile)

	siftFile := filepath.Join(runDir, "sifting_error.png")
	if err := plotSiftingError(integrands[cfg.Fn], cfg.A, siftFile); err != nil {
		return nil, err
	}
	manifest.Files = append(manifest.Files, siftFile)

	manifestFile := filepath.Join(runDir, "manifest.json")
	f, err := os.Create(manifestFile)
	if err != nil {
		return nil, fmt.Errorf("create manifest: %w", err)
	}
	defer f.Close()
	enc := json.NewEncoder(f)
	enc.SetIndent("", "  ")
	if err := enc.Encode(manifest); err != nil {
		return nil, fmt.Errorf("write manifest: %w", err)
	}

	return manifest, nil
}

// plotDeltaCurves draws delta_n over [-1.5, 1.5] for each resolution.
func plotDeltaCurves(ns []float64, file string) error {
	p := plot.New()
	p.Title.Text = "Rectangle approximations of the Dirac delta"
	p.X.Label.Text = "x"
	p.Y.Label.Text = "delta_n(x)"

	const samples = 601
	colors := palette(len(ns))
	for i, n := range ns {
		pts := make(plotter.XYs, 0, samples)
		for j := 0; j < samples; j++ {
			x := -1.5 + 3.0*float64(j)/float64(samples-1)
			v, err := dirac.DeltaN(x, n)
			if err != nil {
				return err
			}
			pts = append(pts, plotter.XY{X: x, Y: v})
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return err
		}
		line.Color = colors[i]
		line.Width = vg.Points(1)
		p.Add(line)
		p.Legend.Add(fmt.Sprintf("n=%g", n), line)
	}

	p.Legend.Top = true
	if err := p.Save(8*vg.Inch, 5*vg.Inch, file); err != nil {
		return fmt.Errorf("save delta plot: %w", err)
	}
	return nil
}

// plotSiftingError draws |SiftN(f, a, n) - f(a)| against log10(n),
// showing the estimate converging and then degrading once the sample
// window hits floating-point resolution.
func plotSiftingError(f func(float64) float64, a float64, file string) error {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Sifting-property error at a=%g", a)
	p.X.Label.Text = "log10(n)"
	p.Y.Label.Text = "|estimate - f(a)|"

	want := f(a)
	pts := make(plotter.XYs, 0, 12)
	for exp := 1; exp <= 12; exp++ {
		n := math.Pow(10, float64(exp))
		got, err := dirac.SiftN(f, a, n)
		if err != nil {
			return err
		}
		pts = append(pts, plotter.XY{X: float64(exp), Y: math.Abs(got - want)})
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return err
	}
	line.Color = color.RGBA{R: 0x50, G: 0xa0, B: 0xe0, A: 0xff}
	line.Width = vg.Points(1)
	p.Add(line)

	scatterPts, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(scatterPts)

	if err := p.Save(8*vg.Inch, 5*vg.Inch, file); err != nil {
		return fmt.Errorf("save sifting plot: %w", err)
	}
	return nil
}

// palette returns n distinct line colors.
func palette(n int) []color.Color {
	out := make([]color.Color, n)
	base := []color.Color{
		color.RGBA{R: 0xe0, G: 0x50, B: 0x50, A: 0xff},
		color.RGBA{R: 0x50, G: 0xa0, B: 0xe0, A: 0xff},
		color.RGBA{R: 0x50, G: 0xc0, B: 0x50, A: 0xff},
		color.RGBA{R: 0xe0, G: 0xa0, B: 0x30, A: 0xff},
		color.RGBA{R: 0xa0, G: 0x60, B: 0xe0, A: 0xff},
	}
	for i := range out {
		out[i] = base[i%len(base)]
	}
	return out
}
