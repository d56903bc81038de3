package viewer

import (
	"bytes"
	"fmt"
	"io"
	"net/http"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/lenslab-data/cvprimer/internal/dirac"
	"github.com/lenslab-data/cvprimer/internal/httputil"
	"github.com/lenslab-data/cvprimer/internal/scene"
)

// handleSceneChart renders the 3D scene: cube vertices and edges plus
// the camera frustum, as an ECharts Line3D/Scatter3D page.
func (ws *WebServer) handleSceneChart(w http.ResponseWriter, r *http.Request) {
	cam := ws.cameraFromQuery(r)

	line := charts.NewLine3D()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "3D Scene", Theme: "dark", Width: "900px", Height: "900px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "3D Scene",
			Subtitle: fmt.Sprintf("camera at (%.1f, %.1f, %.1f)", cam.Position[0], cam.Position[1], cam.Position[2]),
		}),
		charts.WithXAxis3DOpts(opts.XAxis3D{Name: "X", Type: "value"}),
		charts.WithYAxis3DOpts(opts.YAxis3D{Name: "Y", Type: "value"}),
		charts.WithZAxis3DOpts(opts.ZAxis3D{Name: "Z", Type: "value"}),
	)

	// Cube edges, one short series each.
	verts := ws.cube.Vertices()
	for i, e := range ws.cube.Edges() {
		a, b := verts[e[0]], verts[e[1]]
		line.AddSeries(fmt.Sprintf("edge-%d", i), []opts.Chart3DData{
			{Value: []interface{}{a[0], a[1], a[2]}},
			{Value: []interface{}{b[0], b[1], b[2]}},
		}, charts.WithLineStyleOpts(opts.LineStyle{Color: "#e05050", Width: 2}))
	}

	// Camera frustum: apex to each base corner, then the base loop.
	if fv, err := cam.Vertices(); err == nil {
		for i := 1; i <= 4; i++ {
			line.AddSeries(fmt.Sprintf("frustum-%d", i), []opts.Chart3DData{
				{Value: []interface{}{fv[0][0], fv[0][1], fv[0][2]}},
				{Value: []interface{}{fv[i][0], fv[i][1], fv[i][2]}},
			}, charts.WithLineStyleOpts(opts.LineStyle{Color: "#50c050", Width: 2}))
		}
		base := []int{1, 2, 3, 4, 1}
		pts := make([]opts.Chart3DData, 0, len(base))
		for _, i := range base {
			pts = append(pts, opts.Chart3DData{Value: []interface{}{fv[i][0], fv[i][1], fv[i][2]}})
		}
		line.AddSeries("frustum-base", pts,
			charts.WithLineStyleOpts(opts.LineStyle{Color: "#50c050", Width: 2}))
	}

	ws.renderChart(w, line)
}

// handleProjectedChart renders the cube as seen through the camera: the
// 2D projection onto the 640x480 image plane. The y axis is flipped so
// the plot matches image coordinates (origin top-left).
func (ws *WebServer) handleProjectedChart(w http.ResponseWriter, r *http.Request) {
	cam := ws.cameraFromQuery(r)
	K := scene.DefaultIntrinsics()

	projected, err := cam.ProjectCube(ws.cube, K)
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("project cube: %v", err))
		return
	}

	scatter := charts.NewScatter()
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Camera View", Theme: "dark", Width: "900px", Height: "720px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Camera View (2D Projection)",
			Subtitle: fmt.Sprintf("camera at (%.1f, %.1f, %.1f)", cam.Position[0], cam.Position[1], cam.Position[2]),
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Type: "value", Min: 0, Max: scene.FrameWidth, Name: "x (px)"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "value", Min: 0, Max: scene.FrameHeight, Name: "y (px)"}),
	)

	data := make([]opts.ScatterData, 0, len(projected))
	for _, p := range projected {
		// Flip y for image-style coordinates.
		data = append(data, opts.ScatterData{Value: []interface{}{p[0], scene.FrameHeight - p[1]}})
	}
	scatter.AddSeries("vertices", data, charts.WithScatterChartOpts(opts.ScatterChart{SymbolSize: 8}))

	// Projected edges as line series over the same axes.
	line := charts.NewLine()
	for i, e := range ws.cube.Edges() {
		a, b := projected[e[0]], projected[e[1]]
		line.AddSeries(fmt.Sprintf("edge-%d", i), []opts.LineData{
			{Value: []interface{}{a[0], scene.FrameHeight - a[1]}},
			{Value: []interface{}{b[0], scene.FrameHeight - b[1]}},
		}, charts.WithLineStyleOpts(opts.LineStyle{Color: "#e05050"}))
	}
	scatter.Overlap(line)

	ws.renderChart(w, scatter)
}

// deltaChartNs are the resolutions plotted by the delta chart.
var deltaChartNs = []float64{1, 2, 5, 10}

// handleDeltaChart renders the rectangle approximations of the delta
// function for a few resolutions.
func (ws *WebServer) handleDeltaChart(w http.ResponseWriter, r *http.Request) {
	const (
		samples = 401
		span    = 1.5 // plot over [-span, span]
	)

	xs := make([]string, samples)
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithInitializationOpts(opts.Initialization{
			PageTitle: "Delta Approximations", Theme: "dark", Width: "900px", Height: "600px",
		}),
		charts.WithTitleOpts(opts.Title{
			Title:    "Dirac delta approximations",
			Subtitle: "delta_n(x) = n for |x| < 1/(2n), else 0",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithYAxisOpts(opts.YAxis{Name: "delta_n(x)"}),
	)

	for i := 0; i < samples; i++ {
		x := -span + 2*span*float64(i)/float64(samples-1)
		xs[i] = fmt.Sprintf("%.3f", x)
	}
	line.SetXAxis(xs)

	for _, n := range deltaChartNs {
		ys := make([]opts.LineData, samples)
		for i := 0; i < samples; i++ {
			x := -span + 2*span*float64(i)/float64(samples-1)
			v, err := dirac.DeltaN(x, n)
			if err != nil {
				httputil.InternalServerError(w, fmt.Sprintf("delta chart: %v", err))
				return
			}
			ys[i] = opts.LineData{Value: v}
		}
		line.AddSeries(fmt.Sprintf("n=%g", n), ys)
	}

	ws.renderChart(w, line)
}

// renderable is the subset of the ECharts chart API the handlers need.
type renderable interface {
	Render(w io.Writer) error
}

func (ws *WebServer) renderChart(w http.ResponseWriter, chart renderable) {
	var buf bytes.Buffer
	if err := chart.Render(&buf); err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("failed to render chart: %v", err))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write(buf.Bytes())
}
