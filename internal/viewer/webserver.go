// Package viewer serves the browser front end of the projection demo:
// ECharts renderings of the 3D scene and its 2D camera view, plus a
// small JSON API for projecting points and saving camera presets.
package viewer

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/lenslab-data/cvprimer/internal/db"
	"github.com/lenslab-data/cvprimer/internal/scene"
)

// WebServer handles the HTTP interface for the scene viewer.
type WebServer struct {
	address string
	server  *http.Server
	db      *db.DB
	cube    *scene.Cube
}

// WebServerConfig contains configuration options for the web server.
type WebServerConfig struct {
	Address string
	DB      *db.DB
}

// NewWebServer creates a new web server with the provided configuration.
func NewWebServer(config WebServerConfig) *WebServer {
	ws := &WebServer{
		address: config.Address,
		db:      config.DB,
		cube:    scene.DefaultCube(),
	}

	ws.server = &http.Server{
		Addr:    ws.address,
		Handler: ws.setupRoutes(),
	}

	return ws
}

// Start begins the HTTP server in a goroutine and blocks until the
// context is cancelled, then shuts the server down.
func (ws *WebServer) Start(ctx context.Context) error {
	go func() {
		log.Printf("starting HTTP server on %s", ws.address)
		if err := ws.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("shutting down HTTP server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 1*time.Second)
	defer cancel()

	if err := ws.server.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
		if err := ws.server.Close(); err != nil {
			log.Printf("HTTP server force close error: %v", err)
		}
	}

	return nil
}

// setupRoutes configures the HTTP routes and handlers.
func (ws *WebServer) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	mux.HandleFunc("/", ws.handleDashboard)
	mux.HandleFunc("/healthz", ws.handleHealth)

	mux.HandleFunc("/charts/scene", ws.handleSceneChart)
	mux.HandleFunc("/charts/projected", ws.handleProjectedChart)
	mux.HandleFunc("/charts/delta", ws.handleDeltaChart)

	mux.HandleFunc("/api/project", ws.handleProject)
	mux.HandleFunc("/api/presets", ws.handlePresets)
	mux.HandleFunc("/api/presets/", ws.handlePresetByID)

	return mux
}

func (ws *WebServer) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	fmt.Fprintln(w, "ok")
}

const dashboardHTML = `<!DOCTYPE html>
<html>
<head><title>Projection Demo</title></head>
<body style="font-family: sans-serif; background: #111; color: #eee;">
<h1>Perspective Projection Demo</h1>
<p>Camera position is set with query parameters, e.g.
<code>/charts/projected?cx=2&amp;cy=-4&amp;cz=2</code>.</p>
<ul>
<li><a href="/charts/scene" style="color:#8cf">3D scene (cube + camera frustum)</a></li>
<li><a href="/charts/projected" style="color:#8cf">Camera view (2D projection)</a></li>
<li><a href="/charts/delta" style="color:#8cf">Dirac delta approximations</a></li>
</ul>
<iframe src="/charts/scene" style="width:48%;height:640px;border:0"></iframe>
<iframe src="/charts/projected" style="width:48%;height:640px;border:0"></iframe>
</body>
</html>
`

func (ws *WebServer) handleDashboard(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	_, _ = w.Write([]byte(dashboardHTML))
}

// cameraFromQuery builds a camera from cx/cy/cz query parameters (the
// slider analogue), falling back to the demo defaults, and orients it
// at the cube.
func (ws *WebServer) cameraFromQuery(r *http.Request) *scene.Camera {
	cam := scene.DefaultCamera()
	cam.Position = scene.Vec3{
		queryFloat(r, "cx", cam.Position[0]),
		queryFloat(r, "cy", cam.Position[1]),
		queryFloat(r, "cz", cam.Position[2]),
	}
	cam.LookAt(ws.cube.Center())
	return cam
}
