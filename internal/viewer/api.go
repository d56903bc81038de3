package viewer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/lenslab-data/cvprimer/internal/db"
	"github.com/lenslab-data/cvprimer/internal/httputil"
	"github.com/lenslab-data/cvprimer/internal/scene"
)

// projectRequest is the body of POST /api/project.
type projectRequest struct {
	Position *scene.Vec3 `json:"position"`
	Target   *scene.Vec3 `json:"target,omitempty"`
}

// projectResponse carries the projected cube for one camera placement.
type projectResponse struct {
	Position scene.Vec3    `json:"position"`
	Target   scene.Vec3    `json:"target"`
	Vertices [8][2]float64 `json:"vertices"`
	Edges    [12][2]int    `json:"edges"`
}

// handleProject projects the demo cube through a camera placed at the
// posted position, looking at the posted target (default: cube centre).
func (ws *WebServer) handleProject(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		httputil.MethodNotAllowed(w)
		return
	}

	var req projectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
		return
	}
	if req.Position == nil {
		httputil.BadRequest(w, "position is required")
		return
	}

	target := ws.cube.Center()
	if req.Target != nil {
		target = *req.Target
	}

	cam := scene.DefaultCamera()
	cam.Position = *req.Position
	cam.LookAt(target)

	vertices, err := cam.ProjectCube(ws.cube, scene.DefaultIntrinsics())
	if err != nil {
		httputil.InternalServerError(w, fmt.Sprintf("project cube: %v", err))
		return
	}

	httputil.WriteJSON(w, http.StatusOK, projectResponse{
		Position: cam.Position,
		Target:   target,
		Vertices: vertices,
		Edges:    ws.cube.Edges(),
	})
}

// handlePresets lists saved camera presets (GET) or saves a new one
// (POST).
func (ws *WebServer) handlePresets(w http.ResponseWriter, r *http.Request) {
	if ws.db == nil {
		httputil.NotFound(w, "preset store not configured")
		return
	}

	switch r.Method {
	case http.MethodGet:
		presets, err := ws.db.ListPresets()
		if err != nil {
			httputil.InternalServerError(w, fmt.Sprintf("list presets: %v", err))
			return
		}
		if presets == nil {
			presets = []*db.Preset{}
		}
		httputil.WriteJSON(w, http.StatusOK, presets)

	case http.MethodPost:
		var preset db.Preset
		if err := json.NewDecoder(r.Body).Decode(&preset); err != nil {
			httputil.BadRequest(w, fmt.Sprintf("invalid request body: %v", err))
			return
		}
		if preset.Name == "" {
			httputil.BadRequest(w, "name is required")
			return
		}
		if err := ws.db.InsertPreset(&preset); err != nil {
			httputil.InternalServerError(w, fmt.Sprintf("insert preset: %v", err))
			return
		}
		httputil.WriteJSON(w, http.StatusCreated, &preset)

	default:
		httputil.MethodNotAllowed(w)
	}
}

// handlePresetByID fetches (GET) or deletes (DELETE) a single preset by
// ID.
func (ws *WebServer) handlePresetByID(w http.ResponseWriter, r *http.Request) {
	if ws.db == nil {
		httputil.NotFound(w, "preset store not configured")
		return
	}

	id := strings.TrimPrefix(r.URL.Path, "/api/presets/")
	if id == "" || strings.Contains(id, "/") {
		httputil.NotFound(w, "preset not found")
		return
	}

	switch r.Method {
	case http.MethodGet:
		preset, err := ws.db.GetPreset(id)
		if err != nil {
			httputil.NotFound(w, err.Error())
			return
		}
		httputil.WriteJSON(w, http.StatusOK, preset)

	case http.MethodDelete:
		if err := ws.db.DeletePreset(id); err != nil {
			httputil.NotFound(w, err.Error())
			return
		}
		httputil.WriteJSON(w, http.StatusOK, map[string]string{"deleted": id})

	default:
		httputil.MethodNotAllowed(w)
	}
}

// queryFloat parses a float query parameter, returning def when absent
// or malformed.
func queryFloat(r *http.Request, key string, def float64) float64 {
	s := r.URL.Query().Get(key)
	if s == "" {
		return def
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return def
	}
	return v
}
