package viewer

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lenslab-data/cvprimer/internal/db"
	"github.com/lenslab-data/cvprimer/internal/scene"
)

func newTestServer(t *testing.T) (*WebServer, *http.ServeMux) {
	t.Helper()
	database, err := db.Open(filepath.Join(t.TempDir(), "viewer.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	ws := NewWebServer(WebServerConfig{Address: ":0", DB: database})
	return ws, ws.setupRoutes()
}

func TestHealthz(t *testing.T) {
	_, mux := newTestServer(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok\n", rec.Body.String())
}

func TestDashboard(t *testing.T) {
	_, mux := newTestServer(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, rec.Body.String(), "/charts/projected")
}

func TestChartEndpoints(t *testing.T) {
	_, mux := newTestServer(t)

	paths := []string{
		"/charts/scene",
		"/charts/projected",
		"/charts/delta",
		"/charts/projected?cx=1&cy=-3&cz=2",
	}
	for _, path := range paths {
		t.Run(path, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

			assert.Equal(t, http.StatusOK, rec.Code)
			assert.Contains(t, rec.Header().Get("Content-Type"), "text/html")
			assert.Contains(t, rec.Body.String(), "echarts")
		})
	}
}

func TestProjectEndpoint(t *testing.T) {
	_, mux := newTestServer(t)

	body, err := json.Marshal(map[string]interface{}{
		"position": []float64{2, -4, 2},
	})
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/project", bytes.NewReader(body)))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp projectResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, scene.Vec3{2, -4, 2}, resp.Position)
	assert.Equal(t, scene.Vec3{0.5, 0.5, 0.5}, resp.Target)

	// The default view frames the whole cube.
	for i, v := range resp.Vertices {
		assert.GreaterOrEqual(t, v[0], 0.0, "vertex %d x", i)
		assert.LessOrEqual(t, v[0], float64(scene.FrameWidth), "vertex %d x", i)
		assert.GreaterOrEqual(t, v[1], 0.0, "vertex %d y", i)
		assert.LessOrEqual(t, v[1], float64(scene.FrameHeight), "vertex %d y", i)
	}
}

func TestProjectEndpointErrors(t *testing.T) {
	_, mux := newTestServer(t)

	tests := []struct {
		name   string
		method string
		body   string
		status int
	}{
		{"missing position", http.MethodPost, `{}`, http.StatusBadRequest},
		{"malformed body", http.MethodPost, `{`, http.StatusBadRequest},
		{"wrong method", http.MethodGet, ``, http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			mux.ServeHTTP(rec, httptest.NewRequest(tt.method, "/api/project", strings.NewReader(tt.body)))
			assert.Equal(t, tt.status, rec.Code)
		})
	}
}

func TestPresetAPI(t *testing.T) {
	_, mux := newTestServer(t)

	// Empty store lists as an empty array, not null.
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()))

	// Create.
	body := `{"name":"front","position":[0,-4,0.5],"target":[0.5,0.5,0.5]}`
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/presets", strings.NewReader(body)))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created db.Preset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.NotEmpty(t, created.PresetID)

	// Fetch by ID.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets/"+created.PresetID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var fetched db.Preset
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, "front", fetched.Name)
	assert.Equal(t, scene.Vec3{0, -4, 0.5}, fetched.Position)

	// Delete, then the fetch 404s.
	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodDelete, "/api/presets/"+created.PresetID, nil))
	require.Equal(t, http.StatusOK, rec.Code)

	rec = httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets/"+created.PresetID, nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPresetAPIValidation(t *testing.T) {
	_, mux := newTestServer(t)

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/presets", strings.NewReader(`{"position":[1,2,3]}`)))
	assert.Equal(t, http.StatusBadRequest, rec.Code, "preset without a name must be rejected")
}

func TestPresetsWithoutStore(t *testing.T) {
	ws := NewWebServer(WebServerConfig{Address: ":0"})
	mux := ws.setupRoutes()

	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/presets", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
