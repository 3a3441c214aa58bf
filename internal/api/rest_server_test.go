package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/annel0/voxel-perception/internal/config"
	"github.com/annel0/voxel-perception/internal/perception"
	"github.com/annel0/voxel-perception/internal/vec"
	"github.com/annel0/voxel-perception/internal/world"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	testServerOnce sync.Once
	testServer     *RestServer
)

// testRestServer строит один сервер на весь пакет: middleware регистрирует
// метрики в глобальном регистре Prometheus, повторная регистрация паникует
func testRestServer(t *testing.T) *RestServer {
	t.Helper()
	testServerOnce.Do(func() {
		w := world.NewMemoryWorld()
		w.Fill(vec.Vec3{X: -12, Y: 10, Z: -12}, vec.Vec3{X: 12, Y: 10, Z: 12},
			world.Block{ID: world.GrassID})
		for y := 11; y <= 13; y++ {
			w.SetBlock(vec.Vec3{X: 3, Y: y, Z: 3}, world.Block{ID: world.PlanksID})
		}
		w.SpawnMob(90, vec.Vec3Float{X: 2, Y: 11, Z: 2})

		cfg := config.Default()
		cfg.Perception.ObjectRadius = 8
		cfg.Perception.HoleRadius = 7

		testServer = NewRestServer(Config{
			Port:   ":0",
			Engine: perception.NewEngine(w, cfg),
		})
	})
	return testServer
}

func doRequest(t *testing.T, method, target, body string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	rs := testRestServer(t)

	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	rec := httptest.NewRecorder()
	rs.Router().ServeHTTP(rec, req)

	var payload map[string]interface{}
	if rec.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	}
	return rec, payload
}

func TestRest_Objects(t *testing.T) {
	rec, payload := doRequest(t, http.MethodGet, "/api/perception/objects?x=0&y=12&z=0", "")
	require.Equal(t, http.StatusOK, rec.Code)

	objects, ok := payload["objects"].([]interface{})
	require.True(t, ok)
	require.Len(t, objects, 1, "в тестовом мире ровно один объект")
	assert.Len(t, objects[0], 3, "объект из трёх блоков столба")
}

func TestRest_Objects_BadRequest(t *testing.T) {
	rec, payload := doRequest(t, http.MethodGet, "/api/perception/objects?x=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, payload, "error")
}

func TestRest_ClosestObject(t *testing.T) {
	rec, payload := doRequest(t, http.MethodGet, "/api/perception/objects/closest?x=0&y=12&z=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["found"])
}

func TestRest_Holes(t *testing.T) {
	rec, payload := doRequest(t, http.MethodGet, "/api/perception/holes?x=0&y=11&z=0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	_, ok := payload["holes"]
	assert.True(t, ok)
}

func TestRest_Mobs(t *testing.T) {
	rec, payload := doRequest(t, http.MethodGet, "/api/perception/mobs?x=0&y=11&z=0&name=pig", "")
	require.Equal(t, http.StatusOK, rec.Code)

	mobs, ok := payload["mobs"].(map[string]interface{})
	require.True(t, ok)
	assert.Len(t, mobs["pig"], 1, "свинья должна быть найдена")
}

func TestRest_Between(t *testing.T) {
	body := `{"e0":[[0,0,0]],"e1":[[-3,0,0]],"e2":[[3,0,0]]}`
	rec, payload := doRequest(t, http.MethodPost, "/api/relations/between", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["between"])
}

func TestRest_Between_BadJSON(t *testing.T) {
	rec, _ := doRequest(t, http.MethodPost, "/api/relations/between", `{"e0":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRest_FindBetween(t *testing.T) {
	body := `{"e0":[[-2,0,4]],"e1":[[4,2,0]]}`
	rec, payload := doRequest(t, http.MethodPost, "/api/relations/between/find", body)
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, true, payload["found"])

	pos, ok := payload["pos"].([]interface{})
	require.True(t, ok)
	assert.Equal(t, []interface{}{1.0, 1.0, 2.0}, pos)
}

func TestRest_Inside(t *testing.T) {
	body := `{"e0":[[0,5,0]],"e1":[[1,5,0],[-1,5,0],[0,5,1],[0,5,-1]]}`
	rec, payload := doRequest(t, http.MethodPost, "/api/relations/inside", body)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, true, payload["inside"])
}

func TestRest_ServerInfo(t *testing.T) {
	rec, payload := doRequest(t, http.MethodGet, "/api/server", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, payload, "uptime")
	assert.Contains(t, payload, "goroutines")
}

func TestRest_Metrics(t *testing.T) {
	rs := testRestServer(t)
	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	rec := httptest.NewRecorder()
	rs.Router().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "http_request_duration_seconds")
}
