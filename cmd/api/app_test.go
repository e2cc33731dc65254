package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/docstore"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

func newTestApp(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	app, err := NewApp(&config.Config{AppEnv: "test"}, docstore.NewMemory(), logger.NewNop())
	require.NoError(t, err)
	app.SetupRoutes(basePath)
	t.Cleanup(func() { _ = app.Close() })
	return app.GetRouter()
}

func do(t *testing.T, r http.Handler, method, path, body string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	if strings.HasPrefix(w.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func TestHealth(t *testing.T) {
	r := newTestApp(t)

	w, _ := do(t, r, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok"}`, w.Body.String())
}

func TestCreateBranchScenario(t *testing.T) {
	r := newTestApp(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/branches",
		`{"name":"Test Branch","address":"123 Test St","phone":"1234567890"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.True(t, env.Success)

	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	id, ok := created["id"].(string)
	require.True(t, ok)
	assert.NotEmpty(t, id)
	assert.Equal(t, map[string]any{
		"id":      id,
		"name":    "Test Branch",
		"address": "123 Test St",
		"phone":   "1234567890",
	}, created)

	w, fetched := do(t, r, http.MethodGet, "/api/v1/branches/"+id, "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, string(env.Data), string(fetched.Data))
}

func TestValidationRunsBeforeControllerGate(t *testing.T) {
	r := newTestApp(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/branches", `{"name":"Test"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
	assert.Equal(t, `"address" is required`, env.Error)
}

func TestDeleteUnknownBranch(t *testing.T) {
	r := newTestApp(t)

	w, _ := do(t, r, http.MethodDelete, "/api/v1/branches/does-not-exist", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Branch not found"}`, w.Body.String())
}

func TestUnknownIDsAreNotFound(t *testing.T) {
	r := newTestApp(t)

	for _, tc := range []struct {
		method, path, body, want string
	}{
		{http.MethodGet, "/api/v1/branches/nope", "", "Branch not found"},
		{http.MethodPut, "/api/v1/branches/nope", `{"name":"Renamed"}`, "Branch not found"},
		{http.MethodGet, "/api/v1/employees/nope", "", "Employee not found"},
		{http.MethodPut, "/api/v1/employees/nope", `{"name":"Renamed"}`, "Employee not found"},
		{http.MethodDelete, "/api/v1/employees/nope", "", "Employee not found"},
	} {
		w, env := do(t, r, tc.method, tc.path, tc.body)
		assert.Equal(t, http.StatusNotFound, w.Code, tc.method+" "+tc.path)
		assert.Equal(t, tc.want, env.Error, tc.method+" "+tc.path)
	}
}

func TestEmployeeLifecycle(t *testing.T) {
	r := newTestApp(t)

	w, env := do(t, r, http.MethodPost, "/api/v1/employees",
		`{"name":"Jane Smith","position":"Developer","department":"Engineering","email":"jane@pixell-river.com","phone":"204-555-0100","branchId":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var created map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &created))
	id := created["id"].(string)
	assert.NotEmpty(t, created["createdAt"])

	w, env = do(t, r, http.MethodPut, "/api/v1/employees/"+id, `{"position":"Lead Developer"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, "Lead Developer", updated["position"])
	assert.Equal(t, "Jane Smith", updated["name"])
	assert.Equal(t, created["createdAt"], updated["createdAt"])

	w, env = do(t, r, http.MethodDelete, "/api/v1/employees/"+id, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"Employee deleted"}`, string(env.Data))

	w, _ = do(t, r, http.MethodGet, "/api/v1/employees/"+id, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestDepartmentFilterIgnoresCase(t *testing.T) {
	r := newTestApp(t)

	for _, body := range []string{
		`{"name":"Ann Lee","position":"Developer","department":"Engineering","email":"ann@pixell-river.com","phone":"2045550101","branchId":"1"}`,
		`{"name":"Bob Roy","position":"Developer","department":"engineering","email":"bob@pixell-river.com","phone":"2045550102","branchId":"2"}`,
		`{"name":"Cat Poe","position":"Teller","department":"Operations","email":"cat@pixell-river.com","phone":"2045550103","branchId":"1"}`,
	} {
		w, _ := do(t, r, http.MethodPost, "/api/v1/employees", body)
		require.Equal(t, http.StatusCreated, w.Code)
	}

	upper, _ := do(t, r, http.MethodGet, "/api/v1/employees/department/Engineering", "")
	lower, _ := do(t, r, http.MethodGet, "/api/v1/employees/department/engineering", "")
	require.Equal(t, http.StatusOK, upper.Code)
	assert.Equal(t, upper.Body.String(), lower.Body.String())

	var env envelope
	require.NoError(t, json.Unmarshal(upper.Body.Bytes(), &env))
	var list []map[string]any
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)

	w, env := do(t, r, http.MethodGet, "/api/v1/employees/branch/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(env.Data, &list))
	assert.Len(t, list, 2)
}

func TestBlankPathParameters(t *testing.T) {
	r := newTestApp(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/employees/branch/%20", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid branch ID", env.Error)

	w, env = do(t, r, http.MethodGet, "/api/v1/employees/department/%20", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Department parameter is required", env.Error)
}

func TestFilterParametersAreNotTrimmed(t *testing.T) {
	r := newTestApp(t)

	w, _ := do(t, r, http.MethodPost, "/api/v1/employees",
		`{"name":"Ann Lee","position":"Developer","department":"Engineering","email":"ann@pixell-river.com","phone":"2045550101","branchId":"1"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	for _, tc := range []struct {
		path string
		want int
	}{
		{"/api/v1/employees/branch/1", 1},
		{"/api/v1/employees/branch/%201", 0},
		{"/api/v1/employees/branch/1%20", 0},
		{"/api/v1/employees/department/engineering", 1},
		{"/api/v1/employees/department/%20engineering%20", 0},
	} {
		w, env := do(t, r, http.MethodGet, tc.path, "")
		require.Equal(t, http.StatusOK, w.Code, tc.path)

		var list []map[string]any
		require.NoError(t, json.Unmarshal(env.Data, &list), tc.path)
		assert.Len(t, list, tc.want, tc.path)
	}
}

func TestListsAreEmptyArrays(t *testing.T) {
	r := newTestApp(t)

	w, _ := do(t, r, http.MethodGet, "/api/v1/branches", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":[]}`, w.Body.String())
}

func TestUnknownRoute(t *testing.T) {
	r := newTestApp(t)

	w, env := do(t, r, http.MethodGet, "/api/v1/unknown", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Route not found", env.Error)
}

func TestSwaggerDocument(t *testing.T) {
	r := newTestApp(t)

	req := httptest.NewRequest(http.MethodGet, "/api-docs/doc.json", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var doc map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))
	assert.Equal(t, "/api/v1", doc["basePath"])
	assert.Contains(t, doc["paths"], "/employees/department/{department}")
}
