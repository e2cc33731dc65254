package validation_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixell-river/hr-directory/internal/adapter/api/dto"
	"github.com/pixell-river/hr-directory/internal/adapter/api/validation"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// newRouter mounts the middleware in front of a handler that echoes the
// body it re-reads.
func newRouter() *gin.Engine {
	v := validation.New()
	r := gin.New()
	echo := func(c *gin.Context) {
		var body map[string]any
		if err := c.ShouldBindBodyWith(&body, binding.JSON); err != nil {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, body)
	}
	r.POST("/branches", validation.Body[dto.BranchRequest](v, validation.Create), echo)
	r.PUT("/branches", validation.Body[dto.BranchRequest](v, validation.Update), echo)
	r.POST("/employees", validation.Body[dto.EmployeeRequest](v, validation.Create), echo)
	r.PUT("/employees", validation.Body[dto.EmployeeRequest](v, validation.Update), echo)
	return r
}

func send(t *testing.T, r http.Handler, method, path, body string) (int, dto.Response) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var resp dto.Response
	if w.Code == http.StatusBadRequest {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	}
	return w.Code, resp
}

func TestBranchCreateRules(t *testing.T) {
	r := newRouter()

	tests := []struct {
		name string
		body string
		want string
	}{
		{"missing address", `{"name":"Test"}`, `"address" is required`},
		{"missing everything", `{}`, `"name" is required`},
		{"name too short", `{"name":"T","address":"123 Test St","phone":"1234567890"}`, `"name" length must be at least 2 characters long`},
		{"name too long", `{"name":"` + strings.Repeat("x", 51) + `","address":"123 Test St","phone":"1234567890"}`, `"name" length must be less than or equal to 50 characters long`},
		{"address too short", `{"name":"Test","address":"1 St","phone":"1234567890"}`, `"address" length must be at least 5 characters long`},
		{"phone pattern", `{"name":"Test","address":"123 Test St","phone":"12345"}`, `"phone" with value "12345" fails to match the required pattern: /^[0-9]{10}$/`},
		{"phone with dashes", `{"name":"Test","address":"123 Test St","phone":"204-555-01"}`, `"phone" with value "204-555-01" fails to match the required pattern: /^[0-9]{10}$/`},
		{"declaration order", `{"name":"T","address":"1","phone":"x"}`, `"name" length must be at least 2 characters long`},
		{"empty string", `{"name":"","address":"123 Test St","phone":"1234567890"}`, `"name" is not allowed to be empty`},
		{"wrong type", `{"name":42,"address":"123 Test St","phone":"1234567890"}`, `"name" must be a string`},
		{"unknown field", `{"name":"Test","address":"123 Test St","phone":"1234567890","manager":"Bob"}`, `"manager" is not allowed`},
		{"id is not writable", `{"id":"7","name":"Test","address":"123 Test St","phone":"1234567890"}`, `"id" is not allowed`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, resp := send(t, r, http.MethodPost, "/branches", tt.body)
			assert.Equal(t, http.StatusBadRequest, code)
			assert.False(t, resp.Success)
			assert.Equal(t, tt.want, resp.Error)
		})
	}
}

func TestBranchCreateValidPassesBodyThrough(t *testing.T) {
	r := newRouter()

	req := httptest.NewRequest(http.MethodPost, "/branches",
		strings.NewReader(`{"name":"Test Branch","address":"123 Test St","phone":"1234567890"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"name":"Test Branch","address":"123 Test St","phone":"1234567890"}`, w.Body.String())
}

func TestUpdateChecksOnlySuppliedFields(t *testing.T) {
	r := newRouter()

	code, _ := send(t, r, http.MethodPut, "/branches", `{"phone":"2045550100"}`)
	assert.Equal(t, http.StatusOK, code)

	code, _ = send(t, r, http.MethodPut, "/branches", `{}`)
	assert.Equal(t, http.StatusOK, code)

	code, resp := send(t, r, http.MethodPut, "/branches", `{"phone":"12"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, `"phone" with value "12" fails to match the required pattern: /^[0-9]{10}$/`, resp.Error)

	code, resp = send(t, r, http.MethodPut, "/employees", `{"department":"X"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, `"department" length must be at least 2 characters long`, resp.Error)

	code, resp = send(t, r, http.MethodPut, "/employees", `{"createdAt":"2020-01-01T00:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, `"createdAt" is not allowed`, resp.Error)
}

func TestEmployeeCreateRules(t *testing.T) {
	r := newRouter()
	valid := `"name":"Jane Smith","position":"Developer","department":"Engineering","phone":"204-555-0100","branchId":"1"`

	code, resp := send(t, r, http.MethodPost, "/employees", `{`+valid+`,"email":"not-an-email"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, `"email" must be a valid email`, resp.Error)

	code, resp = send(t, r, http.MethodPost, "/employees", `{"name":"Jane Smith","position":"Developer","department":"Engineering","email":"jane@pixell-river.com","phone":"123","branchId":"1"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, `"phone" length must be at least 7 characters long`, resp.Error)

	code, resp = send(t, r, http.MethodPost, "/employees", `{"name":"Jane Smith","position":"Developer","department":"Engineering","email":"jane@pixell-river.com","phone":"204-555-0100"}`)
	assert.Equal(t, http.StatusBadRequest, code)
	assert.Equal(t, `"branchId" is required`, resp.Error)

	code, _ = send(t, r, http.MethodPost, "/employees", `{`+valid+`,"email":"jane@pixell-river.com"}`)
	assert.Equal(t, http.StatusOK, code)
}

func TestMalformedBody(t *testing.T) {
	r := newRouter()

	for _, body := range []string{`{"name":`, `[]`, `null`, ``} {
		code, resp := send(t, r, http.MethodPost, "/branches", body)
		assert.Equal(t, http.StatusBadRequest, code, body)
		assert.Equal(t, validation.InvalidBodyMessage, resp.Error, body)
	}
}
