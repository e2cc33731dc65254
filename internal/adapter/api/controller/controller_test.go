package controller_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pixell-river/hr-directory/internal/adapter/api/controller"
	"github.com/pixell-river/hr-directory/internal/adapter/repository"
	"github.com/pixell-river/hr-directory/internal/domain/branch"
	"github.com/pixell-river/hr-directory/internal/domain/employee"
	"github.com/pixell-river/hr-directory/pkg/docstore"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// failingStore fails every call with a message that must never reach clients.
type failingStore struct {
	docstore.Store
}

var errStore = errors.New("pq: connection refused on 10.0.0.12:5432")

func (failingStore) List(context.Context, string) ([]docstore.Document, error) {
	return nil, errStore
}

func (failingStore) Get(context.Context, string, string) (docstore.Document, bool, error) {
	return docstore.Document{}, false, errStore
}

func (failingStore) Add(context.Context, string, map[string]any) (string, error) {
	return "", errStore
}

func (failingStore) Update(context.Context, string, string, map[string]any) error {
	return errStore
}

func branchController(store docstore.Store) *controller.BranchController {
	svc := branch.NewService(repository.NewDocumentRepository[branch.Branch](store, branch.Collection))
	return controller.NewBranchController(svc, logger.NewNop())
}

func employeeController(store docstore.Store) *controller.EmployeeController {
	svc := employee.NewService(repository.NewDocumentRepository[employee.Employee](store, employee.Collection))
	return controller.NewEmployeeController(svc, logger.NewNop())
}

// serve runs a single handler with no middleware in front of it.
func serve(handler gin.HandlerFunc, method, pattern, path, body string) *httptest.ResponseRecorder {
	r := gin.New()
	r.Handle(method, pattern, handler)

	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCreateBranchMissingFieldsGate(t *testing.T) {
	ctrl := branchController(docstore.NewMemory())

	w := serve(ctrl.Create, http.MethodPost, "/branches", "/branches", `{"name":"Test"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Missing required fields"}`, w.Body.String())
}

func TestCreateEmployeeMissingFieldsGate(t *testing.T) {
	ctrl := employeeController(docstore.NewMemory())

	w := serve(ctrl.Create, http.MethodPost, "/employees", "/employees",
		`{"name":"Jane Smith","position":"Developer","department":"IT","email":"jane@pixell-river.com","phone":"2045550100"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Missing required fields"}`, w.Body.String())
}

func TestCreateBranchInvalidBody(t *testing.T) {
	ctrl := branchController(docstore.NewMemory())

	w := serve(ctrl.Create, http.MethodPost, "/branches", "/branches", `{"name":`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Invalid request body"}`, w.Body.String())
}

func TestCreateBranchReturnsFullRecord(t *testing.T) {
	ctrl := branchController(docstore.NewMemory())

	w := serve(ctrl.Create, http.MethodPost, "/branches", "/branches",
		`{"name":"Test Branch","address":"123 Test St","phone":"1234567890"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"success":true`)
	assert.Contains(t, w.Body.String(), `"name":"Test Branch"`)
	assert.Contains(t, w.Body.String(), `"id":"`)
}

func TestStoreFailuresBecomeInternalError(t *testing.T) {
	branches := branchController(failingStore{})
	employees := employeeController(failingStore{})

	tests := []struct {
		name    string
		handler gin.HandlerFunc
		method  string
		pattern string
		path    string
		body    string
	}{
		{"list branches", branches.List, http.MethodGet, "/branches", "/branches", ""},
		{"get branch", branches.GetByID, http.MethodGet, "/branches/:id", "/branches/1", ""},
		{"create branch", branches.Create, http.MethodPost, "/branches", "/branches", `{"name":"Test Branch","address":"123 Test St","phone":"1234567890"}`},
		{"update branch", branches.Update, http.MethodPut, "/branches/:id", "/branches/1", `{"name":"New"}`},
		{"delete branch", branches.Delete, http.MethodDelete, "/branches/:id", "/branches/1", ""},
		{"list employees", employees.List, http.MethodGet, "/employees", "/employees", ""},
		{"employees by branch", employees.ListByBranch, http.MethodGet, "/employees/branch/:branchId", "/employees/branch/1", ""},
		{"employees by department", employees.ListByDepartment, http.MethodGet, "/employees/department/:department", "/employees/department/IT", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(tt.handler, tt.method, tt.pattern, tt.path, tt.body)

			assert.Equal(t, http.StatusInternalServerError, w.Code)
			assert.JSONEq(t, `{"success":false,"error":"Internal server error"}`, w.Body.String())
			assert.NotContains(t, w.Body.String(), "connection refused")
		})
	}
}

func TestDeleteBranch(t *testing.T) {
	store := docstore.NewMemory()
	require.NoError(t, store.Set(context.Background(), branch.Collection, "1",
		map[string]any{"name": "Test Branch", "address": "123 Test St", "phone": "1234567890"}))
	ctrl := branchController(store)

	w := serve(ctrl.Delete, http.MethodDelete, "/branches/:id", "/branches/1", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"success":true,"data":{"message":"Branch deleted"}}`, w.Body.String())

	w = serve(ctrl.Delete, http.MethodDelete, "/branches/:id", "/branches/1", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"success":false,"error":"Branch not found"}`, w.Body.String())
}

func TestUpdateBranchMergesFields(t *testing.T) {
	store := docstore.NewMemory()
	require.NoError(t, store.Set(context.Background(), branch.Collection, "1",
		map[string]any{"name": "Test Branch", "address": "123 Test St", "phone": "1234567890"}))
	ctrl := branchController(store)

	w := serve(ctrl.Update, http.MethodPut, "/branches/:id", "/branches/1", `{"phone":"2045550100"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t,
		`{"success":true,"data":{"id":"1","name":"Test Branch","address":"123 Test St","phone":"2045550100"}}`,
		w.Body.String())
}
