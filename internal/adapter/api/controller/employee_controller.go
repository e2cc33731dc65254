package controller

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/pixell-river/hr-directory/internal/adapter/api/dto"
	"github.com/pixell-river/hr-directory/internal/domain/employee"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

// EmployeeService is the part of employee.Service the controller uses.
type EmployeeService interface {
	GetAll(ctx context.Context) ([]employee.Employee, error)
	GetByID(ctx context.Context, id string) (*employee.Employee, error)
	Create(ctx context.Context, fields map[string]any) (*employee.Employee, error)
	Update(ctx context.Context, id string, fields map[string]any) (*employee.Employee, error)
	Delete(ctx context.Context, id string) (bool, error)
	GetByBranch(ctx context.Context, branchID string) ([]employee.Employee, error)
	GetByDepartment(ctx context.Context, department string) ([]employee.Employee, error)
}

// EmployeeController handles the /employees endpoints.
type EmployeeController struct {
	employeeService EmployeeService
	log             logger.Logger
}

// NewEmployeeController creates an EmployeeController.
func NewEmployeeController(employeeService EmployeeService, log logger.Logger) *EmployeeController {
	return &EmployeeController{
		employeeService: employeeService,
		log:             log,
	}
}

// List returns every employee
// @Summary List employees
// @Tags employees
// @Produce json
// @Success 200 {object} dto.Response{data=[]employee.Employee}
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees [get]
func (c *EmployeeController) List(ctx *gin.Context) {
	employees, err := c.employeeService.GetAll(ctx.Request.Context())
	if err != nil {
		internalError(ctx, c.log, "list employees", err)
		return
	}

	respond(ctx, http.StatusOK, employees)
}

// GetByID returns one employee
// @Summary Get an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.Response{data=employee.Employee}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees/{id} [get]
func (c *EmployeeController) GetByID(ctx *gin.Context) {
	e, err := c.employeeService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		internalError(ctx, c.log, "get employee", err)
		return
	}
	if e == nil {
		respondError(ctx, http.StatusNotFound, MsgEmployeeNotFound)
		return
	}

	respond(ctx, http.StatusOK, e)
}

// ListByBranch returns the employees of a branch
// @Summary List employees of a branch
// @Description Matches branchId exactly
// @Tags employees
// @Produce json
// @Param branchId path string true "Branch ID"
// @Success 200 {object} dto.Response{data=[]employee.Employee}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees/branch/{branchId} [get]
func (c *EmployeeController) ListByBranch(ctx *gin.Context) {
	branchID := ctx.Param("branchId")
	if strings.TrimSpace(branchID) == "" {
		respondError(ctx, http.StatusBadRequest, MsgInvalidBranchID)
		return
	}

	employees, err := c.employeeService.GetByBranch(ctx.Request.Context(), branchID)
	if err != nil {
		internalError(ctx, c.log, "list employees by branch", err)
		return
	}

	respond(ctx, http.StatusOK, employees)
}

// ListByDepartment returns the employees of a department
// @Summary List employees of a department
// @Description Department names are compared case-insensitively
// @Tags employees
// @Produce json
// @Param department path string true "Department"
// @Success 200 {object} dto.Response{data=[]employee.Employee}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees/department/{department} [get]
func (c *EmployeeController) ListByDepartment(ctx *gin.Context) {
	department := ctx.Param("department")
	if strings.TrimSpace(department) == "" {
		respondError(ctx, http.StatusBadRequest, MsgDepartmentMissing)
		return
	}

	employees, err := c.employeeService.GetByDepartment(ctx.Request.Context(), department)
	if err != nil {
		internalError(ctx, c.log, "list employees by department", err)
		return
	}

	respond(ctx, http.StatusOK, employees)
}

// Create stores a new employee
// @Summary Create an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param employee body dto.EmployeeRequest true "Employee data"
// @Success 201 {object} dto.Response{data=employee.Employee}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees [post]
func (c *EmployeeController) Create(ctx *gin.Context) {
	var request dto.EmployeeRequest
	if err := ctx.ShouldBindBodyWith(&request, binding.JSON); err != nil {
		respondError(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	if !request.Complete() {
		respondError(ctx, http.StatusBadRequest, MsgMissingFields)
		return
	}

	e, err := c.employeeService.Create(ctx.Request.Context(), request.Fields())
	if err != nil {
		internalError(ctx, c.log, "create employee", err)
		return
	}

	respond(ctx, http.StatusCreated, e)
}

// Update merges the supplied fields into an employee
// @Summary Update an employee
// @Description Changes only the supplied fields of an employee
// @Tags employees
// @Accept json
// @Produce json
// @Param id path string true "Employee ID"
// @Param employee body dto.EmployeeRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=employee.Employee}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees/{id} [put]
func (c *EmployeeController) Update(ctx *gin.Context) {
	var fields map[string]any
	if err := ctx.ShouldBindBodyWith(&fields, binding.JSON); err != nil {
		respondError(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	e, err := c.employeeService.Update(ctx.Request.Context(), ctx.Param("id"), fields)
	if err != nil {
		internalError(ctx, c.log, "update employee", err)
		return
	}
	if e == nil {
		respondError(ctx, http.StatusNotFound, MsgEmployeeNotFound)
		return
	}

	respond(ctx, http.StatusOK, e)
}

// Delete removes an employee
// @Summary Delete an employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} dto.Response{data=dto.MessageData}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /employees/{id} [delete]
func (c *EmployeeController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	existing, err := c.employeeService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		internalError(ctx, c.log, "get employee", err)
		return
	}
	if existing == nil {
		respondError(ctx, http.StatusNotFound, MsgEmployeeNotFound)
		return
	}

	deleted, err := c.employeeService.Delete(ctx.Request.Context(), id)
	if err != nil {
		internalError(ctx, c.log, "delete employee", err)
		return
	}
	if !deleted {
		respondError(ctx, http.StatusNotFound, MsgEmployeeNotFound)
		return
	}

	respond(ctx, http.StatusOK, dto.MessageData{Message: "Employee deleted"})
}
