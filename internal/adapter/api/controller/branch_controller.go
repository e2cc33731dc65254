package controller

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"github.com/pixell-river/hr-directory/internal/adapter/api/dto"
	"github.com/pixell-river/hr-directory/internal/domain/branch"
	"github.com/pixell-river/hr-directory/pkg/logger"
)

// BranchService is the part of branch.Service the controller uses.
type BranchService interface {
	GetAll(ctx context.Context) ([]branch.Branch, error)
	GetByID(ctx context.Context, id string) (*branch.Branch, error)
	Create(ctx context.Context, fields map[string]any) (*branch.Branch, error)
	Update(ctx context.Context, id string, fields map[string]any) (*branch.Branch, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// BranchController handles the /branches endpoints.
type BranchController struct {
	branchService BranchService
	log           logger.Logger
}

// NewBranchController creates a BranchController.
func NewBranchController(branchService BranchService, log logger.Logger) *BranchController {
	return &BranchController{
		branchService: branchService,
		log:           log,
	}
}

// List returns every branch
// @Summary List branches
// @Description Returns every branch
// @Tags branches
// @Produce json
// @Success 200 {object} dto.Response{data=[]branch.Branch}
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [get]
func (c *BranchController) List(ctx *gin.Context) {
	branches, err := c.branchService.GetAll(ctx.Request.Context())
	if err != nil {
		internalError(ctx, c.log, "list branches", err)
		return
	}

	respond(ctx, http.StatusOK, branches)
}

// GetByID returns one branch
// @Summary Get a branch
// @Description Returns the branch with the given id
// @Tags branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} dto.Response{data=branch.Branch}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [get]
func (c *BranchController) GetByID(ctx *gin.Context) {
	b, err := c.branchService.GetByID(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		internalError(ctx, c.log, "get branch", err)
		return
	}
	if b == nil {
		respondError(ctx, http.StatusNotFound, MsgBranchNotFound)
		return
	}

	respond(ctx, http.StatusOK, b)
}

// Create stores a new branch
// @Summary Create a branch
// @Description Creates a branch and returns it with its assigned id
// @Tags branches
// @Accept json
// @Produce json
// @Param branch body dto.BranchRequest true "Branch data"
// @Success 201 {object} dto.Response{data=branch.Branch}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches [post]
func (c *BranchController) Create(ctx *gin.Context) {
	var request dto.BranchRequest
	if err := ctx.ShouldBindBodyWith(&request, binding.JSON); err != nil {
		respondError(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}
	if !request.Complete() {
		respondError(ctx, http.StatusBadRequest, MsgMissingFields)
		return
	}

	b, err := c.branchService.Create(ctx.Request.Context(), request.Fields())
	if err != nil {
		internalError(ctx, c.log, "create branch", err)
		return
	}

	respond(ctx, http.StatusCreated, b)
}

// Update merges the supplied fields into a branch
// @Summary Update a branch
// @Description Changes only the supplied fields of a branch
// @Tags branches
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param branch body dto.BranchRequest true "Fields to change"
// @Success 200 {object} dto.Response{data=branch.Branch}
// @Failure 400 {object} dto.ErrorResponse
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [put]
func (c *BranchController) Update(ctx *gin.Context) {
	var fields map[string]any
	if err := ctx.ShouldBindBodyWith(&fields, binding.JSON); err != nil {
		respondError(ctx, http.StatusBadRequest, MsgInvalidBody)
		return
	}

	b, err := c.branchService.Update(ctx.Request.Context(), ctx.Param("id"), fields)
	if err != nil {
		internalError(ctx, c.log, "update branch", err)
		return
	}
	if b == nil {
		respondError(ctx, http.StatusNotFound, MsgBranchNotFound)
		return
	}

	respond(ctx, http.StatusOK, b)
}

// Delete removes a branch
// @Summary Delete a branch
// @Description Deletes the branch with the given id
// @Tags branches
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} dto.Response{data=dto.MessageData}
// @Failure 404 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /branches/{id} [delete]
func (c *BranchController) Delete(ctx *gin.Context) {
	id := ctx.Param("id")

	existing, err := c.branchService.GetByID(ctx.Request.Context(), id)
	if err != nil {
		internalError(ctx, c.log, "get branch", err)
		return
	}
	if existing == nil {
		respondError(ctx, http.StatusNotFound, MsgBranchNotFound)
		return
	}

	deleted, err := c.branchService.Delete(ctx.Request.Context(), id)
	if err != nil {
		internalError(ctx, c.log, "delete branch", err)
		return
	}
	if !deleted {
		respondError(ctx, http.StatusNotFound, MsgBranchNotFound)
		return
	}

	respond(ctx, http.StatusOK, dto.MessageData{Message: "Branch deleted"})
}
