package route

import (
	"github.com/gin-gonic/gin"

	"github.com/pixell-river/hr-directory/internal/adapter/api/controller"
	"github.com/pixell-river/hr-directory/internal/adapter/api/dto"
	"github.com/pixell-river/hr-directory/internal/adapter/api/validation"
)

// SetupBranchRoutes registers the /branches endpoints. Body validation runs
// before the controller on writes only.
func SetupBranchRoutes(router *gin.RouterGroup, v *validation.Validator, branchController *controller.BranchController) {
	branchRouter := router.Group("/branches")
	{
		branchRouter.GET("", branchController.List)
		branchRouter.GET("/:id", branchController.GetByID)
		branchRouter.POST("", validation.Body[dto.BranchRequest](v, validation.Create), branchController.Create)
		branchRouter.PUT("/:id", validation.Body[dto.BranchRequest](v, validation.Update), branchController.Update)
		branchRouter.DELETE("/:id", branchController.Delete)
	}
}
