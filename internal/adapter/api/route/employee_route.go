package route

import (
	"github.com/gin-gonic/gin"

	"github.com/pixell-river/hr-directory/internal/adapter/api/controller"
	"github.com/pixell-river/hr-directory/internal/adapter/api/dto"
	"github.com/pixell-river/hr-directory/internal/adapter/api/validation"
)

// SetupEmployeeRoutes registers the /employees endpoints.
func SetupEmployeeRoutes(router *gin.RouterGroup, v *validation.Validator, employeeController *controller.EmployeeController) {
	employeeRouter := router.Group("/employees")
	{
		employeeRouter.GET("", employeeController.List)
		employeeRouter.GET("/:id", employeeController.GetByID)
		employeeRouter.GET("/branch/:branchId", employeeController.ListByBranch)
		employeeRouter.GET("/department/:department", employeeController.ListByDepartment)
		employeeRouter.POST("", validation.Body[dto.EmployeeRequest](v, validation.Create), employeeController.Create)
		employeeRouter.PUT("/:id", validation.Body[dto.EmployeeRequest](v, validation.Update), employeeController.Update)
		employeeRouter.DELETE("/:id", employeeController.Delete)
	}
}
