package route

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/pixell-river/hr-directory/internal/adapter/api/controller"
	"github.com/pixell-river/hr-directory/internal/adapter/api/dto"
)

// SetupHealthRoutes registers the liveness endpoint. It never touches the store.
func SetupHealthRoutes(router gin.IRoutes) {
	router.GET("/health", Health)
}

// Health reports that the process is up.
func Health(c *gin.Context) {
	c.JSON(http.StatusOK, dto.HealthResponse{Status: "ok"})
}

// SetupDocsRoutes serves the Swagger UI under /api-docs.
func SetupDocsRoutes(router gin.IRoutes) {
	router.GET("/api-docs", func(c *gin.Context) {
		c.Redirect(http.StatusMovedPermanently, "/api-docs/index.html")
	})
	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// SetupFallbackRoutes answers unknown paths and methods with the envelope.
func SetupFallbackRoutes(engine *gin.Engine) {
	engine.NoRoute(controller.NotFound)
}
