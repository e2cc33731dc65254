package main

import (
	"github.com/gin-gonic/gin"

	_ "github.com/pixell-river/hr-directory/docs"
	"github.com/pixell-river/hr-directory/internal/adapter/api/controller"
	"github.com/pixell-river/hr-directory/internal/adapter/api/route"
	"github.com/pixell-river/hr-directory/internal/adapter/api/validation"
	"github.com/pixell-river/hr-directory/internal/adapter/repository"
	"github.com/pixell-river/hr-directory/internal/domain/branch"
	"github.com/pixell-river/hr-directory/internal/domain/employee"
	"github.com/pixell-river/hr-directory/pkg/config"
	"github.com/pixell-river/hr-directory/pkg/docstore"
	"github.com/pixell-river/hr-directory/pkg/logger"
	"github.com/pixell-river/hr-directory/pkg/middleware"
)

// App holds the application and its dependencies.
type App struct {
	cfg                *config.Config
	log                logger.Logger
	router             *gin.Engine
	store              docstore.Store
	validator          *validation.Validator
	branchService      *branch.Service
	employeeService    *employee.Service
	branchController   *controller.BranchController
	employeeController *controller.EmployeeController
}

// NewApp wires services, controllers and the router on top of store.
func NewApp(cfg *config.Config, store docstore.Store, log logger.Logger) (*App, error) {
	// Repositories
	branchRepo := repository.NewDocumentRepository[branch.Branch](store, branch.Collection)
	employeeRepo := repository.NewDocumentRepository[employee.Employee](store, employee.Collection)

	// Services
	branchService := branch.NewService(branchRepo)
	employeeService := employee.NewService(employeeRepo)

	// Controllers
	branchController := controller.NewBranchController(branchService, log)
	employeeController := controller.NewEmployeeController(employeeService, log)

	corsHandler, err := middleware.CORS(cfg)
	if err != nil {
		return nil, err
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(
		middleware.Recovery(log),
		middleware.RequestID(),
		middleware.RequestLogger(log),
		middleware.SecureHeaders(!cfg.IsProduction(), log),
		corsHandler,
	)

	return &App{
		cfg:                cfg,
		log:                log,
		router:             router,
		store:              store,
		validator:          validation.New(),
		branchService:      branchService,
		employeeService:    employeeService,
		branchController:   branchController,
		employeeController: employeeController,
	}, nil
}

// SetupRoutes registers every route of the API.
func (a *App) SetupRoutes(basePath string) {
	route.SetupHealthRoutes(a.router)
	route.SetupDocsRoutes(a.router)

	api := a.router.Group(basePath)
	route.SetupBranchRoutes(api, a.validator, a.branchController)
	route.SetupEmployeeRoutes(api, a.validator, a.employeeController)

	route.SetupFallbackRoutes(a.router)
}

// GetRouter returns the application router.
func (a *App) GetRouter() *gin.Engine {
	return a.router
}

// Close releases the document store.
func (a *App) Close() error {
	if a.store != nil {
		return a.store.Close()
	}
	return nil
}
