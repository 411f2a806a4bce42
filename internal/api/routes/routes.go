package routes

import (
	"schedulehq-backend/internal/api/handlers"
	"schedulehq-backend/internal/api/middleware"
	"schedulehq-backend/internal/auth"
	"schedulehq-backend/internal/config"
	"schedulehq-backend/internal/repository"
	"schedulehq-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))
	router.Use(middleware.RateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst))

	// Initialize validator
	validate := validator.New()

	// Initialize repositories
	employeeRepo := repository.NewEmployeeRepository(db)
	shiftRepo := repository.NewShiftRepository(db)
	timeOffRepo := repository.NewTimeOffRepository(db)
	runnerRepo := repository.NewRunnerRepository(db)
	templateRepo := repository.NewWeeklyTemplateRepository(db)
	shiftTypeRepo := repository.NewShiftTypeRepository(db)
	patternRepo := repository.NewAvailabilityPatternRepository(db)
	noteRepo := repository.NewScheduleNoteRepository(db)
	txManager := repository.NewTransactionManager(db)

	// Initialize the scheduling engine
	shiftClock := service.NewShiftClock(shiftTypeRepo)
	if err := shiftClock.Refresh(); err != nil {
		return nil, err
	}
	businessClock := service.NewBusinessClock(cfg.DayBoundaryHour)
	conflictService := service.NewConflictService(shiftRepo)
	availabilityService := service.NewAvailabilityService(timeOffRepo, patternRepo)
	runnerLinker := service.NewRunnerLinker(runnerRepo, shiftRepo, shiftTypeRepo, employeeRepo, shiftClock, businessClock)
	templateEngine := service.NewTemplateEngine(templateRepo)

	// Initialize services
	employeeService := service.NewEmployeeService(employeeRepo, validate)
	timeOffService := service.NewTimeOffService(timeOffRepo, availabilityService, validate)
	shiftTypeService := service.NewShiftTypeService(shiftTypeRepo, shiftClock, validate)
	templateEntryService := service.NewTemplateEntryService(templateRepo, validate)
	scheduleService := service.NewScheduleService(
		shiftRepo, timeOffRepo, runnerRepo, noteRepo, txManager,
		conflictService, availabilityService, runnerLinker, templateEngine,
	)

	// Initialize auth
	authService, err := auth.NewAuthService(cfg)
	if err != nil {
		return nil, err
	}
	authHandler := auth.NewAuthHandler(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	employeeHandler := handlers.NewEmployeeHandler(employeeService)
	shiftHandler := handlers.NewShiftHandler(scheduleService)
	scheduleHandler := handlers.NewScheduleHandler(scheduleService)
	timeOffHandler := handlers.NewTimeOffHandler(timeOffService)
	runnerHandler := handlers.NewRunnerHandler(scheduleService, runnerRepo)
	templateHandler := handlers.NewTemplateHandler(templateEntryService, scheduleService)
	availabilityHandler := handlers.NewAvailabilityHandler(availabilityService, scheduleService)
	shiftTypeHandler := handlers.NewShiftTypeHandler(shiftTypeService)

	// Health and docs stay outside the auth guard
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.POST("/api/v1/auth/login", authHandler.Login)

	v1 := router.Group("/api/v1")
	v1.Use(auth.RequireAuth(authService))
	{
		employees := v1.Group("/employees")
		{
			employees.POST("", employeeHandler.Create)
			employees.GET("", employeeHandler.List)
			employees.GET("/:id", employeeHandler.Get)
			employees.PUT("/:id", employeeHandler.Update)
			employees.DELETE("/:id", employeeHandler.Delete)
		}

		shifts := v1.Group("/shifts")
		{
			shifts.POST("", shiftHandler.Create)
			shifts.GET("/conflicts", shiftHandler.Conflicts)
			shifts.PUT("/:id", shiftHandler.Update)
			shifts.POST("/:id/move", shiftHandler.Move)
			shifts.DELETE("/:id", shiftHandler.Delete)
		}

		v1.GET("/calendar", shiftHandler.Calendar)

		schedule := v1.Group("/schedule")
		{
			schedule.POST("/undo", scheduleHandler.Undo)
			schedule.POST("/redo", scheduleHandler.Redo)
			schedule.GET("/notes", scheduleHandler.GetNote)
			schedule.PUT("/notes", scheduleHandler.UpsertNote)
			schedule.DELETE("/notes", scheduleHandler.DeleteNote)
		}

		timeOff := v1.Group("/time-off")
		{
			timeOff.POST("", timeOffHandler.Create)
			timeOff.GET("", timeOffHandler.List)
			timeOff.GET("/:id", timeOffHandler.Get)
			timeOff.DELETE("/:id", timeOffHandler.Delete)
			timeOff.POST("/vacations", timeOffHandler.CreateVacation)
			timeOff.DELETE("/vacations/:id", timeOffHandler.DeleteVacationGroup)
		}

		runners := v1.Group("/runners")
		{
			runners.GET("", runnerHandler.List)
			runners.PUT("", runnerHandler.Assign)
			runners.DELETE("", runnerHandler.Clear)
		}

		templates := v1.Group("/templates")
		{
			templates.GET("/entries", templateHandler.ListEntries)
			templates.PUT("/entries", templateHandler.UpsertEntry)
			templates.DELETE("/entries", templateHandler.DeleteEntry)
			templates.POST("/expand", templateHandler.Expand)
		}

		availability := v1.Group("/availability")
		{
			availability.GET("", availabilityHandler.Check)
			availability.GET("/patterns", availabilityHandler.ListPatterns)
			availability.PUT("/patterns", availabilityHandler.UpsertPattern)
			availability.DELETE("/patterns", availabilityHandler.DeletePattern)
		}

		shiftTypes := v1.Group("/shift-types")
		{
			shiftTypes.GET("", shiftTypeHandler.List)
			shiftTypes.POST("", shiftTypeHandler.Create)
			shiftTypes.PUT("/:id", shiftTypeHandler.Update)
			shiftTypes.DELETE("/:id", shiftTypeHandler.Delete)
		}
	}

	return router, nil
}
