package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"risun-backend/dal"
	"risun-backend/middelware"
	"risun-backend/models"
	"risun-backend/repository"
	"risun-backend/services"
	"risun-backend/utils/logger"

	_ "risun-backend/docs"
)

// Controller wires the HTTP layer to the services and owns the gin engine.
type Controller struct {
	Config    *models.Config
	Log       logger.Logger
	Router    *gin.Engine
	DB        dal.DatabaseClientInterface
	AuthSvc   services.AuthServiceInterface
	LocSvc    services.LocationServiceInterface
	JWT       *middelware.JWTManager
	validator *validator.Validate
}

// NewController builds the full dependency chain: database client,
// repositories, services, token manager.
func NewController(cfg *models.Config, log logger.Logger, router *gin.Engine) (*Controller, error) {
	db, err := dal.NewDynamoDBClient(cfg, log)
	if err != nil {
		return nil, err
	}

	return NewControllerWithDB(cfg, log, router, db), nil
}

// NewControllerWithDB wires the controller over an existing database client.
// Tests use this with a fake client.
func NewControllerWithDB(cfg *models.Config, log logger.Logger, router *gin.Engine, db dal.DatabaseClientInterface) *Controller {
	orgRepo := repository.NewOrganizationRepository(db, cfg, log)
	locRepo := repository.NewLocationRepository(db, cfg, log)

	return &Controller{
		Config:    cfg,
		Log:       log,
		Router:    router,
		DB:        db,
		AuthSvc:   services.NewAuthService(orgRepo, log),
		LocSvc:    services.NewLocationService(orgRepo, locRepo, log),
		JWT:       middelware.NewJWTManager(cfg, log),
		validator: validator.New(),
	}
}

// RegisterRoutes mounts middleware and routes, then serves until the
// listener fails.
func (ctrl *Controller) RegisterRoutes() error {
	ctrl.SetupRoutes()

	addr := ctrl.Config.AppHost + ":" + ctrl.Config.AppPort
	ctrl.Log.Infof("Starting %s on %s", ctrl.Config.AppName, addr)

	server := &http.Server{
		Addr:    addr,
		Handler: ctrl.Router,
	}

	return server.ListenAndServe()
}

// SetupRoutes attaches middleware and the route table without starting a
// listener.
func (ctrl *Controller) SetupRoutes() {
	ctrl.Router.Use(middelware.CORS(ctrl.Config.CORSOrigins))
	ctrl.Router.Use(middelware.RequestLogger(ctrl.Log))
	ctrl.Router.Use(middelware.Recovery(ctrl.Log))
	ctrl.Router.Use(ctrl.JWT.Identity())

	ctrl.Router.GET("/swagger/doc.json", ctrl.SwaggerDoc)

	api := ctrl.Router.Group(ctrl.Config.BasePath)
	{
		api.GET("/health", ctrl.Health)

		api.POST("/register", ctrl.Register)
		api.POST("/login", ctrl.Login)

		api.POST("/visualizations", ctrl.AddLocation)
		api.GET("/visualizations", ctrl.ListLocations)
		api.DELETE("/visualizations", ctrl.DeleteLocation)
	}
}

// Health godoc
// @Summary Health check
// @Description Returns service liveness information
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Router /health [get]
func (ctrl *Controller) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"app":     ctrl.Config.AppName,
		"version": ctrl.Config.AppVersion,
		"env":     ctrl.Config.AppEnv,
	})
}
