package routes

import (
	"covertrip/config"
	"covertrip/controllers"
	"covertrip/middleware"
	"covertrip/services"
	"covertrip/services/wizard"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Deps are the collaborators the router wires into the controllers.
// Tests inject an in-memory store and a stub fetcher here.
type Deps struct {
	Cfg     *config.Config
	Store   wizard.Store
	Fetcher services.PlanFetcher
	Ref     *services.ReferenceData
	DB      *gorm.DB
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(deps Deps) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.RecoveryMiddleware())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "https://covertrip.example"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	wizardController := controllers.NewWizardController(deps.Cfg, deps.Store, deps.Fetcher, deps.Ref)
	orderController := controllers.NewOrderController(deps.DB, deps.Store)

	SetupWizardRoutes(r, wizardController)
	SetupOrderRoutes(r, orderController)

	return r
}

// SetupOrderRoutes registers the JWT-guarded order endpoints.
func SetupOrderRoutes(r *gin.Engine, oc *controllers.OrderController) {
	orders := r.Group("/orders", middleware.JWTAuthMiddleware())
	{
		orders.POST("", oc.CreateOrder)
		orders.GET("", oc.GetUserOrders)
	}
}
