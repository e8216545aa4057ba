package routes

import (
	"covertrip/controllers"

	"github.com/gin-gonic/gin"
)

func SetupWizardRoutes(r *gin.Engine, wc *controllers.WizardController) {
	w := r.Group("/wizard")
	{
		w.POST("/start", wc.StartWizard)
		w.POST("/trip", wc.UpdateTrip)
		w.POST("/trip/validate", wc.ValidateTrip)
		w.POST("/travelers/init", wc.InitTravelers)
		w.POST("/travelers/current", wc.SetCurrentTraveler)
		w.POST("/travelers/field", wc.UpdateTravelerField)
		w.POST("/travelers/validate", wc.ValidateTraveler)
		w.GET("/plans", wc.GetPlans)
		w.POST("/plans/filter", wc.ToggleFilter)
		w.POST("/plans/select", wc.SelectPlan)
		w.POST("/plans/confirm", wc.ConfirmPlan)
		w.POST("/plans/copy-primary", wc.CopyPrimaryPlan)
		w.POST("/addons", wc.SaveAddOns)
		w.GET("/review", wc.Review)
		w.POST("/reset", wc.ResetWizard)
	}

	r.GET("/countries", wc.GetCountries)
	r.GET("/regions", wc.GetRegions)
}
