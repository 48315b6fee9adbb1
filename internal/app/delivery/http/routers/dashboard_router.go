package routers

import (
	"pawcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachDashboardRoutes(router chi.Router, dashboardController *controllers.DashboardController) {
	router.Post("/graph", dashboardController.EncodeGraph)
	router.Post("/graph/decode", dashboardController.DecodeGraph)
	router.Post("/speciality", dashboardController.EncodeSpeciality)
	router.Post("/speciality/decode", dashboardController.DecodeSpeciality)
	router.Post("/stats", dashboardController.EncodeStats)
	router.Post("/stats/decode", dashboardController.DecodeStats)
}
