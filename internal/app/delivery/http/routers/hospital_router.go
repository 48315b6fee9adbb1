package routers

import (
	"pawcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachHospitalRoutes(router chi.Router, hospitalController *controllers.HospitalController) {
	router.Post("/", hospitalController.Encode)
}
