package routers

import (
	"pawcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachValidationRoutes(router chi.Router, validationController *controllers.ValidationController) {
	router.Post("/slots", validationController.ValidateSlots)
	router.Post("/bundle", validationController.ValidateBundle)
}

func attachSlotRoutes(router chi.Router, validationController *controllers.ValidationController) {
	router.Post("/monthly", validationController.ValidateMonthlySlots)
}
