package routers

import (
	"pawcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachExerciseRoutes(router chi.Router, exerciseController *controllers.ExerciseController) {
	router.Get("/", exerciseController.FindAll)
	router.Get("/plan-types", exerciseController.FindAllPlanTypes)
	router.Get("/types", exerciseController.FindAllTypes)
}
