package routers

import (
	"pawcare-service/internal/app/delivery/http/controllers"

	"github.com/go-chi/chi/v5"
)

func attachAppointmentRoutes(router chi.Router, appointmentController *controllers.AppointmentController) {
	router.Post("/", appointmentController.Encode)
	router.Post("/decode", appointmentController.Decode)
}
