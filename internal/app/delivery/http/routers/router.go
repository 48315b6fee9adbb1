package routers

import (
	"time"

	"pawcare-service/internal/app/config"
	"pawcare-service/internal/app/delivery/http/controllers"
	"pawcare-service/internal/app/delivery/http/middlewares"
	"pawcare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	appointmentController *controllers.AppointmentController,
	hospitalController *controllers.HospitalController,
	exerciseController *controllers.ExerciseController,
	dashboardController *controllers.DashboardController,
	validationController *controllers.ValidationController,
) {
	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/fhir", func(r chi.Router) {
			r.Route("/"+constvars.ResourceAppointments, func(r chi.Router) {
				attachAppointmentRoutes(r, appointmentController)
			})

			r.Route("/"+constvars.ResourceHospitals, func(r chi.Router) {
				attachHospitalRoutes(r, hospitalController)
			})

			r.Route("/"+constvars.ResourceExercises, func(r chi.Router) {
				attachExerciseRoutes(r, exerciseController)
			})

			r.Route("/"+constvars.ResourceDashboard, func(r chi.Router) {
				attachDashboardRoutes(r, dashboardController)
			})

			r.Route("/"+constvars.ResourceValidate, func(r chi.Router) {
				attachValidationRoutes(r, validationController)
			})

			r.Route("/"+constvars.ResourceSlots, func(r chi.Router) {
				attachSlotRoutes(r, validationController)
			})
		})
	})
}
