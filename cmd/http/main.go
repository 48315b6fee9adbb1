package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pawcare-service/internal/app/config"
	"pawcare-service/internal/app/contracts"
	"pawcare-service/internal/app/delivery/http/controllers"
	"pawcare-service/internal/app/delivery/http/middlewares"
	"pawcare-service/internal/app/delivery/http/routers"
	"pawcare-service/internal/app/drivers/logger"
	"pawcare-service/internal/app/drivers/messaging"
	minioDriver "pawcare-service/internal/app/drivers/storage"
	"pawcare-service/internal/app/services/fhir/exercises"
	"pawcare-service/internal/app/services/fhir/organizations"
	"pawcare-service/internal/app/services/fhir/validation"
	"pawcare-service/internal/app/services/shared/bundlequeue"
	"pawcare-service/internal/app/services/shared/storage"
	"pawcare-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
	"github.com/sirupsen/logrus"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	log := logger.NewLogrusLogger(internalConfig)
	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)

	location, err := time.LoadLocation(internalConfig.App.Timezone)
	if err != nil {
		log.Fatalf("Error loading location: %v", err)
	}
	time.Local = location

	minioClient := minioDriver.NewMinio(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	attachmentResolver := storage.NewMinioStorage(minioClient, driverConfig.Minio.BucketName)
	bundlePublisher, err := bundlequeue.NewService(rabbitMQ, zapLogger)
	if err != nil {
		log.Fatalf("Failed to initialize bundle queue: %v", err)
	}

	bootstrapingTheApp(bootstrap, attachmentResolver, bundlePublisher)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	logrus.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		log.Printf("Error while closing drivers: %v", err)
	}

	log.Println("Server exiting")
}

func bootstrapingTheApp(
	bootstrap config.Bootstrap,
	attachmentResolver contracts.AttachmentResolver,
	bundlePublisher contracts.BundlePublisher,
) {
	extensionBaseURL := bootstrap.InternalConfig.FHIR.ExtensionBaseUrl

	// Middlewares
	middlewares := middlewares.NewMiddlewares(bootstrap.Logger)

	// Appointment
	appointmentController := controllers.NewAppointmentController(bootstrap.Logger, bundlePublisher, extensionBaseURL)

	// Hospital
	hospitalEncoder := organizations.NewEncoder(bootstrap.Logger, attachmentResolver)
	hospitalController := controllers.NewHospitalController(bootstrap.Logger, hospitalEncoder, bundlePublisher, extensionBaseURL)

	// Exercise
	exerciseCatalog := exercises.NewCatalog()
	exerciseListURL := bootstrap.InternalConfig.App.BaseUrl + bootstrap.InternalConfig.App.EndpointPrefix + "/fhir/" + constvars.ResourceExercises
	exerciseController := controllers.NewExerciseController(bootstrap.Logger, exerciseCatalog, exerciseListURL, extensionBaseURL)

	// Dashboard
	dashboardController := controllers.NewDashboardController(bootstrap.Logger, extensionBaseURL)

	// Validation
	monthlySlotValidator := validation.NewMonthlySlotValidator()
	validationController := controllers.NewValidationController(bootstrap.Logger, monthlySlotValidator)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		middlewares,
		appointmentController,
		hospitalController,
		exerciseController,
		dashboardController,
		validationController,
	)
}
