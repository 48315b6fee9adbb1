package controllers

import (
	"context"
	"net/http"
	"time"

	"pawcare-service/internal/app/contracts"
	"pawcare-service/internal/app/services/fhir/appointments"
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/exceptions"
	"pawcare-service/internal/pkg/fhir_dto"
	"pawcare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log              *zap.Logger
	Publisher        contracts.BundlePublisher
	ExtensionBaseURL string
}

func NewAppointmentController(logger *zap.Logger, publisher contracts.BundlePublisher, extensionBaseURL string) *AppointmentController {
	return &AppointmentController{
		Log:              logger,
		Publisher:        publisher,
		ExtensionBaseURL: extensionBaseURL,
	}
}

func (ctrl *AppointmentController) Encode(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.Encode requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("AppointmentController.Encode called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req requests.CreateAppointmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctrl.Log.Error("AppointmentController.Encode error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	resource := appointments.ToFHIR(&req, ctrl.ExtensionBaseURL)

	// Downstream sync is best effort; a broker outage must not fail the
	// conversion itself.
	if ctrl.Publisher != nil {
		if err := ctrl.Publisher.PublishBundle(ctx, resource.ResourceType, resource); err != nil {
			ctrl.Log.Warn("AppointmentController.Encode publish to sync queue failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
		}
	}

	ctrl.Log.Info("AppointmentController.Encode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingResourceTypeKey, resource.ResourceType))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentEncodedSuccess, resource)
}

func (ctrl *AppointmentController) Decode(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.Decode requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("AppointmentController.Decode called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	var resource fhir_dto.Appointment
	if err := json.NewDecoder(r.Body).Decode(&resource); err != nil {
		ctrl.Log.Error("AppointmentController.Decode error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	record := appointments.FromFHIR(resource)

	ctrl.Log.Info("AppointmentController.Decode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AppointmentDecodedSuccess, record)
}
