package controllers

import (
	"context"
	"net/http"
	"time"

	"pawcare-service/internal/app/contracts"
	"pawcare-service/internal/app/services/fhir/organizations"
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/exceptions"
	"pawcare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type HospitalController struct {
	Log              *zap.Logger
	Encoder          *organizations.Encoder
	Publisher        contracts.BundlePublisher
	ExtensionBaseURL string
}

func NewHospitalController(logger *zap.Logger, encoder *organizations.Encoder, publisher contracts.BundlePublisher, extensionBaseURL string) *HospitalController {
	return &HospitalController{
		Log:              logger,
		Encoder:          encoder,
		Publisher:        publisher,
		ExtensionBaseURL: extensionBaseURL,
	}
}

func (ctrl *HospitalController) Encode(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("HospitalController.Encode requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("HospitalController.Encode called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	var req requests.HospitalProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctrl.Log.Error("HospitalController.Encode error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	bundle := ctrl.Encoder.HospitalProfileToFHIR(ctx, &req, ctrl.ExtensionBaseURL)

	if ctrl.Publisher != nil {
		if err := ctrl.Publisher.PublishBundle(ctx, constvars.ResourceOrganization, bundle); err != nil {
			ctrl.Log.Warn("HospitalController.Encode publish to sync queue failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err))
		}
	}

	ctrl.Log.Info("HospitalController.Encode succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(bundle.Entry)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.HospitalEncodedSuccess, bundle)
}
