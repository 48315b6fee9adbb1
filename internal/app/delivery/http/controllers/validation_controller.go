package controllers

import (
	"net/http"

	"pawcare-service/internal/app/services/fhir/slots"
	"pawcare-service/internal/app/services/fhir/validation"
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/dto/responses"
	"pawcare-service/internal/pkg/exceptions"
	"pawcare-service/internal/pkg/fhir_dto"
	"pawcare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type ValidationController struct {
	Log              *zap.Logger
	MonthlyValidator *validation.MonthlySlotValidator
}

func NewValidationController(logger *zap.Logger, monthlyValidator *validation.MonthlySlotValidator) *ValidationController {
	return &ValidationController{
		Log:              logger,
		MonthlyValidator: monthlyValidator,
	}
}

func (ctrl *ValidationController) ValidateSlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ValidationController.ValidateSlots requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("ValidationController.ValidateSlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	var bundle map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		ctrl.Log.Error("ValidationController.ValidateSlots error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	issues := validation.ValidateSlotBundle(bundle)

	ctrl.Log.Info("ValidationController.ValidateSlots completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingIssueCountKey, len(issues)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ValidationCompletedSuccess, responses.SlotValidationResult{
		Valid:  len(issues) == 0,
		Issues: issues,
	})
}

func (ctrl *ValidationController) ValidateBundle(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ValidationController.ValidateBundle requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("ValidationController.ValidateBundle called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	var bundle map[string]interface{}
	if err := json.NewDecoder(r.Body).Decode(&bundle); err != nil {
		ctrl.Log.Error("ValidationController.ValidateBundle error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	issues := validation.ValidateBundle(bundle)

	ctrl.Log.Info("ValidationController.ValidateBundle completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingIssueCountKey, len(issues)))
	utils.BuildFHIRResponse(w, constvars.StatusOK, fhir_dto.OperationOutcome{
		ResourceType: constvars.ResourceOperationOutcome,
		Issue:        issues,
	})
}

func (ctrl *ValidationController) ValidateMonthlySlots(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ValidationController.ValidateMonthlySlots requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("ValidationController.ValidateMonthlySlots called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	var req requests.MonthlySlotRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		ctrl.Log.Error("ValidationController.ValidateMonthlySlots error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	issues := ctrl.MonthlyValidator.ValidateRequest(&req)
	ctrl.Log.Info("ValidationController.ValidateMonthlySlots completed",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingIssueCountKey, len(issues)))

	if len(issues) > 0 {
		utils.BuildFHIRResponse(w, constvars.StatusUnprocessableEntity, fhir_dto.OperationOutcome{
			ResourceType: constvars.ResourceOperationOutcome,
			Issue:        issues,
		})
		return
	}

	utils.BuildFHIRResponse(w, constvars.StatusOK, slots.MonthlySlotsToFHIR(&req))
}
