package controllers

import (
	"net/http"

	"pawcare-service/internal/app/services/fhir/exercises"
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/exceptions"
	"pawcare-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type ExerciseController struct {
	Log              *zap.Logger
	Catalog          *exercises.Catalog
	ListURL          string
	ExtensionBaseURL string
}

func NewExerciseController(logger *zap.Logger, catalog *exercises.Catalog, listURL, extensionBaseURL string) *ExerciseController {
	return &ExerciseController{
		Log:              logger,
		Catalog:          catalog,
		ListURL:          listURL,
		ExtensionBaseURL: extensionBaseURL,
	}
}

func (ctrl *ExerciseController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ExerciseController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	pagination := utils.BuildPaginationRequest(r)
	ctrl.Log.Info("ExerciseController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Any(constvars.LoggingQueryParamsKey, pagination))

	records, total := ctrl.Catalog.FindExercises(pagination)
	bundle := exercises.ExercisesToFHIR(records, pagination, total, ctrl.ListURL, ctrl.ExtensionBaseURL)

	ctrl.Log.Info("ExerciseController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(bundle.Entry)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExercisesEncodedSuccess, bundle)
}

func (ctrl *ExerciseController) FindAllPlanTypes(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ExerciseController.FindAllPlanTypes requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("ExerciseController.FindAllPlanTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	bundle := exercises.ExercisePlanTypesToFHIR(ctrl.Catalog.PlanTypes(), ctrl.ExtensionBaseURL)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExercisesEncodedSuccess, bundle)
}

func (ctrl *ExerciseController) FindAllTypes(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ExerciseController.FindAllTypes requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("ExerciseController.FindAllTypes called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	bundle := exercises.ExerciseTypesToFHIR(ctrl.Catalog.Types())
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ExercisesEncodedSuccess, bundle)
}
