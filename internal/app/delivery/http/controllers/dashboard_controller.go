package controllers

import (
	"net/http"

	"pawcare-service/internal/app/services/fhir/dashboard"
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/exceptions"
	"pawcare-service/internal/pkg/fhir_dto"
	"pawcare-service/internal/pkg/utils"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type DashboardController struct {
	Log              *zap.Logger
	ExtensionBaseURL string
}

func NewDashboardController(logger *zap.Logger, extensionBaseURL string) *DashboardController {
	return &DashboardController{
		Log:              logger,
		ExtensionBaseURL: extensionBaseURL,
	}
}

func (ctrl *DashboardController) requestID(w http.ResponseWriter, r *http.Request, operation string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("DashboardController requestID not found in context",
			zap.String(constvars.LoggingOperationKey, operation))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}
	ctrl.Log.Info("DashboardController called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingOperationKey, operation))
	return requestID, true
}

func (ctrl *DashboardController) EncodeGraph(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "EncodeGraph")
	if !ok {
		return
	}

	var stats []requests.MonthlyAppointmentStat
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		ctrl.Log.Error("DashboardController.EncodeGraph error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	bundle := dashboard.GraphDataToFHIR(stats, ctrl.ExtensionBaseURL)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardEncodedSuccess, bundle)
}

func (ctrl *DashboardController) DecodeGraph(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DecodeGraph")
	if !ok {
		return
	}

	var reports []fhir_dto.MeasureReport
	if err := json.NewDecoder(r.Body).Decode(&reports); err != nil {
		ctrl.Log.Error("DashboardController.DecodeGraph error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	points := dashboard.GraphDataFromFHIR(reports)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardDecodedSuccess, points)
}

func (ctrl *DashboardController) EncodeSpeciality(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "EncodeSpeciality")
	if !ok {
		return
	}

	var stats []requests.SpecialityStat
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		ctrl.Log.Error("DashboardController.EncodeSpeciality error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	bundle := dashboard.SpecialityStatsToFHIR(stats, ctrl.ExtensionBaseURL)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardEncodedSuccess, bundle)
}

func (ctrl *DashboardController) DecodeSpeciality(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DecodeSpeciality")
	if !ok {
		return
	}

	var observations []fhir_dto.Observation
	if err := json.NewDecoder(r.Body).Decode(&observations); err != nil {
		ctrl.Log.Error("DashboardController.DecodeSpeciality error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	stats := dashboard.SpecialityStatsFromFHIR(observations)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardDecodedSuccess, stats)
}

func (ctrl *DashboardController) EncodeStats(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "EncodeStats")
	if !ok {
		return
	}

	var stats requests.AppointmentStats
	if err := json.NewDecoder(r.Body).Decode(&stats); err != nil {
		ctrl.Log.Error("DashboardController.EncodeStats error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	bundle := dashboard.AppointmentStatsToFHIR(stats)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardEncodedSuccess, bundle)
}

func (ctrl *DashboardController) DecodeStats(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DecodeStats")
	if !ok {
		return
	}

	var observations []fhir_dto.Observation
	if err := json.NewDecoder(r.Body).Decode(&observations); err != nil {
		ctrl.Log.Error("DashboardController.DecodeStats error decoding JSON",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	stats := dashboard.AppointmentStatsFromFHIR(observations)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DashboardDecodedSuccess, stats)
}
