package validation

import (
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"
)

// MonthlySlotValidator checks monthly slot-listing requests before any slot
// lookup runs.
type MonthlySlotValidator struct{}

func NewMonthlySlotValidator() *MonthlySlotValidator {
	return &MonthlySlotValidator{}
}

func (v *MonthlySlotValidator) ValidateRequest(req *requests.MonthlySlotRequest) []fhir_dto.Issue {
	var issues []fhir_dto.Issue

	if req.DoctorID == "" {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, "doctorId is required"))
	}
	if req.SlotMonth < 1 || req.SlotMonth > 12 {
		issues = append(issues, newIssue(constvars.FhirIssueCodeValue, "slotMonth must be a number between 1 and 12"))
	}
	if req.SlotYear < 1000 || req.SlotYear > 9999 {
		issues = append(issues, newIssue(constvars.FhirIssueCodeValue, "slotYear must be a 4-digit number"))
	}

	return issues
}
