package validation

import (
	"fmt"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/fhir_dto"
)

// ValidateBundle structurally checks a generic untyped bundle, reporting
// OperationOutcome-style issues for Schedule and Observation resources.
// This validator and ValidateSlotBundle deliberately keep separate output
// shapes; their consumers differ.
func ValidateBundle(bundle map[string]interface{}) []fhir_dto.Issue {
	var issues []fhir_dto.Issue

	if resourceType, _ := bundle["resourceType"].(string); resourceType != constvars.ResourceBundle {
		issues = append(issues, newIssue(constvars.FhirIssueCodeInvalid, fmt.Sprintf("resourceType must be %q", constvars.ResourceBundle)))
	}

	entries, ok := bundle["entry"].([]interface{})
	if !ok {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, "entry must be an array"))
		return issues
	}

	for i, item := range entries {
		entry, ok := item.(map[string]interface{})
		if !ok {
			issues = append(issues, newIssue(constvars.FhirIssueCodeInvalid, fmt.Sprintf("entry[%d] must be an object", i)))
			continue
		}
		resource, ok := entry["resource"].(map[string]interface{})
		if !ok {
			issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, fmt.Sprintf("entry[%d].resource is required", i)))
			continue
		}

		path := fmt.Sprintf("entry[%d].resource", i)
		switch resourceType, _ := resource["resourceType"].(string); resourceType {
		case constvars.ResourceSchedule:
			issues = append(issues, validateSchedule(resource, path)...)
		case constvars.ResourceObservation:
			issues = append(issues, validateObservation(resource, path)...)
		}
	}

	return issues
}

func validateSchedule(resource map[string]interface{}, path string) []fhir_dto.Issue {
	var issues []fhir_dto.Issue

	if id, ok := resource["id"].(string); !ok || id == "" {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, path+": Schedule.id is required"))
	}
	if identifiers, ok := resource["identifier"].([]interface{}); !ok || len(identifiers) == 0 {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, path+": Schedule.identifier must be a non-empty array"))
	}
	if actors, ok := resource["actor"].([]interface{}); !ok || len(actors) == 0 {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, path+": Schedule.actor must be a non-empty array"))
	}

	return issues
}

func validateObservation(resource map[string]interface{}, path string) []fhir_dto.Issue {
	var issues []fhir_dto.Issue

	code, ok := resource["code"].(map[string]interface{})
	if !ok {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, path+": Observation.code is required"))
	} else if codings, ok := code["coding"].([]interface{}); !ok || len(codings) == 0 {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, path+": Observation.code.coding must be a non-empty array"))
	}

	if _, ok := resource["subject"].(map[string]interface{}); !ok {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, path+": Observation.subject is required"))
	}
	if components, ok := resource["component"].([]interface{}); !ok || len(components) == 0 {
		issues = append(issues, newIssue(constvars.FhirIssueCodeRequired, path+": Observation.component must be a non-empty array"))
	}

	return issues
}

func newIssue(code, text string) fhir_dto.Issue {
	return fhir_dto.Issue{
		Severity: constvars.FhirIssueSeverityError,
		Code:     code,
		Details:  fhir_dto.IssueDetails{Text: text},
	}
}
