package fhir_dto

type IssueDetails struct {
	Text string `json:"text"`
}

// Issue is an OperationOutcome-style structured problem report.
type Issue struct {
	Severity string       `json:"severity"`
	Code     string       `json:"code"`
	Details  IssueDetails `json:"details"`
}

type OperationOutcome struct {
	ResourceType string  `json:"resourceType"`
	Issue        []Issue `json:"issue"`
}
