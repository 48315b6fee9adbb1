package fhir_dto

type MeasureReportPopulation struct {
	Code  CodeableConcept `json:"code,omitempty"`
	Count int             `json:"count"`
}

type MeasureReportGroup struct {
	Code       CodeableConcept           `json:"code,omitempty"`
	Population []MeasureReportPopulation `json:"population,omitempty"`
}

type MeasureReport struct {
	ResourceType string               `json:"resourceType"`
	ID           string               `json:"id,omitempty"`
	Status       string               `json:"status,omitempty"`
	Type         string               `json:"type,omitempty"`
	Period       Period               `json:"period,omitempty"`
	Group        []MeasureReportGroup `json:"group,omitempty"`
	Extension    []Extension          `json:"extension,omitempty"`
}
