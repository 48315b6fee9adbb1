package fhir_dto

type HealthcareService struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	ProvidedBy   Reference         `json:"providedBy,omitempty"`
	Type         []CodeableConcept `json:"type,omitempty"`
	Name         string            `json:"name,omitempty"`
}
