package fhir_dto

type Organization struct {
	ResourceType string            `json:"resourceType"`
	ID           string            `json:"id,omitempty"`
	Active       bool              `json:"active"`
	Name         string            `json:"name,omitempty"`
	Type         []CodeableConcept `json:"type,omitempty"`
	Telecom      []ContactPoint    `json:"telecom,omitempty"`
	Address      []Address         `json:"address,omitempty"`
	Extension    []Extension       `json:"extension,omitempty"`
}
