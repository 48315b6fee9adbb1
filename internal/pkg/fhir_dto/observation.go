package fhir_dto

type ObservationComponent struct {
	Code          CodeableConcept `json:"code"`
	ValueQuantity *Quantity       `json:"valueQuantity,omitempty"`
	ValueString   string          `json:"valueString,omitempty"`
}

type Observation struct {
	ResourceType  string                 `json:"resourceType"`
	ID            string                 `json:"id,omitempty"`
	Status        string                 `json:"status,omitempty"`
	Code          CodeableConcept        `json:"code"`
	Subject       Reference              `json:"subject,omitempty"`
	ValueQuantity *Quantity              `json:"valueQuantity,omitempty"`
	Component     []ObservationComponent `json:"component,omitempty"`
	Extension     []Extension            `json:"extension,omitempty"`
}
