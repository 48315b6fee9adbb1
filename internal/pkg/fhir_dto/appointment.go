package fhir_dto

type AppointmentParticipant struct {
	Actor  Reference `json:"actor"`
	Status string    `json:"status"`
}

type Appointment struct {
	ResourceType string                   `json:"resourceType"`
	ID           string                   `json:"id,omitempty"`
	Status       string                   `json:"status,omitempty"`
	Start        string                   `json:"start,omitempty"`
	Description  string                   `json:"description,omitempty"`
	ReasonCode   []CodeableConcept        `json:"reasonCode,omitempty"`
	ServiceType  []CodeableConcept        `json:"serviceType,omitempty"`
	Participant  []AppointmentParticipant `json:"participant,omitempty"`
	Extension    []Extension              `json:"extension,omitempty"`
}
