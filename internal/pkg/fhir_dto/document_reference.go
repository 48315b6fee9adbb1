package fhir_dto

type DocumentReferenceContent struct {
	Attachment Attachment `json:"attachment"`
}

type DocumentReference struct {
	ResourceType string                     `json:"resourceType"`
	ID           string                     `json:"id,omitempty"`
	Status       string                     `json:"status,omitempty"`
	Type         CodeableConcept            `json:"type,omitempty"`
	Subject      Reference                  `json:"subject,omitempty"`
	Content      []DocumentReferenceContent `json:"content"`
}
