package fhir_dto

type Schedule struct {
	ResourceType string       `json:"resourceType"`
	ID           string       `json:"id,omitempty"`
	Identifier   []Identifier `json:"identifier,omitempty"`
	Actor        []Reference  `json:"actor,omitempty"`
	Comment      string       `json:"comment,omitempty"`
}
