package fhir_dto

type ActivityDefinition struct {
	ResourceType    string            `json:"resourceType"`
	ID              string            `json:"id,omitempty"`
	Status          string            `json:"status,omitempty"`
	Kind            string            `json:"kind,omitempty"`
	Name            string            `json:"name,omitempty"`
	Title           string            `json:"title,omitempty"`
	Code            CodeableConcept   `json:"code,omitempty"`
	RelatedArtifact []RelatedArtifact `json:"relatedArtifact,omitempty"`
	Extension       []Extension       `json:"extension,omitempty"`
}
