package fhir_dto

type Bundle struct {
	ResourceType string  `json:"resourceType"`
	Type         string  `json:"type"`
	Total        *int    `json:"total,omitempty"`
	Entry        []Entry `json:"entry"`
	Link         []Link  `json:"link,omitempty"`
}

// Entry wraps one resource inside a bundle. FullUrl, when set, is a
// urn:uuid URN matching the wrapped resource's id.
type Entry struct {
	FullUrl  string      `json:"fullUrl,omitempty"`
	Resource interface{} `json:"resource"`
}

type Link struct {
	Relation string `json:"relation"`
	Url      string `json:"url"`
}
