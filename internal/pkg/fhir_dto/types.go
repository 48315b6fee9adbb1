package fhir_dto

type Reference struct {
	Reference string `json:"reference,omitempty"`
	Type      string `json:"type,omitempty"`
	Display   string `json:"display,omitempty"`
}

type Identifier struct {
	Use    string `json:"use,omitempty"`
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
}

type CodeableConcept struct {
	Coding []Coding `json:"coding,omitempty"`
	Text   string   `json:"text,omitempty"`
}

type Coding struct {
	System  string `json:"system,omitempty"`
	Code    string `json:"code,omitempty"`
	Display string `json:"display,omitempty"`
}

type Period struct {
	Start string `json:"start,omitempty"`
	End   string `json:"end,omitempty"`
}

type ContactPoint struct {
	System string `json:"system,omitempty"`
	Value  string `json:"value,omitempty"`
	Use    string `json:"use,omitempty"`
}

type Quantity struct {
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
}

type Address struct {
	Use        string      `json:"use,omitempty"`
	Line       []string    `json:"line,omitempty"`
	City       string      `json:"city,omitempty"`
	State      string      `json:"state,omitempty"`
	PostalCode string      `json:"postalCode,omitempty"`
	Country    string      `json:"country,omitempty"`
	Extension  []Extension `json:"extension,omitempty"`
}

// Attachment is the full attachment shape used by DocumentReference content.
// Url is a pointer without omitempty so an unresolved document serializes an
// explicit null rather than dropping the field.
type Attachment struct {
	ContentType string  `json:"contentType,omitempty"`
	Url         *string `json:"url"`
	Size        int64   `json:"size,omitempty"`
	Title       string  `json:"title,omitempty"`
	Creation    string  `json:"creation,omitempty"`
}

// AttachmentStub is the minimal attachment shape carried inside appointment
// document extensions.
type AttachmentStub struct {
	ContentType string `json:"contentType"`
	Title       string `json:"title"`
}

type RelatedArtifact struct {
	Type    string `json:"type,omitempty"`
	Display string `json:"display,omitempty"`
	Url     string `json:"url,omitempty"`
}
