package fhir_dto

// Slot carries the proprietary scheduling fields layered on the standard
// shape. IsBooked is the string "true"/"false" on the wire, not a boolean;
// external consumers depend on that encoding.
type Slot struct {
	ResourceType string    `json:"resourceType"`
	ID           string    `json:"id,omitempty"`
	Schedule     Reference `json:"schedule"`
	Status       string    `json:"status,omitempty"`
	Start        string    `json:"start,omitempty"`
	End          string    `json:"end,omitempty"`
	IsBooked     string    `json:"isBooked,omitempty"`
	SlotTime     string    `json:"slotTime,omitempty"`
}
