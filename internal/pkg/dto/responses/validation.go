package responses

// SlotValidationResult reports slot checks as plain strings, matching the
// contract of the scheduling consumers.
type SlotValidationResult struct {
	Valid  bool     `json:"valid"`
	Issues []string `json:"issues"`
}
