package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Conversion messages
	AppointmentEncodedSuccess = "appointment converted to FHIR successfully"
	AppointmentDecodedSuccess = "appointment decoded successfully"
	HospitalEncodedSuccess    = "hospital profile converted to FHIR successfully"
	ExercisesEncodedSuccess   = "exercises converted to FHIR successfully"
	DashboardEncodedSuccess   = "dashboard statistics converted to FHIR successfully"
	DashboardDecodedSuccess   = "dashboard statistics decoded successfully"

	// Validation messages
	ValidationCompletedSuccess = "validation completed"
)
