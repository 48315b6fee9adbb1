package requests

// AppointmentDocument is an uploaded file attached to an appointment. Only
// contentType and title travel on the wire.
type AppointmentDocument struct {
	ContentType string `json:"contentType"`
	Title       string `json:"title"`
}

// CreateAppointmentRequest is the proprietary appointment record produced by
// the booking flows.
type CreateAppointmentRequest struct {
	ID                string                `json:"id,omitempty"`
	AppointmentDate   string                `json:"appointmentDate" validate:"required,date_iso"`
	AppointmentTime24 string                `json:"appointmentTime24" validate:"required,time_24h"`
	PurposeOfVisit    string                `json:"purposeOfVisit"`
	ConcernOfVisit    string                `json:"concernOfVisit"`
	PetID             string                `json:"petId" validate:"required"`
	PetName           string                `json:"petName"`
	PetType           string                `json:"petType"`
	PetAge            int                   `json:"petAge"`
	PetGender         string                `json:"petGender"`
	PetBreed          string                `json:"petBreed"`
	DoctorID          string                `json:"doctorId" validate:"required"`
	DoctorName        string                `json:"doctorName"`
	HospitalID        string                `json:"hospitalId" validate:"required"`
	HospitalName      string                `json:"hospitalName"`
	Department        string                `json:"department"`
	DepartmentName    string                `json:"departmentName"`
	SlotID            string                `json:"slotId"`
	Source            string                `json:"source"`
	Canceled          bool                  `json:"canceled"`
	Documents         []AppointmentDocument `json:"documents,omitempty"`
}
