package responses

// DecodedAppointment is the flat record recovered from an Appointment
// resource. A zero value means the input was not an Appointment; callers
// check required fields themselves.
type DecodedAppointment struct {
	AppointmentDate string `json:"appointmentDate,omitempty"`
	Timeslot        string `json:"timeslot,omitempty"`
	PurposeOfVisit  string `json:"purposeOfVisit,omitempty"`
	ConcernOfVisit  string `json:"concernOfVisit,omitempty"`
	PetID           string `json:"petId,omitempty"`
	DoctorID        string `json:"doctorId,omitempty"`
	HospitalID      string `json:"hospitalId,omitempty"`
	Department      string `json:"department,omitempty"`
	SlotID          string `json:"slotId,omitempty"`
}
