package requests

type MonthlySlotRequest struct {
	DoctorID  string `json:"doctorId"`
	SlotMonth int    `json:"slotMonth"`
	SlotYear  int    `json:"slotYear"`
}
