package appointments

import (
	"testing"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"

	"github.com/stretchr/testify/assert"
)

const testExtensionBase = "https://fhir.pawcare.io/StructureDefinition"

func fullAppointmentRequest() *requests.CreateAppointmentRequest {
	return &requests.CreateAppointmentRequest{
		ID:                "appt-1",
		AppointmentDate:   "2025-03-01",
		AppointmentTime24: "14:30",
		PurposeOfVisit:    "Checkup",
		ConcernOfVisit:    "Limping on left leg",
		PetID:             "pet-9",
		PetName:           "Bruno",
		PetType:           "dog",
		PetAge:            4,
		PetGender:         "male",
		PetBreed:          "Labrador",
		DoctorID:          "doc-3",
		DoctorName:        "Dr. Mehta",
		HospitalID:        "hosp-7",
		HospitalName:      "Happy Paws Clinic",
		Department:        "ortho",
		DepartmentName:    "Orthopedics",
		SlotID:            "slot-42",
		Source:            "mobile-app",
		Documents: []requests.AppointmentDocument{
			{ContentType: "application/pdf", Title: "vaccination card"},
			{ContentType: "image/png", Title: "x-ray"},
		},
	}
}

func findBySuffix(extensions []fhir_dto.Extension, suffix string) *fhir_dto.Extension {
	return fhir_dto.FindExtension(extensions, testExtensionBase+"/"+suffix)
}

func TestToFHIR(t *testing.T) {
	t.Run("Full Record", func(t *testing.T) {
		resource := ToFHIR(fullAppointmentRequest(), testExtensionBase)

		assert.Equal(t, constvars.ResourceAppointment, resource.ResourceType)
		assert.Equal(t, "appt-1", resource.ID)
		assert.Equal(t, constvars.FhirAppointmentStatusBooked, resource.Status)
		assert.Equal(t, "2025-03-01T14:30:00", resource.Start)
		assert.Equal(t, "Checkup - Limping on left leg", resource.Description)

		if assert.Len(t, resource.ReasonCode, 1) {
			assert.Equal(t, "Checkup", resource.ReasonCode[0].Text)
		}
		if assert.Len(t, resource.ServiceType, 1) && assert.Len(t, resource.ServiceType[0].Coding, 1) {
			assert.Equal(t, "ortho", resource.ServiceType[0].Coding[0].Code)
			assert.Equal(t, "Orthopedics", resource.ServiceType[0].Coding[0].Display)
		}
	})

	t.Run("Participants Carry References And Displays", func(t *testing.T) {
		resource := ToFHIR(fullAppointmentRequest(), testExtensionBase)

		if assert.Len(t, resource.Participant, 3) {
			assert.Equal(t, "Patient/pet-9", resource.Participant[0].Actor.Reference)
			assert.Equal(t, "Bruno", resource.Participant[0].Actor.Display)
			assert.Equal(t, "Practitioner/doc-3", resource.Participant[1].Actor.Reference)
			assert.Equal(t, "Location/hosp-7", resource.Participant[2].Actor.Reference)
			for _, participant := range resource.Participant {
				assert.Equal(t, constvars.FhirParticipantStatusAccepted, participant.Status)
			}
		}
	})

	t.Run("Canceled Flips Status And Participants", func(t *testing.T) {
		req := fullAppointmentRequest()
		req.Canceled = true

		resource := ToFHIR(req, testExtensionBase)

		assert.Equal(t, constvars.FhirAppointmentStatusCancelled, resource.Status)
		for _, participant := range resource.Participant {
			assert.Equal(t, constvars.FhirParticipantStatusDeclined, participant.Status)
		}
	})

	t.Run("Missing ID Is Generated", func(t *testing.T) {
		req := fullAppointmentRequest()
		req.ID = ""

		resource := ToFHIR(req, testExtensionBase)

		assert.NotEmpty(t, resource.ID)
	})

	t.Run("Extensions Are Sparse", func(t *testing.T) {
		req := fullAppointmentRequest()
		req.PetBreed = ""
		req.Source = ""
		req.PetAge = 0

		resource := ToFHIR(req, testExtensionBase)

		assert.Nil(t, findBySuffix(resource.Extension, constvars.ExtensionPathPetBreed))
		assert.Nil(t, findBySuffix(resource.Extension, constvars.ExtensionPathSource))
		assert.Nil(t, findBySuffix(resource.Extension, constvars.ExtensionPathPetAge))
		assert.NotNil(t, findBySuffix(resource.Extension, constvars.ExtensionPathPetType))
	})

	t.Run("Pet Age Rides As ValueInteger", func(t *testing.T) {
		resource := ToFHIR(fullAppointmentRequest(), testExtensionBase)

		ext := findBySuffix(resource.Extension, constvars.ExtensionPathPetAge)
		if assert.NotNil(t, ext) && assert.NotNil(t, ext.ValueInteger) {
			assert.Equal(t, 4, *ext.ValueInteger)
		}
	})

	t.Run("Documents Ride In One Extension", func(t *testing.T) {
		resource := ToFHIR(fullAppointmentRequest(), testExtensionBase)

		ext := findBySuffix(resource.Extension, constvars.ExtensionPathDocuments)
		if assert.NotNil(t, ext) {
			stubs, ok := ext.ValueAttachment.([]fhir_dto.AttachmentStub)
			if assert.True(t, ok) {
				assert.Len(t, stubs, 2)
				assert.Equal(t, "vaccination card", stubs[0].Title)
				assert.Equal(t, "image/png", stubs[1].ContentType)
			}
		}
	})

	t.Run("Empty Description When Both Parts Absent", func(t *testing.T) {
		req := fullAppointmentRequest()
		req.PurposeOfVisit = ""
		req.ConcernOfVisit = ""

		resource := ToFHIR(req, testExtensionBase)

		assert.Equal(t, "", resource.Description)
		assert.Empty(t, resource.ReasonCode)
	})
}

func TestFromFHIR(t *testing.T) {
	t.Run("Round Trip", func(t *testing.T) {
		resource := ToFHIR(fullAppointmentRequest(), testExtensionBase)

		decoded := FromFHIR(resource)

		assert.Equal(t, "2025-03-01", decoded.AppointmentDate)
		assert.Equal(t, "2:30 PM", decoded.Timeslot)
		assert.Equal(t, "Checkup", decoded.PurposeOfVisit)
		assert.Equal(t, "Limping on left leg", decoded.ConcernOfVisit)
		assert.Equal(t, "pet-9", decoded.PetID)
		assert.Equal(t, "doc-3", decoded.DoctorID)
		assert.Equal(t, "hosp-7", decoded.HospitalID)
		assert.Equal(t, "ortho", decoded.Department)
		assert.Equal(t, "slot-42", decoded.SlotID)
	})

	t.Run("Non Appointment Decodes To Zero Value", func(t *testing.T) {
		decoded := FromFHIR(fhir_dto.Appointment{ResourceType: constvars.ResourcePatient, Start: "2025-03-01T14:30:00"})

		assert.Equal(t, "", decoded.AppointmentDate)
		assert.Equal(t, "", decoded.PetID)
	})

	t.Run("Description Without Separator Has No Concern", func(t *testing.T) {
		resource := fhir_dto.Appointment{
			ResourceType: constvars.ResourceAppointment,
			Description:  "Checkup only",
		}

		decoded := FromFHIR(resource)

		assert.Equal(t, "", decoded.ConcernOfVisit)
	})

	t.Run("Concern Containing Separator Is Lossy", func(t *testing.T) {
		req := fullAppointmentRequest()
		req.ConcernOfVisit = "Limping - worse at night"

		decoded := FromFHIR(ToFHIR(req, testExtensionBase))

		assert.Equal(t, "Limping", decoded.ConcernOfVisit)
	})

	t.Run("Malformed Participant References Are Skipped", func(t *testing.T) {
		resource := fhir_dto.Appointment{
			ResourceType: constvars.ResourceAppointment,
			Participant: []fhir_dto.AppointmentParticipant{
				{Actor: fhir_dto.Reference{Reference: "no-slash"}},
				{Actor: fhir_dto.Reference{Reference: "Patient/pet-9"}},
			},
		}

		decoded := FromFHIR(resource)

		assert.Equal(t, "pet-9", decoded.PetID)
	})
}
