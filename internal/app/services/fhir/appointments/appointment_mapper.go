package appointments

import (
	"strings"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/dto/responses"
	"pawcare-service/internal/pkg/fhir_dto"
	"pawcare-service/internal/pkg/utils"

	"github.com/google/uuid"
)

// descriptionSeparator joins purpose and concern inside
// Appointment.description. Decoding splits on it and keeps the second
// segment; concerns containing the separator are lossy by convention and
// external consumers depend on that behavior.
const descriptionSeparator = " - "

// ToFHIR converts a proprietary appointment record into an Appointment
// resource. Custom fields ride as extensions under extensionBaseURL; missing
// optional fields are omitted rather than encoded empty.
func ToFHIR(req *requests.CreateAppointmentRequest, extensionBaseURL string) fhir_dto.Appointment {
	id := req.ID
	if id == "" {
		id = uuid.NewString()
	}

	status := constvars.FhirAppointmentStatusBooked
	participantStatus := constvars.FhirParticipantStatusAccepted
	if req.Canceled {
		status = constvars.FhirAppointmentStatusCancelled
		participantStatus = constvars.FhirParticipantStatusDeclined
	}

	resource := fhir_dto.Appointment{
		ResourceType: constvars.ResourceAppointment,
		ID:           id,
		Status:       status,
		Start:        utils.BuildInstant(req.AppointmentDate, req.AppointmentTime24),
		Description:  buildDescription(req.PurposeOfVisit, req.ConcernOfVisit),
	}

	if req.PurposeOfVisit != "" {
		resource.ReasonCode = []fhir_dto.CodeableConcept{{Text: req.PurposeOfVisit}}
	}
	if req.Department != "" {
		resource.ServiceType = []fhir_dto.CodeableConcept{{
			Coding: []fhir_dto.Coding{{
				System:  constvars.FhirCodingSystemDepartment,
				Code:    req.Department,
				Display: req.DepartmentName,
			}},
		}}
	}

	resource.Participant = buildParticipants(req, participantStatus)
	resource.Extension = buildExtensions(req, extensionBaseURL)

	return resource
}

func buildDescription(purpose, concern string) string {
	if purpose == "" && concern == "" {
		return ""
	}
	return purpose + descriptionSeparator + concern
}

func buildParticipants(req *requests.CreateAppointmentRequest, status string) []fhir_dto.AppointmentParticipant {
	var participants []fhir_dto.AppointmentParticipant
	if req.PetID != "" {
		participants = append(participants, fhir_dto.AppointmentParticipant{
			Actor: fhir_dto.Reference{
				Reference: utils.BuildReference(constvars.ResourcePatient, req.PetID),
				Display:   req.PetName,
			},
			Status: status,
		})
	}
	if req.DoctorID != "" {
		participants = append(participants, fhir_dto.AppointmentParticipant{
			Actor: fhir_dto.Reference{
				Reference: utils.BuildReference(constvars.ResourcePractitioner, req.DoctorID),
				Display:   req.DoctorName,
			},
			Status: status,
		})
	}
	if req.HospitalID != "" {
		participants = append(participants, fhir_dto.AppointmentParticipant{
			Actor: fhir_dto.Reference{
				Reference: utils.BuildReference(constvars.ResourceLocation, req.HospitalID),
				Display:   req.HospitalName,
			},
			Status: status,
		})
	}
	return participants
}

func buildExtensions(req *requests.CreateAppointmentRequest, baseURL string) []fhir_dto.Extension {
	var extensions []fhir_dto.Extension

	appendValue := func(path string, value interface{}) {
		ext, err := fhir_dto.EncodeExtension(baseURL+"/"+path, value)
		if err != nil {
			return
		}
		extensions = append(extensions, ext)
	}

	if req.PetType != "" {
		appendValue(constvars.ExtensionPathPetType, req.PetType)
	}
	if req.PetName != "" {
		appendValue(constvars.ExtensionPathPetName, req.PetName)
	}
	if req.PetAge > 0 {
		appendValue(constvars.ExtensionPathPetAge, req.PetAge)
	}
	if req.PetGender != "" {
		appendValue(constvars.ExtensionPathPetGender, req.PetGender)
	}
	if req.PetBreed != "" {
		appendValue(constvars.ExtensionPathPetBreed, req.PetBreed)
	}
	if req.Source != "" {
		appendValue(constvars.ExtensionPathSource, req.Source)
	}
	if req.SlotID != "" {
		appendValue(constvars.ExtensionPathSlotID, req.SlotID)
	}
	if len(req.Documents) > 0 {
		// All documents ride in one valueAttachment holding an array of
		// stubs. Consumers rely on this wire shape.
		stubs := make([]fhir_dto.AttachmentStub, len(req.Documents))
		for i, doc := range req.Documents {
			stubs[i] = fhir_dto.AttachmentStub{
				ContentType: doc.ContentType,
				Title:       doc.Title,
			}
		}
		appendValue(constvars.ExtensionPathDocuments, stubs)
	}

	return extensions
}

// FromFHIR recovers the flat appointment record from an Appointment
// resource. A resource of any other type decodes to the zero value; the
// caller checks required fields afterward.
func FromFHIR(resource fhir_dto.Appointment) responses.DecodedAppointment {
	if resource.ResourceType != constvars.ResourceAppointment {
		return responses.DecodedAppointment{}
	}

	decoded := responses.DecodedAppointment{}
	decoded.AppointmentDate, decoded.Timeslot = utils.SplitInstant(resource.Start)

	if len(resource.ReasonCode) > 0 {
		decoded.PurposeOfVisit = resource.ReasonCode[0].Text
	}
	if parts := strings.Split(resource.Description, descriptionSeparator); len(parts) > 1 {
		decoded.ConcernOfVisit = parts[1]
	}
	if len(resource.ServiceType) > 0 && len(resource.ServiceType[0].Coding) > 0 {
		decoded.Department = resource.ServiceType[0].Coding[0].Code
	}

	for _, participant := range resource.Participant {
		resourceType, id, ok := utils.ParseReference(participant.Actor.Reference)
		if !ok {
			continue
		}
		switch resourceType {
		case constvars.ResourcePatient:
			decoded.PetID = id
		case constvars.ResourcePractitioner:
			decoded.DoctorID = id
		case constvars.ResourceLocation:
			decoded.HospitalID = id
		}
	}

	for _, ext := range resource.Extension {
		if !strings.Contains(ext.Url, constvars.ExtensionPathSlotID) {
			continue
		}
		if value, err := fhir_dto.DecodeExtensionValue(ext); err == nil {
			if slotID, ok := value.(string); ok {
				decoded.SlotID = slotID
			}
		}
		break
	}

	return decoded
}
