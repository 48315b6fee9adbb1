package constvars

const (
	ResourceAppointment        = "Appointment"
	ResourcePatient            = "Patient"
	ResourcePractitioner       = "Practitioner"
	ResourceLocation           = "Location"
	ResourceOrganization       = "Organization"
	ResourceHealthcareService  = "HealthcareService"
	ResourceDocumentReference  = "DocumentReference"
	ResourceSlot               = "Slot"
	ResourceSchedule           = "Schedule"
	ResourceObservation        = "Observation"
	ResourceMeasureReport      = "MeasureReport"
	ResourceActivityDefinition = "ActivityDefinition"
	ResourceBundle             = "Bundle"
	ResourceOperationOutcome   = "OperationOutcome"
)

const (
	FhirBundleTypeCollection = "collection"
	FhirBundleTypeSearchset  = "searchset"
)

const (
	FhirLinkRelationSelf     = "self"
	FhirLinkRelationPrevious = "previous"
	FhirLinkRelationNext     = "next"
)

const (
	FhirAppointmentStatusBooked    = "booked"
	FhirAppointmentStatusCancelled = "cancelled"
	FhirSlotStatusFree             = "free"
)

const (
	FhirParticipantStatusAccepted = "accepted"
	FhirParticipantStatusDeclined = "declined"
)

const (
	FhirObservationStatusFinal   = "final"
	FhirMeasureReportStatusFinal = "complete"
	FhirDocumentStatusCurrent    = "current"
	FhirActivityKindTask         = "Task"
	FhirActivityStatusActive     = "active"
)

// Extension path segments appended to the caller-supplied extension base URL.
// Changing any of these breaks round-tripping for consumers that match on
// exact extension URLs.
const (
	ExtensionPathPetType          = "pet-type"
	ExtensionPathPetName          = "pet-name"
	ExtensionPathPetAge           = "pet-age"
	ExtensionPathPetGender        = "pet-gender"
	ExtensionPathPetBreed         = "pet-breed"
	ExtensionPathSource           = "appointment-source"
	ExtensionPathSlotID           = "slot-id"
	ExtensionPathDocuments        = "appointment-documents"
	ExtensionPathLatitude         = "geolocation-latitude"
	ExtensionPathLongitude        = "geolocation-longitude"
	ExtensionPathRegistrationNo   = "registration-number"
	ExtensionPathEstablishment    = "establishment-year"
	ExtensionPathWebsite          = "website"
	ExtensionPathLogo             = "logo"
	ExtensionPathPlanType         = "plan-type"
	ExtensionPathPlanName         = "plan-name"
	ExtensionPathDepartmentName   = "department-name"
	ExtensionPathMonthName        = "month-name"
	ExtensionPathTotalAppointment = "total-appointments"
)

const (
	FhirCodingSystemDepartment   = "http://terminology.pawcare.io/CodeSystem/department"
	FhirCodingSystemExerciseType = "http://terminology.pawcare.io/CodeSystem/exercise-type"
	FhirCodingSystemOrgType      = "http://terminology.hl7.org/CodeSystem/organization-type"
	FhirCodingSystemServiceType  = "http://terminology.hl7.org/CodeSystem/service-type"
)

const (
	FhirGroupSuccessfulAppointments = "Successful Appointments"
	FhirGroupCanceledAppointments   = "Canceled Appointments"
	FhirGroupTotalAppointments      = "Total Appointments"
)

const (
	FhirIssueSeverityError = "error"
	FhirIssueCodeRequired  = "required"
	FhirIssueCodeInvalid   = "invalid"
	FhirIssueCodeValue     = "value"
)
