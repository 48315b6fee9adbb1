package slots

import (
	"fmt"
	"time"

	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"
	"pawcare-service/internal/pkg/utils"

	"github.com/google/uuid"
)

const scheduleIdentifierSystem = "http://terminology.pawcare.io/schedule"

// Daily timeslots offered when a doctor has no custom roster.
var defaultSlotTimes = []string{"9:00 AM", "10:00 AM", "11:00 AM", "2:00 PM", "3:00 PM", "4:00 PM"}

// MonthlySlotsToFHIR builds a doctor's slot grid for one month: a single
// Schedule plus one open Slot per timeslot per calendar day, leap-year
// aware. The caller validates the request first; this builder assumes a
// valid month and year.
func MonthlySlotsToFHIR(req *requests.MonthlySlotRequest) fhir_dto.Bundle {
	scheduleID := uuid.NewString()
	schedule := fhir_dto.Schedule{
		ResourceType: constvars.ResourceSchedule,
		ID:           scheduleID,
		Identifier: []fhir_dto.Identifier{{
			System: scheduleIdentifierSystem,
			Value:  fmt.Sprintf("%s-%04d-%02d", req.DoctorID, req.SlotYear, req.SlotMonth),
		}},
		Actor: []fhir_dto.Reference{{
			Reference: utils.BuildReference(constvars.ResourcePractitioner, req.DoctorID),
		}},
	}

	entries := []fhir_dto.Entry{{
		FullUrl:  utils.BuildURN(scheduleID),
		Resource: schedule,
	}}

	lastDay := utils.GetLastDayOfMonth(req.SlotYear, time.Month(req.SlotMonth))
	for day := 1; day <= lastDay; day++ {
		date := fmt.Sprintf("%04d-%02d-%02d", req.SlotYear, req.SlotMonth, day)
		for _, slotTime := range defaultSlotTimes {
			slotID := uuid.NewString()
			entries = append(entries, fhir_dto.Entry{
				FullUrl: utils.BuildURN(slotID),
				Resource: fhir_dto.Slot{
					ResourceType: constvars.ResourceSlot,
					ID:           slotID,
					Schedule: fhir_dto.Reference{
						Reference: utils.BuildReference(constvars.ResourceSchedule, scheduleID),
					},
					Status:   constvars.FhirSlotStatusFree,
					Start:    date,
					IsBooked: "false",
					SlotTime: slotTime,
				},
			})
		}
	}

	return fhir_dto.Bundle{
		ResourceType: constvars.ResourceBundle,
		Type:         constvars.FhirBundleTypeCollection,
		Entry:        entries,
	}
}
