package slots

import (
	"testing"

	"pawcare-service/internal/app/services/fhir/validation"
	"pawcare-service/internal/pkg/constvars"
	"pawcare-service/internal/pkg/dto/requests"
	"pawcare-service/internal/pkg/fhir_dto"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
)

func TestMonthlySlotsToFHIR(t *testing.T) {
	req := &requests.MonthlySlotRequest{DoctorID: "doc-3", SlotMonth: 2, SlotYear: 2024}

	t.Run("Schedule Plus One Slot Per Day Per Timeslot", func(t *testing.T) {
		bundle := MonthlySlotsToFHIR(req)

		assert.Equal(t, constvars.FhirBundleTypeCollection, bundle.Type)
		// leap February: 1 schedule + 29 days * 6 timeslots
		assert.Len(t, bundle.Entry, 1+29*6)
	})

	t.Run("Regular February Is Shorter", func(t *testing.T) {
		bundle := MonthlySlotsToFHIR(&requests.MonthlySlotRequest{DoctorID: "doc-3", SlotMonth: 2, SlotYear: 2025})

		assert.Len(t, bundle.Entry, 1+28*6)
	})

	t.Run("Schedule Points At The Doctor", func(t *testing.T) {
		bundle := MonthlySlotsToFHIR(req)

		schedule := bundle.Entry[0].Resource.(fhir_dto.Schedule)
		if assert.Len(t, schedule.Actor, 1) {
			assert.Equal(t, "Practitioner/doc-3", schedule.Actor[0].Reference)
		}
		if assert.Len(t, schedule.Identifier, 1) {
			assert.Equal(t, "doc-3-2024-02", schedule.Identifier[0].Value)
		}
	})

	t.Run("Slots Reference The Schedule And Start Open", func(t *testing.T) {
		bundle := MonthlySlotsToFHIR(req)

		schedule := bundle.Entry[0].Resource.(fhir_dto.Schedule)
		slot := bundle.Entry[1].Resource.(fhir_dto.Slot)
		assert.Equal(t, "Schedule/"+schedule.ID, slot.Schedule.Reference)
		assert.Equal(t, "false", slot.IsBooked)
		assert.Equal(t, "2024-02-01", slot.Start)
		assert.Equal(t, "9:00 AM", slot.SlotTime)
	})

	t.Run("Generated Grid Passes Slot Validation", func(t *testing.T) {
		bundle := MonthlySlotsToFHIR(req)
		// drop the Schedule entry; the slot validator only understands Slot resources
		bundle.Entry = bundle.Entry[1:]

		raw, err := json.Marshal(bundle)
		assert.NoError(t, err)

		var untyped map[string]interface{}
		assert.NoError(t, json.Unmarshal(raw, &untyped))

		assert.Empty(t, validation.ValidateSlotBundle(untyped))
	})
}
